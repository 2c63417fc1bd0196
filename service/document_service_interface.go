package service

import "context"

// DocumentServiceInterface defines the contract for turning a quote document into a PDF
type DocumentServiceInterface interface {
	GeneratePDF(ctx context.Context, html []byte) ([]byte, error)
}
