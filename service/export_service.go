package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"signage-quote/catalog"
	"signage-quote/export"
	"signage-quote/utils"
)

const (
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Artifact is a rendered export ready to be downloaded
type Artifact struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ExportServiceInterface defines the contract for quote downloads
type ExportServiceInterface interface {
	Document(ctx context.Context, sessionID, brand string) (Artifact, error)
	PDF(ctx context.Context, sessionID, brand string) (Artifact, error)
	Spreadsheet(ctx context.Context, sessionID, brand string) (Artifact, error)
}

// ExportService renders the session's quote in every export format.
// All formats are built from one report so their rows and totals always agree.
type ExportService struct {
	registry  *catalog.Registry
	quotes    QuoteServiceInterface
	documents DocumentServiceInterface
	log       logrus.FieldLogger
}

// Ensure ExportService implements ExportServiceInterface
var _ ExportServiceInterface = (*ExportService)(nil)

// NewExportService creates a new ExportService
func NewExportService(
	registry *catalog.Registry,
	quotes QuoteServiceInterface,
	documents DocumentServiceInterface,
	log logrus.FieldLogger,
) *ExportService {
	return &ExportService{
		registry:  registry,
		quotes:    quotes,
		documents: documents,
		log:       log,
	}
}

// Document renders the printable HTML quote
func (s *ExportService) Document(ctx context.Context, sessionID, brand string) (Artifact, error) {
	r, html, err := s.document(ctx, sessionID, brand)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		FileName:    utils.QuoteFileName(r.RequestNumber, "html"),
		ContentType: ContentTypeHTML,
		Data:        html,
	}, nil
}

// PDF prints the HTML quote to PDF
func (s *ExportService) PDF(ctx context.Context, sessionID, brand string) (Artifact, error) {
	r, html, err := s.document(ctx, sessionID, brand)
	if err != nil {
		return Artifact{}, err
	}
	pdf, err := s.documents.GeneratePDF(ctx, html)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		FileName:    utils.QuoteFileName(r.RequestNumber, "pdf"),
		ContentType: ContentTypePDF,
		Data:        pdf,
	}, nil
}

// Spreadsheet renders the quote as an .xlsx workbook
func (s *ExportService) Spreadsheet(ctx context.Context, sessionID, brand string) (Artifact, error) {
	r, err := s.report(ctx, sessionID, brand)
	if err != nil {
		return Artifact{}, err
	}
	book, err := export.RenderSpreadsheet(r)
	if err != nil {
		return Artifact{}, err
	}
	s.log.WithFields(logrus.Fields{"request": r.RequestNumber, "bytes": len(book)}).Debug("📊 Spreadsheet: workbook rendered")
	return Artifact{
		FileName:    utils.QuoteFileName(r.RequestNumber, "xlsx"),
		ContentType: ContentTypeXLSX,
		Data:        book,
	}, nil
}

func (s *ExportService) document(ctx context.Context, sessionID, brand string) (export.Report, []byte, error) {
	r, err := s.report(ctx, sessionID, brand)
	if err != nil {
		return export.Report{}, nil, err
	}
	html, err := export.RenderDocumentHTML(r)
	if err != nil {
		return export.Report{}, nil, err
	}
	return r, html, nil
}

func (s *ExportService) report(ctx context.Context, sessionID, brand string) (export.Report, error) {
	b, err := s.registry.Brand(brand)
	if err != nil {
		return export.Report{}, err
	}
	q, _, err := s.quotes.Current(ctx, sessionID, b.ID)
	if err != nil {
		return export.Report{}, err
	}
	return export.BuildReport(q, b), nil
}
