package pricing

import (
	"errors"
	"fmt"
)

var (
	ErrNoOptionSelected  = errors.New("an option must be selected for this product")
	ErrOptionNotFound    = errors.New("option not found")
	ErrInvalidCustomSize = errors.New("custom size requires a positive height and width")
	ErrCustomNotOffered  = errors.New("custom size is not offered for this product")
)

// ResolveError reports why a product configuration could not be priced
type ResolveError struct {
	ProductID string
	OptionKey string
	Err       error
}

func (e *ResolveError) Error() string {
	if e.OptionKey == "" {
		return fmt.Sprintf("product %s: %v", e.ProductID, e.Err)
	}
	return fmt.Sprintf("product %s option %q: %v", e.ProductID, e.OptionKey, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a user-correctable configuration error
func IsValidation(err error) bool {
	var re *ResolveError
	return errors.As(err, &re)
}
