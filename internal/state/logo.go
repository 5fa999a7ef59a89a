package state

import (
	"fmt"

	"laplante/coach-app/internal/domain"

	"github.com/vincent-petithory/dataurl"
)

// ValidateLogo checks that uri is empty or a base64 image data URI whose
// decoded payload fits in domain.MaxLogoBytes.
func ValidateLogo(uri string) error {
	if uri == "" {
		return nil
	}
	du, err := dataurl.DecodeString(uri)
	if err != nil {
		return fmt.Errorf("%w: logo must be a base64 data URI: %v", ErrInvalidInput, err)
	}
	if du.Encoding != dataurl.EncodingBase64 || du.Type != "image" {
		return fmt.Errorf("%w: logo must be a base64 encoded image, got %s", ErrInvalidInput, du.ContentType())
	}
	if len(du.Data) > domain.MaxLogoBytes {
		return ErrLogoTooLarge
	}
	return nil
}
