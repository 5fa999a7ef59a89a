// Package upload turns user-supplied logo images into self-contained data URIs.
package upload

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/vincent-petithory/dataurl"
)

var (
	ErrTooLarge = errors.New("image exceeds the upload size limit")
	ErrEmpty    = errors.New("image is empty")
	ErrNotImage = errors.New("file is not an image")
)

// EncodeLogo reads an image of at most maxBytes from r and returns it as a
// base64 data URI. The content type is sniffed from the bytes, not trusted
// from the client.
func EncodeLogo(r io.Reader, maxBytes int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w (%d bytes max)", ErrTooLarge, maxBytes)
	}
	return EncodeImage(data)
}

// EncodeImage returns data as a base64 data URI if it is an image.
func EncodeImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmpty
	}
	mediaType, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	if !strings.HasPrefix(mediaType, "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mediaType)
	}
	return dataurl.New(data, mediaType).String(), nil
}
