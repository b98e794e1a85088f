package storage

import (
	"context"
	"io"
)

// LogoStore persists uploaded company logos and returns a public URL
// usable as a listing's companyLogo.
type LogoStore interface {
	UploadLogo(ctx context.Context, companyName, contentType string, body io.Reader) (string, error)
}
