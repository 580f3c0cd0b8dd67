package storage

import (
	"context"
	"io"
)

// Kinds of images the marketplace stores.
const (
	KindPets  = "pets"
	KindUsers = "users"
)

// ImageStore persists uploaded image blobs. By the time a handler calls Save,
// the blob is an already-materialized multipart part; only its bytes and type
// travel here. Save returns the generated filename the record should reference.
type ImageStore interface {
	Save(ctx context.Context, kind, ext, contentType string, r io.Reader) (string, error)
}
