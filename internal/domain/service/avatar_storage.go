package service

import (
	"context"
	"io"
)

// AvatarStorage persists uploaded profile images and hands back the stored
// object name. The account core only ever consumes that name; where the
// bytes live is this collaborator's concern.
type AvatarStorage interface {
	// Store writes the image and returns the generated object name.
	Store(ctx context.Context, originalFilename string, reader io.Reader, size int64) (string, error)

	// Remove deletes a previously stored image. Missing objects are not an error.
	Remove(ctx context.Context, objectName string) error
}
