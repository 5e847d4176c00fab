package capture

import (
	"context"
	"image"
)

// Device is a source of still frames, for example a camera.
// Open fails when the device is missing or access is refused.
type Device interface {
	Open(ctx context.Context, constraints Constraints) (Stream, error)
}

// Stream is an open device handle.
type Stream interface {
	Frame(ctx context.Context) (image.Image, error)
	Close() error
}
