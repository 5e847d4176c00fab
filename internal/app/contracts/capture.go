package contracts

import "context"

// CaptureSession is the camera lifecycle owned by a single wizard.
type CaptureSession interface {
	Open(ctx context.Context) error
	Capture(ctx context.Context) ([]byte, error)
	Close() error
	IsOpen() bool
}
