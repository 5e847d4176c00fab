package capture

import "errors"

var (
	errEmptyFrame    = errors.New("frame has no pixels")
	errNoFrames      = errors.New("no image files in capture directory")
	errStreamClosed  = errors.New("stream closed")
	errNotADirectory = errors.New("capture source is not a directory")
	errImageTooLarge = errors.New("image exceeds the pixel limit")
)
