package capture

import (
	"bytes"
	"image"
	"image/jpeg"
	"wellness-wizard/internal/pkg/exceptions"

	"golang.org/x/image/draw"
)

// fitWithin returns the largest size with the source aspect ratio that fits
// inside maxWidth x maxHeight. Smaller sources are left as they are.
func fitWithin(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}
	scaledWidth, scaledHeight := maxWidth, height*maxWidth/width
	if scaledHeight > maxHeight {
		scaledWidth, scaledHeight = width*maxHeight/height, maxHeight
	}
	if scaledWidth < 1 {
		scaledWidth = 1
	}
	if scaledHeight < 1 {
		scaledHeight = 1
	}
	return scaledWidth, scaledHeight
}

// EncodeFrame scales the frame to fit the constraints and encodes it as JPEG.
func EncodeFrame(frame image.Image, constraints Constraints) ([]byte, error) {
	constraints = constraints.withDefaults()

	bounds := frame.Bounds()
	if bounds.Empty() {
		return nil, exceptions.ErrEncodeFrame(errEmptyFrame)
	}

	width, height := fitWithin(bounds.Dx(), bounds.Dy(), constraints.Width, constraints.Height)
	if width != bounds.Dx() || height != bounds.Dy() {
		scaled := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.BiLinear.Scale(scaled, scaled.Bounds(), frame, bounds, draw.Over, nil)
		frame = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, frame, &jpeg.Options{Quality: constraints.JPEGQuality}); err != nil {
		return nil, exceptions.ErrEncodeFrame(err)
	}
	return buf.Bytes(), nil
}
