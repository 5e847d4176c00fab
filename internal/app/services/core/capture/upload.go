package capture

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"strings"
	"wellness-wizard/internal/pkg/exceptions"
)

// decodeBounded decodes raw after checking the size its header declares, so
// a small compressed file cannot force a huge pixel buffer.
func decodeBounded(raw []byte, maxPixels int) (image.Image, error) {
	config, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, exceptions.ErrDecodeImage(err)
	}
	if config.Width <= 0 || config.Height <= 0 || config.Width > maxPixels/config.Height {
		return nil, exceptions.ErrDecodeImage(fmt.Errorf("%w: %dx%d above %d", errImageTooLarge, config.Width, config.Height, maxPixels))
	}

	frame, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, exceptions.ErrDecodeImage(err)
	}
	return frame, nil
}

// DecodeUpload is the manual fallback when no camera is available. It accepts
// a JPEG or PNG file and re-encodes it the same way a captured frame is.
func DecodeUpload(r io.Reader, constraints Constraints) ([]byte, error) {
	constraints = constraints.withDefaults()

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, exceptions.ErrDecodeImage(err)
	}
	frame, err := decodeBounded(raw, constraints.MaxPixels)
	if err != nil {
		return nil, err
	}
	return EncodeFrame(frame, constraints)
}

// DecodeBase64Upload accepts bare base64 or a data URL.
func DecodeBase64Upload(encoded string, constraints Constraints) ([]byte, error) {
	if i := strings.Index(encoded, ","); strings.HasPrefix(encoded, "data:") && i >= 0 {
		encoded = encoded[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, exceptions.ErrDecodeImage(err)
	}
	return DecodeUpload(bytes.NewReader(raw), constraints)
}
