package capture

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"wellness-wizard/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDevice struct {
	frame    image.Image
	frameErr error
	openErr  error
	opened   int
	streams  []*fakeStream
}

type fakeStream struct {
	frame    image.Image
	frameErr error
	closed   bool
}

func (d *fakeDevice) Open(ctx context.Context, constraints Constraints) (Stream, error) {
	if d.openErr != nil {
		return nil, d.openErr
	}
	d.opened++
	stream := &fakeStream{frame: d.frame, frameErr: d.frameErr}
	d.streams = append(d.streams, stream)
	return stream, nil
}

func (s *fakeStream) Frame(ctx context.Context) (image.Image, error) {
	if s.closed {
		return nil, errStreamClosed
	}
	if s.frameErr != nil {
		return nil, s.frameErr
	}
	return s.frame, nil
}

func (s *fakeStream) Close() error {
	s.closed = true
	return nil
}

func solidImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 120, G: 80, B: 40, A: 255})
		}
	}
	return img
}

func decodeJPEG(t *testing.T, payload []byte) image.Image {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(payload))
	require.NoError(t, err)
	return img
}

func TestMediaCaptureSessionLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Capture before open is InvalidState", func(t *testing.T) {
		session := NewMediaCaptureSession(zap.NewNop(), &fakeDevice{frame: solidImage(4, 4)}, DefaultConstraints())
		_, err := session.Capture(ctx)
		assert.True(t, errors.Is(err, exceptions.KindInvalidState))
	})

	t.Run("Capture after close is InvalidState", func(t *testing.T) {
		device := &fakeDevice{frame: solidImage(4, 4)}
		session := NewMediaCaptureSession(zap.NewNop(), device, DefaultConstraints())
		require.NoError(t, session.Open(ctx))

		_, err := session.Capture(ctx)
		require.NoError(t, err)

		require.NoError(t, session.Close())
		assert.True(t, device.streams[0].closed, "Close should release the device")

		_, err = session.Capture(ctx)
		assert.True(t, errors.Is(err, exceptions.KindInvalidState))
	})

	t.Run("Close is idempotent", func(t *testing.T) {
		session := NewMediaCaptureSession(zap.NewNop(), &fakeDevice{frame: solidImage(4, 4)}, DefaultConstraints())
		assert.NoError(t, session.Close())
		require.NoError(t, session.Open(ctx))
		assert.NoError(t, session.Close())
		assert.NoError(t, session.Close())
		assert.False(t, session.IsOpen())
	})

	t.Run("Opening twice is InvalidState", func(t *testing.T) {
		device := &fakeDevice{frame: solidImage(4, 4)}
		session := NewMediaCaptureSession(zap.NewNop(), device, DefaultConstraints())
		require.NoError(t, session.Open(ctx))
		err := session.Open(ctx)
		assert.True(t, errors.Is(err, exceptions.KindInvalidState))
		assert.Equal(t, 1, device.opened, "Device should be requested only once")
	})

	t.Run("Refused device is DeviceUnavailable and not retried", func(t *testing.T) {
		device := &fakeDevice{openErr: errors.New("permission denied")}
		session := NewMediaCaptureSession(zap.NewNop(), device, DefaultConstraints())
		err := session.Open(ctx)
		assert.True(t, errors.Is(err, exceptions.KindDeviceUnavailable))
		assert.False(t, session.IsOpen())
	})

	t.Run("Missing device is DeviceUnavailable", func(t *testing.T) {
		session := NewMediaCaptureSession(zap.NewNop(), nil, DefaultConstraints())
		err := session.Open(ctx)
		assert.True(t, errors.Is(err, exceptions.KindDeviceUnavailable))
	})
}

func TestWithSessionAlwaysCloses(t *testing.T) {
	device := &fakeDevice{frame: solidImage(4, 4)}
	failure := errors.New("user cancelled")

	err := WithSession(context.Background(), zap.NewNop(), device, DefaultConstraints(), func(session *MediaCaptureSession) error {
		_, err := session.Capture(context.Background())
		require.NoError(t, err)
		return failure
	})

	assert.ErrorIs(t, err, failure)
	require.Len(t, device.streams, 1)
	assert.True(t, device.streams[0].closed)
}

func TestEncodeFrame(t *testing.T) {
	t.Run("Large frames are scaled to fit keeping aspect ratio", func(t *testing.T) {
		payload, err := EncodeFrame(solidImage(2560, 1920), DefaultConstraints())
		require.NoError(t, err)

		bounds := decodeJPEG(t, payload).Bounds()
		assert.Equal(t, 960, bounds.Dx())
		assert.Equal(t, 720, bounds.Dy())
	})

	t.Run("Small frames keep their size", func(t *testing.T) {
		payload, err := EncodeFrame(solidImage(64, 48), DefaultConstraints())
		require.NoError(t, err)

		bounds := decodeJPEG(t, payload).Bounds()
		assert.Equal(t, 64, bounds.Dx())
		assert.Equal(t, 48, bounds.Dy())
	})

	t.Run("Empty frame is rejected", func(t *testing.T) {
		_, err := EncodeFrame(image.NewRGBA(image.Rect(0, 0, 0, 0)), DefaultConstraints())
		assert.Error(t, err)
	})
}

func TestFitWithin(t *testing.T) {
	w, h := fitWithin(3840, 2160, 1280, 720)
	assert.Equal(t, []int{1280, 720}, []int{w, h})

	w, h = fitWithin(1000, 2000, 1280, 720)
	assert.Equal(t, []int{360, 720}, []int{w, h})
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, png.Encode(file, img))
}

func TestDirectoryDevice(t *testing.T) {
	ctx := context.Background()

	t.Run("Serves image files in name order", func(t *testing.T) {
		dir := t.TempDir()
		writePNG(t, filepath.Join(dir, "b-right.png"), solidImage(20, 10))
		writePNG(t, filepath.Join(dir, "a-left.png"), solidImage(10, 20))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))

		err := WithSession(ctx, zap.NewNop(), NewDirectoryDevice(dir), DefaultConstraints(), func(session *MediaCaptureSession) error {
			first, err := session.Capture(ctx)
			require.NoError(t, err)
			second, err := session.Capture(ctx)
			require.NoError(t, err)

			assert.Equal(t, 10, decodeJPEG(t, first).Bounds().Dx())
			assert.Equal(t, 20, decodeJPEG(t, second).Bounds().Dx())
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("Empty directory is DeviceUnavailable", func(t *testing.T) {
		session := NewMediaCaptureSession(zap.NewNop(), NewDirectoryDevice(t.TempDir()), DefaultConstraints())
		err := session.Open(ctx)
		assert.True(t, errors.Is(err, exceptions.KindDeviceUnavailable))
	})

	t.Run("Missing directory is DeviceUnavailable", func(t *testing.T) {
		session := NewMediaCaptureSession(zap.NewNop(), NewDirectoryDevice(filepath.Join(t.TempDir(), "absent")), DefaultConstraints())
		err := session.Open(ctx)
		assert.True(t, errors.Is(err, exceptions.KindDeviceUnavailable))
	})
}

func TestDecodeUpload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solidImage(30, 30)))

	t.Run("PNG upload is re-encoded as JPEG", func(t *testing.T) {
		payload, err := DecodeUpload(bytes.NewReader(buf.Bytes()), DefaultConstraints())
		require.NoError(t, err)
		assert.Equal(t, 30, decodeJPEG(t, payload).Bounds().Dx())
	})

	t.Run("Garbage is rejected", func(t *testing.T) {
		_, err := DecodeUpload(bytes.NewReader([]byte("not an image")), DefaultConstraints())
		assert.True(t, errors.Is(err, exceptions.KindValidationFailed))
	})

	t.Run("Data URL prefix is accepted", func(t *testing.T) {
		encoded := "data:image/png;base64," + base64Encode(buf.Bytes())
		payload, err := DecodeBase64Upload(encoded, DefaultConstraints())
		require.NoError(t, err)
		assert.NotEmpty(t, payload)
	})
}

// pngHeader returns a grayscale PNG signature and IHDR chunk declaring
// width x height. It carries no pixel data.
func pngHeader(width, height uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	chunk := make([]byte, 0, 17)
	chunk = append(chunk, "IHDR"...)
	chunk = binary.BigEndian.AppendUint32(chunk, width)
	chunk = binary.BigEndian.AppendUint32(chunk, height)
	chunk = append(chunk, 8, 0, 0, 0, 0)

	binary.Write(&buf, binary.BigEndian, uint32(len(chunk)-4))
	buf.Write(chunk)
	binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestDecodeUploadPixelLimit(t *testing.T) {
	t.Run("Huge declared size is rejected before decoding", func(t *testing.T) {
		_, err := DecodeUpload(bytes.NewReader(pngHeader(16000, 16000)), DefaultConstraints())
		assert.True(t, errors.Is(err, exceptions.KindValidationFailed))
		assert.ErrorIs(t, err, errImageTooLarge)
	})

	t.Run("Base64 uploads are bounded too", func(t *testing.T) {
		_, err := DecodeBase64Upload(base64Encode(pngHeader(16000, 16000)), DefaultConstraints())
		assert.ErrorIs(t, err, errImageTooLarge)
	})

	t.Run("Configured limit applies", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, solidImage(30, 30)))

		constraints := DefaultConstraints()
		constraints.MaxPixels = 30 * 29
		_, err := DecodeUpload(bytes.NewReader(buf.Bytes()), constraints)
		assert.ErrorIs(t, err, errImageTooLarge)

		constraints.MaxPixels = 30 * 30
		_, err = DecodeUpload(bytes.NewReader(buf.Bytes()), constraints)
		assert.NoError(t, err)
	})

	t.Run("Default limit scales with the frame size", func(t *testing.T) {
		assert.Equal(t, 16*1280*720, DefaultConstraints().withDefaults().MaxPixels)
	})

	t.Run("Directory frames are bounded", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "left.png"), pngHeader(16000, 16000), 0o644))

		err := WithSession(context.Background(), zap.NewNop(), NewDirectoryDevice(dir), DefaultConstraints(), func(session *MediaCaptureSession) error {
			_, err := session.Capture(context.Background())
			return err
		})
		assert.True(t, errors.Is(err, exceptions.KindValidationFailed))
		assert.False(t, errors.Is(err, exceptions.KindDeviceUnavailable))
	})
}

func TestCaptureFrameErrors(t *testing.T) {
	tests := []struct {
		name     string
		frameErr error
		check    func(t *testing.T, err error)
	}{
		{
			name:     "Deadline passes through",
			frameErr: context.DeadlineExceeded,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, context.DeadlineExceeded)
				assert.False(t, errors.Is(err, exceptions.KindDeviceUnavailable))
			},
		},
		{
			name:     "Cancellation passes through",
			frameErr: context.Canceled,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, context.Canceled)
				assert.False(t, errors.Is(err, exceptions.KindDeviceUnavailable))
			},
		},
		{
			name:     "Undecodable frame stays a validation failure",
			frameErr: exceptions.ErrDecodeImage(errors.New("bad huffman code")),
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, exceptions.KindValidationFailed))
			},
		},
		{
			name:     "Device failure is DeviceUnavailable",
			frameErr: errors.New("usb disconnected"),
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, exceptions.KindDeviceUnavailable))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := NewMediaCaptureSession(zap.NewNop(), &fakeDevice{frameErr: tt.frameErr}, DefaultConstraints())
			require.NoError(t, session.Open(context.Background()))
			defer session.Close()

			_, err := session.Capture(context.Background())
			tt.check(t, err)
		})
	}
}
