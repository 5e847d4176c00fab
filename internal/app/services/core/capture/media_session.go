package capture

import (
	"context"
	"errors"
	"sync"
	"wellness-wizard/internal/app/contracts"
	"wellness-wizard/internal/pkg/constvars"
	"wellness-wizard/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// MediaCaptureSession owns at most one open device stream.
// States: closed -> open -> closed. Capture is valid only while open.
type MediaCaptureSession struct {
	mu          sync.Mutex
	device      Device
	constraints Constraints
	stream      Stream
	log         *zap.Logger
}

var _ contracts.CaptureSession = (*MediaCaptureSession)(nil)

func NewMediaCaptureSession(logger *zap.Logger, device Device, constraints Constraints) *MediaCaptureSession {
	return &MediaCaptureSession{
		device:      device,
		constraints: constraints.withDefaults(),
		log:         logger,
	}
}

// Open requests the device once. It never retries; on DeviceUnavailable the
// caller should offer manual upload instead.
func (s *MediaCaptureSession) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stream != nil {
		return exceptions.ErrDeviceAlreadyOpen()
	}
	if s.device == nil {
		return exceptions.ErrDeviceUnavailable(nil)
	}

	stream, err := s.device.Open(ctx, s.constraints)
	if err != nil {
		s.log.Warn("MediaCaptureSession.Open device unavailable", zap.Error(err))
		if exceptions.KindOf(err) == exceptions.KindDeviceUnavailable {
			return err
		}
		return exceptions.ErrDeviceUnavailable(err)
	}
	s.stream = stream

	s.log.Debug("MediaCaptureSession.Open succeeded",
		zap.Int(constvars.LoggingFrameWidthKey, s.constraints.Width),
		zap.Int(constvars.LoggingFrameHeightKey, s.constraints.Height),
	)
	return nil
}

// Capture returns one JPEG encoded still frame.
func (s *MediaCaptureSession) Capture(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stream == nil {
		return nil, exceptions.ErrDeviceNotOpen()
	}

	frame, err := s.stream.Frame(ctx)
	if err != nil {
		return nil, frameError(err)
	}

	payload, err := EncodeFrame(frame, s.constraints)
	if err != nil {
		return nil, err
	}

	s.log.Debug("MediaCaptureSession.Capture succeeded",
		zap.Int(constvars.LoggingPayloadSizeKey, len(payload)),
	)
	return payload, nil
}

// frameError keeps cancellation and already classified errors, such as an
// undecodable frame, as they are. Anything else means the device failed.
func frameError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if exceptions.KindOf(err) != exceptions.KindInternal {
		return err
	}
	return exceptions.ErrDeviceUnavailable(err)
}

// Close releases the device. Closing a closed session is a no-op.
func (s *MediaCaptureSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stream == nil {
		return nil
	}
	err := s.stream.Close()
	s.stream = nil
	if err != nil {
		s.log.Warn("MediaCaptureSession.Close error releasing device", zap.Error(err))
	}
	return err
}

func (s *MediaCaptureSession) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stream != nil
}

// WithSession opens a session on device, runs fn and always closes it.
func WithSession(ctx context.Context, logger *zap.Logger, device Device, constraints Constraints, fn func(session *MediaCaptureSession) error) error {
	session := NewMediaCaptureSession(logger, device, constraints)
	if err := session.Open(ctx); err != nil {
		return err
	}
	defer session.Close()
	return fn(session)
}
