// Package bootstrap connects the configured drivers and assembles the
// collaborators every wizard session shares.
package bootstrap

import (
	"context"
	"time"
	"wellness-wizard/internal/app/config"
	"wellness-wizard/internal/app/contracts"
	"wellness-wizard/internal/app/drivers/database"
	"wellness-wizard/internal/app/drivers/messaging"
	"wellness-wizard/internal/app/drivers/storage"
	"wellness-wizard/internal/app/services/core/capture"
	"wellness-wizard/internal/app/services/core/wizard"
	"wellness-wizard/internal/app/services/portal"
	"wellness-wizard/internal/app/services/shared/audit"
	"wellness-wizard/internal/app/services/shared/credentials"
	"wellness-wizard/internal/app/services/shared/events"
	"wellness-wizard/internal/app/services/shared/redis"
	irisstorage "wellness-wizard/internal/app/services/shared/storage"

	"go.uber.org/zap"
)

// Connect opens Redis, which holds the portal credentials, and whichever of
// MinIO, RabbitMQ and MongoDB the configuration enables. Drivers exit the
// process when a connection fails.
func Connect(ctx context.Context, b *config.Bootstrap) {
	b.Redis = database.NewRedisClient(ctx, b.DriverConfig)

	if b.InternalConfig.Minio.Enabled {
		b.Minio = storage.NewMinio(ctx, b.DriverConfig, b.InternalConfig.Minio.BucketName)
	}
	if b.InternalConfig.RabbitMQ.Enabled {
		b.RabbitMQ = messaging.NewRabbitMQ(b.DriverConfig)
	}
	if b.InternalConfig.MongoDB.Enabled {
		b.MongoDB = database.NewMongoDB(ctx, b.DriverConfig)
	}
}

// Services are shared by every wizard session of the process.
type Services struct {
	Log         *zap.Logger
	Portal      contracts.PortalClient
	Credentials contracts.CredentialReader
	Archive     contracts.IrisArchive
	Events      contracts.EventPublisher
	Audit       contracts.AuditTrail
	Constraints capture.Constraints
	DeviceDir   string
}

func NewServices(b *config.Bootstrap) (*Services, error) {
	cfg := b.InternalConfig
	services := &Services{
		Log: b.Logger,
		Portal: portal.NewPortalClient(
			cfg.Portal.BaseUrl,
			time.Duration(cfg.Portal.RequestTimeoutInSeconds)*time.Second,
			b.Logger,
		),
		Credentials: credentials.NewCredentialStore(b.Logger, redis.NewRedisRepository(b.Redis), cfg.Credential.KeyPrefix),
		Constraints: capture.Constraints{
			FacingMode:  cfg.Capture.FacingMode,
			Width:       cfg.Capture.Width,
			Height:      cfg.Capture.Height,
			JPEGQuality: cfg.Capture.JPEGQuality,
			MaxPixels:   cfg.Capture.MaxPixels,
		},
		DeviceDir: cfg.Capture.DeviceDir,
	}

	if b.Minio != nil {
		services.Archive = irisstorage.NewMinioIrisArchive(b.Logger, b.Minio, cfg.Minio.BucketName)
	}
	if b.RabbitMQ != nil {
		publisher, err := events.NewRabbitMQPublisher(b.Logger, b.RabbitMQ, cfg.RabbitMQ.AssessmentQueue)
		if err != nil {
			return nil, err
		}
		services.Events = publisher
	}
	if b.MongoDB != nil {
		services.Audit = audit.NewMongoAuditTrail(b.Logger, b.MongoDB, cfg.MongoDB.DBName)
	}
	return services, nil
}

// CaptureSession returns a fresh capture session over the configured frame
// directory, or nil when no capture device is configured.
func (s *Services) CaptureSession() contracts.CaptureSession {
	if s.DeviceDir == "" {
		return nil
	}
	return capture.NewMediaCaptureSession(s.Log, capture.NewDirectoryDevice(s.DeviceDir), s.Constraints)
}

// Dependencies builds the collaborators of one wizard session.
func (s *Services) Dependencies() wizard.Dependencies {
	return wizard.Dependencies{
		Log:         s.Log,
		Portal:      s.Portal,
		Credentials: s.Credentials,
		Capture:     s.CaptureSession(),
		Archive:     s.Archive,
		Events:      s.Events,
		Audit:       s.Audit,
	}
}
