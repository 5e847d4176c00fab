package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"
	"wellness-wizard/internal/app/contracts"
	"wellness-wizard/internal/pkg/constvars"
	"wellness-wizard/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// objectPutter is the subset of *minio.Client used for archiving.
type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioIrisArchive struct {
	Log        *zap.Logger
	Client     objectPutter
	BucketName string
	now        func() time.Time
}

func NewMinioIrisArchive(logger *zap.Logger, minioClient *minio.Client, bucketName string) contracts.IrisArchive {
	return newMinioIrisArchive(logger, minioClient, bucketName)
}

func newMinioIrisArchive(logger *zap.Logger, client objectPutter, bucketName string) *minioIrisArchive {
	return &minioIrisArchive{
		Log:        logger,
		Client:     client,
		BucketName: bucketName,
		now:        time.Now,
	}
}

func irisObjectName(assessmentID, eye string, at time.Time) string {
	return fmt.Sprintf("assessments/%s/%s-eye-%d.jpg", assessmentID, eye, at.UnixNano())
}

func (m *minioIrisArchive) ArchiveIrisImage(ctx context.Context, assessmentID, eye string, image []byte) (string, error) {
	objectName := irisObjectName(assessmentID, eye, m.now())

	_, err := m.Client.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(image),
		int64(len(image)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMEImageJPEG,
			UserMetadata: map[string]string{
				"assessment-id": assessmentID,
				"eye":           eye,
			},
		},
	)
	if err != nil {
		m.Log.Error("minioIrisArchive.ArchiveIrisImage error",
			zap.String(constvars.LoggingBucketNameKey, m.BucketName),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	m.Log.Info("minioIrisArchive.ArchiveIrisImage succeeded",
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.String(constvars.LoggingEyeKey, eye),
		zap.String(constvars.LoggingObjectNameKey, objectName),
		zap.Int(constvars.LoggingPayloadSizeKey, len(image)),
	)
	return objectName, nil
}
