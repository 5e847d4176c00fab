package contracts

import (
	"context"
)

type IrisArchive interface {
	ArchiveIrisImage(ctx context.Context, assessmentID, eye string, image []byte) (string, error)
}
