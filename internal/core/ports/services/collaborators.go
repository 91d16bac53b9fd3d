package services

import (
	"context"
	"mime/multipart"
)

// FileStoreSvc receives uploaded binary blobs and derives accessible paths.
type FileStoreSvc interface {
	// Save stores an uploaded file under a collision-free name and returns the
	// relative path recorded in the database (e.g. "images/<name>").
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)

	// Remove unlinks a previously stored file by its relative path.
	Remove(ctx context.Context, relPath string) error
}

// MailSenderSvc delivers account-recovery codes.
type MailSenderSvc interface {
	SendRecoveryCode(ctx context.Context, toEmail, code string) error
}
