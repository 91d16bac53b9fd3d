package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UniqueUploadFilename derives a collision-free filename for an uploaded file:
// spaces are stripped from the original name and a uuid is inserted before the
// extension, e.g. "my photo.png" -> "myphoto-<uuid>.png".
func UniqueUploadFilename(originalName string) string {
	cleaned := strings.ReplaceAll(originalName, " ", "")
	ext := filepath.Ext(cleaned)
	base := strings.TrimSuffix(filepath.Base(cleaned), ext)
	return base + "-" + uuid.NewString() + ext
}
