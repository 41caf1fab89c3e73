package service

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// imageKey builds the blob store reference path for an uploaded image. A
// fresh random segment keeps re-uploads from colliding; the original
// extension is kept so the content type survives the round trip.
func imageKey(prefix string, entityID uuid.UUID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s/%s%s", prefix, entityID, uuid.New(), ext)
}

// imageContentType derives a content type from the reference path extension.
func imageContentType(key string) string {
	if ct := mime.TypeByExtension(filepath.Ext(key)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
