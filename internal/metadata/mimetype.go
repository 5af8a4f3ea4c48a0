package metadata

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// detectMimeType sniffs the MIME type of a response body from its magic numbers
func detectMimeType(body []byte) string {
	return mimetype.Detect(body).String()
}

// isMediaMimeType reports whether the MIME type is an image, video or audio payload
func isMediaMimeType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/") ||
		strings.HasPrefix(mimeType, "video/") ||
		strings.HasPrefix(mimeType, "audio/")
}
