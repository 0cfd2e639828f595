package storage

import (
	"bytes"
	"net/http"
	"strings"
)

// allowedMimeTypes are the upload content types the media library accepts.
var allowedMimeTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// AllowedMimeType reports whether the content type may be uploaded.
func AllowedMimeType(mimeType string) bool {
	return allowedMimeTypes[normalizeMime(mimeType)]
}

func normalizeMime(mimeType string) string {
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}

// SniffMimeType detects the content type from file bytes. SVG is plain text
// so http.DetectContentType cannot identify it; fall back to looking for the
// svg root element when sniffing reports a text type.
func SniffMimeType(content []byte) string {
	sniffed := normalizeMime(http.DetectContentType(content))
	if strings.HasPrefix(sniffed, "text/") && looksLikeSVG(content) {
		return "image/svg+xml"
	}
	return sniffed
}

func looksLikeSVG(content []byte) bool {
	head := content
	if len(head) > 1024 {
		head = head[:1024]
	}
	return bytes.Contains(bytes.ToLower(head), []byte("<svg"))
}
