// Package download holds the domain rules for download sessions and
// destination filenames.
package download

import (
	"fmt"
	"mime"
	"net/url"
	"path/filepath"
	"strings"
)

// DefaultFilename is used when no valid filename can be determined.
const DefaultFilename = "download"

// maxUniqueAttempts bounds the _(N) suffix search in MakeUniqueFilename.
const maxUniqueAttempts = 999

// canonicalExtensions pins extensions whose stdlib lookup depends on the
// system MIME database ordering.
var canonicalExtensions = map[string]string{
	"text/html":                ".html",
	"text/plain":               ".txt",
	"text/xml":                 ".xml",
	"image/jpeg":               ".jpg",
	"image/svg+xml":            ".svg",
	"audio/mpeg":               ".mp3",
	"video/mp4":                ".mp4",
	"application/octet-stream": ".bin",
}

// SanitizeFilename reduces name to a bare file name that cannot escape the
// download directory. Both slash styles count as separators.
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	switch base {
	case "", ".", "..", "/":
		return DefaultFilename
	}
	return base
}

// ExtensionForMimeType returns a file extension for a MIME type, or "".
// Parameters such as "; charset=binary" are ignored.
func ExtensionForMimeType(mimeType string) string {
	if mimeType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return ""
	}
	if ext, ok := canonicalExtensions[mediaType]; ok {
		return ext
	}
	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}

// FilenameFromURI returns the last path segment of uri.
func FilenameFromURI(uri string) string {
	if uri == "" {
		return DefaultFilename
	}
	path := uri
	if parsed, err := url.Parse(uri); err == nil {
		path = parsed.Path
	}
	return SanitizeFilename(path)
}

// ResolveFilename picks a safe filename from, in order: the engine's
// suggestion, the response's suggestion, the response URI. An extension is
// appended from mimeType when the result has none.
func ResolveFilename(suggested, responseSuggested, uri, mimeType string) string {
	var name string
	switch {
	case suggested != "":
		name = SanitizeFilename(suggested)
	case responseSuggested != "":
		name = SanitizeFilename(responseSuggested)
	default:
		name = FilenameFromURI(uri)
	}

	if filepath.Ext(name) == "" {
		name += ExtensionForMimeType(mimeType)
	}
	return name
}

// MakeUniqueFilename appends _(N) to filename until exists reports false for
// the joined path. It gives up after maxUniqueAttempts and returns the last
// candidate.
func MakeUniqueFilename(dir, filename string, exists func(path string) bool) string {
	if !exists(filepath.Join(dir, filename)) {
		return filename
	}

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	candidate := filename
	for i := 1; i <= maxUniqueAttempts; i++ {
		candidate = fmt.Sprintf("%s_(%d)%s", stem, i, ext)
		if !exists(filepath.Join(dir, candidate)) {
			break
		}
	}
	return candidate
}
