package download

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "normal filename", input: "document.pdf", expected: "document.pdf"},
		{name: "filename with spaces", input: "my document.pdf", expected: "my document.pdf"},
		{name: "path traversal with parent dirs", input: "../../../etc/passwd", expected: "passwd"},
		{name: "windows separators", input: "..\\..\\boot.ini", expected: "boot.ini"},
		{name: "absolute path", input: "/etc/passwd", expected: "passwd"},
		{name: "dot only", input: ".", expected: DefaultFilename},
		{name: "double dot", input: "..", expected: DefaultFilename},
		{name: "empty", input: "", expected: DefaultFilename},
		{name: "root", input: "/", expected: DefaultFilename},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestExtensionForMimeType(t *testing.T) {
	assert.Equal(t, ".html", ExtensionForMimeType("text/html; charset=utf-8"))
	assert.Equal(t, ".jpg", ExtensionForMimeType("image/jpeg"))
	assert.Equal(t, ".pdf", ExtensionForMimeType("application/pdf"))
	assert.Empty(t, ExtensionForMimeType(""))
	assert.Empty(t, ExtensionForMimeType("not a mime"))
	assert.Empty(t, ExtensionForMimeType("application/x-made-up-type"))
}

func TestFilenameFromURI(t *testing.T) {
	assert.Equal(t, "b.pdf", FilenameFromURI("https://example.com/a/b.pdf?x=1"))
	assert.Equal(t, DefaultFilename, FilenameFromURI("https://example.com/"))
	assert.Equal(t, DefaultFilename, FilenameFromURI(""))
}

func TestResolveFilename(t *testing.T) {
	t.Run("engine suggestion wins", func(t *testing.T) {
		assert.Equal(t, "report.pdf", ResolveFilename("report.pdf", "other.pdf", "https://e.com/x.zip", ""))
	})
	t.Run("falls back to response suggestion", func(t *testing.T) {
		assert.Equal(t, "other.pdf", ResolveFilename("", "other.pdf", "https://e.com/x.zip", ""))
	})
	t.Run("falls back to uri", func(t *testing.T) {
		assert.Equal(t, "x.zip", ResolveFilename("", "", "https://e.com/x.zip", ""))
	})
	t.Run("adds extension from mime type", func(t *testing.T) {
		assert.Equal(t, "index.html", ResolveFilename("index", "", "", "text/html"))
	})
	t.Run("keeps existing extension", func(t *testing.T) {
		assert.Equal(t, "data.csv", ResolveFilename("data.csv", "", "", "text/plain"))
	})
}

func TestMakeUniqueFilename(t *testing.T) {
	dir := "/tmp/downloads"
	existing := map[string]bool{
		filepath.Join(dir, "file.txt"):     true,
		filepath.Join(dir, "file_(1).txt"): true,
	}
	exists := func(path string) bool { return existing[path] }

	assert.Equal(t, "new.txt", MakeUniqueFilename(dir, "new.txt", exists))
	assert.Equal(t, "file_(2).txt", MakeUniqueFilename(dir, "file.txt", exists))
}

func TestMakeUniqueFilename_GivesUp(t *testing.T) {
	got := MakeUniqueFilename("/d", "f", func(string) bool { return true })
	assert.Equal(t, "f_(999)", got)
}
