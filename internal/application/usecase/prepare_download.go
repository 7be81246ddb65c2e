// Package usecase holds the application-level orchestration shared by the
// bridges and the CLI host.
package usecase

import (
	"context"
	"path/filepath"

	"github.com/bnema/webshim/internal/application/port"
	"github.com/bnema/webshim/internal/domain/download"
	"github.com/bnema/webshim/internal/logging"
)

// PrepareDownloadInput contains the inputs for preparing a download destination.
type PrepareDownloadInput struct {
	// SuggestedFilename is the filename suggested by the engine.
	SuggestedFilename string
	// Response provides additional metadata (MIME type, URI) for filename resolution.
	// May be nil if not available.
	Response port.DownloadResponse
	// DownloadDir is the directory where downloads should be saved.
	DownloadDir string
}

// PrepareDownloadOutput contains the proposed download destination.
type PrepareDownloadOutput struct {
	Filename        string
	DestinationPath string
}

// PrepareDownloadUseCase turns an engine filename suggestion into the path
// proposed to the host's path-decision callback.
type PrepareDownloadUseCase struct {
	fs port.FileSystem
}

// NewPrepareDownloadUseCase creates a new PrepareDownloadUseCase.
// If fs is nil, filename deduplication is disabled.
func NewPrepareDownloadUseCase(fs port.FileSystem) *PrepareDownloadUseCase {
	return &PrepareDownloadUseCase{fs: fs}
}

// Execute resolves the download filename and destination path.
func (u *PrepareDownloadUseCase) Execute(ctx context.Context, input PrepareDownloadInput) *PrepareDownloadOutput {
	log := logging.FromContext(ctx)

	var responseName, uri, mimeType string
	if input.Response != nil {
		responseName = input.Response.GetSuggestedFilename()
		uri = input.Response.GetUri()
		mimeType = input.Response.GetMimeType()
	}

	name := download.ResolveFilename(input.SuggestedFilename, responseName, uri, mimeType)

	if u.fs != nil {
		name = download.MakeUniqueFilename(input.DownloadDir, name, func(path string) bool {
			exists, err := u.fs.Exists(ctx, path)
			return err == nil && exists
		})
	}

	destPath := filepath.Join(input.DownloadDir, name)

	log.Debug().
		Str("suggested", input.SuggestedFilename).
		Str("resolved", name).
		Str("destPath", destPath).
		Msg("prepared download destination")

	return &PrepareDownloadOutput{
		Filename:        name,
		DestinationPath: destPath,
	}
}
