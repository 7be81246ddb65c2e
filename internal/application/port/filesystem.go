package port

import "context"

// FileSystem provides file system queries for the application layer.
type FileSystem interface {
	Exists(ctx context.Context, path string) (bool, error)
	IsDirectory(ctx context.Context, path string) (bool, error)
}
