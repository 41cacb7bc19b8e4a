package manager

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRoot is returned when a tv root does not exist or cannot be read and written
	ErrMissingRoot = errors.New("tv root is missing or inaccessible")
	// ErrPermission is returned when a directory cannot be created or the episode cannot be moved
	ErrPermission = errors.New("permission denied")
	// ErrFailedDownload is returned for downloads the downloader marked as failed
	ErrFailedDownload = errors.New("download failed")
	// ErrNoEpisodeFile is returned when a download directory holds no candidate episode file
	ErrNoEpisodeFile = errors.New("no episode file found")
	// ErrTrashFallback is returned when a directory could neither be removed nor moved to the trash
	ErrTrashFallback = errors.New("failed to move directory to trash")
	// ErrLocked is returned when another placement holds the library lock for too long
	ErrLocked = errors.New("library is locked by another placement")
)

type WarningKind string

const (
	WarningDuplicate     WarningKind = "duplicate"
	WarningLowerQuality  WarningKind = "lower-quality"
	WarningRedundant     WarningKind = "redundant-removed"
	WarningMissing       WarningKind = "redundant-missing"
	WarningDeleteFailed  WarningKind = "delete-failed"
	WarningCleanupFailed WarningKind = "cleanup-failed"
	WarningTrash         WarningKind = "trash-fallback"
)

// Warning is a recoverable problem attached to a successful placement
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

func warnf(kind WarningKind, format string, args ...any) Warning {
	return Warning{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
