package install

import (
	"errors"

	"releaseinstallergo/internal/selector"
)

var (
	// ErrRequestFailure is returned when the release listing call fails or returns unreadable data.
	ErrRequestFailure = errors.New("release request failed")

	// ErrNoReleases is returned when the repository has no release to choose from.
	ErrNoReleases = errors.New("repository has no releases")

	// ErrNoAssets is returned when the chosen release has no asset to choose from.
	ErrNoAssets = errors.New("release has no assets")

	// ErrSelectionAborted is returned when the user leaves a prompt without choosing.
	ErrSelectionAborted = selector.ErrAborted

	// ErrNotFound is returned when a chosen label matches no release or asset.
	ErrNotFound = errors.New("not found")

	// ErrDownloadFailure is returned when the asset could not be retrieved.
	ErrDownloadFailure = errors.New("download failed")

	// ErrUnimplementedStrategy is returned for zip archives, which are not extracted yet.
	ErrUnimplementedStrategy = errors.New("install strategy not implemented")

	// ErrExternalTool wraps a failing package installer or archive extractor.
	ErrExternalTool = errors.New("external tool failed")
)
