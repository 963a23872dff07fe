// Package ghrel provides the GitHub REST plumbing used by the release source.
// It lists the releases of a repository, looks up a release by tag and one of
// its assets by name, and streams an asset to disk through an atomic rename.
package ghrel
