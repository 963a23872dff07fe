package releases

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Source abstracts release listing and release asset downloads on a hosting service.
type Source interface {
	// ListReleases returns the releases of repo in the order the service reports them.
	ListReleases(ctx context.Context, repo Repo) ([]Release, error)

	// DownloadAsset writes asset, attached to the release tagged tag, to outPath.
	// An asset without ID is looked up by name in that release.
	DownloadAsset(ctx context.Context, repo Repo, tag string, asset Asset, outPath string) error
}

// Release is one entry of a repository release history.
// TagName and Assets drive selection; the other fields are carried as reported.
type Release struct {
	TagName     string
	Assets      []Asset
	Name        string
	Draft       bool
	Prerelease  bool
	PublishedAt time.Time
	HTMLURL     string
}

// Asset is one downloadable file attached to a release.
type Asset struct {
	ID          int64
	Name        string
	Size        int
	ContentType string
	DownloadURL string
}

// Repo identifies a repository in owner/name form.
type Repo struct {
	Owner string
	Name  string
}

func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepo parses an owner/name identifier.
func ParseRepo(s string) (Repo, error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return Repo{}, fmt.Errorf("invalid repository %q: expected owner/name", s)
	}
	return Repo{Owner: owner, Name: name}, nil
}
