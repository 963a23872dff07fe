package releases

import (
	"context"
	"io"
	"net/http"

	"releaseinstallergo/internal/ghrel"

	"github.com/google/go-github/v63/github"
)

type gitHubSource struct {
	client     *github.Client
	httpClient *http.Client
	perPage    int
	progress   io.Writer
}

// GitHubOptions tunes NewGitHubSource.
type GitHubOptions struct {
	HTTPClient *http.Client
	APIURL     string
	Token      string
	PerPage    int
	// Progress receives the download progress bar; nil disables it.
	Progress io.Writer
}

// NewGitHubSource returns a releases.Source backed by internal/ghrel.
func NewGitHubSource(opts GitHubOptions) (Source, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = ghrel.NewHTTPClient()
	}
	client, err := ghrel.NewClient(httpClient, opts.APIURL, opts.Token)
	if err != nil {
		return nil, err
	}
	return gitHubSource{
		client:     client,
		httpClient: httpClient,
		perPage:    opts.PerPage,
		progress:   opts.Progress,
	}, nil
}

func (s gitHubSource) ListReleases(ctx context.Context, repo Repo) ([]Release, error) {
	releases, err := ghrel.ListReleases(ctx, s.client, repo.Owner, repo.Name, s.perPage)
	if err != nil {
		return nil, err
	}
	return toReleases(releases), nil
}

// downloadPerm is the mode of downloaded files; binaries are not made executable.
const downloadPerm = 0o644

func (s gitHubSource) DownloadAsset(ctx context.Context, repo Repo, tag string, asset Asset, outPath string) error {
	if asset.ID == 0 {
		return ghrel.DownloadReleaseAssetByTag(ctx, s.client, s.httpClient, repo.Owner, repo.Name, tag, asset.Name, outPath, downloadPerm, s.perPage, s.progress)
	}
	ra := &github.ReleaseAsset{
		ID:   github.Int64(asset.ID),
		Name: github.String(asset.Name),
		Size: github.Int(asset.Size),
	}
	return ghrel.DownloadReleaseAsset(ctx, s.client, s.httpClient, repo.Owner, repo.Name, ra, outPath, downloadPerm, s.progress)
}

func toReleases(releases []*github.RepositoryRelease) []Release {
	result := make([]Release, 0, len(releases))
	for _, release := range releases {
		if release == nil || release.TagName == nil {
			continue
		}
		r := Release{
			TagName:     release.GetTagName(),
			Assets:      make([]Asset, 0, len(release.Assets)),
			Name:        release.GetName(),
			Draft:       release.GetDraft(),
			Prerelease:  release.GetPrerelease(),
			PublishedAt: release.GetPublishedAt().Time,
			HTMLURL:     release.GetHTMLURL(),
		}

		for _, asset := range release.Assets {
			if asset == nil || asset.Name == nil {
				continue
			}
			r.Assets = append(r.Assets, Asset{
				ID:          asset.GetID(),
				Name:        asset.GetName(),
				Size:        asset.GetSize(),
				ContentType: asset.GetContentType(),
				DownloadURL: asset.GetBrowserDownloadURL(),
			})
		}

		result = append(result, r)
	}
	return result
}
