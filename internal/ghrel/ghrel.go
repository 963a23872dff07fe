package ghrel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-github/v63/github"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/schollz/progressbar/v3"
)

// DefaultAPIURL is the public GitHub REST endpoint.
const DefaultAPIURL = "https://api.github.com/"

// NewHTTPClient returns the HTTP client used for API calls and asset downloads.
// It carries no request-wide timeout since asset sizes are unbounded.
func NewHTTPClient() *http.Client {
	return cleanhttp.DefaultClient()
}

// NewClient builds a GitHub client on top of httpClient.
// A non-default apiURL is treated as a GitHub Enterprise base URL.
// If githubToken is provided, it is used for authentication and rate-limit relief.
func NewClient(httpClient *http.Client, apiURL, githubToken string) (*github.Client, error) {
	client := github.NewClient(httpClient)
	if apiURL != "" && strings.TrimRight(apiURL, "/") != strings.TrimRight(DefaultAPIURL, "/") {
		var err error
		if client, err = client.WithEnterpriseURLs(apiURL, apiURL); err != nil {
			return nil, fmt.Errorf("api url: %w", err)
		}
	}
	if githubToken != "" {
		client = client.WithAuthToken(githubToken)
	}
	return client, nil
}

// ListReleases fetches a single page of releases for owner/repo, in the order
// the API reports them. No further pages are requested.
func ListReleases(ctx context.Context, client *github.Client, owner, repo string, perPage int) ([]*github.RepositoryRelease, error) {
	opts := &github.ListOptions{PerPage: perPage}
	releases, _, err := client.Repositories.ListReleases(ctx, owner, repo, opts)
	if err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}
	return releases, nil
}

// GetReleaseByTag fetches release metadata for a specific tag.
//
// The by-tag endpoint does not serve draft releases, so on a 404 the first page
// of the release listing (perPage entries) is searched for the tag instead.
func GetReleaseByTag(ctx context.Context, client *github.Client, owner, repo, tag string, perPage int) (*github.RepositoryRelease, error) {
	rel, _, err := client.Repositories.GetReleaseByTag(ctx, owner, repo, tag)
	if err == nil {
		return rel, nil
	}
	var ghErr *github.ErrorResponse
	if !errors.As(err, &ghErr) || ghErr.Response == nil || ghErr.Response.StatusCode != http.StatusNotFound {
		return nil, fmt.Errorf("fetch release metadata: %w", err)
	}

	listed, lerr := ListReleases(ctx, client, owner, repo, perPage)
	if lerr != nil {
		return nil, fmt.Errorf("fetch release metadata: %w", lerr)
	}
	for _, r := range listed {
		if r.GetTagName() == tag {
			return r, nil
		}
	}
	return nil, fmt.Errorf("fetch release metadata: %w", err)
}

// FindAsset returns the first asset of rel named assetName.
func FindAsset(rel *github.RepositoryRelease, assetName string) (*github.ReleaseAsset, error) {
	for _, a := range rel.Assets {
		if a.GetName() == assetName {
			return a, nil
		}
	}
	return nil, fmt.Errorf("asset %q not found in release %q", assetName, rel.GetTagName())
}

// DownloadToWriter streams the asset content into w. Redirects to the storage
// backend are followed with httpClient. When progress is non-nil a byte
// progress bar sized after the asset is rendered on it.
func DownloadToWriter(
	ctx context.Context,
	client *github.Client,
	httpClient *http.Client,
	owner, repo string,
	asset *github.ReleaseAsset,
	w io.Writer,
	progress io.Writer,
) error {
	rc, _, err := client.Repositories.DownloadReleaseAsset(ctx, owner, repo, asset.GetID(), httpClient)
	if err != nil {
		return fmt.Errorf("download asset: %w", err)
	}
	defer rc.Close()

	if progress != nil {
		bar := progressbar.NewOptions64(int64(asset.GetSize()),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription(asset.GetName()),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Close()
		w = io.MultiWriter(w, bar)
	}

	if _, err := io.Copy(w, rc); err != nil {
		return fmt.Errorf("stream asset: %w", err)
	}
	return nil
}

// WriteFileAtomically streams write into a temporary file next to outPath,
// gives it perm and renames it over outPath. Nothing is left at outPath, nor
// next to it, when write fails.
func WriteFileAtomically(outPath string, perm os.FileMode, write func(f *os.File) error) (err error) {
	if outPath == "" {
		return errors.New("outPath is empty")
	}

	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(outPath)+".part-*")
	if err != nil {
		return fmt.Errorf("create part file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := write(tmp); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod part file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close part file: %w", err)
	}
	if err := os.Rename(tmp.Name(), outPath); err != nil {
		return fmt.Errorf("rename part file: %w", err)
	}
	return nil
}

// DownloadReleaseAsset writes asset to outPath with mode perm.
func DownloadReleaseAsset(
	ctx context.Context,
	client *github.Client,
	httpClient *http.Client,
	owner, repo string,
	asset *github.ReleaseAsset,
	outPath string,
	perm os.FileMode,
	progress io.Writer,
) error {
	if outPath == "" {
		outPath = asset.GetName()
	}
	return WriteFileAtomically(outPath, perm, func(f *os.File) error {
		return DownloadToWriter(ctx, client, httpClient, owner, repo, asset, f, progress)
	})
}

// DownloadReleaseAssetByTag downloads the asset named assetName of the release
// tagged tag and writes it to outPath with mode perm.
//
// If outPath is empty, assetName is used as the destination filename.
func DownloadReleaseAssetByTag(
	ctx context.Context,
	client *github.Client,
	httpClient *http.Client,
	owner, repo, tag, assetName, outPath string,
	perm os.FileMode,
	perPage int,
	progress io.Writer,
) error {
	if outPath == "" && assetName == "" {
		return errors.New("outPath is empty")
	}

	rel, err := GetReleaseByTag(ctx, client, owner, repo, tag, perPage)
	if err != nil {
		return err
	}

	asset, err := FindAsset(rel, assetName)
	if err != nil {
		return fmt.Errorf("resolve asset: %w", err)
	}

	return DownloadReleaseAsset(ctx, client, httpClient, owner, repo, asset, outPath, perm, progress)
}
