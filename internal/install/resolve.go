package install

import (
	"fmt"

	"releaseinstallergo/internal/releases"
)

// FindRelease returns the first release tagged tag.
func FindRelease(rels []releases.Release, tag string) (releases.Release, error) {
	for _, r := range rels {
		if r.TagName == tag {
			return r, nil
		}
	}
	return releases.Release{}, fmt.Errorf("release %q: %w", tag, ErrNotFound)
}

// FindAsset returns the first asset of release named name.
func FindAsset(release releases.Release, name string) (releases.Asset, error) {
	for _, a := range release.Assets {
		if a.Name == name {
			return a, nil
		}
	}
	return releases.Asset{}, fmt.Errorf("asset %q in release %q: %w", name, release.TagName, ErrNotFound)
}

func tagLabels(rels []releases.Release) []string {
	labels := make([]string, 0, len(rels))
	for _, r := range rels {
		labels = append(labels, r.TagName)
	}
	return labels
}

func assetLabels(release releases.Release) []string {
	labels := make([]string, 0, len(release.Assets))
	for _, a := range release.Assets {
		labels = append(labels, a.Name)
	}
	return labels
}
