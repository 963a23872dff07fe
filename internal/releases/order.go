package releases

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/mod/semver"
)

// Release orderings accepted by Ordered.
const (
	OrderService = "service"
	OrderVersion = "version"
)

type orderedSource struct {
	Source
}

// Ordered wraps src so that ListReleases sorts releases newest version first
// when order is OrderVersion. Any other order returns src unchanged.
func Ordered(src Source, order string) Source {
	if order != OrderVersion {
		return src
	}
	return orderedSource{Source: src}
}

func (s orderedSource) ListReleases(ctx context.Context, repo Repo) ([]Release, error) {
	releases, err := s.Source.ListReleases(ctx, repo)
	if err != nil {
		return nil, err
	}
	SortByVersion(releases)
	return releases, nil
}

// SortByVersion sorts releases newest semantic version first. A leading "v" is
// optional. Tags that are not semantic versions keep their relative order after
// every versioned tag.
func SortByVersion(releases []Release) {
	slices.SortStableFunc(releases, func(a, b Release) int {
		va, vb := canonical(a.TagName), canonical(b.TagName)
		switch {
		case va == "" && vb == "":
			return 0
		case va == "":
			return 1
		case vb == "":
			return -1
		}
		return semver.Compare(vb, va)
	})
}

func canonical(tag string) string {
	tag = strings.TrimSpace(tag)
	if !strings.HasPrefix(tag, "v") && !strings.HasPrefix(tag, "V") {
		tag = "v" + tag
	}
	tag = "v" + tag[1:]
	if !semver.IsValid(tag) {
		return ""
	}
	return tag
}
