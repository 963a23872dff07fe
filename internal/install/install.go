package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"releaseinstallergo/internal/logger"
	"releaseinstallergo/internal/releases"
	"releaseinstallergo/internal/selector"
)

// Installer wires the collaborators of one install run.
type Installer struct {
	Source   releases.Source
	Prompt   selector.Prompt
	Packages PackageInstaller
	Archives ArchiveExtractor
	WorkDir  string
	BinDir   string
	Out      io.Writer
}

// Result describes what an install run did.
type Result struct {
	Release  releases.Release
	Asset    releases.Asset
	Strategy Strategy
	// Path is where the asset ended up: the bin dir entry for binaries, the
	// download path otherwise (removed for package and archive strategies).
	Path string
}

// Run installs one asset of repo chosen interactively.
func (i *Installer) Run(ctx context.Context, repo releases.Repo) (Result, error) {
	var res Result

	rels, err := i.Source.ListReleases(ctx, repo)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrRequestFailure, err)
	}
	if len(rels) == 0 {
		return res, fmt.Errorf("%s: %w", repo, ErrNoReleases)
	}

	tag, err := i.Prompt.Select(ctx, "release", tagLabels(rels))
	if err != nil {
		return res, fmt.Errorf("select release: %w", err)
	}
	if res.Release, err = FindRelease(rels, tag); err != nil {
		return res, err
	}
	if len(res.Release.Assets) == 0 {
		return res, fmt.Errorf("%s %s: %w", repo, res.Release.TagName, ErrNoAssets)
	}

	name, err := i.Prompt.Select(ctx, "asset", assetLabels(res.Release))
	if err != nil {
		return res, fmt.Errorf("select asset: %w", err)
	}
	if res.Asset, err = FindAsset(res.Release, name); err != nil {
		return res, err
	}

	res.Path = filepath.Join(i.WorkDir, res.Asset.Name)
	logger.Log.Info("downloading asset", "repo", repo.String(), "tag", res.Release.TagName, "asset", res.Asset.Name, "path", res.Path)
	if err := i.Source.DownloadAsset(ctx, repo, res.Release.TagName, res.Asset, res.Path); err != nil {
		return res, fmt.Errorf("%w: %w", ErrDownloadFailure, err)
	}

	res.Strategy = Classify(res.Asset.Name)
	dest, err := i.Dispatch(ctx, res.Strategy, res.Path)
	res.Path = dest
	return res, err
}

// Dispatch applies strategy to the downloaded file at path and returns where
// the file ended up.
//
// Package and archive strategies always remove the file afterwards, whatever
// the external tool reported.
func (i *Installer) Dispatch(ctx context.Context, strategy Strategy, path string) (string, error) {
	name := filepath.Base(path)

	switch strategy {
	case StrategyPackage:
		i.printf("Installing %s using dpkg\n", name)
		i.toolResult("install package", path, i.Packages.InstallPackage(ctx, path))
	case StrategyArchive:
		i.printf("Extracting %s using tar\n", name)
		i.toolResult("extract archive", path, i.Archives.ExtractArchive(ctx, path))
	case StrategyZip:
		return path, fmt.Errorf("extract %s: zip archives: %w", name, ErrUnimplementedStrategy)
	case StrategyBinary:
		i.printf("No file extension: assuming binary\n")
		return i.placeBinary(path)
	default:
		i.printf("Unknown file extension: not handled automatically\n")
		return path, nil
	}

	if err := os.Remove(path); err != nil {
		return path, fmt.Errorf("remove %s: %w", name, err)
	}
	return path, nil
}

// toolResult logs an external tool failure. The failure does not stop cleanup.
func (i *Installer) toolResult(action, path string, err error) {
	if err == nil {
		return
	}
	logger.Log.Warn(action, "path", path, "err", fmt.Errorf("%w: %w", ErrExternalTool, err))
}

// placeBinary moves path into the bin dir under the same name. File mode is kept.
func (i *Installer) placeBinary(path string) (string, error) {
	if err := os.MkdirAll(i.BinDir, 0o755); err != nil {
		return path, fmt.Errorf("create %s: %w", i.BinDir, err)
	}
	dest := filepath.Join(i.BinDir, filepath.Base(path))

	err := rename(path, dest)
	if err == nil {
		return dest, nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return path, fmt.Errorf("move to %s: %w", i.BinDir, err)
	}

	// bin dir on another filesystem
	if err := copyFile(path, dest); err != nil {
		return path, fmt.Errorf("copy to %s: %w", i.BinDir, err)
	}
	if err := os.Remove(path); err != nil {
		return dest, fmt.Errorf("remove %s: %w", path, err)
	}
	return dest, nil
}

// rename is swapped in tests to simulate a bin dir on another filesystem.
var rename = os.Rename

// copyFile replaces dst with a copy of src carrying the same permission bits.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if err := os.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	// OpenFile mode is filtered by the umask
	if err := out.Chmod(info.Mode().Perm()); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func (i *Installer) printf(format string, args ...any) {
	if i.Out == nil {
		return
	}
	fmt.Fprintf(i.Out, format, args...)
}
