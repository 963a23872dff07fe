package install

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// PackageInstaller installs a local package file on the system.
type PackageInstaller interface {
	InstallPackage(ctx context.Context, path string) error
}

// ArchiveExtractor extracts a local archive next to it.
type ArchiveExtractor interface {
	ExtractArchive(ctx context.Context, path string) error
}

// Dpkg installs Debian packages with `dpkg --install`, prefixed by Elevate
// (e.g. "sudo") when set.
type Dpkg struct {
	Elevate string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

func (d Dpkg) InstallPackage(ctx context.Context, path string) error {
	name, args := "dpkg", []string{"--install", path}
	if d.Elevate != "" {
		name, args = d.Elevate, append([]string{"dpkg"}, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = orStd(d.Stdin, d.Stdout, d.Stderr)
	return cmd.Run()
}

// Tar extracts archives with `tar --extract --one-top-level`, in the archive's
// directory, so the content lands in a directory named after the archive.
type Tar struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (t Tar) ExtractArchive(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, "tar", "--extract", "--file", filepath.Base(path), "--one-top-level")
	cmd.Dir = filepath.Dir(path)
	_, cmd.Stdout, cmd.Stderr = orStd(nil, t.Stdout, t.Stderr)
	return cmd.Run()
}

func orStd(in io.Reader, out, errOut io.Writer) (io.Reader, io.Writer, io.Writer) {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return in, out, errOut
}
