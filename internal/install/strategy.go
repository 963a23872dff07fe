package install

import "strings"

// Strategy is the way a downloaded asset gets installed.
type Strategy int

const (
	// StrategyUnhandled leaves the file where it was downloaded.
	StrategyUnhandled Strategy = iota
	// StrategyPackage installs a Debian package.
	StrategyPackage
	// StrategyArchive extracts a tar archive.
	StrategyArchive
	// StrategyZip extracts a zip archive. Not implemented.
	StrategyZip
	// StrategyBinary moves the file into the personal executable directory.
	StrategyBinary
)

func (s Strategy) String() string {
	switch s {
	case StrategyPackage:
		return "package"
	case StrategyArchive:
		return "archive"
	case StrategyZip:
		return "zip"
	case StrategyBinary:
		return "binary"
	default:
		return "unhandled"
	}
}

// Extension returns the part of name after its last dot, and false when name has no dot.
// The result is case-sensitive.
func Extension(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", false
	}
	return name[i+1:], true
}

// Classify picks the Strategy for a file name.
func Classify(name string) Strategy {
	ext, ok := Extension(name)
	if !ok {
		return StrategyBinary
	}
	switch ext {
	case "deb":
		return StrategyPackage
	case "tar", "gz", "tgz":
		return StrategyArchive
	case "zip":
		return StrategyZip
	default:
		return StrategyUnhandled
	}
}
