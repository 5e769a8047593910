package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsukasa-au/repoclone/internal/domain"
)

// InstallBinLink symlinks target into binDir under the target's base
// name, creating binDir if needed. Re-linking the same target is a
// no-op; a link name occupied by anything else is an error.
func InstallBinLink(binDir, target string) (string, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("link target: %w", err)
	}

	if err := EnsurePath(binDir); err != nil {
		return "", err
	}

	linkPath := filepath.Join(binDir, filepath.Base(abs))
	if info, err := os.Lstat(linkPath); err == nil {
		if info.Mode()&os.ModeSymlink == 0 {
			return "", fmt.Errorf("%w: %s is not a symlink", domain.ErrLinkExists, linkPath)
		}
		existing, err := os.Readlink(linkPath)
		if err != nil {
			return "", err
		}
		if existing == abs {
			return linkPath, nil
		}
		return "", fmt.Errorf("%w: %s -> %s", domain.ErrLinkExists, linkPath, existing)
	} else if !os.IsNotExist(err) {
		return "", err
	}

	if err := os.Symlink(abs, linkPath); err != nil {
		return "", err
	}
	return linkPath, nil
}
