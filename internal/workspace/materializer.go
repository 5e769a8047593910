// Package workspace materializes decoded repository identities on disk:
// it builds the per-domain directory tree under the configured root and
// hands the actual clone to a git backend.
package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsukasa-au/repoclone/internal/domain"
	"github.com/tsukasa-au/repoclone/internal/git"
	"github.com/tsukasa-au/repoclone/internal/utils"
)

// Materializer places clones at <root>/<domain>/<compound project>.
type Materializer struct {
	root   string
	cloner git.Cloner
	logger *utils.Logger
}

// NewMaterializer creates a Materializer rooted at root.
func NewMaterializer(root string, cloner git.Cloner, logger *utils.Logger) *Materializer {
	return &Materializer{root: root, cloner: cloner, logger: logger}
}

// Root returns the destination tree root.
func (m *Materializer) Root() string {
	return m.root
}

// Clone validates opts, ensures every directory above the clone
// destination exists, and runs the clone with the per-domain directory
// as working directory and the compound project as the relative
// destination. The source passed to the backend is the original URL,
// never the decoded parts. Option conflicts abort before any filesystem
// mutation.
func (m *Materializer) Clone(ctx context.Context, id domain.Identity, url string, opts domain.CloneOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	domainDir := filepath.Join(m.root, id.Domain)
	compound := id.CompoundProject()

	// The clone itself creates the leaf; everything above it is ours.
	parent := domainDir
	segments := strings.Split(compound, "/")
	for _, seg := range segments[:len(segments)-1] {
		parent = filepath.Join(parent, seg)
	}
	if err := EnsurePath(parent); err != nil {
		return err
	}

	if m.logger != nil {
		m.logger.Info().
			Str("backend", m.cloner.Name()).
			Str("url", url).
			Str("dest", filepath.Join(domainDir, filepath.FromSlash(compound))).
			Msg("cloning")
	}

	return m.cloner.Clone(ctx, domainDir, url, compound, opts)
}

// EnsurePath creates every missing segment of path in root-to-leaf
// order. Existing directories are a no-op, so re-running over an
// already-built tree changes nothing.
func EnsurePath(path string) error {
	clean := filepath.Clean(path)
	var current string
	if filepath.IsAbs(clean) {
		current = string(filepath.Separator)
	}

	for _, seg := range strings.Split(clean, string(filepath.Separator)) {
		if seg == "" {
			continue
		}
		current = filepath.Join(current, seg)
		if err := os.Mkdir(current, 0755); err != nil && !os.IsExist(err) {
			return err
		}
	}
	return nil
}
