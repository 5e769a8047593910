package git

import (
	"context"

	"github.com/tsukasa-au/repoclone/internal/domain"
)

// Cloner defines the interface for running a single clone operation.
// dir is the working directory the clone runs in (the per-domain
// directory), url is the original clone URL, and dest is the
// destination path relative to dir.
type Cloner interface {
	Clone(ctx context.Context, dir, url, dest string, opts domain.CloneOptions) error
	Name() string
}
