package git

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/tsukasa-au/repoclone/internal/domain"
	"github.com/tsukasa-au/repoclone/internal/utils"
)

// GoGitCloner clones in-process with go-git. It is the fallback when no
// git binary is installed. Failures have no subprocess exit status and
// report as plain clone errors.
type GoGitCloner struct {
	logger *utils.Logger
}

// NewGoGitCloner creates a GoGitCloner.
func NewGoGitCloner(logger *utils.Logger) *GoGitCloner {
	return &GoGitCloner{logger: logger}
}

func (c *GoGitCloner) Name() string {
	return "go-git"
}

// Clone clones url into dir/dest. Mirror requests become a bare mirror
// clone, shallow requests truncate history to depth 1.
func (c *GoGitCloner) Clone(ctx context.Context, dir, url, dest string, opts domain.CloneOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	cloneOpts := &git.CloneOptions{
		URL:      url,
		Progress: os.Stdout,
	}
	if opts.Shallow {
		cloneOpts.Depth = 1
	}
	isBare := false
	if opts.Mirror {
		cloneOpts.Mirror = true
		isBare = true
	}

	if c.logger != nil {
		c.logger.Debug().
			Str("url", url).
			Str("dest", dest).
			Bool("mirror", opts.Mirror).
			Bool("shallow", opts.Shallow).
			Msg("cloning in-process")
	}

	path := filepath.Join(dir, filepath.FromSlash(dest))
	if _, err := git.PlainCloneContext(ctx, path, isBare, cloneOpts); err != nil {
		return domain.NewCloneError(url, 0, err)
	}
	return nil
}
