package git

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/tsukasa-au/repoclone/internal/domain"
	"github.com/tsukasa-au/repoclone/internal/utils"
)

// lookPath allows tests to fake binary resolution
var lookPath = exec.LookPath

// ExecCloner runs the system git binary as a subprocess. The subprocess
// inherits this process's stdio streams so git's own progress output
// reaches the terminal unfiltered, and its exit status is carried back
// verbatim in a CloneError.
type ExecCloner struct {
	binary string
	logger *utils.Logger
}

// NewExecCloner creates an ExecCloner spawning the given binary.
func NewExecCloner(binary string, logger *utils.Logger) *ExecCloner {
	if binary == "" {
		binary = "git"
	}
	return &ExecCloner{binary: binary, logger: logger}
}

func (c *ExecCloner) Name() string {
	return "exec"
}

// Clone spawns `git clone` in dir and waits for it to finish. Mirror and
// shallow requests translate to --mirror and --depth 1.
func (c *ExecCloner) Clone(ctx context.Context, dir, url, dest string, opts domain.CloneOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	args := cloneArgs(url, dest, opts)
	if c.logger != nil {
		c.logger.Debug().
			Str("binary", c.binary).
			Str("dir", dir).
			Strs("args", args).
			Msg("spawning git")
	}

	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return domain.NewCloneError(url, exitErr.ExitCode(), err)
		}
		return domain.NewCloneError(url, 0, err)
	}
	return nil
}

// cloneArgs translates clone options into git command-line arguments.
func cloneArgs(url, dest string, opts domain.CloneOptions) []string {
	args := []string{"clone"}
	if opts.Mirror {
		args = append(args, "--mirror")
	}
	if opts.Shallow {
		args = append(args, "--depth", "1")
	}
	return append(args, "--", url, dest)
}
