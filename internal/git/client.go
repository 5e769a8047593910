package git

import (
	"fmt"

	"github.com/tsukasa-au/repoclone/internal/config"
	"github.com/tsukasa-au/repoclone/internal/domain"
	"github.com/tsukasa-au/repoclone/internal/utils"
)

// NewCloner selects a clone backend from configuration. "auto" prefers
// the git subprocess and falls back to go-git when no binary is on PATH.
func NewCloner(cfg config.GitConfig, logger *utils.Logger) (Cloner, error) {
	switch cfg.Backend {
	case config.BackendGit:
		if _, err := lookPath(cfg.Binary); err != nil {
			return nil, fmt.Errorf("%w: %q not on PATH", domain.ErrGitNotFound, cfg.Binary)
		}
		return NewExecCloner(cfg.Binary, logger), nil
	case config.BackendGoGit:
		return NewGoGitCloner(logger), nil
	case config.BackendAuto, "":
		if _, err := lookPath(cfg.Binary); err == nil {
			return NewExecCloner(cfg.Binary, logger), nil
		}
		if logger != nil {
			logger.Debug().Str("binary", cfg.Binary).Msg("git binary not found, using go-git")
		}
		return NewGoGitCloner(logger), nil
	default:
		return nil, fmt.Errorf("unknown git backend %q", cfg.Backend)
	}
}
