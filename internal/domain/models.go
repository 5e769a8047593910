package domain

// Identity is the decoded form of a clone URL: the normalized host plus the
// owner/project segments that determine where the repository lives on disk.
// It is constructed once by the classifier and never mutated.
type Identity struct {
	// Domain is the normalized hostname (leading "git"/"code" labels
	// stripped while more than two labels remain).
	Domain string

	// User is the owner or namespace segment. Empty for flat-namespace
	// hosts such as gists and Sourceforge projects.
	User string

	// Project is the repository path segment. May contain internal
	// slashes on nested-group hosts (e.g. "apps/libapps").
	Project string
}

// CompoundProject returns the destination-relative clone path:
// "user/project" when a user is present, otherwise just the project.
func (id Identity) CompoundProject() string {
	if id.User != "" {
		return id.User + "/" + id.Project
	}
	return id.Project
}

// CloneOptions carries the clone variants selected on the command line.
type CloneOptions struct {
	// Mirror requests a bare mirror clone replicating all refs.
	Mirror bool

	// Shallow truncates history to depth 1.
	Shallow bool
}

// Validate rejects option combinations that cannot be translated into a
// single git invocation.
func (o CloneOptions) Validate() error {
	if o.Mirror && o.Shallow {
		return ErrConflictingOptions
	}
	return nil
}
