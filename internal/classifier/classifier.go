// Package classifier decomposes heterogeneous git clone URLs into a
// normalized repository identity. Classification is an ordered cascade of
// anchored regular expressions: the first rule matching the whole URL wins,
// so more specific hosts (Sourceforge, googlesource, gists) are listed
// before the generic dotted-host shapes.
package classifier

import (
	"regexp"
	"strings"

	"github.com/tsukasa-au/repoclone/internal/domain"
)

// RewriteTable maps a URL scheme to a mapping from normalized domain to a
// canonical replacement domain. It is static configuration applied once per
// classification, never a network lookup.
type RewriteTable map[string]map[string]string

type hostRule struct {
	name    string
	pattern *regexp.Regexp
	extract func(m []string) domain.Identity
}

// Classifier matches clone URLs against its rule cascade.
type Classifier struct {
	rules    []hostRule
	rewrites RewriteTable
}

// Rule order is behavior: earlier, more specific rules must win over the
// later generic ones for the same input. Do not reorder.
var defaultRules = []hostRule{
	{
		name:    "sourceforge",
		pattern: regexp.MustCompile(`^(?:https?|git)://((?:git\.)?(?:code\.)?sf\.net)/p/([a-zA-Z0-9_-]+)/git$`),
		extract: func(m []string) domain.Identity {
			return domain.Identity{Domain: m[1], Project: m[2]}
		},
	},
	{
		name:    "googlesource",
		pattern: regexp.MustCompile(`^https://([a-zA-Z0-9-]+)\.googlesource\.com/([a-zA-Z0-9_/.-]+?)(?:\.git)?$`),
		extract: func(m []string) domain.Identity {
			// The subdomain is the namespace; the project keeps its
			// internal slashes (e.g. apps/libapps).
			return domain.Identity{Domain: "googlesource.com", User: m[1], Project: m[2]}
		},
	},
	{
		name:    "gist",
		pattern: regexp.MustCompile(`^https://(gist\.github\.com)/([a-zA-Z0-9]+)\.git$`),
		extract: func(m []string) domain.Identity {
			return domain.Identity{Domain: m[1], Project: m[2]}
		},
	},
	{
		name:    "git-prefixed host",
		pattern: regexp.MustCompile(`^(?:https?|git)://((?:git|code)\.[a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)+)/(?:([a-zA-Z0-9_.-]+)/)?((?:[a-zA-Z0-9_-]+/)?[a-zA-Z0-9_-]+)(?:\.git)?$`),
		extract: identityFromMatch,
	},
	{
		name:    "dotted host",
		pattern: regexp.MustCompile(`^(?:https?|git)://([a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)+)/(?:([a-zA-Z0-9_.-]+)/)?((?:[a-zA-Z0-9_-]+/)?[a-zA-Z0-9_-]+)\.git$`),
		extract: identityFromMatch,
	},
	{
		name:    "ssh shorthand",
		pattern: regexp.MustCompile(`^(?:git://)?(?:[a-zA-Z0-9_.-]+@)?([a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)+)[:/](?:([a-zA-Z0-9_.-]+)/)?([a-zA-Z0-9_-]+)\.git$`),
		extract: identityFromMatch,
	},
	{
		name:    "kernel.org",
		pattern: regexp.MustCompile(`^https://((?:[a-zA-Z0-9-]+\.)*kernel\.org)/(?:([a-zA-Z0-9_-]+)/)?((?:[a-zA-Z0-9_-]+/)?[a-zA-Z0-9_-]+?)(?:\.git)?$`),
		extract: identityFromMatch,
	},
}

func identityFromMatch(m []string) domain.Identity {
	return domain.Identity{Domain: m[1], User: m[2], Project: m[3]}
}

// New creates a Classifier with the default rule cascade and the given
// host rewrite table. A nil table means no rewrites.
func New(rewrites RewriteTable) *Classifier {
	return &Classifier{rules: defaultRules, rewrites: rewrites}
}

// Classify decodes rawURL into a repository identity. It returns a
// ClassifyError wrapping domain.ErrUnknownHost when no rule matches.
func (c *Classifier) Classify(rawURL string) (domain.Identity, error) {
	for _, rule := range c.rules {
		m := rule.pattern.FindStringSubmatch(rawURL)
		if m == nil {
			continue
		}

		id := rule.extract(m)
		id.Domain = NormalizeDomain(id.Domain)
		if hosts, ok := c.rewrites[Scheme(rawURL)]; ok {
			if canonical, ok := hosts[id.Domain]; ok {
				id.Domain = canonical
			}
		}
		return id, nil
	}

	return domain.Identity{}, domain.NewClassifyError(rawURL)
}

// NormalizeDomain strips leading "git" and "code" labels from a hostname,
// but never reduces it below two dot-separated labels:
// git.code.sf.net -> sf.net, code.videolan.org -> videolan.org,
// github.com -> github.com. Idempotent.
func NormalizeDomain(host string) string {
	labels := strings.Split(host, ".")
	for len(labels) > 2 && (labels[0] == "git" || labels[0] == "code") {
		labels = labels[1:]
	}
	return strings.Join(labels, ".")
}

// Scheme reports the URL scheme used for rewrite-table lookups. SSH
// shorthand URLs carry no explicit scheme and classify as "ssh".
func Scheme(rawURL string) string {
	if i := strings.Index(rawURL, "://"); i >= 0 {
		return rawURL[:i]
	}
	return "ssh"
}
