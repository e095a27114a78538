package adapters

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"pomgen/internal/ports"
	"pomgen/internal/types"
)

// GitMetadataAdapter recovers the current commit and the remote origin
// URLs from a local git metadata directory. Inference is best-effort:
// missing metadata yields no SCM info rather than an error.
type GitMetadataAdapter struct{}

func NewGitMetadataAdapter() GitMetadataAdapter {
	return GitMetadataAdapter{}
}

var (
	headRefPattern  = regexp.MustCompile(`^ref:\s+(\S+)`)
	remoteURLLine   = regexp.MustCompile(`^\s*url\s*=\s*(\S+)`)
	githubSSHOrigin = regexp.MustCompile(`^git@github\.com:([^/]+)/(.+?)(?:\.git)?$`)
	githubURLOrigin = regexp.MustCompile(`^[a-zA-Z+]+://(?:git@)?github\.com/([^/]+)/(.+?)(?:\.git)?$`)
)

// Resolve returns SCM info for the descriptor. An explicit declaration
// passes through unchanged, its tag defaulting to "auto"; a nil
// declaration triggers git-metadata inference against vcsDir.
func (a GitMetadataAdapter) Resolve(decl *types.SCMDecl, vcsDir string) *types.SCMInfo {
	if decl != nil {
		info := types.SCMInfo{
			Connection:          decl.Connection,
			DeveloperConnection: decl.DeveloperConnection,
			Tag:                 decl.Tag,
			URL:                 decl.URL,
		}
		if info.Tag == "" {
			info.Tag = "auto"
		}
		return &info
	}

	head, ok := a.readHead(vcsDir)
	if !ok {
		return nil
	}
	origin, ok := a.readOriginURL(vcsDir)
	if !ok {
		return nil
	}
	info := types.SCMInfo{Tag: head}
	if user, repo, ok := parseGitHubOrigin(origin); ok {
		info.Connection = "git://github.com/" + user + "/" + repo + ".git"
		info.DeveloperConnection = "ssh://git@github.com/" + user + "/" + repo + ".git"
		info.URL = "https://github.com/" + user + "/" + repo
	}
	return &info
}

// readHead returns the current commit id, following a symbolic HEAD
// reference one level when present.
func (a GitMetadataAdapter) readHead(vcsDir string) (string, bool) {
	content, ok := a.readFile(filepath.Join(vcsDir, "HEAD"))
	if !ok {
		return "", false
	}
	if m := headRefPattern.FindStringSubmatch(content); m != nil {
		ref, ok := a.readFile(filepath.Join(vcsDir, m[1]))
		if !ok {
			return "", false
		}
		return strings.TrimSpace(ref), true
	}
	return strings.TrimSpace(content), true
}

// readOriginURL scans the git config for the url line of the
// [remote "origin"] section. The second return is false only when the
// config file itself is unavailable; a config without an origin remote
// yields an empty URL.
func (a GitMetadataAdapter) readOriginURL(vcsDir string) (string, bool) {
	content, ok := a.readFile(filepath.Join(vcsDir, "config"))
	if !ok {
		return "", false
	}
	inOrigin := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == `[remote "origin"]` {
			inOrigin = true
			continue
		}
		if strings.HasPrefix(trimmed, "[") {
			inOrigin = false
			continue
		}
		if !inOrigin {
			continue
		}
		if m := remoteURLLine.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", true
}

// readFile suppresses missing-file failures. Any other read error is
// logged and likewise treated as absent metadata, so inference never
// propagates an I/O error.
func (a GitMetadataAdapter) readFile(path string) (string, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("unreadable git metadata")
		}
		return "", false
	}
	return string(content), true
}

// parseGitHubOrigin recognizes the SSH and URL forms of a GitHub remote
// and extracts its user and repository names.
func parseGitHubOrigin(origin string) (user, repo string, ok bool) {
	for _, pattern := range []*regexp.Regexp{githubSSHOrigin, githubURLOrigin} {
		if m := pattern.FindStringSubmatch(origin); m != nil {
			return m[1], m[2], true
		}
	}
	return "", "", false
}

var _ ports.SCMPort = GitMetadataAdapter{}
