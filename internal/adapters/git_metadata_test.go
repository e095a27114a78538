package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"pomgen/internal/types"
)

func writeGitFixture(t *testing.T, commit, originURL string) string {
	t.Helper()
	gitDir := filepath.Join(t.TempDir(), ".git")
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "refs", "heads"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ref: refs/heads/main\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "refs", "heads", "main"), []byte(commit+"\n"), 0644))
	config := "[core]\n\trepositoryformatversion = 0\n" +
		"[remote \"origin\"]\n\turl = " + originURL + "\n\tfetch = +refs/heads/*:refs/remotes/origin/*\n" +
		"[branch \"main\"]\n\tremote = origin\n"
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "config"), []byte(config), 0644))
	return gitDir
}

func TestResolveInfersGitHubURLs(t *testing.T) {
	tests := []struct {
		name   string
		origin string
	}{
		{name: "ssh origin", origin: "git@github.com:foo/bar.git"},
		{name: "https origin", origin: "https://github.com/foo/bar.git"},
		{name: "https origin without suffix", origin: "https://github.com/foo/bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gitDir := writeGitFixture(t, "abc123", tt.origin)
			got := NewGitMetadataAdapter().Resolve(nil, gitDir)
			require.NotNil(t, got)

			want := &types.SCMInfo{
				Connection:          "git://github.com/foo/bar.git",
				DeveloperConnection: "ssh://git@github.com/foo/bar.git",
				Tag:                 "abc123",
				URL:                 "https://github.com/foo/bar",
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("unexpected scm info (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveDetachedHead(t *testing.T) {
	gitDir := filepath.Join(t.TempDir(), ".git")
	require.NoError(t, os.MkdirAll(gitDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("deadbeef\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "config"), []byte("[core]\n"), 0644))

	got := NewGitMetadataAdapter().Resolve(nil, gitDir)
	require.NotNil(t, got)
	require.Equal(t, "deadbeef", got.Tag)
}

func TestResolveNonGitHubOriginYieldsNoURLs(t *testing.T) {
	gitDir := writeGitFixture(t, "abc123", "git@gitlab.example.org:foo/bar.git")
	got := NewGitMetadataAdapter().Resolve(nil, gitDir)
	require.NotNil(t, got)
	require.Equal(t, "abc123", got.Tag)
	require.Empty(t, got.Connection)
	require.Empty(t, got.DeveloperConnection)
	require.Empty(t, got.URL)
}

func TestResolveMissingMetadataYieldsNothing(t *testing.T) {
	// No vcs directory at all.
	got := NewGitMetadataAdapter().Resolve(nil, filepath.Join(t.TempDir(), ".git"))
	require.Nil(t, got)

	// HEAD present but config missing.
	gitDir := filepath.Join(t.TempDir(), ".git")
	require.NoError(t, os.MkdirAll(gitDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("deadbeef\n"), 0644))
	got = NewGitMetadataAdapter().Resolve(nil, gitDir)
	require.Nil(t, got)
}

func TestResolvePassesExplicitDeclarationThrough(t *testing.T) {
	decl := &types.SCMDecl{
		Connection: "git://example.org/widget.git",
		URL:        "https://example.org/widget",
	}
	got := NewGitMetadataAdapter().Resolve(decl, "ignored")
	require.NotNil(t, got)

	want := &types.SCMInfo{
		Connection: "git://example.org/widget.git",
		Tag:        "auto",
		URL:        "https://example.org/widget",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected scm info (-want +got):\n%s", diff)
	}
}

func TestParseGitHubOrigin(t *testing.T) {
	user, repo, ok := parseGitHubOrigin("git@github.com:foo/bar.git")
	require.True(t, ok)
	require.Equal(t, "foo", user)
	require.Equal(t, "bar", repo)

	_, _, ok = parseGitHubOrigin("https://example.org/foo/bar.git")
	require.False(t, ok)

	_, _, ok = parseGitHubOrigin("not a url")
	require.False(t, ok)
}
