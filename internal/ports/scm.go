package ports

import "pomgen/internal/types"

// SCMPort resolves source-control metadata for the descriptor. A nil
// declaration requests best-effort inference from the version-control
// metadata directory; a nil result means nothing could be inferred and
// is not an error.
type SCMPort interface {
	Resolve(decl *types.SCMDecl, vcsDir string) *types.SCMInfo
}
