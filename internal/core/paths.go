package core

import (
	"path/filepath"
	"strings"

	"pomgen/internal/types"
)

// RelativizePaths rewrites every path-valued descriptor field to be
// relative to the project root by stripping the root prefix. Strings
// that do not live under the root are left unchanged; absent fields
// stay absent. Pure string manipulation, no filesystem access.
func RelativizePaths(desc types.Descriptor) types.Descriptor {
	if desc.Root == "" {
		return desc
	}
	sep := string(filepath.Separator)
	prefix := strings.TrimSuffix(desc.Root, sep) + sep

	desc.TargetPath = relativize(desc.TargetPath, prefix)
	desc.CompilePath = relativize(desc.CompilePath, prefix)
	desc.SourcePaths = relativizeAll(desc.SourcePaths, prefix)
	desc.JavaSourcePaths = relativizeAll(desc.JavaSourcePaths, prefix)
	desc.TestPaths = relativizeAll(desc.TestPaths, prefix)
	desc.ResourcePaths = relativizeAll(desc.ResourcePaths, prefix)
	return desc
}

func relativize(path, prefix string) string {
	return strings.TrimPrefix(path, prefix)
}

func relativizeAll(paths []string, prefix string) []string {
	if len(paths) == 0 {
		return paths
	}
	out := make([]string, len(paths))
	for i, path := range paths {
		out[i] = relativize(path, prefix)
	}
	return out
}
