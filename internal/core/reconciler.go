package core

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"dario.cat/mergo"
	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pomgen/internal/types"
)

// SnapshotMarker is the substring Maven uses to mark unreleased
// versions. The release-hygiene guard keys off it.
const SnapshotMarker = "SNAPSHOT"

// testProfileNames are the overlays merged into the test-scope view in
// addition to any profiles the caller includes explicitly.
var testProfileNames = []string{types.ProfileDev, types.ProfileTest, types.ProfileDefault}

// Views holds the two descriptor scopes the transformer consumes plus
// the merged dependency list destined for the dependencies section.
type Views struct {
	Release      types.Descriptor
	Test         types.Descriptor
	Dependencies []types.Dependency
}

type Reconciler struct{}

func NewReconciler() Reconciler {
	return Reconciler{}
}

// Reconcile builds the release and test views of the descriptor, merges
// and rescopes the dependency lists, and enforces the snapshot guard.
// allowSnapshots disables the guard; the caller threads it in so the
// engine never reads the process environment itself.
func (r Reconciler) Reconcile(ctx context.Context, desc types.Descriptor, include []string, allowSnapshots bool) (Views, error) {
	assert.NotEmpty(ctx, desc.Version, "descriptor version must be validated before reconciliation")

	release := RelativizePaths(withoutProfiles(desc))
	test, err := r.testView(desc, include)
	if err != nil {
		return Views{}, err
	}

	merged := MergeDependencies(release.Dependencies, test.Dependencies)
	if err := checkForSnapshotDeps(release.Version, merged, allowSnapshots); err != nil {
		return Views{}, err
	}

	log.Ctx(ctx).Debug().
		Str("project", desc.Name).
		Int("dependencies", len(merged)).
		Msg("descriptor reconciled")
	return Views{Release: release, Test: test, Dependencies: merged}, nil
}

// testView overlays the dev/test/default profiles plus any explicitly
// included ones onto a copy of the descriptor, then normalizes paths.
func (r Reconciler) testView(desc types.Descriptor, include []string) (types.Descriptor, error) {
	view := withoutProfiles(desc)
	for _, name := range profileOrder(include) {
		overlay, ok := desc.Profiles[name]
		if !ok {
			continue
		}
		if err := mergo.Merge(&view, overlayDescriptor(overlay), mergo.WithOverride, mergo.WithAppendSlice); err != nil {
			return types.Descriptor{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("failed to merge profile %s", name)).
				WithCause(err)
		}
	}
	return RelativizePaths(view), nil
}

// withoutProfiles copies the descriptor with its profile blocks removed
// and its sequences cloned, so later merging and path rewriting never
// alias the caller's data.
func withoutProfiles(desc types.Descriptor) types.Descriptor {
	out := desc
	out.Profiles = nil
	out.Dependencies = append([]types.Dependency(nil), desc.Dependencies...)
	out.Repositories = append([]types.Repository(nil), desc.Repositories...)
	out.Extensions = append([]types.Dependency(nil), desc.Extensions...)
	out.SourcePaths = append([]string(nil), desc.SourcePaths...)
	out.JavaSourcePaths = append([]string(nil), desc.JavaSourcePaths...)
	out.TestPaths = append([]string(nil), desc.TestPaths...)
	out.ResourcePaths = append([]string(nil), desc.ResourcePaths...)
	return out
}

// overlayDescriptor lifts a profile overlay into descriptor shape so
// mergo can merge like-named fields.
func overlayDescriptor(profile types.Profile) types.Descriptor {
	return types.Descriptor{
		Dependencies:    profile.Dependencies,
		Repositories:    profile.Repositories,
		SourcePaths:     profile.SourcePaths,
		JavaSourcePaths: profile.JavaSourcePaths,
		TestPaths:       profile.TestPaths,
		ResourcePaths:   profile.ResourcePaths,
		TargetPath:      profile.TargetPath,
		CompilePath:     profile.CompilePath,
	}
}

func profileOrder(include []string) []string {
	ordered := append(append([]string(nil), testProfileNames...), include...)
	seen := map[string]struct{}{}
	var out []string
	for _, name := range ordered {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// MergeDependencies unions the release and test-view dependency lists
// by structural equality, preserving first occurrence. Dependencies the
// test view contributes on top of the release set acquire test scope
// unless they already declare one; release dependencies are never
// rescoped.
func MergeDependencies(release, test []types.Dependency) []types.Dependency {
	var merged []types.Dependency
	for _, dep := range release {
		if !containsDependency(merged, dep) {
			merged = append(merged, dep)
		}
	}
	for _, dep := range test {
		if !containsDependency(merged, dep) {
			merged = append(merged, dep)
		}
	}
	for i, dep := range merged {
		if dep.Scope == "" && !containsDependency(release, dep) {
			merged[i].Scope = types.ScopeTest
		}
	}
	return merged
}

func containsDependency(deps []types.Dependency, dep types.Dependency) bool {
	for _, candidate := range deps {
		if reflect.DeepEqual(candidate, dep) {
			return true
		}
	}
	return false
}

// checkForSnapshotDeps is the release-hygiene guard: a non-snapshot
// release must not depend on snapshot versions. Violations abort the
// whole generation.
func checkForSnapshotDeps(version string, deps []types.Dependency, allowSnapshots bool) error {
	if allowSnapshots || strings.Contains(version, SnapshotMarker) {
		return nil
	}
	for _, dep := range deps {
		if strings.Contains(dep.Version, SnapshotMarker) {
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf(
					"release %s depends on snapshot %s %s: freeze the dependency to a released version or set POMGEN_NO_SNAPSHOT_CHECK",
					version, dep.Coordinate, dep.Version))
		}
	}
	return nil
}
