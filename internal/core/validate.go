package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pomgen/internal/types"
)

// ValidateDescriptor checks the descriptor facts the transformation
// engine relies on. Callers run it before reconciliation.
func ValidateDescriptor(ctx context.Context, desc types.Descriptor) error {
	if desc.Name == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor name must not be empty")
	}
	if desc.Version == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor version must not be empty")
	}
	if err := validateDependencies(desc.Dependencies, "dependencies"); err != nil {
		return err
	}
	if err := validateDependencies(desc.Extensions, "extensions"); err != nil {
		return err
	}
	for name, profile := range desc.Profiles {
		if err := validateDependencies(profile.Dependencies, fmt.Sprintf("profile %s dependencies", name)); err != nil {
			return err
		}
	}
	for _, repo := range desc.Repositories {
		if repo.ID == "" || repo.URL == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("repository entries require both id and url")
		}
	}
	log.Ctx(ctx).Debug().Str("project", desc.Name).Msg("descriptor validated")
	return nil
}

func validateDependencies(deps []types.Dependency, section string) error {
	for _, dep := range deps {
		if dep.Coordinate == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("%s contain an entry without a coordinate", section))
		}
	}
	return nil
}
