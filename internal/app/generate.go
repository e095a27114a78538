package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pomgen/internal/core"
	"pomgen/internal/types"
)

const (
	defaultOutputFile     = "pom.xml"
	defaultPropertiesFile = "pom.properties"
)

// Generate runs the whole pipeline: load the descriptor, reconcile its
// views, resolve SCM metadata, render the POM document, and write both
// output artifacts.
func (s Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	descriptorPath := strings.TrimSpace(req.DescriptorPath)
	if descriptorPath == "" {
		return GenerateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor path is required")
	}
	desc, err := s.Descriptors.Load(descriptorPath)
	if err != nil {
		return GenerateResult{}, err
	}
	if err := core.ValidateDescriptor(ctx, desc); err != nil {
		return GenerateResult{}, err
	}

	views, err := core.NewReconciler().Reconcile(ctx, desc, req.Profiles, req.AllowSnapshots)
	if err != nil {
		return GenerateResult{}, err
	}

	scm := s.SCM.Resolve(desc.SCM, filepath.Join(desc.Root, ".git"))
	tree := core.Transform("project", core.ProjectModel{Views: views, SCM: scm})
	content, err := core.Render(tree, !req.OmitNotice)
	if err != nil {
		return GenerateResult{}, err
	}

	pomPath, err := s.POMs.WritePOM(s.outputPath(desc, req.OutputPath, defaultOutputFile), content)
	if err != nil {
		return GenerateResult{}, err
	}
	propertiesPath, err := s.Properties.WriteProperties(
		s.outputPath(desc, req.PropertiesPath, defaultPropertiesFile),
		projectCoordinates(desc),
	)
	if err != nil {
		return GenerateResult{}, err
	}

	log.Ctx(ctx).Info().
		Str("project", desc.Name).
		Str("pom", pomPath).
		Msg("pom generated")
	return GenerateResult{
		ProjectName:    desc.Name,
		POMPath:        pomPath,
		PropertiesPath: propertiesPath,
	}, nil
}

// outputPath anchors a relative output path at the project root, per
// the driver contract.
func (s Service) outputPath(desc types.Descriptor, path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) || desc.Root == "" {
		return path
	}
	return filepath.Join(desc.Root, path)
}

func projectCoordinates(desc types.Descriptor) types.ProjectCoordinates {
	groupID := desc.Group
	if groupID == "" {
		groupID = desc.Name
	}
	return types.ProjectCoordinates{
		GroupID:    groupID,
		ArtifactID: desc.Name,
		Version:    desc.Version,
	}
}
