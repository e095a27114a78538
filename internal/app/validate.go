package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pomgen/internal/core"
)

// Validate loads and checks the descriptor, exercising the profile
// merge and the snapshot guard without writing any output.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	descriptorPath := strings.TrimSpace(req.DescriptorPath)
	if descriptorPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor path is required")
	}
	desc, err := s.Descriptors.Load(descriptorPath)
	if err != nil {
		return ValidateResult{}, err
	}
	if err := core.ValidateDescriptor(ctx, desc); err != nil {
		return ValidateResult{}, err
	}
	if _, err := core.NewReconciler().Reconcile(ctx, desc, req.Profiles, req.AllowSnapshots); err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{ProjectName: desc.Name}, nil
}
