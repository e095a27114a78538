package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pomgen/internal/ports"
	"pomgen/internal/types"
)

type DescriptorFileAdapter struct{}

func NewDescriptorFileAdapter() DescriptorFileAdapter {
	return DescriptorFileAdapter{}
}

// Load reads a YAML project descriptor. When the descriptor does not
// declare a root, the directory containing the file becomes the root.
func (a DescriptorFileAdapter) Load(path string) (types.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Descriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("descriptor file not found").
			WithCause(err)
	}
	var desc types.Descriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return types.Descriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse descriptor yaml").
			WithCause(err)
	}
	if desc.Root == "" {
		root, err := filepath.Abs(filepath.Dir(path))
		if err != nil {
			return types.Descriptor{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to resolve descriptor root").
				WithCause(err)
		}
		desc.Root = root
	}
	return desc, nil
}

var _ ports.DescriptorPort = DescriptorFileAdapter{}
