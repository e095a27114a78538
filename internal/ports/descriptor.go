package ports

import "pomgen/internal/types"

// DescriptorPort loads a project descriptor from its on-disk form.
type DescriptorPort interface {
	Load(path string) (types.Descriptor, error)
}
