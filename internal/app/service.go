package app

import (
	"pomgen/internal/adapters"
	"pomgen/internal/ports"
)

type Service struct {
	Descriptors ports.DescriptorPort
	SCM         ports.SCMPort
	POMs        ports.POMWriterPort
	Properties  ports.PropertiesWriterPort
}

func NewService() Service {
	return Service{
		Descriptors: adapters.NewDescriptorFileAdapter(),
		SCM:         adapters.NewGitMetadataAdapter(),
		POMs:        adapters.NewPOMFileAdapter(),
		Properties:  adapters.NewPropertiesFileAdapter(),
	}
}
