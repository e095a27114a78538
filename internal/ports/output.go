package ports

import "pomgen/internal/types"

// POMWriterPort persists the rendered POM document, creating parent
// directories as needed, and reports the absolute path written.
type POMWriterPort interface {
	WritePOM(path string, content string) (string, error)
}

// PropertiesWriterPort persists the companion properties artifact.
type PropertiesWriterPort interface {
	WriteProperties(path string, coords types.ProjectCoordinates) (string, error)
}
