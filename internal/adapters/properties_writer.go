package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/magiconair/properties"

	"pomgen/internal/ports"
	"pomgen/internal/types"
)

type PropertiesFileAdapter struct{}

func NewPropertiesFileAdapter() PropertiesFileAdapter {
	return PropertiesFileAdapter{}
}

// WriteProperties emits the Java-properties companion artifact with
// exactly the version, groupId, and artifactId entries.
func (a PropertiesFileAdapter) WriteProperties(path string, coords types.ProjectCoordinates) (string, error) {
	abs, err := ensureParent(path)
	if err != nil {
		return "", err
	}

	p := properties.NewProperties()
	entries := []struct{ key, value string }{
		{"version", coords.Version},
		{"groupId", coords.GroupID},
		{"artifactId", coords.ArtifactID},
	}
	for _, entry := range entries {
		if _, _, err := p.Set(entry.key, entry.value); err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to build properties").
				WithCause(err)
		}
	}

	file, err := os.Create(abs)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create properties file").
			WithCause(err)
	}
	defer file.Close()
	if _, err := p.Write(file, properties.UTF8); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write properties file").
			WithCause(err)
	}
	return abs, nil
}

var _ ports.PropertiesWriterPort = PropertiesFileAdapter{}
