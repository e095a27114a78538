package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pomgen/internal/ports"
)

type POMFileAdapter struct{}

func NewPOMFileAdapter() POMFileAdapter {
	return POMFileAdapter{}
}

// WritePOM writes the rendered document, creating parent directories as
// needed, and returns the absolute path of the written file.
func (a POMFileAdapter) WritePOM(path string, content string) (string, error) {
	abs, err := ensureParent(path)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(abs, []byte(content), 0644); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write pom file").
			WithCause(err)
	}
	return abs, nil
}

func ensureParent(path string) (string, error) {
	if path == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to resolve output path").
			WithCause(err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return abs, nil
}

var _ ports.POMWriterPort = POMFileAdapter{}
