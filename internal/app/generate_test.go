package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"
)

const testDescriptor = `name: widget
group: org.example
version: 1.0.0
dependencies:
  - coordinate: org.clojure/clojure
    version: 1.11.1
source-paths:
  - src
target-path: target
compile-path: target/classes
profiles:
  dev:
    dependencies:
      - coordinate: midje
        version: 1.10.9
    test-paths:
      - test
`

const snapshotDescriptor = `name: widget
version: 1.0.0
dependencies:
  - coordinate: unstable-lib
    version: 2.0.0-SNAPSHOT
`

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGenerateWritesBothArtifacts(t *testing.T) {
	descriptorPath := writeDescriptor(t, testDescriptor)
	root := filepath.Dir(descriptorPath)

	result, err := NewService().Generate(t.Context(), GenerateRequest{
		DescriptorPath: descriptorPath,
	})
	require.NoError(t, err)
	require.Equal(t, "widget", result.ProjectName)
	require.Equal(t, filepath.Join(root, "pom.xml"), result.POMPath)
	require.Equal(t, filepath.Join(root, "pom.properties"), result.PropertiesPath)

	pom, err := os.ReadFile(result.POMPath)
	require.NoError(t, err)
	content := string(pom)
	require.Contains(t, content, "<groupId>org.example</groupId>")
	require.Contains(t, content, "<artifactId>widget</artifactId>")
	require.Contains(t, content, "<packaging>jar</packaging>")
	require.Contains(t, content, "<sourceDirectory>src</sourceDirectory>")
	require.Contains(t, content, "<testSourceDirectory>test</testSourceDirectory>")
	// The dev profile dependency lands in the merged list with test scope.
	require.Contains(t, content, "<artifactId>midje</artifactId>")
	require.Contains(t, content, "<scope>test</scope>")
	// No git metadata in the temp dir, so no scm block appears.
	require.NotContains(t, content, "<scm>")
	require.Contains(t, content, "autogenerated")

	props, err := os.ReadFile(result.PropertiesPath)
	require.NoError(t, err)
	require.Contains(t, string(props), "artifactId")
}

func TestGenerateOmitNotice(t *testing.T) {
	descriptorPath := writeDescriptor(t, testDescriptor)

	result, err := NewService().Generate(t.Context(), GenerateRequest{
		DescriptorPath: descriptorPath,
		OmitNotice:     true,
	})
	require.NoError(t, err)

	pom, err := os.ReadFile(result.POMPath)
	require.NoError(t, err)
	require.NotContains(t, string(pom), "autogenerated")
}

func TestGenerateAbortsOnSnapshotDependency(t *testing.T) {
	descriptorPath := writeDescriptor(t, snapshotDescriptor)
	root := filepath.Dir(descriptorPath)

	_, err := NewService().Generate(t.Context(), GenerateRequest{
		DescriptorPath: descriptorPath,
	})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	require.NoFileExists(t, filepath.Join(root, "pom.xml"))

	// The override signal lets the same descriptor through.
	result, err := NewService().Generate(t.Context(), GenerateRequest{
		DescriptorPath: descriptorPath,
		AllowSnapshots: true,
	})
	require.NoError(t, err)
	require.FileExists(t, result.POMPath)
}

func TestGenerateRequiresDescriptorPath(t *testing.T) {
	_, err := NewService().Generate(t.Context(), GenerateRequest{})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestValidateReportsProjectName(t *testing.T) {
	descriptorPath := writeDescriptor(t, testDescriptor)

	result, err := NewService().Validate(t.Context(), ValidateRequest{
		DescriptorPath: descriptorPath,
	})
	require.NoError(t, err)
	require.Equal(t, "widget", result.ProjectName)
	// Validation writes nothing.
	require.NoFileExists(t, filepath.Join(filepath.Dir(descriptorPath), "pom.xml"))
}
