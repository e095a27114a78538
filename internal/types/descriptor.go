package types

import "strings"

// Descriptor is the in-memory project model the generator consumes.
// Field names mirror the descriptor file keys; path fields may hold
// absolute paths until the normalizer rewrites them relative to Root.
type Descriptor struct {
	Root        string `yaml:"root,omitempty"`
	Group       string `yaml:"group,omitempty"`
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Packaging   string `yaml:"packaging,omitempty"`
	Classifier  string `yaml:"classifier,omitempty"`
	Description string `yaml:"description,omitempty"`
	URL         string `yaml:"url,omitempty"`

	License     *License     `yaml:"license,omitempty"`
	SCM         *SCMDecl     `yaml:"scm,omitempty"`
	Parent      *Parent      `yaml:"parent,omitempty"`
	MailingList *MailingList `yaml:"mailing-list,omitempty"`

	Dependencies []Dependency `yaml:"dependencies,omitempty"`
	Repositories []Repository `yaml:"repositories,omitempty"`
	Extensions   []Dependency `yaml:"extensions,omitempty"`

	SourcePaths     []string `yaml:"source-paths,omitempty"`
	JavaSourcePaths []string `yaml:"java-source-paths,omitempty"`
	TestPaths       []string `yaml:"test-paths,omitempty"`
	ResourcePaths   []string `yaml:"resource-paths,omitempty"`
	TargetPath      string   `yaml:"target-path,omitempty"`
	CompilePath     string   `yaml:"compile-path,omitempty"`

	Profiles map[string]Profile `yaml:"profiles,omitempty"`
}

// Dependency describes one entry of the dependency list. Coordinate is
// a namespaced identifier ("group/artifact"); an unnamespaced
// coordinate uses the artifact name as its group.
type Dependency struct {
	Coordinate string      `yaml:"coordinate"`
	Version    string      `yaml:"version,omitempty"`
	Classifier string      `yaml:"classifier,omitempty"`
	Extension  string      `yaml:"extension,omitempty"`
	Scope      Scope       `yaml:"scope,omitempty"`
	Optional   bool        `yaml:"optional,omitempty"`
	Exclusions []Exclusion `yaml:"exclusions,omitempty"`
}

type Exclusion struct {
	Coordinate string `yaml:"coordinate"`
	Classifier string `yaml:"classifier,omitempty"`
	Extension  string `yaml:"extension,omitempty"`
}

// Repository declares a remote artifact repository. The boolean flags
// default to enabled when absent, hence the pointer types.
type Repository struct {
	ID        string `yaml:"id"`
	URL       string `yaml:"url"`
	Snapshots *bool  `yaml:"snapshots,omitempty"`
	Releases  *bool  `yaml:"releases,omitempty"`
}

// SCMDecl is an explicitly declared SCM block. When the descriptor has
// no SCM block the resolver falls back to git-metadata inference.
type SCMDecl struct {
	Connection          string `yaml:"connection,omitempty"`
	DeveloperConnection string `yaml:"developer-connection,omitempty"`
	Tag                 string `yaml:"tag,omitempty"`
	URL                 string `yaml:"url,omitempty"`
}

// SCMInfo is resolved source-control metadata ready for rendering.
type SCMInfo struct {
	Connection          string
	DeveloperConnection string
	Tag                 string
	URL                 string
}

type Parent struct {
	Coordinate   string `yaml:"coordinate"`
	Version      string `yaml:"version"`
	RelativePath string `yaml:"relative-path,omitempty"`
}

type License struct {
	Name         string `yaml:"name,omitempty"`
	URL          string `yaml:"url,omitempty"`
	Distribution string `yaml:"distribution,omitempty"`
	Comments     string `yaml:"comments,omitempty"`
}

type MailingList struct {
	Name          string   `yaml:"name,omitempty"`
	Subscribe     string   `yaml:"subscribe,omitempty"`
	Unsubscribe   string   `yaml:"unsubscribe,omitempty"`
	Post          string   `yaml:"post,omitempty"`
	Archive       string   `yaml:"archive,omitempty"`
	OtherArchives []string `yaml:"other-archives,omitempty"`
}

// Profile is a named overlay merged into the test-scope view of the
// descriptor. Scalar fields override, sequences append.
type Profile struct {
	Dependencies    []Dependency `yaml:"dependencies,omitempty"`
	Repositories    []Repository `yaml:"repositories,omitempty"`
	SourcePaths     []string     `yaml:"source-paths,omitempty"`
	JavaSourcePaths []string     `yaml:"java-source-paths,omitempty"`
	TestPaths       []string     `yaml:"test-paths,omitempty"`
	ResourcePaths   []string     `yaml:"resource-paths,omitempty"`
	TargetPath      string       `yaml:"target-path,omitempty"`
	CompilePath     string       `yaml:"compile-path,omitempty"`
}

// ProjectCoordinates is the minimal identity triple written to the
// companion properties artifact.
type ProjectCoordinates struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// SplitCoordinate decomposes a namespaced identifier into group and
// artifact parts. An unnamespaced coordinate yields the same value for
// both.
func SplitCoordinate(coordinate string) (groupID, artifactID string) {
	if group, artifact, ok := strings.Cut(coordinate, "/"); ok {
		return group, artifact
	}
	return coordinate, coordinate
}
