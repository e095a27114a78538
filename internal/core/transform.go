package core

import (
	"encoding/xml"
	"fmt"

	"pomgen/internal/shared"
	"pomgen/internal/types"
)

const (
	pomNamespace   = "http://maven.apache.org/POM/4.0.0"
	xsiNamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = "http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd"
	modelVersion   = "4.0.0"

	defaultPackaging = "jar"

	helperPluginGroup    = "org.codehaus.mojo"
	helperPluginArtifact = "build-helper-maven-plugin"
	helperPluginVersion  = "1.7"
)

// listChildTags maps plural container tags to the tag of each child.
// An explicit table instead of suffix surgery on the tag name.
var listChildTags = map[string]string{
	"dependencies": "dependency",
	"repositories": "repository",
}

// ProjectModel bundles everything the root project element needs: the
// reconciled descriptor views and the resolved SCM info (nil when
// inference found nothing).
type ProjectModel struct {
	Views Views
	SCM   *types.SCMInfo
}

// Transform renders one descriptor fragment as an element tree node.
// The tag set is closed; tags without a dedicated arm fall through to a
// camelCased leaf. Absent or falsy values render nothing, so every arm
// is total.
func Transform(tag string, value any) *Element {
	switch tag {
	case "project":
		if model, ok := value.(ProjectModel); ok {
			return projectTree(model)
		}
	case "build":
		if views, ok := value.(Views); ok {
			return buildTree(views)
		}
	case "scm":
		if info, ok := value.(*types.SCMInfo); ok {
			return scmTree(info)
		}
	case "dependency":
		if dep, ok := value.(types.Dependency); ok {
			return dependencyTree(dep)
		}
	case "dependencies", "repositories":
		return listTree(tag, value)
	case "exclusions":
		if exclusions, ok := value.([]types.Exclusion); ok {
			return exclusionsTree(exclusions)
		}
	case "repository":
		if repo, ok := value.(types.Repository); ok {
			return repositoryTree(repo)
		}
	case "license":
		if license, ok := value.(*types.License); ok {
			return licenseTree(license)
		}
	case "parent":
		if parent, ok := value.(*types.Parent); ok {
			return parentTree(parent)
		}
	case "mailing-list":
		if list, ok := value.(*types.MailingList); ok {
			return mailingListTree(list)
		}
	default:
		return leafTree(tag, value)
	}
	return nil
}

// leafTree is the default arm: a camelCased scalar leaf, or nothing for
// absent and falsy values.
func leafTree(tag string, value any) *Element {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return Leaf(shared.CamelCase(tag), v)
	case bool:
		if !v {
			return nil
		}
		return Leaf(shared.CamelCase(tag), "true")
	default:
		return Leaf(shared.CamelCase(tag), fmt.Sprint(v))
	}
}

func listTree(tag string, value any) *Element {
	childTag, ok := listChildTags[tag]
	if !ok {
		return nil
	}
	switch items := value.(type) {
	case []types.Dependency:
		if len(items) == 0 {
			return nil
		}
		node := Elem(tag)
		for _, item := range items {
			node.Append(Transform(childTag, item))
		}
		return node
	case []types.Repository:
		if len(items) == 0 {
			return nil
		}
		node := Elem(tag)
		for _, item := range items {
			node.Append(Transform(childTag, item))
		}
		return node
	}
	return nil
}

func dependencyTree(dep types.Dependency) *Element {
	groupID, artifactID := types.SplitCoordinate(dep.Coordinate)
	return Elem("dependency",
		Leaf("groupId", groupID),
		Leaf("artifactId", artifactID),
		Leaf("version", dep.Version),
		optionalLeaf(dep.Optional),
		Leaf("classifier", dep.Classifier),
		Leaf("type", dep.Extension),
		exclusionsTree(dep.Exclusions),
		Leaf("scope", string(dep.Scope)),
	)
}

func optionalLeaf(optional bool) *Element {
	if !optional {
		return nil
	}
	return Leaf("optional", "true")
}

func exclusionsTree(exclusions []types.Exclusion) *Element {
	if len(exclusions) == 0 {
		return nil
	}
	node := Elem("exclusions")
	for _, exclusion := range exclusions {
		groupID, artifactID := types.SplitCoordinate(exclusion.Coordinate)
		node.Append(Elem("exclusion",
			Leaf("groupId", groupID),
			Leaf("artifactId", artifactID),
			Leaf("classifier", exclusion.Classifier),
			Leaf("type", exclusion.Extension),
		))
	}
	return node
}

func repositoryTree(repo types.Repository) *Element {
	return Elem("repository",
		Leaf("id", repo.ID),
		Leaf("url", repo.URL),
		Elem("snapshots", Leaf("enabled", enabledFlag(repo.Snapshots))),
		Elem("releases", Leaf("enabled", enabledFlag(repo.Releases))),
	)
}

// enabledFlag renders a repository toggle, defaulting to enabled when
// the descriptor leaves it out.
func enabledFlag(flag *bool) string {
	if flag == nil || *flag {
		return "true"
	}
	return "false"
}

func licenseTree(license *types.License) *Element {
	if license == nil {
		return nil
	}
	if license.Name == "" && license.URL == "" && license.Distribution == "" && license.Comments == "" {
		return nil
	}
	return Elem("licenses", Elem("license",
		Leaf("name", license.Name),
		Leaf("url", license.URL),
		Leaf("distribution", license.Distribution),
		Leaf("comments", license.Comments),
	))
}

func scmTree(info *types.SCMInfo) *Element {
	if info == nil {
		return nil
	}
	node := Elem("scm")
	if info.Connection != "" {
		node.Append(Leaf("connection", "scm:git:"+info.Connection))
	}
	if info.DeveloperConnection != "" {
		node.Append(Leaf("developerConnection", "scm:git:"+info.DeveloperConnection))
	}
	node.Append(
		Leaf("tag", info.Tag),
		Leaf("url", info.URL),
	)
	return node
}

// buildTree renders the build section from both descriptor views: the
// release view supplies source roots, resources, extensions, and output
// directories; the test view supplies test sources and test resources.
func buildTree(views Views) *Element {
	release, test := views.Release, views.Test
	sourceDir, extraSources := shared.FirstRest(
		append(append([]string(nil), release.SourcePaths...), release.JavaSourcePaths...))
	testSourceDir, extraTestSources := shared.FirstRest(test.TestPaths)

	return Elem("build",
		Leaf("sourceDirectory", sourceDir),
		Leaf("testSourceDirectory", testSourceDir),
		resourcesTree("resources", "resource", release.ResourcePaths),
		resourcesTree("testResources", "testResource", test.ResourcePaths),
		extensionsTree(release.Extensions),
		Leaf("directory", release.TargetPath),
		Leaf("outputDirectory", release.CompilePath),
		helperPluginTree(extraSources, extraTestSources),
	)
}

func resourcesTree(containerTag, childTag string, paths []string) *Element {
	if len(paths) == 0 {
		return nil
	}
	node := Elem(containerTag)
	for _, path := range paths {
		node.Append(Elem(childTag, Leaf("directory", path)))
	}
	return node
}

func extensionsTree(extensions []types.Dependency) *Element {
	if len(extensions) == 0 {
		return nil
	}
	node := Elem("extensions")
	for _, extension := range extensions {
		groupID, artifactID := types.SplitCoordinate(extension.Coordinate)
		node.Append(Elem("extension",
			Leaf("artifactId", artifactID),
			Leaf("groupId", groupID),
			Leaf("version", extension.Version),
		))
	}
	return node
}

// helperPluginTree declares the build-helper plugin when the layout has
// source roots beyond the single directory the POM supports natively.
func helperPluginTree(extraSources, extraTestSources []string) *Element {
	if len(extraSources) == 0 && len(extraTestSources) == 0 {
		return nil
	}
	return Elem("plugins", Elem("plugin",
		Leaf("groupId", helperPluginGroup),
		Leaf("artifactId", helperPluginArtifact),
		Leaf("version", helperPluginVersion),
		Elem("executions",
			helperExecution("add-source", "generate-sources", extraSources),
			helperExecution("add-test-source", "generate-test-sources", extraTestSources),
		),
	))
}

func helperExecution(goal, phase string, sources []string) *Element {
	if len(sources) == 0 {
		return nil
	}
	sourcesNode := Elem("sources")
	for _, source := range sources {
		sourcesNode.Append(Leaf("source", source))
	}
	return Elem("execution",
		Leaf("id", goal),
		Leaf("phase", phase),
		Elem("goals", Leaf("goal", goal)),
		Elem("configuration", sourcesNode),
	)
}

func parentTree(parent *types.Parent) *Element {
	if parent == nil {
		return nil
	}
	groupID, artifactID := types.SplitCoordinate(parent.Coordinate)
	return Elem("parent",
		Leaf("artifactId", artifactID),
		Leaf("groupId", groupID),
		Leaf("version", parent.Version),
		Leaf("relativePath", parent.RelativePath),
	)
}

func mailingListTree(list *types.MailingList) *Element {
	if list == nil {
		return nil
	}
	var others *Element
	if len(list.OtherArchives) > 0 {
		others = Elem("otherArchives")
		for _, archive := range list.OtherArchives {
			others.Append(Leaf("otherArchive", archive))
		}
	}
	return Elem("mailingLists", Elem("mailingList",
		Leaf("name", list.Name),
		Leaf("subscribe", list.Subscribe),
		Leaf("unsubscribe", list.Unsubscribe),
		Leaf("post", list.Post),
		Leaf("archive", list.Archive),
		others,
	))
}

// projectTree assembles the whole document in fixed field order.
func projectTree(model ProjectModel) *Element {
	release := model.Views.Release
	groupID := release.Group
	if groupID == "" {
		groupID = release.Name
	}
	packaging := release.Packaging
	if packaging == "" {
		packaging = defaultPackaging
	}

	root := Elem("project",
		Leaf("modelVersion", modelVersion),
		parentTree(release.Parent),
		Leaf("groupId", groupID),
		Leaf("artifactId", release.Name),
		Leaf("packaging", packaging),
		Leaf("version", release.Version),
		Leaf("classifier", release.Classifier),
		Leaf("name", release.Name),
		Leaf("description", release.Description),
		Transform("url", release.URL),
		licenseTree(release.License),
		mailingListTree(release.MailingList),
		scmTree(model.SCM),
		buildTree(model.Views),
		Transform("repositories", release.Repositories),
		Transform("dependencies", model.Views.Dependencies),
	)
	root.Attrs = []xml.Attr{
		{Name: xml.Name{Local: "xmlns"}, Value: pomNamespace},
		{Name: xml.Name{Local: "xmlns:xsi"}, Value: xsiNamespace},
		{Name: xml.Name{Local: "xsi:schemaLocation"}, Value: schemaLocation},
	}
	return root
}
