package app

type GenerateRequest struct {
	DescriptorPath string
	OutputPath     string
	PropertiesPath string
	Profiles       []string
	AllowSnapshots bool
	OmitNotice     bool
}

type GenerateResult struct {
	ProjectName    string
	POMPath        string
	PropertiesPath string
}

type ValidateRequest struct {
	DescriptorPath string
	Profiles       []string
	AllowSnapshots bool
}

type ValidateResult struct {
	ProjectName string
}
