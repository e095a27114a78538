package types

type Scope string

const (
	ScopeCompile  Scope = "compile"
	ScopeProvided Scope = "provided"
	ScopeRuntime  Scope = "runtime"
	ScopeTest     Scope = "test"
)

const (
	ProfileUser    = "user"
	ProfileDev     = "dev"
	ProfileTest    = "test"
	ProfileDefault = "default"
)
