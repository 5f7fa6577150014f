package types

// Pyproject models the subset of a pyproject.toml document that the
// snapshot tool reads and writes. Static project metadata is carried
// through from the base manifest unchanged; dependency sections are
// replaced by the computed partition.
type Pyproject struct {
	Project     Project      `toml:"project"`
	BuildSystem *BuildSystem `toml:"build-system,omitempty"`
	Tool        *Tool        `toml:"tool,omitempty"`
}

type Project struct {
	Name                 string              `toml:"name"`
	Version              string              `toml:"version,omitempty"`
	Description          string              `toml:"description,omitempty"`
	RequiresPython       string              `toml:"requires-python,omitempty"`
	Dependencies         []string            `toml:"dependencies"`
	OptionalDependencies map[string][]string `toml:"optional-dependencies,omitempty"`
}

type BuildSystem struct {
	Requires     []string `toml:"requires,omitempty"`
	BuildBackend string   `toml:"build-backend,omitempty"`
}

type Tool struct {
	Uv *UvTool `toml:"uv,omitempty"`
}

type UvTool struct {
	Sources map[string]UvSource `toml:"sources,omitempty"`
	Index   []UvIndex           `toml:"index,omitempty"`
}

// UvSource pins a single package to a named index.
type UvSource struct {
	Index string `toml:"index"`
}

type UvIndex struct {
	Name     string `toml:"name"`
	URL      string `toml:"url"`
	Explicit bool   `toml:"explicit,omitempty"`
}
