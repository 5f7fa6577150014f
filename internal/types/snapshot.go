package types

// InstalledPackage is one package visible in the inspected environment.
// Name is stored in PEP 503 normalized form; Version is the raw version
// string as reported by the installer (local build tags included).
type InstalledPackage struct {
	Name     string
	Version  string
	Origin   Origin
	URL      string
	Editable bool
}

// BaseDependencySet holds the project's own declared dependencies in
// normalized form. Core names come from the base manifest's dependency
// list and any requirements file; OptionalGroups maps a normalized
// package name to the base manifest optional group that declares it.
type BaseDependencySet struct {
	Core           map[string]struct{}
	OptionalGroups map[string]GroupName
}

func NewBaseDependencySet() BaseDependencySet {
	return BaseDependencySet{
		Core:           map[string]struct{}{},
		OptionalGroups: map[string]GroupName{},
	}
}

// Partition maps each group to its alphabetically ordered members.
// Classification guarantees the partition is total and disjoint over
// the installed set it was built from.
type Partition struct {
	Groups map[GroupName][]InstalledPackage
}

// VariantResolution records whether the numeric-computing library was
// found, which hardware build tag its version carries, and the package
// index the tag maps to. IndexURL is empty when the tag is absent or
// unrecognized.
type VariantResolution struct {
	Detected bool
	Library  string
	Version  string
	Tag      string
	IndexURL string
}

type Warning struct {
	Kind    WarningKind
	Package string
	Detail  string
}

type GroupSummary struct {
	Name  GroupName
	Count int
}

// SnapshotReport is returned beside a successful snapshot so callers
// can surface non-fatal findings without failing the run.
type SnapshotReport struct {
	Warnings []Warning
	Groups   []GroupSummary
	Variant  VariantResolution
}
