package types

type Origin string

const (
	OriginRemoteIndex Origin = "remote-index"
	OriginLocalBuild  Origin = "local-build"
)

type GroupName string

const (
	GroupProjectDependencies GroupName = "project-dependencies"
	GroupUserCompiled        GroupName = "user-compiled"
	GroupUserDownloaded      GroupName = "user-downloaded"
)

type WarningKind string

const (
	WarningUnknownVariant WarningKind = "unknown-variant"
	WarningLocalCoreBuild WarningKind = "local-core-build"
	WarningMissingPackage WarningKind = "missing-package"
)
