package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRequirementBareName(t *testing.T) {
	requirement, err := ParseRequirement("requests", "test")
	require.NoError(t, err)
	require.Equal(t, "requests", requirement.Name)
	require.Empty(t, requirement.Specifier)
}

func TestParseRequirementPinned(t *testing.T) {
	requirement, err := ParseRequirement("numpy==1.26.0", "test")
	require.NoError(t, err)
	require.Equal(t, "numpy", requirement.Name)
	require.Equal(t, "==1.26.0", requirement.Specifier)
}

func TestParseRequirementNormalizesName(t *testing.T) {
	requirement, err := ParseRequirement("My_Package.Core>=2.0", "test")
	require.NoError(t, err)
	require.Equal(t, "my-package-core", requirement.Name)
}

func TestParseRequirementStripsExtras(t *testing.T) {
	requirement, err := ParseRequirement("uvicorn[standard]>=0.23", "test")
	require.NoError(t, err)
	require.Equal(t, "uvicorn", requirement.Name)
	require.Equal(t, ">=0.23", requirement.Specifier)
}

func TestParseRequirementStripsMarkers(t *testing.T) {
	requirement, err := ParseRequirement(`tomli>=1.1.0; python_version < "3.11"`, "test")
	require.NoError(t, err)
	require.Equal(t, "tomli", requirement.Name)
	require.Equal(t, ">=1.1.0", requirement.Specifier)
}

func TestParseRequirementCompoundSpecifier(t *testing.T) {
	requirement, err := ParseRequirement("pandas>=2.0,<3.0", "test")
	require.NoError(t, err)
	require.Equal(t, "pandas", requirement.Name)
	require.Equal(t, ">=2.0,<3.0", requirement.Specifier)
}

func TestParseRequirementEmpty(t *testing.T) {
	_, err := ParseRequirement("   ", "reqs.txt:4")
	require.Error(t, err)
	require.Contains(t, err.Error(), "reqs.txt:4")
}

func TestParseRequirementMissingName(t *testing.T) {
	_, err := ParseRequirement("==1.0", "reqs.txt:2")
	require.Error(t, err)
}

func TestParseRequirementInvalidSpecifier(t *testing.T) {
	_, err := ParseRequirement("numpy==not-a-version", "test")
	require.Error(t, err)
}

func TestParseRequirementRejectsURLReference(t *testing.T) {
	_, err := ParseRequirement("package @ https://example.com/pkg.whl", "test")
	require.Error(t, err)
}
