package policies

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linfen0/uv-snapshot-cli/internal/types"
)

func partitionWithDownloads(names ...string) types.Partition {
	var downloaded []types.InstalledPackage
	for _, name := range names {
		downloaded = append(downloaded, types.InstalledPackage{Name: name, Version: "1.0", Origin: types.OriginRemoteIndex})
	}
	return types.Partition{Groups: map[types.GroupName][]types.InstalledPackage{
		types.GroupProjectDependencies: {
			{Name: "numpy", Version: "1.26.0", Origin: types.OriginRemoteIndex},
		},
		types.GroupUserCompiled: {
			{Name: "mylib", Version: "2.0", Origin: types.OriginLocalBuild},
		},
		types.GroupUserDownloaded: downloaded,
	}}
}

func TestFilterDisabledKeepsEverything(t *testing.T) {
	partition := partitionWithDownloads("transitive-dep", "root-pkg")
	filtered := NewRetentionPolicy(false).Filter(partition, nil, nil)
	require.Equal(t, partition, filtered)
}

func TestFilterPrunesTransitiveDownloads(t *testing.T) {
	partition := partitionWithDownloads("transitive-dep", "root-pkg", "pinned-pkg")
	roots := map[string]struct{}{"root-pkg": {}}
	sources := map[string]struct{}{"pinned-pkg": {}}

	filtered := NewRetentionPolicy(true).Filter(partition, roots, sources)

	downloaded := filtered.Groups[types.GroupUserDownloaded]
	require.Len(t, downloaded, 2)
	require.Equal(t, "root-pkg", downloaded[0].Name)
	require.Equal(t, "pinned-pkg", downloaded[1].Name)
}

func TestFilterNeverPrunesExplicitGroups(t *testing.T) {
	partition := partitionWithDownloads("transitive-dep")
	filtered := NewRetentionPolicy(true).Filter(partition, nil, nil)

	require.Len(t, filtered.Groups[types.GroupProjectDependencies], 1)
	require.Len(t, filtered.Groups[types.GroupUserCompiled], 1)
	require.NotContains(t, filtered.Groups, types.GroupUserDownloaded)
}
