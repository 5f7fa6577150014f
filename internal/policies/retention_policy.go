package policies

import (
	"github.com/linfen0/uv-snapshot-cli/internal/shared"
	"github.com/linfen0/uv-snapshot-cli/internal/types"
)

// RetentionPolicy decides which partition entries are written to the
// snapshot. The default keeps the full partition. With Prune set, a
// user-downloaded package survives only when an explicit signal ties it
// to the user's intent: it was installed as a root (not pulled in as a
// transitive dependency) or the base manifest pins it to an index
// source. Core, base-group, and locally built packages always carry an
// explicit signal and are never pruned.
type RetentionPolicy struct {
	Prune bool
}

func NewRetentionPolicy(prune bool) RetentionPolicy {
	return RetentionPolicy{Prune: prune}
}

// Filter applies the policy. roots holds normalized root package names;
// sourceNames holds normalized package names referenced by the base
// manifest's tool.uv.sources table.
func (p RetentionPolicy) Filter(partition types.Partition, roots map[string]struct{}, sourceNames map[string]struct{}) types.Partition {
	if !p.Prune {
		return partition
	}
	groups := make(map[types.GroupName][]types.InstalledPackage, len(partition.Groups))
	for group, members := range partition.Groups {
		if group != types.GroupUserDownloaded {
			groups[group] = members
			continue
		}
		var kept []types.InstalledPackage
		for _, pkg := range members {
			key := shared.NormalizePipName(pkg.Name)
			if _, ok := roots[key]; ok {
				kept = append(kept, pkg)
				continue
			}
			if _, ok := sourceNames[key]; ok {
				kept = append(kept, pkg)
			}
		}
		if len(kept) > 0 {
			groups[group] = kept
		}
	}
	return types.Partition{Groups: groups}
}
