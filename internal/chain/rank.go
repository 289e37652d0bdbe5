package chain

import "sort"

// DefaultTopPaths is the default number of ranked paths kept for
// reporting and (by default) timing audit input.
const DefaultTopPaths = 20

// RankByTarget returns the top-K PathInfos ordered by target date
// descending. A missing target date sorts below every concrete date, and
// the sort is stable: paths with equal (or equally absent) targets keep
// their enumeration order. The input slice is not modified.
func RankByTarget(infos []PathInfo, top int) []PathInfo {
	ranked := make([]PathInfo, len(infos))
	copy(ranked, infos)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Target, ranked[j].Target
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})

	if top >= 0 && top < len(ranked) {
		ranked = ranked[:top]
	}
	return ranked
}

// Longest returns the path with the most nodes, with ties broken by
// enumeration order. The second return is false when infos is empty.
func Longest(infos []PathInfo) (PathInfo, bool) {
	if len(infos) == 0 {
		return PathInfo{}, false
	}

	best := infos[0]
	for _, info := range infos[1:] {
		if info.Len() > best.Len() {
			best = info
		}
	}
	return best, true
}
