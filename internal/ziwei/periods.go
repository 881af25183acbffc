package ziwei

// fleetingEntries and minorEntries bound the annual age lists to ten cycles.
const (
	fleetingEntries = 10
	minorEntries    = 10
)

// Forward reports whether major periods run clockwise: yang-stem males and
// yin-stem females go forward, everyone else goes backward.
func Forward(gender Gender, yearStem Stem) bool {
	return (gender == Male) == yearStem.Yang()
}

// MajorPeriods lays out the twelve decades starting at the Life palace.
// The first decade starts at the bureau number.
func MajorPeriods(gender Gender, yearStem Stem, bureau Bureau, life Branch, birthYear int) [BranchCount]MajorPeriod {
	mustBureau(bureau)
	step := -1
	if Forward(gender, yearStem) {
		step = 1
	}

	var out [BranchCount]MajorPeriod
	for n := 0; n < BranchCount; n++ {
		start := bureau.Number() + n*10
		out[n] = MajorPeriod{
			Period:    n + 1,
			Branch:    life.Add(step * n),
			StartAge:  start,
			EndAge:    start + 9,
			StartYear: birthYear + start,
			EndYear:   birthYear + start + 9,
		}
	}
	return out
}

// FleetingYears returns the ages at which palace b is active, starting at
// 5 + b and striding 12.
func FleetingYears(b Branch) []int {
	ages := make([]int, fleetingEntries)
	for i := range ages {
		ages[i] = 5 + int(b) + i*BranchCount
	}
	return ages
}

// MinorLimitStart returns the palace holding age 1 of the minor limit.
func MinorLimitStart(yearBranch Branch) Branch {
	return minorLimitStart[yearBranch%4]
}

// MinorLimit returns the ages at which palace b holds the minor limit.
// Males advance clockwise from the start palace, females counter-clockwise.
func MinorLimit(gender Gender, yearBranch, b Branch) []int {
	start := MinorLimitStart(yearBranch)
	offset := int(b.Add(-int(start)))
	if gender == Female {
		offset = int(start.Add(-int(b)))
	}
	ages := make([]int, minorEntries)
	for i := range ages {
		ages[i] = offset + 1 + i*BranchCount
	}
	return ages
}
