package ziwei

// LifePalace counts from 寅 as month 1, forward to the birth month, then
// back by the hour branch.
func LifePalace(lunarMonth int, hour Branch) Branch {
	return BranchYin.Add(lunarMonth - 1 - int(hour))
}

// BodyPalace counts forward to the birth month, then forward by the hour branch.
func BodyPalace(lunarMonth int, hour Branch) Branch {
	return BranchYin.Add(lunarMonth - 1 + int(hour))
}

// PalaceStems assigns stems to the ring with 五虎遁. 子 and 丑 repeat the
// stems of 寅 and 卯.
func PalaceStems(yearStem Stem) [BranchCount]Stem {
	var stems [BranchCount]Stem
	start := tigerStart[yearStem]
	for i := 0; i < 10; i++ {
		stems[BranchYin.Add(i)] = start.Add(i)
	}
	stems[BranchZi] = stems[BranchYin]
	stems[BranchChou] = stems[BranchMao]
	return stems
}

// LaiyinPalace finds the first palace, in month order from 寅, whose stem
// equals the year stem. The second result is false when none matches; an
// absent Laiyin palace is a valid outcome.
func LaiyinPalace(yearStem Stem, stems [BranchCount]Stem) (Branch, bool) {
	for _, b := range monthOrder {
		if stems[b] == yearStem {
			return b, true
		}
	}
	return 0, false
}

// RoleAt returns the role bound to b when the Life palace sits at life.
func RoleAt(life, b Branch) Role {
	return Role(life.Add(-int(b)))
}

// BranchOf returns the branch bound to role when the Life palace sits at life.
func BranchOf(life Branch, role Role) Branch {
	return life.Add(-int(role))
}

// Opposite returns the palace across the ring.
func Opposite(b Branch) Branch { return b.Add(6) }

// Triad returns the two palaces trine to b.
func Triad(b Branch) [2]Branch { return [2]Branch{b.Add(4), b.Add(8)} }
