package ziwei

// YearPillar returns the stem and branch of a civil year.
func YearPillar(year int) (Stem, Branch) {
	return StemJia.Add(year - 4), BranchZi.Add(year - 4)
}

// FlowTransform is a flow-year transformation and where its star sits natally.
type FlowTransform struct {
	Letter Letter
	Star   StarID
	Branch Branch
	Placed bool
}

// FlowYear is the annual overlay of a chart.
type FlowYear struct {
	Year       int
	Stem       Stem
	Branch     Branch
	Palace     Branch // natal palace whose branch matches the year branch
	Role       Role
	Age        int // nominal age, 1 in the lunar birth year
	Decade     MajorPeriod
	InDecade   bool
	Transforms [4]FlowTransform
}

// FlowYearOf overlays year onto c.
func FlowYearOf(c *Chart, year int) FlowYear {
	stem, branch := YearPillar(year)
	fy := FlowYear{
		Year:   year,
		Stem:   stem,
		Branch: branch,
		Palace: branch,
		Role:   RoleAt(c.Life, branch),
		Age:    year - c.Sexagenary.LunarYear + 1,
	}
	for _, p := range c.Palaces {
		mp := p.MajorPeriod
		if fy.Age >= mp.StartAge && fy.Age <= mp.EndAge {
			fy.Decade, fy.InDecade = mp, true
		}
	}
	for i, star := range SihuaOf(stem) {
		ft := FlowTransform{Letter: Letters[i], Star: star}
		if ps, ok := c.Find(star); ok {
			ft.Branch, ft.Placed = ps.Branch, true
		}
		fy.Transforms[i] = ft
	}
	return fy
}

// FlowMonth returns the pillar of a lunar month in a civil year, with the
// month stem taken from 五虎遁 on the year stem.
func FlowMonth(year, lunarMonth int) (Stem, Branch) {
	stem, _ := YearPillar(year)
	return tigerStart[stem].Add(lunarMonth - 1), BranchYin.Add(lunarMonth - 1)
}
