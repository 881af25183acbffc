package ziwei

import "sync/atomic"

// goldenInput is solar 1990-01-01 14:00, male. It resolves to lunar
// 1989 腊月初五, 未 hour, year 己巳.
var goldenInput = BirthInput{Year: 1990, Month: 1, Day: 1, Hour: 14, Gender: Male}

var goldenSexagenary = Sexagenary{
	YearStem: StemJi, YearBranch: BranchSi,
	MonthStem: StemBing, MonthBranch: BranchZi,
	DayStem: StemBing, DayBranch: BranchYin,
	HourStem: StemYi, HourBranch: BranchWei,
	SolarYear: 1990, LunarYear: 1989, LunarMonth: 12, LunarDay: 5,
}

type fixedResolver struct {
	sx    Sexagenary
	err   error
	calls atomic.Int32
}

func (f *fixedResolver) Resolve(BirthInput) (Sexagenary, error) {
	f.calls.Add(1)
	return f.sx, f.err
}

type mapCache struct {
	charts map[string]*Chart
	puts   int
}

func newMapCache() *mapCache { return &mapCache{charts: map[string]*Chart{}} }

func (m *mapCache) Get(key string) (*Chart, bool, error) {
	c, ok := m.charts[key]
	return c, ok, nil
}

func (m *mapCache) Put(key string, c *Chart) error {
	m.puts++
	m.charts[key] = c
	return nil
}

func starsByBranch(c *Chart, category Category) map[Branch][]StarID {
	out := map[Branch][]StarID{}
	for _, p := range c.Palaces {
		for _, s := range p.Stars() {
			if s.Star.Category() == category {
				out[p.Branch] = append(out[p.Branch], s.Star)
			}
		}
	}
	return out
}

func markerStrings(ms []Marker) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.String()
	}
	return out
}
