package ziwei

import (
	"fmt"
	"sync"

	"github.com/6tail/lunar-go/calendar"
)

// hourBranches maps each civil hour to its two-hour block.
// 午 covers 12:00-12:59 only and 未 starts at 13:00.
var hourBranches = [24]Branch{
	BranchZi,                         // 0
	BranchChou, BranchChou,           // 1-2
	BranchYin, BranchYin,             // 3-4
	BranchMao, BranchMao,             // 5-6
	BranchChen, BranchChen,           // 7-8
	BranchSi, BranchSi, BranchSi,     // 9-11
	BranchWu,                         // 12
	BranchWei, BranchWei,             // 13-14
	BranchShen, BranchShen,           // 15-16
	BranchYou, BranchYou,             // 17-18
	BranchXu, BranchXu,               // 19-20
	BranchHai, BranchHai,             // 21-22
	BranchZi,                         // 23
}

// HourBranch returns the branch of a civil hour (0-23).
func HourBranch(hour int) Branch {
	if hour < 0 || hour > 23 {
		panic(fmt.Sprintf("ziwei: hour %d out of range", hour))
	}
	return hourBranches[hour]
}

// Resolver converts a birth input into its sexagenary representation.
type Resolver interface {
	Resolve(in BirthInput) (Sexagenary, error)
}

// LunarResolver resolves dates with the lunar-go calendar.
type LunarResolver struct {
	// the library keeps package-level caches; conversions are serialized
	mu sync.Mutex
}

// NewLunarResolver returns a resolver backed by lunar-go.
func NewLunarResolver() *LunarResolver {
	return &LunarResolver{}
}

// Resolve implements Resolver.
func (r *LunarResolver) Resolve(in BirthInput) (Sexagenary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lunar, err := r.toLunar(in)
	if err != nil {
		return Sexagenary{}, &LunarConversionError{Year: in.Year, Month: in.Month, Day: in.Day, Leap: in.IsLeapMonth, Err: err}
	}

	var s Sexagenary
	pillars := []struct {
		stem, branch string
		s            *Stem
		b            *Branch
	}{
		{lunar.GetYearGan(), lunar.GetYearZhi(), &s.YearStem, &s.YearBranch},
		{lunar.GetMonthGan(), lunar.GetMonthZhi(), &s.MonthStem, &s.MonthBranch},
		{lunar.GetDayGan(), lunar.GetDayZhi(), &s.DayStem, &s.DayBranch},
	}
	for _, p := range pillars {
		stem, ok := ParseStem(p.stem)
		branch, okB := ParseBranch(p.branch)
		if !ok || !okB {
			return Sexagenary{}, &LunarConversionError{
				Year: in.Year, Month: in.Month, Day: in.Day, Leap: in.IsLeapMonth,
				Err: fmt.Errorf("unknown pillar %q%q", p.stem, p.branch),
			}
		}
		*p.s, *p.b = stem, branch
	}

	s.HourBranch = HourBranch(in.Hour)
	s.HourStem = hourStem(s.DayStem, s.HourBranch)
	s.SolarYear = lunar.GetSolar().GetYear()
	s.LunarYear = lunar.GetYear()
	month := lunar.GetMonth()
	if month < 0 {
		s.LeapMonth = true
		month = -month
	}
	s.LunarMonth = month
	s.LunarDay = lunar.GetDay()
	return s, nil
}

func (r *LunarResolver) toLunar(in BirthInput) (l *calendar.Lunar, err error) {
	// lunar-go panics on dates it cannot represent
	defer func() {
		if rec := recover(); rec != nil {
			l, err = nil, fmt.Errorf("%v", rec)
		}
	}()

	if !in.IsLunar {
		return calendar.NewSolar(in.Year, in.Month, in.Day, in.Hour, 0, 0).GetLunar(), nil
	}

	month := in.Month
	if in.IsLeapMonth {
		month = -month
	}
	l = calendar.NewLunar(in.Year, month, in.Day, in.Hour, 0, 0)

	// Round-trip through the solar date to reject days and leap months
	// that do not exist in that lunar year.
	back := l.GetSolar().GetLunar()
	if back.GetYear() != in.Year || back.GetMonth() != month || back.GetDay() != in.Day {
		return nil, fmt.Errorf("lunar date %d-%d-%d does not exist", in.Year, month, in.Day)
	}
	return l, nil
}

// hourStem applies 五鼠遁: the 子 hour stem follows the day stem.
func hourStem(day Stem, hour Branch) Stem {
	return Stem((int(day)%5)*2).Add(int(hour))
}
