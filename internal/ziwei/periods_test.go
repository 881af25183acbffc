package ziwei

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForward_Parity(t *testing.T) {
	assert.True(t, Forward(Male, StemJia))
	assert.False(t, Forward(Male, StemYi))
	assert.False(t, Forward(Female, StemJia))
	assert.True(t, Forward(Female, StemYi))
}

func TestMajorPeriods_Contiguous(t *testing.T) {
	for _, bureau := range []Bureau{Water2, Wood3, Metal4, Earth5, Fire6} {
		for _, g := range []Gender{Male, Female} {
			for stem := StemJia; stem <= StemGui; stem++ {
				periods := MajorPeriods(g, stem, bureau, BranchYin, 1990)
				assert.Equal(t, bureau.Number(), periods[0].StartAge)
				seen := map[Branch]bool{}
				for i, mp := range periods {
					assert.Equal(t, i+1, mp.Period)
					assert.Equal(t, mp.StartAge+9, mp.EndAge)
					assert.Equal(t, mp.StartYear+9, mp.EndYear)
					assert.False(t, seen[mp.Branch], "branch %s reused", mp.Branch)
					seen[mp.Branch] = true
					if i > 0 {
						assert.Equal(t, periods[i-1].EndAge+1, mp.StartAge)
					}
				}
			}
		}
	}
}

func TestMajorPeriods_Direction(t *testing.T) {
	fwd := MajorPeriods(Male, StemGeng, Fire6, BranchZi, 1990)
	assert.Equal(t, BranchZi, fwd[0].Branch)
	assert.Equal(t, BranchChou, fwd[1].Branch)
	assert.Equal(t, 6, fwd[0].StartAge)
	assert.Equal(t, 1996, fwd[0].StartYear)

	back := MajorPeriods(Male, StemJi, Metal4, BranchShen, 1989)
	assert.Equal(t, BranchShen, back[0].Branch)
	assert.Equal(t, BranchWei, back[1].Branch)
	assert.Equal(t, BranchYou, back[11].Branch)
	assert.Equal(t, 114, back[11].StartAge)
	assert.Equal(t, 123, back[11].EndAge)
}

func TestFleetingYears(t *testing.T) {
	assert.Equal(t, []int{5, 17, 29, 41, 53, 65, 77, 89, 101, 113}, FleetingYears(BranchZi))
	assert.Equal(t, []int{6, 18, 30, 42, 54, 66, 78, 90, 102, 114}, FleetingYears(BranchChou))
	for b := BranchZi; b <= BranchHai; b++ {
		ages := FleetingYears(b)
		assert.Len(t, ages, 10)
		for i := 1; i < len(ages); i++ {
			assert.Equal(t, 12, ages[i]-ages[i-1])
		}
	}
}

func TestMinorLimit_StartTable(t *testing.T) {
	assert.Equal(t, BranchXu, MinorLimitStart(BranchZi))
	assert.Equal(t, BranchXu, MinorLimitStart(BranchShen))
	assert.Equal(t, BranchWei, MinorLimitStart(BranchSi))
	assert.Equal(t, BranchChen, MinorLimitStart(BranchWu))
	assert.Equal(t, BranchChou, MinorLimitStart(BranchHai))
}

func TestMinorLimit_EveryAgeOnce(t *testing.T) {
	for _, g := range []Gender{Male, Female} {
		for yb := BranchZi; yb <= BranchHai; yb++ {
			owner := map[int]Branch{}
			for b := BranchZi; b <= BranchHai; b++ {
				for _, age := range MinorLimit(g, yb, b) {
					_, dup := owner[age]
					assert.False(t, dup, "%s %s age %d twice", g, yb, age)
					owner[age] = b
				}
			}
			for age := 1; age <= 120; age++ {
				assert.Contains(t, owner, age)
			}
			start := MinorLimitStart(yb)
			assert.Equal(t, start, owner[1])
			if g == Male {
				assert.Equal(t, start.Add(1), owner[2])
			} else {
				assert.Equal(t, start.Add(-1), owner[2])
			}
		}
	}
}
