package ziwei

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiveElementsBureau_EnumClosure(t *testing.T) {
	enum := map[Bureau]bool{Water2: true, Wood3: true, Metal4: true, Earth5: true, Fire6: true}
	seen := map[Bureau]int{}
	for stem := StemJia; stem <= StemGui; stem++ {
		for b := BranchZi; b <= BranchHai; b++ {
			got := FiveElementsBureau(stem, b)
			assert.True(t, enum[got], "%s%s gave %d", stem, b, int(got))
			seen[got]++
		}
	}
	assert.Len(t, seen, 5, "every bureau should be reachable")
	total := 0
	for _, n := range seen {
		total += n
	}
	assert.Equal(t, 120, total)
}

func TestFiveElementsBureau_PairedStemsAgree(t *testing.T) {
	for stem := StemJia; stem <= StemWu; stem++ {
		for b := BranchZi; b <= BranchHai; b++ {
			assert.Equal(t, FiveElementsBureau(stem, b), FiveElementsBureau(stem+5, b))
		}
	}
}

func TestFiveElementsBureau_Values(t *testing.T) {
	assert.Equal(t, Water2, FiveElementsBureau(StemJia, BranchZi))
	assert.Equal(t, Earth5, FiveElementsBureau(StemJi, BranchWu))
	assert.Equal(t, Metal4, FiveElementsBureau(StemJi, BranchShen))
	assert.Equal(t, Fire6, FiveElementsBureau(StemJi, BranchHai))
	assert.Equal(t, Water2, FiveElementsBureau(StemGeng, BranchYou))
	assert.Equal(t, Water2, FiveElementsBureau(StemGui, BranchXu))
}

func TestBureau_NamesAndNumbers(t *testing.T) {
	assert.Equal(t, "水二局", Water2.Name())
	assert.Equal(t, "火六局", Fire6.Name())
	assert.Equal(t, 4, Metal4.Number())
	assert.False(t, Bureau(7).Valid())
	assert.Panics(t, func() { mustBureau(Bureau(1)) })
}
