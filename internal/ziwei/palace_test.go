package ziwei

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifeAndBodyPalace(t *testing.T) {
	tests := []struct {
		name       string
		month      int
		hour       Branch
		life, body Branch
	}{
		{"first month 子 hour", 1, BranchZi, BranchYin, BranchYin},
		{"first month 丑 hour", 1, BranchChou, BranchChou, BranchMao},
		{"twelfth month 未 hour", 12, BranchWei, BranchWu, BranchShen},
		{"sixth month 亥 hour", 6, BranchHai, BranchShen, BranchWu},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.life, LifePalace(tt.month, tt.hour))
			assert.Equal(t, tt.body, BodyPalace(tt.month, tt.hour))
		})
	}
}

func TestRoles_BijectionForEveryLifeBranch(t *testing.T) {
	for life := BranchZi; life <= BranchHai; life++ {
		seen := map[Role]Branch{}
		for b := BranchZi; b <= BranchHai; b++ {
			role := RoleAt(life, b)
			_, dup := seen[role]
			assert.False(t, dup, "life %s: role %s bound twice", life, role)
			seen[role] = b
			assert.Equal(t, b, BranchOf(life, role))
		}
		assert.Len(t, seen, BranchCount)
		assert.Equal(t, life, seen[RoleLife])
	}
}

func TestRoles_CounterClockwise(t *testing.T) {
	assert.Equal(t, RoleSiblings, RoleAt(BranchShen, BranchWei))
	assert.Equal(t, RoleParents, RoleAt(BranchShen, BranchYou))
	assert.Equal(t, RoleTravel, RoleAt(BranchShen, BranchYin))
}

func TestPalaceStems_FiveTigers(t *testing.T) {
	stems := PalaceStems(StemJi)
	assert.Equal(t, StemBing, stems[BranchYin])
	assert.Equal(t, StemDing, stems[BranchMao])
	assert.Equal(t, StemRen, stems[BranchShen])
	assert.Equal(t, StemYi, stems[BranchHai])
	assert.Equal(t, stems[BranchYin], stems[BranchZi])
	assert.Equal(t, stems[BranchMao], stems[BranchChou])

	assert.Equal(t, StemJia, PalaceStems(StemGui)[BranchYin])
	assert.Equal(t, StemGeng, PalaceStems(StemXin)[BranchYin])
}

func TestLaiyinPalace(t *testing.T) {
	for stem := StemJia; stem <= StemGui; stem++ {
		b, ok := LaiyinPalace(stem, PalaceStems(stem))
		assert.True(t, ok, "stem %s", stem)
		assert.Equal(t, stem, PalaceStems(stem)[b])
		assert.NotEqual(t, BranchZi, b)
		assert.NotEqual(t, BranchChou, b)
	}

	b, ok := LaiyinPalace(StemJi, PalaceStems(StemJi))
	assert.True(t, ok)
	assert.Equal(t, BranchSi, b)
}

func TestLaiyinPalace_AbsentIsNotAnError(t *testing.T) {
	var stems [BranchCount]Stem
	for i := range stems {
		stems[i] = StemJia
	}
	_, ok := LaiyinPalace(StemYi, stems)
	assert.False(t, ok)
}

func TestOppositeAndTriad(t *testing.T) {
	assert.Equal(t, BranchWu, Opposite(BranchZi))
	assert.Equal(t, BranchYin, Opposite(BranchShen))
	assert.Equal(t, [2]Branch{BranchChen, BranchShen}, Triad(BranchZi))
	assert.Equal(t, [2]Branch{BranchXu, BranchYin}, Triad(BranchWu))
}
