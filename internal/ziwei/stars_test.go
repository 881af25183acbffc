package ziwei

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables_Coverage(t *testing.T) {
	assert.Len(t, ziweiTable, 5)
	for i, row := range ziweiTable {
		assert.Len(t, row, 30)
		for day, b := range row {
			assert.True(t, b.Valid(), "bureau row %d day %d", i, day+1)
		}
	}
	assert.Len(t, sihuaTable, StemCount)
	assert.Len(t, lucunTable, StemCount)
	assert.Len(t, kuiYueTable, StemCount)
	assert.Len(t, lifeMasterTable, BranchCount)
	assert.Len(t, bodyMasterTable, BranchCount)
	assert.Len(t, ziweiSeries, 6)
	assert.Len(t, tianfuSeries, 8)
}

func TestBrightnessTable_EveryStarEveryBranch(t *testing.T) {
	for _, star := range AllStars() {
		for b := BranchZi; b <= BranchHai; b++ {
			got := BrightnessOf(star, b)
			assert.True(t, got >= Miao && got <= Xian, "%s at %s", star, b)
		}
	}
}

func TestBrightnessTable_Transcribed(t *testing.T) {
	assert.Equal(t, Miao, BrightnessOf(StarZiwei, BranchZi))
	assert.Equal(t, De, BrightnessOf(StarZiwei, BranchShen))
	assert.Equal(t, Xian, BrightnessOf(StarZiwei, BranchSi), "不 folds into 陷")
	assert.Equal(t, Xian, BrightnessOf(StarTianliang, BranchChou), "不 folds into 陷")
	assert.Equal(t, Wang, BrightnessOf(StarPojun, BranchWu))
	assert.Equal(t, Li, BrightnessOf(StarHuoxing, BranchXu))
	for b := BranchZi; b <= BranchHai; b++ {
		assert.Equal(t, Miao, BrightnessOf(StarTianfu, b))
		assert.Equal(t, Xian, BrightnessOf(StarDikong, b))
		assert.Equal(t, Ping, BrightnessOf(StarTianxing, b))
	}
}

func TestStarCategories(t *testing.T) {
	counts := map[Category]int{}
	for _, s := range AllStars() {
		counts[s.Category()]++
	}
	assert.Equal(t, 14, counts[CategoryMain])
	assert.Equal(t, 8, counts[CategoryAuxiliary])
	assert.Equal(t, 7, counts[CategoryMalefic])
	assert.Equal(t, 4, counts[CategoryRomance])

	id, ok := ParseStar("七杀")
	require.True(t, ok)
	assert.Equal(t, StarQisha, id)
}

func TestZiweiPosition_ClampsDay(t *testing.T) {
	assert.Equal(t, ZiweiPosition(Water2, 1), ZiweiPosition(Water2, 0))
	assert.Equal(t, ZiweiPosition(Fire6, 30), ZiweiPosition(Fire6, 31))
	assert.Equal(t, BranchChou, ZiweiPosition(Metal4, 5))
	assert.Equal(t, BranchShen, ZiweiPosition(Earth5, 5))
	assert.Equal(t, BranchXu, ZiweiPosition(Fire6, 7))
}

func TestTianfuPosition_Mirror(t *testing.T) {
	for zw := BranchZi; zw <= BranchHai; zw++ {
		tf := TianfuPosition(zw)
		assert.Equal(t, BranchChen, tf.Add(int(zw)), "ziwei %s", zw)
	}
	assert.Equal(t, BranchYin, TianfuPosition(BranchYin))
	assert.Equal(t, BranchShen, TianfuPosition(BranchShen))
	assert.Equal(t, BranchMao, TianfuPosition(BranchChou))
}

func TestPlaceStars_EveryStarOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bureaus := []Bureau{Water2, Wood3, Metal4, Earth5, Fire6}
	for trial := 0; trial < 300; trial++ {
		in := PlacementInput{
			Bureau:     bureaus[rng.Intn(5)],
			LunarDay:   rng.Intn(30) + 1,
			LunarMonth: rng.Intn(12) + 1,
			YearStem:   Stem(rng.Intn(StemCount)),
			YearBranch: Branch(rng.Intn(BranchCount)),
			Hour:       Branch(rng.Intn(BranchCount)),
		}
		p := PlaceStars(in)
		assert.Equal(t, StarCount, p.Len(), "trial %d", trial)

		total := 0
		for b := BranchZi; b <= BranchHai; b++ {
			total += len(p.At(b))
		}
		assert.Equal(t, StarCount, total, "trial %d", trial)

		lucun, _ := p.Where(StarLucun)
		yang, _ := p.Where(StarQingyang)
		tuo, _ := p.Where(StarTuoluo)
		assert.Equal(t, lucun.Add(1), yang)
		assert.Equal(t, lucun.Add(-1), tuo)
	}
}

func TestPlaceStars_Deterministic(t *testing.T) {
	in := PlacementInput{Bureau: Earth5, LunarDay: 5, LunarMonth: 12, YearStem: StemJi, YearBranch: BranchSi, Hour: BranchWei}
	assert.Equal(t, PlaceStars(in), PlaceStars(in))
}

func TestPlaceStars_GoldenAuxiliary(t *testing.T) {
	p := PlaceStars(PlacementInput{Bureau: Earth5, LunarDay: 5, LunarMonth: 12, YearStem: StemJi, YearBranch: BranchSi, Hour: BranchWei})
	want := map[StarID]Branch{
		StarWenchang: BranchMao,
		StarWenqu:    BranchHai,
		StarZuofu:    BranchMao,
		StarYoubi:    BranchHai,
		StarTiankui:  BranchZi,
		StarTianyue:  BranchShen,
		StarLucun:    BranchWu,
		StarTianma:   BranchHai,
		StarQingyang: BranchWei,
		StarTuoluo:   BranchSi,
		StarHuoxing:  BranchXu,
		StarLingxing: BranchSi,
		StarDikong:   BranchChen,
		StarDijie:    BranchWu,
		StarTianxing: BranchShen,
		StarHongluan: BranchXu,
		StarTianxi:   BranchChen,
		StarTianyao:  BranchZi,
		StarXianchi:  BranchWu,
	}
	for star, b := range want {
		got, ok := p.Where(star)
		require.True(t, ok, "%s", star)
		assert.Equal(t, b, got, "%s", star)
	}
}

func TestPlacement_Remove(t *testing.T) {
	var p Placement
	p.Set(StarZiwei, BranchZi)
	p.Set(StarTianji, BranchHai)
	p.Remove(StarZiwei)

	_, ok := p.Where(StarZiwei)
	assert.False(t, ok)
	assert.Empty(t, p.At(BranchZi))
	assert.Equal(t, []StarID{StarTianji}, p.At(BranchHai))
	assert.Equal(t, 1, p.Len())
}
