package ziwei

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func goldenPlacement() Placement {
	return PlaceStars(PlacementInput{Bureau: Earth5, LunarDay: 5, LunarMonth: 12, YearStem: StemJi, YearBranch: BranchSi, Hour: BranchWei})
}

func TestSihuaTable_StarsAreSihuaCapable(t *testing.T) {
	for stem := StemJia; stem <= StemGui; stem++ {
		for _, star := range SihuaOf(stem) {
			cat := star.Category()
			assert.True(t, cat == CategoryMain || cat == CategoryAuxiliary, "%s: %s", stem, star)
		}
	}
}

func TestAnnotate_NatalMarkers(t *testing.T) {
	p := goldenPlacement()
	ann := NewAnnotator(nil).Annotate(StemJi, PalaceStems(StemJi), p)

	natal := map[StarID]Letter{StarWuqu: LetterLu, StarTanlang: LetterQuan, StarTianliang: LetterKe, StarWenqu: LetterJi}
	for star, letter := range natal {
		ms := ann.Markers(star)
		require.NotEmpty(t, ms, "%s", star)
		assert.Equal(t, Marker{Kind: MarkerNatal, Letter: letter, Origin: mustWhere(t, p, star)}, ms[0])
	}
}

func TestAnnotate_MergeKeepsEveryLayer(t *testing.T) {
	ann := NewAnnotator(nil).Annotate(StemJi, PalaceStems(StemJi), goldenPlacement())

	// 天梁 sits in 丑: natal 科, then 巳(己) 科, 申(壬) 禄, 酉(癸) 忌 and
	// 亥(乙) 权, all cast from other palaces.
	assert.Equal(t, []string{"C", "xC", "xA", "xD", "xB"}, markerStrings(ann.Markers(StarTianliang)))
	assert.Equal(t, []Branch{BranchSi, BranchShen, BranchYou, BranchHai}, originsOf(ann.Markers(StarTianliang)[1:]))

	// 紫微 sits in 申 with 壬, so its own palace turns it 权.
	assert.Equal(t, []string{"iB", "xC"}, markerStrings(ann.Markers(StarZiwei)))

	// 天同 in 卯 is cast by six palaces; repeated letters stay.
	assert.Equal(t, []string{"xA", "xB", "xA", "iB", "xD", "xB"}, markerStrings(ann.Markers(StarTiantong)))
	assert.Equal(t, []Branch{BranchZi, BranchChou, BranchYin, BranchMao, BranchWu, BranchYou}, originsOf(ann.Markers(StarTiantong)))
}

func TestAnnotate_FlightsCoverEveryPalace(t *testing.T) {
	ann := NewAnnotator(nil).Annotate(StemJi, PalaceStems(StemJi), goldenPlacement())
	assert.Len(t, ann.Flights, BranchCount*4)

	inward := 0
	for _, f := range ann.Flights {
		if f.Inward() {
			inward++
			assert.Equal(t, f.From, f.To)
		}
	}
	// 子 廉贞 忌, 卯 天同 权 and 申 紫微 权
	assert.Equal(t, 3, inward)
}

// Every outward marker points back at a palace whose stem casts that
// letter onto the star where it actually sits.
func TestAnnotate_OutwardNeverOrphaned(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	bureaus := []Bureau{Water2, Wood3, Metal4, Earth5, Fire6}
	for trial := 0; trial < 200; trial++ {
		yearStem := Stem(rng.Intn(StemCount))
		p := PlaceStars(PlacementInput{
			Bureau:     bureaus[rng.Intn(5)],
			LunarDay:   rng.Intn(30) + 1,
			LunarMonth: rng.Intn(12) + 1,
			YearStem:   yearStem,
			YearBranch: Branch(rng.Intn(BranchCount)),
			Hour:       Branch(rng.Intn(BranchCount)),
		})
		stems := PalaceStems(yearStem)
		ann := NewAnnotator(nil).Annotate(yearStem, stems, p)

		for _, star := range AllStars() {
			at, _ := p.Where(star)
			for _, m := range ann.Markers(star) {
				if m.Kind == MarkerNatal {
					continue
				}
				assert.Equal(t, star, SihuaOf(stems[m.Origin])[m.Letter], "trial %d %s", trial, m)
				if m.Kind == MarkerOutward {
					assert.NotEqual(t, at, m.Origin, "trial %d", trial)
				} else {
					assert.Equal(t, at, m.Origin, "trial %d", trial)
				}
				assert.Contains(t, ann.Flights, Flight{From: m.Origin, To: at, Star: star, Letter: m.Letter})
			}
		}
	}
}

func TestAnnotate_MissingTargetIsLoggedAndSkipped(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	p := goldenPlacement()
	p.Remove(StarWuqu)

	ann := NewAnnotator(zap.New(core)).Annotate(StemJi, PalaceStems(StemJi), p)

	assert.Empty(t, ann.Markers(StarWuqu))
	for _, f := range ann.Flights {
		assert.NotEqual(t, StarWuqu, f.Star)
	}
	assert.Equal(t, 1, logs.FilterMessage("natal transform target not placed").Len())
	assert.Positive(t, logs.FilterMessage("flying transform target not placed").Len())
	assert.Equal(t, "武曲", logs.FilterMessage("flying transform target not placed").All()[0].ContextMap()["star"])

	// The rest of the chart is still annotated.
	assert.NotEmpty(t, ann.Markers(StarTianliang))
}

func originsOf(ms []Marker) []Branch {
	out := make([]Branch, len(ms))
	for i, m := range ms {
		out[i] = m.Origin
	}
	return out
}

func mustWhere(t *testing.T, p Placement, star StarID) Branch {
	t.Helper()
	b, ok := p.Where(star)
	require.True(t, ok, "%s not placed", star)
	return b
}
