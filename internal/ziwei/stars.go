package ziwei

import "fmt"

// StarID identifies every star the engine places.
type StarID int

const (
	// Main stars, Ziwei series then Tianfu series.
	StarZiwei StarID = iota
	StarTianji
	StarTaiyang
	StarWuqu
	StarTiantong
	StarLianzhen
	StarTianfu
	StarTaiyin
	StarTanlang
	StarJumen
	StarTianxiang
	StarTianliang
	StarQisha
	StarPojun

	// Auxiliary stars.
	StarWenchang
	StarWenqu
	StarZuofu
	StarYoubi
	StarTiankui
	StarTianyue
	StarLucun
	StarTianma

	// Malefic stars.
	StarQingyang
	StarTuoluo
	StarHuoxing
	StarLingxing
	StarDikong
	StarDijie
	StarTianxing

	// Romance stars.
	StarHongluan
	StarTianxi
	StarTianyao
	StarXianchi

	StarCount int = iota
)

var starNames = [StarCount]string{
	"紫微", "天机", "太阳", "武曲", "天同", "廉贞",
	"天府", "太阴", "贪狼", "巨门", "天相", "天梁", "七杀", "破军",
	"文昌", "文曲", "左辅", "右弼", "天魁", "天钺", "禄存", "天马",
	"擎羊", "陀罗", "火星", "铃星", "地空", "地劫", "天刑",
	"红鸾", "天喜", "天姚", "咸池",
}

func (s StarID) String() string {
	if !s.Valid() {
		return fmt.Sprintf("StarID(%d)", int(s))
	}
	return starNames[s]
}

// Valid reports whether s is a known star.
func (s StarID) Valid() bool { return s >= 0 && int(s) < StarCount }

// Category returns the group the star belongs to.
func (s StarID) Category() Category {
	switch {
	case s <= StarPojun:
		return CategoryMain
	case s <= StarTianma:
		return CategoryAuxiliary
	case s <= StarTianxing:
		return CategoryMalefic
	}
	return CategoryRomance
}

// ParseStar maps a Chinese star name to its ID.
func ParseStar(name string) (StarID, bool) {
	for i, n := range starNames {
		if n == name {
			return StarID(i), true
		}
	}
	return 0, false
}

// AllStars lists every star in ID order.
func AllStars() []StarID {
	out := make([]StarID, StarCount)
	for i := range out {
		out[i] = StarID(i)
	}
	return out
}

// Placement records where each star sits on the ring.
type Placement struct {
	pos    [StarCount]Branch
	placed [StarCount]bool
}

// Set places id at b.
func (p *Placement) Set(id StarID, b Branch) {
	p.pos[id] = b
	p.placed[id] = true
}

// Remove drops id from the placement.
func (p *Placement) Remove(id StarID) {
	p.placed[id] = false
}

// Where returns the branch of id and whether it was placed.
func (p Placement) Where(id StarID) (Branch, bool) {
	return p.pos[id], p.placed[id]
}

// At returns the stars placed at b in ID order.
func (p Placement) At(b Branch) []StarID {
	var out []StarID
	for i := 0; i < StarCount; i++ {
		if p.placed[i] && p.pos[i] == b {
			out = append(out, StarID(i))
		}
	}
	return out
}

// Len returns the number of placed stars.
func (p Placement) Len() int {
	n := 0
	for _, ok := range p.placed {
		if ok {
			n++
		}
	}
	return n
}

// PlacementInput is everything star placement depends on.
type PlacementInput struct {
	Bureau     Bureau
	LunarDay   int
	LunarMonth int
	YearStem   Stem
	YearBranch Branch
	Hour       Branch
}

// ZiweiPosition looks up the Ziwei star for a bureau and lunar day.
// Days outside 1..30 are clamped.
func ZiweiPosition(bureau Bureau, lunarDay int) Branch {
	mustBureau(bureau)
	if lunarDay < 1 {
		lunarDay = 1
	}
	if lunarDay > 30 {
		lunarDay = 30
	}
	return ziweiTable[bureau-Water2][lunarDay-1]
}

// TianfuPosition mirrors Ziwei across the 寅-申 axis.
func TianfuPosition(ziwei Branch) Branch {
	return BranchChen.Add(-int(ziwei))
}

// PlaceStars places all stars for the given input.
func PlaceStars(in PlacementInput) Placement {
	var p Placement

	zw := ZiweiPosition(in.Bureau, in.LunarDay)
	for _, o := range ziweiSeries {
		p.Set(o.star, zw.Add(o.offset))
	}
	tf := TianfuPosition(zw)
	for _, o := range tianfuSeries {
		p.Set(o.star, tf.Add(o.offset))
	}

	h := int(in.Hour)
	m := in.LunarMonth - 1
	triad := in.YearBranch % 4

	p.Set(StarWenchang, BranchXu.Add(-h))
	p.Set(StarWenqu, BranchChen.Add(h))
	p.Set(StarZuofu, BranchChen.Add(m))
	p.Set(StarYoubi, BranchXu.Add(-m))
	p.Set(StarTiankui, kuiYueTable[in.YearStem][0])
	p.Set(StarTianyue, kuiYueTable[in.YearStem][1])
	lucun := lucunTable[in.YearStem]
	p.Set(StarLucun, lucun)
	p.Set(StarTianma, tianmaTable[triad])

	p.Set(StarQingyang, lucun.Add(1))
	p.Set(StarTuoluo, lucun.Add(-1))
	p.Set(StarHuoxing, huoxingBase[triad].Add(h))
	p.Set(StarLingxing, lingxingBase(in.YearBranch).Add(h))
	p.Set(StarDikong, BranchHai.Add(-h))
	p.Set(StarDijie, BranchHai.Add(h))
	p.Set(StarTianxing, BranchYou.Add(m))

	hongluan := BranchMao.Add(-int(in.YearBranch))
	p.Set(StarHongluan, hongluan)
	p.Set(StarTianxi, hongluan.Add(6))
	p.Set(StarTianyao, BranchChou.Add(m))
	p.Set(StarXianchi, xianchiTable[triad])

	return p
}

func lingxingBase(yearBranch Branch) Branch {
	if yearBranch%4 == BranchYin {
		return BranchMao
	}
	return BranchXu
}
