package hook

import (
	"fmt"

	"github.com/f3rmion/ziwei/internal/ziwei"
)

// Strength is the coarse weight of a palace in the render view.
type Strength string

const (
	StrengthStrong Strength = "strong"
	StrengthNormal Strength = "normal"
	StrengthWeak   Strength = "weak"
)

// Romanizer spells Han labels in Latin script.
type Romanizer interface {
	Romanize(s string) string
}

// Cell is a position on the 4x4 board; the centre four cells are unused.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// gridCells places the ring clockwise from 巳 in the top-left corner.
var gridCells = [ziwei.BranchCount]Cell{
	{3, 2}, // 子
	{3, 1}, // 丑
	{3, 0}, // 寅
	{2, 0}, // 卯
	{1, 0}, // 辰
	{0, 0}, // 巳
	{0, 1}, // 午
	{0, 2}, // 未
	{0, 3}, // 申
	{1, 3}, // 酉
	{2, 3}, // 戌
	{3, 3}, // 亥
}

// CellOf returns the board position of b.
func CellOf(b ziwei.Branch) Cell { return gridCells[b] }

type letterStyle struct {
	color string
	hex   string
}

var letterStyles = [4]letterStyle{
	{"success", "#28a745"}, // 禄
	{"warning", "#ffc107"}, // 权
	{"primary", "#007bff"}, // 科
	{"danger", "#dc3545"},  // 忌
}

// RenderStar is a star prepared for display.
type RenderStar struct {
	Name       string   `json:"name"`
	Pinyin     string   `json:"pinyin,omitempty"`
	Types      []string `json:"types"`
	Brightness string   `json:"brightness"`
	Sihua      string   `json:"sihua,omitempty"`
	Color      string   `json:"color"`
	Highlight  bool     `json:"highlight"`
	Markers    []string `json:"markers"`
}

// RenderPeriod is the decade label of a palace.
type RenderPeriod struct {
	Period    int    `json:"period"`
	AgeRange  string `json:"ageRange"`
	YearRange string `json:"yearRange"`
}

// RenderPalace is one cell of the board.
type RenderPalace struct {
	Branch      string       `json:"branch"`
	BranchIndex int          `json:"branchIndex"`
	Cell        Cell         `json:"cell"`
	Stem        string       `json:"stem"`
	PalaceName  string       `json:"palaceName"`
	Pinyin      string       `json:"pinyin,omitempty"`
	Stars       []RenderStar `json:"stars"`
	IsLife      bool         `json:"isLifePalace"`
	IsBody      bool         `json:"isBodyPalace"`
	IsLaiyin    bool         `json:"isLaiyinPalace"`
	Strength    Strength     `json:"strength"`
	IsEmpty     bool         `json:"isEmpty"`
	MajorPeriod RenderPeriod `json:"majorPeriod"`
	Opposite    string       `json:"opposite"`
	Triad       [2]string    `json:"triad"`
}

// Line is one palace-stem transformation drawn between two cells.
type Line struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Star   string `json:"star"`
	Sihua  string `json:"sihua"`
	Color  string `json:"color"`
	Inward bool   `json:"inward"`
}

// Center is the information block inside the ring.
type Center struct {
	Gender     string `json:"gender"`
	YearGanzhi string `json:"yearGanzhi"`
	LunarDate  string `json:"lunarDate"`
	Bazi       string `json:"bazi"`
	Bureau     Bureau `json:"bureau"`
	LifeMaster string `json:"lifeMaster"`
	BodyMaster string `json:"bodyMaster"`
	Doujun     string `json:"doujun"`
}

// RenderChart is the display model of a chart.
type RenderChart struct {
	Palaces [ziwei.BranchCount]RenderPalace `json:"palaces"`
	Center  Center                          `json:"center"`
	Lines   []Line                          `json:"lines"`
}

// RenderOption configures Render.
type RenderOption func(*renderer)

// WithRomanizer adds pinyin to star and palace names.
func WithRomanizer(r Romanizer) RenderOption {
	return func(rd *renderer) { rd.romanizer = r }
}

type renderer struct {
	romanizer Romanizer
}

func (rd *renderer) pinyin(s string) string {
	if rd.romanizer == nil {
		return ""
	}
	return rd.romanizer.Romanize(s)
}

// Render builds the display model of c. It only reads c.
func Render(c *ziwei.Chart, opts ...RenderOption) RenderChart {
	rd := &renderer{}
	for _, opt := range opts {
		opt(rd)
	}

	sx := c.Sexagenary
	leap := ""
	if sx.LeapMonth {
		leap = "闰"
	}
	out := RenderChart{
		Center: Center{
			Gender:     c.Input.Gender.Chinese(),
			YearGanzhi: sx.YearGanzhi(),
			LunarDate:  fmt.Sprintf("农历%s%d月%d日", leap, sx.LunarMonth, sx.LunarDay),
			Bazi:       sx.Bazi(),
			Bureau:     Bureau{Name: c.Bureau.Name(), Number: fmt.Sprint(c.Bureau.Number())},
			LifeMaster: c.LifeMaster.String(),
			BodyMaster: c.BodyMaster.String(),
			Doujun:     c.Doujun.String(),
		},
		Lines: make([]Line, 0, len(c.Flights)),
	}

	for i, p := range c.Palaces {
		out.Palaces[i] = rd.palace(c, p)
	}
	for _, f := range c.Flights {
		out.Lines = append(out.Lines, Line{
			From:   f.From.String(),
			To:     f.To.String(),
			Star:   f.Star.String(),
			Sihua:  f.Letter.String(),
			Color:  letterStyles[f.Letter].hex,
			Inward: f.Inward(),
		})
	}
	return out
}

func (rd *renderer) palace(c *ziwei.Chart, p ziwei.Palace) RenderPalace {
	mp := p.MajorPeriod
	triad := ziwei.Triad(p.Branch)
	rp := RenderPalace{
		Branch:      p.Branch.String(),
		BranchIndex: int(p.Branch),
		Cell:        CellOf(p.Branch),
		Stem:        p.Stem.String(),
		PalaceName:  p.Role.String(),
		Pinyin:      rd.pinyin(p.Role.String()),
		Stars:       []RenderStar{},
		IsLife:      p.Branch == c.Life,
		IsBody:      p.Branch == c.Body,
		IsLaiyin:    c.HasLaiyin && p.Branch == c.Laiyin,
		MajorPeriod: RenderPeriod{
			Period:    mp.Period,
			AgeRange:  fmt.Sprintf("%d-%d岁", mp.StartAge, mp.EndAge),
			YearRange: fmt.Sprintf("%d-%d年", mp.StartYear, mp.EndYear),
		},
		Opposite: ziwei.Opposite(p.Branch).String(),
		Triad:    [2]string{triad[0].String(), triad[1].String()},
	}

	transformed := 0
	for _, s := range p.Stars() {
		rs := rd.star(s)
		if rs.Sihua != "" {
			transformed++
		}
		rp.Stars = append(rp.Stars, rs)
	}
	rp.IsEmpty = len(rp.Stars) == 0
	rp.Strength = strengthOf(len(p.Main), transformed)
	return rp
}

// strengthOf weighs a palace by its main stars and birth-year transformations.
func strengthOf(main, transformed int) Strength {
	switch {
	case main >= 2 || transformed >= 2:
		return StrengthStrong
	case main == 0 && transformed == 0:
		return StrengthWeak
	}
	return StrengthNormal
}

func (rd *renderer) star(s ziwei.PlacedStar) RenderStar {
	rs := RenderStar{
		Name:       s.Star.String(),
		Pinyin:     rd.pinyin(s.Star.String()),
		Types:      []string{s.Star.Category().String()},
		Brightness: s.Brightness.String(),
		Color:      "primary",
		Markers:    markerTokens(s.Markers),
	}
	for _, m := range s.Markers {
		if m.Kind != ziwei.MarkerNatal {
			continue
		}
		rs.Sihua = m.Letter.String()
		rs.Color = letterStyles[m.Letter].color
		rs.Highlight = true
		rs.Types = append(rs.Types, "四化")
		break
	}
	return rs
}
