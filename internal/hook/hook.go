// Package hook converts charts into the shapes consumed by analysis and
// display collaborators: the Hook chart (branch-keyed JSON) and the render
// chart (grid-positioned palaces).
package hook

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/f3rmion/ziwei/internal/ziwei"
	"gopkg.in/yaml.v3"
)

// Star is one star entry of a palace.
type Star struct {
	Name       string   `json:"name" yaml:"name"`
	Brightness string   `json:"brightness" yaml:"brightness"`
	Type       []string `json:"type" yaml:"type"` // transformation markers: A, iA, xA ...
}

// MajorPeriod is the decade bound to a palace.
type MajorPeriod struct {
	Period    int `json:"period" yaml:"period"`
	StartAge  int `json:"startAge" yaml:"startAge"`
	EndAge    int `json:"endAge" yaml:"endAge"`
	StartYear int `json:"startYear" yaml:"startYear"`
	EndYear   int `json:"endYear" yaml:"endYear"`
}

// Palace is the Hook entry for one branch.
type Palace struct {
	Branch         string      `json:"branch" yaml:"branch"`
	BranchIndex    int         `json:"branchIndex" yaml:"branchIndex"`
	Stem           string      `json:"stem" yaml:"stem"`
	PalaceName     string      `json:"palaceName" yaml:"palaceName"`
	MainStars      []Star      `json:"mainStars" yaml:"mainStars"`
	AuxiliaryStars []Star      `json:"auxiliaryStars" yaml:"auxiliaryStars"`
	MinorStars     []Star      `json:"minorStars" yaml:"minorStars"`
	FleetingYears  []int       `json:"fleetingYears" yaml:"fleetingYears"`
	MajorPeriod    MajorPeriod `json:"majorPeriod" yaml:"majorPeriod"`
	MinorPeriod    []int       `json:"minorPeriod" yaml:"minorPeriod"`
}

// Solar echoes the input tuple.
type Solar struct {
	Year    int    `json:"year" yaml:"year"`
	Month   int    `json:"month" yaml:"month"`
	Day     int    `json:"day" yaml:"day"`
	Hour    int    `json:"hour" yaml:"hour"`
	Gender  string `json:"gender" yaml:"gender"`
	IsLunar bool   `json:"isLunar" yaml:"isLunar"`
}

// Lunar is the resolved lunar birth moment.
type Lunar struct {
	YearStem    string `json:"yearStem" yaml:"yearStem"`
	YearBranch  string `json:"yearBranch" yaml:"yearBranch"`
	YearGanzhi  string `json:"yearGanzhi" yaml:"yearGanzhi"`
	MonthLunar  int    `json:"monthLunar" yaml:"monthLunar"`
	DayLunar    int    `json:"dayLunar" yaml:"dayLunar"`
	HourBranch  string `json:"hourBranch" yaml:"hourBranch"`
	IsLeapMonth bool   `json:"isLeapMonth" yaml:"isLeapMonth"`
}

// BirthInfo holds both calendar views of the birth moment.
type BirthInfo struct {
	Solar Solar `json:"solar" yaml:"solar"`
	Lunar Lunar `json:"lunar" yaml:"lunar"`
}

// Bureau is the 五行局 entry. Number is a string ("2".."6").
type Bureau struct {
	Name   string `json:"name" yaml:"name"`
	Number string `json:"局数" yaml:"局数"`
}

// Chart is the Hook chart. It marshals (JSON and YAML) as one object with
// the twelve branch keys first, followed by the top-level fields.
type Chart struct {
	Palaces    [ziwei.BranchCount]Palace
	BirthInfo  BirthInfo
	Bazi       string
	Life       string
	Body       string
	Laiyin     *string // nil when no palace carries the year stem
	LifeMaster string
	BodyMaster string
	Doujun     string
	Bureau     Bureau
}

type field struct {
	key   string
	value any
}

func (c *Chart) fields() []field {
	out := make([]field, 0, ziwei.BranchCount+9)
	for i := range c.Palaces {
		out = append(out, field{c.Palaces[i].Branch, c.Palaces[i]})
	}
	return append(out,
		field{"birthInfo", c.BirthInfo},
		field{"八字", c.Bazi},
		field{"命宫", c.Life},
		field{"身宫", c.Body},
		field{"来因宫", c.Laiyin},
		field{"命主", c.LifeMaster},
		field{"身主", c.BodyMaster},
		field{"斗君", c.Doujun},
		field{"五行局", c.Bureau},
	)
}

// MarshalJSON implements json.Marshaler.
func (c Chart) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range c.fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler with the same key order as JSON.
func (c Chart) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range c.fields() {
		val := &yaml.Node{}
		if err := val.Encode(f.value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.key},
			val)
	}
	return node, nil
}

// Convert builds the Hook chart. It only reads c.
func Convert(c *ziwei.Chart) Chart {
	sx := c.Sexagenary
	out := Chart{
		BirthInfo: BirthInfo{
			Solar: Solar{
				Year:    c.Input.Year,
				Month:   c.Input.Month,
				Day:     c.Input.Day,
				Hour:    c.Input.Hour,
				Gender:  string(c.Input.Gender),
				IsLunar: c.Input.IsLunar,
			},
			Lunar: Lunar{
				YearStem:    sx.YearStem.String(),
				YearBranch:  sx.YearBranch.String(),
				YearGanzhi:  sx.YearGanzhi(),
				MonthLunar:  sx.LunarMonth,
				DayLunar:    sx.LunarDay,
				HourBranch:  sx.HourBranch.String(),
				IsLeapMonth: sx.LeapMonth,
			},
		},
		Bazi:       sx.Bazi(),
		Life:       c.Life.String(),
		Body:       c.Body.String(),
		LifeMaster: c.LifeMaster.String(),
		BodyMaster: c.BodyMaster.String(),
		Doujun:     c.Doujun.String(),
		Bureau: Bureau{
			Name:   c.Bureau.Name(),
			Number: strconv.Itoa(c.Bureau.Number()),
		},
	}
	if c.HasLaiyin {
		laiyin := c.Laiyin.String()
		out.Laiyin = &laiyin
	}

	for i, p := range c.Palaces {
		mp := p.MajorPeriod
		out.Palaces[i] = Palace{
			Branch:         p.Branch.String(),
			BranchIndex:    int(p.Branch),
			Stem:           p.Stem.String(),
			PalaceName:     p.Role.String(),
			MainStars:      convertStars(p.Main),
			AuxiliaryStars: convertStars(p.Auxiliary, p.Malefic),
			MinorStars:     convertStars(p.Romance),
			FleetingYears:  append([]int{}, p.FleetingYears...),
			MajorPeriod: MajorPeriod{
				Period:    mp.Period,
				StartAge:  mp.StartAge,
				EndAge:    mp.EndAge,
				StartYear: mp.StartYear,
				EndYear:   mp.EndYear,
			},
			MinorPeriod: append([]int{}, p.MinorLimit...),
		}
	}
	return out
}

func convertStars(groups ...[]ziwei.PlacedStar) []Star {
	out := []Star{}
	for _, group := range groups {
		for _, s := range group {
			out = append(out, Star{
				Name:       s.Star.String(),
				Brightness: s.Brightness.String(),
				Type:       markerTokens(s.Markers),
			})
		}
	}
	return out
}

// markerTokens lists every marker in layer order. A letter cast by two
// palaces appears twice.
func markerTokens(ms []ziwei.Marker) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.String()
	}
	return out
}
