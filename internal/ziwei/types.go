// Package ziwei computes ZiWei Dou Shu charts from a birth moment.
//
// Every stage is a pure function over value inputs. The Calculator wires
// the stages together and is the only place that touches the calendar
// library, the cache and the logger.
package ziwei

import "fmt"

// Branch is one of the 12 earthly branches, arranged as a ring.
type Branch int

const (
	BranchZi   Branch = iota // 子
	BranchChou               // 丑
	BranchYin                // 寅
	BranchMao                // 卯
	BranchChen               // 辰
	BranchSi                 // 巳
	BranchWu                 // 午
	BranchWei                // 未
	BranchShen               // 申
	BranchYou                // 酉
	BranchXu                 // 戌
	BranchHai                // 亥
)

// BranchCount is the size of the palace ring.
const BranchCount = 12

var branchNames = [BranchCount]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// Add moves n steps clockwise around the ring (negative n moves back).
func (b Branch) Add(n int) Branch {
	return Branch(((int(b)+n)%BranchCount + BranchCount) % BranchCount)
}

// Valid reports whether b is inside the ring.
func (b Branch) Valid() bool { return b >= BranchZi && b <= BranchHai }

func (b Branch) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Branch(%d)", int(b))
	}
	return branchNames[b]
}

// ParseBranch maps a branch glyph back to its index.
func ParseBranch(s string) (Branch, bool) {
	for i, name := range branchNames {
		if name == s {
			return Branch(i), true
		}
	}
	return 0, false
}

// Stem is one of the 10 heavenly stems.
type Stem int

const (
	StemJia  Stem = iota // 甲
	StemYi               // 乙
	StemBing             // 丙
	StemDing             // 丁
	StemWu               // 戊
	StemJi               // 己
	StemGeng             // 庚
	StemXin              // 辛
	StemRen              // 壬
	StemGui              // 癸
)

// StemCount is the length of the stem cycle.
const StemCount = 10

var stemNames = [StemCount]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// Add cycles n steps through the stems.
func (s Stem) Add(n int) Stem {
	return Stem(((int(s)+n)%StemCount + StemCount) % StemCount)
}

// Yang reports whether the stem is yang (even index).
func (s Stem) Yang() bool { return s%2 == 0 }

// Valid reports whether s is one of the 10 stems.
func (s Stem) Valid() bool { return s >= StemJia && s <= StemGui }

func (s Stem) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stem(%d)", int(s))
	}
	return stemNames[s]
}

// ParseStem maps a stem glyph back to its index.
func ParseStem(s string) (Stem, bool) {
	for i, name := range stemNames {
		if name == s {
			return Stem(i), true
		}
	}
	return 0, false
}

// Gender of the chart subject.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Chinese returns 男 or 女.
func (g Gender) Chinese() string {
	if g == Female {
		return "女"
	}
	return "男"
}

// Bureau is the five-elements bureau. Its value is the bureau number.
type Bureau int

const (
	Water2 Bureau = 2 // 水二局
	Wood3  Bureau = 3 // 木三局
	Metal4 Bureau = 4 // 金四局
	Earth5 Bureau = 5 // 土五局
	Fire6  Bureau = 6 // 火六局
)

var bureauNames = map[Bureau]string{
	Water2: "水二局",
	Wood3:  "木三局",
	Metal4: "金四局",
	Earth5: "土五局",
	Fire6:  "火六局",
}

// Valid reports whether b is one of the five enumerated bureaus.
func (b Bureau) Valid() bool { return b >= Water2 && b <= Fire6 }

// Number is the bureau's numeric value, 2 through 6.
func (b Bureau) Number() int { return int(b) }

// Name returns the traditional label, e.g. 水二局.
func (b Bureau) Name() string {
	if name, ok := bureauNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Bureau(%d)", int(b))
}

func (b Bureau) String() string { return b.Name() }

// Role is one of the 12 palace roles, counted counter-clockwise from Life.
type Role int

const (
	RoleLife     Role = iota // 命宫
	RoleSiblings             // 兄弟
	RoleSpouse               // 夫妻
	RoleChildren             // 子女
	RoleWealth               // 财帛
	RoleHealth               // 疾厄
	RoleTravel               // 迁移
	RoleFriends              // 交友
	RoleCareer               // 官禄
	RoleProperty             // 田宅
	RoleFortune              // 福德
	RoleParents              // 父母
)

var roleNames = [BranchCount]string{"命宫", "兄弟", "夫妻", "子女", "财帛", "疾厄", "迁移", "交友", "官禄", "田宅", "福德", "父母"}

func (r Role) String() string {
	if r < RoleLife || r > RoleParents {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// Category groups stars by their function in the chart.
type Category int

const (
	CategoryMain      Category = iota // 主星
	CategoryAuxiliary                 // 辅星
	CategoryMalefic                   // 煞星
	CategoryRomance                   // 桃花/杂曜
)

var categoryNames = [...]string{"主星", "辅星", "煞星", "小星"}

func (c Category) String() string {
	if c < CategoryMain || c > CategoryRomance {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Brightness is the six-level star strength, brightest first.
type Brightness int

const (
	Miao Brightness = iota // 庙
	Wang                   // 旺
	De                     // 得
	Li                     // 利
	Ping                   // 平
	Xian                   // 陷
)

var brightnessNames = [...]string{"庙", "旺", "得", "利", "平", "陷"}

func (b Brightness) String() string {
	if b < Miao || b > Xian {
		return fmt.Sprintf("Brightness(%d)", int(b))
	}
	return brightnessNames[b]
}

// Letter is one of the four transformations.
type Letter int

const (
	LetterLu   Letter = iota // 禄 (A)
	LetterQuan               // 权 (B)
	LetterKe                 // 科 (C)
	LetterJi                 // 忌 (D)
)

// Letters lists the transformations in table order.
var Letters = [4]Letter{LetterLu, LetterQuan, LetterKe, LetterJi}

// Code returns the short letter A through D.
func (l Letter) Code() string { return string(rune('A' + int(l))) }

func (l Letter) String() string {
	switch l {
	case LetterLu:
		return "禄"
	case LetterQuan:
		return "权"
	case LetterKe:
		return "科"
	case LetterJi:
		return "忌"
	}
	return fmt.Sprintf("Letter(%d)", int(l))
}

// MarkerKind distinguishes the transformation layers.
type MarkerKind int

const (
	MarkerNatal   MarkerKind = iota // birth-year stem
	MarkerInward                    // palace stem lands on a star in the same palace
	MarkerOutward                   // palace stem lands on a star in another palace
)

// Marker is a transformation attached to a placed star.
type Marker struct {
	Kind   MarkerKind `json:"kind"`
	Letter Letter     `json:"letter"`
	Origin Branch     `json:"origin"` // casting palace; the birth palace of the star for natal markers
}

// String renders the marker as A, iA or xA.
func (m Marker) String() string {
	switch m.Kind {
	case MarkerInward:
		return "i" + m.Letter.Code()
	case MarkerOutward:
		return "x" + m.Letter.Code()
	}
	return m.Letter.Code()
}

// PlacedStar is a star bound to one palace of a chart.
type PlacedStar struct {
	Star       StarID     `json:"star"`
	Branch     Branch     `json:"branch"`
	Brightness Brightness `json:"brightness"`
	Markers    []Marker   `json:"markers"`
}

// Has reports whether the star carries a marker of the given kind and letter.
func (s PlacedStar) Has(kind MarkerKind, letter Letter) bool {
	for _, m := range s.Markers {
		if m.Kind == kind && m.Letter == letter {
			return true
		}
	}
	return false
}

// MajorPeriod is one ten-year decade bound to a palace.
type MajorPeriod struct {
	Period    int    `json:"period"` // 1..12
	Branch    Branch `json:"branch"`
	StartAge  int    `json:"startAge"`
	EndAge    int    `json:"endAge"`
	StartYear int    `json:"startYear"`
	EndYear   int    `json:"endYear"`
}

// Palace is one slot of the ring with everything placed in it.
type Palace struct {
	Branch        Branch       `json:"branch"`
	Stem          Stem         `json:"stem"`
	Role          Role         `json:"role"`
	Main          []PlacedStar `json:"main"`
	Auxiliary     []PlacedStar `json:"auxiliary"`
	Malefic       []PlacedStar `json:"malefic"`
	Romance       []PlacedStar `json:"romance"`
	FleetingYears []int        `json:"fleetingYears"`
	MajorPeriod   MajorPeriod  `json:"majorPeriod"`
	MinorLimit    []int        `json:"minorLimit"`
}

// Stars returns every star in the palace, main stars first.
func (p Palace) Stars() []PlacedStar {
	out := make([]PlacedStar, 0, len(p.Main)+len(p.Auxiliary)+len(p.Malefic)+len(p.Romance))
	out = append(out, p.Main...)
	out = append(out, p.Auxiliary...)
	out = append(out, p.Malefic...)
	return append(out, p.Romance...)
}

// BirthInput is the input tuple for one chart.
type BirthInput struct {
	Year        int    `yaml:"year" json:"year" toml:"year"`
	Month       int    `yaml:"month" json:"month" toml:"month"`
	Day         int    `yaml:"day" json:"day" toml:"day"`
	Hour        int    `yaml:"hour" json:"hour" toml:"hour"` // 0-23
	Gender      Gender `yaml:"gender" json:"gender" toml:"gender"`
	IsLunar     bool   `yaml:"isLunar,omitempty" json:"isLunar,omitempty" toml:"isLunar,omitempty"`
	IsLeapMonth bool   `yaml:"isLeapMonth,omitempty" json:"isLeapMonth,omitempty" toml:"isLeapMonth,omitempty"`
}

// Sexagenary is the stem-branch view of a birth moment.
type Sexagenary struct {
	YearStem    Stem   `json:"yearStem"`
	YearBranch  Branch `json:"yearBranch"`
	MonthStem   Stem   `json:"monthStem"`
	MonthBranch Branch `json:"monthBranch"`
	DayStem     Stem   `json:"dayStem"`
	DayBranch   Branch `json:"dayBranch"`
	HourStem    Stem   `json:"hourStem"`
	HourBranch  Branch `json:"hourBranch"`
	SolarYear   int    `json:"solarYear"` // civil year of the birth date
	LunarYear   int    `json:"lunarYear"`
	LunarMonth  int    `json:"lunarMonth"` // 1..12, leap flag kept separately
	LunarDay    int    `json:"lunarDay"`
	LeapMonth   bool   `json:"leapMonth"`
}

// Bazi returns the four pillars, e.g. "己巳 丙子 丙寅 乙未".
func (s Sexagenary) Bazi() string {
	return fmt.Sprintf("%s%s %s%s %s%s %s%s",
		s.YearStem, s.YearBranch,
		s.MonthStem, s.MonthBranch,
		s.DayStem, s.DayBranch,
		s.HourStem, s.HourBranch)
}

// YearGanzhi returns the year pillar.
func (s Sexagenary) YearGanzhi() string { return s.YearStem.String() + s.YearBranch.String() }

// Flight is one palace-stem transformation cast onto a star.
type Flight struct {
	From   Branch `json:"from"`
	To     Branch `json:"to"`
	Star   StarID `json:"star"`
	Letter Letter `json:"letter"`
}

// Inward reports whether the transformation stays in the casting palace.
func (f Flight) Inward() bool { return f.From == f.To }

// Chart is the assembled result. It is never modified after Calculate returns.
type Chart struct {
	Input      BirthInput          `json:"input"`
	Sexagenary Sexagenary          `json:"sexagenary"`
	Palaces    [BranchCount]Palace `json:"palaces"` // indexed by Branch
	Life       Branch              `json:"life"`
	Body       Branch              `json:"body"`
	Laiyin     Branch              `json:"laiyin"`
	HasLaiyin  bool                `json:"hasLaiyin"`
	Bureau     Bureau              `json:"bureau"`
	LifeMaster StarID              `json:"lifeMaster"`
	BodyMaster StarID              `json:"bodyMaster"`
	Doujun     Branch              `json:"doujun"`
	Flights    []Flight            `json:"flights"`
}

// Palace returns the palace bound to role.
func (c *Chart) Palace(role Role) Palace {
	return c.Palaces[BranchOf(c.Life, role)]
}

// Find returns the placed star and true when the chart holds it.
func (c *Chart) Find(id StarID) (PlacedStar, bool) {
	for _, p := range c.Palaces {
		for _, s := range p.Stars() {
			if s.Star == id {
				return s, true
			}
		}
	}
	return PlacedStar{}, false
}
