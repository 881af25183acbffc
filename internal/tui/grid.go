package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/ziwei/internal/hook"
	"github.com/f3rmion/ziwei/internal/ziwei"
	"github.com/mattn/go-runewidth"
)

// cond measures cells. Box-drawing runes are counted as one column.
var cond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// GridOptions controls RenderGrid.
type GridOptions struct {
	CellWidth  int          // display columns per palace, default 20
	Color      bool         // emit ANSI styles
	Selected   ziwei.Branch // highlighted palace when HasSelect is set
	HasSelect  bool
	FlowBranch *ziwei.Branch // palace of the overlaid flow year, if any
}

const cellHeight = 6

func (o GridOptions) width() int {
	if o.CellWidth < 12 {
		return 20
	}
	return o.CellWidth
}

// segment is display text with an optional style.
type segment struct {
	text  string
	style *lipgloss.Style
}

// line joins segments and pads them to w columns, truncating when needed.
func line(w int, color bool, segs ...segment) string {
	var plain, styled strings.Builder
	used := 0
	for i, s := range segs {
		text := s.text
		if i > 0 && text != "" {
			text = " " + text
		}
		if used+cond.StringWidth(text) > w {
			text = cond.Truncate(text, w-used, "…")
		}
		used += cond.StringWidth(text)
		plain.WriteString(text)
		if color && s.style != nil {
			styled.WriteString(s.style.Render(text))
		} else {
			styled.WriteString(text)
		}
		if used >= w {
			break
		}
	}
	return styled.String() + strings.Repeat(" ", w-cond.StringWidth(plain.String()))
}

func starLabel(s hook.RenderStar) string {
	label := s.Name + s.Brightness
	if s.Sihua != "" {
		label += s.Sihua
	}
	return label
}

func palaceLines(p hook.RenderPalace, w int, opts GridOptions) []string {
	header := p.Stem + p.Branch + " " + p.PalaceName
	var flags []string
	if p.IsBody {
		flags = append(flags, "身")
	}
	if p.IsLaiyin {
		flags = append(flags, "来")
	}
	if opts.FlowBranch != nil && int(*opts.FlowBranch) == p.BranchIndex {
		flags = append(flags, "流")
	}
	if len(flags) > 0 {
		header += " ·" + strings.Join(flags, "")
	}
	headerStyle := PalaceHeaderStyle
	if opts.HasSelect && int(opts.Selected) == p.BranchIndex {
		headerStyle = PalaceSelectedStyle
	}

	var main, aux, minor []segment
	for _, s := range p.Stars {
		st := AuxStarStyle
		switch s.Types[0] {
		case ziwei.CategoryMain.String():
			st = MainStarStyle
		case ziwei.CategoryRomance.String():
			st = MinorStarStyle
		}
		if s.Highlight {
			st = st.Foreground(sihuaColors[s.Color])
		}
		seg := segment{text: starLabel(s), style: &st}
		switch s.Types[0] {
		case ziwei.CategoryMain.String():
			main = append(main, seg)
		case ziwei.CategoryRomance.String():
			minor = append(minor, seg)
		default:
			aux = append(aux, seg)
		}
	}

	last := p.Pinyin
	if last == "" {
		last = string(p.Strength)
	}
	return []string{
		line(w, opts.Color, segment{header, &headerStyle}),
		line(w, opts.Color, main...),
		line(w, opts.Color, aux...),
		line(w, opts.Color, minor...),
		line(w, opts.Color, segment{p.MajorPeriod.AgeRange, &PeriodStyle}),
		line(w, opts.Color, segment{last, &PeriodStyle}),
	}
}

func centerLines(c hook.Center, w, h int, opts GridOptions) []string {
	rows := []string{
		"",
		c.Bazi,
		c.Gender + " " + c.YearGanzhi + "年 " + c.LunarDate,
		c.Bureau.Name,
		"命主 " + c.LifeMaster + "  身主 " + c.BodyMaster,
		"斗君 " + c.Doujun,
	}
	out := make([]string, h)
	for i := range out {
		text := ""
		if i < len(rows) {
			text = rows[i]
		}
		pad := (w - cond.StringWidth(text)) / 2
		if pad < 0 {
			pad = 0
		}
		out[i] = line(w, opts.Color, segment{strings.Repeat(" ", pad) + text, &CenterStyle})
	}
	return out
}

func inCenter(row, col int) bool {
	return row >= 1 && row <= 2 && col >= 1 && col <= 2
}

// RenderGrid draws the 4x4 board with the chart summary in the middle.
func RenderGrid(rc hook.RenderChart, opts GridOptions) string {
	w := opts.width()
	var cells [4][4][]string
	for _, p := range rc.Palaces {
		cells[p.Cell.Row][p.Cell.Col] = palaceLines(p, w, opts)
	}
	center := centerLines(rc.Center, 2*w+1, 2*cellHeight+1, opts)

	hl := strings.Repeat("─", w)
	border := func(s string) string {
		if opts.Color {
			return BorderStyle.Render(s)
		}
		return s
	}
	rule := func(l, a, b, c, r string) string {
		return border(l+hl+a+hl+b+hl+c+hl+r) + "\n"
	}

	var sb strings.Builder
	sb.WriteString(rule("┌", "┬", "┬", "┬", "┐"))
	bar := border("│")
	for row := 0; row < 4; row++ {
		for ln := 0; ln < cellHeight; ln++ {
			sb.WriteString(bar)
			for col := 0; col < 4; col++ {
				if inCenter(row, col) {
					if col == 1 {
						sb.WriteString(center[(row-1)*(cellHeight+1)+ln])
						sb.WriteString(bar)
					}
					continue
				}
				sb.WriteString(cells[row][col][ln])
				sb.WriteString(bar)
			}
			sb.WriteString("\n")
		}
		switch row {
		case 0:
			sb.WriteString(rule("├", "┼", "┴", "┼", "┤"))
		case 1:
			sb.WriteString(border("├"+hl+"┤") + center[cellHeight] + border("├"+hl+"┤") + "\n")
		case 2:
			sb.WriteString(rule("├", "┼", "┬", "┼", "┤"))
		case 3:
			sb.WriteString(rule("└", "┴", "┴", "┴", "┘"))
		}
	}
	return sb.String()
}

// PalaceDetail formats everything known about one palace for the detail pane.
func PalaceDetail(c *ziwei.Chart, rc hook.RenderChart, b ziwei.Branch) string {
	p := c.Palaces[b]
	rp := rc.Palaces[b]

	var sb strings.Builder
	row := func(label, value string) {
		sb.WriteString(LabelStyle.Render(label) + ValueStyle.Render(value) + "\n")
	}
	row("宫位", fmt.Sprintf("%s%s %s", p.Stem, p.Branch, p.Role))
	row("强弱", string(rp.Strength))
	row("对宫", rp.Opposite+" "+c.Palaces[ziwei.Opposite(b)].Role.String())
	row("三合", rp.Triad[0]+" "+rp.Triad[1])
	row("大限", fmt.Sprintf("%s %s", rp.MajorPeriod.AgeRange, rp.MajorPeriod.YearRange))
	row("流年", joinInts(p.FleetingYears))
	row("小限", joinInts(p.MinorLimit))

	sb.WriteString("\n")
	for _, s := range p.Stars() {
		markers := ""
		for _, m := range s.Markers {
			markers += " " + m.String()
		}
		row(s.Star.Category().String(), s.Star.String()+" "+s.Brightness.String()+markers)
	}

	var out []string
	for _, f := range c.Flights {
		if f.From == b {
			kind := "→" + f.To.String()
			if f.Inward() {
				kind = "自化"
			}
			out = append(out, fmt.Sprintf("%s%s %s", f.Star, f.Letter, kind))
		}
	}
	if len(out) > 0 {
		sb.WriteString("\n")
		row("飞化", strings.Join(out, "  "))
	}
	return sb.String()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, " ")
}
