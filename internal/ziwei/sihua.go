package ziwei

import "go.uber.org/zap"

// SihuaOf returns the four stars a stem transforms, in 禄 权 科 忌 order.
func SihuaOf(stem Stem) [4]StarID {
	return sihuaTable[stem]
}

// Annotation holds the merged transformation markers of one chart.
type Annotation struct {
	markers [StarCount][]Marker
	Flights []Flight
}

// Markers returns the markers attached to star, natal first.
func (a *Annotation) Markers(star StarID) []Marker {
	return a.markers[star]
}

func (a *Annotation) add(star StarID, m Marker) {
	a.markers[star] = append(a.markers[star], m)
}

// Annotator overlays the natal and palace-stem transformations onto a
// placement. Target stars missing from the placement are logged and skipped.
type Annotator struct {
	logger *zap.Logger
}

// NewAnnotator returns an annotator logging misses to logger.
func NewAnnotator(logger *zap.Logger) *Annotator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Annotator{logger: logger}
}

// Annotate runs the natal pass, then the palace-stem pass, and merges the
// markers per star. No marker overwrites another.
func (a *Annotator) Annotate(yearStem Stem, stems [BranchCount]Stem, p Placement) *Annotation {
	ann := &Annotation{Flights: []Flight{}}
	a.natal(ann, yearStem, p)
	a.flying(ann, stems, p)
	return ann
}

func (a *Annotator) natal(ann *Annotation, yearStem Stem, p Placement) {
	for i, star := range sihuaTable[yearStem] {
		at, ok := p.Where(star)
		if !ok {
			a.logger.Warn("natal transform target not placed",
				zap.String("stem", yearStem.String()),
				zap.String("star", star.String()),
				zap.String("letter", Letters[i].Code()))
			continue
		}
		ann.add(star, Marker{Kind: MarkerNatal, Letter: Letters[i], Origin: at})
	}
}

// flying casts every palace's stem onto the ring. A star sitting in the
// casting palace gets an inward marker. Any other target, wherever it is,
// gets an outward marker that records the casting palace.
func (a *Annotator) flying(ann *Annotation, stems [BranchCount]Stem, p Placement) {
	for from := BranchZi; from <= BranchHai; from++ {
		for i, star := range sihuaTable[stems[from]] {
			letter := Letters[i]
			to, ok := p.Where(star)
			if !ok {
				a.logger.Warn("flying transform target not placed",
					zap.String("from", from.String()),
					zap.String("stem", stems[from].String()),
					zap.String("star", star.String()),
					zap.String("letter", letter.Code()))
				continue
			}
			f := Flight{From: from, To: to, Star: star, Letter: letter}
			ann.Flights = append(ann.Flights, f)

			kind := MarkerOutward
			if f.Inward() {
				kind = MarkerInward
			}
			ann.add(star, Marker{Kind: kind, Letter: letter, Origin: from})
		}
	}
}
