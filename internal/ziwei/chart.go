package ziwei

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"
)

// Cache memoizes charts by the content address of their input.
type Cache interface {
	Get(key string) (*Chart, bool, error)
	Put(key string, chart *Chart) error
}

// TableVersion is the revision of the lookup tables and assembly rules. It
// is part of every cache key and must change whenever any input would get
// a different chart.
const TableVersion = "3"

// Key returns the content address of the full input tuple under the
// current TableVersion.
func (in BirthInput) Key() string {
	sum := sha256.Sum256([]byte(in.canonical()))
	return hex.EncodeToString(sum[:])
}

func (in BirthInput) canonical() string {
	return fmt.Sprintf("v%s|%d|%d|%d|%d|%s|%t|%t", TableVersion,
		in.Year, in.Month, in.Day, in.Hour, in.Gender, in.IsLunar, in.IsLeapMonth)
}

// Calculator assembles charts. Construct one with New and share it; it
// holds no per-chart state.
type Calculator struct {
	resolver  Resolver
	logger    *zap.Logger
	cache     Cache
	annotator *Annotator
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithResolver replaces the lunar-go resolver.
func WithResolver(r Resolver) Option {
	return func(c *Calculator) { c.resolver = r }
}

// WithLogger sets the logger for soft failures.
func WithLogger(l *zap.Logger) Option {
	return func(c *Calculator) { c.logger = l }
}

// WithCache enables memoization.
func WithCache(cache Cache) Option {
	return func(c *Calculator) { c.cache = cache }
}

// New creates a Calculator.
func New(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.resolver == nil {
		c.resolver = NewLunarResolver()
	}
	c.annotator = NewAnnotator(c.logger)
	return c
}

// Calculate builds the chart for in. It either returns a complete chart or
// a *StageError wrapping the typed cause; it never returns a partial chart.
func (c *Calculator) Calculate(in BirthInput) (*Chart, error) {
	if err := Validate(in); err != nil {
		return nil, &StageError{Stage: StageValidate, Err: err}
	}

	key := in.Key()
	if c.cache != nil {
		cached, ok, err := c.cache.Get(key)
		switch {
		case err != nil:
			c.logger.Warn("chart cache read failed", zap.String("key", key), zap.Error(err))
		case ok:
			c.logger.Debug("chart cache hit", zap.String("key", key))
			return cached, nil
		}
	}

	sx, err := c.resolver.Resolve(in)
	if err != nil {
		return nil, &StageError{Stage: StageResolve, Err: err}
	}

	chart := Assemble(in, sx, c.annotator)

	if c.cache != nil {
		if err := c.cache.Put(key, chart); err != nil {
			c.logger.Warn("chart cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return chart, nil
}

// Assemble runs palace location through period layout over a resolved
// birth moment.
func Assemble(in BirthInput, sx Sexagenary, annotator *Annotator) *Chart {
	if annotator == nil {
		annotator = NewAnnotator(nil)
	}

	life := LifePalace(sx.LunarMonth, sx.HourBranch)
	body := BodyPalace(sx.LunarMonth, sx.HourBranch)
	stems := PalaceStems(sx.YearStem)
	laiyin, hasLaiyin := LaiyinPalace(sx.YearStem, stems)
	bureau := FiveElementsBureau(sx.YearStem, life)

	placement := PlaceStars(PlacementInput{
		Bureau:     bureau,
		LunarDay:   sx.LunarDay,
		LunarMonth: sx.LunarMonth,
		YearStem:   sx.YearStem,
		YearBranch: sx.YearBranch,
		Hour:       sx.HourBranch,
	})
	ann := annotator.Annotate(sx.YearStem, stems, placement)
	periods := MajorPeriods(in.Gender, sx.YearStem, bureau, life, sx.SolarYear)

	chart := &Chart{
		Input:      in,
		Sexagenary: sx,
		Life:       life,
		Body:       body,
		Laiyin:     laiyin,
		HasLaiyin:  hasLaiyin,
		Bureau:     bureau,
		LifeMaster: LifeMaster(life),
		BodyMaster: BodyMaster(sx.YearBranch),
		Doujun:     Doujun(sx.LunarMonth, sx.HourBranch),
		Flights:    ann.Flights,
	}

	for b := BranchZi; b <= BranchHai; b++ {
		p := Palace{
			Branch:        b,
			Stem:          stems[b],
			Role:          RoleAt(life, b),
			Main:          []PlacedStar{},
			Auxiliary:     []PlacedStar{},
			Malefic:       []PlacedStar{},
			Romance:       []PlacedStar{},
			FleetingYears: FleetingYears(b),
			MinorLimit:    MinorLimit(in.Gender, sx.YearBranch, b),
		}
		for _, mp := range periods {
			if mp.Branch == b {
				p.MajorPeriod = mp
			}
		}
		for _, id := range placement.At(b) {
			star := PlacedStar{
				Star:       id,
				Branch:     b,
				Brightness: BrightnessOf(id, b),
				Markers:    append([]Marker{}, ann.Markers(id)...),
			}
			switch id.Category() {
			case CategoryMain:
				p.Main = append(p.Main, star)
			case CategoryAuxiliary:
				p.Auxiliary = append(p.Auxiliary, star)
			case CategoryMalefic:
				p.Malefic = append(p.Malefic, star)
			default:
				p.Romance = append(p.Romance, star)
			}
		}
		chart.Palaces[b] = p
	}
	return chart
}
