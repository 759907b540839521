package domain

// YakuKind identifies a tracked scoring family.
type YakuKind int

const (
	YakuBrights YakuKind = iota
	YakuPoetryRibbons
	YakuBlueRibbons
	YakuInoShikaCho
	YakuHanami
	YakuTsukimi
	YakuRibbons
	YakuAnimals
	YakuChaff
)

func (k YakuKind) String() string {
	switch k {
	case YakuBrights:
		return "brights"
	case YakuPoetryRibbons:
		return "poetry-ribbons"
	case YakuBlueRibbons:
		return "blue-ribbons"
	case YakuInoShikaCho:
		return "ino-shika-cho"
	case YakuHanami:
		return "hanami-zake"
	case YakuTsukimi:
		return "tsukimi-zake"
	case YakuRibbons:
		return "ribbons"
	case YakuAnimals:
		return "animals"
	case YakuChaff:
		return "chaff"
	default:
		return "unknown"
	}
}

// CardFilter declares which cards qualify for a yaku. A card matches if it
// satisfies any listed criterion (types, ribbon colors, tags are OR-ed).
type CardFilter struct {
	Types   []CardType
	Ribbons []RibbonColor
	Tags    []SpecialTag
}

// Matches reports whether the card qualifies under the filter.
func (f CardFilter) Matches(c Card) bool {
	for _, t := range f.Types {
		if c.Type == t {
			return true
		}
	}
	for _, r := range f.Ribbons {
		if r != RibbonNone && c.Ribbon == r {
			return true
		}
	}
	for _, tag := range f.Tags {
		if tag != TagNone && c.Tag == tag {
			return true
		}
	}
	return false
}

// Yaku is a scoring pattern expressed as data: a card filter, the count needed
// to complete, and a point formula. One generic progress evaluator serves every
// pattern; there are no per-yaku predicate functions.
type Yaku struct {
	Kind       YakuKind
	Name       string
	Filter     CardFilter
	Need       int
	BasePoints int
	PerExtra   int  // added per qualifying card beyond Need; 0 for fixed yaku
	Generic    bool // open count-scaled family (reduced selector weight)
	Eligible   int  // qualifying cards in the full deck, resolved at ruleset build
}

// Progress counts qualifying cards in the set.
func (y Yaku) Progress(set []Card) int {
	n := 0
	for _, c := range set {
		if y.Filter.Matches(c) {
			n++
		}
	}
	return n
}

// Complete reports whether the set completes the yaku.
func (y Yaku) Complete(set []Card) bool {
	return y.Progress(set) >= y.Need
}

// PointsAt returns the yaku's value when held at the given qualifying count.
// Counts below Need are worth the completion value for stake comparisons;
// each card beyond Need adds PerExtra.
func (y Yaku) PointsAt(count int) int {
	if count < y.Need {
		count = y.Need
	}
	return y.BasePoints + y.PerExtra*(count-y.Need)
}

// Ruleset is a fixed yaku table for one regional rule variant. The table order
// is the stable tie-break order for threat and opportunity ranking.
type Ruleset struct {
	Name string
	Yaku []Yaku
}

// StandardRuleset tracks the 24 plain chaff cards for the chaff yaku.
func StandardRuleset() *Ruleset {
	return newRuleset("standard", CardFilter{Types: []CardType{Chaff}})
}

// WideChaffRuleset additionally counts the sake cup as chaff.
func WideChaffRuleset() *Ruleset {
	return newRuleset("wide-chaff", CardFilter{
		Types: []CardType{Chaff},
		Tags:  []SpecialTag{TagSakeCup},
	})
}

// RulesetByName resolves a configured variant name, defaulting to standard.
func RulesetByName(name string) *Ruleset {
	if name == "wide-chaff" {
		return WideChaffRuleset()
	}
	return StandardRuleset()
}

func newRuleset(name string, chaffFilter CardFilter) *Ruleset {
	yaku := []Yaku{
		{
			Kind:       YakuBrights,
			Name:       "Brights",
			Filter:     CardFilter{Types: []CardType{Bright}},
			Need:       3,
			BasePoints: 6,
			PerExtra:   2,
		},
		{
			Kind:       YakuPoetryRibbons,
			Name:       "Poetry Ribbons",
			Filter:     CardFilter{Tags: []SpecialTag{TagPoetryRibbon}},
			Need:       3,
			BasePoints: 6,
		},
		{
			Kind:       YakuBlueRibbons,
			Name:       "Blue Ribbons",
			Filter:     CardFilter{Ribbons: []RibbonColor{RibbonBlue}},
			Need:       3,
			BasePoints: 6,
		},
		{
			Kind:       YakuInoShikaCho,
			Name:       "Ino-Shika-Cho",
			Filter:     CardFilter{Tags: []SpecialTag{TagBoar, TagDeer, TagButterflies}},
			Need:       3,
			BasePoints: 5,
		},
		{
			Kind:       YakuHanami,
			Name:       "Hanami-zake",
			Filter:     CardFilter{Tags: []SpecialTag{TagCurtain, TagSakeCup}},
			Need:       2,
			BasePoints: 5,
		},
		{
			Kind:       YakuTsukimi,
			Name:       "Tsukimi-zake",
			Filter:     CardFilter{Tags: []SpecialTag{TagMoon, TagSakeCup}},
			Need:       2,
			BasePoints: 5,
		},
		{
			Kind:       YakuRibbons,
			Name:       "Ribbons",
			Filter:     CardFilter{Types: []CardType{Ribbon}},
			Need:       5,
			BasePoints: 1,
			PerExtra:   1,
			Generic:    true,
		},
		{
			Kind:       YakuAnimals,
			Name:       "Animals",
			Filter:     CardFilter{Types: []CardType{Animal}},
			Need:       5,
			BasePoints: 1,
			PerExtra:   1,
			Generic:    true,
		},
		{
			Kind:       YakuChaff,
			Name:       "Chaff",
			Filter:     chaffFilter,
			Need:       10,
			BasePoints: 1,
			PerExtra:   1,
			Generic:    true,
		},
	}

	for i := range yaku {
		yaku[i].Eligible = yaku[i].Progress(catalog)
	}

	return &Ruleset{Name: name, Yaku: yaku}
}

// YakuByKind returns the table entry for a kind.
func (r *Ruleset) YakuByKind(kind YakuKind) (Yaku, bool) {
	for _, y := range r.Yaku {
		if y.Kind == kind {
			return y, true
		}
	}
	return Yaku{}, false
}

// YakuResult is one completed yaku in a captured set.
type YakuResult struct {
	Yaku   Yaku
	Count  int
	Points int
}

// Score evaluates a captured set against the full table and returns the round
// score before any koi-koi multiplier, with the per-yaku breakdown in table
// order.
func (r *Ruleset) Score(captured []Card) (int, []YakuResult) {
	total := 0
	var results []YakuResult

	for _, y := range r.Yaku {
		count := y.Progress(captured)

		points := 0
		if y.Kind == YakuBrights {
			points = scoreBrights(captured)
		} else if count >= y.Need {
			points = y.PointsAt(count)
		}
		if points == 0 {
			continue
		}

		total += points
		results = append(results, YakuResult{Yaku: y, Count: count, Points: points})
	}

	return total, results
}

// scoreBrights applies the bright-family breakdown: five brights 10, four
// without the rain man 8, four with 7, three excluding the rain man 6.
func scoreBrights(captured []Card) int {
	brights := 0
	rain := 0
	for _, c := range captured {
		if c.Type == Bright {
			brights++
			if c.Tag == TagRainMan {
				rain = 1
			}
		}
	}

	switch {
	case brights == 5:
		return 10
	case brights == 4 && rain == 0:
		return 8
	case brights == 4:
		return 7
	case brights-rain >= 3:
		return 6
	default:
		return 0
	}
}
