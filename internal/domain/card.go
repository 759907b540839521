package domain

// Month is one of the twelve hanafuda suits.
type Month int

const (
	MonthPine          Month = iota + 1 // January
	MonthPlum                           // February
	MonthCherry                         // March
	MonthWisteria                       // April
	MonthIris                           // May
	MonthPeony                          // June
	MonthBushClover                     // July
	MonthPampas                         // August
	MonthChrysanthemum                  // September
	MonthMaple                          // October
	MonthWillow                         // November
	MonthPaulownia                      // December
)

// CardType orders card categories by capture value, lowest first.
type CardType int

const (
	Chaff CardType = iota
	Ribbon
	Animal
	Bright
)

func (t CardType) String() string {
	switch t {
	case Chaff:
		return "chaff"
	case Ribbon:
		return "ribbon"
	case Animal:
		return "animal"
	case Bright:
		return "bright"
	default:
		return "unknown"
	}
}

// RibbonColor distinguishes the three ribbon groups.
type RibbonColor int

const (
	RibbonNone RibbonColor = iota
	RibbonRed              // the three poetry ribbons
	RibbonBlue
	RibbonPlain
)

// SpecialTag marks cards that participate in named yaku. Tags are resolved
// once when the catalog is built; decision code never inspects card names.
type SpecialTag int

const (
	TagNone SpecialTag = iota
	TagBoar
	TagDeer
	TagButterflies
	TagRainMan
	TagCurtain
	TagMoon
	TagSakeCup
	TagPoetryRibbon
)

// Base capture values per card type.
const (
	PointsBright = 10
	PointsAnimal = 5
	PointsRibbon = 2
	PointsChaff  = 1
)

// Card is a single hanafuda card. Cards are immutable values; identity is the
// stable ID (0..47) assigned in catalog order.
type Card struct {
	ID     int
	Month  Month
	Type   CardType
	Ribbon RibbonColor
	Tag    SpecialTag
	Name   string
	Points int
}

// catalog is the process-wide static deck, built once and never mutated.
var catalog = buildCatalog()

func buildCatalog() []Card {
	var cards []Card
	id := 0

	add := func(month Month, t CardType, ribbon RibbonColor, tag SpecialTag, name string) {
		points := PointsChaff
		switch t {
		case Bright:
			points = PointsBright
		case Animal:
			points = PointsAnimal
		case Ribbon:
			points = PointsRibbon
		}
		cards = append(cards, Card{
			ID:     id,
			Month:  month,
			Type:   t,
			Ribbon: ribbon,
			Tag:    tag,
			Name:   name,
			Points: points,
		})
		id++
	}
	chaff := func(month Month, name string, n int) {
		for i := 0; i < n; i++ {
			add(month, Chaff, RibbonNone, TagNone, name)
		}
	}

	add(MonthPine, Bright, RibbonNone, TagNone, "Crane")
	add(MonthPine, Ribbon, RibbonRed, TagPoetryRibbon, "Pine Poetry Ribbon")
	chaff(MonthPine, "Pine Chaff", 2)

	add(MonthPlum, Animal, RibbonNone, TagNone, "Bush Warbler")
	add(MonthPlum, Ribbon, RibbonRed, TagPoetryRibbon, "Plum Poetry Ribbon")
	chaff(MonthPlum, "Plum Chaff", 2)

	add(MonthCherry, Bright, RibbonNone, TagCurtain, "Curtain")
	add(MonthCherry, Ribbon, RibbonRed, TagPoetryRibbon, "Cherry Poetry Ribbon")
	chaff(MonthCherry, "Cherry Chaff", 2)

	add(MonthWisteria, Animal, RibbonNone, TagNone, "Cuckoo")
	add(MonthWisteria, Ribbon, RibbonPlain, TagNone, "Wisteria Ribbon")
	chaff(MonthWisteria, "Wisteria Chaff", 2)

	add(MonthIris, Animal, RibbonNone, TagNone, "Eight-Plank Bridge")
	add(MonthIris, Ribbon, RibbonPlain, TagNone, "Iris Ribbon")
	chaff(MonthIris, "Iris Chaff", 2)

	add(MonthPeony, Animal, RibbonNone, TagButterflies, "Butterflies")
	add(MonthPeony, Ribbon, RibbonBlue, TagNone, "Peony Blue Ribbon")
	chaff(MonthPeony, "Peony Chaff", 2)

	add(MonthBushClover, Animal, RibbonNone, TagBoar, "Boar")
	add(MonthBushClover, Ribbon, RibbonPlain, TagNone, "Bush Clover Ribbon")
	chaff(MonthBushClover, "Bush Clover Chaff", 2)

	add(MonthPampas, Bright, RibbonNone, TagMoon, "Full Moon")
	add(MonthPampas, Animal, RibbonNone, TagNone, "Geese")
	chaff(MonthPampas, "Pampas Chaff", 2)

	add(MonthChrysanthemum, Animal, RibbonNone, TagSakeCup, "Sake Cup")
	add(MonthChrysanthemum, Ribbon, RibbonBlue, TagNone, "Chrysanthemum Blue Ribbon")
	chaff(MonthChrysanthemum, "Chrysanthemum Chaff", 2)

	add(MonthMaple, Animal, RibbonNone, TagDeer, "Deer")
	add(MonthMaple, Ribbon, RibbonBlue, TagNone, "Maple Blue Ribbon")
	chaff(MonthMaple, "Maple Chaff", 2)

	add(MonthWillow, Bright, RibbonNone, TagRainMan, "Rain Man")
	add(MonthWillow, Animal, RibbonNone, TagNone, "Swallow")
	add(MonthWillow, Ribbon, RibbonPlain, TagNone, "Willow Ribbon")
	chaff(MonthWillow, "Lightning", 1)

	add(MonthPaulownia, Bright, RibbonNone, TagNone, "Phoenix")
	chaff(MonthPaulownia, "Paulownia Chaff", 3)

	return cards
}

// Catalog returns the full 48-card deck in catalog order. The returned slice
// is a copy; the catalog itself is never mutated.
func Catalog() []Card {
	out := make([]Card, len(catalog))
	copy(out, catalog)
	return out
}

// CardByID looks a card up by its stable identity.
func CardByID(id int) (Card, bool) {
	if id < 0 || id >= len(catalog) {
		return Card{}, false
	}
	return catalog[id], true
}

// Valid reports whether the card carries the required fields of a catalog card.
func (c Card) Valid() bool {
	return c.Month >= MonthPine && c.Month <= MonthPaulownia && c.Points > 0
}
