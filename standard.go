package measure

// Standard unit types seeded into DefaultRegistry. TypeDimensionless is
// reserved for quantities without a dimension.
const (
	TypeDimensionless Type = "dimensionless"
	TypeAmount        Type = "amount"
	TypeDistance      Type = "distance"
	TypeTime          Type = "time"
)

// DefaultRegistry is the process-wide unit registry, pre-seeded with the
// standard unit tables below. Hosts extending it should register their
// units at init time; once registration has stabilized, lookups and
// conversions are safe for concurrent use.
var DefaultRegistry = NewRegistry()

// DefaultOps is the process-wide operation registry, pre-seeded with add,
// subtract, multiply, and divide. The same register-at-init discipline as
// DefaultRegistry applies.
var DefaultOps = NewOps()

// Standard units. Distance scales are expressed in meters, time scales in
// seconds, amount scales in counts.
var (
	// Dimensionless is the reserved unit for quantities without a
	// dimension; it is used whenever a zero-valued Unit is supplied.
	Dimensionless = mustRegisterUnit(TypeDimensionless, "unit", "", 1)

	Count = mustRegisterUnit(TypeAmount, "count", "", 1)
	Mole  = mustRegisterUnit(TypeAmount, "mole", "mol", 6.02214076e23)

	AstronomicalUnit = mustRegisterUnit(TypeDistance, "astronomical_unit", "au", 1.495978707e11)
	Kilometer        = mustRegisterUnit(TypeDistance, "kilometer", "km", 1000)
	Meter            = mustRegisterUnit(TypeDistance, "meter", "m", 1)
	Millimeter       = mustRegisterUnit(TypeDistance, "millimeter", "mm", 0.001)
	Mile             = mustRegisterUnit(TypeDistance, "mile", "mi", 1609.344)
	Yard             = mustRegisterUnit(TypeDistance, "yard", "yd", 0.9144)
	Foot             = mustRegisterUnit(TypeDistance, "foot", "ft", 0.3048)
	Inch             = mustRegisterUnit(TypeDistance, "inch", "in", 0.0254)

	Day    = mustRegisterUnit(TypeTime, "day", "d", 86400)
	Hour   = mustRegisterUnit(TypeTime, "hour", "h", 3600)
	Minute = mustRegisterUnit(TypeTime, "minute", "min", 60)
	Second = mustRegisterUnit(TypeTime, "second", "s", 1)
)

func mustRegisterUnit(typ Type, name, abbrev string, scale float64) Unit {
	unit, err := DefaultRegistry.Register(typ, name, abbrev, scale)
	if err != nil {
		panic(err)
	}
	return unit
}

func init() {
	standard := map[string]Operation{
		"add":      func(a, b float64) float64 { return a + b },
		"subtract": func(a, b float64) float64 { return a - b },
		"multiply": func(a, b float64) float64 { return a * b },
		"divide":   func(a, b float64) float64 { return a / b },
	}
	for name, fn := range standard {
		if err := DefaultOps.Register(name, fn); err != nil {
			panic(err)
		}
	}
}
