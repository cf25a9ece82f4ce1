package measure

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// String renders the measure for English, showing the magnitude at the
// measure's significant-digit precision followed by the unit abbreviation
// when one is set.
func (m Measure) String() string {
	return m.Format(language.English)
}

// Format renders the measure for the given locale. The magnitude is
// formatted at the measure's significant-digit precision; the unit
// abbreviation, when set, is appended after a space.
func (m Measure) Format(tag language.Tag) string {
	p := message.NewPrinter(tag)
	magnitude := number.Decimal(m.raw, number.Precision(m.precision))
	if m.unit.Abbrev == "" {
		return p.Sprintf("%v", magnitude)
	}
	return p.Sprintf("%v %s", magnitude, m.unit.Abbrev)
}
