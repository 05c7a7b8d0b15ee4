package geo

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format renders the distance in unit with the given number of decimals,
// e.g. "3935.75 km". Negative decimals are treated as zero.
func (d Distance) Format(unit Unit, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("%.*f %s", decimals, d.In(unit), unit.Symbol())
}

// FormatLocalized is Format with locale-aware digit grouping and decimal separator,
// e.g. "3,935.75 km" for English or "3.935,75 km" for German.
func (d Distance) FormatLocalized(tag language.Tag, unit Unit, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%v %s",
		number.Decimal(d.In(unit), number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)),
		unit.Symbol(),
	)
}

// Description summarises both endpoints and the distance in kilometers and miles.
func (d Distance) Description() string {
	return fmt.Sprintf("Distance from %s to %s: %s (%s)",
		d.from, d.to, d.Format(Kilometers, 2), d.Format(Miles, 2))
}

func (d Distance) String() string { return d.Format(Kilometers, 2) }
