package anim

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Magnitude classes that pick the display rule for a counter.
const (
	tenThousandsThreshold = 1_000_000
	groupedThreshold      = 1000
	tenThousand           = 10_000
)

// NewPrinter returns a printer for the given BCP 47 tag, falling back to
// English when the tag does not parse.
func NewPrinter(tag string) *message.Printer {
	lang, err := language.Parse(tag)
	if err != nil || tag == "" {
		lang = language.English
	}
	return message.NewPrinter(lang)
}

// FormatCount renders current for a counter heading to target. The
// target's magnitude, not current's, selects the rule:
//
//	target >= 1,000,000  current expressed in ten-thousands, no grouping
//	target >= 1,000      current with locale digit grouping
//	otherwise            plain integer
func FormatCount(p *message.Printer, current, target int) string {
	switch {
	case target >= tenThousandsThreshold:
		return strconv.Itoa(current / tenThousand)
	case target >= groupedThreshold:
		if p == nil {
			p = NewPrinter("")
		}
		return p.Sprintf("%d", current)
	default:
		return strconv.Itoa(current)
	}
}
