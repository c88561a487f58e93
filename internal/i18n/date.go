package i18n

import (
	"time"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatDate renders a notice date the way a browser's short locale date
// does: month first for English, day first with Bengali digits for Bengali.
// The calendar date is taken in t's own location.
func FormatDate(t time.Time, lang Language) string {
	if t.IsZero() {
		return ""
	}
	p := message.NewPrinter(lang.Tag())
	day := number.Decimal(t.Day(), number.NoSeparator())
	month := number.Decimal(int(t.Month()), number.NoSeparator())
	year := number.Decimal(t.Year(), number.NoSeparator())
	if lang == Bengali {
		return p.Sprintf("%v/%v/%v", day, month, year)
	}
	return p.Sprintf("%v/%v/%v", month, day, year)
}
