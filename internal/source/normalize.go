package source

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"cgtsc/website/internal/model"
)

// looseLayouts are tried after ISO-8601. Numeric dates are month first,
// matching the en-US Google Sheets export and how browsers read them.
var looseLayouts = []string{
	"1/2/2006",
	"1-2-2006",
	"1.2.2006",
	"2006/1/2",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Monday, January 2, 2006",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseLooseDate parses the date formats people type into a spreadsheet or
// notice board. Bengali digits are accepted.
func ParseLooseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(asciiDigits(value))
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty", model.ErrInvalidDate)
	}
	if t, err := model.ParseISODate(value); err == nil {
		return t, nil
	}
	for _, layout := range looseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", model.ErrInvalidDate, value)
}

func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '০' && r <= '৯' {
			return '0' + (r - '০')
		}
		return r
	}, s)
}

// Normalizer turns raw upstream rows into notices: markup stripped,
// whitespace collapsed, dates canonical. Rows without a title or a
// readable date are dropped.
type Normalizer struct {
	policy *bluemonday.Policy
}

func NewNormalizer() *Normalizer {
	return &Normalizer{policy: bluemonday.StrictPolicy()}
}

// Rejected describes a row the normalizer dropped.
type Rejected struct {
	Index  int
	Title  string
	Reason string
}

func (n *Normalizer) Normalize(items []Item, limit int) ([]model.Notice, []Rejected) {
	notices := make([]model.Notice, 0, len(items))
	var rejected []Rejected
	for i, item := range items {
		if limit > 0 && len(notices) >= limit {
			break
		}
		title := n.text(item.Title)
		if title == "" {
			rejected = append(rejected, Rejected{Index: i, Reason: "missing title"})
			continue
		}
		date, err := ParseLooseDate(n.text(item.Date))
		if err != nil {
			rejected = append(rejected, Rejected{Index: i, Title: title, Reason: err.Error()})
			continue
		}
		y, m, d := date.Date()
		notices = append(notices, model.Notice{
			Title:       title,
			Description: n.text(item.Description),
			Date:        model.DateOf(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)),
		})
	}
	return notices, rejected
}

func (n *Normalizer) text(s string) string {
	return collapse(html.UnescapeString(n.policy.Sanitize(s)))
}
