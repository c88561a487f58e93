package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical wire format for notice dates.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid notice date")

var isoLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NoticeDate is a notice timestamp that accepts ISO-8601 strings or epoch
// milliseconds and re-encodes exactly the bytes it was decoded from.
type NoticeDate struct {
	Time time.Time
	raw  []byte
}

// DateOf returns a NoticeDate that encodes as a plain YYYY-MM-DD string.
func DateOf(t time.Time) NoticeDate {
	return NoticeDate{Time: t}
}

// ParseISODate parses the ISO-8601 forms a notice date may arrive in.
func ParseISODate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

func (d NoticeDate) IsZero() bool {
	return d.Time.IsZero()
}

// String returns the canonical YYYY-MM-DD form in the date's own offset.
func (d NoticeDate) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(DateLayout)
}

func (d NoticeDate) MarshalJSON() ([]byte, error) {
	if len(d.raw) > 0 {
		return d.raw, nil
	}
	return json.Marshal(d.String())
}

func (d *NoticeDate) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("%w: missing", ErrInvalidDate)
	}

	var parsed time.Time
	if trimmed[0] == '"' {
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		t, err := ParseISODate(value)
		if err != nil {
			return err
		}
		parsed = t
	} else {
		var millis json.Number
		if err := json.Unmarshal(trimmed, &millis); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		ms, err := millis.Int64()
		if err != nil {
			f, ferr := millis.Float64()
			if ferr != nil {
				return fmt.Errorf("%w: %s", ErrInvalidDate, millis)
			}
			ms = int64(f)
		}
		parsed = time.UnixMilli(ms).UTC()
	}

	d.Time = parsed
	d.raw = append([]byte(nil), trimmed...)
	return nil
}
