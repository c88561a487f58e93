package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Spreadsheet column headers.
const (
	ColumnTitle       = "Notice Title"
	ColumnDate        = "Date"
	ColumnDescription = "Description"
	ColumnLink        = "Link"
)

// SheetSource reads notices from a Google Sheets CSV export.
type SheetSource struct {
	url    string
	client *http.Client
}

func NewSheetSource(url string, client *http.Client) *SheetSource {
	return &SheetSource{url: url, client: client}
}

func (s *SheetSource) Name() string { return "sheet" }

func (s *SheetSource) Fetch(ctx context.Context) ([]Item, error) {
	resp, err := get(ctx, s.client, s.url, "text/csv")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return parseSheet(resp.Body)
}

func parseSheet(r io.Reader) ([]Item, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var items []Item
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		title := field(record, ColumnTitle)
		date := field(record, ColumnDate)
		if title == "" || date == "" {
			continue
		}
		description := field(record, ColumnDescription)
		if description == "" {
			description = field(record, ColumnLink)
		}
		items = append(items, Item{Title: title, Date: date, Description: description})
	}
	return items, nil
}
