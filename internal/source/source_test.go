package source_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cgtsc/website/internal/source"

	"github.com/stretchr/testify/require"
)

const sampleCSV = "\ufeffNotice Title,Date,Description,Link\n" +
	"Welcome to New Academic Year 2025,2025-01-15,Classes will commence from January 20,\n" +
	"Admission Open, 2025-01-10 ,,https://example.com/admission\n" +
	",2025-01-09,No title row,\n" +
	"Undated notice,,Missing date,\n" +
	"\"Exam, Routine\",01/05/2025,\"Quoted, with comma\",\n"

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Notices</title>
<link>https://example.com</link>
<item>
  <title>Holiday Notice</title>
  <link>https://example.com/1</link>
  <description>School closed Monday</description>
  <pubDate>Fri, 10 Jan 2025 09:00:00 GMT</pubDate>
</item>
<item>
  <title>Results</title>
  <link>https://example.com/2</link>
</item>
</channel>
</rss>`

const sampleBoard = `<html><body>
<table><tbody>
<tr><td>1</td><td><a href="/notice/1">Holiday   Notice</a></td><td>01/10/2025</td><td>School closed Monday</td></tr>
<tr><td>2</td><td><a href="/notice/2">Results</a></td><td>০১/০৫/২০২৫</td><td></td></tr>
</tbody></table>
</body></html>`

func serve(t *testing.T, contentType, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSheetSource_Fetch(t *testing.T) {
	srv := serve(t, "text/csv", sampleCSV)
	src := source.NewSheetSource(srv.URL, srv.Client())

	items, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, "sheet", src.Name())
	require.Len(t, items, 3)

	require.Equal(t, source.Item{
		Title:       "Welcome to New Academic Year 2025",
		Date:        "2025-01-15",
		Description: "Classes will commence from January 20",
	}, items[0])
	require.Equal(t, "2025-01-10", items[1].Date)
	require.Equal(t, "https://example.com/admission", items[1].Description)
	require.Equal(t, "Exam, Routine", items[2].Title)
	require.Equal(t, "Quoted, with comma", items[2].Description)
}

func TestSheetSource_EmptyBody(t *testing.T) {
	srv := serve(t, "text/csv", "")
	items, err := source.NewSheetSource(srv.URL, srv.Client()).Fetch(context.Background())
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestSheetSource_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := source.NewSheetSource(srv.URL, srv.Client()).Fetch(context.Background())
	var statusErr *source.StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusForbidden, statusErr.StatusCode)
}

func TestFeedSource_Fetch(t *testing.T) {
	srv := serve(t, "application/rss+xml", sampleRSS)
	src := source.NewFeedSource(srv.URL, srv.Client())

	items, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, source.Item{Title: "Holiday Notice", Date: "2025-01-10", Description: "School closed Monday"}, items[0])
	require.Equal(t, "https://example.com/2", items[1].Description)
	require.Empty(t, items[1].Date)
}

func TestFeedSource_InvalidFeed(t *testing.T) {
	srv := serve(t, "text/plain", "not a feed")
	_, err := source.NewFeedSource(srv.URL, srv.Client()).Fetch(context.Background())
	require.Error(t, err)
}

func TestBoardSource_Fetch(t *testing.T) {
	srv := serve(t, "text/html", sampleBoard)
	src := source.NewBoardSource(srv.URL+"/notices", srv.Client(), source.BoardSelectors{
		Item:        "table tbody tr",
		Title:       "td:nth-child(2) a",
		Date:        "td:nth-child(3)",
		Description: "td:nth-child(4)",
	})

	items, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, source.Item{Title: "Holiday Notice", Date: "01/10/2025", Description: "School closed Monday"}, items[0])
	require.Equal(t, "Results", items[1].Title)
	require.Equal(t, srv.URL+"/notice/2", items[1].Description)
}
