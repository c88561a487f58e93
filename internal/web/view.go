package web

import (
	"net/url"

	"cgtsc/website/internal/i18n"
	"cgtsc/website/internal/model"
	"cgtsc/website/internal/site"
)

const noticesPartialPath = "/partials/notices"

// PageData feeds the full page template.
type PageData struct {
	Lang       i18n.Language
	ToggleURL  string
	Content    *i18n.Content
	Notices    NoticesData
	Stylesheet string
}

// NoticesData feeds the notices section. While Loading is set the section
// renders a spinner that fetches PartialURL.
type NoticesData struct {
	Lang       i18n.Language
	Loading    bool
	PartialURL string
	FrameURL   string
	Content    *i18n.Content
	Cards      []NoticeCard
	Stylesheet string
}

// NoticeCard carries the date in every bundled language so a language
// switch only changes which one is shown.
type NoticeCard struct {
	Title       string
	Description string
	Dates       []LocalizedDate
	ISODate     string
}

type LocalizedDate struct {
	Lang i18n.Language
	Text string
}

// StylesheetPath is where the embedded stylesheet is mounted.
const StylesheetPath = "/static/site.css"

// NewPageData builds the initial page: static sections filled in, notices
// still loading.
func NewPageData(lang i18n.Language, content *i18n.Content) PageData {
	loading := site.NewPage(lang).Snapshot()
	return PageData{
		Lang:       lang,
		ToggleURL:  "/?" + langQuery(lang.Toggle()),
		Content:    content,
		Notices:    NewNoticesData(loading, content),
		Stylesheet: StylesheetPath,
	}
}

func NewNoticesData(view site.PageView, content *i18n.Content) NoticesData {
	data := NoticesData{
		Lang:       view.Lang,
		Loading:    view.Loading,
		PartialURL: noticesPartialPath + "?" + langQuery(view.Lang),
		FrameURL:   noticesPartialPath + "?" + langQuery(view.Lang) + "&frame=1",
		Content:    content,
		Stylesheet: StylesheetPath,
	}
	if view.Loading {
		return data
	}
	data.Cards = make([]NoticeCard, 0, len(view.Notices))
	for _, n := range view.Notices {
		data.Cards = append(data.Cards, newNoticeCard(n))
	}
	return data
}

func newNoticeCard(n model.Notice) NoticeCard {
	dates := make([]LocalizedDate, 0, len(i18n.Languages))
	for _, lang := range i18n.Languages {
		dates = append(dates, LocalizedDate{Lang: lang, Text: i18n.FormatDate(n.Date.Time, lang)})
	}
	return NoticeCard{
		Title:       n.Title,
		Description: n.Description,
		Dates:       dates,
		ISODate:     n.Date.String(),
	}
}

func langQuery(lang i18n.Language) string {
	return url.Values{"lang": []string{lang.String()}}.Encode()
}
