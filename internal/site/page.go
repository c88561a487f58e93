package site

import (
	"context"
	"errors"
	"sync"

	"cgtsc/website/internal/i18n"
	"cgtsc/website/internal/logger"
	"cgtsc/website/internal/model"
)

// Page is the state of one page load. It starts loading and moves to
// loaded exactly once; after Close no further writes are accepted.
type Page struct {
	mu      sync.Mutex
	lang    i18n.Language
	loading bool
	closed  bool
	notices []model.Notice
}

// PageView is a copy of the page state for rendering.
type PageView struct {
	Lang    i18n.Language
	Loading bool
	Notices []model.Notice
}

func NewPage(lang i18n.Language) *Page {
	return &Page{lang: lang, loading: true}
}

// Complete records the outcome of the notice request. A failure stores an
// empty list. It reports whether the state changed: a closed page or a
// second completion is ignored.
func (p *Page) Complete(notices []model.Notice, err error) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || !p.loading {
		return false
	}
	if err != nil {
		notices = nil
	}
	p.notices = append([]model.Notice{}, notices...)
	p.loading = false
	return true
}

// Close tears the page down.
func (p *Page) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}

func (p *Page) Snapshot() PageView {
	p.mu.Lock()
	defer p.mu.Unlock()

	return PageView{
		Lang:    p.lang,
		Loading: p.loading,
		Notices: append([]model.Notice{}, p.notices...),
	}
}

// LoadNotices runs the page's single notice request and resolves the page
// with its outcome. Failures are logged, never returned.
func LoadNotices(ctx context.Context, loader NoticeLoader, page *Page) bool {
	notices, err := loader.Load(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Debug("notice load abandoned", "module", "site", "action", "load", "resource", "notice", "result", "cancelled")
		} else {
			logger.Warn("notice load failed", "module", "site", "action", "load", "resource", "notice", "result", "failed", "error", err)
		}
	}

	if !page.Complete(notices, err) {
		logger.Debug("late notice result ignored", "module", "site", "action", "load", "resource", "notice", "result", "ignored")
		return false
	}
	logger.Debug("notices loaded", "module", "site", "action", "load", "resource", "notice", "result", "ok", "count", len(notices))
	return true
}
