package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"cgtsc/website/internal/network"
)

const (
	AppName    = "CGTSC"
	AppVersion = "1.0.0"
	AppRepo    = "https://github.com/cgtsc/website"
)

// SiteUserAgent identifies upstream requests made by the notice backend.
var SiteUserAgent = "Mozilla/5.0 (compatible; " + AppName + "/" + AppVersion + "; +" + AppRepo + ")"

// Notice source kinds.
const (
	SourceSheet = "sheet"
	SourceFeed  = "feed"
	SourceBoard = "board"
)

// DefaultSheetID is the institution's public notice spreadsheet.
const DefaultSheetID = "1FGNgaNGtq4rDewGnVDkGpBbclHx9bFST6FFebRwcGnM"

type Config struct {
	Addr        string   `env:"ADDR" envDefault:":8080"`
	DataDir     string   `env:"DATA_DIR" envDefault:"./data"`
	DBPath      string   `env:"DB_PATH"`
	BackendURL  string   `env:"BACKEND_URL" envDefault:"http://localhost:8080"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	NodeID      int64    `env:"NODE_ID" envDefault:"1"`
	ProxyURL    string   `env:"PROXY_URL"`
	UpstreamQPS int      `env:"UPSTREAM_QPS" envDefault:"2"`

	Notices NoticeConfig `envPrefix:"NOTICE_"`
	Board   BoardConfig  `envPrefix:"BOARD_"`
}

type NoticeConfig struct {
	Source          string        `env:"SOURCE" envDefault:"sheet"`
	SheetID         string        `env:"SHEET_ID" envDefault:"1FGNgaNGtq4rDewGnVDkGpBbclHx9bFST6FFebRwcGnM"`
	SourceURL       string        `env:"SOURCE_URL"`
	Limit           int           `env:"LIMIT" envDefault:"10"`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"5m"`
	LoadTimeout     time.Duration `env:"LOAD_TIMEOUT" envDefault:"10s"`
}

// BoardConfig holds the CSS selectors used to scrape an HTML notice board.
type BoardConfig struct {
	ItemSelector        string `env:"ITEM_SELECTOR" envDefault:"table tbody tr"`
	TitleSelector       string `env:"TITLE_SELECTOR" envDefault:"td:nth-child(2)"`
	DateSelector        string `env:"DATE_SELECTOR" envDefault:"td:nth-child(3)"`
	DescriptionSelector string `env:"DESCRIPTION_SELECTOR" envDefault:"td:nth-child(4)"`
}

// Load reads the CGTSC_* environment.
func Load() (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "CGTSC_"})
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return normalize(cfg)
}

func normalize(cfg Config) (Config, error) {
	cfg.DataDir = filepath.Clean(cfg.DataDir)
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "cgtsc.db")
	}
	cfg.DBPath = filepath.Clean(cfg.DBPath)
	cfg.BackendURL = strings.TrimRight(strings.TrimSpace(cfg.BackendURL), "/")
	cfg.ProxyURL = strings.TrimSpace(cfg.ProxyURL)
	if err := network.ValidateProxyURL(cfg.ProxyURL); err != nil {
		return Config{}, fmt.Errorf("CGTSC_PROXY_URL: %w", err)
	}

	switch cfg.Notices.Source {
	case SourceSheet:
	case SourceFeed, SourceBoard:
		if strings.TrimSpace(cfg.Notices.SourceURL) == "" {
			return Config{}, fmt.Errorf("notice source %q requires CGTSC_NOTICE_SOURCE_URL", cfg.Notices.Source)
		}
	default:
		return Config{}, fmt.Errorf("unknown notice source %q", cfg.Notices.Source)
	}
	if cfg.Notices.Limit <= 0 {
		cfg.Notices.Limit = 10
	}
	if cfg.Notices.RefreshInterval <= 0 {
		cfg.Notices.RefreshInterval = 5 * time.Minute
	}
	if cfg.Notices.LoadTimeout <= 0 {
		cfg.Notices.LoadTimeout = 10 * time.Second
	}
	return cfg, nil
}

// SheetExportURL is the CSV export address of a Google Sheets document.
func SheetExportURL(sheetID string) string {
	return "https://docs.google.com/spreadsheets/d/" + sheetID + "/export?format=csv"
}

// NoticeSourceURL resolves the upstream address for the configured source.
func (c Config) NoticeSourceURL() string {
	if u := strings.TrimSpace(c.Notices.SourceURL); u != "" {
		return u
	}
	return SheetExportURL(c.Notices.SheetID)
}
