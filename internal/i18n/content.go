package i18n

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

type Content struct {
	Brand     string    `yaml:"brand"`
	Toggle    string    `yaml:"toggle"`
	Nav       Nav       `yaml:"nav"`
	Hero      Hero      `yaml:"hero"`
	About     About     `yaml:"about"`
	Academics Academics `yaml:"academics"`
	Notices   Section   `yaml:"notices"`
	Contact   Contact   `yaml:"contact"`
	Footer    Footer    `yaml:"footer"`
}

type Nav struct {
	Home      string `yaml:"home"`
	About     string `yaml:"about"`
	Academics string `yaml:"academics"`
	Notices   string `yaml:"notices"`
	Contact   string `yaml:"contact"`
}

type Hero struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Description string `yaml:"description"`
	CTA         string `yaml:"cta"`
}

type About struct {
	Title       string    `yaml:"title"`
	Content     string    `yaml:"content"`
	Mission     string    `yaml:"mission"`
	MissionText string    `yaml:"missionText"`
	Highlight   Highlight `yaml:"highlight"`
}

type Highlight struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type Academics struct {
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Programs []Program `yaml:"programs"`
}

type Program struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Duration    string `yaml:"duration"`
}

type Section struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

type Contact struct {
	Title       string  `yaml:"title"`
	Address     string  `yaml:"address"`
	AddressText string  `yaml:"addressText"`
	Phone       string  `yaml:"phone"`
	PhoneText   string  `yaml:"phoneText"`
	CTA         Callout `yaml:"cta"`
}

type Callout struct {
	Title  string `yaml:"title"`
	Text   string `yaml:"text"`
	Button string `yaml:"button"`
}

type Footer struct {
	Text string `yaml:"text"`
}

// Table maps each bundled language to its content.
type Table map[Language]*Content

// For returns the content for lang, or the Default language's content.
func (t Table) For(lang Language) *Content {
	if c, ok := t[lang]; ok {
		return c
	}
	return t[Default]
}

var (
	tableOnce sync.Once
	table     Table
	tableErr  error
)

// LoadTable decodes the embedded locale files once and returns the result.
func LoadTable() (Table, error) {
	tableOnce.Do(func() {
		table, tableErr = decodeTable()
	})
	return table, tableErr
}

func decodeTable() (Table, error) {
	t := make(Table, len(Languages))
	for _, lang := range Languages {
		data, err := localeFS.ReadFile("locales/" + string(lang) + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}
		var c Content
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decode locale %s: %w", lang, err)
		}
		if c.Hero.Title == "" || c.Nav.Notices == "" {
			return nil, fmt.Errorf("locale %s: missing required sections", lang)
		}
		t[lang] = &c
	}
	return t, nil
}
