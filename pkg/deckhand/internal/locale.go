package internal

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
)

//go:embed locales/*.toml
var localeFS embed.FS

var localeFiles = []string{
	"locales/active.en.toml",
	"locales/active.zh-TW.toml",
}

// Default texts, used when a bundle lacks a message.
var (
	msgPageCounter = &i18n.Message{ID: "PageCounter", Other: "{{.Page}} / {{.Total}}"}
	msgSwipeHint   = &i18n.Message{ID: "SwipeHint", Other: "Swipe up or use the arrow keys"}
	msgPrevious    = &i18n.Message{ID: "ButtonPrevious", Other: "Previous"}
	msgNext        = &i18n.Message{ID: "ButtonNext", Other: "Next"}
)

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		for _, f := range localeFiles {
			if _, err := bundle.LoadMessageFileFS(localeFS, f); err != nil {
				GetInternalLogger().Error("Failed to load locale file", "file", f, "error", err)
			}
		}
	})
	return bundle
}

// Localizer renders the host's fixed labels in one language.
type Localizer struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// NewLocalizer picks the best supported language for the given tags,
// falling back to English.
func NewLocalizer(tags ...string) *Localizer {
	b := getBundle()
	matcher := language.NewMatcher(b.LanguageTags())
	tag, _ := language.MatchStrings(matcher, tags...)

	return &Localizer{
		localizer: i18n.NewLocalizer(b, tags...),
		tag:       tag,
	}
}

// Tag returns the matched language.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

func (l *Localizer) localize(msg *i18n.Message, data map[string]any) string {
	text, err := l.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   data,
	})
	if err != nil {
		return msg.Other
	}
	return text
}

// PageCounter renders the "page / total" label.
func (l *Localizer) PageCounter(page, total int) string {
	return l.localize(msgPageCounter, map[string]any{"Page": page, "Total": total})
}

// SwipeHint renders the one-time navigation hint.
func (l *Localizer) SwipeHint() string {
	return l.localize(msgSwipeHint, nil)
}

// ButtonLabel renders the accessible label for a navigation button.
func (l *Localizer) ButtonLabel(b constants.Button) string {
	if b == constants.ButtonPrev {
		return l.localize(msgPrevious, nil)
	}
	return l.localize(msgNext, nil)
}
