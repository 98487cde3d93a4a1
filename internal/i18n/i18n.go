package i18n

import (
	"embed"
	"fmt"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
)

//go:embed messages/active.*.yaml
var messageFS embed.FS

// Locales lists the language tags shipped with the binary.
var Locales = []string{"en", "zh-Hans"}

var (
	mu        sync.Mutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

// Init builds the message bundle once and installs a localizer for the
// given locale. Unknown locales fall back to English. Init is called from
// the root command's PersistentPreRun; calling it again switches locale.
func Init(locale string) error {
	mu.Lock()
	defer mu.Unlock()

	if bundle == nil {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
		for _, lang := range Locales {
			name := fmt.Sprintf("messages/active.%s.yaml", lang)
			if _, err := b.LoadMessageFileFS(messageFS, name); err != nil {
				return fmt.Errorf("loading message catalog %s: %w", name, err)
			}
		}
		bundle = b
	}

	if locale == "" {
		locale = "en"
	}
	localizer = i18n.NewLocalizer(bundle, locale, "en")
	return nil
}

// T renders the message identified by id for the active locale. data is an
// optional map used for template placeholders (may be nil). fallback is the
// English default used when the catalog has no entry for id.
func T(id string, data map[string]any, fallback string) string {
	mu.Lock()
	loc := localizer
	mu.Unlock()

	if loc == nil {
		// Not initialized (library use outside the CLI); build defaults.
		if err := Init("en"); err != nil {
			return fallback
		}
		mu.Lock()
		loc = localizer
		mu.Unlock()
	}

	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
		DefaultMessage: &i18n.Message{
			ID:    id,
			Other: fallback,
		},
	})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
