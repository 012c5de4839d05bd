package muffuletta

import (
	"github.com/BurntSushi/toml"
	"github.com/dpavese/muffuletta/pkg/muffuletta/internal"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Kiosk deployments ship one translation file per locale; English strings
// below are the fallbacks when no file is loaded or a message is missing.
var (
	i18nBundle    = newI18nBundle()
	i18nLocalizer = i18n.NewLocalizer(i18nBundle, language.English.String())
)

func newI18nBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// LoadTranslationFile loads a TOML message file (e.g. "active.it.toml") into
// the toolkit's translation bundle.
func LoadTranslationFile(path string) error {
	if _, err := i18nBundle.LoadMessageFile(path); err != nil {
		return NewInfrastructureError("load_translations", err)
	}
	return nil
}

// SetLocale switches the language used for widget captions. Unknown locales
// fall back to English.
func SetLocale(locale string) {
	i18nLocalizer = i18n.NewLocalizer(i18nBundle, locale, language.English.String())
	internal.GetInternalLogger().Debug("Locale changed", "locale", locale)
}

func localize(id, fallback string, data map[string]interface{}) string {
	msg, err := i18nLocalizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
		TemplateData:   data,
	})
	if err != nil {
		return fallback
	}
	return msg
}

func captionBack() string     { return localize("Back", "Back", nil) }
func captionContinue() string { return localize("Continue", "Continue", nil) }
func captionFinish() string   { return localize("Finish", "Finish", nil) }
func captionCancel() string   { return localize("Cancel", "Cancel", nil) }
func captionMove() string     { return localize("Move", "Move", nil) }
func captionJump() string     { return localize("Jump", "Go to step", nil) }
func captionHelp() string     { return localize("Help", "Help", nil) }

func captionStepProgress(current, total int) string {
	return localize("StepProgress", "Step {{.Current}} of {{.Total}}", map[string]interface{}{
		"Current": current,
		"Total":   total,
	})
}
