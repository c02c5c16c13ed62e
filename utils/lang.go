package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// SupportedLanguages are the message files loaded from i18n.dir
var SupportedLanguages = []string{"en", "es"}

var bundle *i18n.Bundle

func InitI18NBundle() error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, lang := range SupportedLanguages {
		if _, err := b.LoadMessageFile(path.Join(viper.GetString("i18n.dir"), lang+".yaml")); err != nil {
			return err
		}
	}
	bundle = b
	return nil
}

func NewLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		return nil
	}
	return i18n.NewLocalizer(bundle, lang)
}

// Localize translates the message id into the best match of acceptLanguage.
// fallback is returned when no bundle is loaded or the id is unknown.
func Localize(acceptLanguage, id, fallback string) string {
	localizer := NewLocalizer(acceptLanguage)
	if localizer == nil {
		return fallback
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    id,
			Other: fallback,
		},
	})
	if err != nil && msg == "" {
		return fallback
	}
	return msg
}
