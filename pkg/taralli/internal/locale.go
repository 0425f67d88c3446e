package internal

import (
	"os"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/nikit6000/taralli/pkg/taralli/constants"
	"golang.org/x/text/language"
)

var (
	localeOnce sync.Once
	localizer  *i18n.Localizer
)

var (
	tabDescriptionMessage = &i18n.Message{
		ID:    "TabDescription",
		Other: "{{.Label}}, tab {{.Position}} of {{.Total}}",
	}
	tabBadgeMessage = &i18n.Message{
		ID:    "TabBadge",
		Other: "{{.Label}}, badge {{.Badge}}",
	}
)

func getLocalizer() *i18n.Localizer {
	localeOnce.Do(func() {
		bundle := i18n.NewBundle(language.English)

		langs := []string{language.English.String()}
		if env := os.Getenv(constants.LocaleEnvVar); env != "" {
			langs = append([]string{env}, langs...)
		}

		localizer = i18n.NewLocalizer(bundle, langs...)
	})
	return localizer
}

// TabDescription returns the localized accessibility description for a tab,
// e.g. "Home, tab 1 of 3".
func TabDescription(label string, position, total int) string {
	return getLocalizer().MustLocalize(&i18n.LocalizeConfig{
		DefaultMessage: tabDescriptionMessage,
		TemplateData: map[string]interface{}{
			"Label":    label,
			"Position": position,
			"Total":    total,
		},
	})
}

// BadgeDescription appends a badge value to an accessibility label.
func BadgeDescription(label, badge string) string {
	return getLocalizer().MustLocalize(&i18n.LocalizeConfig{
		DefaultMessage: tabBadgeMessage,
		TemplateData: map[string]interface{}{
			"Label": label,
			"Badge": badge,
		},
	})
}
