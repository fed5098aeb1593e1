package calendar

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/rona-hr/rona-backend-go/internal/domain/calendar"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	msgClockDate = "ClockDate"
	msgClockTime = "ClockTime"
)

// MessageIDs lists every layout message a locale file must define.
func MessageIDs() []string {
	return []string{msgClockDate, msgClockTime}
}

// LoadBundle reads the embedded layout catalogs.
func LoadBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug("Skipping locale file", "file", name)
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", name, err)
		}
		slog.Debug("Locale loaded", "file", name)
	}

	return bundle, nil
}

var (
	supportedTags = []language.Tag{language.English, language.Amharic}
	tagMatcher    = language.NewMatcher(supportedTags)
)

// ParseLanguage resolves a language code, BCP-47 tag, or Accept-Language
// list to one of the supported display languages.
func ParseLanguage(s string) (calendar.Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty", calendar.ErrUnsupportedLanguage)
	}

	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		return "", fmt.Errorf("%w: %q", calendar.ErrUnsupportedLanguage, s)
	}

	_, idx, confidence := tagMatcher.Match(tags...)
	if confidence == language.No {
		return "", fmt.Errorf("%w: %q", calendar.ErrUnsupportedLanguage, s)
	}

	base, _ := supportedTags[idx].Base()
	return calendar.Language(base.String()), nil
}
