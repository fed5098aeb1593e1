package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/rona-hr/rona-backend-go/internal/pkg/ethiopian"
)

// Language selects the clock formatter.
type Language string

const (
	LanguageEnglish Language = "en" // Gregorian locale format
	LanguageAmharic Language = "am" // Ethiopian calendar and time
)

// AllLanguages returns the supported display languages
func AllLanguages() []Language {
	return []Language{LanguageEnglish, LanguageAmharic}
}

func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageAmharic
}

// Preference is a company's clock display setting
type Preference struct {
	ID        string
	CompanyID string
	Language  Language
	YearMode  ethiopian.YearMode
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clock is one rendered clock frame
type Clock struct {
	Language  Language
	Date      string
	Time      string
	Instant   time.Time
	Ethiopian *ethiopian.Date
	TimeOfDay *ethiopian.TimeOfDay
}

// StreamTopic groups clock stream subscribers that render identical frames
type StreamTopic struct {
	Language Language
	YearMode ethiopian.YearMode
	Timezone string
}

// Key is the hub topic name, e.g. "am|uniform|Africa/Addis_Ababa"
func (t StreamTopic) Key() string {
	return string(t.Language) + "|" + string(t.YearMode) + "|" + t.Timezone
}

// ParseStreamTopic reverses Key
func ParseStreamTopic(key string) (StreamTopic, error) {
	parts := strings.SplitN(key, "|", 3)
	if len(parts) != 3 {
		return StreamTopic{}, fmt.Errorf("malformed stream topic %q", key)
	}
	lang := Language(parts[0])
	if !lang.IsValid() {
		return StreamTopic{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, parts[0])
	}
	mode, err := ethiopian.ParseYearMode(parts[1])
	if err != nil {
		return StreamTopic{}, fmt.Errorf("%w: %v", ErrInvalidYearMode, err)
	}
	return StreamTopic{Language: lang, YearMode: mode, Timezone: parts[2]}, nil
}
