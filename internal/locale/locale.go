// Package locale holds the two supported display languages and the
// formatting helpers shared by the catalog and message composer.
package locale

import (
	"fmt"
	"strings"
	"time"
)

// Locale is a supported display language.
type Locale string

const (
	English Locale = "en"
	Arabic  Locale = "ar"
)

// Default is used when no preference is stored and the host environment
// reports nothing usable.
const Default = English

// Parse normalizes a raw locale value, falling back to English.
func Parse(raw string) Locale {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ar":
		return Arabic
	case "en":
		return English
	default:
		return Default
	}
}

// Supported reports whether raw names one of the two locales exactly.
func Supported(raw string) bool {
	v := strings.ToLower(strings.TrimSpace(raw))
	return v == string(English) || v == string(Arabic)
}

// FromAcceptLanguage derives a locale from an Accept-Language header value.
// Only the primary subtag of each entry is considered.
func FromAcceptLanguage(header string) Locale {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		primary := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		switch primary {
		case "ar":
			return Arabic
		case "en":
			return English
		}
	}
	return Default
}

// Direction returns the text direction for the locale.
func (l Locale) Direction() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

var arabicWeekdays = [7]string{
	"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت",
}

var arabicMonths = [12]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// FormatDate renders a calendar date with its weekday, localized.
func (l Locale) FormatDate(t time.Time) string {
	if l == Arabic {
		return fmt.Sprintf("%s، %d %s %d",
			arabicWeekdays[int(t.Weekday())],
			t.Day(),
			arabicMonths[int(t.Month())-1],
			t.Year(),
		)
	}
	return t.Format("Monday, January 2, 2006")
}

// FormatTime renders a time of day on a 12-hour clock, localized.
func (l Locale) FormatTime(t time.Time) string {
	if l == Arabic {
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		period := "ص"
		if t.Hour() >= 12 {
			period = "م"
		}
		return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), period)
	}
	return t.Format("3:04 PM")
}
