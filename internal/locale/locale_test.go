package locale

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Locale
	}{
		{"en", English},
		{"ar", Arabic},
		{" AR ", Arabic},
		{"fr", English},
		{"", English},
	}
	for _, tc := range tests {
		if got := Parse(tc.raw); got != tc.want {
			t.Errorf("Parse(%q)=%s want %s", tc.raw, got, tc.want)
		}
	}
}

func TestFromAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   Locale
	}{
		{"ar-OM,ar;q=0.9,en;q=0.8", Arabic},
		{"en-US,en;q=0.9", English},
		{"fr-FR,de;q=0.8", English},
		{"", English},
		{"fr, ar;q=0.5", Arabic},
	}
	for _, tc := range tests {
		if got := FromAcceptLanguage(tc.header); got != tc.want {
			t.Errorf("FromAcceptLanguage(%q)=%s want %s", tc.header, got, tc.want)
		}
	}
}

func TestDirection(t *testing.T) {
	if English.Direction() != "ltr" {
		t.Error("expected ltr for English")
	}
	if Arabic.Direction() != "rtl" {
		t.Error("expected rtl for Arabic")
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC) // a Friday

	if got := English.FormatDate(d); got != "Friday, September 4, 2026" {
		t.Errorf("unexpected English date: %q", got)
	}
	if got := Arabic.FormatDate(d); got != "الجمعة، 4 سبتمبر 2026" {
		t.Errorf("unexpected Arabic date: %q", got)
	}
}

func TestFormatTime(t *testing.T) {
	morning := time.Date(2026, 9, 4, 7, 30, 0, 0, time.UTC)
	evening := time.Date(2026, 9, 4, 19, 5, 0, 0, time.UTC)
	noon := time.Date(2026, 9, 4, 12, 0, 0, 0, time.UTC)

	if got := English.FormatTime(morning); got != "7:30 AM" {
		t.Errorf("unexpected English time: %q", got)
	}
	if got := English.FormatTime(evening); got != "7:05 PM" {
		t.Errorf("unexpected English time: %q", got)
	}
	if got := Arabic.FormatTime(morning); got != "7:30 ص" {
		t.Errorf("unexpected Arabic time: %q", got)
	}
	if got := Arabic.FormatTime(noon); got != "12:00 م" {
		t.Errorf("unexpected Arabic noon: %q", got)
	}
}
