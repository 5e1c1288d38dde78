// Package compose renders a completed appointment draft into the localized
// WhatsApp message text and its wa.me deep link.
package compose

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/alrooliya/workshop-booking/internal/booking"
	"github.com/alrooliya/workshop-booking/internal/catalog"
	"github.com/alrooliya/workshop-booking/internal/locale"
)

// ErrIncompleteDraft is returned when a field compose unconditionally
// requires (service, name, phone, date, time) is absent. Formats are not
// re-checked here; the form controller already validated them.
var ErrIncompleteDraft = errors.New("compose: draft is missing a required field")

// Message is the composed text plus the deep link that opens the
// messaging app with it. Derived, never stored.
type Message struct {
	Text     string `json:"text"`
	DeepLink string `json:"deep_link"`
}

// Composer renders drafts against a fixed catalog and destination number.
type Composer struct {
	catalog        *catalog.Catalog
	whatsAppNumber string
	countryCode    string
	localDigits    int
}

// NewComposer builds a composer for the given WhatsApp destination.
func NewComposer(cat *catalog.Catalog, whatsAppNumber, countryCode string, localDigits int) *Composer {
	if cat == nil {
		panic("compose: catalog required")
	}
	return &Composer{
		catalog:        cat,
		whatsAppNumber: whatsAppNumber,
		countryCode:    countryCode,
		localDigits:    localDigits,
	}
}

type labels struct {
	header       string // takes the resolved service name
	name         string
	phone        string
	date         string
	timeOfDay    string
	urgent       string
	vehicle      string
	licensePlate string
	equipment    string
	model        string
	serialNumber string
	issue        string
}

var labelsByLocale = map[locale.Locale]labels{
	locale.English: {
		header:       "Hi! I would like to book an appointment for %s. My details:",
		name:         "Name",
		phone:        "Phone",
		date:         "Preferred Date",
		timeOfDay:    "Time",
		urgent:       "⚡ URGENT - Please respond quickly",
		vehicle:      "Vehicle",
		licensePlate: "License Plate",
		equipment:    "Equipment",
		model:        "Model",
		serialNumber: "Serial Number",
		issue:        "Issue",
	},
	locale.Arabic: {
		header:       "مرحباً! أود حجز موعد لـ %s. تفاصيلي:",
		name:         "الاسم",
		phone:        "الهاتف",
		date:         "التاريخ المفضل",
		timeOfDay:    "الوقت",
		urgent:       "⚡ عاجل - يرجى الرد السريع",
		vehicle:      "المركبة",
		licensePlate: "رقم اللوحة",
		equipment:    "المعدات",
		model:        "الموديل",
		serialNumber: "الرقم التسلسلي",
		issue:        "المشكلة",
	},
}

// Compose renders the draft into localized text and a deep link. Output is
// deterministic: the same draft and locale always produce identical bytes.
func (c *Composer) Compose(d booking.Draft, l locale.Locale) (Message, error) {
	if _, ok := labelsByLocale[l]; !ok {
		l = locale.English
	}
	lb := labelsByLocale[l]

	offering, ok := c.catalog.Get(d.ServiceID)
	if !ok {
		return Message{}, fmt.Errorf("%w: service", ErrIncompleteDraft)
	}
	if strings.TrimSpace(d.CustomerName) == "" {
		return Message{}, fmt.Errorf("%w: customer name", ErrIncompleteDraft)
	}
	if strings.TrimSpace(d.CustomerPhone) == "" {
		return Message{}, fmt.Errorf("%w: customer phone", ErrIncompleteDraft)
	}
	if strings.TrimSpace(d.PreferredDate) == "" {
		return Message{}, fmt.Errorf("%w: preferred date", ErrIncompleteDraft)
	}
	if strings.TrimSpace(d.PreferredTime) == "" {
		return Message{}, fmt.Errorf("%w: preferred time", ErrIncompleteDraft)
	}

	lines := []string{
		fmt.Sprintf(lb.header, catalog.ResolveDisplayName(offering, l)),
		lb.name + ": " + strings.TrimSpace(d.CustomerName),
		lb.phone + ": " + c.formatPhone(d.CustomerPhone),
		lb.date + ": " + c.formatDate(d.PreferredDate, l),
		lb.timeOfDay + ": " + c.formatTime(d.PreferredTime, l),
	}

	if d.Urgency == booking.UrgencyUrgent {
		lines = append(lines, lb.urgent)
	}

	lines = append(lines, categoryLines(d, lb)...)

	if desc := strings.TrimSpace(d.ProblemDescription); desc != "" {
		lines = append(lines, lb.issue+": "+desc)
	}

	text := strings.Join(lines, "\n")
	return Message{Text: text, DeepLink: ToDeepLink(text, c.whatsAppNumber)}, nil
}

// categoryLines renders the variant-specific detail lines. Blank fields
// are omitted entirely, never rendered as empty placeholders.
func categoryLines(d booking.Draft, lb labels) []string {
	var lines []string
	switch {
	case d.Vehicle != nil:
		model := strings.TrimSpace(d.Vehicle.MakeModel)
		plate := strings.TrimSpace(d.Vehicle.LicensePlate)
		switch {
		case model != "" && plate != "":
			lines = append(lines, fmt.Sprintf("%s: %s (%s)", lb.vehicle, model, plate))
		case model != "":
			lines = append(lines, lb.vehicle+": "+model)
		case plate != "":
			lines = append(lines, lb.licensePlate+": "+plate)
		}
	case d.Equipment != nil:
		if v := strings.TrimSpace(d.Equipment.EquipmentType); v != "" {
			lines = append(lines, lb.equipment+": "+v)
		}
		if v := strings.TrimSpace(d.Equipment.MakeModel); v != "" {
			lines = append(lines, lb.model+": "+v)
		}
		if v := strings.TrimSpace(d.Equipment.SerialNumber); v != "" {
			lines = append(lines, lb.serialNumber+": "+v)
		}
	}
	return lines
}

func (c *Composer) formatPhone(raw string) string {
	if local, ok := booking.NormalizePhone(raw, c.countryCode, c.localDigits); ok {
		return booking.FormatPhone(local, c.countryCode)
	}
	return strings.TrimSpace(raw)
}

func (c *Composer) formatDate(raw string, l locale.Locale) string {
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return raw
	}
	return l.FormatDate(d)
}

func (c *Composer) formatTime(raw string, l locale.Locale) string {
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return raw
	}
	return l.FormatTime(t)
}

// ToDeepLink percent-encodes text into the wa.me URL for the destination
// number. The result is a valid URL with no unescaped reserved characters.
func ToDeepLink(text, destinationNumber string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + destinationNumber,
		RawQuery: url.Values{"text": {text}}.Encode(),
	}
	return u.String()
}
