package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/alrooliya/workshop-booking/internal/catalog"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// validateDetails checks every details-step rule and aggregates the
// violations. Caller holds the lock.
func (c *Controller) validateDetails() ValidationResult {
	var result ValidationResult
	fail := func(kind FailureKind, field, reason string) {
		result.Failures = append(result.Failures, Failure{Kind: kind, Field: field, Reason: reason})
	}

	cat := *c.draft.Category

	// Service must exist and belong to the selected category.
	offering, ok := c.catalog.Get(c.draft.ServiceID)
	switch {
	case strings.TrimSpace(c.draft.ServiceID) == "":
		fail(KindMissingSelection, "service_id", "no service selected")
	case !ok:
		fail(KindMissingSelection, "service_id", fmt.Sprintf("unknown service %q", c.draft.ServiceID))
	case offering.Category != cat:
		fail(KindMissingSelection, "service_id", fmt.Sprintf("service %q is not a %s service", c.draft.ServiceID, cat))
	}

	if len(strings.TrimSpace(c.draft.CustomerName)) < 2 {
		fail(KindInvalidName, "customer_name", "name must be at least 2 characters")
	}

	if _, ok := NormalizePhone(c.draft.CustomerPhone, c.rules.CountryCode, c.rules.LocalNumberLength); !ok {
		fail(KindInvalidPhone, "customer_phone",
			fmt.Sprintf("expected %d digits, optionally prefixed by %s", c.rules.LocalNumberLength, c.rules.CountryCode))
	}

	loc := c.schedule.Location()
	now := c.rules.now().In(loc)
	date, dateErr := time.ParseInLocation(dateLayout, c.draft.PreferredDate, loc)
	if dateErr != nil {
		fail(KindPastDate, "preferred_date", "not a valid calendar date")
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		if date.Before(today) {
			fail(KindPastDate, "preferred_date", "date is in the past")
		}
	}

	tod, timeErr := time.Parse(timeLayout, c.draft.PreferredTime)
	if strings.TrimSpace(c.draft.PreferredTime) == "" || timeErr != nil {
		fail(KindMissingTime, "preferred_time", "preferred time is required")
	} else if dateErr == nil {
		// Out-of-hours is advisory unless configuration makes it fatal.
		instant := time.Date(date.Year(), date.Month(), date.Day(), tod.Hour(), tod.Minute(), 0, 0, loc)
		if !c.schedule.IsOpen(instant) {
			f := Failure{Kind: KindOutsideHours, Field: "preferred_time", Reason: "time is outside business hours"}
			if c.rules.EnforceBusinessHours {
				result.Failures = append(result.Failures, f)
			} else {
				result.Warnings = append(result.Warnings, f)
			}
		}
	}

	c.validateCategoryFields(cat, &result)
	return result
}

func (c *Controller) validateCategoryFields(cat catalog.Category, result *ValidationResult) {
	missing := func(field string) {
		result.Failures = append(result.Failures, Failure{
			Kind:   KindMissingCategoryField,
			Field:  field,
			Reason: field + " is required for " + string(cat) + " bookings",
		})
	}

	switch cat {
	case catalog.CategoryVehicle:
		v := c.draft.Vehicle
		if c.rules.RequireVehiclePlate && (v == nil || strings.TrimSpace(v.LicensePlate) == "") {
			missing("license_plate")
		}
		if c.rules.RequireVehicleModel && (v == nil || strings.TrimSpace(v.MakeModel) == "") {
			missing("make_model")
		}
	case catalog.CategoryIndustrial:
		e := c.draft.Equipment
		if c.rules.RequireEquipmentType && (e == nil || strings.TrimSpace(e.EquipmentType) == "") {
			missing("equipment_type")
		}
	}
}
