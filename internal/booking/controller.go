package booking

import (
	"fmt"
	"sync"
	"time"

	"github.com/alrooliya/workshop-booking/internal/catalog"
	"github.com/alrooliya/workshop-booking/internal/hours"
)

// Step is one stage of the fixed form sequence.
type Step int

const (
	StepCategorySelection Step = iota
	StepDetails
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepCategorySelection:
		return "category_selection"
	case StepDetails:
		return "details"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// Rules carries the configurable validation behavior: which
// category-specific fields are required and whether an out-of-hours
// preferred time blocks submission or only warns.
type Rules struct {
	CountryCode          string
	LocalNumberLength    int
	RequireVehiclePlate  bool
	RequireVehicleModel  bool
	RequireEquipmentType bool
	EnforceBusinessHours bool

	// Now is the validation clock; nil means time.Now.
	Now func() time.Time
}

func (r Rules) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Controller owns the single in-flight draft and its step progression.
// All mutation goes through transition methods; there is no ambient state.
type Controller struct {
	mu       sync.Mutex
	rules    Rules
	catalog  *catalog.Catalog
	schedule *hours.Schedule

	step       Step
	draft      Draft
	lastResult ValidationResult
}

// NewController builds a controller positioned at category selection with
// an empty draft.
func NewController(cat *catalog.Catalog, schedule *hours.Schedule, rules Rules) *Controller {
	if cat == nil {
		panic("booking: catalog required")
	}
	if schedule == nil {
		panic("booking: schedule required")
	}
	return &Controller{
		rules:    rules,
		catalog:  cat,
		schedule: schedule,
		step:     StepCategorySelection,
	}
}

// Step returns the currently active step.
func (c *Controller) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Draft returns a copy of the accumulated input.
func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.clone()
}

// LastResult returns the validation outcome of the most recent Advance.
func (c *Controller) LastResult() ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastResult
}

// SelectCategory records the category and moves to the details step. A
// category change discards the previously selected service and the other
// category's fields so no stale cross-category data survives.
func (c *Controller) SelectCategory(cat catalog.Category) error {
	if _, err := catalog.ParseCategory(string(cat)); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step != StepCategorySelection {
		return fmt.Errorf("%w: select category in %s", ErrInvalidTransition, c.step)
	}

	if c.draft.Category != nil && *c.draft.Category != cat {
		c.draft.ServiceID = ""
		c.draft.Vehicle = nil
		c.draft.Equipment = nil
	}
	selected := cat
	c.draft.Category = &selected
	c.step = StepDetails
	return nil
}

// Apply merges a partial edit into the draft. Valid only in the details
// step; category-specific fields must match the selected category.
func (c *Controller) Apply(u Update) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step != StepDetails {
		return fmt.Errorf("%w: edit fields in %s", ErrInvalidTransition, c.step)
	}
	if c.draft.Category == nil {
		return ErrNoCategory
	}
	cat := *c.draft.Category

	if u.ServiceID != nil {
		c.draft.ServiceID = *u.ServiceID
	}
	if u.CustomerName != nil {
		c.draft.CustomerName = *u.CustomerName
	}
	if u.CustomerPhone != nil {
		c.draft.CustomerPhone = *u.CustomerPhone
	}
	if u.PreferredDate != nil {
		c.draft.PreferredDate = *u.PreferredDate
	}
	if u.PreferredTime != nil {
		c.draft.PreferredTime = *u.PreferredTime
	}
	if u.Urgency != nil {
		switch Urgency(*u.Urgency) {
		case UrgencyNormal, UrgencyUrgent, "":
			c.draft.Urgency = Urgency(*u.Urgency)
		default:
			return fmt.Errorf("booking: unknown urgency %q", *u.Urgency)
		}
	}
	if u.ContactMethod != nil {
		switch ContactMethod(*u.ContactMethod) {
		case ContactPhone, ContactWhatsApp, "":
			c.draft.ContactMethod = ContactMethod(*u.ContactMethod)
		default:
			return fmt.Errorf("booking: unknown contact method %q", *u.ContactMethod)
		}
	}
	if u.ProblemDescription != nil {
		c.draft.ProblemDescription = *u.ProblemDescription
	}

	if u.LicensePlate != nil {
		if cat != catalog.CategoryVehicle {
			return fmt.Errorf("%w: license_plate", ErrFieldNotInCategory)
		}
		c.draft.vehicle().LicensePlate = *u.LicensePlate
	}
	if u.EquipmentType != nil {
		if cat != catalog.CategoryIndustrial {
			return fmt.Errorf("%w: equipment_type", ErrFieldNotInCategory)
		}
		c.draft.equipment().EquipmentType = *u.EquipmentType
	}
	if u.SerialNumber != nil {
		if cat != catalog.CategoryIndustrial {
			return fmt.Errorf("%w: serial_number", ErrFieldNotInCategory)
		}
		c.draft.equipment().SerialNumber = *u.SerialNumber
	}
	if u.MakeModel != nil {
		switch cat {
		case catalog.CategoryVehicle:
			c.draft.vehicle().MakeModel = *u.MakeModel
		case catalog.CategoryIndustrial:
			c.draft.equipment().MakeModel = *u.MakeModel
		}
	}
	return nil
}

// Advance runs details validation and, when it passes, moves to review.
// On failure the step and draft are left untouched and every violated
// rule is reported.
func (c *Controller) Advance() (ValidationResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step != StepDetails {
		return ValidationResult{}, fmt.Errorf("%w: advance from %s", ErrInvalidTransition, c.step)
	}

	result := c.validateDetails()
	c.lastResult = result
	if result.OK() {
		c.step = StepReview
	}
	return result, nil
}

// Retreat moves to the immediately preceding step. Entered data is kept;
// only an actual category change clears anything.
func (c *Controller) Retreat() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.step {
	case StepDetails:
		c.step = StepCategorySelection
	case StepReview:
		c.step = StepDetails
	default:
		return fmt.Errorf("%w: retreat from %s", ErrInvalidTransition, c.step)
	}
	return nil
}

// Reset returns to category selection with an empty draft. Called after a
// successful submission or an explicit cancel.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = Draft{}
	c.lastResult = ValidationResult{}
	c.step = StepCategorySelection
}
