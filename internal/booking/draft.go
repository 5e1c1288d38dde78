// Package booking drives the multi-step appointment request form: one
// in-flight draft per visitor, strict step progression, and aggregate
// validation before the draft is handed to the message composer.
package booking

import "github.com/alrooliya/workshop-booking/internal/catalog"

// Urgency flags how quickly the customer needs the work done.
type Urgency string

const (
	UrgencyNormal Urgency = "normal"
	UrgencyUrgent Urgency = "urgent"
)

// ContactMethod is the customer's preferred reply channel.
type ContactMethod string

const (
	ContactPhone    ContactMethod = "phone"
	ContactWhatsApp ContactMethod = "whatsapp"
)

// VehicleDetails are the extra fields collected for vehicle bookings.
type VehicleDetails struct {
	LicensePlate string `json:"license_plate,omitempty"`
	MakeModel    string `json:"make_model,omitempty"`
}

// EquipmentDetails are the extra fields collected for industrial bookings.
type EquipmentDetails struct {
	EquipmentType string `json:"equipment_type,omitempty"`
	MakeModel     string `json:"make_model,omitempty"`
	SerialNumber  string `json:"serial_number,omitempty"`
}

// Draft is the accumulated user input for one in-progress booking attempt.
// Only the variant matching the selected category is ever populated.
type Draft struct {
	Category           *catalog.Category `json:"category,omitempty"`
	ServiceID          string            `json:"service_id,omitempty"`
	CustomerName       string            `json:"customer_name,omitempty"`
	CustomerPhone      string            `json:"customer_phone,omitempty"`
	PreferredDate      string            `json:"preferred_date,omitempty"` // 2006-01-02
	PreferredTime      string            `json:"preferred_time,omitempty"` // 15:04
	Urgency            Urgency           `json:"urgency,omitempty"`
	ContactMethod      ContactMethod     `json:"contact_method,omitempty"`
	ProblemDescription string            `json:"problem_description,omitempty"`
	Vehicle            *VehicleDetails   `json:"vehicle,omitempty"`
	Equipment          *EquipmentDetails `json:"equipment,omitempty"`
}

// Update is a partial edit to the draft. Nil fields are left untouched.
type Update struct {
	ServiceID          *string `json:"service_id"`
	CustomerName       *string `json:"customer_name"`
	CustomerPhone      *string `json:"customer_phone"`
	PreferredDate      *string `json:"preferred_date"`
	PreferredTime      *string `json:"preferred_time"`
	Urgency            *string `json:"urgency"`
	ContactMethod      *string `json:"contact_method"`
	ProblemDescription *string `json:"problem_description"`

	// Vehicle-only fields.
	LicensePlate *string `json:"license_plate"`
	MakeModel    *string `json:"make_model"`

	// Industrial-only fields. MakeModel above is shared by both variants.
	EquipmentType *string `json:"equipment_type"`
	SerialNumber  *string `json:"serial_number"`
}

func (d *Draft) vehicle() *VehicleDetails {
	if d.Vehicle == nil {
		d.Vehicle = &VehicleDetails{}
	}
	return d.Vehicle
}

func (d *Draft) equipment() *EquipmentDetails {
	if d.Equipment == nil {
		d.Equipment = &EquipmentDetails{}
	}
	return d.Equipment
}

// clone returns a deep copy so callers can't mutate controller state.
func (d Draft) clone() Draft {
	out := d
	if d.Category != nil {
		c := *d.Category
		out.Category = &c
	}
	if d.Vehicle != nil {
		v := *d.Vehicle
		out.Vehicle = &v
	}
	if d.Equipment != nil {
		e := *d.Equipment
		out.Equipment = &e
	}
	return out
}
