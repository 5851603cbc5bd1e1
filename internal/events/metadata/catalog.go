// Package metadata holds the static event-type catalog: a declarative
// table of field specs per event type, consulted by one generic validator
// instead of per-type code. The catalog also drives the front end's event
// forms, so field order and labels matter.
package metadata

import "fmt"

type FieldSpec struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required,omitempty"`
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Rows        int      `json:"rows,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
}

type EventType struct {
	Label  string      `json:"label"`
	Fields []FieldSpec `json:"fields"`
}

func f(v float64) *float64 { return &v }

var Catalog = map[string]EventType{
	"siteVisiting": {
		Label: "Site Visiting",
		Fields: []FieldSpec{
			{Name: "visitDate", Label: "Visit Date", Type: "date", Required: true},
			{Name: "location", Label: "Site Location", Type: "text", Required: true},
			{Name: "visitPurpose", Label: "Purpose of Visit", Type: "text", Required: true},
			{Name: "attendees", Label: "Attendees", Type: "text", Placeholder: "Names separated by comma"},
			{Name: "notes", Label: "Notes", Type: "textarea", Rows: 4},
		},
	},
	"mapping": {
		Label: "Mapping",
		Fields: []FieldSpec{
			{Name: "mappingDate", Label: "Mapping Date", Type: "date", Required: true},
			{Name: "mapArea", Label: "Mapped Area (sq.m)", Type: "number", Required: true},
			{Name: "mapType", Label: "Map Type", Type: "select", Required: true,
				Options: []string{"Topographic", "Site Plan", "Survey", "Other"}},
			{Name: "notes", Label: "Notes", Type: "textarea", Rows: 4},
		},
	},
	"sketching": {
		Label: "Sketching",
		Fields: []FieldSpec{
			{Name: "sketchDate", Label: "Sketch Date", Type: "date", Required: true},
			{Name: "sketchType", Label: "Sketch Type", Type: "select", Required: true,
				Options: []string{"Floor Plan", "Elevation", "3D View", "Detail", "Other"}},
			{Name: "description", Label: "Description", Type: "textarea", Rows: 4, Required: true},
		},
	},
	"siteInspection": {
		Label: "Site Inspection",
		Fields: []FieldSpec{
			{Name: "inspectionDate", Label: "Inspection Date", Type: "date", Required: true},
			{Name: "inspector", Label: "Inspector Name", Type: "text", Required: true},
			{Name: "workProgress", Label: "Work Progress (%)", Type: "number", Min: f(0), Max: f(100), Required: true},
			{Name: "qualityRating", Label: "Quality Rating", Type: "select", Required: true,
				Options: []string{"Excellent", "Good", "Average", "Poor"}},
			{Name: "issues", Label: "Issues Found", Type: "textarea", Rows: 4},
			{Name: "recommendations", Label: "Recommendations", Type: "textarea", Rows: 4},
		},
	},
	"materialDelivery": {
		Label: "Material Delivery",
		Fields: []FieldSpec{
			{Name: "deliveryDate", Label: "Delivery Date", Type: "date", Required: true},
			{Name: "materialType", Label: "Material Type", Type: "text", Required: true},
			{Name: "quantity", Label: "Quantity", Type: "number", Required: true},
			{Name: "unit", Label: "Unit", Type: "select", Required: true,
				Options: []string{"kg", "tons", "pieces", "bags", "cubic meters"}},
			{Name: "supplier", Label: "Supplier Name", Type: "text", Required: true},
			{Name: "invoiceNumber", Label: "Invoice Number", Type: "text"},
			{Name: "notes", Label: "Notes", Type: "textarea", Rows: 3},
		},
	},
	"meetingScheduled": {
		Label: "Meeting Scheduled",
		Fields: []FieldSpec{
			{Name: "meetingDate", Label: "Meeting Date", Type: "datetime-local", Required: true},
			{Name: "meetingType", Label: "Meeting Type", Type: "select", Required: true,
				Options: []string{"Client Meeting", "Team Meeting", "Vendor Meeting", "Site Meeting"}},
			{Name: "agenda", Label: "Agenda", Type: "textarea", Rows: 4, Required: true},
			{Name: "participants", Label: "Participants", Type: "text", Placeholder: "Names separated by comma"},
			{Name: "location", Label: "Location", Type: "text", Required: true},
		},
	},
}

func Lookup(eventType string) (EventType, bool) {
	t, ok := Catalog[eventType]
	return t, ok
}

// Label resolves the human-readable label for a type, falling back to the
// raw type string when the catalog entry no longer exists.
func Label(eventType string) string {
	if t, ok := Catalog[eventType]; ok {
		return t.Label
	}
	return eventType
}

// ValidateData checks the payload against the type's field specs in
// declared order and fails on the first required field that is absent or
// empty.
func ValidateData(t EventType, data map[string]any) error {
	for _, field := range t.Fields {
		if !field.Required {
			continue
		}
		v, ok := data[field.Name]
		if !ok || v == nil {
			return fmt.Errorf("Missing required field: %s", field.Name)
		}
		if s, isString := v.(string); isString && s == "" {
			return fmt.Errorf("Missing required field: %s", field.Name)
		}
	}
	return nil
}
