// Tests for the field mapper: both directions must be total and a
// forward-then-backward round trip must be the identity on recognized fields.
package remote

import (
	"reflect"
	"testing"
	"time"

	"github.com/mistry-labs/repairdesk/pkg/types"
)

func TestCustomerRoundTripFromEntity(t *testing.T) {
	full := types.Customer{
		ID:        "C-001001",
		Name:      "Asha Verma",
		Phone:     "98100 00000",
		AltPhone:  "011-4000000",
		Email:     "asha@example.com",
		Address:   "14 MG Road",
		CreatedAt: time.Date(2025, 2, 10, 9, 30, 0, 0, time.UTC),
	}
	minimal := types.Customer{
		ID:        "C-001002",
		Name:      "Ravi",
		Phone:     "98200 00000",
		CreatedAt: time.Date(2025, 2, 11, 12, 0, 0, 0, time.UTC),
	}

	for _, c := range []types.Customer{full, minimal} {
		got := customerFromRow(customerToRow(c))
		if !reflect.DeepEqual(got, c) {
			t.Errorf("customer round trip = %+v, want %+v", got, c)
		}
	}
}

func TestCustomerRoundTripFromRow(t *testing.T) {
	row := Row{
		"id":         "C-001001",
		"name":       "Asha Verma",
		"phone":      "98100 00000",
		"alt_phone":  "011-4000000",
		"email":      "asha@example.com",
		"address":    "14 MG Road",
		"created_at": "2025-02-10T09:30:00Z",
	}

	got := customerToRow(customerFromRow(row))
	if !reflect.DeepEqual(got, row) {
		t.Errorf("row round trip = %v, want %v", got, row)
	}
}

func TestCustomerFromRowToleratesAbsentOptionals(t *testing.T) {
	row := Row{
		"id":        "C-001003",
		"name":      "Meera",
		"phone":     "98300 00000",
		"alt_phone": nil,
		"address":   nil,
	}

	c := customerFromRow(row)
	if c.AltPhone != "" || c.Email != "" || c.Address != "" {
		t.Errorf("absent optionals should map to empty fields, got %+v", c)
	}
	if !c.CreatedAt.IsZero() {
		t.Errorf("absent created_at should be the zero time, got %v", c.CreatedAt)
	}
}

func TestRepairRoundTripFromEntity(t *testing.T) {
	delivered := time.Date(2025, 3, 5, 16, 30, 0, 0, time.UTC)
	cost := 450.0
	full := types.RepairJob{
		ID:              "R-001001",
		CustomerID:      "C-001001",
		MaterialDetails: "Dell XPS 13, no power",
		Services: []types.ServiceItem{
			{Problem: "power jack replacement", Cost: 300},
			{Problem: "cleaning", Cost: 50},
		},
		EstimatedTime:   "3 days",
		Status:          types.StatusDelivered,
		ReceivedDate:    time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		DeliveryDate:    &delivered,
		Notes:           "second visit",
		BillNote:        "90 day warranty on parts",
		ActualTotalCost: &cost,
	}
	minimal := types.RepairJob{
		ID:              "R-001002",
		CustomerID:      "C-001002",
		MaterialDetails: "Samsung A52, cracked glass",
		Services:        []types.ServiceItem{{Problem: "glass", Cost: 120}},
		EstimatedTime:   "1 day",
		Status:          types.StatusPending,
		ReceivedDate:    time.Date(2025, 3, 2, 11, 0, 0, 0, time.UTC),
	}

	for _, j := range []types.RepairJob{full, minimal} {
		got := repairFromRow(repairToRow(j))
		if !reflect.DeepEqual(got, j) {
			t.Errorf("repair round trip = %+v, want %+v", got, j)
		}
	}
}

func TestRepairRoundTripFromRow(t *testing.T) {
	row := Row{
		"id":               "R-001001",
		"customer_id":      "C-001001",
		"material_details": "Dell XPS 13, no power",
		"services": []any{
			map[string]any{"problem": "power jack replacement", "cost": 300.0},
			map[string]any{"problem": "cleaning", "cost": 50.0},
		},
		"estimated_time":    "3 days",
		"status":            "In Progress",
		"received_date":     "2025-03-01T10:00:00Z",
		"delivery_date":     "2025-03-05T16:30:00Z",
		"notes":             "second visit",
		"bill_note":         "90 day warranty on parts",
		"actual_total_cost": 450.0,
	}

	got := repairToRow(repairFromRow(row))
	if !reflect.DeepEqual(got, row) {
		t.Errorf("row round trip = %v, want %v", got, row)
	}
}

func TestServicesFromAnyShapes(t *testing.T) {
	want := []types.ServiceItem{{Problem: "screen", Cost: 150}}

	shapes := map[string]any{
		"decoded json array": []any{map[string]any{"problem": "screen", "cost": 150.0}},
		"typed items":        []types.ServiceItem{{Problem: "screen", Cost: 150}},
		"raw json string":    `[{"problem":"screen","cost":150}]`,
		"raw json bytes":     []byte(`[{"problem":"screen","cost":150}]`),
	}
	for name, shape := range shapes {
		if got := servicesFromAny(shape); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: servicesFromAny = %+v, want %+v", name, got, want)
		}
	}

	if got := servicesFromAny(42); got != nil {
		t.Errorf("unrecognized shape should yield nil, got %+v", got)
	}
	if got := servicesFromAny(nil); got != nil {
		t.Errorf("nil should yield nil, got %+v", got)
	}
}

func TestCustomerPatchRowDistinguishesClearedFromOmitted(t *testing.T) {
	patch := types.CustomerPatch{
		Phone:    types.Set("98100 11111"),
		AltPhone: types.Set(""), // deliberately cleared
	}

	row := customerPatchRow(patch)
	if got, ok := row["alt_phone"]; !ok || got != "" {
		t.Errorf("cleared alt_phone must appear as empty, got %v (present=%v)", got, ok)
	}
	if got := row["phone"]; got != "98100 11111" {
		t.Errorf("phone = %v, want 98100 11111", got)
	}
	if _, ok := row["name"]; ok {
		t.Error("omitted name must not appear in the payload")
	}
	if len(row) != 2 {
		t.Errorf("payload should carry exactly the set fields, got %v", row)
	}
}

func TestRepairPatchRowClearsPointerFields(t *testing.T) {
	patch := types.RepairJobPatch{
		Status:          types.Set(types.StatusCancelled),
		DeliveryDate:    types.Set[*time.Time](nil),
		ActualTotalCost: types.Set[*float64](nil),
	}

	row := repairPatchRow(patch)
	if v, ok := row["delivery_date"]; !ok || v != nil {
		t.Errorf("cleared delivery_date must appear as null, got %v (present=%v)", v, ok)
	}
	if v, ok := row["actual_total_cost"]; !ok || v != nil {
		t.Errorf("cleared actual_total_cost must appear as null, got %v (present=%v)", v, ok)
	}
	if row["status"] != types.StatusCancelled {
		t.Errorf("status = %v, want %v", row["status"], types.StatusCancelled)
	}
	if _, ok := row["material_details"]; ok {
		t.Error("omitted material_details must not appear in the payload")
	}
}
