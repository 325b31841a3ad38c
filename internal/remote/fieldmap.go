// Field mapping between domain entities and store rows. Domain structs use
// the application's camelCase convention; rows use the store's snake_case
// columns. Each direction is a fixed field-by-field table. The functions are
// total: they never fail, absent optional fields map to absent keys, and a
// forward-then-backward round trip is the identity on every recognized field.
package remote

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mistry-labs/repairdesk/pkg/types"
)

// customerToRow maps a Customer to its store row. Optional fields are omitted
// when unset rather than written as empty columns.
func customerToRow(c types.Customer) Row {
	row := Row{
		"id":    c.ID,
		"name":  c.Name,
		"phone": c.Phone,
	}
	if c.AltPhone != "" {
		row["alt_phone"] = c.AltPhone
	}
	if c.Email != "" {
		row["email"] = c.Email
	}
	if c.Address != "" {
		row["address"] = c.Address
	}
	if !c.CreatedAt.IsZero() {
		row["created_at"] = formatTime(c.CreatedAt)
	}
	return row
}

// customerFromRow maps a store row to a Customer. Missing or null columns
// yield zero-valued fields.
func customerFromRow(row Row) types.Customer {
	return types.Customer{
		ID:        rowString(row, "id"),
		Name:      rowString(row, "name"),
		Phone:     rowString(row, "phone"),
		AltPhone:  rowString(row, "alt_phone"),
		Email:     rowString(row, "email"),
		Address:   rowString(row, "address"),
		CreatedAt: rowTime(row, "created_at"),
	}
}

// customerPatchRow maps the set fields of a patch to sparse row changes.
// A field explicitly cleared to the empty string is included; an omitted
// field is not.
func customerPatchRow(p types.CustomerPatch) Row {
	row := Row{}
	if v, ok := p.Name.Get(); ok {
		row["name"] = v
	}
	if v, ok := p.Phone.Get(); ok {
		row["phone"] = v
	}
	if v, ok := p.AltPhone.Get(); ok {
		row["alt_phone"] = v
	}
	if v, ok := p.Email.Get(); ok {
		row["email"] = v
	}
	if v, ok := p.Address.Get(); ok {
		row["address"] = v
	}
	return row
}

// repairToRow maps a RepairJob to its store row.
func repairToRow(j types.RepairJob) Row {
	row := Row{
		"id":               j.ID,
		"customer_id":      j.CustomerID,
		"material_details": j.MaterialDetails,
		"services":         servicesToAny(j.Services),
		"estimated_time":   j.EstimatedTime,
		"status":           j.Status,
	}
	if !j.ReceivedDate.IsZero() {
		row["received_date"] = formatTime(j.ReceivedDate)
	}
	if j.DeliveryDate != nil {
		row["delivery_date"] = formatTime(*j.DeliveryDate)
	}
	if j.Notes != "" {
		row["notes"] = j.Notes
	}
	if j.BillNote != "" {
		row["bill_note"] = j.BillNote
	}
	if j.ActualTotalCost != nil {
		row["actual_total_cost"] = *j.ActualTotalCost
	}
	return row
}

// repairFromRow maps a store row to a RepairJob.
func repairFromRow(row Row) types.RepairJob {
	j := types.RepairJob{
		ID:              rowString(row, "id"),
		CustomerID:      rowString(row, "customer_id"),
		MaterialDetails: rowString(row, "material_details"),
		Services:        servicesFromAny(row["services"]),
		EstimatedTime:   rowString(row, "estimated_time"),
		Status:          rowString(row, "status"),
		ReceivedDate:    rowTime(row, "received_date"),
		Notes:           rowString(row, "notes"),
		BillNote:        rowString(row, "bill_note"),
	}
	if t := rowTime(row, "delivery_date"); !t.IsZero() {
		j.DeliveryDate = &t
	}
	if f, ok := rowFloat(row, "actual_total_cost"); ok {
		j.ActualTotalCost = &f
	}
	return j
}

// repairPatchRow maps the set fields of a patch to sparse row changes.
// Pointer fields set to nil clear the stored column.
func repairPatchRow(p types.RepairJobPatch) Row {
	row := Row{}
	if v, ok := p.MaterialDetails.Get(); ok {
		row["material_details"] = v
	}
	if v, ok := p.Services.Get(); ok {
		row["services"] = servicesToAny(v)
	}
	if v, ok := p.EstimatedTime.Get(); ok {
		row["estimated_time"] = v
	}
	if v, ok := p.Status.Get(); ok {
		row["status"] = v
	}
	if v, ok := p.DeliveryDate.Get(); ok {
		if v == nil {
			row["delivery_date"] = nil
		} else {
			row["delivery_date"] = formatTime(*v)
		}
	}
	if v, ok := p.Notes.Get(); ok {
		row["notes"] = v
	}
	if v, ok := p.BillNote.Get(); ok {
		row["bill_note"] = v
	}
	if v, ok := p.ActualTotalCost.Get(); ok {
		if v == nil {
			row["actual_total_cost"] = nil
		} else {
			row["actual_total_cost"] = *v
		}
	}
	return row
}

// servicesToAny renders service items in the generic JSON shape rows carry.
func servicesToAny(services []types.ServiceItem) []any {
	out := make([]any, len(services))
	for i, s := range services {
		out[i] = map[string]any{"problem": s.Problem, "cost": s.Cost}
	}
	return out
}

// servicesFromAny reads service items from whatever shape the transport
// delivered: a decoded JSON array, typed items, or a raw JSON document.
// Unrecognized shapes yield no items rather than an error.
func servicesFromAny(v any) []types.ServiceItem {
	switch items := v.(type) {
	case nil:
		return nil
	case []types.ServiceItem:
		out := make([]types.ServiceItem, len(items))
		copy(out, items)
		return out
	case []any:
		out := make([]types.ServiceItem, 0, len(items))
		for _, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			s := types.ServiceItem{Problem: anyString(m["problem"])}
			if f, ok := anyFloat(m["cost"]); ok {
				s.Cost = f
			}
			out = append(out, s)
		}
		return out
	case string:
		return servicesFromJSON([]byte(items))
	case []byte:
		return servicesFromJSON(items)
	default:
		return nil
	}
}

func servicesFromJSON(raw []byte) []types.ServiceItem {
	var items []types.ServiceItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

// formatTime renders timestamps the way rows store them.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// rowString reads a column as a string. Missing and null columns read as "".
func rowString(row Row, key string) string {
	return anyString(row[key])
}

// rowTime reads a column as a timestamp. Missing, null, and unparseable
// columns read as the zero time.
func rowTime(row Row, key string) time.Time {
	switch v := row[key].(type) {
	case time.Time:
		return v.UTC()
	case nil:
		return time.Time{}
	}
	s := rowString(row, key)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// rowFloat reads a numeric column. The second return is false when the column
// is missing or null.
func rowFloat(row Row, key string) (float64, bool) {
	return anyFloat(row[key])
}

func anyString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprint(v)
	}
}

func anyFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
