package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{name: "pending", status: StatusPending, want: true},
		{name: "diagnosing", status: StatusDiagnosing, want: true},
		{name: "in progress keeps its space", status: "In Progress", want: true},
		{name: "awaiting parts", status: StatusAwaitingParts, want: true},
		{name: "completed", status: StatusCompleted, want: true},
		{name: "delivered", status: StatusDelivered, want: true},
		{name: "cancelled", status: StatusCancelled, want: true},
		{name: "unknown label rejected", status: "Fixed", want: false},
		{name: "case sensitive", status: "pending", want: false},
		{name: "empty rejected", status: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidStatus(tt.status))
		})
	}
}

func TestTerminalStatus(t *testing.T) {
	assert.True(t, TerminalStatus(StatusDelivered))
	assert.True(t, TerminalStatus(StatusCancelled))
	assert.False(t, TerminalStatus(StatusCompleted))
	assert.False(t, TerminalStatus(StatusPending))
}

func TestBillableTotal(t *testing.T) {
	services := []ServiceItem{
		{Problem: "screen replacement", Cost: 200},
		{Problem: "battery", Cost: 100},
	}

	tests := []struct {
		name string
		job  RepairJob
		want float64
	}{
		{
			name: "actual total overrides service sum",
			job:  RepairJob{Services: services, ActualTotalCost: ptr(500.0)},
			want: 500,
		},
		{
			name: "absent actual total falls back to service sum",
			job:  RepairJob{Services: services},
			want: 300,
		},
		{
			name: "explicit zero actual total is authoritative",
			job:  RepairJob{Services: services, ActualTotalCost: ptr(0.0)},
			want: 0,
		},
		{
			name: "no services and no actual total",
			job:  RepairJob{},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.job.BillableTotal())
		})
	}
}

func TestEffectiveBillNote(t *testing.T) {
	assert.Equal(t, DefaultBillNote, RepairJob{}.EffectiveBillNote())
	assert.Equal(t, "No warranty on water damage.",
		RepairJob{BillNote: "No warranty on water damage."}.EffectiveBillNote())
}

func TestRepairJobPatchApply(t *testing.T) {
	received := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	delivered := time.Date(2025, 3, 5, 16, 30, 0, 0, time.UTC)

	job := RepairJob{
		ID:              "R-001001",
		CustomerID:      "C-001001",
		MaterialDetails: "iPhone 12, cracked screen",
		Services:        []ServiceItem{{Problem: "screen", Cost: 150}},
		EstimatedTime:   "2 days",
		Status:          StatusInProgress,
		ReceivedDate:    received,
		Notes:           "customer will call",
	}

	patch := RepairJobPatch{
		Status:          Set(StatusDelivered),
		DeliveryDate:    Set(&delivered),
		ActualTotalCost: Set(ptr(140.0)),
		Notes:           Set(""),
	}
	patch.Apply(&job)

	assert.Equal(t, StatusDelivered, job.Status)
	assert.Equal(t, &delivered, job.DeliveryDate)
	assert.Equal(t, 140.0, *job.ActualTotalCost)
	assert.Equal(t, "", job.Notes, "explicitly cleared field is emptied")

	// Omitted fields are untouched.
	assert.Equal(t, "iPhone 12, cracked screen", job.MaterialDetails)
	assert.Equal(t, "2 days", job.EstimatedTime)
	assert.Equal(t, received, job.ReceivedDate)
}

func ptr[T any](v T) *T { return &v }
