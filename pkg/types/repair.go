package types

import "time"

// Repair job statuses. The labels are stored verbatim, spaces included.
// Delivered and Cancelled are terminal. The model does not enforce transition
// legality; callers may reassign status freely.
const (
	StatusPending       = "Pending"
	StatusDiagnosing    = "Diagnosing"
	StatusInProgress    = "In Progress"
	StatusAwaitingParts = "Awaiting Parts"
	StatusCompleted     = "Completed"
	StatusDelivered     = "Delivered"
	StatusCancelled     = "Cancelled"
)

// validStatuses is the set of recognized repair statuses.
var validStatuses = map[string]bool{
	StatusPending:       true,
	StatusDiagnosing:    true,
	StatusInProgress:    true,
	StatusAwaitingParts: true,
	StatusCompleted:     true,
	StatusDelivered:     true,
	StatusCancelled:     true,
}

// ValidStatus reports whether s is a recognized repair status label.
func ValidStatus(s string) bool {
	return validStatuses[s]
}

// TerminalStatus reports whether s is a terminal status.
func TerminalStatus(s string) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// DefaultBillNote is printed on a bill when the job carries no note of its own.
const DefaultBillNote = "Thank you for your business. Please retain this bill for warranty claims."

// ServiceItem is one line of work on a repair job: a problem description and
// its cost. Items are not independently identified; their order within a job
// is preserved for display.
type ServiceItem struct {
	Problem string  `json:"problem"`
	Cost    float64 `json:"cost"`
}

// RepairJob is a repair ticket. CustomerID references an existing Customer at
// creation time; deleting a customer cascades to its jobs. DeliveryDate is set
// when the job reaches Delivered. ActualTotalCost, when present, overrides the
// sum of service costs for billing.
type RepairJob struct {
	ID              string        `json:"id"`
	CustomerID      string        `json:"customerId"`
	MaterialDetails string        `json:"materialDetails"`
	Services        []ServiceItem `json:"services"`
	EstimatedTime   string        `json:"estimatedTime"`
	Status          string        `json:"status"`
	ReceivedDate    time.Time     `json:"receivedDate"`
	DeliveryDate    *time.Time    `json:"deliveryDate,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	BillNote        string        `json:"billNote,omitempty"`
	ActualTotalCost *float64      `json:"actualTotalCost,omitempty"`
}

// BillableTotal returns the amount of record for billing: ActualTotalCost when
// present, otherwise the sum of service costs.
func (j RepairJob) BillableTotal() float64 {
	if j.ActualTotalCost != nil {
		return *j.ActualTotalCost
	}
	var sum float64
	for _, s := range j.Services {
		sum += s.Cost
	}
	return sum
}

// EffectiveBillNote returns the job's bill note, or DefaultBillNote when the
// job has none.
func (j RepairJob) EffectiveBillNote() string {
	if j.BillNote == "" {
		return DefaultBillNote
	}
	return j.BillNote
}

// RepairJobPatch is a sparse update to a RepairJob. Fields follow the same
// present/absent semantics as CustomerPatch. DeliveryDate and ActualTotalCost
// hold pointers so a set-to-nil patch clears the stored value.
type RepairJobPatch struct {
	MaterialDetails Field[string]
	Services        Field[[]ServiceItem]
	EstimatedTime   Field[string]
	Status          Field[string]
	DeliveryDate    Field[*time.Time]
	Notes           Field[string]
	BillNote        Field[string]
	ActualTotalCost Field[*float64]
}

// Apply copies every set field of the patch onto the job.
func (p RepairJobPatch) Apply(j *RepairJob) {
	if v, ok := p.MaterialDetails.Get(); ok {
		j.MaterialDetails = v
	}
	if v, ok := p.Services.Get(); ok {
		j.Services = v
	}
	if v, ok := p.EstimatedTime.Get(); ok {
		j.EstimatedTime = v
	}
	if v, ok := p.Status.Get(); ok {
		j.Status = v
	}
	if v, ok := p.DeliveryDate.Get(); ok {
		j.DeliveryDate = v
	}
	if v, ok := p.Notes.Get(); ok {
		j.Notes = v
	}
	if v, ok := p.BillNote.Get(); ok {
		j.BillNote = v
	}
	if v, ok := p.ActualTotalCost.Get(); ok {
		j.ActualTotalCost = v
	}
}
