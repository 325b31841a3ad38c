package types

import "errors"

// LogoSettingKey is the fixed settings-row key the shop logo is stored under.
const LogoSettingKey = "logo"

// AppState is the aggregate read model: everything the application shows on
// one screen. It is reconstructed on every fetch, never patched in place.
// TablesMissing is nil when the fetch aborted before the backing schema could
// be classified; otherwise it reports whether a required table is absent.
type AppState struct {
	Customers     []Customer  `json:"customers"`
	Repairs       []RepairJob `json:"repairs"`
	Logo          string      `json:"logo,omitempty"`
	TablesMissing *bool       `json:"tablesMissing,omitempty"`
}

// Store is the single contract between the application and persistence.
// Two implementations exist: the remote gateway over a relational store and
// the local mirror over a persisted JSON blob. The backend is chosen once at
// startup, never per call.
//
// FetchState never fails against a reachable remote store; read problems
// degrade to an empty state or the TablesMissing flag. Write operations fail
// with a propagated store error, ErrSchemaMissing when the schema is absent,
// or ErrNotConfigured when no store endpoint is available. No operation
// retries; retry is a caller-initiated re-invocation.
type Store interface {
	FetchState() (AppState, error)

	AddCustomer(c Customer) (Customer, error)
	UpdateCustomer(id string, patch CustomerPatch) error
	// DeleteCustomer cascades: all repair jobs referencing the customer are
	// deleted first, then the customer. The two steps are not atomic; a
	// failure after the cascade leaves the jobs deleted.
	DeleteCustomer(id string) error

	AddRepairJob(j RepairJob) (RepairJob, error)
	UpdateRepairJob(id string, patch RepairJobPatch) error
	DeleteRepairJob(id string) error

	SaveLogo(dataURI string) error
}

// Store operation errors.
var (
	ErrNotConfigured = errors.New("store is not configured")
	ErrSchemaMissing = errors.New("database schema is missing; run `repairdesk setup` to create it")
	ErrNotFound      = errors.New("record not found")
)

// StoreError is a failure reported by a store transport that carries a
// machine-readable code alongside its message, the shape the schema
// classifier inspects. Transports without codes return plain errors.
type StoreError struct {
	Code    string
	Message string
}

func (e *StoreError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}
