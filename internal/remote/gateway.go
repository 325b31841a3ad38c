package remote

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mistry-labs/repairdesk/pkg/types"
)

// Compile-time interface check: Gateway must implement Store.
var _ types.Store = (*Gateway)(nil)

// Gateway implements the Store contract against a remote relational store
// reached through a RowStore transport. The transport is injected at
// construction time; a nil transport means the store was never configured,
// in which case reads return an empty state and writes fail with
// ErrNotConfigured.
type Gateway struct {
	rows RowStore
}

// NewGateway returns a Gateway over the given transport. rows may be nil.
func NewGateway(rows RowStore) *Gateway {
	return &Gateway{rows: rows}
}

// readResult carries one leg of the concurrent state fetch.
type readResult struct {
	rows     []Row
	row      Row
	err      error
	panicked bool
}

// FetchState reads all customers, all repair jobs, and the logo setting
// concurrently and assembles the AppState snapshot. A read failing in the
// recognized missing-schema way sets TablesMissing and keeps whatever the
// other reads produced. Any other failure is logged and downgraded to an
// empty state with an indeterminate flag: a dashboard showing nothing beats
// a crashed one. This is the only place in the layer an error is swallowed.
func (g *Gateway) FetchState() (types.AppState, error) {
	if g.rows == nil {
		return emptyState(), nil
	}

	var customers, repairs, logo readResult
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		defer guard(&customers)
		customers.rows, customers.err = g.rows.SelectAll(CustomersTable, nil)
	}()
	go func() {
		defer wg.Done()
		defer guard(&repairs)
		repairs.rows, repairs.err = g.rows.SelectAll(RepairsTable, nil)
	}()
	go func() {
		defer wg.Done()
		defer guard(&logo)
		logo.row, logo.err = g.rows.SelectOne(SettingsTable, "key", types.LogoSettingKey)
	}()
	wg.Wait()

	if customers.panicked || repairs.panicked || logo.panicked {
		log.Printf("repairdesk: state fetch panicked: %v", firstErr(customers.err, repairs.err, logo.err))
		return emptyState(), nil
	}

	// The schema flag is computed from the customer and repair reads only.
	missing := false
	if customers.err != nil {
		if !SchemaMissing(customers.err) {
			log.Printf("repairdesk: fetching customers: %v", customers.err)
			return emptyState(), nil
		}
		missing = true
	}
	if repairs.err != nil {
		if !SchemaMissing(repairs.err) {
			log.Printf("repairdesk: fetching repairs: %v", repairs.err)
			return emptyState(), nil
		}
		missing = true
	}

	state := emptyState()
	for _, row := range customers.rows {
		state.Customers = append(state.Customers, customerFromRow(row))
	}
	for _, row := range repairs.rows {
		state.Repairs = append(state.Repairs, repairFromRow(row))
	}
	if logo.err != nil {
		// The logo is cosmetic; a failed settings read never degrades the fetch.
		log.Printf("repairdesk: fetching logo: %v", logo.err)
	} else if logo.row != nil {
		state.Logo = rowString(logo.row, "value")
	}
	state.TablesMissing = &missing
	return state, nil
}

// AddCustomer allocates the next customer ID from a fresh row count, inserts
// the mapped row, and returns the stored customer.
func (g *Gateway) AddCustomer(c types.Customer) (types.Customer, error) {
	if g.rows == nil {
		return types.Customer{}, types.ErrNotConfigured
	}
	count, err := g.rows.Count(CustomersTable)
	if err != nil {
		return types.Customer{}, writeErr("counting customers", err)
	}
	c.ID = types.NextID(types.CustomerIDPrefix, count)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	inserted, err := g.rows.Insert(CustomersTable, customerToRow(c))
	if err != nil {
		return types.Customer{}, writeErr("inserting customer", err)
	}
	return customerFromRow(inserted), nil
}

// UpdateCustomer issues a keyed update carrying only the fields the patch
// explicitly sets. Callers observe the result by re-fetching.
func (g *Gateway) UpdateCustomer(id string, patch types.CustomerPatch) error {
	if g.rows == nil {
		return types.ErrNotConfigured
	}
	changes := customerPatchRow(patch)
	if len(changes) == 0 {
		return nil
	}
	if err := g.rows.Update(CustomersTable, "id", id, changes); err != nil {
		return writeErr("updating customer "+id, err)
	}
	return nil
}

// DeleteCustomer removes the customer's repair jobs first, then the customer.
// A cascade failure stops the operation before the customer row is touched.
// A customer-delete failure after a successful cascade leaves the jobs
// deleted; there is no rollback.
func (g *Gateway) DeleteCustomer(id string) error {
	if g.rows == nil {
		return types.ErrNotConfigured
	}
	if err := g.rows.Delete(RepairsTable, "customer_id", id); err != nil {
		return writeErr("deleting repairs for customer "+id, err)
	}
	if err := g.rows.Delete(CustomersTable, "id", id); err != nil {
		return writeErr("deleting customer "+id, err)
	}
	return nil
}

// AddRepairJob allocates the next repair ID from a fresh row count, inserts
// the mapped row, and returns the stored job. A job with no status starts
// Pending; a job with no received date is stamped now.
func (g *Gateway) AddRepairJob(j types.RepairJob) (types.RepairJob, error) {
	if g.rows == nil {
		return types.RepairJob{}, types.ErrNotConfigured
	}
	count, err := g.rows.Count(RepairsTable)
	if err != nil {
		return types.RepairJob{}, writeErr("counting repairs", err)
	}
	j.ID = types.NextID(types.RepairIDPrefix, count)
	if j.Status == "" {
		j.Status = types.StatusPending
	}
	if j.ReceivedDate.IsZero() {
		j.ReceivedDate = time.Now().UTC()
	}
	inserted, err := g.rows.Insert(RepairsTable, repairToRow(j))
	if err != nil {
		return types.RepairJob{}, writeErr("inserting repair", err)
	}
	return repairFromRow(inserted), nil
}

// UpdateRepairJob issues a keyed update carrying only the fields the patch
// explicitly sets.
func (g *Gateway) UpdateRepairJob(id string, patch types.RepairJobPatch) error {
	if g.rows == nil {
		return types.ErrNotConfigured
	}
	changes := repairPatchRow(patch)
	if len(changes) == 0 {
		return nil
	}
	if err := g.rows.Update(RepairsTable, "id", id, changes); err != nil {
		return writeErr("updating repair "+id, err)
	}
	return nil
}

// DeleteRepairJob removes a single repair job by ID.
func (g *Gateway) DeleteRepairJob(id string) error {
	if g.rows == nil {
		return types.ErrNotConfigured
	}
	if err := g.rows.Delete(RepairsTable, "id", id); err != nil {
		return writeErr("deleting repair "+id, err)
	}
	return nil
}

// SaveLogo upserts the logo data URI under the fixed settings key.
func (g *Gateway) SaveLogo(dataURI string) error {
	if g.rows == nil {
		return types.ErrNotConfigured
	}
	row := Row{"key": types.LogoSettingKey, "value": dataURI}
	if err := g.rows.Upsert(SettingsTable, "key", row); err != nil {
		return writeErr("saving logo", err)
	}
	return nil
}

// writeErr wraps a write failure, translating the recognized missing-schema
// condition into ErrSchemaMissing so callers can surface the setup hint.
// Everything else keeps its original message.
func writeErr(op string, err error) error {
	if SchemaMissing(err) {
		return fmt.Errorf("%s: %w", op, types.ErrSchemaMissing)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// guard records a panic in a fetch goroutine so the aggregation can downgrade
// the whole fetch instead of crashing the caller.
func guard(r *readResult) {
	if v := recover(); v != nil {
		r.panicked = true
		r.err = fmt.Errorf("panic: %v", v)
	}
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func emptyState() types.AppState {
	return types.AppState{
		Customers: []types.Customer{},
		Repairs:   []types.RepairJob{},
	}
}
