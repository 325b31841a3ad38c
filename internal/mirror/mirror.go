// Package mirror implements the Store contract over a single JSON blob kept
// on local disk, used when no remote store is configured. Every operation is
// a read-modify-write of the whole blob: no partial updates, no concurrency
// control, last write wins within the process. The missing-schema condition
// does not apply to this backend and is never reported.
package mirror

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mistry-labs/repairdesk/pkg/types"
)

// blobFileName is the blob's name inside the data directory.
const blobFileName = "repairdesk.json"

// Compile-time interface check: Mirror must implement Store.
var _ types.Store = (*Mirror)(nil)

// Mirror is the local JSON-blob backend. Construct with New.
type Mirror struct {
	path string
}

// New returns a Mirror persisting to dataDir. The directory and blob are
// created on first write.
func New(dataDir string) *Mirror {
	return &Mirror{path: filepath.Join(dataDir, blobFileName)}
}

// snapshot is the serialized blob shape.
type snapshot struct {
	Customers []types.Customer  `json:"customers"`
	Repairs   []types.RepairJob `json:"repairs"`
	Logo      string            `json:"logo,omitempty"`
}

// FetchState loads the blob. A blob that was never written reads as an empty
// state; a corrupt blob is a fatal read error, not masked.
func (m *Mirror) FetchState() (types.AppState, error) {
	s, err := m.load()
	if err != nil {
		return types.AppState{}, err
	}
	missing := false
	state := types.AppState{
		Customers:     s.Customers,
		Repairs:       s.Repairs,
		Logo:          s.Logo,
		TablesMissing: &missing,
	}
	if state.Customers == nil {
		state.Customers = []types.Customer{}
	}
	if state.Repairs == nil {
		state.Repairs = []types.RepairJob{}
	}
	return state, nil
}

// AddCustomer allocates the next customer ID from the highest existing
// suffix, appends the customer, and persists the blob. Allocation and
// persistence happen in one step, so IDs never collide within a process.
func (m *Mirror) AddCustomer(c types.Customer) (types.Customer, error) {
	s, err := m.load()
	if err != nil {
		return types.Customer{}, err
	}
	ids := make([]string, len(s.Customers))
	for i, existing := range s.Customers {
		ids[i] = existing.ID
	}
	c.ID = types.NextIDFromExisting(types.CustomerIDPrefix, ids)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	s.Customers = append(s.Customers, c)
	if err := m.save(s); err != nil {
		return types.Customer{}, err
	}
	return c, nil
}

// UpdateCustomer applies the set fields of the patch to the stored customer.
// Returns ErrNotFound when no customer has the ID.
func (m *Mirror) UpdateCustomer(id string, patch types.CustomerPatch) error {
	s, err := m.load()
	if err != nil {
		return err
	}
	for i := range s.Customers {
		if s.Customers[i].ID == id {
			patch.Apply(&s.Customers[i])
			return m.save(s)
		}
	}
	return fmt.Errorf("customer %s: %w", id, types.ErrNotFound)
}

// DeleteCustomer removes the customer's repair jobs, then the customer, in
// one blob write. Deleting an absent customer is a no-op.
func (m *Mirror) DeleteCustomer(id string) error {
	s, err := m.load()
	if err != nil {
		return err
	}
	kept := s.Repairs[:0]
	for _, j := range s.Repairs {
		if j.CustomerID != id {
			kept = append(kept, j)
		}
	}
	s.Repairs = kept
	for i, c := range s.Customers {
		if c.ID == id {
			s.Customers = append(s.Customers[:i], s.Customers[i+1:]...)
			break
		}
	}
	return m.save(s)
}

// AddRepairJob allocates the next repair ID, stamps defaults, and persists.
// The referenced customer must exist; this stands in for the foreign-key
// check the relational backend gets from its schema.
func (m *Mirror) AddRepairJob(j types.RepairJob) (types.RepairJob, error) {
	s, err := m.load()
	if err != nil {
		return types.RepairJob{}, err
	}
	found := false
	for _, c := range s.Customers {
		if c.ID == j.CustomerID {
			found = true
			break
		}
	}
	if !found {
		return types.RepairJob{}, fmt.Errorf("customer %s: %w", j.CustomerID, types.ErrNotFound)
	}
	ids := make([]string, len(s.Repairs))
	for i, existing := range s.Repairs {
		ids[i] = existing.ID
	}
	j.ID = types.NextIDFromExisting(types.RepairIDPrefix, ids)
	if j.Status == "" {
		j.Status = types.StatusPending
	}
	if j.ReceivedDate.IsZero() {
		j.ReceivedDate = time.Now().UTC()
	}
	s.Repairs = append(s.Repairs, j)
	if err := m.save(s); err != nil {
		return types.RepairJob{}, err
	}
	return j, nil
}

// UpdateRepairJob applies the set fields of the patch to the stored job.
// Returns ErrNotFound when no job has the ID.
func (m *Mirror) UpdateRepairJob(id string, patch types.RepairJobPatch) error {
	s, err := m.load()
	if err != nil {
		return err
	}
	for i := range s.Repairs {
		if s.Repairs[i].ID == id {
			patch.Apply(&s.Repairs[i])
			return m.save(s)
		}
	}
	return fmt.Errorf("repair %s: %w", id, types.ErrNotFound)
}

// DeleteRepairJob removes a single job. Deleting an absent job is a no-op.
func (m *Mirror) DeleteRepairJob(id string) error {
	s, err := m.load()
	if err != nil {
		return err
	}
	for i, j := range s.Repairs {
		if j.ID == id {
			s.Repairs = append(s.Repairs[:i], s.Repairs[i+1:]...)
			break
		}
	}
	return m.save(s)
}

// SaveLogo stores the logo data URI in the blob.
func (m *Mirror) SaveLogo(dataURI string) error {
	s, err := m.load()
	if err != nil {
		return err
	}
	s.Logo = dataURI
	return m.save(s)
}

// load reads and parses the blob. A blob that does not exist yet reads as the
// zero snapshot.
func (m *Mirror) load() (snapshot, error) {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return snapshot{}, nil
	}
	if err != nil {
		return snapshot{}, fmt.Errorf("reading %s: %w", m.path, err)
	}
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return snapshot{}, fmt.Errorf("parsing %s: %w", m.path, err)
	}
	return s, nil
}

// save writes the whole blob atomically using the temp-file, fsync, rename
// pattern, so a crash mid-write never leaves a torn blob behind.
func (m *Mirror) save(s snapshot) error {
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".repairdesk-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing state: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, m.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
