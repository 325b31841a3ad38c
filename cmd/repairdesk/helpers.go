// Shared helpers for repairdesk CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mistry-labs/repairdesk/internal/mirror"
	"github.com/mistry-labs/repairdesk/internal/postgres"
	"github.com/mistry-labs/repairdesk/internal/remote"
	"github.com/mistry-labs/repairdesk/pkg/types"
)

// openStore builds the configured Store. The caller must call the returned
// close function when done. Exactly one backend is constructed per process.
func openStore() (types.Store, func(), error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := loadedConfig.storeConfig(dataDir)
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	switch cfg.Backend {
	case types.BackendPostgres:
		client, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return remote.NewGateway(client), func() { client.Close() }, nil
	default:
		return mirror.New(cfg.DataDir), func() {}, nil
	}
}

// fetchState opens the store and loads the full snapshot.
func fetchState() (types.AppState, error) {
	store, closeStore, err := openStore()
	if err != nil {
		return types.AppState{}, err
	}
	defer closeStore()
	return store.FetchState()
}

// warnIfTablesMissing prints the setup hint when a fetch reported the
// backing schema absent.
func warnIfTablesMissing(state types.AppState) {
	if state.TablesMissing != nil && *state.TablesMissing {
		fmt.Fprintln(os.Stderr, "warning: database tables are missing; run `repairdesk setup`")
	}
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// findCustomer returns the customer with the given ID from the snapshot.
func findCustomer(state types.AppState, id string) (types.Customer, error) {
	for _, c := range state.Customers {
		if c.ID == id {
			return c, nil
		}
	}
	return types.Customer{}, fmt.Errorf("customer %s: %w", id, types.ErrNotFound)
}

// findRepair returns the repair job with the given ID from the snapshot.
func findRepair(state types.AppState, id string) (types.RepairJob, error) {
	for _, j := range state.Repairs {
		if j.ID == id {
			return j, nil
		}
	}
	return types.RepairJob{}, fmt.Errorf("repair %s: %w", id, types.ErrNotFound)
}

// parseServices parses repeated --service flags of the form "problem:cost".
// The cost follows the last colon so problem text may contain colons.
func parseServices(raw []string) ([]types.ServiceItem, error) {
	services := make([]types.ServiceItem, 0, len(raw))
	for _, item := range raw {
		idx := strings.LastIndex(item, ":")
		if idx <= 0 {
			return nil, fmt.Errorf("invalid service %q (want \"problem:cost\")", item)
		}
		problem := strings.TrimSpace(item[:idx])
		cost, err := strconv.ParseFloat(strings.TrimSpace(item[idx+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid service cost in %q: %w", item, err)
		}
		if cost < 0 {
			return nil, fmt.Errorf("service cost must not be negative in %q", item)
		}
		services = append(services, types.ServiceItem{Problem: problem, Cost: cost})
	}
	return services, nil
}
