// Tests for the missing-schema classifier.
package remote

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mistry-labs/repairdesk/pkg/types"
)

func TestSchemaMissing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "missing-table error code",
			err:  &types.StoreError{Code: "PGRST205", Message: "Could not find the table 'public.customers'"},
			want: true,
		},
		{
			name: "wrapped missing-table error code",
			err:  fmt.Errorf("fetching customers: %w", &types.StoreError{Code: "PGRST205", Message: "no table"}),
			want: true,
		},
		{
			name: "schema cache message",
			err:  errors.New("could not query the schema cache"),
			want: true,
		},
		{
			name: "does not exist message",
			err:  errors.New(`relation "customers" does not exist`),
			want: true,
		},
		{
			name: "network timeout is not schema-missing",
			err:  errors.New("dial tcp 10.0.0.1:5432: i/o timeout"),
			want: false,
		},
		{
			name: "other coded error is not schema-missing",
			err:  &types.StoreError{Code: "PGRST301", Message: "JWT expired"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SchemaMissing(tt.err); got != tt.want {
				t.Errorf("SchemaMissing(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
