package remote

import (
	"errors"
	"strings"

	"github.com/mistry-labs/repairdesk/pkg/types"
)

// missingTableCode is the transport error code for a table the store's schema
// cache does not know about.
const missingTableCode = "PGRST205"

// SchemaMissing reports whether err denotes an absent table or schema, the
// condition remedied by running the bootstrap script. Three signals are
// recognized: the missing-table error code, a "schema cache" message, and a
// "does not exist" message. Anything else is an opaque store failure and must
// be propagated to the caller as-is.
func SchemaMissing(err error) bool {
	if err == nil {
		return false
	}
	var se *types.StoreError
	if errors.As(err, &se) && se.Code == missingTableCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "schema cache") || strings.Contains(msg, "does not exist")
}
