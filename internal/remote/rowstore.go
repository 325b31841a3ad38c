// Package remote implements the Store contract over a remote relational
// store. The gateway speaks to the store through the RowStore row-CRUD
// interface, translates rows with the field mapper, and classifies
// absent-schema failures so callers can surface a setup hint.
package remote

// Row is a flat store row keyed by column name.
type Row = map[string]any

// Store table names.
const (
	CustomersTable = "customers"
	RepairsTable   = "repairs"
	SettingsTable  = "settings"
)

// RowStore is the generic row-CRUD transport the gateway is written against.
// Implementations own connection handling and timeout policy; the gateway
// imposes neither. A nil filter to SelectAll selects every row.
type RowStore interface {
	// SelectAll returns all rows of table matching the filter.
	SelectAll(table string, filter Row) ([]Row, error)

	// SelectOne returns the single row of table where column equals value,
	// or a nil row (no error) when none matches.
	SelectOne(table, column string, value any) (Row, error)

	// Count returns the number of rows in table.
	Count(table string) (int64, error)

	// Insert stores a new row and returns the row as stored.
	Insert(table string, row Row) (Row, error)

	// Upsert inserts the row or replaces the existing row sharing its
	// primary key column.
	Upsert(table, keyColumn string, row Row) error

	// Update applies changes to every row where keyColumn equals keyValue.
	Update(table, keyColumn string, keyValue any, changes Row) error

	// Delete removes every row where column equals value.
	Delete(table, column string, value any) error
}
