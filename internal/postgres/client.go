// Package postgres provides the row-CRUD transport over a Postgres database
// using GORM. Errors from the database pass through unmodified; the gateway
// above classifies them. No retries and no timeouts are imposed here beyond
// what the driver does itself.
package postgres

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/mistry-labs/repairdesk/internal/remote"
)

//go:embed schema.sql
var schemaSQL string

// Compile-time interface check: Client must implement RowStore.
var _ remote.RowStore = (*Client)(nil)

// Client is a RowStore backed by a Postgres connection pool.
type Client struct {
	db *gorm.DB
}

// Open connects to the database named by databaseURL.
func Open(databaseURL string) (*Client, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	return &Client{db: db}, nil
}

// Close releases the connection pool.
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Setup applies the embedded bootstrap schema. Idempotent.
func (c *Client) Setup() error {
	if err := c.db.Exec(schemaSQL).Error; err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}

// SelectAll returns all rows of table matching the filter.
func (c *Client) SelectAll(table string, filter remote.Row) ([]remote.Row, error) {
	var rows []map[string]any
	q := c.db.Table(table)
	if len(filter) > 0 {
		q = q.Where(map[string]any(filter))
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SelectOne returns the row where column equals value, or nil when none does.
func (c *Client) SelectOne(table, column string, value any) (remote.Row, error) {
	var rows []map[string]any
	err := c.db.Table(table).Where(column+" = ?", value).Limit(1).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Count returns the number of rows in table.
func (c *Client) Count(table string) (int64, error) {
	var n int64
	if err := c.db.Table(table).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// Insert stores a new row and returns it as read back from the table.
func (c *Client) Insert(table string, row remote.Row) (remote.Row, error) {
	if err := c.db.Table(table).Create(normalizeRow(row)).Error; err != nil {
		return nil, err
	}
	if id, ok := row["id"]; ok {
		return c.SelectOne(table, "id", id)
	}
	return row, nil
}

// Upsert inserts the row or replaces the existing row sharing keyColumn.
func (c *Client) Upsert(table, keyColumn string, row remote.Row) error {
	norm := normalizeRow(row)
	assignments := map[string]any{}
	for k, v := range norm {
		if k != keyColumn {
			assignments[k] = v
		}
	}
	return c.db.Table(table).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: keyColumn}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(norm).Error
}

// Update applies changes to every row where keyColumn equals keyValue.
func (c *Client) Update(table, keyColumn string, keyValue any, changes remote.Row) error {
	return c.db.Table(table).
		Where(keyColumn+" = ?", keyValue).
		Updates(normalizeRow(changes)).Error
}

// Delete removes every row where column equals value. Table and column names
// come from the gateway's fixed mapping tables, never from user input.
func (c *Client) Delete(table, column string, value any) error {
	return c.db.Exec("DELETE FROM "+table+" WHERE "+column+" = ?", value).Error
}

// normalizeRow renders composite values (the services array) as JSON text so
// the driver can bind them to jsonb columns. Scalars pass through.
func normalizeRow(row remote.Row) map[string]any {
	out := make(map[string]any, len(row))
	for k, v := range row {
		switch v.(type) {
		case []any, map[string]any:
			data, err := json.Marshal(v)
			if err != nil {
				out[k] = v
				continue
			}
			out[k] = string(data)
		default:
			out[k] = v
		}
	}
	return out
}
