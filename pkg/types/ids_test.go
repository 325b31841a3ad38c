package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextID(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		count  int64
		want   string
	}{
		{
			name:   "first customer on empty table",
			prefix: CustomerIDPrefix,
			count:  0,
			want:   "C-001001",
		},
		{
			name:   "customer after seven rows",
			prefix: CustomerIDPrefix,
			count:  7,
			want:   "C-001008",
		},
		{
			name:   "repair prefix",
			prefix: RepairIDPrefix,
			count:  0,
			want:   "R-001001",
		},
		{
			name:   "field widens past six digits",
			prefix: CustomerIDPrefix,
			count:  999_000,
			want:   "C-1000001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextID(tt.prefix, tt.count))
		})
	}
}

func TestNextIDFromExisting(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		ids    []string
		want   string
	}{
		{
			name:   "no existing ids",
			prefix: CustomerIDPrefix,
			ids:    nil,
			want:   "C-001000",
		},
		{
			name:   "follows the max suffix, not the count",
			prefix: RepairIDPrefix,
			ids:    []string{"R-001000", "R-001003"},
			want:   "R-001004",
		},
		{
			name:   "gap left by a deletion is never reused",
			prefix: CustomerIDPrefix,
			ids:    []string{"C-001000", "C-001005"},
			want:   "C-001006",
		},
		{
			name:   "foreign prefixes are ignored",
			prefix: RepairIDPrefix,
			ids:    []string{"C-009999", "R-001001"},
			want:   "R-001002",
		},
		{
			name:   "non-numeric suffixes are ignored",
			prefix: RepairIDPrefix,
			ids:    []string{"R-abc", "R-001002"},
			want:   "R-001003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextIDFromExisting(tt.prefix, tt.ids))
		})
	}
}

func TestIDNumber(t *testing.T) {
	n, ok := IDNumber(CustomerIDPrefix, "C-001042")
	assert.True(t, ok)
	assert.Equal(t, int64(1042), n)

	_, ok = IDNumber(CustomerIDPrefix, "R-001042")
	assert.False(t, ok)

	_, ok = IDNumber(CustomerIDPrefix, "C-")
	assert.False(t, ok)
}
