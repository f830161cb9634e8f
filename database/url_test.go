package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructDatabaseURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		dbName   string
		expected string
	}{
		{"no database name", "postgres://u:p@localhost:5432", "", "postgres://u:p@localhost:5432"},
		{"plain base", "postgres://u:p@localhost:5432", "economy", "postgres://u:p@localhost:5432/economy?sslmode=disable"},
		{"trailing slash", "postgres://u:p@localhost:5432/", "economy", "postgres://u:p@localhost:5432/economy?sslmode=disable"},
		{"existing query", "postgres://u:p@localhost:5432?connect_timeout=5", "economy", "postgres://u:p@localhost:5432/economy?connect_timeout=5&sslmode=disable"},
		{"explicit sslmode", "postgres://u:p@localhost:5432?sslmode=require", "economy", "postgres://u:p@localhost:5432/economy?sslmode=require"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConstructDatabaseURL(tt.baseURL, tt.dbName))
		})
	}
}
