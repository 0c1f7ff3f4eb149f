package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "sql/*.sql")
	assert.NoError(t, err)
	assert.Len(t, files, 2)

	for _, f := range files {
		b, err := fs.ReadFile(embedMigrations, f)
		assert.NoError(t, err)
		assert.Contains(t, string(b), "-- +goose Up", f)
		assert.Contains(t, string(b), "-- +goose Down", f)
	}

	employees, _ := fs.ReadFile(embedMigrations, "sql/00001_create_employees.sql")
	for _, constraint := range []string{"uq_employees_email", "uq_employees_document"} {
		assert.True(t, strings.Contains(string(employees), constraint), constraint)
	}
}
