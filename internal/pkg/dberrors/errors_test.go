package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKeyError(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	assert.True(t, IsDuplicateKeyError(err))
	assert.True(t, IsDuplicateConstraintError(err, "users_email_key"))
	assert.False(t, IsDuplicateConstraintError(err, "courses_pkey"))
	assert.False(t, IsForeignKeyError(err))
}

func TestIsForeignKeyError(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", ConstraintName: "courses_user_id_fkey"}

	assert.True(t, IsForeignKeyError(err))
	assert.False(t, IsDuplicateKeyError(err))
	assert.False(t, IsForeignKeyError(errors.New("boom")))
}
