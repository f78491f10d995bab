package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name       string
		err        error
		want       ErrorClassification
		wantUnique bool
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("x"), want: NonRetryable},
		{name: "unique", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable, wantUnique: true},
		{name: "wrapped unique", err: fmt.Errorf("wrap: %w", pgError(pgerrcode.UniqueViolation)), want: NonRetryable, wantUnique: true},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "connection", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "syntax", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
			assert.Equal(t, tt.wantUnique, c.IsUniqueViolation(tt.err))
		})
	}
}

func TestClassifyPgError_Serialization(t *testing.T) {
	assert.Equal(t, Retryable, ClassifyPgError(&pgconn.PgError{Code: pgerrcode.SerializationFailure}))
	assert.Equal(t, NonRetryable, ClassifyPgError(&pgconn.PgError{Code: pgerrcode.CheckViolation}))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	fk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	assert.True(t, c.IsUniqueViolation(unique))
	assert.True(t, c.IsUniqueViolation(fmt.Errorf("wrap: %w", unique)))
	assert.False(t, c.IsUniqueViolation(fk))
	assert.False(t, c.IsUniqueViolation(errors.New("x")))

	assert.Equal(t, Retryable, c.Classify(busy))
	assert.Equal(t, NonRetryable, c.Classify(unique))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

func TestDB_Retryable(t *testing.T) {
	db, _ := newMockDB(t)

	assert.True(t, db.retryable(fmt.Errorf("exec: %w", pgError(pgerrcode.DeadlockDetected))))
	assert.False(t, db.retryable(pgError(pgerrcode.UniqueViolation)))
	assert.False(t, db.retryable(errors.New("plain")))
}
