package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSemRunsOperation(t *testing.T) {
	db := Wrap(nil)

	ran := false
	err := db.withSem(context.Background(), func() error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
}

func TestWithSemHonorsCancelledContext(t *testing.T) {
	db := Wrap(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := db.withSem(ctx, func() error {
		ran = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, ran, "operation must not run once the context is gone")
}

func TestWithTxHonorsCancelledContext(t *testing.T) {
	db := Wrap(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := db.WithTx(ctx, func(tx *sql.Tx) error {
		ran = true
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "semaphore")
	assert.False(t, ran)
}
