package postgres_test

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/storage"
	"arbeit/pkg/storage/postgres"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	_, err = tx.(*postgres.PgSQL).Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	require.ErrorIs(t, tx.(*postgres.PgSQL).Ping(ctx), storage.ErrAlreadyInTx)
}

func TestPgSQL_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.CreateUser(ctx, domain.User{Username: "kept@example.com", PasswordHash: "hash", Role: domain.RoleUser})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	tx, err = pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.CreateUser(ctx, domain.User{Username: "dropped@example.com", PasswordHash: "hash", Role: domain.RoleUser})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	kept, err := pg.UserByUsername(ctx, "kept@example.com")
	require.NoError(t, err)
	require.NotNil(t, kept)

	dropped, err := pg.UserByUsername(ctx, "dropped@example.com")
	require.NoError(t, err)
	require.Nil(t, dropped)
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	business := createBusiness(t, pg, "B10000001", "hr@acme.test")

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.CreateJob(ctx, domain.Job{
			JobID: "101", BID: business.BID, CompanyName: "Acme", Title: "Engineer",
			Location: "Remote", JobType: "Full-time", Description: "Build", Status: domain.JobStatusActive,
		})

		return err
	})
	require.NoError(t, err)

	job, err := pg.JobByJobID(ctx, "101")
	require.NoError(t, err)
	require.NotNil(t, job)

	abort := errors.New("abort")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		ok, err := s.IncrementApplicants(ctx, "101")
		require.NoError(t, err)
		require.True(t, ok)

		return abort
	})
	require.ErrorIs(t, err, abort)

	job, err = pg.JobByJobID(ctx, "101")
	require.NoError(t, err)
	require.Zero(t, job.Applicants, "writes of a failed callback are rolled back")
}

func TestPgSQL_WithTx_Panic(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.Panics(t, func() {
		_ = pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, err := s.CreateUser(ctx, domain.User{Username: "panic@example.com", PasswordHash: "hash", Role: domain.RoleUser})
			require.NoError(t, err)

			panic("boom")
		})
	})

	user, err := pg.UserByUsername(ctx, "panic@example.com")
	require.NoError(t, err)
	require.Nil(t, user)
}
