package postgres_test

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/storage"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Applications(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	createBusiness(t, pgSQL, "B1", "one@acme.test")
	createBusiness(t, pgSQL, "B2", "two@acme.test")
	createJob(t, pgSQL, "B1", "101", domain.JobStatusActive)
	createJob(t, pgSQL, "B2", "201", domain.JobStatusActive)
	alice := createUser(t, pgSQL, "alice@example.com")
	bob := createUser(t, pgSQL, "bob@example.com")

	resume, err := pgSQL.StoreResume(ctx, domain.Resume{
		UserID:      alice.ID,
		FileName:    "cv.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4\x00\xff binary"),
	})
	require.NoError(t, err)
	require.EqualValues(t, 17, resume.Size)

	base := time.Now().Add(-time.Hour)
	first, err := pgSQL.CreateApplication(ctx, domain.Application{
		UserID:         alice.ID,
		JobID:          "101",
		FullName:       "Alice",
		Email:          "alice@example.com",
		ResumeID:       &resume.ID,
		ResumeFileName: resume.FileName,
		AppliedDate:    base,
	})
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusPending, first.Status)
	require.NotNil(t, first.ResumeID)
	require.True(t, first.ReviewedDate.IsZero())

	_, err = pgSQL.CreateApplication(ctx, domain.Application{
		UserID: bob.ID, JobID: "101", FullName: "Bob", Email: "bob@example.com", AppliedDate: base.Add(time.Minute),
	})
	require.NoError(t, err)
	_, err = pgSQL.CreateApplication(ctx, domain.Application{
		UserID: alice.ID, JobID: "201", FullName: "Alice", Email: "alice@example.com", AppliedDate: base.Add(2 * time.Minute),
	})
	require.NoError(t, err)

	t.Run("duplicate application", func(t *testing.T) {
		_, err := pgSQL.CreateApplication(ctx, domain.Application{
			UserID: alice.ID, JobID: "101", FullName: "Alice", Email: "alice@example.com",
		})
		require.True(t, storage.IsDuplicate(err, storage.FieldApplication))
	})

	t.Run("resume round trip", func(t *testing.T) {
		stored, err := pgSQL.ResumeByID(ctx, *first.ResumeID)
		require.NoError(t, err)
		require.Equal(t, []byte("%PDF-1.4\x00\xff binary"), stored.Data)

		missing, err := pgSQL.ResumeByID(ctx, domain.ResumeID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("lists are newest first", func(t *testing.T) {
		byUser, err := pgSQL.ApplicationsByUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, byUser, 2)
		require.Equal(t, "201", byUser[0].JobID)

		byJob, err := pgSQL.ApplicationsByJob(ctx, "101")
		require.NoError(t, err)
		require.Len(t, byJob, 2)
		require.Equal(t, "Bob", byJob[0].FullName)

		byBID, err := pgSQL.ApplicationsByBID(ctx, "B1")
		require.NoError(t, err)
		require.Len(t, byBID, 2)
		for _, a := range byBID {
			require.Equal(t, "101", a.JobID)
		}
	})

	t.Run("status update stamps reviewed date once", func(t *testing.T) {
		updated, err := pgSQL.UpdateApplicationStatus(ctx, first.ID, storage.ApplicationStatusUpdate{
			Status:       domain.ApplicationStatusUnderReview,
			MarkReviewed: true,
		})
		require.NoError(t, err)
		require.Equal(t, domain.ApplicationStatusUnderReview, updated.Status)
		require.False(t, updated.ReviewedDate.IsZero())
		reviewed := updated.ReviewedDate

		updated, err = pgSQL.UpdateApplicationStatus(ctx, first.ID, storage.ApplicationStatusUpdate{
			Status:       domain.ApplicationStatusUnderReview,
			MarkReviewed: true,
		})
		require.NoError(t, err)
		require.True(t, reviewed.Equal(updated.ReviewedDate))

		updated, err = pgSQL.UpdateApplicationStatus(ctx, first.ID, storage.ApplicationStatusUpdate{
			Status: domain.ApplicationStatusHired,
		})
		require.NoError(t, err)
		require.Equal(t, domain.ApplicationStatusHired, updated.Status)

		missing, err := pgSQL.UpdateApplicationStatus(ctx, domain.ApplicationID(uuid.New()), storage.ApplicationStatusUpdate{
			Status: domain.ApplicationStatusHired,
		})
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("status counts per business", func(t *testing.T) {
		counts, err := pgSQL.ApplicationStatusCounts(ctx, "B1")
		require.NoError(t, err)
		require.Equal(t, map[domain.ApplicationStatus]int{
			domain.ApplicationStatusHired:   1,
			domain.ApplicationStatusPending: 1,
		}, counts)
	})
}
