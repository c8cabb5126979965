package postgres_test

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/storage/postgres"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, pg *postgres.PgSQL, username string) *domain.User {
	t.Helper()

	user, err := pg.CreateUser(context.Background(), domain.User{
		Username:     username,
		PasswordHash: "hash",
		Role:         domain.RoleUser,
	})
	require.NoError(t, err)

	return user
}

func createBusiness(t *testing.T, pg *postgres.PgSQL, bid, companyEmail string) *domain.Business {
	t.Helper()

	business, err := pg.CreateBusiness(context.Background(), domain.Business{
		BID:          bid,
		Name:         "Jane",
		Email:        "jane@example.com",
		CompanyName:  "Acme",
		Address:      "1 Main St",
		CompanyEmail: companyEmail,
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	return business
}

func createJob(t *testing.T, pg *postgres.PgSQL, bid, jobID string, status domain.JobStatus) *domain.Job {
	t.Helper()

	job, err := pg.CreateJob(context.Background(), domain.Job{
		JobID:              jobID,
		BID:                bid,
		CompanyName:        "Acme",
		CompanyEmail:       "hr@acme.test",
		Title:              "Backend Engineer " + jobID,
		Location:           "Remote",
		JobType:            "Full-time",
		Description:        "Build things",
		HiringProcess:      []string{"Phone Screen", "Technical Interview"},
		ScreeningQuestions: []string{"Why us?"},
		Status:             status,
	})
	require.NoError(t, err)

	return job
}
