package v1handler_test

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/serrors"
	"arbeit/pkg/storage"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testJob(jobID string) domain.Job {
	return domain.Job{
		ID:          uuid.New(),
		JobID:       jobID,
		CompanyName: "Acme",
		Title:       "Backend Engineer",
		Location:    "Remote",
		Status:      domain.JobStatusActive,
	}
}

func TestListJobs(t *testing.T) {
	api := newTestAPI(t)
	api.jobs.EXPECT().ListActive(gomock.Any()).Return([]domain.Job{testJob("101"), testJob("102")}, nil)

	rec := api.do(t, http.MethodGet, "/jobs", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	jobs := decodeBody[[]domain.Job](t, rec)
	require.Len(t, jobs, 2)
	require.Equal(t, "101", jobs[0].JobID)
}

func TestListJobs_EmptyIsArray(t *testing.T) {
	api := newTestAPI(t)
	api.jobs.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

	rec := api.do(t, http.MethodGet, "/jobs", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetJob(t *testing.T) {
	api := newTestAPI(t)
	job := testJob("314")
	api.jobs.EXPECT().Get(gomock.Any(), "314").Return(&job, nil)

	rec := api.do(t, http.MethodGet, "/jobs/314", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Backend Engineer", decodeBody[domain.Job](t, rec).Title)
}

func TestGetJob_NotFound(t *testing.T) {
	api := newTestAPI(t)
	api.jobs.EXPECT().Get(gomock.Any(), "999").Return(nil, serrors.With(serrors.ErrNotFound, "job not found"))

	rec := api.do(t, http.MethodGet, "/jobs/999", "", "")

	requireError(t, rec, http.StatusNotFound, "NOT_FOUND", "job not found")
}

func TestBusinessJobs_StatusFilter(t *testing.T) {
	api := newTestAPI(t)
	principal := businessPrincipal()
	api.signedIn(businessToken, principal)
	api.jobs.EXPECT().ListForBusiness(gomock.Any(), principal, domain.JobStatusClosed).Return(nil, nil)

	rec := api.do(t, http.MethodGet, "/business/jobs?status=Closed", businessToken, "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestBusinessRoutes_RejectCandidates(t *testing.T) {
	api := newTestAPI(t)
	api.signedIn(userToken, userPrincipal())

	rec := api.do(t, http.MethodPost, "/business/jobs", userToken, `{"title":"Backend Engineer"}`)

	requireError(t, rec, http.StatusForbidden, "FORBIDDEN", "")
}

func TestCreateJob(t *testing.T) {
	api := newTestAPI(t)
	principal := businessPrincipal()
	api.signedIn(businessToken, principal)
	api.jobs.EXPECT().Create(gomock.Any(), principal, gomock.Any()).
		DoAndReturn(func(_ any, _ domain.Principal, job domain.Job) (*domain.Job, error) {
			require.Equal(t, "Backend Engineer", job.Title)
			require.Equal(t, int64(90000), job.SalaryMin)
			require.True(t, job.HideSalary)
			require.Equal(t, []string{"Screen", "Onsite"}, job.HiringProcess)

			job.JobID = "512"
			job.Status = domain.JobStatusActive

			return &job, nil
		})

	rec := api.do(t, http.MethodPost, "/business/jobs", businessToken, `{
		"title":"Backend Engineer","salaryMin":90000,"salaryMax":120000,
		"hideSalary":true,"hiringProcess":["Screen","Onsite"]}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody[struct {
		Message string     `json:"message"`
		JobID   string     `json:"jobId"`
		Job     domain.Job `json:"job"`
	}](t, rec)
	require.Equal(t, "Job posted successfully", body.Message)
	require.Equal(t, "512", body.JobID)
	require.Equal(t, domain.JobStatusActive, body.Job.Status)
}

func TestCreateJob_NegativeSalary(t *testing.T) {
	api := newTestAPI(t)
	api.signedIn(businessToken, businessPrincipal())

	rec := api.do(t, http.MethodPost, "/business/jobs", businessToken, `{"title":"Backend Engineer","salaryMin":-1}`)

	requireError(t, rec, http.StatusBadRequest, "BAD_REQUEST", "salaryMin is invalid")
}

func TestUpdateJob_OnlySentFields(t *testing.T) {
	api := newTestAPI(t)
	principal := businessPrincipal()
	api.signedIn(businessToken, principal)
	updated := testJob("314")
	api.jobs.EXPECT().Update(gomock.Any(), principal, "314", gomock.Any()).
		DoAndReturn(func(_ any, _ domain.Principal, _ string, updates storage.JobUpdates) (*domain.Job, error) {
			require.NotNil(t, updates.Location)
			require.Empty(t, *updates.Location)
			require.Nil(t, updates.Title)
			require.Nil(t, updates.HiringProcess)

			return &updated, nil
		})

	rec := api.do(t, http.MethodPut, "/business/jobs/314", businessToken, `{"location":""}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestDeleteJob(t *testing.T) {
	api := newTestAPI(t)
	principal := businessPrincipal()
	api.signedIn(businessToken, principal)
	api.jobs.EXPECT().Delete(gomock.Any(), principal, "314").Return(nil)

	rec := api.do(t, http.MethodDelete, "/business/jobs/314", businessToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Job deleted successfully"}`, rec.Body.String())
}

func TestDeleteJob_OtherBusiness(t *testing.T) {
	api := newTestAPI(t)
	principal := businessPrincipal()
	api.signedIn(businessToken, principal)
	api.jobs.EXPECT().Delete(gomock.Any(), principal, "314").Return(serrors.With(serrors.ErrNotFound, "job not found"))

	rec := api.do(t, http.MethodDelete, "/business/jobs/314", businessToken, "")

	requireError(t, rec, http.StatusNotFound, "NOT_FOUND", "job not found")
}

func TestToggleJobStatus(t *testing.T) {
	api := newTestAPI(t)
	principal := businessPrincipal()
	api.signedIn(businessToken, principal)
	job := testJob("314")
	job.Status = domain.JobStatusClosed
	api.jobs.EXPECT().ToggleStatus(gomock.Any(), principal, "314").Return(&job, nil)

	rec := api.do(t, http.MethodPatch, "/business/jobs/314/status", businessToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, domain.JobStatusClosed, decodeBody[domain.Job](t, rec).Status)
}

func TestJobApplications(t *testing.T) {
	api := newTestAPI(t)
	principal := businessPrincipal()
	api.signedIn(businessToken, principal)
	api.applications.EXPECT().ListByJob(gomock.Any(), principal, "314").
		Return([]domain.Application{{JobID: "314", FullName: "Alice"}}, nil)

	rec := api.do(t, http.MethodGet, "/business/jobs/314/applications", businessToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[[]domain.Application](t, rec)
	require.Len(t, list, 1)
	require.Equal(t, "Alice", list[0].FullName)
}

func TestHiringProgressRoute(t *testing.T) {
	api := newTestAPI(t)
	principal := businessPrincipal()
	api.signedIn(businessToken, principal)
	api.applications.EXPECT().HiringProgress(gomock.Any(), principal).
		Return(&domain.HiringProgress{Total: 5, Reviewed: 3, Shortlisted: 2, Interviewed: 1}, nil)

	rec := api.do(t, http.MethodGet, "/business/analytics", businessToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"total":5,"reviewed":3,"shortlisted":2,"interviewed":1,"hired":0}`, rec.Body.String())
}
