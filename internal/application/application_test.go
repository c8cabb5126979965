package application_test

import (
	"arbeit/internal/application"
	"arbeit/internal/notify"
	mockposting "arbeit/internal/posting/mock"
	"arbeit/pkg/domain"
	"arbeit/pkg/logger"
	"arbeit/pkg/serrors"
	"arbeit/pkg/storage"
	mockstorage "arbeit/pkg/storage/mock"
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

const (
	bid       = "B12345678"
	maxResume = 5 << 20
)

var pdf = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

type testApps struct {
	ctrl    *gomock.Controller
	storage *mockstorage.MockStorage
	jobs    *mockposting.MockJobs
	apps    application.Applications
}

func newTestApplications(t *testing.T) *testApps {
	t.Helper()

	ctrl := gomock.NewController(t)
	ta := &testApps{
		ctrl:    ctrl,
		storage: mockstorage.NewMockStorage(ctrl),
		jobs:    mockposting.NewMockJobs(ctrl),
	}
	ta.apps = application.New(ta.storage, ta.jobs,
		notify.New(notify.Options{MaxAttempts: 3, DedupPeriod: time.Hour}),
		application.Options{MaxResumeBytes: maxResume})

	return ta
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func (ta *testApps) expectWithTx(t *testing.T, fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	ta.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ta.ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func candidate() domain.Principal {
	return domain.Principal{ID: uuid.New(), Username: "alice@example.com", Role: domain.RoleUser}
}

func business() domain.Principal {
	return domain.Principal{ID: uuid.New(), Username: "hr@acme.test", Role: domain.RoleBusiness, BID: bid}
}

func submission() application.Submission {
	return application.Submission{
		JobID:       "101",
		FullName:    "Alice Smith",
		Email:       "alice@example.com",
		CoverLetter: "Hello",
		LinkedinURL: "https://linkedin.com/in/alice",
	}
}

func activeJob() *domain.Job {
	return &domain.Job{JobID: "101", BID: bid, Title: "Backend Engineer", CompanyName: "Acme",
		Status: domain.JobStatusActive}
}

func TestApplications_Submit_WithResume(t *testing.T) {
	ta := newTestApplications(t)
	principal := candidate()
	resumeID := domain.ResumeID(uuid.New())

	ta.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().JobByJobID(gomock.Any(), "101").Return(activeJob(), nil)
		tx.EXPECT().StoreResume(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r domain.Resume) (*domain.Resume, error) {
				require.Equal(t, "application/pdf", r.ContentType)
				require.Equal(t, "cv.pdf", r.FileName)
				require.Equal(t, principal.UserID(), r.UserID)
				r.ID = resumeID

				return &r, nil
			})
		tx.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, app domain.Application) (*domain.Application, error) {
				require.Equal(t, principal.UserID(), app.UserID)
				require.Equal(t, domain.ApplicationStatusPending, app.Status)
				require.Equal(t, resumeID, *app.ResumeID)
				require.Equal(t, "cv.pdf", app.ResumeFileName)
				app.ID = domain.ApplicationID(uuid.New())

				return &app, nil
			})
		tx.EXPECT().IncrementApplicants(gomock.Any(), "101").Return(true, nil)
		tx.EXPECT().AddTask(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				email := args.(notify.EmailArgs)
				require.Equal(t, "alice@example.com", email.To)
				require.Contains(t, email.Subject, "Backend Engineer")

				return true, nil
			})
	})
	ta.jobs.EXPECT().Invalidate(gomock.Any())

	app, err := ta.apps.Submit(context.Background(), principal, submission(),
		&application.ResumeUpload{FileName: `C:\Users\alice\cv.pdf`, Data: pdf})
	require.NoError(t, err)
	require.Equal(t, "101", app.JobID)
}

func TestApplications_Submit_WithoutResume(t *testing.T) {
	ta := newTestApplications(t)

	ta.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().JobByJobID(gomock.Any(), "101").Return(activeJob(), nil)
		tx.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, app domain.Application) (*domain.Application, error) {
				require.Nil(t, app.ResumeID)

				return &app, nil
			})
		tx.EXPECT().IncrementApplicants(gomock.Any(), "101").Return(true, nil)
		tx.EXPECT().AddTask(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})
	ta.jobs.EXPECT().Invalidate(gomock.Any())

	_, err := ta.apps.Submit(context.Background(), candidate(), submission(), nil)
	require.NoError(t, err)
}

func TestApplications_Submit_JobNotActive(t *testing.T) {
	ta := newTestApplications(t)
	closed := activeJob()
	closed.Status = domain.JobStatusClosed

	ta.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().JobByJobID(gomock.Any(), "101").Return(closed, nil)
	})

	_, err := ta.apps.Submit(context.Background(), candidate(), submission(), nil)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, "job not found or not active", serrors.MessageOf(err))
}

func TestApplications_Submit_AlreadyApplied(t *testing.T) {
	ta := newTestApplications(t)

	ta.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().JobByJobID(gomock.Any(), "101").Return(activeJob(), nil)
		tx.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).Return(nil,
			&storage.DuplicateError{Field: storage.FieldApplication, Err: errors.New("unique violation")})
	})

	_, err := ta.apps.Submit(context.Background(), candidate(), submission(), nil)
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.Equal(t, "you have already applied for this job", serrors.MessageOf(err))
}

func TestApplications_Submit_Validation(t *testing.T) {
	ta := newTestApplications(t)

	_, err := ta.apps.Submit(context.Background(), business(), submission(), nil)
	require.ErrorIs(t, err, serrors.ErrForbidden)

	missing := submission()
	missing.FullName = " "
	_, err = ta.apps.Submit(context.Background(), candidate(), missing, nil)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	badURL := submission()
	badURL.PortfolioURL = "not a url"
	_, err = ta.apps.Submit(context.Background(), candidate(), badURL, nil)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = ta.apps.Submit(context.Background(), candidate(), submission(),
		&application.ResumeUpload{FileName: "cv.txt", Data: []byte("just some plain text")})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	big := append(append([]byte{}, pdf...), bytes.Repeat([]byte{' '}, maxResume)...)
	_, err = ta.apps.Submit(context.Background(), candidate(), submission(),
		&application.ResumeUpload{FileName: "cv.pdf", Data: big})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "resume must be at most 5 MB", serrors.MessageOf(err))
}

func docx(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range []string{"[Content_Types].xml", "word/document.xml"} {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store})
		require.NoError(t, err)
		_, err = w.Write([]byte("<xml/>"))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestApplications_Submit_DocxGetsExtension(t *testing.T) {
	ta := newTestApplications(t)

	ta.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().JobByJobID(gomock.Any(), "101").Return(activeJob(), nil)
		tx.EXPECT().StoreResume(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r domain.Resume) (*domain.Resume, error) {
				require.Equal(t, "my-cv.docx", r.FileName)

				return &r, nil
			})
		tx.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, app domain.Application) (*domain.Application, error) {
				return &app, nil
			})
		tx.EXPECT().IncrementApplicants(gomock.Any(), "101").Return(true, nil)
		tx.EXPECT().AddTask(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})
	ta.jobs.EXPECT().Invalidate(gomock.Any())

	_, err := ta.apps.Submit(context.Background(), candidate(), submission(),
		&application.ResumeUpload{FileName: "my-cv", Data: docx(t)})
	require.NoError(t, err)
}

func TestApplications_UpdateStatus_MarksReviewed(t *testing.T) {
	ta := newTestApplications(t)
	appID := domain.ApplicationID(uuid.New())
	current := &domain.Application{ID: appID, JobID: "101", Email: "alice@example.com",
		Status: domain.ApplicationStatusPending}

	ta.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ApplicationByID(gomock.Any(), appID).Return(current, nil)
		tx.EXPECT().JobByJobID(gomock.Any(), "101").Return(activeJob(), nil)
		tx.EXPECT().UpdateApplicationStatus(gomock.Any(), appID, storage.ApplicationStatusUpdate{
			Status:       domain.ApplicationStatusUnderReview,
			MarkReviewed: true,
		}).Return(&domain.Application{ID: appID, JobID: "101", Email: "alice@example.com",
			Status: domain.ApplicationStatusUnderReview}, nil)
		tx.EXPECT().AddTask(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	app, err := ta.apps.UpdateStatus(context.Background(), business(), appID.String(),
		domain.ApplicationStatusUnderReview)
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusUnderReview, app.Status)
}

func TestApplications_UpdateStatus_SameStatusSendsNothing(t *testing.T) {
	ta := newTestApplications(t)
	appID := domain.ApplicationID(uuid.New())
	current := &domain.Application{ID: appID, JobID: "101", Status: domain.ApplicationStatusHired}

	ta.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ApplicationByID(gomock.Any(), appID).Return(current, nil)
		tx.EXPECT().JobByJobID(gomock.Any(), "101").Return(activeJob(), nil)
		tx.EXPECT().UpdateApplicationStatus(gomock.Any(), appID, storage.ApplicationStatusUpdate{
			Status: domain.ApplicationStatusHired,
		}).Return(current, nil)
	})

	_, err := ta.apps.UpdateStatus(context.Background(), business(), appID.String(), domain.ApplicationStatusHired)
	require.NoError(t, err)
}

func TestApplications_UpdateStatus_Validation(t *testing.T) {
	ta := newTestApplications(t)

	_, err := ta.apps.UpdateStatus(context.Background(), business(), "", domain.ApplicationStatusHired)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "application id and status are required", serrors.MessageOf(err))

	_, err = ta.apps.UpdateStatus(context.Background(), business(), "not-a-uuid", domain.ApplicationStatusHired)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = ta.apps.UpdateStatus(context.Background(), business(), uuid.NewString(), "Archived")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = ta.apps.UpdateStatus(context.Background(), candidate(), uuid.NewString(), domain.ApplicationStatusHired)
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestApplications_UpdateStatus_OtherBusiness(t *testing.T) {
	ta := newTestApplications(t)
	appID := domain.ApplicationID(uuid.New())
	foreign := activeJob()
	foreign.BID = "B00000000"

	ta.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ApplicationByID(gomock.Any(), appID).Return(&domain.Application{ID: appID, JobID: "101"}, nil)
		tx.EXPECT().JobByJobID(gomock.Any(), "101").Return(foreign, nil)
	})

	_, err := ta.apps.UpdateStatus(context.Background(), business(), appID.String(), domain.ApplicationStatusHired)
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestApplications_List(t *testing.T) {
	ta := newTestApplications(t)
	user := candidate()

	ta.storage.EXPECT().ApplicationsByUser(gomock.Any(), user.UserID()).Return([]domain.Application{{JobID: "101"}}, nil)
	list, err := ta.apps.List(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, list, 1)

	ta.storage.EXPECT().ApplicationsByBID(gomock.Any(), bid).Return([]domain.Application{{JobID: "101"}, {JobID: "102"}},
		nil)
	list, err = ta.apps.List(context.Background(), business())
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestApplications_ListByJob(t *testing.T) {
	ta := newTestApplications(t)

	ta.storage.EXPECT().JobByJobID(gomock.Any(), "101").Return(activeJob(), nil)
	ta.storage.EXPECT().ApplicationsByJob(gomock.Any(), "101").Return([]domain.Application{{JobID: "101"}}, nil)

	list, err := ta.apps.ListByJob(context.Background(), business(), "101")
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = ta.apps.ListByJob(context.Background(), candidate(), "101")
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestApplications_Resume(t *testing.T) {
	ta := newTestApplications(t)
	user := candidate()
	appID := domain.ApplicationID(uuid.New())
	resumeID := domain.ResumeID(uuid.New())
	app := &domain.Application{ID: appID, UserID: user.UserID(), JobID: "101", ResumeID: &resumeID}

	ta.storage.EXPECT().ApplicationByID(gomock.Any(), appID).Return(app, nil).Times(3)
	ta.storage.EXPECT().ResumeByID(gomock.Any(), resumeID).Return(&domain.Resume{ID: resumeID, Data: pdf}, nil).Times(2)
	ta.storage.EXPECT().JobByJobID(gomock.Any(), "101").Return(activeJob(), nil)

	// applicant
	resume, err := ta.apps.Resume(context.Background(), user, appID.String())
	require.NoError(t, err)
	require.Equal(t, pdf, resume.Data)

	// owning business
	_, err = ta.apps.Resume(context.Background(), business(), appID.String())
	require.NoError(t, err)

	// another candidate
	_, err = ta.apps.Resume(context.Background(), candidate(), appID.String())
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestApplications_Resume_Missing(t *testing.T) {
	ta := newTestApplications(t)
	user := candidate()
	appID := domain.ApplicationID(uuid.New())

	ta.storage.EXPECT().ApplicationByID(gomock.Any(), appID).Return(&domain.Application{ID: appID,
		UserID: user.UserID()}, nil)
	_, err := ta.apps.Resume(context.Background(), user, appID.String())
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, "resume not found", serrors.MessageOf(err))

	ta.storage.EXPECT().ApplicationByID(gomock.Any(), appID).Return(nil, nil)
	_, err = ta.apps.Resume(context.Background(), user, appID.String())
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestApplications_HiringProgress(t *testing.T) {
	ta := newTestApplications(t)

	ta.storage.EXPECT().ApplicationStatusCounts(gomock.Any(), bid).Return(map[domain.ApplicationStatus]int{
		domain.ApplicationStatusPending:     4,
		domain.ApplicationStatusUnderReview: 3,
		domain.ApplicationStatusShortlisted: 2,
		domain.ApplicationStatusInterviewed: 2,
		domain.ApplicationStatusHired:       1,
		domain.ApplicationStatusRejected:    3,
	}, nil)

	progress, err := ta.apps.HiringProgress(context.Background(), business())
	require.NoError(t, err)
	require.Equal(t, &domain.HiringProgress{
		Total:       15,
		Reviewed:    11,
		Shortlisted: 5,
		Interviewed: 3,
		Hired:       1,
	}, progress)
}
