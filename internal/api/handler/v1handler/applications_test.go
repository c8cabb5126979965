package v1handler_test

import (
	"arbeit/internal/application"
	"arbeit/pkg/domain"
	"arbeit/pkg/serrors"
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func multipartSubmission(t *testing.T, fields map[string]string, fileName string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		part, err := mw.CreateFormFile("resume", fileName)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestSubmitApplication_Multipart(t *testing.T) {
	api := newTestAPI(t)
	principal := userPrincipal()
	api.signedIn(userToken, principal)

	resumeID := domain.ResumeID(uuid.New())
	api.applications.EXPECT().Submit(gomock.Any(), principal, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context,
			_ domain.Principal,
			submission application.Submission,
			resume *application.ResumeUpload,
		) (*domain.Application, error) {
			require.Equal(t, "314", submission.JobID)
			require.Equal(t, "Alice", submission.FullName)
			require.Equal(t, "https://linkedin.test/alice", submission.LinkedinURL)
			require.NotNil(t, resume)
			require.Equal(t, "cv.pdf", resume.FileName)
			require.Equal(t, []byte("%PDF-1.4"), resume.Data)

			return &domain.Application{
				JobID:          submission.JobID,
				FullName:       submission.FullName,
				Status:         domain.ApplicationStatusPending,
				ResumeID:       &resumeID,
				ResumeFileName: resume.FileName,
			}, nil
		})

	body, contentType := multipartSubmission(t, map[string]string{
		"jobId":       "314",
		"fullName":    "Alice",
		"email":       "alice@example.com",
		"linkedinUrl": "https://linkedin.test/alice",
	}, "cv.pdf", []byte("%PDF-1.4"))

	req := httptest.NewRequest(http.MethodPost, "/applications", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: userToken})
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	res := decodeBody[struct {
		Message     string             `json:"message"`
		Application domain.Application `json:"application"`
	}](t, rec)
	require.Equal(t, "Application submitted successfully", res.Message)
	require.Equal(t, domain.ApplicationStatusPending, res.Application.Status)
	require.Equal(t, "cv.pdf", res.Application.ResumeFileName)
}

func TestSubmitApplication_ResumeReadIsBounded(t *testing.T) {
	api := newTestAPI(t)
	principal := userPrincipal()
	api.signedIn(userToken, principal)

	api.applications.EXPECT().Submit(gomock.Any(), principal, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context,
			_ domain.Principal,
			_ application.Submission,
			resume *application.ResumeUpload,
		) (*domain.Application, error) {
			// one byte past the limit lets the service detect the overflow
			require.Len(t, resume.Data, 1<<20+1)

			return nil, serrors.With(serrors.ErrBadRequest, "resume exceeds the size limit")
		})

	body, contentType := multipartSubmission(t, map[string]string{"jobId": "314"}, "big.pdf", make([]byte, 1<<20+100))
	req := httptest.NewRequest(http.MethodPost, "/applications", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: userToken})
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	requireError(t, rec, http.StatusBadRequest, "BAD_REQUEST", "resume exceeds the size limit")
}

func TestSubmitApplication_JSONWithoutResume(t *testing.T) {
	api := newTestAPI(t)
	principal := userPrincipal()
	api.signedIn(userToken, principal)
	api.applications.EXPECT().Submit(gomock.Any(), principal,
		application.Submission{JobID: "314", FullName: "Alice", Email: "alice@example.com"}, nil).
		Return(&domain.Application{JobID: "314", Status: domain.ApplicationStatusPending}, nil)

	rec := api.do(t, http.MethodPost, "/applications", userToken,
		`{"jobId":"314","fullName":"Alice","email":"alice@example.com"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestSubmitApplication_Duplicate(t *testing.T) {
	api := newTestAPI(t)
	api.signedIn(userToken, userPrincipal())
	api.applications.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any(), nil).
		Return(nil, serrors.With(serrors.ErrConflict, "you have already applied for this job"))

	rec := api.do(t, http.MethodPost, "/applications", userToken, `{"jobId":"314"}`)

	requireError(t, rec, http.StatusConflict, "CONFLICT", "you have already applied for this job")
}

func TestSubmitApplication_BusinessForbidden(t *testing.T) {
	api := newTestAPI(t)
	api.signedIn(businessToken, businessPrincipal())

	rec := api.do(t, http.MethodPost, "/applications", businessToken, `{"jobId":"314"}`)

	requireError(t, rec, http.StatusForbidden, "FORBIDDEN", "this action requires a user account")
}

func TestListApplications(t *testing.T) {
	for _, principal := range []domain.Principal{userPrincipal(), businessPrincipal()} {
		t.Run(string(principal.Role), func(t *testing.T) {
			api := newTestAPI(t)
			api.signedIn("token", principal)
			api.applications.EXPECT().List(gomock.Any(), principal).Return(nil, nil)

			rec := api.do(t, http.MethodGet, "/applications", "token", "")

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			require.JSONEq(t, `[]`, rec.Body.String())
		})
	}
}

func TestUpdateApplicationStatus(t *testing.T) {
	api := newTestAPI(t)
	principal := businessPrincipal()
	api.signedIn(businessToken, principal)
	id := uuid.NewString()
	api.applications.EXPECT().UpdateStatus(gomock.Any(), principal, id, domain.ApplicationStatusShortlisted).
		Return(&domain.Application{Status: domain.ApplicationStatusShortlisted}, nil)

	rec := api.do(t, http.MethodPut, "/applications", businessToken, `{"_id":"`+id+`","status":"Shortlisted"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, domain.ApplicationStatusShortlisted, decodeBody[domain.Application](t, rec).Status)
}

func TestDownloadResume(t *testing.T) {
	api := newTestAPI(t)
	principal := businessPrincipal()
	api.signedIn(businessToken, principal)
	id := uuid.NewString()
	api.applications.EXPECT().Resume(gomock.Any(), principal, id).Return(&domain.Resume{
		FileName:    "alice cv.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4"),
	}, nil)

	rec := api.do(t, http.MethodGet, "/applications/"+id+"/resume", businessToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	require.Equal(t, `attachment; filename="alice cv.pdf"`, rec.Header().Get("Content-Disposition"))
	require.Equal(t, "8", rec.Header().Get("Content-Length"))
	require.Equal(t, "%PDF-1.4", rec.Body.String())
}

func TestDownloadResume_Forbidden(t *testing.T) {
	api := newTestAPI(t)
	principal := userPrincipal()
	api.signedIn(userToken, principal)
	api.applications.EXPECT().Resume(gomock.Any(), principal, "abc").
		Return(nil, serrors.With(serrors.ErrForbidden, "not allowed to download this resume"))

	rec := api.do(t, http.MethodGet, "/applications/abc/resume", userToken, "")

	requireError(t, rec, http.StatusForbidden, "FORBIDDEN", "not allowed to download this resume")
}
