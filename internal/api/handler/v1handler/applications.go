package v1handler

import (
	"arbeit/internal/application"
	"arbeit/pkg/domain"
	"arbeit/pkg/serrors"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	resumeField = "resume"
	// multipartOverhead leaves room for the text fields next to the file.
	multipartOverhead = 1 << 20
)

type submissionRequest struct {
	JobID           string `json:"jobId"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CoverLetter     string `json:"coverLetter"`
	Experience      string `json:"experience"`
	CurrentCompany  string `json:"currentCompany"`
	CurrentJobTitle string `json:"currentJobTitle"`
	Education       string `json:"education"`
	LinkedinURL     string `json:"linkedinUrl"`
	PortfolioURL    string `json:"portfolioUrl"`
}

func (s submissionRequest) submission() application.Submission {
	return application.Submission(s)
}

func formSubmission(r *http.Request) submissionRequest {
	return submissionRequest{
		JobID:           r.FormValue("jobId"),
		FullName:        r.FormValue("fullName"),
		Email:           r.FormValue("email"),
		Phone:           r.FormValue("phone"),
		CoverLetter:     r.FormValue("coverLetter"),
		Experience:      r.FormValue("experience"),
		CurrentCompany:  r.FormValue("currentCompany"),
		CurrentJobTitle: r.FormValue("currentJobTitle"),
		Education:       r.FormValue("education"),
		LinkedinURL:     r.FormValue("linkedinUrl"),
		PortfolioURL:    r.FormValue("portfolioUrl"),
	}
}

// readResume returns the optional résumé part. At most limit+1 bytes are
// read so the service can reject oversized files.
func readResume(r *http.Request, limit int64) (*application.ResumeUpload, error) {
	file, header, err := r.FormFile(resumeField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil //nolint: nilnil
	}
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid resume upload")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, fmt.Errorf("could not read resume: %w", err)
	}

	return &application.ResumeUpload{FileName: header.Filename, Data: data}, nil
}

type applicationResponse struct {
	Message     string              `json:"message"`
	Application *domain.Application `json:"application"`
}

// SubmitApplication handles POST /v1/applications. The form is sent as
// multipart/form-data with an optional "resume" file, or as plain JSON.
func (h *Handler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	var (
		req    submissionRequest
		resume *application.ResumeUpload
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(h.options.MaxResumeBytes + multipartOverhead); err != nil {
			h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid multipart form"))

			return
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()

		req = formSubmission(r)
		var err error
		if resume, err = readResume(r, h.options.MaxResumeBytes); err != nil {
			h.writeError(w, r, err)

			return
		}
	} else if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	created, err := h.deps.Applications.Submit(r.Context(), mustPrincipal(r), req.submission(), resume)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, applicationResponse{
		Message:     "Application submitted successfully",
		Application: created,
	})
}

// ListApplications handles GET /v1/applications.
func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	list, err := h.deps.Applications.List(r.Context(), mustPrincipal(r))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, orEmpty(list))
}

type statusRequest struct {
	ID     string                   `json:"_id"`
	Status domain.ApplicationStatus `json:"status"`
}

// UpdateApplicationStatus handles PUT /v1/applications.
func (h *Handler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	updated, err := h.deps.Applications.UpdateStatus(r.Context(), mustPrincipal(r), req.ID, req.Status)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DownloadResume handles GET /v1/applications/{applicationId}/resume.
func (h *Handler) DownloadResume(w http.ResponseWriter, r *http.Request) {
	resume, err := h.deps.Applications.Resume(r.Context(), mustPrincipal(r), chi.URLParam(r, "applicationId"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	contentType := resume.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	fileName := strings.TrimSpace(resume.FileName)
	if fileName == "" {
		fileName = "resume"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(resume.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(resume.Data)
}
