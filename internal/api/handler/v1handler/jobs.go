package v1handler

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/storage"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// jobRequest carries the editable fields of a posting. Pointers tell an
// omitted field apart from a cleared one on update.
type jobRequest struct {
	Title              *string           `json:"title"`
	Location           *string           `json:"location"`
	JobType            *string           `json:"jobType"`
	Department         *string           `json:"department"`
	Description        *string           `json:"description"`
	Requirements       *string           `json:"requirements"`
	Benefits           *string           `json:"benefits"`
	Qualification      *string           `json:"qualification"`
	SalaryMin          *int64            `json:"salaryMin" validate:"omitnil,gte=0"`
	SalaryMax          *int64            `json:"salaryMax" validate:"omitnil,gte=0"`
	HideSalary         *bool             `json:"hideSalary"`
	HiringProcess      []string          `json:"hiringProcess"`
	ScreeningQuestions []string          `json:"screeningQuestions"`
	AdditionalInfo     *string           `json:"additionalInfo"`
	Status             *domain.JobStatus `json:"status"`
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}

	return *v
}

func (j jobRequest) job() domain.Job {
	return domain.Job{
		Title:              deref(j.Title),
		Location:           deref(j.Location),
		JobType:            deref(j.JobType),
		Department:         deref(j.Department),
		Description:        deref(j.Description),
		Requirements:       deref(j.Requirements),
		Benefits:           deref(j.Benefits),
		Qualification:      deref(j.Qualification),
		SalaryMin:          deref(j.SalaryMin),
		SalaryMax:          deref(j.SalaryMax),
		HideSalary:         deref(j.HideSalary),
		HiringProcess:      j.HiringProcess,
		ScreeningQuestions: j.ScreeningQuestions,
		AdditionalInfo:     deref(j.AdditionalInfo),
	}
}

func (j jobRequest) updates() storage.JobUpdates {
	return storage.JobUpdates{
		Title:              j.Title,
		Location:           j.Location,
		JobType:            j.JobType,
		Department:         j.Department,
		Description:        j.Description,
		Requirements:       j.Requirements,
		Benefits:           j.Benefits,
		Qualification:      j.Qualification,
		SalaryMin:          j.SalaryMin,
		SalaryMax:          j.SalaryMax,
		HideSalary:         j.HideSalary,
		HiringProcess:      j.HiringProcess,
		ScreeningQuestions: j.ScreeningQuestions,
		AdditionalInfo:     j.AdditionalInfo,
		Status:             j.Status,
	}
}

// ListJobs handles GET /v1/jobs.
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.deps.Jobs.ListActive(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, orEmpty(jobs))
}

// GetJob handles GET /v1/jobs/{jobId}.
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.deps.Jobs.Get(r.Context(), chi.URLParam(r, "jobId"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, job)
}

// BusinessJobs handles GET /v1/business/jobs with an optional status filter.
func (h *Handler) BusinessJobs(w http.ResponseWriter, r *http.Request) {
	status := domain.JobStatus(r.URL.Query().Get("status"))

	jobs, err := h.deps.Jobs.ListForBusiness(r.Context(), mustPrincipal(r), status)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, orEmpty(jobs))
}

type jobCreatedResponse struct {
	Message string      `json:"message"`
	JobID   string      `json:"jobId"`
	Job     *domain.Job `json:"job"`
}

// CreateJob handles POST /v1/business/jobs.
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	job, err := h.deps.Jobs.Create(r.Context(), mustPrincipal(r), req.job())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, jobCreatedResponse{
		Message: "Job posted successfully",
		JobID:   job.JobID,
		Job:     job,
	})
}

// UpdateJob handles PUT /v1/business/jobs/{jobId}.
func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	job, err := h.deps.Jobs.Update(r.Context(), mustPrincipal(r), chi.URLParam(r, "jobId"), req.updates())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, job)
}

// DeleteJob handles DELETE /v1/business/jobs/{jobId}.
func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Jobs.Delete(r.Context(), mustPrincipal(r), chi.URLParam(r, "jobId")); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Job deleted successfully"})
}

// ToggleJobStatus handles PATCH /v1/business/jobs/{jobId}/status.
func (h *Handler) ToggleJobStatus(w http.ResponseWriter, r *http.Request) {
	job, err := h.deps.Jobs.ToggleStatus(r.Context(), mustPrincipal(r), chi.URLParam(r, "jobId"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, job)
}

// JobApplications handles GET /v1/business/jobs/{jobId}/applications.
func (h *Handler) JobApplications(w http.ResponseWriter, r *http.Request) {
	list, err := h.deps.Applications.ListByJob(r.Context(), mustPrincipal(r), chi.URLParam(r, "jobId"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, orEmpty(list))
}

// HiringProgress handles GET /v1/business/analytics.
func (h *Handler) HiringProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.deps.Applications.HiringProgress(r.Context(), mustPrincipal(r))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, progress)
}
