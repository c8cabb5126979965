package v1handler

import (
	"net/http"
)

type analyzeRequest struct {
	ResumeText string `json:"resumeText"`
}

type analyzeResponse struct {
	Analysis string `json:"analysis"`
	Success  bool   `json:"success"`
}

// AnalyzeResume handles POST /v1/scanner/analyze.
func (h *Handler) AnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	analysis, err := h.deps.Analyzer.Analyze(r.Context(), req.ResumeText)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{Analysis: analysis, Success: true})
}

type roadmapRequest struct {
	DreamRole     string `json:"dreamRole"`
	CurrentSkills string `json:"currentSkills"`
}

type roadmapResponse struct {
	Roadmap string `json:"roadmap"`
}

// Roadmap handles POST /v1/mentorship/roadmap.
func (h *Handler) Roadmap(w http.ResponseWriter, r *http.Request) {
	var req roadmapRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	roadmap, err := h.deps.Mentor.Roadmap(r.Context(), req.DreamRole, req.CurrentSkills)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, roadmapResponse{Roadmap: roadmap})
}

type projectPlanRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type projectPlanResponse struct {
	Plan string `json:"plan"`
}

// ProjectPlan handles POST /v1/mentorship/project-plan.
func (h *Handler) ProjectPlan(w http.ResponseWriter, r *http.Request) {
	var req projectPlanRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	plan, err := h.deps.Mentor.ProjectPlan(r.Context(), req.Title, req.Description)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, projectPlanResponse{Plan: plan})
}
