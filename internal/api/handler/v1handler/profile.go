package v1handler

import (
	"arbeit/internal/profile"
	"arbeit/pkg/serrors"
	"net/http"
)

// GetProfile handles GET /v1/profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.deps.Profiles.Get(r.Context(), mustPrincipal(r))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, user)
}

type profileUpdatedResponse struct {
	Message       string `json:"message"`
	ModifiedCount int    `json:"modifiedCount"`
}

// profileUpdateRequest mirrors the GET body, so a fetched account can be sent
// back after editing.
type profileUpdateRequest struct {
	Profile *profile.Updates `json:"profile"`
}

// UpdateProfile handles PUT /v1/profile. Only the nested profile is decoded, so
// identity and credential fields in the body are ignored. Fields left out keep
// their stored value.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}
	if req.Profile == nil {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "profile is required"))

		return
	}

	res, err := h.deps.Profiles.Update(r.Context(), mustPrincipal(r), *req.Profile)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, profileUpdatedResponse{
		Message:       "Profile updated successfully",
		ModifiedCount: res.ModifiedCount,
	})
}
