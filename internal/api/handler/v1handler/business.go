package v1handler

import (
	"arbeit/internal/auth"
	"net/http"
)

type verificationRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code"`
}

// SendVerificationCode handles POST /v1/auth/verify-email.
func (h *Handler) SendVerificationCode(w http.ResponseWriter, r *http.Request) {
	var req verificationRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Auth.SendVerificationCode(r.Context(), req.Email); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Verification code sent"})
}

type verifiedResponse struct {
	Message  string `json:"message"`
	Verified bool   `json:"verified"`
}

// VerifyCode handles PUT /v1/auth/verify-email.
func (h *Handler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req verificationRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Auth.VerifyCode(r.Context(), req.Email, req.Code); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, verifiedResponse{Message: "Email verified successfully", Verified: true})
}

type businessRegisterRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required"`
	CompanyName  string `json:"companyName" validate:"required"`
	Address      string `json:"address" validate:"required"`
	CompanyEmail string `json:"companyEmail" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

type businessRegisterResponse struct {
	Message string `json:"message"`
	BID     string `json:"bid"`
}

// RegisterBusiness handles POST /v1/auth/business/register.
func (h *Handler) RegisterBusiness(w http.ResponseWriter, r *http.Request) {
	var req businessRegisterRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	business, err := h.deps.Auth.RegisterBusiness(r.Context(), auth.BusinessRegistration{
		Name:         req.Name,
		Email:        req.Email,
		CompanyName:  req.CompanyName,
		Address:      req.Address,
		CompanyEmail: req.CompanyEmail,
		Password:     req.Password,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, businessRegisterResponse{
		Message: "Business registered successfully",
		BID:     business.BID,
	})
}

type businessLoginRequest struct {
	// CompanyEmail and Email are interchangeable; the web client sends email.
	CompanyEmail string `json:"companyEmail" validate:"required_without=Email"`
	Email        string `json:"email"`
	Password     string `json:"password" validate:"required"`
}

// LoginBusiness handles POST /v1/auth/business/login.
func (h *Handler) LoginBusiness(w http.ResponseWriter, r *http.Request) {
	var req businessLoginRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	companyEmail := req.CompanyEmail
	if companyEmail == "" {
		companyEmail = req.Email
	}

	session, err := h.deps.Auth.LoginBusiness(r.Context(), companyEmail, req.Password)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.setTokenCookies(w, session.Tokens)
	writeJSON(w, http.StatusOK, newSessionResponse("Login successful", session.Principal))
}
