package handlers

import (
	"errors"
	"net/http"

	"todo_api/internal/domain"
	"todo_api/internal/http/middleware"
	"todo_api/internal/service"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name                 string `json:"name" binding:"required,notblank,max=255"`
	Email                string `json:"email" binding:"required,email,max=255"`
	Password             string `json:"password" binding:"required,min=8,max=72,maxbytes=72"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account. POST /auth/create
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	user, err := h.Auth.Register(ctx, service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			respondValidation(c, http.StatusUnprocessableEntity, FieldErrors{
				"email": {"The email has already been taken."},
			})
			return
		case errors.Is(err, service.ErrPasswordTooLong):
			respondValidation(c, http.StatusUnprocessableEntity, FieldErrors{
				"password": {"The password field must not be greater than 72 bytes."},
			})
			return
		}
		respondInternal(c, err, "register failed")
		return
	}

	middleware.AuthEvents.WithLabelValues("register").Inc()
	h.Audit.Log(ctx, user.ID, domain.AuditActionRegister, c.ClientIP(), c.Request.UserAgent(), nil)
	respondSuccess(c, http.StatusCreated, "User registered successfully", user)
}

// Login exchanges credentials for a bearer token. POST /auth
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx := c.Request.Context()
	user, token, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			var userID int64
			if user != nil {
				userID = user.ID
			}
			middleware.AuthEvents.WithLabelValues("login_failed").Inc()
			h.Audit.LogLoginFailed(ctx, userID, service.NormalizeEmail(req.Email), c.ClientIP(), c.Request.UserAgent())
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		respondInternal(c, err, "login failed")
		return
	}

	middleware.AuthEvents.WithLabelValues("login").Inc()
	h.Audit.Log(ctx, user.ID, domain.AuditActionLogin, c.ClientIP(), c.Request.UserAgent(), nil)
	respondSuccess(c, http.StatusOK, "Logged in successfully", token)
}

// Logout revokes the presented token. POST /auth/logout
func (h *Handler) Logout(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx := c.Request.Context()
	if err := h.Auth.Logout(ctx, claims); err != nil {
		respondInternal(c, err, "logout failed")
		return
	}

	middleware.AuthEvents.WithLabelValues("logout").Inc()
	h.Audit.Log(ctx, claims.UserID, domain.AuditActionLogout, c.ClientIP(), c.Request.UserAgent(), nil)
	respondSuccess(c, http.StatusOK, "Successfully logged out", nil)
}

// Refresh swaps the presented token for a new one. POST /auth/refresh
func (h *Handler) Refresh(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx := c.Request.Context()
	token, err := h.Auth.Refresh(ctx, claims)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		respondInternal(c, err, "refresh failed")
		return
	}

	middleware.AuthEvents.WithLabelValues("refresh").Inc()
	h.Audit.Log(ctx, claims.UserID, domain.AuditActionTokenRefresh, c.ClientIP(), c.Request.UserAgent(), nil)
	respondSuccess(c, http.StatusOK, "Token refreshed successfully", token)
}

// User returns the authenticated user. GET /auth/user
func (h *Handler) User(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.Auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		respondInternal(c, err, "get user failed")
		return
	}

	respondSuccess(c, http.StatusOK, "User details retrieved successfully", user)
}

// Activity lists the caller's recent auth events. GET /auth/activity
func (h *Handler) Activity(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	logs, err := h.Audit.GetUserAuditLogs(c.Request.Context(), userID, 0)
	if err != nil {
		respondInternal(c, err, "get activity failed")
		return
	}

	respondSuccess(c, http.StatusOK, "Activity retrieved successfully", logs)
}
