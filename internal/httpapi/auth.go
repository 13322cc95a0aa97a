package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"attendance/internal/apperr"
	"attendance/internal/auth"
)

type registerRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Name       string `json:"name"`
	Department string `json:"department"`
	RollNumber string `json:"rollNumber"`
	Section    string `json:"section"`
}

// RegisterUser creates an account. Faculty accounts await admin approval.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperr.Wrap(apperr.Validation, "invalid request body", err))
		return
	}
	res, err := h.auth.Register(c.Request.Context(), auth.RegisterInput{
		Username:   req.Username,
		Password:   req.Password,
		Role:       req.Role,
		Name:       req.Name,
		Department: req.Department,
		RollNumber: req.RollNumber,
		Section:    req.Section,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":       "Registration successful",
		"needsApproval": res.NeedsApproval,
		"userId":        res.UserID,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks credentials and returns the sanitized user plus an access token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperr.Wrap(apperr.Validation, "invalid request body", err))
		return
	}
	view, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	token, exp, err := auth.IssueToken(view.ID, view.Role, h.cfg.JWTIssuer, h.cfg.JWTSigningKey, h.cfg.AccessTTL)
	if err != nil {
		h.fail(c, apperr.Wrap(apperr.Store, "token issue failed", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Login successful",
		"user":       view,
		"token":      token,
		"expires_at": exp.Unix(),
	})
}
