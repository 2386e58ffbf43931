package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/luminalib/luminalib/internal/pkg/httputils"
	"github.com/luminalib/luminalib/pkg/errors"
)

type signupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup registers a new account.
// POST /api/v1/auth/signup
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputils.WriteResponse(c, errors.ErrBind.WithCause(err), nil)
		return
	}

	user, err := h.biz.Auth().Signup(c.Request.Context(), req.Email, req.Password)
	httputils.WriteResponse(c, err, user)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token exchanges HTTP Basic credentials for a bearer token.
// POST /api/v1/auth/token
func (h *Handler) Token(c *gin.Context) {
	email, password, ok := c.Request.BasicAuth()
	if !ok {
		httputils.WriteResponse(c, errors.ErrInvalidCredentials, nil)
		return
	}

	token, err := h.biz.Auth().Login(c.Request.Context(), email, password)
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}
	httputils.WriteResponse(c, nil, &tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the authenticated account.
// GET /api/v1/users/me
func (h *Handler) Me(c *gin.Context) {
	httputils.WriteResponse(c, nil, currentUser(c))
}
