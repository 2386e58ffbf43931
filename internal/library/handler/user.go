package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/luminalib/luminalib/internal/pkg/httputils"
	"github.com/luminalib/luminalib/pkg/errors"
)

// ListUsers returns all accounts. Admin only.
// GET /api/v1/users
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.biz.Users().List(c.Request.Context())
	httputils.WriteResponse(c, err, users)
}

type setRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// SetRole updates a user's role. Admin only.
// PATCH /api/v1/users/:id/role
func (h *Handler) SetRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httputils.WriteResponse(c, errors.ErrInvalidParam.WithMessage("invalid user id"), nil)
		return
	}

	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputils.WriteResponse(c, errors.ErrBind.WithCause(err), nil)
		return
	}

	user, err := h.biz.Users().SetRole(c.Request.Context(), id, req.Role)
	httputils.WriteResponse(c, err, user)
}

// GetPreferences returns the caller's preference blob.
// GET /api/v1/users/me/preferences
func (h *Handler) GetPreferences(c *gin.Context) {
	prefs, err := h.biz.Users().GetPreferences(c.Request.Context(), currentUser(c).ID)
	httputils.WriteResponse(c, err, prefs)
}

// UpdatePreferences replaces the caller's preference blob.
// PUT /api/v1/users/me/preferences
func (h *Handler) UpdatePreferences(c *gin.Context) {
	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		httputils.WriteResponse(c, errors.ErrBind.WithCause(err), nil)
		return
	}

	prefs, err := h.biz.Users().UpdatePreferences(c.Request.Context(), currentUser(c).ID, data)
	httputils.WriteResponse(c, err, prefs)
}
