// Package handler exposes the library service over HTTP.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/luminalib/luminalib/internal/library/biz"
	"github.com/luminalib/luminalib/internal/model"
	"github.com/luminalib/luminalib/internal/pkg/middleware"
)

// Handler bundles the HTTP handlers for all routes.
type Handler struct {
	biz biz.IBiz
}

// New creates the handler set.
func New(b biz.IBiz) *Handler {
	return &Handler{biz: b}
}

// currentUser returns the user injected by the auth middleware.
func currentUser(c *gin.Context) *model.User {
	return middleware.CurrentUser(c)
}

// pathID parses the named uint64 path parameter.
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
