// Package httputils provides HTTP handler helpers.
package httputils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luminalib/luminalib/pkg/response"
)

// requestIDKey matches the key set by the request-id middleware.
const requestIDKey = "X-Request-ID"

// WriteResponse writes the unified response envelope.
// 错误优先: 当 err 非空时忽略 data.
func WriteResponse(c *gin.Context, err error, data interface{}) {
	var resp *response.Response
	if err != nil {
		resp = response.Err(err)
	} else {
		resp = response.Success(data)
	}
	resp.RequestID = c.GetString(requestIDKey)

	c.JSON(response.HTTPStatus(err), resp)
}

// WriteAccepted writes a 202 success envelope for async submissions.
func WriteAccepted(c *gin.Context, data interface{}) {
	resp := response.Success(data)
	resp.RequestID = c.GetString(requestIDKey)

	c.JSON(http.StatusAccepted, resp)
}

// WritePage writes a paginated success response.
func WritePage(c *gin.Context, list interface{}, total int64, page, pageSize int) {
	resp := response.Page(list, total, page, pageSize)
	resp.RequestID = c.GetString(requestIDKey)

	c.JSON(response.HTTPStatus(nil), resp)
}
