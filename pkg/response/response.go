// Package response defines the unified HTTP response envelope.
package response

import (
	"net/http"
	"time"

	"github.com/luminalib/luminalib/pkg/errors"
)

// Response is the standard API response body.
type Response struct {
	// Code is the business error code, 0 on success.
	Code int `json:"code"`

	// Message is the human readable message.
	Message string `json:"message"`

	// Data carries the payload on success.
	Data interface{} `json:"data,omitempty"`

	// RequestID echoes the request correlation id when present.
	RequestID string `json:"request_id,omitempty"`

	// Timestamp is the unix-milli time the response was built.
	Timestamp int64 `json:"timestamp"`
}

// PageData wraps a paginated list payload.
type PageData struct {
	List       interface{} `json:"list"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// Success builds a success response.
func Success(data interface{}) *Response {
	return &Response{
		Code:      0,
		Message:   "success",
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Err builds an error response from any error.
func Err(err error) *Response {
	e := errors.FromError(err)
	return &Response{
		Code:      e.Code,
		Message:   e.MessageEN,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Page builds a success response with pagination metadata.
func Page(list interface{}, total int64, page, pageSize int) *Response {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return Success(&PageData{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// HTTPStatus resolves the HTTP status for an error, falling back on the
// error category when no explicit status is registered.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	e := errors.FromError(err)
	if e.HTTP != 0 {
		return e.HTTP
	}

	switch errors.GetCategory(e.Code) {
	case errors.CategoryRequest:
		return http.StatusBadRequest
	case errors.CategoryAuth:
		return http.StatusUnauthorized
	case errors.CategoryPermission:
		return http.StatusForbidden
	case errors.CategoryResource:
		return http.StatusNotFound
	case errors.CategoryConflict:
		return http.StatusConflict
	case errors.CategoryRateLimit:
		return http.StatusTooManyRequests
	case errors.CategoryTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
