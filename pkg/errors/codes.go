package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Common errors shared by all modules (service code 0).
var (
	// OK indicates success.
	OK = Register(New(
		MakeCode(ServiceCommon, CategorySuccess, 0),
		http.StatusOK, codes.OK,
		"success", "成功"))

	// ErrInvalidParam indicates invalid request parameters.
	ErrInvalidParam = Register(New(
		MakeCode(ServiceCommon, CategoryRequest, 1),
		http.StatusBadRequest, codes.InvalidArgument,
		"invalid request parameters", "请求参数无效"))

	// ErrBind indicates a request body binding failure.
	ErrBind = Register(New(
		MakeCode(ServiceCommon, CategoryRequest, 2),
		http.StatusBadRequest, codes.InvalidArgument,
		"failed to bind request body", "请求体解析失败"))

	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = Register(New(
		MakeCode(ServiceCommon, CategoryAuth, 1),
		http.StatusUnauthorized, codes.Unauthenticated,
		"unauthorized", "未认证"))

	// ErrForbidden indicates insufficient permissions.
	ErrForbidden = Register(New(
		MakeCode(ServiceCommon, CategoryPermission, 1),
		http.StatusForbidden, codes.PermissionDenied,
		"permission denied", "权限不足"))

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = Register(New(
		MakeCode(ServiceCommon, CategoryResource, 1),
		http.StatusNotFound, codes.NotFound,
		"resource not found", "资源不存在"))

	// ErrConflict indicates a resource state conflict.
	ErrConflict = Register(New(
		MakeCode(ServiceCommon, CategoryConflict, 1),
		http.StatusConflict, codes.AlreadyExists,
		"resource conflict", "资源冲突"))

	// ErrInternal indicates an unexpected server error.
	ErrInternal = Register(New(
		MakeCode(ServiceCommon, CategoryInternal, 1),
		http.StatusInternalServerError, codes.Internal,
		"internal server error", "服务器内部错误"))

	// ErrDatabase indicates a database operation failure.
	ErrDatabase = Register(New(
		MakeCode(ServiceCommon, CategoryDatabase, 1),
		http.StatusInternalServerError, codes.Internal,
		"database error", "数据库错误"))

	// ErrCache indicates a cache operation failure.
	ErrCache = Register(New(
		MakeCode(ServiceCommon, CategoryCache, 1),
		http.StatusInternalServerError, codes.Internal,
		"cache error", "缓存错误"))

	// ErrTimeout indicates an operation timed out.
	ErrTimeout = Register(New(
		MakeCode(ServiceCommon, CategoryTimeout, 1),
		http.StatusGatewayTimeout, codes.DeadlineExceeded,
		"operation timed out", "操作超时"))
)
