package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Library service errors (service code 30).
var (
	// ErrUserNotFound indicates the user does not exist.
	ErrUserNotFound = Register(New(
		MakeCode(ServiceLibrary, CategoryResource, 1),
		http.StatusNotFound, codes.NotFound,
		"User not found", "用户不存在"))

	// ErrDocumentNotFound indicates the document does not exist or is not owned by the caller.
	ErrDocumentNotFound = Register(New(
		MakeCode(ServiceLibrary, CategoryResource, 2),
		http.StatusNotFound, codes.NotFound,
		"Document not found", "文档不存在"))

	// ErrJobNotFound indicates the ingestion job does not exist.
	ErrJobNotFound = Register(New(
		MakeCode(ServiceLibrary, CategoryResource, 3),
		http.StatusNotFound, codes.NotFound,
		"Ingestion job not found", "摄取任务不存在"))

	// ErrBookNotFound indicates the book does not exist.
	ErrBookNotFound = Register(New(
		MakeCode(ServiceLibrary, CategoryResource, 4),
		http.StatusNotFound, codes.NotFound,
		"Book not found", "图书不存在"))

	// ErrBorrowNotFound indicates no active borrow exists for the book and user.
	ErrBorrowNotFound = Register(New(
		MakeCode(ServiceLibrary, CategoryResource, 5),
		http.StatusNotFound, codes.NotFound,
		"No active borrow found", "无有效借阅记录"))

	// ErrFileNotFound indicates the book has no attached file.
	ErrFileNotFound = Register(New(
		MakeCode(ServiceLibrary, CategoryResource, 6),
		http.StatusNotFound, codes.NotFound,
		"No file attached to this book", "图书未附加文件"))

	// ErrEmailTaken indicates the signup email is already registered.
	ErrEmailTaken = Register(New(
		MakeCode(ServiceLibrary, CategoryConflict, 1),
		http.StatusConflict, codes.AlreadyExists,
		"Email already registered", "邮箱已注册"))

	// ErrBookAlreadyBorrowed indicates the caller already holds an active borrow.
	ErrBookAlreadyBorrowed = Register(New(
		MakeCode(ServiceLibrary, CategoryConflict, 2),
		http.StatusConflict, codes.AlreadyExists,
		"Book already borrowed", "图书已被借阅"))

	// ErrInvalidCredentials indicates the login credentials are wrong.
	ErrInvalidCredentials = Register(New(
		MakeCode(ServiceLibrary, CategoryAuth, 1),
		http.StatusUnauthorized, codes.Unauthenticated,
		"Invalid credentials", "凭证无效"))

	// ErrTokenInvalid indicates the bearer token failed verification.
	ErrTokenInvalid = Register(New(
		MakeCode(ServiceLibrary, CategoryAuth, 2),
		http.StatusUnauthorized, codes.Unauthenticated,
		"Invalid or expired token", "令牌无效或已过期"))

	// ErrPermissionDenied indicates the caller lacks the required role.
	ErrPermissionDenied = Register(New(
		MakeCode(ServiceLibrary, CategoryPermission, 1),
		http.StatusForbidden, codes.PermissionDenied,
		"Permission denied", "权限不足"))

	// ErrBorrowRequired indicates the caller must borrow the book before reviewing it.
	ErrBorrowRequired = Register(New(
		MakeCode(ServiceLibrary, CategoryPermission, 2),
		http.StatusForbidden, codes.PermissionDenied,
		"You must borrow this book before reviewing it", "评论前必须先借阅该图书"))

	// ErrCorpusEmpty indicates no chunks are available for retrieval.
	ErrCorpusEmpty = Register(New(
		MakeCode(ServiceLibrary, CategoryRequest, 1),
		http.StatusBadRequest, codes.FailedPrecondition,
		"No ingested documents available", "没有可用的已摄取文档"))

	// ErrIngestion indicates an ingestion pipeline failure.
	ErrIngestion = Register(New(
		MakeCode(ServiceLibrary, CategoryInternal, 1),
		http.StatusInternalServerError, codes.Internal,
		"Ingestion failed", "文档摄取失败"))

	// ErrLLMProvider indicates an LLM provider call failure.
	ErrLLMProvider = Register(New(
		MakeCode(ServiceLibrary, CategoryNetwork, 1),
		http.StatusBadGateway, codes.Unavailable,
		"LLM provider request failed", "LLM 服务请求失败"))

	// ErrStorage indicates a blob storage failure.
	ErrStorage = Register(New(
		MakeCode(ServiceLibrary, CategoryInternal, 2),
		http.StatusInternalServerError, codes.Internal,
		"Storage operation failed", "存储操作失败"))
)
