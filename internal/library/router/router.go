// Package router wires the HTTP routes.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/luminalib/luminalib/internal/library/biz"
	"github.com/luminalib/luminalib/internal/library/handler"
	"github.com/luminalib/luminalib/internal/pkg/middleware"
)

// New builds the gin engine with the full route table.
func New(b biz.IBiz) *gin.Engine {
	h := handler.New(b)

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logger("/healthz"),
		middleware.Recovery(),
		middleware.CORS(),
	)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")

	// 公开路由
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/token", h.Token)
	}

	// 认证路由
	authed := v1.Group("")
	authed.Use(middleware.Auth(b.Auth().UserFromToken))
	{
		authed.GET("/users/me", h.Me)
		authed.GET("/users/me/preferences", h.GetPreferences)
		authed.PUT("/users/me/preferences", h.UpdatePreferences)

		authed.POST("/documents", h.CreateDocument)
		authed.POST("/documents/upload", h.UploadDocument)
		authed.GET("/documents", h.ListDocuments)
		authed.GET("/documents/:id", h.GetDocument)
		authed.DELETE("/documents/:id", h.DeleteDocument)

		authed.POST("/ingestion/documents/:id", h.SubmitIngestion)
		authed.GET("/ingestion/jobs", h.ListIngestionJobs)
		authed.GET("/ingestion/jobs/:id", h.GetIngestionJob)

		authed.POST("/qa", h.Ask)

		authed.POST("/books", h.CreateBook)
		authed.GET("/books", h.ListBooks)
		authed.GET("/books/:id", h.GetBook)
		authed.PUT("/books/:id", h.UpdateBook)
		authed.DELETE("/books/:id", h.DeleteBook)
		authed.DELETE("/books/:id/file", h.DeleteBookFile)
		authed.GET("/books/:id/summary", h.BookSummary)
		authed.POST("/books/:id/borrow", h.BorrowBook)
		authed.POST("/books/:id/return", h.ReturnBook)
		authed.GET("/books/:id/borrow-status", h.BookBorrowStatus)
		authed.POST("/books/:id/reviews", h.AddReview)
		authed.GET("/books/:id/reviews", h.ListReviews)
		authed.GET("/books/:id/recommendations", h.SimilarBooks)

		authed.GET("/recommendations", h.Recommendations)

		authed.POST("/ai/generate-summary", h.GenerateSummary)
	}

	// 管理员路由
	admin := v1.Group("")
	admin.Use(middleware.Auth(b.Auth().UserFromToken), middleware.RequireAdmin())
	{
		admin.GET("/users", h.ListUsers)
		admin.PATCH("/users/:id/role", h.SetRole)
		admin.POST("/recommendations/train", h.TrainRecommender)
	}

	return engine
}
