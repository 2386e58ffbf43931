// Package biz implements the library business logic.
package biz

import (
	"github.com/redis/go-redis/v9"

	"github.com/luminalib/luminalib/internal/library/store"
	"github.com/luminalib/luminalib/internal/pkg/pool"
	"github.com/luminalib/luminalib/pkg/auth"
	"github.com/luminalib/luminalib/pkg/llm"
	cacheopts "github.com/luminalib/luminalib/pkg/options/cache"
	ingestopts "github.com/luminalib/luminalib/pkg/options/ingest"
	recopts "github.com/luminalib/luminalib/pkg/options/recommender"
	"github.com/luminalib/luminalib/pkg/storage"
)

// IBiz aggregates all business services.
type IBiz interface {
	Auth() *AuthService
	Users() *UserService
	Documents() *DocumentService
	Ingest() *IngestService
	QA() *QAService
	Recommend() *RecommendService
	Books() *BookService
	Reviews() *ReviewService
}

// Config carries the dependencies for the business layer.
type Config struct {
	Store   store.Factory
	Authn   auth.Authenticator
	LLM     llm.Provider
	Storage storage.Provider
	Pool    *pool.Pool

	// Redis enables the QA answer cache when non-nil.
	Redis        *redis.Client
	CacheOptions *cacheopts.Options

	IngestOptions      *ingestopts.Options
	RecommenderOptions *recopts.Options
}

type bizImpl struct {
	auth      *AuthService
	users     *UserService
	documents *DocumentService
	ingest    *IngestService
	qa        *QAService
	recommend *RecommendService
	books     *BookService
	reviews   *ReviewService
}

// New wires the business services.
func New(cfg *Config) IBiz {
	ingestOpts := cfg.IngestOptions
	if ingestOpts == nil {
		ingestOpts = ingestopts.NewOptions()
	}
	recOpts := cfg.RecommenderOptions
	if recOpts == nil {
		recOpts = recopts.NewOptions()
	}

	var answerCache *AnswerCache
	if cfg.Redis != nil {
		cacheOpts := cfg.CacheOptions
		if cacheOpts == nil {
			cacheOpts = cacheopts.NewOptions()
		}
		answerCache = NewAnswerCache(cfg.Redis, cacheOpts)
	}

	users := NewUserService(cfg.Store)

	return &bizImpl{
		auth:      NewAuthService(cfg.Store, cfg.Authn),
		users:     users,
		documents: NewDocumentService(cfg.Store),
		ingest:    NewIngestService(cfg.Store, cfg.Pool, ingestOpts.ChunkSize),
		qa:        NewQAService(cfg.Store, cfg.LLM, answerCache, ingestOpts.TopK),
		recommend: NewRecommendService(cfg.Store, users, recOpts),
		books:     NewBookService(cfg.Store, cfg.Storage, cfg.LLM, cfg.Pool),
		reviews:   NewReviewService(cfg.Store, cfg.LLM, cfg.Pool),
	}
}

func (b *bizImpl) Auth() *AuthService           { return b.auth }
func (b *bizImpl) Users() *UserService          { return b.users }
func (b *bizImpl) Documents() *DocumentService  { return b.documents }
func (b *bizImpl) Ingest() *IngestService       { return b.ingest }
func (b *bizImpl) QA() *QAService               { return b.qa }
func (b *bizImpl) Recommend() *RecommendService { return b.recommend }
func (b *bizImpl) Books() *BookService          { return b.books }
func (b *bizImpl) Reviews() *ReviewService      { return b.reviews }
