// Package library provides the LuminaLib service server implementation.
package library

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"
	goredis "github.com/redis/go-redis/v9"

	"github.com/luminalib/luminalib/internal/library/biz"
	"github.com/luminalib/luminalib/internal/library/router"
	"github.com/luminalib/luminalib/internal/library/store"
	"github.com/luminalib/luminalib/internal/pkg/pool"
	"github.com/luminalib/luminalib/pkg/auth"
	"github.com/luminalib/luminalib/pkg/database"
	"github.com/luminalib/luminalib/pkg/llm"
	cacheopts "github.com/luminalib/luminalib/pkg/options/cache"
	dbopts "github.com/luminalib/luminalib/pkg/options/database"
	httpopts "github.com/luminalib/luminalib/pkg/options/http"
	ingestopts "github.com/luminalib/luminalib/pkg/options/ingest"
	jwtopts "github.com/luminalib/luminalib/pkg/options/jwt"
	llmopts "github.com/luminalib/luminalib/pkg/options/llm"
	logopts "github.com/luminalib/luminalib/pkg/options/logger"
	recopts "github.com/luminalib/luminalib/pkg/options/recommender"
	redisopts "github.com/luminalib/luminalib/pkg/options/redis"
	storageopts "github.com/luminalib/luminalib/pkg/options/storage"
	"github.com/luminalib/luminalib/pkg/storage"
)

// Name is the name of the application.
const Name = "luminalib"

// Config contains application-related configurations.
type Config struct {
	HTTPOptions        *httpopts.Options
	LogOptions         *logopts.Options
	DatabaseOptions    *dbopts.Options
	RedisOptions       *redisopts.Options
	JWTOptions         *jwtopts.Options
	LLMOptions         *llmopts.Options
	StorageOptions     *storageopts.Options
	CacheOptions       *cacheopts.Options
	IngestOptions      *ingestopts.Options
	RecommenderOptions *recopts.Options
}

// Server represents the library server.
type Server struct {
	srv             *http.Server
	store           store.Factory
	pool            *pool.Pool
	redis           *goredis.Client
	shutdownTimeout time.Duration
}

// NewServer initializes and returns a new Server instance.
func (cfg *Config) NewServer(ctx context.Context) (*Server, error) {
	// 1. 初始化日志
	if err := cfg.LogOptions.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Infow("Starting library service", "name", Name)

	// 2. 初始化数据库
	db, err := database.New(cfg.DatabaseOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// 数据库迁移
	if err := store.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info("Database migration completed")

	// 3. 初始化 Store 层
	storeFactory := store.NewStore(db)
	logger.Info("Store layer initialized")

	// 4. 初始化 JWT 认证
	authn, err := auth.New(cfg.JWTOptions.Secret,
		auth.WithIssuer(cfg.JWTOptions.Issuer),
		auth.WithLifetime(cfg.JWTOptions.Lifetime),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize jwt: %w", err)
	}
	logger.Info("JWT authentication initialized")

	// 5. 初始化 LLM 提供方与对象存储
	provider, err := llm.New(cfg.LLMOptions.ProviderConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize llm provider: %w", err)
	}
	logger.Infow("LLM provider initialized", "provider", provider.Name())

	blobStore, err := storage.New(cfg.StorageOptions.ProviderConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Infow("Blob storage initialized", "provider", blobStore.Name())

	// 6. 初始化 Redis（可选，仅用于问答缓存）
	var redisClient *goredis.Client
	if cfg.RedisOptions.Enabled {
		redisClient = goredis.NewClient(&goredis.Options{
			Addr:         cfg.RedisOptions.Addr,
			Password:     cfg.RedisOptions.Password,
			DB:           cfg.RedisOptions.DB,
			DialTimeout:  cfg.RedisOptions.DialTimeout,
			ReadTimeout:  cfg.RedisOptions.ReadTimeout,
			WriteTimeout: cfg.RedisOptions.WriteTimeout,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			// 缓存不可用不阻塞启动
			logger.Warnw("Redis unreachable, answer cache disabled", "error", err)
			_ = redisClient.Close()
			redisClient = nil
		} else {
			logger.Info("Redis answer cache initialized")
		}
	}

	// 7. 初始化后台任务池
	workerPool, err := pool.New(Name, &pool.Config{
		Capacity:    cfg.IngestOptions.PoolCapacity,
		Nonblocking: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize worker pool: %w", err)
	}

	// 8. 初始化 Biz 层
	b := biz.New(&biz.Config{
		Store:              storeFactory,
		Authn:              authn,
		LLM:                provider,
		Storage:            blobStore,
		Pool:               workerPool,
		Redis:              redisClient,
		CacheOptions:       cfg.CacheOptions,
		IngestOptions:      cfg.IngestOptions,
		RecommenderOptions: cfg.RecommenderOptions,
	})
	logger.Info("Business layer initialized")

	// 9. 注册路由
	gin.SetMode(cfg.HTTPOptions.Mode)
	engine := router.New(b)

	srv := &http.Server{
		Addr:         cfg.HTTPOptions.Addr,
		Handler:      engine,
		ReadTimeout:  cfg.HTTPOptions.ReadTimeout,
		WriteTimeout: cfg.HTTPOptions.WriteTimeout,
	}

	logger.Info("Library service is ready")
	return &Server{
		srv:             srv,
		store:           storeFactory,
		pool:            workerPool,
		redis:           redisClient,
		shutdownTimeout: cfg.HTTPOptions.ShutdownTimeout,
	}, nil
}

// Run starts the HTTP server and blocks until ctx is canceled, then
// shuts everything down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Infow("HTTP server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down library service")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("HTTP server shutdown failed", "error", err)
	}

	// 等待后台任务收尾
	if err := s.pool.ReleaseTimeout(s.shutdownTimeout); err != nil {
		logger.Warnw("Worker pool release timed out", "error", err)
	}

	if s.redis != nil {
		_ = s.redis.Close()
	}
	if err := s.store.Close(); err != nil {
		logger.Errorw("Store close failed", "error", err)
	}

	logger.Info("Library service stopped")
	return nil
}
