package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/luminalib/luminalib/internal/library/biz"
	"github.com/luminalib/luminalib/internal/library/router"
	"github.com/luminalib/luminalib/internal/library/store"
	"github.com/luminalib/luminalib/internal/pkg/pool"
	"github.com/luminalib/luminalib/pkg/auth"
	"github.com/luminalib/luminalib/pkg/llm"
	ingestopts "github.com/luminalib/luminalib/pkg/options/ingest"
	recopts "github.com/luminalib/luminalib/pkg/options/recommender"
	"github.com/luminalib/luminalib/pkg/storage"
)

type envelope struct {
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"request_id"`
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, store.AutoMigrate(db))

	authn, err := auth.New("test-secret")
	require.NoError(t, err)

	p, err := pool.New("test", pool.DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(p.Release)

	recOpts := recopts.NewOptions()
	recOpts.ModelDir = t.TempDir()

	b := biz.New(&biz.Config{
		Store:              store.NewStore(db),
		Authn:              authn,
		LLM:                llm.NewMock(),
		Storage:            storage.NewMemory(),
		Pool:               p,
		IngestOptions:      ingestopts.NewOptions(),
		RecommenderOptions: recOpts,
	})

	return router.New(b)
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, &env
}

// obtainToken 注册并换取 bearer token.
func obtainToken(t *testing.T, engine *gin.Engine, email, password string) string {
	t.Helper()

	w, _ := doJSON(t, engine, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", nil)
	req.SetBasicAuth(email, password)
	w2 := httptest.NewRecorder()
	engine.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &env))
	var tok struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tok))
	require.Equal(t, "bearer", tok.TokenType)
	return tok.AccessToken
}

func TestAPI_RequiresAuth(t *testing.T) {
	engine := newTestEngine(t)

	w, env := doJSON(t, engine, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotZero(t, env.Code)

	w, _ = doJSON(t, engine, http.MethodGet, "/api/v1/users/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_DocumentIngestionAndQA(t *testing.T) {
	engine := newTestEngine(t)
	token := obtainToken(t, engine, "alice@example.com", "password123")

	// 创建文档
	w, env := doJSON(t, engine, http.MethodPost, "/api/v1/documents", token, gin.H{
		"title":   "FastAPI Notes",
		"content": "FastAPI is a modern, fast web framework for building APIs with Python.",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		ID uint64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &doc))
	require.NotZero(t, doc.ID)

	// 提交摄取任务, 返回 202 和 pending 状态
	w, env = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/v1/ingestion/documents/%d", doc.ID), token, nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	var job struct {
		ID     uint64 `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &job))
	require.Equal(t, "pending", job.Status)

	// 轮询直到任务完成
	require.Eventually(t, func() bool {
		_, env := doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/ingestion/jobs/%d", job.ID), token, nil)
		var j struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(env.Data, &j); err != nil {
			return false
		}
		return j.Status == "completed"
	}, 3*time.Second, 10*time.Millisecond)

	// 基于已摄取语料问答
	w, env = doJSON(t, engine, http.MethodPost, "/api/v1/qa", token, gin.H{
		"question": "What is FastAPI?",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Answer   string `json:"answer"`
		Excerpts []struct {
			Content string `json:"content"`
			Score   float64 `json:"score"`
		} `json:"excerpts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Contains(t, result.Answer, "Based on the provided documents: ")
	assert.Contains(t, result.Answer, "FastAPI")
	require.NotEmpty(t, result.Excerpts)
}

func TestAPI_QAEmptyCorpus(t *testing.T) {
	engine := newTestEngine(t)
	token := obtainToken(t, engine, "bob@example.com", "password123")

	w, env := doJSON(t, engine, http.MethodPost, "/api/v1/qa", token, gin.H{
		"question": "Anything there?",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No ingested documents available", env.Message)
}

func TestAPI_AdminOnlyRoutes(t *testing.T) {
	engine := newTestEngine(t)
	token := obtainToken(t, engine, "carol@example.com", "password123")

	w, _ := doJSON(t, engine, http.MethodGet, "/api/v1/users", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doJSON(t, engine, http.MethodPost, "/api/v1/recommendations/train", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAPI_Healthz(t *testing.T) {
	engine := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
