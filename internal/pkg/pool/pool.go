// Package pool wraps ants with panic recovery and task statistics for
// the background workers (ingestion, summaries, review analysis).
package pool

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kart-io/logger"
	"github.com/panjf2000/ants/v2"
)

var (
	// ErrPoolClosed is returned when submitting to a released pool.
	ErrPoolClosed = errors.New("pool: pool is closed")

	// ErrPoolOverload is returned when a nonblocking pool is full.
	ErrPoolOverload = errors.New("pool: pool is overloaded")
)

// Config defines the worker pool configuration.
type Config struct {
	// Capacity 最大并发 goroutine 数
	Capacity int
	// ExpiryDuration goroutine 空闲过期时间
	ExpiryDuration time.Duration
	// Nonblocking 池满时 Submit 直接返回错误而不是阻塞
	Nonblocking bool
	// MaxBlockingTasks 阻塞模式下最大等待任务数, 0 表示无限制
	MaxBlockingTasks int
}

// DefaultConfig returns the default background pool configuration.
func DefaultConfig() *Config {
	return &Config{
		Capacity:         64,
		ExpiryDuration:   60 * time.Second,
		Nonblocking:      true,
		MaxBlockingTasks: 0,
	}
}

// Pool is a named worker pool.
type Pool struct {
	name   string
	pool   *ants.Pool
	closed atomic.Bool
	mu     sync.Mutex

	submitted atomic.Int64
	completed atomic.Int64
	rejected  atomic.Int64
	panics    atomic.Int64
}

// Stats is a snapshot of pool counters.
type Stats struct {
	Submitted int64 `json:"submitted"`
	Completed int64 `json:"completed"`
	Rejected  int64 `json:"rejected"`
	Panics    int64 `json:"panics"`
	Running   int   `json:"running"`
	Capacity  int   `json:"capacity"`
}

// New creates a worker pool.
func New(name string, cfg *Config) (*Pool, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	p := &Pool{name: name}

	inner, err := ants.NewPool(cfg.Capacity,
		ants.WithExpiryDuration(cfg.ExpiryDuration),
		ants.WithNonblocking(cfg.Nonblocking),
		ants.WithMaxBlockingTasks(cfg.MaxBlockingTasks),
		ants.WithPanicHandler(func(r interface{}) {
			logger.Errorw("Worker panic recovered", "pool", name, "panic", r)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pool: create ants pool: %w", err)
	}
	p.pool = inner

	logger.Infow("Worker pool created", "name", name, "capacity", cfg.Capacity)
	return p, nil
}

// Submit queues a task on the pool.
func (p *Pool) Submit(task func()) error {
	if p.closed.Load() {
		return ErrPoolClosed
	}

	p.submitted.Add(1)
	err := p.pool.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				p.panics.Add(1)
				// 交由 ants 的 PanicHandler 记录日志
				panic(r)
			}
			p.completed.Add(1)
		}()
		task()
	})
	if err != nil {
		if errors.Is(err, ants.ErrPoolOverload) {
			p.rejected.Add(1)
			return ErrPoolOverload
		}
		return err
	}
	return nil
}

// Run executes the task on the pool, degrading to a plain goroutine
// when the pool rejects it. 任务最终一定会执行.
func (p *Pool) Run(task func()) {
	if err := p.Submit(task); err != nil {
		logger.Warnw("Pool submit failed, falling back to goroutine",
			"pool", p.name, "error", err)
		go func() {
			defer func() {
				if r := recover(); r != nil {
					p.panics.Add(1)
					logger.Errorw("Worker panic recovered", "pool", p.name, "panic", r)
				}
			}()
			task()
		}()
	}
}

// Stats returns a counter snapshot.
func (p *Pool) Stats() Stats {
	return Stats{
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Rejected:  p.rejected.Load(),
		Panics:    p.panics.Load(),
		Running:   p.pool.Running(),
		Capacity:  p.pool.Cap(),
	}
}

// Release shuts the pool down without waiting for queued tasks.
func (p *Pool) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed.Load() {
		return
	}
	p.closed.Store(true)
	p.pool.Release()
	logger.Infow("Worker pool released", "name", p.name)
}

// ReleaseTimeout shuts the pool down, waiting up to timeout for
// running tasks to finish.
func (p *Pool) ReleaseTimeout(timeout time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed.Load() {
		return nil
	}
	p.closed.Store(true)
	return p.pool.ReleaseTimeout(timeout)
}
