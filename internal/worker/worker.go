package worker

import (
	"context"
	"errors"
	"sync"
)

// Task represents a unit of work executed by the pool.
type Task func(ctx context.Context) error

// Pool runs submitted tasks on a fixed number of goroutines and collects their errors.
type Pool interface {
	Submit(Task)
	// Wait stops accepting tasks, waits for the running ones and joins every error.
	Wait() error
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
// Tasks still queued after ctx is cancelled are skipped with ctx.Err().
func NewPool(ctx context.Context, n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job == nil {
					continue
				}
				if err := ctx.Err(); err != nil {
					p.record(err)
					continue
				}
				p.record(job(ctx))
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup

	mu   sync.Mutex
	errs []error
	once sync.Once
}

func (p *pool) record(err error) {
	if err == nil {
		return
	}
	p.mu.Lock()
	p.errs = append(p.errs, err)
	p.mu.Unlock()
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

func (p *pool) Wait() error {
	p.once.Do(func() { close(p.jobs) })
	p.wg.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}
