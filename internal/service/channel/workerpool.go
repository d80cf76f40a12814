package channel

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

// WorkerPool runs queued tasks. With a single worker tasks run in the order
// they were added.
type WorkerPool struct {
	pool chan Task
	wg   sync.WaitGroup
	once sync.Once
}

func NewWorkerPool(workers, queue int) *WorkerPool {
	wp := &WorkerPool{pool: make(chan Task, queue)}

	wp.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("Task execution failed", zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

// Close stops accepting tasks and waits for the queued ones to finish.
// AddTask must not be called after Close.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() { close(wp.pool) })
	wp.wg.Wait()
}
