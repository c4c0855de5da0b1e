package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned when work is handed to a closed pool.
var ErrClosed = errors.New("parallel: pool closed")

// WorkerPool runs batches of independent tasks on a fixed set of goroutines.
//
// Every worker owns a queue. Tasks are dealt round-robin; a worker whose
// queue is empty steals from the others, which keeps the pool busy when
// some bands of a frame are much slower than the rest.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	wake    chan struct{} // nudges idle workers to steal
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		wake:    make(chan struct{}, workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			drain(own)
			return
		case task := <-own:
			task()
			continue
		default:
		}

		if task := p.steal(id); task != nil {
			task()
			continue
		}

		select {
		case <-p.done:
			drain(own)
			return
		case task := <-own:
			task()
		case <-p.wake:
		}
	}
}

func drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			task()
		default:
			return
		}
	}
}

// steal takes one task from another worker's queue, or returns nil.
func (p *WorkerPool) steal(id int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case task := <-p.queues[(id+i)%p.workers]:
			return task
		default:
		}
	}
	return nil
}

// ExecuteAll runs every task and waits for all of them to finish.
//
// Tasks that have not started when ctx is cancelled are skipped and the
// context error is returned. Tasks already running are not interrupted.
func (p *WorkerPool) ExecuteAll(ctx context.Context, tasks []func()) error {
	if !p.running.Load() {
		return ErrClosed
	}
	if len(tasks) == 0 {
		return ctx.Err()
	}

	var pending sync.WaitGroup
	pending.Add(len(tasks))

	var err error
submit:
	for i, fn := range tasks {
		task := func() {
			defer pending.Done()
			if ctx.Err() == nil {
				fn()
			}
		}
		select {
		case p.queues[i%p.workers] <- task:
			select {
			case p.wake <- struct{}{}:
			default:
			}
		case <-ctx.Done():
			pending.Add(i - len(tasks))
			break submit
		case <-p.done:
			pending.Add(i - len(tasks))
			err = ErrClosed
			break submit
		}
	}

	pending.Wait()
	if err != nil {
		return err
	}
	return ctx.Err()
}

// Close stops accepting work, runs whatever is already queued, and waits
// for the workers to exit. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
