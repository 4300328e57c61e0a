package baseworker

import (
	"context"
	"runtime/debug"
	"sync"

	log "github.com/sirupsen/logrus"
)

type Job func(ctx context.Context)

type BaseImpl struct {
	WorkerName string
	workers    int
	jobs       chan Job
	wg         sync.WaitGroup
}

func NewInstance(WorkerName string, queueSize, workers int) *BaseImpl {
	if queueSize <= 0 {
		queueSize = 1
	}
	if workers <= 0 {
		workers = 1
	}
	return &BaseImpl{
		WorkerName: WorkerName,
		workers:    workers,
		jobs:       make(chan Job, queueSize),
	}
}

func (i *BaseImpl) GetLogger() *log.Entry {
	logger := log.
		WithField("worker_name", i.WorkerName)
	return logger
}

// Enqueue не блокирует вызывающего, при переполненной очереди задача отбрасывается
func (i *BaseImpl) Enqueue(job Job) bool {
	select {
	case i.jobs <- job:
		return true
	default:
		i.GetLogger().Warn("очередь переполнена, задача отброшена")
		return false
	}
}

// Run запускает обработчиков очереди, блокируется до завершения контекста
// и выполняет оставшиеся в очереди задачи
func (i *BaseImpl) Run(ctx context.Context) {
	logger := i.GetLogger()
	logger.Info("Обработчик очереди запущен")
	for n := 0; n < i.workers; n++ {
		i.wg.Add(1)
		go func() {
			defer i.wg.Done()
			for {
				select {
				case <-ctx.Done():
					i.drain()
					return
				case job := <-i.jobs:
					i.execute(ctx, job)
				}
			}
		}()
	}
	i.wg.Wait()
	logger.Info("Обработчик очереди остановлен")
}

func (i *BaseImpl) drain() {
	for {
		select {
		case job := <-i.jobs:
			i.execute(context.Background(), job)
		default:
			return
		}
	}
}

func (i *BaseImpl) execute(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			i.GetLogger().
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	job(ctx)
}
