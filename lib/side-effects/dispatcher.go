package sideeffects

import (
	"context"
	"hr-pipeline-backend/config"
	audithandler "hr-pipeline-backend/lib/audit"
	notificationhandler "hr-pipeline-backend/lib/notification"
	baseworker "hr-pipeline-backend/lib/utils/base-worker"
	dbmodels "hr-pipeline-backend/models/db"

	log "github.com/sirupsen/logrus"
)

// Provider выносит аудит и уведомления за пределы транзакции операции.
// Ошибки побочных эффектов логируются и не возвращаются вызывающему
type Provider interface {
	Audit(rec dbmodels.AuditLog)
	Notify(req notificationhandler.Request)
}

var Instance Provider

var worker *baseworker.BaseImpl

func NewHandler() {
	worker = baseworker.NewInstance("side-effects", config.Conf.Pipeline.SideEffectQueue, config.Conf.Pipeline.SideEffectWorker)
	Instance = NewAsync(worker, audithandler.Instance, notificationhandler.Instance)
}

// Run обработка очереди побочных эффектов до остановки сервиса
func Run(ctx context.Context) {
	if worker == nil {
		return
	}
	worker.Run(ctx)
}

// Start запускает обработку очереди в отдельной горутине.
// Канал закрывается, когда после остановки ctx выполнены оставшиеся задачи
func Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		Run(ctx)
	}()
	return done
}

type queue interface {
	Enqueue(job baseworker.Job) bool
}

func NewAsync(q queue, audit audithandler.Provider, notifier notificationhandler.Provider) Provider {
	return asyncImpl{
		queue: q,
		sync:  syncImpl{audit: audit, notifier: notifier},
	}
}

type asyncImpl struct {
	queue queue
	sync  syncImpl
}

func (i asyncImpl) Audit(rec dbmodels.AuditLog) {
	ok := i.queue.Enqueue(func(ctx context.Context) {
		i.sync.record(ctx, rec)
	})
	if !ok {
		log.
			WithField("action", rec.Action).
			WithField("entity_id", rec.EntityID).
			Error("запись аудита отброшена: очередь переполнена")
	}
}

func (i asyncImpl) Notify(req notificationhandler.Request) {
	ok := i.queue.Enqueue(func(ctx context.Context) {
		i.sync.send(ctx, req)
	})
	if !ok {
		log.
			WithField("notification_type", req.Data.Type).
			Error("уведомление отброшено: очередь переполнена")
	}
}

// NewInline выполняет побочные эффекты сразу в вызывающей горутине
func NewInline(audit audithandler.Provider, notifier notificationhandler.Provider) Provider {
	return syncImpl{
		audit:    audit,
		notifier: notifier,
	}
}

type syncImpl struct {
	audit    audithandler.Provider
	notifier notificationhandler.Provider
}

func (i syncImpl) Audit(rec dbmodels.AuditLog) {
	i.record(context.Background(), rec)
}

func (i syncImpl) Notify(req notificationhandler.Request) {
	i.send(context.Background(), req)
}

func (i syncImpl) record(ctx context.Context, rec dbmodels.AuditLog) {
	if i.audit == nil {
		return
	}
	// ошибка уже залогирована рекордером
	_ = i.audit.Record(ctx, rec)
}

func (i syncImpl) send(ctx context.Context, req notificationhandler.Request) {
	if i.notifier == nil {
		return
	}
	i.notifier.Send(ctx, req)
}
