package sideeffects

import (
	"context"
	"fmt"
	notificationhandler "hr-pipeline-backend/lib/notification"
	baseworker "hr-pipeline-backend/lib/utils/base-worker"
	"hr-pipeline-backend/models"
	auditapimodels "hr-pipeline-backend/models/api/audit"
	notificationapimodels "hr-pipeline-backend/models/api/notification"
	dbmodels "hr-pipeline-backend/models/db"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeAudit struct {
	mu      sync.Mutex
	records []dbmodels.AuditLog
	err     error
}

func (f *fakeAudit) Record(ctx context.Context, rec dbmodels.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, rec)
	return f.err
}

func (f *fakeAudit) List(actor models.Actor, filter auditapimodels.AuditFilter) ([]auditapimodels.AuditView, int64, error) {
	return nil, 0, nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	requests []notificationhandler.Request
}

func (f *fakeNotifier) Send(ctx context.Context, req notificationhandler.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
}

func (f *fakeNotifier) List(actor models.Actor, filter notificationapimodels.NotificationFilter) ([]notificationapimodels.NotificationView, int64, error) {
	return nil, 0, nil
}

func (f *fakeNotifier) MarkRead(actor models.Actor, notificationID string) error {
	return nil
}

func (f *fakeNotifier) MarkAllRead(actor models.Actor) error {
	return nil
}

func TestInline(t *testing.T) {
	audit := &fakeAudit{err: errors.New("db is down")}
	notifier := &fakeNotifier{}
	effects := NewInline(audit, notifier)

	effects.Audit(dbmodels.AuditLog{EntityID: "app1"})
	effects.Notify(notificationhandler.Request{ReceiverIDs: []string{"u1"}})
	require.Len(t, audit.records, 1)
	require.Len(t, notifier.requests, 1)

	// без обработчиков эффекты пропускаются
	NewInline(nil, nil).Audit(dbmodels.AuditLog{})
}

func TestAsync(t *testing.T) {
	audit := &fakeAudit{}
	notifier := &fakeNotifier{}
	worker := baseworker.NewInstance("side-effects-test", 3, 2)
	effects := NewAsync(worker, audit, notifier)

	effects.Audit(dbmodels.AuditLog{EntityID: "app1"})
	effects.Notify(notificationhandler.Request{ReceiverIDs: []string{"u1"}})
	effects.Audit(dbmodels.AuditLog{EntityID: "app2"})
	// очередь заполнена, запись отбрасывается без блокировки
	effects.Audit(dbmodels.AuditLog{EntityID: "app3"})
	require.Empty(t, audit.records)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	worker.Run(ctx)

	require.Len(t, audit.records, 2)
	require.Len(t, notifier.requests, 1)
	ids := []string{audit.records[0].EntityID, audit.records[1].EntityID}
	require.ElementsMatch(t, []string{"app1", "app2"}, ids)
}

func TestStart(t *testing.T) {
	t.Run(`without worker`, func(t *testing.T) {
		select {
		case <-Start(context.Background()):
		case <-time.After(time.Second):
			t.Fatal("очередь без обработчика должна завершаться сразу")
		}
	})

	t.Run(`queued jobs are done before close`, func(t *testing.T) {
		audit := &fakeAudit{}
		worker = baseworker.NewInstance("side-effects-start", 10, 2)
		t.Cleanup(func() { worker = nil })
		effects := NewAsync(worker, audit, &fakeNotifier{})
		for n := 0; n < 5; n++ {
			effects.Audit(dbmodels.AuditLog{EntityID: fmt.Sprintf("app%d", n)})
		}

		ctx, cancel := context.WithCancel(context.Background())
		done := Start(ctx)
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("очередь не остановилась")
		}
		audit.mu.Lock()
		defer audit.mu.Unlock()
		require.Len(t, audit.records, 5)
	})
}
