package lock

import (
	"context"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	"sync"
	"time"
)

var (
	lockMap sync.Map
)

const retryInterval = 20 * time.Millisecond

// WithDelay выполняет safeCode под блокировкой ключа в пределах процесса.
// Если блокировку не удалось получить за wait, safeCode не выполняется и success=false
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	isTimeout := time.After(wait)
	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()
	for {
		if _, loaded := lockMap.LoadOrStore(key, true); !loaded {
			break
		}
		select {
		case <-isTimeout:
			return false, nil
		case <-ctx.Done():
			return false, nil
		case <-ticker.C:
		}
	}
	defer lockMap.Delete(key)
	return true, safeCode()
}

// Do аналог WithDelay, неудача получения блокировки возвращается как Conflict
func Do(ctx context.Context, key string, wait time.Duration, safeCode func() error) error {
	success, err := WithDelay(ctx, key, wait, safeCode)
	if !success {
		return apperrors.Conflict("запись изменяется другим запросом, повторите попытку")
	}
	return err
}

func ApplicationKey(applicationID string) string {
	return "application:" + applicationID
}

func InterviewKey(interviewID string) string {
	return "interview:" + interviewID
}
