package apperrors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAppErrors(t *testing.T) {
	t.Run(`KindOf check`, func(t *testing.T) {
		require.Equal(t, Kind(""), KindOf(nil))
		require.Equal(t, KindNotFound, KindOf(NotFound("отклик не найден")))
		require.Equal(t, KindInternal, KindOf(errors.New("db is down")))

		wrapped := errors.Wrap(Conflict("дубликат"), "ошибка сохранения")
		require.Equal(t, KindConflict, KindOf(wrapped))
		require.True(t, Is(wrapped, KindConflict))
	})

	t.Run(`InvalidTransition message check`, func(t *testing.T) {
		err := InvalidTransition([]string{"SCREENING", "REJECTED"}, "переход из %v в %v недопустим", "APPLIED", "OFFERED")
		require.Equal(t, KindInvalidTransition, KindOf(err))
		require.Equal(t, "переход из APPLIED в OFFERED недопустим (допустимые переходы: SCREENING, REJECTED)", err.Error())

		err = InvalidTransition(nil, "отклик в финальном статусе")
		require.Equal(t, "отклик в финальном статусе", err.Error())
	})
}
