package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r507/suguan-bot/internal/bot/repository/memory"
	"github.com/r507/suguan-bot/internal/domain/models"
)

func TestSessionRepository_GetDialog_ReturnsNilForUnknownChat(t *testing.T) {
	repo := memory.NewSessionRepository()

	dialog, err := repo.GetDialog(context.Background(), 42)

	require.NoError(t, err)
	assert.Nil(t, dialog)
}

func TestSessionRepository_SetAndGetDialog(t *testing.T) {
	repo := memory.NewSessionRepository()
	ctx := context.Background()

	err := repo.SetDialog(ctx, 42, &models.ScheduleDialog{Step: models.StepAwaitingInput})
	require.NoError(t, err)

	dialog, err := repo.GetDialog(ctx, 42)
	require.NoError(t, err)
	require.IsType(t, &models.ScheduleDialog{}, dialog)
	assert.Equal(t, models.StepAwaitingInput, dialog.(*models.ScheduleDialog).Step)
}

func TestSessionRepository_SetDialog_ReplacesExisting(t *testing.T) {
	repo := memory.NewSessionRepository()
	ctx := context.Background()

	require.NoError(t, repo.SetDialog(ctx, 42, &models.ScheduleDialog{Step: models.StepAwaitingConfirmation}))
	require.NoError(t, repo.SetDialog(ctx, 42, &models.ConcernDialog{}))

	dialog, err := repo.GetDialog(ctx, 42)
	require.NoError(t, err)
	assert.IsType(t, &models.ConcernDialog{}, dialog)
}

func TestSessionRepository_ClearDialog(t *testing.T) {
	repo := memory.NewSessionRepository()
	ctx := context.Background()

	require.NoError(t, repo.SetDialog(ctx, 42, &models.ConcernDialog{}))
	require.NoError(t, repo.ClearDialog(ctx, 42))

	dialog, err := repo.GetDialog(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, dialog)
}

func TestSessionRepository_ClearDialog_UnknownChatIsNoop(t *testing.T) {
	repo := memory.NewSessionRepository()

	require.NoError(t, repo.ClearDialog(context.Background(), 42))
}

func TestSessionRepository_ChatsAreIndependent(t *testing.T) {
	repo := memory.NewSessionRepository()
	ctx := context.Background()

	require.NoError(t, repo.SetDialog(ctx, 1, &models.ScheduleDialog{Step: models.StepAwaitingInput}))
	require.NoError(t, repo.SetDialog(ctx, 2, &models.ConcernDialog{}))
	require.NoError(t, repo.ClearDialog(ctx, 1))

	dialog, err := repo.GetDialog(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, dialog)
}

func TestSessionRepository_ConcurrentAccess(t *testing.T) {
	repo := memory.NewSessionRepository()
	ctx := context.Background()

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		chatID := int64(i % 10)

		wg.Add(3)

		go func() {
			defer wg.Done()

			_ = repo.SetDialog(ctx, chatID, &models.ScheduleDialog{Step: models.StepAwaitingInput})
		}()

		go func() {
			defer wg.Done()

			_, _ = repo.GetDialog(ctx, chatID)
		}()

		go func() {
			defer wg.Done()

			_ = repo.ClearDialog(ctx, chatID)
		}()
	}

	wg.Wait()
}
