package deferred

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chatbot-service/internal/model"
)

type DBRepo interface {
	SaveMessage(ctx context.Context, message *model.Message) error
	TouchConversation(ctx context.Context, id string) error
}

type EventRelay interface {
	Publish(event model.NotificationEvent)
}

// Runner produces delayed assistant replies outside the request that asked
// for them. Tasks are best-effort: any failure is logged and the task ends
// without retry and without publishing, so a waiting subscriber gets no
// signal for that conversation.
type Runner struct {
	repository DBRepo
	relay      EventRelay
	logger     logger_lib.LoggerInterface
	delay      time.Duration

	wg sync.WaitGroup
}

func New(repository DBRepo, relay EventRelay, logger logger_lib.LoggerInterface, delay time.Duration) *Runner {
	return &Runner{
		repository: repository,
		relay:      relay,
		logger:     logger,
		delay:      delay,
	}
}

// ScheduleReply runs the delayed-reply task in a goroutine detached from
// the request context and returns immediately.
func (r *Runner) ScheduleReply(conversationID string) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(conversationID)
	}()
}

func (r *Runner) run(conversationID string) {
	time.Sleep(r.delay)

	ctx := context.Background()

	message := &model.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		Role:           model.RoleAssistant,
		Content:        model.DelayedReplyMessage,
		CreatedAt:      time.Now().UTC(),
	}

	if err := r.repository.SaveMessage(ctx, message); err != nil {
		r.logger.Error(fmt.Sprintf("failed to save delayed reply for conversation %s: %v", conversationID, err))
		return
	}

	if err := r.repository.TouchConversation(ctx, conversationID); err != nil {
		r.logger.Error(fmt.Sprintf("failed to touch conversation %s: %v", conversationID, err))
		return
	}

	r.relay.Publish(model.NotificationEvent{
		ConversationID: conversationID,
		Status:         model.EventStatusDone,
		Message:        model.DelayedReplyMessage,
		Timestamp:      time.Now().UTC(),
	})
}

// Wait blocks until all scheduled tasks have finished; used at shutdown.
func (r *Runner) Wait() {
	r.wg.Wait()
}
