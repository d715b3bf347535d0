package service

import (
	"context"
	"encoding/json"

	"noteswise-be/internal/dto"
	"noteswise-be/internal/pkg/logger"
	"noteswise-be/internal/repository/unitofwork"
	"noteswise-be/pkg/summarizer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService regenerates note summaries in the background. Note
// updates that change content publish a SummarizeNoteMessage; this
// consumer reloads the note and persists a fresh summary.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	summarizer *summarizer.Service
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	summarizerService *summarizer.Service,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		summarizer: summarizerService,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.SummarizeNoteMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "Failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads are not retriable
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOneById(ctx, payload.NoteId)
	if err != nil {
		cs.logger.Error("consumer", "Failed to load note", map[string]interface{}{
			"note_id": payload.NoteId.String(),
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}
	if note == nil {
		// Deleted between publish and consume. Nothing to refresh.
		msg.Ack()
		return
	}

	note.Summary = cs.summarizer.GenerateSummary(ctx, note.Content)

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		cs.logger.Error("consumer", "Failed to store refreshed summary", map[string]interface{}{
			"note_id": note.Id.String(),
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("consumer", "Note summary refreshed", map[string]interface{}{
		"note_id": note.Id.String(),
	})
	msg.Ack()
}
