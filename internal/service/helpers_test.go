package service

import (
	"context"

	"noteswise-be/internal/repository/memory"
	"noteswise-be/pkg/summarizer"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const testTopic = "SUMMARIZE_NOTE_CONTENT"

type stubProvider struct {
	out string
	err error
}

func (p *stubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return p.out, p.err
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type testEnv struct {
	factory    *memory.RepositoryFactory
	pubSub     *gochannel.GoChannel
	summarizer *summarizer.Service

	categories ICategoryService
	notes      INoteService
	flashcards IFlashcardService
}

func newTestEnv() *testEnv {
	factory := memory.NewRepositoryFactory()
	// Buffered so a publish inside a service call never waits on the
	// test goroutine draining the subscription.
	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 16}, watermill.NopLogger{})
	summarizerService := summarizer.NewService(&stubProvider{out: "stub summary"})
	publisherService := NewPublisherService(testTopic, pubSub)

	return &testEnv{
		factory:    factory,
		pubSub:     pubSub,
		summarizer: summarizerService,
		categories: NewCategoryService(factory),
		notes:      NewNoteService(factory, summarizerService, publisherService),
		flashcards: NewFlashcardService(factory),
	}
}
