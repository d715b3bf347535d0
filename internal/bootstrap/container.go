package bootstrap

import (
	"log"

	"noteswise-be/internal/config"
	"noteswise-be/internal/controller"
	"noteswise-be/internal/pkg/logger"
	"noteswise-be/internal/pkg/serverutils"
	"noteswise-be/internal/repository/memory"
	"noteswise-be/internal/repository/unitofwork"
	"noteswise-be/internal/service"
	"noteswise-be/pkg/summarizer/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CategoryController  controller.ICategoryController
	NoteController      controller.INoteController
	FlashcardController controller.IFlashcardController

	// Auth middleware shared by all protected routes
	AuthMiddleware fiber.Handler

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var uowFactory unitofwork.RepositoryFactory
	if cfg.App.StoreDriver == "memory" {
		uowFactory = memory.NewRepositoryFactory()
		log.Printf("[INFO] Using Store Driver: MEMORY")
	} else {
		uowFactory = unitofwork.NewRepositoryFactory(db)
		log.Printf("[INFO] Using Store Driver: POSTGRES")
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Summarizer
	summarizerService := factory.NewSummarizer(cfg.Keys.GoogleGemini, cfg.Keys.OpenAI)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.SummarizeTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.SummarizeTopic,
		uowFactory,
		summarizerService,
		sysLogger,
	)

	categoryService := service.NewCategoryService(uowFactory)
	noteService := service.NewNoteService(uowFactory, summarizerService, publisherService)
	flashcardService := service.NewFlashcardService(uowFactory)

	// 5. Auth
	tokenValidator := serverutils.NewTokenValidator(cfg.JWT, sysLogger)

	// 6. Controllers
	return &Container{
		CategoryController:  controller.NewCategoryController(categoryService),
		NoteController:      controller.NewNoteController(noteService),
		FlashcardController: controller.NewFlashcardController(flashcardService),

		AuthMiddleware: tokenValidator.Middleware(),

		ConsumerService: consumerService,
	}
}
