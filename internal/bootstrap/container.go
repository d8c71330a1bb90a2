package bootstrap

import (
	"log"
	"math/rand"
	"time"

	"keelie-chatbot-be/internal/config"
	"keelie-chatbot-be/internal/controller"
	"keelie-chatbot-be/internal/pkg/logger"
	"keelie-chatbot-be/internal/pkg/mailer"
	"keelie-chatbot-be/internal/repository"
	"keelie-chatbot-be/internal/repository/memory"
	"keelie-chatbot-be/internal/repository/redisrepo"
	"keelie-chatbot-be/internal/service"
	"keelie-chatbot-be/internal/websocket"
	"keelie-chatbot-be/pkg/catalog"
	"keelie-chatbot-be/pkg/database"
	"keelie-chatbot-be/pkg/dialogue/faq"
	"keelie-chatbot-be/pkg/dialogue/frustration"
	"keelie-chatbot-be/pkg/dialogue/intent"
	"keelie-chatbot-be/pkg/dialogue/reply"
	"keelie-chatbot-be/pkg/dialogue/stock"
	"keelie-chatbot-be/pkg/dialogue/topic"

	pktNats "keelie-chatbot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

const escalationTopic = "CHAT_ESCALATION"

type Container struct {
	// Controllers
	ChatController  controller.IChatController
	AdminController controller.IAdminController

	// Background Services (Exposed for main.go to run)
	NotifierService service.INotifierService

	// WebSockets
	ChatWsHandler *websocket.ChatHandler
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	escalationMailer := mailer.NewEscalationMailer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.Bot.EscalationEmailTo,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS (optional fan-out for escalations)
	var natsPub *pktNats.Publisher
	if cfg.App.NatsEnabled {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		}
	}

	// Session storage
	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	var sessionRepo repository.ISessionRepository
	if cfg.Session.Store == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		sessionRepo = redisrepo.NewSessionRepository(rdb, ttl)
		log.Println("[INFO] Using Session Store: REDIS")
	} else {
		sessionRepo = memory.NewSessionRepository(ttl)
		log.Println("[INFO] Using Session Store: MEMORY")
	}

	// Catalog source
	var provider catalog.Provider
	if cfg.Catalog.Source == "postgres" {
		gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Printf("[WARN] Unable to connect to GORM DB, catalog degraded: %v", err)
		} else {
			if cfg.App.Environment != "production" {
				if err := catalog.Migrate(gormDB); err != nil {
					log.Printf("[WARN] Failed to migrate products table: %v", err)
				}
			}
			provider = catalog.NewGormProvider(gormDB)
			log.Println("[INFO] Using Catalog Source: POSTGRES")
		}
	} else {
		provider = catalog.NewJSONProvider(cfg.Catalog.JSONPath)
		log.Printf("[INFO] Using Catalog Source: JSON (%s)", cfg.Catalog.JSONPath)
	}

	// 3. Dialogue surface
	texts := reply.NewTexts(
		cfg.Bot.CompanyName,
		cfg.Bot.BotName,
		cfg.Bot.SupportContactURL,
		cfg.Bot.MinOrderFirst,
		cfg.Bot.MinOrderRepeat,
	)
	selector := reply.RandomSelector(rand.New(rand.NewSource(time.Now().UnixNano())))

	// 4. Services
	escalationPublisher := service.NewEscalationPublisher(escalationTopic, pubSub)
	notifierService := service.NewNotifierService(pubSub, escalationTopic, escalationMailer, natsPub)

	chatService := service.NewChatService(
		sessionRepo,
		provider,
		texts,
		topic.NewSet(texts, topic.DefaultCollections()),
		frustration.NewMonitor(nil),
		intent.NewScorer(intent.DefaultIntents(texts), selector),
		faq.NewMatcher(faq.DefaultEntries(cfg.Bot.CompanyName)),
		stock.NewResolver(texts),
		escalationPublisher,
		sysLogger,
	)

	// WebSocket transport
	wsLogger := logger.NewIsolatedLogger("logs/chat_ws.log")
	wsHandler := websocket.NewChatHandler(
		chatService,
		websocket.NewRandomDelay(time.Now().UnixNano()),
		wsLogger,
	)

	// 5. Controllers
	return &Container{
		ChatController:  controller.NewChatController(chatService, texts),
		AdminController: controller.NewAdminController(sysLogger),
		NotifierService: notifierService,
		ChatWsHandler:   wsHandler,
	}
}
