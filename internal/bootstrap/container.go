package bootstrap

import (
	"context"
	"fmt"

	"teamsync-be/internal/config"
	"teamsync-be/internal/controller"
	"teamsync-be/internal/metrics"
	"teamsync-be/internal/pkg/logger"
	"teamsync-be/internal/pkg/mailer"
	"teamsync-be/internal/pkg/serverutils"
	"teamsync-be/internal/repository/contract"
	"teamsync-be/internal/repository/memory"
	"teamsync-be/internal/repository/redisstore"
	"teamsync-be/internal/repository/unitofwork"
	"teamsync-be/internal/service"
	"teamsync-be/pkg/llm"
	"teamsync-be/pkg/llm/factory"
	"teamsync-be/pkg/media"
	pktNats "teamsync-be/pkg/nats"
	"teamsync-be/pkg/token"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	AuthController     controller.IAuthController
	UserController     controller.IUserController
	ProjectController  controller.IProjectController
	TeamController     controller.ITeamController
	ChatController     controller.IChatController
	LearningController controller.ILearningController

	// Background
	MailDispatcher *service.MailDispatcher

	closers []func() error
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	c := &Container{Logger: sysLogger}

	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	tokens, err := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry)
	if err != nil {
		return nil, fmt.Errorf("init token manager: %w", err)
	}

	verifications, err := c.newVerificationStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// 2. Event bus for outgoing mail
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	c.closers = append(c.closers, pubSub.Close)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)
	mailQueue := service.NewMailQueue(pubSub, cfg.Events.MailTopic)
	c.MailDispatcher = service.NewMailDispatcher(pubSub, cfg.Events.MailTopic, emailService, sysLogger)

	// 3. Domain events (optional)
	var publisher service.EventPublisher
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(ctx, cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "NATS unavailable, domain events disabled", map[string]interface{}{"error": err.Error()})
		} else {
			publisher = natsPub
			c.closers = append(c.closers, func() error { natsPub.Close(); return nil })
		}
	}

	// 4. External adapters
	mediaHost, err := newMediaHost(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmProvider, err := factory.NewLLMProvider(factory.Config{
		Provider: cfg.Ai.Provider,
		Model:    cfg.Ai.Model,
		BaseURL:  cfg.Ai.BaseURL,
		APIKey:   cfg.Ai.APIKey,
		Timeout:  cfg.Ai.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("init llm provider: %w", err)
	}
	aiProvider := llm.NewInstrumented(llmProvider, metrics.AIObserver{})
	sysLogger.Info("BOOTSTRAP", "LLM provider ready", map[string]interface{}{
		"provider": cfg.Ai.Provider,
		"model":    cfg.Ai.Model,
	})

	// 5. Services
	authService := service.NewAuthService(uowFactory, verifications, tokens, mailQueue, publisher, sysLogger, cfg.Auth.BcryptCost)
	userService := service.NewUserService(uowFactory)
	projectService := service.NewProjectService(uowFactory, mediaHost, sysLogger)
	teamService := service.NewTeamService(uowFactory, aiProvider, publisher, sysLogger)
	chatService := service.NewChatService(uowFactory, aiProvider, sysLogger)
	learningService := service.NewLearningService(aiProvider, sysLogger)

	// 6. Controllers
	guard := serverutils.SessionGuard(tokens, userService, cfg.Auth.CookieName)
	c.AuthController = controller.NewAuthController(authService, controller.SessionCookie{
		Name:   cfg.Auth.CookieName,
		Days:   cfg.Auth.CookieDays,
		Secure: cfg.IsProduction(),
	})
	c.UserController = controller.NewUserController(userService, guard)
	c.ProjectController = controller.NewProjectController(projectService, guard)
	c.TeamController = controller.NewTeamController(teamService, guard)
	c.ChatController = controller.NewChatController(chatService, guard)
	c.LearningController = controller.NewLearningController(learningService, guard)

	return c, nil
}

// RegisterRoutes mounts every controller on r.
func (c *Container) RegisterRoutes(r fiber.Router) {
	c.AuthController.RegisterRoutes(r)
	c.UserController.RegisterRoutes(r)
	c.ProjectController.RegisterRoutes(r)
	c.TeamController.RegisterRoutes(r)
	c.ChatController.RegisterRoutes(r)
	c.LearningController.RegisterRoutes(r)
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			c.Logger.Warn("BOOTSTRAP", "Failed to release resource", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (c *Container) newVerificationStore(ctx context.Context, cfg *config.Config) (contract.VerificationRepository, error) {
	if cfg.Verification.Driver == "memory" || cfg.App.RedisURL == "" {
		c.Logger.Info("BOOTSTRAP", "Using in-memory verification store", nil)
		return memory.NewVerificationRepository(cfg.Auth.OTPTTL), nil
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		c.Logger.Warn("BOOTSTRAP", "Failed to parse Redis URL, using it as address", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.closers = append(c.closers, rdb.Close)

	return redisstore.NewVerificationRepository(rdb, cfg.Auth.OTPTTL), nil
}

func newMediaHost(ctx context.Context, cfg *config.Config) (media.Host, error) {
	switch cfg.Media.Driver {
	case "s3":
		host, err := media.NewS3Host(ctx, media.S3Config{
			Endpoint:      cfg.Media.S3Endpoint,
			Region:        cfg.Media.S3Region,
			Bucket:        cfg.Media.S3Bucket,
			AccessKey:     cfg.Media.S3AccessKey,
			SecretKey:     cfg.Media.S3SecretKey,
			PublicBaseURL: cfg.Media.S3PublicBaseURL,
			Folder:        media.ProjectFolder,
		})
		if err != nil {
			return nil, fmt.Errorf("init s3 media host: %w", err)
		}
		return host, nil
	case "local":
		host, err := media.NewLocalHost(cfg.Media.LocalDir, cfg.Media.LocalPublicURL)
		if err != nil {
			return nil, fmt.Errorf("init local media host: %w", err)
		}
		return host, nil
	default:
		return nil, fmt.Errorf("unknown media driver %q", cfg.Media.Driver)
	}
}
