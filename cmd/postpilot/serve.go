package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/auth"
	"github.com/postpilot/postpilot/internal/blog"
	"github.com/postpilot/postpilot/internal/config"
	"github.com/postpilot/postpilot/internal/content"
	"github.com/postpilot/postpilot/internal/db"
	"github.com/postpilot/postpilot/internal/jobsource"
	"github.com/postpilot/postpilot/internal/llm"
	"github.com/postpilot/postpilot/internal/logging"
	"github.com/postpilot/postpilot/internal/scheduler"
	"github.com/postpilot/postpilot/internal/server"
	"github.com/postpilot/postpilot/internal/server/ratelimit"
	"github.com/postpilot/postpilot/internal/session"
)

var (
	servePort    int
	serveMigrate bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server for the job board, the marketing tools and the blog.

Configuration comes from the environment or a .env file. DATABASE_URL,
REDIS_URL, JOB_FEED_URL and GEMINI_API_KEY are optional; without them the
server runs on the sample board with in-memory sessions, no accounts and
template-generated posts.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "Apply database migrations before starting")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if serveMigrate {
			applied, err := database.Migrate(ctx)
			if err != nil {
				return err
			}
			logger.Info("migrations applied", zap.Strings("migrations", applied))
		}
	}

	catalog := jobsource.NewCatalog(buildSource(database, cfg.JobFeedURL, logger), logger)
	if err := catalog.Refresh(ctx); err != nil {
		return err
	}

	sched, err := scheduler.New(cfg.RefreshSchedule, logger)
	if err != nil {
		return err
	}
	sched.Add("refresh-jobs", catalog.Refresh)
	sched.Start(ctx)
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		sched.Stop(stopCtx)
	}()

	store, err := sessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	authSvc, tokens, err := authService(cfg, database, logger)
	if err != nil {
		return err
	}

	posts, closePosts, err := postGenerator(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closePosts()

	blogCatalog, err := blog.Load()
	if err != nil {
		return err
	}

	limiter := ratelimit.NewLimiter(ratelimit.LoadConfig())

	srvCfg := server.Config{
		Addr:            cfg.Addr(),
		CORSOrigins:     cfg.CORSOrigins,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Catalog:         catalog,
		Boards:          session.NewManager(store, catalog, logger),
		Auth:            authSvc,
		Posts:           posts,
		Blog:            blogCatalog,
		Countdown:       sched.Countdown(),
		Limiter:         limiter,
		Logger:          logger,
	}
	if tokens != nil {
		srvCfg.Tokens = tokens
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Run(ctx)
}

func sessionStore(ctx context.Context, cfg *config.ServerConfig) (session.Store, error) {
	opts := session.DefaultOptions()
	opts.TTL = cfg.SessionTTL

	if cfg.RedisURL == "" {
		return session.NewMemoryStore(opts), nil
	}
	client, err := session.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	return session.NewRedisStore(client, opts), nil
}

// authService enables accounts when a database is configured. Tokens are
// validated whenever JWT_SECRET is set, so premium access works against a
// shared secret even on a read-only deployment.
func authService(cfg *config.ServerConfig, database *db.DB, logger *zap.Logger) (*auth.Service, *auth.TokenService, error) {
	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		if database != nil {
			return nil, nil, err
		}
		logger.Warn("JWT_SECRET not set, accounts disabled")
		return auth.NewService(nil, nil, logger), nil, nil
	}
	tokens := auth.NewTokenService(jwtCfg)

	if database == nil {
		logger.Warn("no database configured, accounts disabled")
		return auth.NewService(nil, tokens, logger), tokens, nil
	}

	pwCfg, err := config.NewPasswordConfig()
	if err != nil {
		return nil, nil, err
	}
	return auth.NewService(auth.NewUserService(database, pwCfg), tokens, logger), tokens, nil
}

// postGenerator uses Gemini when an API key is set, else templates.
func postGenerator(ctx context.Context, cfg *config.ServerConfig, logger *zap.Logger) (content.LinkedInPostService, func(), error) {
	if cfg.GeminiAPIKey == "" {
		return &content.TemplateGenerator{ImageBaseURL: cfg.ImageBaseURL}, func() {}, nil
	}
	llmCfg, err := llm.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	client, err := llm.NewClient(ctx, llmCfg, cfg.GeminiAPIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return content.NewLLMGenerator(client, logger, cfg.ImageBaseURL), func() { _ = client.Close() }, nil
}
