package cli

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"vestr-cli/internal/app"
	"vestr-cli/internal/config"
	"vestr-cli/internal/domain"
	"vestr-cli/internal/infra/api"
	"vestr-cli/internal/infra/memory"
	redisstore "vestr-cli/internal/infra/redis"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath string
	apiURL     string
	logLevel   string
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "vestr",
		Short:        "Terminal client for the Vestr financial adventure",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "backend API base URL (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	cmd.AddCommand(newLoginCmd(opts))
	cmd.AddCommand(newLogoutCmd(opts))
	cmd.AddCommand(newWhoamiCmd(opts))
	cmd.AddCommand(newOnboardCmd(opts))
	cmd.AddCommand(newExploreCmd(opts))
	cmd.AddCommand(newQuizCmd(opts))
	cmd.AddCommand(newProfileCmd(opts))
	cmd.AddCommand(newPlayCmd(opts))
	return cmd
}

// runtime is everything a command needs, built from config and flags.
type runtime struct {
	cfg    config.Config
	client *api.Client
	store  app.SessionStore
	rdb    *redis.Client
	shell  *app.Shell
	render *renderer
	prompt *prompter
	close  func()
}

// bootstrap loads config, installs the logger, and restores the saved session.
func bootstrap(cmd *cobra.Command, opts *options) (*runtime, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.apiURL != "" {
		cfg.API.URL = opts.apiURL
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	setupLogger(cmd, cfg.Log)

	client := api.NewClient(cfg.API.URL, api.WithTimeout(config.TTLDuration(cfg.API.Timeout, 0)))

	rt := &runtime{
		cfg:    cfg,
		client: client,
		render: newRenderer(cmd.OutOrStdout(), cfg.Display.Locale),
		prompt: newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		close:  func() {},
	}

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rt.rdb = rdb
		rt.store = redisstore.NewSessionStore(rdb, cfg.Redis.Profile, config.TTLDuration(cfg.Redis.TTL, 24*time.Hour))
		rt.close = func() { _ = rdb.Close() }
	} else {
		rt.store = memory.NewSessionStore()
	}

	var backend app.Backend = client
	if ttl := config.TTLDuration(cfg.Cache.TTL, 10*time.Minute); ttl > 0 {
		backend = cachedBackend{Backend: client, questions: rt.questionCache(client, ttl)}
	}

	rt.shell = app.NewShell(backend, rt.store)
	if err := rt.shell.Restore(commandContext(cmd)); err != nil {
		slog.Warn("could not restore session", "error", err)
	}
	slog.Debug("client ready", "api", client.BaseURL(), "redis", cfg.Redis.Addr != "")
	return rt, nil
}

// questionCache shares cached questions across runs when Redis is configured.
func (rt *runtime) questionCache(client *api.Client, ttl time.Duration) app.QuestionSource {
	if rt.rdb != nil {
		return redisstore.NewQuestionCache(rt.rdb, client, ttl)
	}
	return memory.NewQuestionCache(client, ttl)
}

// cachedBackend serves questions from a cache and everything else from the API.
type cachedBackend struct {
	app.Backend
	questions app.QuestionSource
}

func (b cachedBackend) Questions(ctx context.Context, scenarioID int) ([]domain.QuizQuestion, error) {
	return b.questions.Questions(ctx, scenarioID)
}

func setupLogger(cmd *cobra.Command, cfg config.LogConfig) {
	var level slog.Level
	_ = level.UnmarshalText([]byte(cfg.Level))
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), handlerOpts)
	} else {
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), handlerOpts)
	}
	slog.SetDefault(slog.New(handler))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// withRuntime adapts a runtime-aware function into a cobra RunE.
func withRuntime(opts *options, fn func(ctx context.Context, rt *runtime, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd, opts)
		if err != nil {
			return err
		}
		defer rt.close()
		return fn(commandContext(cmd), rt, args)
	}
}
