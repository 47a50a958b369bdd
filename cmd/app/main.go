package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	_ "github.com/Porismic/JupiterBot/docs"
	"github.com/Porismic/JupiterBot/internal/app"
	rcache "github.com/Porismic/JupiterBot/internal/cache/redis"
	"github.com/Porismic/JupiterBot/internal/common/cache"
	"github.com/Porismic/JupiterBot/internal/common/clock"
	"github.com/Porismic/JupiterBot/internal/common/config"
	"github.com/Porismic/JupiterBot/internal/common/logger"
	gsvc "github.com/Porismic/JupiterBot/internal/features/giveaway/service"
	apphttp "github.com/Porismic/JupiterBot/internal/http"
	"github.com/Porismic/JupiterBot/internal/platform/discord"
	"github.com/Porismic/JupiterBot/internal/platform/metrics"
	"github.com/Porismic/JupiterBot/internal/platform/postgres"
	"github.com/Porismic/JupiterBot/internal/platform/redis"
	"github.com/Porismic/JupiterBot/internal/platform/store"
	"github.com/Porismic/JupiterBot/internal/workers"
)

// @title           Jupiter Bot API
// @version         1.0
// @description     Staff API for the Jupiter community bot: giveaways, premium slots, auctions and member stats.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey StaffToken
// @in header
// @name X-Staff-Token
// @description Shared staff secret

// @tag.name giveaways
// @tag.description Giveaway lifecycle, requirements, draws and claims

// @tag.name slots
// @tag.description Premium auction slots

// @tag.name auctions
// @tag.description Auction posts

// @tag.name stats
// @tag.description Member activity and levels

// @tag.name health
// @tag.description Probes

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New("jupiter", cfg.Debug)

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := runMigrate(cfg, os.Args[2:], log); err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Jupiter stopped with error")
	}
	log.Info().Msg("Jupiter exited")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	log.Info().Bool("debug", cfg.Debug).Str("store", cfg.Store.Backend).Msg("Starting Jupiter")

	var rdb *redis.Client
	if cfg.Store.Backend == "redis" || cfg.EventsEnabled() {
		c, err := redis.Open(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		rdb = c
		log.Info().Str("addr", cfg.RedisAddr()).Msg("Redis connection established")
	}

	st, err := openStore(ctx, cfg, rdb, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close store")
		}
	}()
	if rdb != nil && cfg.Store.Backend != "redis" {
		defer rdb.Close()
	}

	m := metrics.New()
	opts := app.Options{
		Store:         st,
		Clock:         clock.System{},
		SelectionMode: gsvc.SelectionMode(cfg.Giveaway.SelectionMode),
		BoosterTiers:  cfg.Slots.BoosterTiers,
		LevelTiers:    cfg.Slots.LevelTiers,
		Metrics:       m,
		Logger:        log,
	}

	var (
		bot       *discord.Bot
		directory *cache.Directory
	)
	if cfg.DiscordEnabled() {
		bot, err = discord.New(discord.Config{Token: cfg.Discord.Token, GuildID: cfg.Discord.GuildID}, logger.Component(log, "discord"))
		if err != nil {
			return err
		}
		var memberCache cache.MemberCache = cache.NewMemory(cfg.Discord.MemberCacheTTL, opts.Clock)
		if rdb != nil {
			memberCache = rcache.NewMemberCache(rdb, cfg.Store.KeyPrefix, cfg.Discord.MemberCacheTTL)
		}
		directory = cache.NewDirectory(bot.Directory(), memberCache, logger.Component(log, "member_cache"))
		opts.Directory = directory
		opts.Announcer = bot.Announcer()
	} else {
		log.Warn().Msg("Discord token or guild id not set, running without the gateway")
	}

	core := app.NewCore(opts)

	if bot != nil {
		if err := bot.Start(discord.NewHandlers(core.Dispatcher, directory, cfg.Discord.GuildID, logger.Component(log, "discord"))); err != nil {
			return err
		}
		defer bot.Close()
	}

	scheduler := workers.NewScheduler(core.Dispatcher, logger.Component(log, "scheduler"), workers.MaintenanceJobs(workers.MaintenanceIntervals{
		Sweep:        cfg.Giveaway.SweepInterval,
		Cleanup:      cfg.Giveaway.CleanupInterval,
		Retention:    cfg.Giveaway.Retention,
		DailyReset:   cfg.Stats.DailyReset,
		WeeklyReset:  cfg.Stats.WeeklyReset,
		MonthlyReset: cfg.Stats.MonthlyReset,
	})...)

	router := apphttp.NewRouter(apphttp.Options{
		Dispatcher: core.Dispatcher,
		Store:      st,
		Origin:     cfg.Server.Origin,
		StaffToken: cfg.Server.StaffToken,
		Retention:  cfg.Giveaway.Retention,
		Metrics:    m,
		Logger:     logger.Component(log, "http"),
		Debug:      cfg.Debug,
	})
	if cfg.Server.StaffToken == "" {
		log.Warn().Msg("STAFF_TOKEN is empty, the staff API rejects every request")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		scheduler.Start(gctx)
		<-gctx.Done()
		scheduler.Stop()
		return nil
	})
	if cfg.EventsEnabled() {
		worker := workers.NewEventStreamWorker(rdb, core.Dispatcher, workers.StreamConfig{
			Stream:   cfg.Events.Stream,
			Group:    cfg.Events.Group,
			Consumer: cfg.Events.Consumer,
		}, logger.Component(log, "events"))
		g.Go(func() error { return worker.Run(gctx) })
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openStore(ctx context.Context, cfg *config.Config, rdb *redis.Client, log zerolog.Logger) (store.Store, error) {
	switch cfg.Store.Backend {
	case "redis":
		return redis.NewStore(rdb, cfg.Store.KeyPrefix), nil
	case "postgres":
		if cfg.Postgres.AutoMigrate {
			if err := postgres.MigrateUp(cfg.Postgres.DatabaseURL, log); err != nil {
				return nil, err
			}
		}
		db, err := postgres.Open(ctx, cfg.Postgres.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		return postgres.NewStore(db), nil
	default:
		log.Warn().Msg("Using the in-memory store, data is lost on restart")
		return store.NewMemory(), nil
	}
}

// runMigrate handles "migrate up", "migrate down [steps]" and "migrate status".
func runMigrate(cfg *config.Config, args []string, log zerolog.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: migrate up|down [steps]|status")
	}
	switch args[0] {
	case "up":
		return postgres.MigrateUp(cfg.Postgres.DatabaseURL, log)
	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid step count %q", args[1])
			}
			steps = n
		}
		return postgres.MigrateDown(cfg.Postgres.DatabaseURL, steps, log)
	case "status":
		version, dirty, ok, err := postgres.MigrateStatus(cfg.Postgres.DatabaseURL)
		if err != nil {
			return err
		}
		if !ok {
			log.Info().Msg("No migrations applied")
			return nil
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Migration status")
		return nil
	}
	return fmt.Errorf("unknown migrate command %q", args[0])
}
