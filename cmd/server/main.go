// Package main is the entry point for the API server
//
//	@title			Tracker Studio API
//	@version		1.0
//	@description	Permission-aware tracking API: templates, trackers, entries, sharing and insights
//	@termsOfService	http://swagger.io/terms/
//
//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io
//
//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html
//
//	@host		localhost:8080
//	@BasePath	/api/v1
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in						header
//	@name					Authorization
//
//	@security			BearerAuth
//
//	@externalDocs.description	OpenAPI
//	@externalDocs.url			https://swagger.io/resources/open-api/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tracker-studio-api/internal/config"
	"tracker-studio-api/internal/db"
	"tracker-studio-api/internal/entstore"
	"tracker-studio-api/internal/esx"
	"tracker-studio-api/internal/httpx"
	"tracker-studio-api/internal/httpx/kit"
	"tracker-studio-api/internal/insights"
	"tracker-studio-api/internal/logx"
	"tracker-studio-api/internal/mqx"
	"tracker-studio-api/internal/perm"
	"tracker-studio-api/internal/redisx"
	"tracker-studio-api/internal/reminder"
	"tracker-studio-api/internal/server"
	"tracker-studio-api/internal/sharelink"
	"tracker-studio-api/internal/tracker"

	_ "tracker-studio-api/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Load config (env first; optional Apollo override)
	cfg, store, apClose, err := config.Load()
	if err != nil {
		panic(err)
	}
	if apClose != nil {
		defer apClose()
	}

	// Init global logger first
	logx.Init(cfg.Log.Level, cfg.Log.Format)

	mainLogger := logx.GetScope("main")

	mainLogger.Info("config loaded",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.Server.Addr),
		zap.String("log.level", cfg.Log.Level),
		zap.String("log.format", cfg.Log.Format),
	)

	// Open DB (Ent + pgx)
	client, closeDB, err := db.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Error("open db error", "err", err)
		panic(err)
	}
	defer closeDB()

	// Auto-migrate
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		mainLogger.Sugar().Error("auto migrate error", "err", err)
		panic(err)
	}

	// Optional deps: Redis, MQ, ES
	var (
		redisClose func()
		mqClose    func() error
	)
	rdb, rclose, err := redisx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("redis init failed", "err", err)
	} else {
		redisClose = rclose
		defer redisClose()
	}

	var publisher mqx.Publisher
	if cfg.MQ.URL != "" {
		if pub, err := mqx.NewRabbitPublisher(cfg.MQ.URL, "events"); err != nil {
			mainLogger.Sugar().Warn("mq init failed", "err", err)
		} else {
			publisher = pub
			mqClose = pub.Close
			defer func() {
				if mqClose != nil {
					_ = mqClose()
				}
			}()
		}
	}

	esClient, esClose, err := esx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("es init failed", "err", err)
	} else {
		defer esClose()
	}

	// Domain wiring: ent-backed stores, resolver, services
	stores := entstore.New(client)
	resolver := perm.NewResolver(stores.Entitlements, stores.Groups)

	var cache insights.Cache
	if rdb != nil {
		cache = insights.NewRedisCache(rdb)
	} else {
		cache = insights.NewMemoryCache()
	}
	insightSvc := insights.NewService(resolver, stores.Trackers, stores.Entries, cache, 5*time.Minute)

	trackerSvc := tracker.NewService(tracker.Deps{
		Resolver:     resolver,
		Templates:    stores.Templates,
		Trackers:     stores.Trackers,
		Entries:      stores.Entries,
		Grants:       stores.Grants,
		Observations: stores.Observations,
		Overlays:     stores.Overlays,
		Insights:     insightSvc,
		Events:       publisher,
	})

	reminderSvc := reminder.NewService(stores.Reminders, stores.Trackers)
	linkSvc := sharelink.NewService(stores.ShareLinks, stores.Templates, trackerSvc)

	// Reminder sweep loop, stopped on shutdown
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	job := &reminder.Job{
		Store:    stores.Reminders,
		Trackers: stores.Trackers,
		Eval: reminder.Evaluator{
			Entries: stores.Entries,
			Window: reminder.Window{
				QuietStartMin: cfg.Reminder.QuietStartMin,
				QuietEndMin:   cfg.Reminder.QuietEndMin,
				ToleranceMin:  cfg.Reminder.ToleranceMin,
			},
		},
		Events:    publisher,
		MaxPerDay: cfg.Reminder.MaxPerDay,
	}
	go job.Run(sweepCtx, time.Duration(cfg.Reminder.SweepSec)*time.Second)

	// Fiber app and routes
	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	httpx.RegisterCommonMiddlewares(app)
	httpx.Register(app, &httpx.Deps{
		Cfg:       cfg,
		Accounts:  stores.Users,
		Groups:    stores.Groups,
		Trackers:  trackerSvc,
		Insights:  insightSvc,
		Reminders: reminderSvc,
		Links:     linkSvc,
		ES:        esClient,
		RDB:       rdb,
	})

	// Watch for dynamic config changes (Apollo)
	// Validators: rollback strategy for invalid config
	store.AddValidator(func(newCfg *config.Config, changed map[string]bool) error {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			if newCfg.PG.MaxIdleConns > newCfg.PG.MaxOpenConns {
				return fmt.Errorf("PG_MAX_IDLE cannot exceed PG_MAX_OPEN")
			}
		}
		return nil
	})

	store.Watch(func(newCfg *config.Config, changed map[string]bool) {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			db.UpdatePool(newCfg.PG.MaxOpenConns, newCfg.PG.MaxIdleConns)
			mainLogger.Info("db pool updated",
				zap.Int("max_open", newCfg.PG.MaxOpenConns),
				zap.Int("max_idle", newCfg.PG.MaxIdleConns),
			)
		}
		if changed["pg.url"] {
			mainLogger.Warn("pg.url changed; restart required to reconnect")
		}
		if changed["server.addr"] {
			mainLogger.Warn("server.addr changed; restart required to take effect",
				zap.String("addr", newCfg.Server.Addr),
			)
		}
		if changed["log.level"] || changed["log.format"] {
			logx.Init(newCfg.Log.Level, newCfg.Log.Format)
			mainLogger.Info("logger reconfigured",
				zap.String("level", newCfg.Log.Level),
				zap.String("format", newCfg.Log.Format),
			)
		}
	})

	// Graceful shutdown
	go func() {
		ln, err := server.GetListener(cfg.Server.Addr)
		if err != nil {
			mainLogger.Sugar().Errorf("listener error: %v", err)
			return
		}
		if err := app.Listener(ln); err != nil {
			mainLogger.Sugar().Infof("fiber exit: %v", err)
		}
	}()
	mainLogger.Sugar().Infof("server started on %s", cfg.Server.Addr)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	mainLogger.Sugar().Info("shutting down...")
	stopSweep()
	_ = app.Shutdown()
}
