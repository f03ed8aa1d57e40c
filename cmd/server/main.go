package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"restaurant_dashboard/internal/config"
	"restaurant_dashboard/internal/database"
	"restaurant_dashboard/internal/middleware"
	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/internal/repositories"
	"restaurant_dashboard/internal/router"
	"restaurant_dashboard/internal/scheduler"
	"restaurant_dashboard/internal/services"
	"restaurant_dashboard/pkg/utils"
)

func main() {
	if err := run(); err != nil {
		utils.LogError(err, "Server exited with error")
		os.Exit(1)
	}
}

func run() error {
	// Logger first so config loading can report problems.
	utils.InitLogger(utils.Getenv("LOG_LEVEL", "info"), utils.GetenvBool("LOG_PRETTY", false))

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	utils.InitLogger(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			utils.LogWarn("Redis not reachable at startup, cache will fall through", map[string]interface{}{"addr": cfg.Redis.Addr, "error": err.Error()})
		}
	}

	source, cached := buildRecordSource(cfg, rdb)
	tokens := repositories.NewMemoryTokenStore()
	if rdb != nil {
		tokens = repositories.NewRedisTokenStore(rdb)
	}

	var db *sql.DB
	if cfg.Database.Enabled() {
		db, err = database.InitDB(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := database.EnsureSchema(ctx, db); err != nil {
			return err
		}
		if err := database.ApplySchemaFile(ctx, db, utils.Getenv("DB_SCHEMA_PATH", "")); err != nil {
			return err
		}
	}
	users, err := buildUserRepository(ctx, db)
	if err != nil {
		return err
	}

	issuer := utils.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	authService := services.NewAuthService(users, tokens, issuer)
	userService := services.NewUserService(users, models.DefaultSeedUsers, bcrypt.DefaultCost)
	dashboardService := services.NewDashboardService(source, services.DashboardOptions{
		Location:          cfg.Location(),
		CriticalThreshold: cfg.LowStockCriticalThreshold,
	})

	if cfg.RefreshInterval > 0 {
		var refresher scheduler.TableRefresher
		if cached != nil {
			refresher = cached
		}
		refreshScheduler, err := scheduler.NewRefreshScheduler(cfg.RefreshInterval, cfg.Location(), refresher, dashboardService)
		if err != nil {
			return err
		}
		refreshScheduler.Start()
		defer func() {
			if err := refreshScheduler.Shutdown(); err != nil {
				utils.LogError(err, "Refresh scheduler shutdown failed")
			}
		}()
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(utils.GinLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	router.Setup(engine, router.Services{
		Auth:      authService,
		Users:     userService,
		Dashboard: dashboardService,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.LogInfo("Server starting", map[string]interface{}{
			"port":      cfg.Port,
			"airtable":  cfg.Airtable.Enabled(),
			"redis":     cfg.Redis.Enabled(),
			"postgres":  cfg.Database.Enabled(),
			"time_zone": cfg.Timezone,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	utils.LogInfo("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildRecordSource picks Airtable or the sample data, optionally behind the Redis cache.
// The cached source is returned separately so the scheduler can refresh it.
func buildRecordSource(cfg *config.Config, rdb *redis.Client) (repositories.RecordSource, *repositories.CachedRecordSource) {
	var source repositories.RecordSource
	if cfg.Airtable.Enabled() {
		source = repositories.NewAirtableRecordSource(cfg.Airtable, nil)
	} else {
		utils.LogWarn("Airtable credentials missing, serving sample data")
		source = repositories.NewMockRecordSource()
	}

	if rdb == nil {
		return source, nil
	}
	cached := repositories.NewCachedRecordSource(source, rdb, cfg.Redis.CacheTTL)
	return cached, cached
}

// buildUserRepository returns the Postgres store when db is set, seeding it when empty,
// and an in-memory store seeded with the default accounts otherwise.
func buildUserRepository(ctx context.Context, db *sql.DB) (repositories.UserRepository, error) {
	seed, err := services.BuildSeedUsers(models.DefaultSeedUsers, bcrypt.DefaultCost, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if db == nil {
		return repositories.NewMemoryUserRepository(seed), nil
	}

	users := repositories.NewPostgresUserRepository(db)
	existing, err := users.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		if err := users.ReplaceAll(ctx, seed); err != nil {
			return nil, err
		}
		utils.LogInfo("Seeded default users", map[string]interface{}{"count": len(seed)})
	}
	return users, nil
}
