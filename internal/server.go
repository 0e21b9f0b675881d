package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/gymsphere/internal/auth"
	"github.com/2beens/gymsphere/internal/catalog"
	"github.com/2beens/gymsphere/internal/config"
	"github.com/2beens/gymsphere/internal/dashboard"
	"github.com/2beens/gymsphere/internal/db"
	"github.com/2beens/gymsphere/internal/lifestyle"
	"github.com/2beens/gymsphere/internal/middleware"
	"github.com/2beens/gymsphere/internal/notifications"
	"github.com/2beens/gymsphere/internal/onboarding"
	"github.com/2beens/gymsphere/internal/plans"
	"github.com/2beens/gymsphere/internal/shop"
	"github.com/2beens/gymsphere/internal/streaks"
	"github.com/2beens/gymsphere/internal/telemetry/metrics"
	"github.com/2beens/gymsphere/internal/telemetry/tracing"
	"github.com/2beens/gymsphere/internal/tracking"
	"github.com/2beens/gymsphere/internal/users"
	"github.com/2beens/gymsphere/internal/workout"
	"github.com/2beens/gymsphere/pkg"
)

const (
	serviceName            = "GymSphere"
	sessionsCleanupPeriod  = 8 * time.Hour
	shutdownMaxWaitSeconds = 15
	maxRequestBodyBytes    = 1 << 20
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(serviceName, pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "gymsphere", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymsphere-backend", rdb)
	if err != nil {
		return nil, err
	}

	authService := auth.NewAuthService(auth.DefaultTTL, rdb)
	go runSessionsCleanup(ctx, authService)

	return &Server{
		config:       params.Config,
		dbPool:       dbPool,
		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func runSessionsCleanup(ctx context.Context, authService *auth.Service) {
	ticker := time.NewTicker(sessionsCleanupPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			authService.ScanAndClean(ctx)
		}
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymsphere-router"))

	r.HandleFunc("/_status", handleStatus).Methods("GET").Name("status")
	r.HandleFunc("/_health", handleHealth).Methods("GET").Name("health")

	usersRepo := users.NewRepo(s.dbPool)
	plansRepo := plans.NewRepo(s.dbPool)
	catalogRepo := catalog.NewRepo(s.dbPool)
	notificationsRepo := notifications.NewRepo(s.dbPool)
	lifestyleRepo := lifestyle.NewRepo(s.dbPool)

	catalogCache := catalog.NewCache(s.config.CatalogCacheSizeMB)
	exerciseCatalog := catalog.NewExerciseCatalog(catalogRepo, catalogCache, s.config.CatalogCacheTTL.Duration)
	productCatalog := catalog.NewProductCatalog(catalogRepo, catalogCache, s.config.CatalogCacheTTL.Duration)

	selector := workout.NewSelector(exerciseCatalog)
	generator := plans.NewGenerator(selector, plansRepo, s.metricsManager)
	streaksService := streaks.NewService(plansRepo, usersRepo)
	engine := notifications.NewEngine(notificationsRepo, plansRepo, streaksService, s.metricsManager)

	// login / register, rate limited per client address
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	authRouter := r.PathPrefix("/a").Subrouter()
	authRouter.Use(middleware.RateLimit(reqRateLimiter, "auth", s.config.AuthRateLimitAllowedPerMin, s.metricsManager))
	authHandler := auth.NewHandler(usersRepo, s.authService, s.metricsManager)
	authHandler.SetupRoutes(authRouter)

	r.HandleFunc("/api/intro", authHandler.HandleIntro).Methods("GET", "OPTIONS").Name("intro")

	catalog.NewHandler(exerciseCatalog, productCatalog).SetupRoutes(r)
	tracking.NewHandler(usersRepo, generator, plansRepo, engine, streaksService, s.metricsManager).SetupRoutes(r)
	notifications.NewHandler(notificationsRepo).SetupRoutes(r)
	onboarding.NewHandler(usersRepo, generator).SetupRoutes(r)
	shop.NewHandler(usersRepo, shop.NewRecommender(productCatalog)).SetupRoutes(r)
	lifestyle.NewHandler(lifestyleRepo, plansRepo).SetupRoutes(r)
	dashboard.NewHandler(
		usersRepo,
		dashboard.NewService(plansRepo, selector, engine, lifestyleRepo),
	).SetupRoutes(r)

	// all the rest - unhandled paths
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest(maxRequestBodyBytes))

	return r
}

func handleStatus(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONOK(w, map[string]string{"status": "ok", "service": serviceName})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONOK(w, map[string]string{"status": "healthy"})
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		// CORS wraps the router so preflight requests never reach the auth check
		Handler:      middleware.Cors(s.config.AllowedOrigins)(router),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * shutdownMaxWaitSeconds
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
