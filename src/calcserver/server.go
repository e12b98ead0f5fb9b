package calcserver

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/onemorebsmith/rollercoin-calc/src/cache"
	"github.com/onemorebsmith/rollercoin-calc/src/common"
	"github.com/onemorebsmith/rollercoin-calc/src/league"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
	"github.com/onemorebsmith/rollercoin-calc/src/postgres"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Server answers earnings, league and simulation queries over json.
type Server struct {
	cfg       ServerConfig
	logger    *zap.Logger
	tiers     *tierStore
	rd        *redis.Client
	cooldown  *cache.Cooldown
	snapshots *cache.SnapshotStore
	pgEnabled bool
}

func configureRedis(cfg common.RedisConfig) (*redis.Client, error) {
	rd := redis.NewClient(&redis.Options{
		Addr: cfg.Address,
		DB:   cfg.DB,
	})
	if err := rd.Ping(context.Background()); err.Err() != nil {
		return nil, errors.Wrap(err.Err(), "failed to ping redis")
	}
	return rd, nil
}

func loadTiers(cfg ServerConfig) ([]model.LeagueTier, error) {
	if cfg.LeagueFile == "" {
		return league.DefaultTiers(), nil
	}
	raw, err := os.ReadFile(cfg.LeagueFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed reading league file %s", cfg.LeagueFile)
	}
	return league.ParseTable(cfg.LeagueFile, raw)
}

// NewServer builds a server over the given tiers. rd may be nil, which
// disables the shared feed cooldown and snapshot cache.
func NewServer(cfg ServerConfig, logger *zap.Logger, tiers []model.LeagueTier, rd *redis.Client) *Server {
	cfg = cfg.withDefaults()
	s := &Server{
		cfg:       cfg,
		logger:    logger.Named("calcserver"),
		tiers:     newTierStore(tiers),
		rd:        rd,
		pgEnabled: postgres.Configured(),
	}
	if rd != nil {
		s.cooldown = cache.NewCooldown(rd, cfg.RedisConfig.Key("feed_cooldown"), cfg.FeedCooldown)
		s.snapshots = cache.NewSnapshotStore(rd, cfg.RedisConfig.Key("feed_snapshot"))
	}
	return s
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/readyz", s.handleReadyz).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.instrument)
	api.HandleFunc("/leagues", s.handleLeagues).Methods(http.MethodGet)
	api.HandleFunc("/leagues/feed", s.handleFeed).Methods(http.MethodPut)
	api.HandleFunc("/leagues/{id}/rewards", s.handleRewards).Methods(http.MethodGet)
	api.HandleFunc("/currencies", s.handleCurrencies).Methods(http.MethodGet)
	api.HandleFunc("/league", s.handleResolve).Methods(http.MethodPost)
	api.HandleFunc("/earnings", s.handleEarnings).Methods(http.MethodPost)
	api.HandleFunc("/simulate", s.handleSimulate).Methods(http.MethodPost)
	api.HandleFunc("/settings/{profile}", s.handleGetSettings).Methods(http.MethodGet)
	api.HandleFunc("/settings/{profile}", s.handlePutSettings).Methods(http.MethodPut)
	return r
}

// restoreFeed reloads the last uploaded feed, redis first, then postgres.
func (s *Server) restoreFeed(ctx context.Context) {
	if s.snapshots != nil {
		snap, found, err := s.snapshots.Get(ctx)
		if err != nil {
			s.logger.Warn("failed restoring feed from redis", zap.Error(err))
		} else if found {
			s.tiers.Apply(snap.Leagues)
			s.logger.Info("restored league feed from redis", zap.String("snapshot", snap.ID))
			return
		}
	}
	if s.pgEnabled {
		leagues, found, err := postgres.LatestLeagueSnapshot(ctx)
		if err != nil {
			s.logger.Warn("failed restoring feed from postgres", zap.Error(err))
			return
		}
		if found {
			s.tiers.Apply(leagues)
			s.logger.Info("restored league feed from postgres")
		}
	}
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.pgEnabled {
		if err := postgres.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}
	}
	if s.rd != nil {
		if err := s.rd.Ping(r.Context()); err.Err() != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(errors.Wrap(err.Err(), "failed pinging redis").Error()))
			return
		}
	}
	w.WriteHeader(http.StatusOK)
}

func ListenAndServe(cfg ServerConfig) error {
	logger, cleanup := common.ConfigureZapWithFile(cfg.Log)
	defer cleanup()
	cfg = cfg.withDefaults()

	if cfg.PromPort != "" {
		StartPromServer(logger, cfg.PromPort)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.PostgresConfig != "" {
		postgres.ConfigurePostgres(cfg.PostgresConfig)
		if err := postgres.EnsureSchema(ctx); err != nil {
			return err
		}
		go postgres.StartPruner(ctx, cfg.PruneInterval, cfg.SnapshotsKept, logger)
	}

	var rd *redis.Client
	if cfg.RedisConfig.Enabled() {
		var err error
		if rd, err = configureRedis(cfg.RedisConfig); err != nil {
			return errors.Wrap(err, "failed connecting to redis")
		}
		defer rd.Close()
	}

	tiers, err := loadTiers(cfg)
	if err != nil {
		return err
	}
	server := NewServer(cfg, logger, tiers, rd)
	server.restoreFeed(ctx)

	router := server.Router()
	if cfg.HealthCheckPort != "" {
		logger.Info("enabling health check on port " + cfg.HealthCheckPort)
		go http.ListenAndServe(cfg.HealthCheckPort, router)
	}

	srv := &http.Server{
		Addr:              cfg.ListenPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigChan
		logger.Warn("received shutdown", zap.String("signal", sig.String()))
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutting down http server failed", zap.Error(err))
		}
	}()

	logger.Info("serving calculator api on " + cfg.ListenPort)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "http server failed")
	}
	return nil
}
