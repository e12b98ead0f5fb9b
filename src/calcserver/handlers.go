package calcserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/onemorebsmith/rollercoin-calc/src/cache"
	"github.com/onemorebsmith/rollercoin-calc/src/earnings"
	"github.com/onemorebsmith/rollercoin-calc/src/hashpower"
	"github.com/onemorebsmith/rollercoin-calc/src/league"
	"github.com/onemorebsmith/rollercoin-calc/src/leaguetext"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
	"github.com/onemorebsmith/rollercoin-calc/src/postgres"
	"github.com/onemorebsmith/rollercoin-calc/src/report"
	"github.com/onemorebsmith/rollercoin-calc/src/simulator"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrUnknownLeague = errors.New("unknown league")
	ErrNoPower       = errors.New("no usable hash power in request")
	ErrNoCoins       = errors.New("no league power data for this league")
)

// PowerInput accepts either a display string ("10 Ph/s") or a structured value.
type PowerInput struct {
	Power     string           `json:"power,omitempty"`
	HashPower *model.HashPower `json:"hash_power,omitempty"`
}

func (p PowerInput) resolve() (model.HashPower, bool) {
	if p.HashPower != nil && p.HashPower.Unit.Valid() {
		return *p.HashPower, true
	}
	if p.Power != "" {
		return hashpower.Parse(p.Power)
	}
	return model.HashPower{}, false
}

type LeagueResponse struct {
	League  model.LeagueTier   `json:"league"`
	Power   string             `json:"power,omitempty"`
	Rewards map[string]float64 `json:"rewards"`
}

type EarningsRequest struct {
	PowerInput
	User           *model.UserPower   `json:"user,omitempty"`
	Profile        string             `json:"profile,omitempty"`
	LeagueID       string             `json:"league_id,omitempty"`
	Coins          []model.CoinEntry  `json:"coins,omitempty"`
	LeagueText     string             `json:"league_text,omitempty"`
	Rewards        map[string]float64 `json:"rewards,omitempty"`
	BlockIntervals map[string]float64 `json:"block_intervals,omitempty"`
	Balances       map[string]float64 `json:"balances,omitempty"`
}

type EarningsResponse struct {
	Power    model.HashPower          `json:"power"`
	League   model.LeagueTier         `json:"league"`
	Rewards  map[string]float64       `json:"rewards"`
	Results  []model.EarningsResult   `json:"results"`
	Withdraw []model.WithdrawProgress `json:"withdraw"`
}

type SimulateRequest struct {
	Stats simulator.Stats   `json:"stats"`
	User  *model.UserPower  `json:"user,omitempty"`
	Added []simulator.Miner `json:"added"`
}

type FeedResponse struct {
	Snapshot string `json:"snapshot"`
	Leagues  int    `json:"leagues"`
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// instrument tags each request with an id and records latency and failures.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		endpoint := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				endpoint = tpl
			}
		}
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxRequestSize)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		if rec.status >= http.StatusBadRequest {
			RecordError(endpoint, rec.status)
		}
		s.logger.Debug("request",
			zap.String("id", requestID),
			zap.String("method", r.Method),
			zap.String("endpoint", endpoint),
			zap.Int("status", rec.status))
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed encoding response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decode(r *http.Request, into any) error {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		return errors.Wrap(err, "invalid request body")
	}
	return nil
}

func (s *Server) handleLeagues(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.tiers.Tiers())
}

func (s *Server) handleCurrencies(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, league.Currencies())
}

func (s *Server) handleRewards(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tier, ok := league.ByID(s.tiers.Tiers(), id)
	if !ok {
		s.writeError(w, http.StatusNotFound, errors.Wrap(ErrUnknownLeague, id))
		return
	}
	s.writeJSON(w, http.StatusOK, LeagueResponse{League: tier, Rewards: league.ScaleRewards(tier)})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req PowerInput
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	power, ok := req.resolve()
	if !ok {
		s.writeError(w, http.StatusBadRequest, ErrNoPower)
		return
	}
	tier, ok := league.Resolve(&power, s.tiers.Tiers())
	if !ok {
		s.writeError(w, http.StatusServiceUnavailable, ErrUnknownLeague)
		return
	}
	RecordCalculation("league")
	RecordLeague(tier.Name)
	s.writeJSON(w, http.StatusOK, LeagueResponse{
		League:  tier,
		Power:   hashpower.Format(power),
		Rewards: league.ScaleRewards(tier),
	})
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	var feed []model.FeedLeague
	if err := decode(r, &feed); err != nil {
		RecordFeed("invalid")
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if s.cooldown != nil {
		left, err := s.cooldown.Acquire(r.Context())
		if errors.Is(err, cache.ErrCooldown) {
			RecordFeed("cooldown")
			w.Header().Set("Retry-After", strconv.Itoa(int(left.Seconds()+1)))
			s.writeError(w, http.StatusTooManyRequests, err)
			return
		}
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
	}

	snapID := uuid.New()
	snap := cache.FeedSnapshot{ID: snapID.String(), ReceivedAt: time.Now().UTC(), Leagues: feed}
	tiers := s.tiers.Apply(feed)
	if s.snapshots != nil {
		if err := s.snapshots.Put(r.Context(), snap); err != nil {
			s.logger.Warn("failed caching feed snapshot", zap.Error(err))
		}
	}
	if s.pgEnabled {
		if err := postgres.PutLeagueSnapshot(r.Context(), snapID, snap.ReceivedAt, feed); err != nil {
			s.logger.Warn("failed storing feed snapshot", zap.Error(err))
		}
	}
	RecordFeed("accepted")
	s.logger.Info("league feed applied", zap.String("snapshot", snap.ID), zap.Int("leagues", len(feed)))
	s.writeJSON(w, http.StatusOK, FeedResponse{Snapshot: snap.ID, Leagues: len(tiers)})
}

// loadSettings returns stored settings for profile, or empty ones when the
// profile or database is missing.
func (s *Server) loadSettings(r *http.Request, profile string) (model.Settings, error) {
	if profile == "" || !s.pgEnabled {
		return model.Settings{Profile: profile, AutoLeague: true}, nil
	}
	settings, err := postgres.GetSettings(r.Context(), profile)
	if errors.Is(err, postgres.ErrNoSettings) {
		return model.Settings{Profile: profile, AutoLeague: true}, nil
	}
	return settings, err
}

func (s *Server) handleEarnings(w http.ResponseWriter, r *http.Request) {
	var req EarningsRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	settings, err := s.loadSettings(r, req.Profile)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	power, ok := req.resolve()
	if !ok && req.User != nil {
		power, ok = simulator.EffectivePower(*req.User), true
	}
	if !ok {
		s.writeError(w, http.StatusBadRequest, ErrNoPower)
		return
	}

	tiers := s.tiers.Tiers()
	leagueID := req.LeagueID
	if leagueID == "" && !settings.AutoLeague {
		leagueID = settings.LeagueID
	}
	var tier model.LeagueTier
	switch {
	case leagueID != "":
		tier, ok = league.ByID(tiers, leagueID)
	case req.User != nil:
		tier, ok = simulator.LeagueForUser(*req.User, tiers)
	default:
		tier, ok = league.Resolve(&power, tiers)
	}
	if !ok {
		s.writeError(w, http.StatusNotFound, errors.Wrap(ErrUnknownLeague, leagueID))
		return
	}

	coins := req.Coins
	if len(coins) == 0 && req.LeagueText != "" {
		coins = leaguetext.Parse(req.LeagueText)
	}
	if len(coins) == 0 {
		if f, found := s.tiers.FeedLeague(tier.ID); found {
			coins = league.CoinsFromFeed(f)
		}
	}
	if len(coins) == 0 {
		s.writeError(w, http.StatusUnprocessableEntity, ErrNoCoins)
		return
	}

	rewards := req.Rewards
	if len(rewards) == 0 {
		rewards = league.ScaleRewards(tier)
	}
	intervals := earnings.MergeIntervals(
		earnings.MergeIntervals(earnings.DefaultBlockIntervals(), settings.BlockIntervals),
		req.BlockIntervals)
	balances := settings.Balances
	if len(req.Balances) > 0 {
		balances = req.Balances
	}

	results := earnings.ComputeAll(coins, power, rewards, intervals)
	RecordCalculation("earnings")
	RecordLeague(tier.Name)

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		if err := report.WriteCSV(w, results); err != nil {
			s.logger.Error("failed writing csv", zap.Error(err))
		}
		return
	}
	s.writeJSON(w, http.StatusOK, EarningsResponse{
		Power:    power,
		League:   tier,
		Rewards:  rewards,
		Results:  results,
		Withdraw: earnings.WithdrawPlan(results, balances),
	})
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	stats := req.Stats
	if req.User != nil {
		stats = simulator.StatsFromUser(*req.User)
	}
	res := simulator.Simulate(stats, req.Added, s.tiers.Tiers())
	RecordCalculation("simulate")
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	if !s.pgEnabled {
		s.writeError(w, http.StatusServiceUnavailable, errors.New("settings storage is not configured"))
		return
	}
	profile := mux.Vars(r)["profile"]
	settings, err := postgres.GetSettings(r.Context(), profile)
	if errors.Is(err, postgres.ErrNoSettings) {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	if !s.pgEnabled {
		s.writeError(w, http.StatusServiceUnavailable, errors.New("settings storage is not configured"))
		return
	}
	var settings model.Settings
	if err := decode(r, &settings); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	settings.Profile = mux.Vars(r)["profile"]
	if settings.LeagueID != "" {
		if _, ok := league.ByID(s.tiers.Tiers(), settings.LeagueID); !ok {
			s.writeError(w, http.StatusBadRequest, errors.Wrap(ErrUnknownLeague, settings.LeagueID))
			return
		}
	}
	if err := postgres.PutSettings(r.Context(), settings); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, settings)
}
