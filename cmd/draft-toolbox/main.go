package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/ff-toolbox/internal/analyzer"
	"github.com/yourusername/ff-toolbox/internal/config"
	"github.com/yourusername/ff-toolbox/internal/database"
	"github.com/yourusername/ff-toolbox/internal/datasource"
	"github.com/yourusername/ff-toolbox/internal/draft"
	"github.com/yourusername/ff-toolbox/internal/feed"
	applogger "github.com/yourusername/ff-toolbox/internal/logger"
	"github.com/yourusername/ff-toolbox/internal/metrics"
	"github.com/yourusername/ff-toolbox/internal/models"
	"github.com/yourusername/ff-toolbox/internal/predictor"
	"github.com/yourusername/ff-toolbox/internal/rankings"
	"github.com/yourusername/ff-toolbox/internal/rankmap"
	"github.com/yourusername/ff-toolbox/internal/repository"
	"github.com/yourusername/ff-toolbox/internal/scheduler"
	"github.com/yourusername/ff-toolbox/internal/suggestor"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile  string
	position    string
	confidence  float64
	meansFlag   string
	stdevsFlag  string
	topN        int
	daemon      bool
	logger      *logrus.Logger
	draftLogger *applogger.DraftLogger
	cfg         *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	intervalsCmd.Flags().StringVarP(&position, "position", "p", "RB", "Position to build the points table for")
	intervalsCmd.Flags().Float64Var(&confidence, "confidence", 0.8, "Confidence level for rank intervals")
	intervalsCmd.Flags().StringVar(&meansFlag, "means", "", "Comma-separated rank means (defaults to a demo set)")
	intervalsCmd.Flags().StringVar(&stdevsFlag, "stdevs", "", "Comma-separated rank standard deviations (defaults to a demo set)")
	suggestCmd.Flags().IntVarP(&topN, "top", "t", 10, "Number of suggestions to print")
	refreshCmd.Flags().BoolVarP(&daemon, "daemon", "d", false, "Keep running and refresh on the configured schedule")
}

var rootCmd = &cobra.Command{
	Use:   "draft-toolbox",
	Short: "Fantasy football draft toolbox",
	Long:  `Rank projections, confidence intervals and live pick suggestions for fantasy football drafts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// Overlay secrets if enabled
		if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
			region := os.Getenv("AWS_REGION")
			secretName := os.Getenv("AWS_SECRET_NAME")
			if region == "" || secretName == "" {
				return fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
			}
			if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
				return fmt.Errorf("failed to load secrets: %w", err)
			}
		}

		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger = applogger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
		draftLogger = applogger.NewDraftLogger(logger)
		metrics.InitRegistry()

		return nil
	},
}

var intervalsCmd = &cobra.Command{
	Use:   "intervals",
	Short: "Compute rank confidence intervals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntervals(cmd.Context())
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest picks for the team on the clock",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuggest(cmd.Context())
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh projections from configured sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRefresh(cmd.Context())
	},
}

func main() {
	rootCmd.AddCommand(intervalsCmd, suggestCmd, refreshCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// demo rank distributions used when no --means/--stdevs are given
var (
	demoRankMeans  = []float64{66.2, 62.1, 58.2, 64.5, 57.5, 56.1, 55.6, 62.2, 54.5, 49.0}
	demoRankStdevs = []float64{5.9, 12.9, 6.2, 6.4, 6.4, 8.6, 3.9, 4.7, 6.3, 5.5}
)

func runIntervals(ctx context.Context) error {
	start := time.Now()

	mapper, err := buildMapper(ctx, models.Position(position))
	if err != nil {
		return err
	}

	rankMeans := demoRankMeans
	rankStdevs := demoRankStdevs
	if meansFlag != "" || stdevsFlag != "" {
		if rankMeans, err = parseFloats(meansFlag); err != nil {
			return fmt.Errorf("invalid --means: %w", err)
		}
		if rankStdevs, err = parseFloats(stdevsFlag); err != nil {
			return fmt.Errorf("invalid --stdevs: %w", err)
		}
	}

	rankVariances := make([]float64, len(rankStdevs))
	for i, sd := range rankStdevs {
		rankVariances[i] = sd * sd
	}

	intervals, err := mapper.RankConfidenceIntervals(rankMeans, rankVariances, confidence)
	if err != nil {
		return fmt.Errorf("failed to compute intervals: %w", err)
	}

	fmt.Printf("%.0f%% rank confidence intervals (%s):\n", confidence*100, position)
	for i, interval := range intervals {
		fmt.Printf("  rank %5.1f  ->  [%6.2f, %6.2f]\n", rankMeans[i], interval[0], interval[1])
	}

	draftLogger.LogIntervalBatch(len(intervals), confidence, float64(time.Since(start).Milliseconds()))
	return nil
}

func runSuggest(ctx context.Context) error {
	start := time.Now()

	pool, ranking, err := buildPlayerPool(ctx)
	if err != nil {
		return err
	}

	settings := models.LeagueSettings{
		RosterLimits: cfg.League.RosterSpotLimits(),
		Scoring:      cfg.League.Scoring,
	}
	teams := make([]*models.Team, cfg.League.Teams)
	for i := range teams {
		teams[i] = &models.Team{
			Name:   fmt.Sprintf("Team %d", i+1),
			Owner:  fmt.Sprintf("Owner %d", i+1),
			Roster: models.NewRoster(settings.RosterLimits),
		}
	}

	d := draft.New(teams, cfg.League.Rounds, pool, settings)

	pickAnalyzer := analyzer.NewSimplePickAnalyzer()
	pickPredictor := predictor.NewNullPickPredictor(
		pickAnalyzer, pickAnalyzer, ranking,
		rankings.NewDefaultGenerator(ranking),
	)
	s := suggestor.NewSimplePickSuggestor(pickAnalyzer, pickPredictor)

	suggestions, err := s.Suggestions(d)
	if err != nil {
		return fmt.Errorf("failed to compute suggestions: %w", err)
	}
	if topN < len(suggestions) {
		suggestions = suggestions[:topN]
	}

	fmt.Println("Suggested picks:")
	for i, suggestion := range suggestions {
		fmt.Printf("  %2d. %-24s %-4s %6.1f\n",
			i+1, suggestion.Player.Name, suggestion.Player.Position, suggestion.Score)
	}

	if len(suggestions) > 0 {
		draftLogger.LogSuggestions(
			len(d.Drafted())+1, len(d.Undrafted()),
			suggestions[0].Player.Name, suggestions[0].Score,
			float64(time.Since(start).Milliseconds()),
		)
	}
	return nil
}

func runRefresh(ctx context.Context) error {
	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	repos, err := repository.NewRepositories(db)
	if err != nil {
		return fmt.Errorf("failed to initialize repositories: %w", err)
	}

	factory := datasource.NewFactory(logger)
	sources, err := factory.NewSources(cfg.Rankings)
	if err != nil {
		return fmt.Errorf("failed to create rankings sources: %w", err)
	}

	refresher := rankings.NewRefresher(sources, repos.Rankings, season(), positions(), logger)

	if !daemon {
		return refresher.Refresh(ctx)
	}

	if cfg.Metrics.Enabled {
		go serveMetrics(cfg.Metrics.Port)
	}

	sched := scheduler.NewScheduler(refresher, logger)
	schedule := cfg.Rankings.RefreshSchedule
	if schedule == "" {
		schedule = "0 6 * * *"
	}
	if err := sched.ScheduleRefresh(schedule); err != nil {
		return err
	}
	if err := sched.Start(); err != nil {
		return err
	}

	if cfg.Feed.URL != "" {
		go watchFeed(ctx)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	return sched.Stop()
}

// buildMapper constructs a rank mapper from the first configured source,
// falling back to the built-in table when fetching fails.
func buildMapper(ctx context.Context, pos models.Position) (*rankmap.Mapper, error) {
	factory := datasource.NewFactory(logger)
	sources, err := factory.NewSources(cfg.Rankings)
	if err != nil {
		return nil, err
	}

	projections, err := sources[0].FetchProjections(ctx, pos, season())
	if err != nil {
		logger.WithError(err).Warn("Falling back to built-in points table")
		projections, err = datasource.NewStaticSource().FetchProjections(ctx, pos, season())
		if err != nil {
			return nil, err
		}
	}

	return rankmap.NewMapper(datasource.PointsTable(projections), rankmap.DistKind(cfg.Rankings.Distribution))
}

// buildPlayerPool fetches projections for every configured position and turns
// them into a draft pool with a consensus ranking, best projection first.
func buildPlayerPool(ctx context.Context) ([]*models.Player, *models.PlayerRanking, error) {
	factory := datasource.NewFactory(logger)
	sources, err := factory.NewSources(cfg.Rankings)
	if err != nil {
		return nil, nil, err
	}

	type ranked struct {
		player *models.Player
		points float64
	}
	var all []ranked

	for _, pos := range positions() {
		projections, err := sources[0].FetchProjections(ctx, pos, season())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to fetch %s projections: %w", pos, err)
		}
		for _, proj := range projections {
			all = append(all, ranked{
				player: models.NewPlayer(proj.Name, proj.NFLTeam, proj.Position, false),
				points: proj.Points,
			})
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].points > all[j].points })

	pool := make([]*models.Player, len(all))
	for i, r := range all {
		pool[i] = r.player
	}
	return pool, models.NewPlayerRanking(pool), nil
}

func watchFeed(ctx context.Context) {
	client := feed.NewStreamClient(cfg.Feed.URL, logger)
	if cfg.Feed.ReconnectSeconds > 0 {
		reconnect := feed.DefaultReconnectConfig()
		reconnect.InitialBackoff = time.Duration(cfg.Feed.ReconnectSeconds) * time.Second
		client.SetReconnectConfig(reconnect)
	}
	client.AddHandler(func(event feed.PickEvent) error {
		draftLogger.LogPick(event.PickNumber, event.TeamName, event.PlayerName, event.Position, 0)
		return nil
	})
	if err := client.Run(ctx); err != nil {
		logger.WithError(err).Error("Draft feed stopped")
	}
}

func serveMetrics(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	addr := fmt.Sprintf(":%d", port)
	logger.WithField("addr", addr).Info("Serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.WithError(err).Error("Metrics server stopped")
	}
}

func season() int {
	if len(cfg.Rankings.Sources) > 0 && cfg.Rankings.Sources[0].Season > 0 {
		return cfg.Rankings.Sources[0].Season
	}
	return time.Now().Year()
}

func positions() []models.Position {
	seen := make(map[models.Position]bool)
	var out []models.Position
	for _, src := range cfg.Rankings.Sources {
		for _, p := range src.Positions {
			pos := models.Position(p)
			if !seen[pos] {
				seen[pos] = true
				out = append(out, pos)
			}
		}
	}
	if len(out) == 0 {
		out = []models.Position{models.PositionQB, models.PositionRB, models.PositionWR, models.PositionTE}
	}
	return out
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
