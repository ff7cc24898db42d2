package commands

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/de-tools/report-splash/pkg/models/domain"
	"github.com/de-tools/report-splash/pkg/runtime/terminal/export"
	"github.com/de-tools/report-splash/pkg/services/dashboard"
	"github.com/de-tools/report-splash/pkg/services/loader"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the generate command's settings, resolved from flags, the
// optional config file and SPLASH_* environment variables.
type Config struct {
	Title     string `mapstructure:"title"`
	Output    string `mapstructure:"output"`
	StartDate string `mapstructure:"start_date"`
	EndDate   string `mapstructure:"end_date"`
	Open      bool   `mapstructure:"open"`
	Quiet     bool   `mapstructure:"quiet"`
}

type GenerateCmd struct {
	cfgPath string
	viper   *viper.Viper
}

func NewGenerateCmd() *cobra.Command {
	gc := &GenerateCmd{viper: viper.New()}

	cmd := &cobra.Command{
		Use:   "generate [flags] FILE...",
		Short: "Generate an HTML dashboard from execution history CSV exports",
		Args:  cobra.MinimumNArgs(1),
		RunE:  gc.run,
	}

	cmd.Flags().StringP("output", "o", "splash_report.html", "Output HTML path")
	cmd.Flags().String("title", "Splash Report", "Dashboard title")
	cmd.Flags().String("start-date", "", "Only include rows starting on or after this date (YYYY-MM-DD)")
	cmd.Flags().String("end-date", "", "Only include rows starting on or before this date (YYYY-MM-DD)")
	cmd.Flags().Bool("open", false, "Open the dashboard in a browser after generation")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress informational output")
	cmd.Flags().StringVar(&gc.cfgPath, "config", "", "Path to an optional YAML config file")

	for flag, key := range map[string]string{
		"output":     "output",
		"title":      "title",
		"start-date": "start_date",
		"end-date":   "end_date",
		"open":       "open",
		"quiet":      "quiet",
	} {
		_ = gc.viper.BindPFlag(key, cmd.Flags().Lookup(flag))
	}

	return cmd
}

func (gc *GenerateCmd) loadConfig() (*Config, error) {
	// A .env next to the invocation can hold SPLASH_* defaults.
	_ = godotenv.Load()

	gc.viper.SetEnvPrefix("SPLASH")
	gc.viper.AutomaticEnv()

	if gc.cfgPath != "" {
		gc.viper.SetConfigFile(gc.cfgPath)
		if err := gc.viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := gc.viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := gc.loadConfig()
	if err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if cfg.Quiet {
		level = zerolog.ErrorLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	startDate, err := parseDate(cfg.StartDate)
	if err != nil {
		return fmt.Errorf("invalid --start-date: %w", err)
	}
	endDate, err := parseDate(cfg.EndDate)
	if err != nil {
		return fmt.Errorf("invalid --end-date: %w", err)
	}

	logger.Info().Int("files", len(args)).Msg("loading csv sources")

	warns := &domain.Warnings{}
	ds, err := loader.Load(ctx, args, warns)
	if err != nil {
		return err
	}

	if startDate != nil || endDate != nil {
		before := len(ds.Rows)
		ds = loader.FilterByDate(ds, startDate, endDate)
		logger.Info().
			Int("kept", len(ds.Rows)).
			Int("excluded", before-len(ds.Rows)).
			Msg("applied date filter")
	}

	ds, dedupApplied := loader.Deduplicate(ctx, ds, warns)

	logger.Info().
		Int("rows", len(ds.Rows)).
		Int("columns", len(ds.Columns)).
		Msg("rows ready for analysis")

	doc := dashboard.Assemble(ctx, ds, warns, dashboard.Options{
		Title:        cfg.Title,
		DedupApplied: dedupApplied,
	})

	for _, w := range doc.Warnings {
		logger.Warn().Str("kind", string(w.Kind)).Msg(w.String())
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", cfg.Output, err)
	}
	defer f.Close()

	if err := export.NewReporter(f).Handle(doc); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}

	logger.Info().Str("path", cfg.Output).Msg("dashboard written")

	if cfg.Open {
		if err := openBrowser(cfg.Output); err != nil {
			logger.Warn().Err(err).Msg("could not open browser")
		}
	}

	return nil
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("use YYYY-MM-DD format (e.g. 2025-01-15)")
	}
	return &t, nil
}

// openBrowser is best-effort; a failure never fails the run.
func openBrowser(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", abs).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", abs).Start()
	default:
		return exec.Command("xdg-open", abs).Start()
	}
}
