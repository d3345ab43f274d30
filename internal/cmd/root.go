package cmd

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/signup/internal/api"
	configcmd "github.com/Iron-Ham/signup/internal/cmd/config"
	"github.com/Iron-Ham/signup/internal/config"
	"github.com/Iron-Ham/signup/internal/errors"
	"github.com/Iron-Ham/signup/internal/logging"
	"github.com/Iron-Ham/signup/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "signup",
	Short: "Sign students up for extracurricular activities",
	Long: `signup is a terminal client for the school activities service.

It lists the activities with their schedules, capacity and participants,
signs students up and removes them. Run 'signup board' for the
interactive view, or use the one-shot commands in scripts.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/signup/config.yaml)")
	rootCmd.PersistentFlags().String("base-url", "", "activities service URL (overrides api.base_url)")
	bindFlags()

	configcmd.Register(rootCmd)
}

// bindFlags connects the global flags to their viper keys.
func bindFlags() {
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/signup")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SIGNUP")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SIGNUP_API_BASE_URL for api.base_url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// session is what every service command needs: the validated
// configuration, a logger and a client for the configured service.
type session struct {
	cfg    *config.Config
	logger *logging.Logger
	client *api.Client
}

// openSession loads the configuration and builds the client. Callers must
// close the session.
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg)
	if err := loadThemes(cfg, logger); err != nil {
		_ = logger.Close()
		return nil, err
	}
	client, err := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithUserAgent(cfg.API.UserAgent),
		api.WithLogger(logger),
	)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	return &session{cfg: cfg, logger: logger, client: client}, nil
}

func (s *session) close() {
	_ = s.logger.Close()
}

// loadThemes registers the theme files of the themes directory. Broken
// files are logged and skipped, unless the configuration selects one.
func loadThemes(cfg *config.Config, logger *logging.Logger) error {
	styles.ClearCustomThemes()
	loaded, errs := styles.DiscoverCustomThemes(config.ThemesDir())
	for _, err := range errs {
		logger.Warn("skipping theme file", "error", err)
	}
	if len(loaded) > 0 {
		logger.Debug("loaded custom themes", "themes", loaded)
	}

	if styles.IsValidTheme(cfg.Board.Theme) {
		return nil
	}
	if cause := errors.Join(errs...); cause != nil {
		return fmt.Errorf("board.theme: theme %q could not be loaded: %w", cfg.Board.Theme, cause)
	}
	return fmt.Errorf("board.theme: theme %q could not be loaded", cfg.Board.Theme)
}

// newLogger opens the log file in the configured directory. A log file
// that cannot be opened disables logging rather than failing the command.
func newLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}
	logger, err := logging.NewLogger(cfg.Logging.ResolveDir(), cfg.Logging.Level)
	if err != nil {
		return logging.NopLogger()
	}
	return logger
}
