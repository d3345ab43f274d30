package cmd

import (
	"fmt"

	"github.com/Iron-Ham/signup/internal/config"
	"github.com/Iron-Ham/signup/internal/reload"
	"github.com/Iron-Ham/signup/internal/tui/msg"
	"github.com/Iron-Ham/signup/internal/tui/styles"
	"github.com/spf13/viper"
)

// watchSettings re-reads the board settings whenever the config file or a
// theme file is saved. Only the newest unread reload is kept. The returned
// stop function closes the channel. A watcher that cannot start disables
// live reload.
func watchSettings(s *session) (<-chan msg.ConfigReloadedMsg, func()) {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = config.ConfigFile()
	}

	reloads := make(chan msg.ConfigReloadedMsg, 1)
	w, err := reload.New(configFile, config.ThemesDir(), func() {
		settings, err := readSettings()
		if err != nil {
			s.logger.Warn("ignoring configuration change", "error", err)
			return
		}
		select {
		case <-reloads:
		default:
		}
		reloads <- settings
	}, reload.WithLogger(s.logger))
	if err != nil {
		s.logger.Warn("live reload disabled", "error", err)
		return nil, func() {}
	}

	w.Start()
	return reloads, func() {
		w.Stop()
		close(reloads)
	}
}

// readSettings reloads the config file and resolves the selected theme.
// Settings that only apply at startup (API, feedback timings, logging)
// are validated but not applied.
func readSettings() (msg.ConfigReloadedMsg, error) {
	if err := viper.ReadInConfig(); err != nil {
		return msg.ConfigReloadedMsg{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return msg.ConfigReloadedMsg{}, err
	}
	palette, err := styles.ResolvePalette(styles.ThemeName(cfg.Board.Theme), config.ThemesDir())
	if err != nil {
		return msg.ConfigReloadedMsg{}, fmt.Errorf("board.theme: %w", err)
	}
	return msg.ConfigReloadedMsg{Title: cfg.Board.Title, Palette: palette}, nil
}
