package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/availability"
	"github.com/aaronsmc/office-wishlist-agent/internal/config"
	"github.com/aaronsmc/office-wishlist-agent/internal/session"
)

// app is everything a command needs, built from config and flags.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	svc    *session.Service
	close  func() error
}

func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	level := cfg.Level()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger := NewLogger(cmd.ErrOrStderr(), level)

	st, closeStore, err := cfg.OpenStore(cmdContext(cmd))
	if err != nil {
		return nil, err
	}
	logger.Debug("store opened", "driver", cfg.StoreDriver)

	svc := session.New(st, session.Options{
		Parser: availability.Parser{AttachWindow: cfg.AttachWindow},
		Logger: logger,
	})
	return &app{cfg: cfg, logger: logger, svc: svc, close: closeStore}, nil
}

func (a *app) Close() {
	if err := a.close(); err != nil {
		a.logger.Warn("closing store", "err", err)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	cfgFile, _ := cmd.Flags().GetString("config")
	return config.Load(homeDir, cfgFile)
}

// withApp opens the app for the duration of fn.
func withApp(cmd *cobra.Command, fn func(a *app) error) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func profileFlag(cmd *cobra.Command) string {
	p, _ := cmd.Flags().GetString("profile")
	return p
}
