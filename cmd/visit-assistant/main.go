package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"visit-assistant/internal/config"
	"visit-assistant/internal/handler"
	"visit-assistant/internal/handoff"
	"visit-assistant/internal/rewrite"
	"visit-assistant/internal/status"
	"visit-assistant/internal/storage"
	"visit-assistant/internal/templates"
	"visit-assistant/internal/whatsapp"
)

// app holds the wired components shared by every command
type app struct {
	cfg       *config.Config
	base      zerolog.Logger
	log       zerolog.Logger
	storage   *storage.Storage
	templates *templates.Store
	tracker   *status.Tracker
	composer  *handler.Composer
	whatsapp  *whatsapp.Service
	connected bool
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "visit-assistant",
		Short: "Prepare and track the messages sent around public talk visits",
		Long: `visit-assistant renders confirmation, preparation, reminder and thanks
messages for visiting speakers and their hosts, in French or Cape Verdean Creole.
Run it without a command for the interactive menu.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context(), a, os.Stdin)
		},
	}

	rootCmd.AddCommand(
		newImportCmd(a),
		newVisitsCmd(a),
		newAssignHostCmd(a),
		newStatusCmd(a),
		newRenderCmd(a),
		newHostRequestCmd(a),
		newTemplatesCmd(a),
		newProfileCmd(a),
		newLinkCmd(a),
		newLoginCmd(a),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func (a *app) init(ctx context.Context) error {
	a.cfg = config.LoadConfig()
	zerolog.SetGlobalLevel(a.cfg.LogLevel)
	a.base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	a.log = a.componentLogger("Assistant")

	var err error
	a.storage, err = storage.NewStorage(filepath.Join(a.cfg.DataDir, "assistant.json"))
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	if _, ok := a.storage.GetProfile(); !ok {
		if seed := a.cfg.SeedProfile(); seed.HospitalityOverseer != "" {
			if err := a.storage.SaveProfile(seed); err != nil {
				return fmt.Errorf("failed to save profile: %w", err)
			}
			a.log.Info().Str("overseer", seed.HospitalityOverseer).Msg("Profile seeded from environment")
		}
	}

	a.templates = templates.NewStore(a.storage, a.componentLogger("Templates"))
	a.tracker = status.NewTracker(a.storage, a.componentLogger("Status"))
	a.composer = handler.NewComposer(a.storage, a.templates, a.tracker, handoff.SystemClipboard{}, a.componentLogger("Composer"))

	if gemini, err := rewrite.NewGemini(ctx, a.cfg.GoogleAPIKey, a.cfg.GeminiModel, a.componentLogger("Gemini")); err != nil {
		a.log.Debug().Err(err).Msg("Rewrite disabled")
	} else {
		a.composer.SetRewriter(gemini)
	}

	if a.cfg.WhatsAppDirect {
		a.whatsapp, err = whatsapp.NewService(&whatsapp.Config{
			DataDir:     filepath.Join(a.cfg.DataDir, "whatsapp"),
			CountryCode: a.cfg.DefaultCountryCode,
		})
		if err != nil {
			a.log.Error().Err(err).Msg("WhatsApp direct send disabled")
			a.whatsapp = nil
		} else {
			a.composer.SetSender(a.whatsapp)
		}
	}
	return nil
}

func (a *app) close() {
	if a.whatsapp != nil {
		a.whatsapp.Disconnect()
	}
}

func (a *app) componentLogger(name string) zerolog.Logger {
	return a.base.With().Str("component", name).Logger()
}
