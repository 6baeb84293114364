package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/ytget/library-manager/internal/cliconfig"
	"github.com/ytget/library-manager/internal/config"
	"github.com/ytget/library-manager/internal/logging"
	"github.com/ytget/library-manager/internal/registry"
	"github.com/ytget/library-manager/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = ""

const (
	AppID   = "com.ytget.library-manager"
	AppName = "Library Manager"
)

func getVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string
	var noSeed bool

	log := logging.Stderr()

	root := &cobra.Command{
		Use:     "library-manager",
		Short:   "Track a small in-memory list of library books",
		Long:    "Desktop app to add, list, filter, borrow and return library books. Books are kept in memory only.",
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if changed["no-seed"] {
				cfg.SeedSamples = !noSeed
			}

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			// Environment overrides the file, flags override both
			cliconfig.ApplyEnvConfig(&cfg, changed)

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			logger.Info().Interface("config", cfg).Str("version", getVersion()).Msg("starting")

			myApp := app.NewWithID(AppID)
			settings := config.NewSettings(myApp)
			if cfg.Language != "" {
				settings.SetLanguage(cfg.Language)
			}
			myApp.Settings().SetTheme(ui.NewLibraryTheme(settings.GetTextSize()))

			books := registry.New(registry.WithLogger(logger))
			if cfg.SeedSamples {
				books.Seed()
			}

			myWindow := myApp.NewWindow(AppName)
			myWindow.Resize(fyne.NewSize(ui.MainWindowWidth, ui.MainWindowHeight))
			myWindow.SetMaster()

			ui.NewRootUI(myWindow, myApp, books, settings, logger)

			myWindow.ShowAndRun()
			logger.Info().Int("books", books.Count()).Msg("stopped")
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.library-manager/config.toml)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log output format (console or json)")
	root.Flags().StringVar(&cfg.Language, "language", cfg.Language, "UI language (system, en, ru, pt)")
	root.Flags().BoolVar(&noSeed, "no-seed", false, "start with an empty registry instead of the sample books")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("library-manager")
		os.Exit(1)
	}
}
