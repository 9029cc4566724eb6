package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pushout/internal/config"
	"github.com/vovakirdan/pushout/internal/core"
	"github.com/vovakirdan/pushout/internal/games/pushout"
	"github.com/vovakirdan/pushout/internal/platform/tui"
	"github.com/vovakirdan/pushout/internal/registry"
	"github.com/vovakirdan/pushout/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play pushout in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  W/Up, S/Down     - Drive forward / reverse
  A/Left, D/Right  - Turn
  Space            - Special (fast ram that destroys what it hits)
  Enter/E          - Start or restart
  Tab              - Leaderboard
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Roomier platform, shorter cooldown, slower spawns
  normal - Default tuning
  hard   - Less room, longer cooldown, faster spawns

Examples:
  pushout play
  pushout play --difficulty easy
  pushout play --config ./my-pushout.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Info lines would scribble over the game screen; only warnings get through.
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pushout", Level: log.WarnLevel})

	entry, err := gameEntry(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pushout list' to see available games.")
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open leaderboard", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(entry.New(gameCfg), store, cfg,
		tui.WithPlayer(playerName()),
		tui.WithLogger(logger),
	)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadGameConfig loads the YAML config and applies the difficulty flag.
// A broken config file is not fatal; the defaults are used instead.
func loadGameConfig(logger *log.Logger) (config.PushoutConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.PushoutConfig{}, err
	}

	cfg, source, err := config.LoadPushout(flagConfig)
	if err != nil {
		logger.Warn("using built-in config", "error", err)
	}
	logger.Debug("config loaded", "source", source, "difficulty", preset)

	config.ApplyPushoutPreset(&cfg, preset)
	return cfg, nil
}

// gameEntry resolves the optional game argument; pushout is the default.
func gameEntry(args []string) (registry.Entry, error) {
	id := pushout.ID
	if len(args) > 0 {
		id = args[0]
	}
	return registry.Lookup(id)
}

func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
