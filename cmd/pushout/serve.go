package main

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushout/internal/platform/tui"
	"github.com/vovakirdan/pushout/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve [game]",
	Short: "Start the pushout SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own game. All players share one in-memory
leaderboard that is cleared when the server stops.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  pushout serve                           # Listen on :23234 with auto-generated key
  pushout serve --ssh :2222               # Listen on port 2222
  pushout serve --difficulty hard         # Every connection plays on hard

Environment:
  PUSHOUT_SSH_ADDR, PUSHOUT_HOST_KEY and PUSHOUT_IDLE_TIMEOUT (e.g. "45m")
  set the same values; flags given on the command line win.

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.MaximumNArgs(1),
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// serveEnv holds the server settings that can come from the environment.
type serveEnv struct {
	Address     string        `env:"PUSHOUT_SSH_ADDR" envDefault:":23234"`
	HostKeyPath string        `env:"PUSHOUT_HOST_KEY"`
	IdleTimeout time.Duration `env:"PUSHOUT_IDLE_TIMEOUT" envDefault:"30m"`
}

// serverConfig merges the environment with the command line flags.
func serverConfig(cmd *cobra.Command) (tui.SSHServerConfig, error) {
	var e serveEnv
	if err := env.Parse(&e); err != nil {
		return tui.SSHServerConfig{}, fmt.Errorf("parse env: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		e.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		e.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		e.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = e.Address
	cfg.HostKeyPath = e.HostKeyPath
	cfg.IdleTimeout = e.IdleTimeout
	cfg.TickRate = flagFPS
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pushout"})

	entry, err := gameEntry(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := serverConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.NewGame = func() registry.Game {
		return entry.New(gameCfg)
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting pushout SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh <host> -p <port>")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
