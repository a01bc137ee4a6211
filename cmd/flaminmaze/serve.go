package main

import (
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flamin-maze/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Flamin Maze SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a difficulty menu.
Scores are stored per-server (all users share the same leaderboards);
players are identified by their SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flaminmaze/host_key

Examples:
  flaminmaze serve                           # Listen on :2323 with auto-generated key
  flaminmaze serve --ssh :2222               # Listen on port 2222
  flaminmaze serve --host-key ./my_host_key  # Use specific host key
  flaminmaze serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 2323`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, env FLAMIN_SSH_ADDR)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML (env FLAMIN_CONFIG)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = firstNonEmpty(flagSSHAddr, env.SSHAddr, cfg.Address)
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.ConfigPath = firstNonEmpty(flagConfig, env.ConfigPath)
	cfg.GameID = gameID
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	logger := newLogger(os.Stderr, "flaminmaze-ssh")
	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return err
	}

	if _, port, err := net.SplitHostPort(cfg.Address); err == nil {
		logger.Info("connect with", "cmd", "ssh localhost -p "+port)
	}
	return server.ListenAndServe()
}
