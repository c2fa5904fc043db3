package main

import (
	"fmt"

	"github.com/newthinker/cryptrade/internal/config"
	"github.com/newthinker/cryptrade/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by all commands of one invocation.
type app struct {
	debug    bool
	fileWins bool

	res config.Resolution
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	cmd, _ := buildRoot()
	return cmd
}

func buildRoot() (*cobra.Command, *app) {
	a := &app{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "cryptrade",
		Short: "cryptrade - cryptocurrency trading client",
		Long: `cryptrade is a command-line client for cryptocurrency trading.
Settings come from built-in defaults, an optional TOML config file,
CRYPTRADE_* environment variables and command-line flags, in that order.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			printConfig(out, "cryptrade", a.res.Config)
			fmt.Fprintln(out, "done")
			return nil
		},
	}

	fs := cmd.PersistentFlags()
	config.BindFlags(fs)
	fs.BoolVar(&a.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&a.fileWins, "file-wins", false, "config file values override flags and environment")

	cmd.AddCommand(
		newAutoSellCmd(a),
		newBuyMarketCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return cmd, a
}

// setup resolves the effective configuration and builds the logger.
//
// Resolution is logged to stderr only, since the log file is itself a
// resolved setting. Once the file is open, the warnings raised while
// resolving and a summary of the result are written to it as well.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	log, err := logger.New(a.debug)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	log.Debug("resolving config", zap.String("command", cmd.CommandPath()))

	precedence := config.PrecedenceFlagsWin
	if a.fileWins {
		precedence = config.PrecedenceFileWins
	}

	res, err := config.NewResolver(cmd.Flags(),
		config.WithPrecedence(precedence),
		config.WithLogger(log),
	).Explain(cmd.Context())
	if err != nil {
		_ = log.Sync()
		return err
	}
	a.res = res
	a.log = log

	if res.Config.LogPath == "" {
		return nil
	}

	fileLog, err := logger.NewFile(a.debug, res.Config.LogPath)
	if err != nil {
		return fmt.Errorf("opening log %s: %w", res.Config.LogPath, err)
	}
	for _, n := range res.Notices {
		fileLog.Warn(n.Message, n.Fields...)
	}
	fileLog.Info("config resolved",
		zap.String("command", cmd.CommandPath()),
		zap.String("config_file", res.FilePath),
		zap.Stringer("precedence", precedence),
		zap.Object("config", res.Config),
	)
	a.log = logger.Tee(log, fileLog)

	return nil
}
