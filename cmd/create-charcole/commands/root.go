package commands

import (
	"context"
	"fmt"

	"github.com/charcoles/charcole/config"
	"github.com/charcoles/charcole/logging/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// session carries what every command needs once flags are parsed.
type session struct {
	configFile string
	verbose    bool

	cfg     *config.Config
	log     *logger.Logger
	cleanup func()
}

func (s *session) load(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(s.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.cfg = cfg

	if s.verbose {
		cfg.Logger.Level = logrus.DebugLevel.String()
	}
	s.log = logger.StdLogger()
	cleanup, err := s.log.Init(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	s.cleanup = cleanup

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, _ = logger.EnsureRunID(ctx)
	cmd.SetContext(ctx)

	if cfg.File != "" {
		s.log.WithContext(ctx).WithField("file", cfg.File).Debug("config loaded")
	}
	return nil
}

func (s *session) close() {
	if s.cleanup != nil {
		s.cleanup()
		s.cleanup = nil
	}
}

// NewRootCmd creates the root command bound to s. Running it without a
// subcommand scaffolds a new project.
func NewRootCmd(s *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "create-charcole [project-name]",
		Short: "Scaffold a production-ready Express.js API",
		Long: `Create a new Express.js API in TypeScript or JavaScript with optional
JWT authentication and Swagger documentation.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&s.configFile, "config", "", "config file (default $HOME/.charcole/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "enable debug logging")

	bindCreate(rootCmd, s)

	// Add subcommands
	rootCmd.AddCommand(
		NewDocsCommand(s),
		NewVersionCommand(),
	)

	return rootCmd
}

// Execute runs the CLI.
func Execute(ctx context.Context) error {
	s := &session{}
	return execute(ctx, s, NewRootCmd(s))
}

// execute runs cmd and releases the session whether or not it failed.
func execute(ctx context.Context, s *session, cmd *cobra.Command) error {
	defer s.close()
	return cmd.ExecuteContext(ctx)
}
