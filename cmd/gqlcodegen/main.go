package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/verigle/wandb/internal/codegen"
	"github.com/verigle/wandb/internal/config"
)

var errPendingChanges = errors.New("generated code is out of date")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errPendingChanges) {
			log.Error(err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gqlcodegen",
		Short:         "Post-process generated GraphQL client code",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRun,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "codegen.yaml", "Path to the codegen config file")
	rootCmd.PersistentFlags().String("target-package-path", "", "Directory holding the generated package")
	rootCmd.PersistentFlags().String("target-package-name", "", "Name of the generated package")
	rootCmd.PersistentFlags().String("queries-path", "", "Directory of .graphql query documents")
	rootCmd.PersistentFlags().String("schema-path", "", "GraphQL schema used to validate the queries")
	rootCmd.PersistentFlags().StringSlice("plugins", nil, "Plugins to run, in order")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Rewrite the generated package in place",
		Args:  cobra.NoArgs,
		RunE:  runRun,
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Report what run would change without touching the package",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}

	rootCmd.AddCommand(runCmd, checkCmd)
	return rootCmd
}

func loadConfig(cmd *cobra.Command) (*config.CodegenConfig, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config") {
		path = ""
	}
	cfg, err := config.LoadCodegen(path, cmd.Flags())
	if err != nil {
		return nil, err
	}
	initLogger(cfg.Logger)
	return cfg, nil
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	runner, err := codegen.NewRunner(cfg)
	if err != nil {
		return err
	}
	report, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	changed := 0
	for _, f := range report.Files {
		if f.Status != codegen.StatusUnchanged {
			changed++
		}
	}
	log.WithFields(log.Fields{
		"package":         report.PackageDir,
		"files_changed":   changed,
		"dropped_classes": len(report.DroppedClasses),
	}).Info("codegen post-processing done")
	return nil
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	report, err := codegen.Check(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if report.Changed() {
		return errPendingChanges
	}
	return nil
}

func initLogger(cfg config.LoggerConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
