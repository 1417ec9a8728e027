package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RoyCoates/EGM722Project/internal/config"
	"github.com/RoyCoates/EGM722Project/internal/logging"
)

// app carries the resolved runtime settings into each command.
type app struct {
	cfg *config.Config
	log *logrus.Entry
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "roadassets",
		Short:        "M20 lighting and drainage asset reporting",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(cfgPath, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logging.ForRun(logging.New(cfg.Logging, cmd.ErrOrStderr()), cmd.Name())
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "runtime config file (default configs/roadassets.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text or json)")
	pf.StringP("output-dir", "o", ".", "directory for generated files")
	pf.Bool("progress", false, "show a progress bar while loading layers")

	rootCmd.AddCommand(buildCmd(a))
	rootCmd.AddCommand(summaryCmd(a))
	rootCmd.AddCommand(validateCmd(a))
	rootCmd.AddCommand(initCmd(a))
	return rootCmd
}

func projectDir(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

func buildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build [project-dir]",
		Short: "Load the layers and write the map, chart, workbook and CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild(cmd.OutOrStdout(), projectDir(args))
		},
	}
}

func summaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary [project-dir]",
		Short: "Print the junction lighting summary and projected savings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSummary(cmd.OutOrStdout(), projectDir(args))
		},
	}
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-dir]",
		Short: "Validate the project file and its layers without writing outputs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd.OutOrStdout(), projectDir(args))
		},
	}
}

func initCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [project-dir]",
		Short: "Write a roadassets.yaml with the default M20 layers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd.OutOrStdout(), projectDir(args), force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing project file")
	return cmd
}
