package app

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jvmtools/jacococtl/internal/config"
	"github.com/jvmtools/jacococtl/internal/logger"
	"github.com/jvmtools/jacococtl/internal/project"
)

var (
	cfgFile   string
	quietFlag bool
	logLevel  string
)

// NewJacococtlCommand creates the root command for the jacococtl tool.
func NewJacococtlCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jacococtl",
		Short: "JaCoCo code coverage orchestration for JVM builds.",
		Long: `jacococtl runs a JVM test suite under the JaCoCo coverage agent and
generates HTML, XML and CSV coverage reports through the JaCoCo command
line interface. Project conventions are read from jacococtl.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Environment overrides may live in a .env file.
			_ = godotenv.Load()
			logger.Init(logLevel)
			logger.SetQuiet(quietFlag)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to the jacococtl config file (default jacococtl.yaml)")
	cmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress all output")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")

	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewMergeCommand())
	cmd.AddCommand(NewInstrumentCommand())
	cmd.AddCommand(NewSummaryCommand())

	return cmd
}

// loadProject reads the configuration and builds the project rooted at the
// current working directory.
func loadProject() (*project.Project, *config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	root, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}
	return project.FromConfig(root, cfg), cfg, nil
}
