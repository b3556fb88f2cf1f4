package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jvmtools/jacococtl/internal/engine"
	"github.com/jvmtools/jacococtl/internal/exec"
	"github.com/jvmtools/jacococtl/internal/logger"
)

// NewMergeCommand creates the "merge" subcommand.
func NewMergeCommand() *cobra.Command {
	var destFile string

	cmd := &cobra.Command{
		Use:   "merge <execfile>...",
		Short: "Merge multiple execution data files into one.",
		Long: `Merge multiple JaCoCo execution data files into a single file, for
example to combine the data of several test runs before reporting.

Examples:
  jacococtl merge run1.exec run2.exec
  jacococtl merge run1.exec run2.exec --dest-file combined.exec`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, _, err := loadProject()
			if err != nil {
				return err
			}
			if destFile == "" {
				destFile = filepath.Join(proj.BuildDirectory(), "jacoco", "jacoco.exec")
			}
			if err := os.MkdirAll(filepath.Dir(destFile), 0755); err != nil {
				return fmt.Errorf("failed to create execution data directory: %w", err)
			}

			eng := engine.NewJacocoCLI(exec.NewCommandExecutor(), proj.JavaBinary, proj.CLIJar)
			if err := eng.Merge(cmd.Context(), args, destFile); err != nil {
				return err
			}
			logger.Infof("Merged %d execution data files into %s", len(args), destFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&destFile, "dest-file", "", "Destination file (default <build>/jacoco/jacoco.exec)")

	return cmd
}
