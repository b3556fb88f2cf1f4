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

// NewInstrumentCommand creates the "instrument" subcommand.
func NewInstrumentCommand() *cobra.Command {
	var destDir string

	cmd := &cobra.Command{
		Use:   "instrument [<classdir>...]",
		Short: "Create offline-instrumented copies of class files.",
		Long: `Create offline-instrumented copies of compiled class files, for
environments where attaching the coverage agent at runtime is not
possible. Defaults to instrumenting the project's compiled main classes
into <build>/jacoco/classes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, _, err := loadProject()
			if err != nil {
				return err
			}
			roots := args
			if len(roots) == 0 {
				roots = []string{proj.BuildMainDirectory()}
			}
			if destDir == "" {
				destDir = filepath.Join(proj.BuildDirectory(), "jacoco", "classes")
			}
			if err := os.MkdirAll(destDir, 0755); err != nil {
				return fmt.Errorf("failed to create instrumentation directory: %w", err)
			}

			eng := engine.NewJacocoCLI(exec.NewCommandExecutor(), proj.JavaBinary, proj.CLIJar)
			if err := eng.Instrument(cmd.Context(), roots, destDir); err != nil {
				return err
			}
			logger.Infof("Instrumented classes written to %s", destDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&destDir, "dest", "", "Destination directory (default <build>/jacoco/classes)")

	return cmd
}
