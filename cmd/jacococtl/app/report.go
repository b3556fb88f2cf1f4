package app

import (
	"github.com/spf13/cobra"

	"github.com/jvmtools/jacococtl/pkg/jacoco"
)

// NewReportCommand creates the "report" subcommand.
func NewReportCommand() *cobra.Command {
	var (
		classFiles  []string
		execFiles   []string
		sourceFiles []string
		testOpts    []string
		includes    []string
		excludes    []string
		destFile    string
		htmlOut     string
		xmlOut      string
		csvOut      string
		noHTML      bool
		noXML       bool
		noCSV       bool
		name        string
		encoding    string
		tabWidth    int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate JaCoCo coverage reports.",
		Long: `Generate JaCoCo coverage reports for the project in the current directory.

When no execution data files are given, the test suite is run under the
JaCoCo agent first and the resulting execution data file is used as input.

Default locations follow the build convention:
  execution data   build/jacoco/jacoco.exec
  HTML report      build/reports/jacoco/test/html/
  XML report       build/reports/jacoco/test/jacocoTestReport.xml
  CSV report       build/reports/jacoco/test/jacocoTestReport.csv

Configuration:
  Defaults are loaded from jacococtl.yaml. Command line flags override
  the config file values.

Examples:
  # Run the tests and generate all three report formats
  jacococtl report

  # Report over existing execution data without running tests
  jacococtl report --exec-file build/jacoco/jacoco.exec

  # XML only, with generated classes excluded from analysis
  jacococtl report --no-html --no-csv --exclude 'com/example/generated/**'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, cfg, err := loadProject()
			if err != nil {
				return err
			}

			// Config file values apply unless the flag was set explicitly.
			if !cmd.Flags().Changed("name") {
				name = cfg.Report.Name
			}
			if !cmd.Flags().Changed("encoding") {
				encoding = cfg.Report.Encoding
			}
			if !cmd.Flags().Changed("tab-width") {
				tabWidth = cfg.Report.TabWidth
			}
			if len(includes) == 0 {
				includes = cfg.Report.Includes
			}
			if len(excludes) == 0 {
				excludes = cfg.Report.Excludes
			}

			op := jacoco.NewReportOperation().
				FromProject(proj).
				ClassFiles(classFiles...).
				ExecFiles(execFiles...).
				SourceFiles(sourceFiles...).
				Name(name).
				Encoding(encoding).
				TabWidth(tabWidth).
				Quiet(quietFlag).
				TestToolOptions(testOpts...).
				Includes(includes...).
				Excludes(excludes...)

			if destFile != "" {
				op.DestFile(destFile)
			}
			if noHTML {
				op.DisableHTML()
			} else if htmlOut != "" {
				op.HTML(htmlOut)
			}
			if noXML {
				op.DisableXML()
			} else if xmlOut != "" {
				op.XML(xmlOut)
			}
			if noCSV {
				op.DisableCSV()
			} else if csvOut != "" {
				op.CSV(csvOut)
			}

			return op.Execute(cmd.Context())
		},
	}

	cmd.Flags().StringArrayVar(&classFiles, "class-file", nil, "Location of compiled class files to analyze (repeatable)")
	cmd.Flags().StringArrayVar(&execFiles, "exec-file", nil, "Execution data file to read (repeatable)")
	cmd.Flags().StringArrayVar(&sourceFiles, "source-file", nil, "Location of source files (repeatable)")
	cmd.Flags().StringVar(&destFile, "dest-file", "", "Where the agent writes new execution data")
	cmd.Flags().StringVar(&htmlOut, "html", "", "Location of the HTML report directory")
	cmd.Flags().StringVar(&xmlOut, "xml", "", "Location of the XML report file")
	cmd.Flags().StringVar(&csvOut, "csv", "", "Location of the CSV report file")
	cmd.Flags().BoolVar(&noHTML, "no-html", false, "Skip HTML report generation")
	cmd.Flags().BoolVar(&noXML, "no-xml", false, "Skip XML report generation")
	cmd.Flags().BoolVar(&noCSV, "no-csv", false, "Skip CSV report generation")
	cmd.Flags().StringVar(&name, "name", jacoco.DefaultReportName, "Name used for the report")
	cmd.Flags().StringVar(&encoding, "encoding", "", "Source file encoding (default: platform encoding)")
	cmd.Flags().IntVar(&tabWidth, "tab-width", jacoco.DefaultTabWidth, "Tab stop width for the source pages")
	cmd.Flags().StringArrayVar(&testOpts, "test-opt", nil, "Extra option forwarded to the test runner (repeatable)")
	cmd.Flags().StringArrayVar(&includes, "include", nil, "Glob pattern of classes to analyze (repeatable)")
	cmd.Flags().StringArrayVar(&excludes, "exclude", nil, "Glob pattern of classes to exclude from analysis (repeatable)")

	return cmd
}
