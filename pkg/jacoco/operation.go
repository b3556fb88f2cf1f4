// Package jacoco provides the coverage report operation: it runs the test
// suite under the JaCoCo agent when no execution data exists, then delegates
// analysis and rendering to the JaCoCo toolchain. Build scripts configure an
// operation through its chainable setters and execute it once.
package jacoco

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/jvmtools/jacococtl/internal/engine"
	"github.com/jvmtools/jacococtl/internal/exec"
	"github.com/jvmtools/jacococtl/internal/filter"
	"github.com/jvmtools/jacococtl/internal/logger"
	"github.com/jvmtools/jacococtl/internal/project"
	"github.com/jvmtools/jacococtl/internal/testrun"
)

// DefaultReportName labels the coverage bundle when no name is configured.
const DefaultReportName = "JaCoCo Coverage Report"

// DefaultTabWidth is the tab stop width used for annotated source pages.
const DefaultTabWidth = 4

// ErrNoProject is returned by Execute when no project was attached.
var ErrNoProject = errors.New("a project must be specified")

// formatTarget tracks one report format: unset (convention default applies),
// explicitly located, or disabled.
type formatTarget struct {
	path     string
	disabled bool
}

func (f formatTarget) resolve(def string) string {
	if f.disabled {
		return ""
	}
	if f.path != "" {
		return f.path
	}
	return def
}

// ReportOperation generates JaCoCo coverage reports. The zero value is not
// usable; create one with NewReportOperation, configure it, then call
// Execute exactly once.
type ReportOperation struct {
	project *project.Project
	engine  engine.Engine
	runner  testrun.Runner

	classFiles  []string
	execFiles   []string
	sourceFiles []string

	destFile string
	html     formatTarget
	xml      formatTarget
	csv      formatTarget

	name            string
	encoding        string
	tabWidth        int
	quiet           bool
	testToolOptions []string
	agentOptions    []string
	includes        []string
	excludes        []string
}

// NewReportOperation creates an operation with the default report name and
// tab width.
func NewReportOperation() *ReportOperation {
	return &ReportOperation{
		name:     DefaultReportName,
		tabWidth: DefaultTabWidth,
	}
}

// FromProject attaches the project whose conventions supply all default
// locations.
func (op *ReportOperation) FromProject(p *project.Project) *ReportOperation {
	op.project = p
	return op
}

// Engine overrides the coverage engine. By default the operation invokes
// jacococli with the project's toolchain.
func (op *ReportOperation) Engine(e engine.Engine) *ReportOperation {
	op.engine = e
	return op
}

// TestRunner overrides the test runner used to produce execution data.
func (op *ReportOperation) TestRunner(r testrun.Runner) *ReportOperation {
	op.runner = r
	return op
}

// ClassFiles adds locations of compiled class files to analyze. Repeated
// calls append.
func (op *ReportOperation) ClassFiles(paths ...string) *ReportOperation {
	op.classFiles = appendNormalized(op.classFiles, paths)
	return op
}

// ClearClassFiles removes all configured class file locations.
func (op *ReportOperation) ClearClassFiles() *ReportOperation {
	op.classFiles = nil
	return op
}

// ClassFileList returns a copy of the configured class file locations.
func (op *ReportOperation) ClassFileList() []string {
	return slices.Clone(op.classFiles)
}

// ExecFiles adds execution data files to read. Repeated calls append.
func (op *ReportOperation) ExecFiles(paths ...string) *ReportOperation {
	op.execFiles = appendNormalized(op.execFiles, paths)
	return op
}

// ClearExecFiles removes all configured execution data files.
func (op *ReportOperation) ClearExecFiles() *ReportOperation {
	op.execFiles = nil
	return op
}

// ExecFileList returns a copy of the configured execution data files.
func (op *ReportOperation) ExecFileList() []string {
	return slices.Clone(op.execFiles)
}

// SourceFiles adds locations of source files for annotated HTML pages.
// Repeated calls append.
func (op *ReportOperation) SourceFiles(paths ...string) *ReportOperation {
	op.sourceFiles = appendNormalized(op.sourceFiles, paths)
	return op
}

// ClearSourceFiles removes all configured source file locations.
func (op *ReportOperation) ClearSourceFiles() *ReportOperation {
	op.sourceFiles = nil
	return op
}

// SourceFileList returns a copy of the configured source file locations.
func (op *ReportOperation) SourceFileList() []string {
	return slices.Clone(op.sourceFiles)
}

// DestFile sets where the agent writes new execution data. Defaults to
// <build>/jacoco/jacoco.exec.
func (op *ReportOperation) DestFile(path string) *ReportOperation {
	op.destFile = normalize(path)
	return op
}

// HTML sets the location of the HTML report directory.
func (op *ReportOperation) HTML(path string) *ReportOperation {
	op.html = formatTarget{path: normalize(path)}
	return op
}

// DisableHTML skips HTML report generation.
func (op *ReportOperation) DisableHTML() *ReportOperation {
	op.html = formatTarget{disabled: true}
	return op
}

// XML sets the location of the XML report file.
func (op *ReportOperation) XML(path string) *ReportOperation {
	op.xml = formatTarget{path: normalize(path)}
	return op
}

// DisableXML skips XML report generation.
func (op *ReportOperation) DisableXML() *ReportOperation {
	op.xml = formatTarget{disabled: true}
	return op
}

// CSV sets the location of the CSV report file.
func (op *ReportOperation) CSV(path string) *ReportOperation {
	op.csv = formatTarget{path: normalize(path)}
	return op
}

// DisableCSV skips CSV report generation.
func (op *ReportOperation) DisableCSV() *ReportOperation {
	op.csv = formatTarget{disabled: true}
	return op
}

// Name sets the name used for the report.
func (op *ReportOperation) Name(name string) *ReportOperation {
	op.name = name
	return op
}

// Encoding sets the source file encoding. The platform encoding is used by
// default.
func (op *ReportOperation) Encoding(encoding string) *ReportOperation {
	op.encoding = encoding
	return op
}

// TabWidth sets the tab stop width for the source pages.
func (op *ReportOperation) TabWidth(width int) *ReportOperation {
	op.tabWidth = width
	return op
}

// Quiet suppresses all output.
func (op *ReportOperation) Quiet(quiet bool) *ReportOperation {
	op.quiet = quiet
	return op
}

// TestToolOptions adds options forwarded to the underlying test runner.
// Repeated calls append.
func (op *ReportOperation) TestToolOptions(options ...string) *ReportOperation {
	op.testToolOptions = append(op.testToolOptions, options...)
	return op
}

// ClearTestToolOptions removes all configured test tool options.
func (op *ReportOperation) ClearTestToolOptions() *ReportOperation {
	op.testToolOptions = nil
	return op
}

// TestToolOptionList returns a copy of the configured test tool options.
func (op *ReportOperation) TestToolOptionList() []string {
	return slices.Clone(op.testToolOptions)
}

// AgentOptions adds extra options for the coverage agent, beyond the
// destination file.
func (op *ReportOperation) AgentOptions(options ...string) *ReportOperation {
	op.agentOptions = append(op.agentOptions, options...)
	return op
}

// Includes adds glob patterns (relative to the class roots) selecting which
// classes are analyzed.
func (op *ReportOperation) Includes(patterns ...string) *ReportOperation {
	op.includes = append(op.includes, patterns...)
	return op
}

// Excludes adds glob patterns removing classes from analysis.
func (op *ReportOperation) Excludes(patterns ...string) *ReportOperation {
	op.excludes = append(op.excludes, patterns...)
	return op
}

// Execute runs the operation: resolve defaults, produce execution data if
// none was supplied, and generate the configured reports.
func (op *ReportOperation) Execute(ctx context.Context) error {
	if op.project == nil {
		op.errorf("A project must be specified.")
		return ErrNoProject
	}
	p := op.project
	buildDir := p.BuildDirectory()
	reports := reportsDir(buildDir)
	execDir := execDataDir(buildDir)

	destFile := op.destFile
	if destFile == "" {
		destFile = defaultExecFile(buildDir)
	}

	execFiles := slices.Clone(op.execFiles)
	if len(execFiles) == 0 {
		produced, err := op.runTests(ctx, destFile)
		if err != nil {
			return err
		}
		if produced {
			execFiles = append(execFiles, destFile)
		}
	}

	sourceFiles := slices.Clone(op.sourceFiles)
	if len(sourceFiles) == 0 {
		sourceFiles = append(sourceFiles, p.SrcMainDirectory())
	}

	classFiles := slices.Clone(op.classFiles)
	if len(classFiles) == 0 {
		classFiles = append(classFiles, p.BuildMainDirectory())
	}

	htmlOut := op.html.resolve(filepath.Join(reports, htmlDirName))
	xmlOut := op.xml.resolve(filepath.Join(reports, xmlReportName))
	csvOut := op.csv.resolve(filepath.Join(reports, csvReportName))

	if err := os.MkdirAll(reports, defaultDirPerms); err != nil {
		op.errorf("Failed to create reports directory %s: %v", reports, err)
		return fmt.Errorf("failed to create reports directory: %w", err)
	}
	if err := os.MkdirAll(execDir, defaultDirPerms); err != nil {
		op.errorf("Failed to create execution data directory %s: %v", execDir, err)
		return fmt.Errorf("failed to create execution data directory: %w", err)
	}

	if len(execFiles) == 0 {
		op.warnf("No execution data files provided.")
	}
	for _, f := range execFiles {
		op.infof("Loading execution data file: %s", f)
	}

	classRoots := classFiles
	if len(op.includes) > 0 || len(op.excludes) > 0 {
		staged := filepath.Join(execDir, stagedClassDir)
		n, err := filter.Stage(classFiles, op.includes, op.excludes, staged)
		if err != nil {
			return err
		}
		op.infof("Staged %d class files matching the configured filters.", n)
		classRoots = []string{staged}
	}

	eng := op.engine
	if eng == nil {
		eng = engine.NewJacocoCLI(exec.NewCommandExecutor(), p.JavaBinary, p.CLIJar)
	}
	if err := eng.Report(ctx, engine.ReportRequest{
		ExecFiles:   execFiles,
		ClassRoots:  classRoots,
		SourceRoots: sourceFiles,
		HTML:        htmlOut,
		XML:         xmlOut,
		CSV:         csvOut,
		Name:        op.name,
		Encoding:    op.encoding,
		TabWidth:    op.tabWidth,
		Quiet:       op.quiet,
	}); err != nil {
		return err
	}

	if htmlOut != "" {
		op.infof("HTML report: %s", filepath.Join(htmlOut, indexPageName))
	}
	if xmlOut != "" {
		op.infof("XML report: %s", xmlOut)
	}
	if csvOut != "" {
		op.infof("CSV report: %s", csvOut)
	}
	return nil
}

// runTests executes the test suite under the coverage agent and reports
// whether the destination exec file exists afterwards. A suite that fails or
// produces no coverage simply yields no input file.
func (op *ReportOperation) runTests(ctx context.Context, destFile string) (bool, error) {
	p := op.project

	agentOpts := slices.Clone(op.agentOptions)
	if p.AgentProperties != "" {
		fromFile, err := testrun.LoadAgentOptions(p.AgentProperties)
		if err != nil {
			return false, err
		}
		agentOpts = append(agentOpts, fromFile...)
	}
	agentArg := testrun.AgentArg(p.AgentJar, destFile, agentOpts)

	runner := op.runner
	if runner == nil {
		classpath := p.TestClasspath
		if len(classpath) == 0 {
			classpath = []string{p.BuildMainDirectory(), p.BuildTestDirectory()}
		}
		runner = testrun.NewJVMRunner(exec.NewCommandExecutor(),
			p.JavaBinary, classpath, p.TestLauncher, p.Root)
	}

	options := append(slices.Clone(p.TestOptions), op.testToolOptions...)
	op.infof("Running tests with execution data file: %s", destFile)
	result, err := runner.Run(ctx, agentArg, options)
	if err != nil {
		return false, fmt.Errorf("failed to run tests: %w", err)
	}
	if result.ExitCode != 0 {
		op.warnf("Test run exited with code %d.", result.ExitCode)
	}

	if _, err := os.Stat(destFile); err != nil {
		return false, nil
	}
	return true, nil
}

func (op *ReportOperation) infof(format string, args ...interface{}) {
	if !op.quiet {
		logger.Infof(format, args...)
	}
}

func (op *ReportOperation) warnf(format string, args ...interface{}) {
	if !op.quiet {
		logger.Warnf(format, args...)
	}
}

func (op *ReportOperation) errorf(format string, args ...interface{}) {
	if !op.quiet {
		logger.Errorf(format, args...)
	}
}
