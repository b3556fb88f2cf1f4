// Package testrun launches the project's test suite in a separate JVM with
// the JaCoCo agent attached, so that a fresh execution data file is produced
// for the report.
package testrun

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/magiconair/properties"

	"github.com/jvmtools/jacococtl/internal/exec"
)

// Runner abstracts the test-runner invocation so the report operation can be
// tested without a JVM.
type Runner interface {
	// Run starts the test suite with the given agent argument prepended to
	// the JVM options and the extra tool options appended to the launcher
	// arguments. A failing test suite is reported through the result's exit
	// code, not through the error.
	Run(ctx context.Context, agentArg string, options []string) (*exec.ExecutionResult, error)
}

// JVMRunner runs the configured test launcher on a real JVM.
type JVMRunner struct {
	Executor   exec.Executor
	JavaBinary string
	Classpath  []string
	Launcher   string
	WorkDir    string
}

// NewJVMRunner creates a runner for the given toolchain.
func NewJVMRunner(executor exec.Executor, javaBinary string, classpath []string, launcher, workDir string) *JVMRunner {
	return &JVMRunner{
		Executor:   executor,
		JavaBinary: javaBinary,
		Classpath:  classpath,
		Launcher:   launcher,
		WorkDir:    workDir,
	}
}

// Run executes the test launcher under the coverage agent.
func (r *JVMRunner) Run(ctx context.Context, agentArg string, options []string) (*exec.ExecutionResult, error) {
	if r.Launcher == "" {
		return nil, fmt.Errorf("no test launcher configured")
	}
	var args []string
	if agentArg != "" {
		args = append(args, agentArg)
	}
	if len(r.Classpath) > 0 {
		args = append(args, "-cp", strings.Join(r.Classpath, string(os.PathListSeparator)))
	}
	args = append(args, r.Launcher)
	args = append(args, options...)
	return r.Executor.Run(ctx, r.WorkDir, r.JavaBinary, args...)
}

// AgentArg builds the -javaagent JVM option attaching the JaCoCo agent with
// the given destination file. Extra options are appended in the order given.
func AgentArg(agentJar, destFile string, extra []string) string {
	opts := append([]string{"destfile=" + destFile}, extra...)
	return fmt.Sprintf("-javaagent:%s=%s", agentJar, strings.Join(opts, ","))
}

// LoadAgentOptions reads additional agent options from a
// jacoco-agent.properties style file and returns them as key=value pairs in
// stable key order. The destfile key is ignored; the report operation owns
// the destination.
func LoadAgentOptions(path string) ([]string, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent properties %s: %w", path, err)
	}
	keys := p.Keys()
	sort.Strings(keys)
	var opts []string
	for _, k := range keys {
		if k == "destfile" {
			continue
		}
		opts = append(opts, k+"="+p.GetString(k, ""))
	}
	return opts, nil
}
