package testrun

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvmtools/jacococtl/internal/exec"
)

type fakeExecutor struct {
	dir     string
	command []string
	result  *exec.ExecutionResult
}

func (f *fakeExecutor) Run(ctx context.Context, dir, command string, args ...string) (*exec.ExecutionResult, error) {
	f.dir = dir
	f.command = append([]string{command}, args...)
	if f.result != nil {
		return f.result, nil
	}
	return &exec.ExecutionResult{ExitCode: 0}, nil
}

func TestAgentArg(t *testing.T) {
	arg := AgentArg("lib/jacocoagent.jar", "build/jacoco/jacoco.exec", nil)
	assert.Equal(t, "-javaagent:lib/jacocoagent.jar=destfile=build/jacoco/jacoco.exec", arg)

	arg = AgentArg("agent.jar", "out.exec", []string{"append=false", "dumponexit=true"})
	assert.Equal(t, "-javaagent:agent.jar=destfile=out.exec,append=false,dumponexit=true", arg)
}

func TestJVMRunner_Run(t *testing.T) {
	fake := &fakeExecutor{}
	r := NewJVMRunner(fake, "java",
		[]string{"build/main", "build/test", "lib/junit.jar"},
		"org.junit.platform.console.ConsoleLauncher", "/work/demo")

	agentArg := AgentArg("lib/jacocoagent.jar", "build/jacoco/jacoco.exec", nil)
	result, err := r.Run(context.Background(), agentArg, []string{"--scan-classpath"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "/work/demo", fake.dir)

	cp := strings.Join([]string{"build/main", "build/test", "lib/junit.jar"}, string(os.PathListSeparator))
	assert.Equal(t, []string{
		"java", agentArg, "-cp", cp,
		"org.junit.platform.console.ConsoleLauncher", "--scan-classpath",
	}, fake.command)
}

func TestJVMRunner_Run_FailingSuiteIsNotAnError(t *testing.T) {
	fake := &fakeExecutor{result: &exec.ExecutionResult{ExitCode: 1, Stderr: "2 tests failed"}}
	r := NewJVMRunner(fake, "java", nil, "com.example.TestMain", "")

	result, err := r.Run(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ExitCode)
}

func TestJVMRunner_Run_NoLauncher(t *testing.T) {
	r := NewJVMRunner(&fakeExecutor{}, "java", nil, "", "")
	_, err := r.Run(context.Background(), "", nil)
	assert.Error(t, err)
}

func TestLoadAgentOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jacoco-agent.properties")
	content := "dumponexit=true\nappend=false\ndestfile=ignored.exec\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	opts, err := LoadAgentOptions(path)
	require.NoError(t, err)
	// Sorted by key, destfile dropped.
	assert.Equal(t, []string{"append=false", "dumponexit=true"}, opts)
}

func TestLoadAgentOptions_MissingFile(t *testing.T) {
	_, err := LoadAgentOptions(filepath.Join(t.TempDir(), "nope.properties"))
	assert.Error(t, err)
}
