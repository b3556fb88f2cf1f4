package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jvmtools/jacococtl/internal/exec"
)

// JacocoCLI implements the Engine interface by invoking the JaCoCo command
// line interface (jacococli.jar) in a separate JVM.
type JacocoCLI struct {
	executor exec.Executor
	java     string
	jar      string
}

// NewJacocoCLI creates an engine backed by the given java binary and
// jacococli jar.
func NewJacocoCLI(executor exec.Executor, javaBinary, cliJar string) *JacocoCLI {
	return &JacocoCLI{
		executor: executor,
		java:     javaBinary,
		jar:      cliJar,
	}
}

// Report runs `jacococli report`.
func (c *JacocoCLI) Report(ctx context.Context, req ReportRequest) error {
	args := []string{"-jar", c.jar, "report"}
	args = append(args, req.ExecFiles...)
	for _, root := range req.ClassRoots {
		args = append(args, "--classfiles", root)
	}
	for _, root := range req.SourceRoots {
		args = append(args, "--sourcefiles", root)
	}
	if req.HTML != "" {
		args = append(args, "--html", req.HTML)
	}
	if req.XML != "" {
		args = append(args, "--xml", req.XML)
	}
	if req.CSV != "" {
		args = append(args, "--csv", req.CSV)
	}
	if req.Name != "" {
		args = append(args, "--name", req.Name)
	}
	if req.Encoding != "" {
		args = append(args, "--encoding", req.Encoding)
	}
	if req.TabWidth > 0 {
		args = append(args, "--tabwith", strconv.Itoa(req.TabWidth))
	}
	if req.Quiet {
		args = append(args, "--quiet")
	}
	return c.run(ctx, "report", args)
}

// Merge runs `jacococli merge`.
func (c *JacocoCLI) Merge(ctx context.Context, execFiles []string, dest string) error {
	args := []string{"-jar", c.jar, "merge"}
	args = append(args, execFiles...)
	args = append(args, "--destfile", dest)
	return c.run(ctx, "merge", args)
}

// Instrument runs `jacococli instrument`.
func (c *JacocoCLI) Instrument(ctx context.Context, classRoots []string, dest string) error {
	args := []string{"-jar", c.jar, "instrument"}
	args = append(args, classRoots...)
	args = append(args, "--dest", dest)
	return c.run(ctx, "instrument", args)
}

func (c *JacocoCLI) run(ctx context.Context, command string, args []string) error {
	result, err := c.executor.Run(ctx, "", c.java, args...)
	if err != nil {
		return fmt.Errorf("failed to invoke jacococli %s: %w", command, err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("jacococli %s exited with code %d: %s",
			command, result.ExitCode, strings.TrimSpace(result.Stderr))
	}
	return nil
}
