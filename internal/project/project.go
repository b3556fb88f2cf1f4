// Package project models the build host: the conventional directory roots of
// the JVM project under measurement and the toolchain needed to run its
// tests. It is the only source of default paths for the report operation.
package project

import (
	"path/filepath"

	"github.com/jvmtools/jacococtl/internal/config"
)

// Project supplies the conventional roots and toolchain locations of the
// build being measured.
type Project struct {
	// Root is the project root directory; relative configuration paths are
	// resolved against it.
	Root string

	buildDir    string
	mainClasses string
	testClasses string
	srcMain     string
	srcTest     string

	JavaBinary string
	AgentJar   string
	CLIJar     string

	TestLauncher    string
	TestClasspath   []string
	TestOptions     []string
	AgentProperties string
}

// FromConfig builds a Project rooted at root from the loaded configuration.
func FromConfig(root string, cfg *config.Config) *Project {
	return &Project{
		Root:            root,
		buildDir:        cfg.Project.BuildDir,
		mainClasses:     cfg.Project.MainClasses,
		testClasses:     cfg.Project.TestClasses,
		srcMain:         cfg.Project.SrcMain,
		srcTest:         cfg.Project.SrcTest,
		JavaBinary:      cfg.Java.Binary,
		AgentJar:        resolve(root, cfg.Java.AgentJar),
		CLIJar:          resolve(root, cfg.Java.CLIJar),
		TestLauncher:    cfg.Test.Launcher,
		TestClasspath:   resolveAll(root, cfg.Test.Classpath),
		TestOptions:     cfg.Test.Options,
		AgentProperties: resolve(root, cfg.Test.AgentProperties),
	}
}

// BuildDirectory returns the build output root.
func (p *Project) BuildDirectory() string {
	return resolve(p.Root, p.buildDir)
}

// BuildMainDirectory returns the compiled main classes directory.
func (p *Project) BuildMainDirectory() string {
	return resolve(p.Root, p.mainClasses)
}

// BuildTestDirectory returns the compiled test classes directory.
func (p *Project) BuildTestDirectory() string {
	return resolve(p.Root, p.testClasses)
}

// SrcMainDirectory returns the main source directory.
func (p *Project) SrcMainDirectory() string {
	return resolve(p.Root, p.srcMain)
}

// SrcTestDirectory returns the test source directory.
func (p *Project) SrcTestDirectory() string {
	return resolve(p.Root, p.srcTest)
}

func resolve(root, path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func resolveAll(root string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, resolve(root, p))
	}
	return out
}
