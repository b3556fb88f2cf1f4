// Package config loads the jacococtl project configuration. Every field has
// a convention default so a config file is optional; values can also be
// overridden through JACOCOCTL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ProjectConfig describes the conventional directory layout of the JVM
// project being measured. All paths are relative to the project root unless
// absolute.
type ProjectConfig struct {
	BuildDir    string `mapstructure:"build_dir"`
	MainClasses string `mapstructure:"main_classes"`
	TestClasses string `mapstructure:"test_classes"`
	SrcMain     string `mapstructure:"src_main"`
	SrcTest     string `mapstructure:"src_test"`
}

// JavaConfig locates the JVM and the JaCoCo toolchain artifacts.
type JavaConfig struct {
	Binary   string `mapstructure:"binary"`
	AgentJar string `mapstructure:"agent_jar"`
	CLIJar   string `mapstructure:"cli_jar"`
}

// TestConfig describes how the test suite is launched.
type TestConfig struct {
	// Launcher is the main class started under the coverage agent.
	Launcher  string   `mapstructure:"launcher"`
	Classpath []string `mapstructure:"classpath"`
	Options   []string `mapstructure:"options"`
	// AgentProperties optionally points at a jacoco-agent.properties file
	// whose entries are appended to the -javaagent option list.
	AgentProperties string `mapstructure:"agent_properties"`
}

// ReportConfig carries report-level settings.
type ReportConfig struct {
	Name     string   `mapstructure:"name"`
	Encoding string   `mapstructure:"encoding"`
	TabWidth int      `mapstructure:"tab_width"`
	Includes []string `mapstructure:"includes"`
	Excludes []string `mapstructure:"excludes"`
}

// Config is the root configuration object.
type Config struct {
	Project ProjectConfig `mapstructure:"project"`
	Java    JavaConfig    `mapstructure:"java"`
	Test    TestConfig    `mapstructure:"test"`
	Report  ReportConfig  `mapstructure:"report"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("project.build_dir", "build")
	v.SetDefault("project.main_classes", "build/main")
	v.SetDefault("project.test_classes", "build/test")
	v.SetDefault("project.src_main", "src/main/java")
	v.SetDefault("project.src_test", "src/test/java")
	v.SetDefault("java.binary", "java")
	v.SetDefault("java.agent_jar", "lib/jacocoagent.jar")
	v.SetDefault("java.cli_jar", "lib/jacococli.jar")
	v.SetDefault("test.launcher", "org.junit.platform.console.ConsoleLauncher")
	v.SetDefault("report.name", "JaCoCo Coverage Report")
	v.SetDefault("report.tab_width", 4)
}

// Load reads the configuration from the given file. When path is empty it
// looks for a jacococtl.yaml in the current directory; a missing file is not
// an error since every setting has a default.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("JACOCOCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("jacococtl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data: %w", err)
	}

	return &cfg, nil
}
