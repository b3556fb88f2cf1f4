package jacoco

import "path/filepath"

// Convention layout under the build directory. Existing pipelines depend on
// these exact locations.
const (
	execDirName     = "jacoco"
	execFileName    = "jacoco.exec"
	stagedClassDir  = "classes-filtered"
	htmlDirName     = "html"
	xmlReportName   = "jacocoTestReport.xml"
	csvReportName   = "jacocoTestReport.csv"
	indexPageName   = "index.html"
	defaultDirPerms = 0755
)

// reportsDir returns <build>/reports/jacoco/test.
func reportsDir(buildDir string) string {
	return filepath.Join(buildDir, "reports", "jacoco", "test")
}

// execDataDir returns <build>/jacoco.
func execDataDir(buildDir string) string {
	return filepath.Join(buildDir, execDirName)
}

// defaultExecFile returns <build>/jacoco/jacoco.exec.
func defaultExecFile(buildDir string) string {
	return filepath.Join(execDataDir(buildDir), execFileName)
}

// normalize brings every accepted path spelling to one canonical form so
// equivalent inputs compare equal.
func normalize(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}

// appendNormalized adds the normalized non-empty paths to dst.
func appendNormalized(dst []string, paths []string) []string {
	for _, p := range paths {
		if p == "" {
			continue
		}
		dst = append(dst, normalize(p))
	}
	return dst
}
