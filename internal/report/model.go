// Package report reads back generated JaCoCo XML reports so coverage totals
// can be summarized and gated without re-running the toolchain.
package report

import "encoding/xml"

// Counter types emitted by JaCoCo.
const (
	CounterInstruction = "INSTRUCTION"
	CounterBranch      = "BRANCH"
	CounterLine        = "LINE"
	CounterComplexity  = "COMPLEXITY"
	CounterMethod      = "METHOD"
	CounterClass       = "CLASS"
)

// Report is the root element of a JaCoCo XML report.
type Report struct {
	XMLName     xml.Name      `xml:"report"`
	Name        string        `xml:"name,attr"`
	SessionInfo []SessionInfo `xml:"sessioninfo"`
	Packages    []Package     `xml:"package"`
	Groups      []Group       `xml:"group"`
	Counters    []Counter     `xml:"counter"`
}

// Counter holds missed and covered totals for one counter type.
type Counter struct {
	Type    string `xml:"type,attr"`
	Missed  int    `xml:"missed,attr"`
	Covered int    `xml:"covered,attr"`
}

// SessionInfo identifies one agent session contributing execution data.
type SessionInfo struct {
	ID    string `xml:"id,attr"`
	Start int64  `xml:"start,attr"`
	Dump  int64  `xml:"dump,attr"`
}

// Line carries per-line instruction and branch counts.
type Line struct {
	Nr int `xml:"nr,attr"`
	Mi int `xml:"mi,attr"`
	Ci int `xml:"ci,attr"`
	Mb int `xml:"mb,attr"`
	Cb int `xml:"cb,attr"`
}

// SourceFile aggregates line coverage for one source file.
type SourceFile struct {
	Name     string    `xml:"name,attr"`
	Lines    []Line    `xml:"line"`
	Counters []Counter `xml:"counter"`
}

// Method aggregates coverage for one method.
type Method struct {
	Name     string    `xml:"name,attr"`
	Desc     string    `xml:"desc,attr"`
	Line     int       `xml:"line,attr"`
	Counters []Counter `xml:"counter"`
}

// Class aggregates coverage for one class.
type Class struct {
	Name           string    `xml:"name,attr"`
	SourceFileName string    `xml:"sourcefilename,attr"`
	Methods        []Method  `xml:"method"`
	Counters       []Counter `xml:"counter"`
}

// Package aggregates coverage for one Java package.
type Package struct {
	Name        string       `xml:"name,attr"`
	Classes     []Class      `xml:"class"`
	SourceFiles []SourceFile `xml:"sourcefile"`
	Counters    []Counter    `xml:"counter"`
}

// Group nests packages for multi-module bundles.
type Group struct {
	Name     string    `xml:"name,attr"`
	Packages []Package `xml:"package"`
	Groups   []Group   `xml:"group"`
	Counters []Counter `xml:"counter"`
}
