package report

import (
	"encoding/xml"
	"fmt"
	"os"
)

// Load parses a JaCoCo XML report from disk.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}
	var r Report
	if err := xml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	return &r, nil
}

// Total returns the covered and missed count of the given counter type.
func (c Counter) Total() int {
	return c.Covered + c.Missed
}

// Percent returns the covered ratio as a percentage. An empty counter
// reports zero.
func (c Counter) Percent() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.Covered) / float64(total) * 100
}

// Counter returns the report-level counter of the given type.
func (r *Report) Counter(counterType string) (Counter, bool) {
	for _, c := range r.Counters {
		if c.Type == counterType {
			return c, true
		}
	}
	return Counter{}, false
}

// Violation describes a counter that fell below its required coverage
// percentage.
type Violation struct {
	CounterType string
	Actual      float64
	Required    float64
}

func (v Violation) String() string {
	return fmt.Sprintf("%s coverage %.1f%% is below required %.1f%%",
		v.CounterType, v.Actual, v.Required)
}

// Check compares the report-level counters against required minimum
// percentages keyed by counter type. A required counter missing from the
// report counts as 0% covered.
func (r *Report) Check(minimums map[string]float64) []Violation {
	var violations []Violation
	for _, counterType := range []string{
		CounterInstruction, CounterBranch, CounterLine,
		CounterComplexity, CounterMethod, CounterClass,
	} {
		required, ok := minimums[counterType]
		if !ok {
			continue
		}
		actual := 0.0
		if c, found := r.Counter(counterType); found {
			actual = c.Percent()
		}
		if actual < required {
			violations = append(violations, Violation{
				CounterType: counterType,
				Actual:      actual,
				Required:    required,
			})
		}
	}
	return violations
}
