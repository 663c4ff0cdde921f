package domain

// ExposureMax is the upper bound of the exposure scale used by
// systemd-analyze security; 0 is fully sandboxed, ExposureMax is fully exposed.
const ExposureMax = 10.0

// HappinessMax is the upper bound of the derived happiness/safety scale.
const HappinessMax = 5.0

// ServiceReport is the parsed security record for a single systemd unit.
type ServiceReport struct {
	Unit      string
	Exposure  float64
	Predicate Predicate
	// Happy is the emoji systemd-analyze attaches to the unit. Display only;
	// aggregate math never reads it.
	Happy  string
	Checks []CheckResult
}

// CheckResult is one entry of a unit's per-check breakdown, present when the
// upstream report includes it.
type CheckResult struct {
	Name        string
	Description string
	Weight      float64
	Exposure    float64
}

// AggregateStats holds corpus-wide statistics computed once per run over the
// full, unfiltered record set.
type AggregateStats struct {
	MeanExposure  float64
	MeanHappiness float64
	Count         int
}

// FilterSpec records which display filters were requested for a run.
// A nil Predicate means no predicate filter; TopN zero means no cap.
type FilterSpec struct {
	Predicate *Predicate
	TopN      int
}

// Analysis is the complete result of one run: aggregate statistics over the
// full set plus the filtered, ranked subset selected for display.
type Analysis struct {
	Stats    AggregateStats
	Services []ServiceReport
	Total    int
	Filter   FilterSpec
	Host     HostInfo
}

// HostInfo describes the machine the report was captured on.
type HostInfo struct {
	Hostname  string
	OS        string
	OSVersion string
}
