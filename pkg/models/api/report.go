package api

import "time"

type Predicate string

const (
	PredicateOK      Predicate = "OK"
	PredicateMedium  Predicate = "MEDIUM"
	PredicateExposed Predicate = "EXPOSED"
	PredicateUnsafe  Predicate = "UNSAFE"
)

type ServiceRecord struct {
	Unit      string        `json:"unit"`
	Exposure  float64       `json:"exposure"`
	Predicate Predicate     `json:"predicate"`
	Happy     string        `json:"happy,omitempty"`
	Checks    []CheckRecord `json:"checks,omitempty"`
}

type CheckRecord struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Weight      float64 `json:"weight"`
	Exposure    float64 `json:"exposure"`
}

type HostInfo struct {
	Hostname  string `json:"hostname,omitempty"`
	OS        string `json:"os,omitempty"`
	OSVersion string `json:"os_version,omitempty"`
}

type ReportFilter struct {
	Predicate Predicate `json:"predicate,omitempty"`
	TopN      int       `json:"top_n,omitempty"`
}

type AnalysisReport struct {
	Tool             string          `json:"tool"`
	Version          string          `json:"version"`
	GeneratedAt      time.Time       `json:"generated_at"`
	Host             *HostInfo       `json:"host,omitempty"`
	ServicesTotal    int             `json:"services_total"`
	Filter           *ReportFilter   `json:"filter,omitempty"`
	AverageExposure  float64         `json:"average_exposure"`
	AverageHappiness float64         `json:"average_happiness"`
	TopServices      []ServiceRecord `json:"top_services"`
}
