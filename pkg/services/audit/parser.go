package audit

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/NotAShelf/ssa/pkg/models/domain"
)

// MalformedInputError reports a security document that could not be decoded.
// Offset is the index of the offending record (-1 when the failure is not
// tied to a single record) and Unit names it when known.
type MalformedInputError struct {
	Reason string
	Offset int
	Unit   string
	Err    error
}

func (e *MalformedInputError) Error() string {
	msg := e.Reason
	switch {
	case e.Offset >= 0 && e.Unit != "":
		msg = fmt.Sprintf("record %d (%s): %s", e.Offset, e.Unit, e.Reason)
	case e.Offset >= 0:
		msg = fmt.Sprintf("record %d: %s", e.Offset, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return "malformed security report: " + msg
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// rawRecord mirrors one element of `systemd-analyze security --json=short`
// output. Numeric fields stay raw because systemd emits them either as JSON
// numbers or as quoted numeric strings depending on version.
type rawRecord struct {
	Unit      string          `json:"unit"`
	Exposure  json.RawMessage `json:"exposure"`
	Predicate string          `json:"predicate"`
	Happy     string          `json:"happy"`
	Checks    []rawCheck      `json:"checks"`
}

type rawCheck struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Weight      json.RawMessage `json:"weight"`
	Exposure    json.RawMessage `json:"exposure"`
}

// Parse decodes a raw security report into per-unit records, preserving the
// document order. Unknown fields are ignored; a missing or mistyped required
// field fails the whole parse with a MalformedInputError.
func Parse(data []byte) ([]domain.ServiceReport, error) {
	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedInputError{
			Reason: "document is not a JSON array of unit reports",
			Offset: -1,
			Err:    err,
		}
	}
	// a top-level null decodes into a nil slice without an error
	if raw == nil {
		return nil, &MalformedInputError{Reason: "document is not a JSON array of unit reports", Offset: -1}
	}

	reports := make([]domain.ServiceReport, 0, len(raw))
	for i, rec := range raw {
		if rec.Unit == "" {
			return nil, &MalformedInputError{Reason: "missing unit name", Offset: i}
		}
		exposure, err := parseNumber(rec.Exposure)
		if err != nil {
			return nil, &MalformedInputError{Reason: "invalid exposure", Offset: i, Unit: rec.Unit, Err: err}
		}
		predicate, err := domain.ParsePredicate(rec.Predicate)
		if err != nil {
			return nil, &MalformedInputError{Reason: "invalid predicate", Offset: i, Unit: rec.Unit, Err: err}
		}

		report := domain.ServiceReport{
			Unit:      rec.Unit,
			Exposure:  exposure,
			Predicate: predicate,
			Happy:     rec.Happy,
		}
		if len(rec.Checks) > 0 {
			report.Checks = make([]domain.CheckResult, 0, len(rec.Checks))
			for _, c := range rec.Checks {
				check, err := parseCheck(c)
				if err != nil {
					return nil, &MalformedInputError{Reason: "invalid check entry", Offset: i, Unit: rec.Unit, Err: err}
				}
				report.Checks = append(report.Checks, check)
			}
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func parseCheck(raw rawCheck) (domain.CheckResult, error) {
	check := domain.CheckResult{
		Name:        raw.Name,
		Description: raw.Description,
	}
	// Per-check numbers are optional; absent means zero weight.
	if present(raw.Weight) {
		weight, err := parseNumber(raw.Weight)
		if err != nil {
			return domain.CheckResult{}, fmt.Errorf("check %q: %w", raw.Name, err)
		}
		check.Weight = weight
	}
	if present(raw.Exposure) {
		exposure, err := parseNumber(raw.Exposure)
		if err != nil {
			return domain.CheckResult{}, fmt.Errorf("check %q: %w", raw.Name, err)
		}
		check.Exposure = exposure
	}
	return check, nil
}

// parseNumber accepts a JSON number or a quoted numeric string.
func parseNumber(raw json.RawMessage) (float64, error) {
	if !present(raw) {
		return 0, fmt.Errorf("value is missing")
	}
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return num, nil
	}
	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return 0, fmt.Errorf("value %s is neither a number nor a string", raw)
	}
	num, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("value %q is not numeric", str)
	}
	return num, nil
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
