package adapters

import (
	"github.com/NotAShelf/ssa/pkg/models/api"
	"github.com/NotAShelf/ssa/pkg/models/domain"
)

func MapPredicateDomainToApi(p domain.Predicate) api.Predicate {
	switch p {
	case domain.PredicateOK:
		return api.PredicateOK
	case domain.PredicateMedium:
		return api.PredicateMedium
	case domain.PredicateExposed:
		return api.PredicateExposed
	case domain.PredicateUnsafe:
		return api.PredicateUnsafe
	default:
		return api.PredicateOK
	}
}

func MapCheckResultDomainToApi(c domain.CheckResult) api.CheckRecord {
	return api.CheckRecord{
		Name:        c.Name,
		Description: c.Description,
		Weight:      c.Weight,
		Exposure:    c.Exposure,
	}
}

func MapServiceReportDomainToApi(s domain.ServiceReport) api.ServiceRecord {
	res := api.ServiceRecord{
		Unit:      s.Unit,
		Exposure:  s.Exposure,
		Predicate: MapPredicateDomainToApi(s.Predicate),
		Happy:     s.Happy,
	}
	if len(s.Checks) > 0 {
		res.Checks = make([]api.CheckRecord, 0, len(s.Checks))
		for _, c := range s.Checks {
			res.Checks = append(res.Checks, MapCheckResultDomainToApi(c))
		}
	}
	return res
}

func MapHostInfoDomainToApi(h domain.HostInfo) api.HostInfo {
	return api.HostInfo{
		Hostname:  h.Hostname,
		OS:        h.OS,
		OSVersion: h.OSVersion,
	}
}

func MapFilterSpecDomainToApi(f domain.FilterSpec) api.ReportFilter {
	res := api.ReportFilter{TopN: f.TopN}
	if f.Predicate != nil {
		res.Predicate = MapPredicateDomainToApi(*f.Predicate)
	}
	return res
}

func MapAnalysisDomainToApi(a domain.Analysis) api.AnalysisReport {
	res := api.AnalysisReport{
		ServicesTotal:    a.Total,
		AverageExposure:  a.Stats.MeanExposure,
		AverageHappiness: a.Stats.MeanHappiness,
		TopServices:      make([]api.ServiceRecord, 0, len(a.Services)),
	}
	for _, s := range a.Services {
		res.TopServices = append(res.TopServices, MapServiceReportDomainToApi(s))
	}
	if a.Filter.Predicate != nil || a.Filter.TopN > 0 {
		f := MapFilterSpecDomainToApi(a.Filter)
		res.Filter = &f
	}
	if a.Host != (domain.HostInfo{}) {
		h := MapHostInfoDomainToApi(a.Host)
		res.Host = &h
	}
	return res
}
