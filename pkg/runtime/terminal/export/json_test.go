package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/NotAShelf/ssa/pkg/models/api"
	"github.com/NotAShelf/ssa/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONReporter(t *testing.T) {
	t.Run("report round-trips with the same subset and aggregates", func(t *testing.T) {
		var buf bytes.Buffer

		err := NewJSONReporter(&buf, "1.2.3").Handle(unsafeAnalysis())

		require.NoError(t, err)
		var report api.AnalysisReport
		require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

		assert.Equal(t, "ssa", report.Tool)
		assert.Equal(t, "1.2.3", report.Version)
		assert.False(t, report.GeneratedAt.IsZero())
		assert.Equal(t, 3, report.ServicesTotal)
		assert.InDelta(t, 5.5, report.AverageExposure, 1e-9)
		assert.InDelta(t, 2.25, report.AverageHappiness, 1e-9)

		require.Len(t, report.TopServices, 2)
		assert.Equal(t, "sshd.service", report.TopServices[0].Unit)
		assert.InDelta(t, 9.6, report.TopServices[0].Exposure, 1e-9)
		assert.Equal(t, api.PredicateUnsafe, report.TopServices[0].Predicate)
		assert.Equal(t, "😨", report.TopServices[0].Happy)

		require.NotNil(t, report.Filter)
		assert.Equal(t, api.PredicateUnsafe, report.Filter.Predicate)
		assert.Equal(t, 2, report.Filter.TopN)
	})

	t.Run("uses the upstream-compatible key names", func(t *testing.T) {
		var buf bytes.Buffer

		err := NewJSONReporter(&buf, "dev").Handle(unsafeAnalysis())

		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, `"average_exposure"`)
		assert.Contains(t, out, `"average_happiness"`)
		assert.Contains(t, out, `"top_services"`)
		assert.NotContains(t, out, "\x1b[") // no escape codes ever
	})

	t.Run("host block is omitted when unknown", func(t *testing.T) {
		var buf bytes.Buffer

		err := NewJSONReporter(&buf, "dev").Handle(&domain.Analysis{})

		require.NoError(t, err)
		assert.NotContains(t, buf.String(), `"host"`)

		var report api.AnalysisReport
		require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
		assert.Nil(t, report.Host)
		assert.Empty(t, report.TopServices)
	})

	t.Run("host block carries the machine identity when known", func(t *testing.T) {
		var buf bytes.Buffer
		analysis := unsafeAnalysis()
		analysis.Host = domain.HostInfo{Hostname: "builder-7", OS: "Debian GNU/Linux 12 (bookworm)", OSVersion: "12"}

		err := NewJSONReporter(&buf, "dev").Handle(analysis)

		require.NoError(t, err)
		var report api.AnalysisReport
		require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
		require.NotNil(t, report.Host)
		assert.Equal(t, "builder-7", report.Host.Hostname)
		assert.Equal(t, "12", report.Host.OSVersion)
	})
}
