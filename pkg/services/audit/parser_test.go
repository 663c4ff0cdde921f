package audit

import (
	"testing"

	"github.com/NotAShelf/ssa/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("parses every record in document order", func(t *testing.T) {
		data := []byte(`[
			{"unit":"systemd-journald.service","exposure":4.9,"predicate":"OK","happy":"🙂"},
			{"unit":"sshd.service","exposure":9.6,"predicate":"UNSAFE","happy":"😨"},
			{"unit":"systemd-logind.service","exposure":2.8,"predicate":"OK","happy":"😀"}
		]`)

		reports, err := Parse(data)

		require.NoError(t, err)
		require.Len(t, reports, 3)
		assert.Equal(t, "systemd-journald.service", reports[0].Unit)
		assert.Equal(t, "sshd.service", reports[1].Unit)
		assert.Equal(t, "systemd-logind.service", reports[2].Unit)
		assert.Equal(t, 9.6, reports[1].Exposure)
		assert.Equal(t, domain.PredicateUnsafe, reports[1].Predicate)
		assert.Equal(t, "😨", reports[1].Happy)
	})

	t.Run("accepts exposure as a quoted numeric string", func(t *testing.T) {
		// Some systemd versions quote the number.
		data := []byte(`[{"unit":"cups.service","exposure":"8.2","predicate":"EXPOSED","happy":"🙁"}]`)

		reports, err := Parse(data)

		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, 8.2, reports[0].Exposure)
	})

	t.Run("ignores unknown fields", func(t *testing.T) {
		data := []byte(`[{"unit":"foo.service","exposure":5.0,"predicate":"MEDIUM","happy":"😐","extra":true,"notes":"x"}]`)

		reports, err := Parse(data)

		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, domain.PredicateMedium, reports[0].Predicate)
	})

	t.Run("parses optional per-check breakdown", func(t *testing.T) {
		data := []byte(`[{
			"unit":"nginx.service","exposure":7.1,"predicate":"MEDIUM","happy":"😐",
			"checks":[
				{"name":"PrivateTmp=","description":"Service has access to other software's temporary files","weight":"0.1","exposure":0.2},
				{"name":"NoNewPrivileges=","weight":1.0,"exposure":"1.5"}
			]
		}]`)

		reports, err := Parse(data)

		require.NoError(t, err)
		require.Len(t, reports, 1)
		require.Len(t, reports[0].Checks, 2)
		assert.Equal(t, "PrivateTmp=", reports[0].Checks[0].Name)
		assert.Equal(t, 0.1, reports[0].Checks[0].Weight)
		assert.Equal(t, 1.5, reports[0].Checks[1].Exposure)
	})

	t.Run("empty array yields no records and no error", func(t *testing.T) {
		reports, err := Parse([]byte(`[]`))

		require.NoError(t, err)
		assert.Empty(t, reports)
	})

	t.Run("rejects a document that is not an array", func(t *testing.T) {
		_, err := Parse([]byte(`{"unit":"foo.service"}`))

		require.Error(t, err)
		var malformed *MalformedInputError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, -1, malformed.Offset)
	})

	t.Run("rejects a null document", func(t *testing.T) {
		_, err := Parse([]byte(`null`))

		var malformed *MalformedInputError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("rejects a record with a missing unit name", func(t *testing.T) {
		data := []byte(`[
			{"unit":"ok.service","exposure":1.0,"predicate":"OK","happy":"😀"},
			{"exposure":2.0,"predicate":"OK","happy":"😀"}
		]`)

		_, err := Parse(data)

		var malformed *MalformedInputError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, 1, malformed.Offset)
	})

	t.Run("rejects a record with a missing exposure", func(t *testing.T) {
		data := []byte(`[{"unit":"broken.service","predicate":"OK","happy":"😀"}]`)

		_, err := Parse(data)

		var malformed *MalformedInputError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, 0, malformed.Offset)
		assert.Equal(t, "broken.service", malformed.Unit)
	})

	t.Run("rejects a non-numeric exposure string", func(t *testing.T) {
		data := []byte(`[{"unit":"broken.service","exposure":"high","predicate":"OK","happy":"😀"}]`)

		_, err := Parse(data)

		var malformed *MalformedInputError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "invalid exposure", malformed.Reason)
	})

	t.Run("rejects an unknown predicate", func(t *testing.T) {
		data := []byte(`[{"unit":"weird.service","exposure":5.0,"predicate":"DUBIOUS","happy":"😐"}]`)

		_, err := Parse(data)

		var malformed *MalformedInputError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "weird.service", malformed.Unit)
	})

	t.Run("error text carries record position and unit", func(t *testing.T) {
		data := []byte(`[{"unit":"broken.service","exposure":null,"predicate":"OK","happy":"😀"}]`)

		_, err := Parse(data)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "record 0")
		assert.Contains(t, err.Error(), "broken.service")
	})
}
