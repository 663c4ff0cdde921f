package hostinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOSRelease(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "os-release")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDescribe(t *testing.T) {
	t.Run("parses os-release identification", func(t *testing.T) {
		path := writeOSRelease(t, `
NAME="Fedora Linux"
VERSION="39 (Workstation Edition)"
ID=fedora
VERSION_ID=39
PRETTY_NAME="Fedora Linux 39 (Workstation Edition)"
`)

		info := Describe(path)

		assert.Equal(t, "Fedora Linux 39 (Workstation Edition)", info.OS)
		assert.Equal(t, "39", info.OSVersion)
		assert.NotEmpty(t, info.Hostname)
	})

	t.Run("falls back to NAME when PRETTY_NAME is absent", func(t *testing.T) {
		path := writeOSRelease(t, "NAME=Debian\nVERSION_ID=\"12\"\n")

		info := Describe(path)

		assert.Equal(t, "Debian", info.OS)
		assert.Equal(t, "12", info.OSVersion)
	})

	t.Run("first readable path wins", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "absent")
		fallback := writeOSRelease(t, "NAME=Arch\n")

		info := Describe(missing, fallback)

		assert.Equal(t, "Arch", info.OS)
	})

	t.Run("no readable path leaves OS fields empty", func(t *testing.T) {
		info := Describe(filepath.Join(t.TempDir(), "absent"))

		assert.Empty(t, info.OS)
		assert.Empty(t, info.OSVersion)
	})
}
