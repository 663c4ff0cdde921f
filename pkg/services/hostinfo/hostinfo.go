package hostinfo

import (
	"os"

	"github.com/NotAShelf/ssa/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// osReleasePaths are the locations consulted for OS identification, in order.
// /etc takes precedence over the vendor copy, as documented in os-release(5).
var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// Describe collects best-effort host metadata for the report envelope. Paths
// override the default os-release locations. Missing files or keys leave the
// corresponding fields empty; Describe never fails.
func Describe(paths ...string) domain.HostInfo {
	var info domain.HostInfo
	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}

	if len(paths) == 0 {
		paths = osReleasePaths
	}
	for _, path := range paths {
		cfg, err := ini.Load(path)
		if err != nil {
			continue
		}
		section := cfg.Section("")
		info.OS = section.Key("PRETTY_NAME").String()
		if info.OS == "" {
			info.OS = section.Key("NAME").String()
		}
		info.OSVersion = section.Key("VERSION_ID").String()
		break
	}
	return info
}
