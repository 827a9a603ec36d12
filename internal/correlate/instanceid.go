package correlate

import (
	"fmt"
	"strings"
)

// devicePathPrefix is the device-namespace prefix the hypervisor puts in
// front of the embedded instance path.
const devicePathPrefix = `\\?\`

// ExtractInstanceID decodes a hypervisor adapter identifier into the device
// inventory instance ID it embeds. The encoding is an informal but stable
// convention: a `\\?\` device-namespace prefix, the instance path with `\`
// separators flattened to `#`, and a trailing `#{class-guid}` suffix.
//
//	\\?\PCI#VEN_10DE&DEV_1C82&SUBSYS_37121462&REV_A1#4&275d9b7&0&0019#{064092b3-...}
//
// becomes
//
//	PCI\VEN_10DE&DEV_1C82&SUBSYS_37121462&REV_A1\4&275d9b7&0&0019
func ExtractInstanceID(raw string) (string, error) {
	if !strings.HasPrefix(raw, devicePathPrefix) {
		return "", fmt.Errorf("adapter identifier %q lacks %q prefix", raw, devicePathPrefix)
	}
	s := strings.TrimPrefix(raw, devicePathPrefix)

	guid := strings.Index(s, "#{")
	if guid < 0 {
		return "", fmt.Errorf("adapter identifier %q lacks class-GUID suffix", raw)
	}
	s = s[:guid]
	if s == "" {
		return "", fmt.Errorf("adapter identifier %q has empty instance path", raw)
	}

	return strings.ReplaceAll(s, "#", `\`), nil
}
