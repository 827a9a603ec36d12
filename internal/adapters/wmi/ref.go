// Package wmi implements the device/driver inventory adapter over Windows
// Management Instrumentation.
package wmi

import (
	"fmt"
	"strings"
)

// decodeObjectRef extracts a property value from a WMI object reference
// string, e.g.
//
//	\\HOST\root\cimv2:Win32_PNPSignedDriver.DeviceID="PCI\\VEN_10DE&DEV_1C82\\4&275D9B7&0&0019"
//
// Values are quoted with backslash escaping; the decoded value has escapes
// resolved.
func decodeObjectRef(ref, property string) (string, error) {
	marker := property + `="`
	i := indexFold(ref, marker)
	if i < 0 {
		return "", fmt.Errorf("object reference %q has no %s property", ref, property)
	}
	rest := ref[i+len(marker):]

	var b strings.Builder
	for j := 0; j < len(rest); j++ {
		switch rest[j] {
		case '\\':
			if j+1 >= len(rest) {
				return "", fmt.Errorf("object reference %q has dangling escape", ref)
			}
			j++
			b.WriteByte(rest[j])
		case '"':
			return b.String(), nil
		default:
			b.WriteByte(rest[j])
		}
	}
	return "", fmt.Errorf("object reference %q has unterminated %s value", ref, property)
}

// indexFold is a case-insensitive strings.Index.
func indexFold(s, substr string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(substr))
}
