package wmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeObjectRef_DeviceID(t *testing.T) {
	ref := `\\HOST\root\cimv2:Win32_PNPSignedDriver.DeviceID="PCI\\VEN_10DE&DEV_1C82\\4&275D9B7&0&0019"`

	id, err := decodeObjectRef(ref, "DeviceID")
	require.NoError(t, err)
	assert.Equal(t, `PCI\VEN_10DE&DEV_1C82\4&275D9B7&0&0019`, id)
}

func TestDecodeObjectRef_FilePath(t *testing.T) {
	ref := `\\HOST\root\cimv2:CIM_DataFile.Name="c:\\windows\\system32\\nvapi64.dll"`

	path, err := decodeObjectRef(ref, "Name")
	require.NoError(t, err)
	assert.Equal(t, `c:\windows\system32\nvapi64.dll`, path)
}

func TestDecodeObjectRef_PropertyLookupIsCaseInsensitive(t *testing.T) {
	ref := `Win32_PNPSignedDriver.DEVICEID="ROOT\\DISPLAY\\0000"`

	id, err := decodeObjectRef(ref, "DeviceID")
	require.NoError(t, err)
	assert.Equal(t, `ROOT\DISPLAY\0000`, id)
}

func TestDecodeObjectRef_Malformed(t *testing.T) {
	tests := []struct {
		name string
		ref  string
	}{
		{"missing property", `CIM_DataFile.Other="x"`},
		{"unterminated value", `CIM_DataFile.Name="c:\\windows`},
		{"dangling escape", `CIM_DataFile.Name="c:\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeObjectRef(tt.ref, "Name")
			assert.Error(t, err)
		})
	}
}
