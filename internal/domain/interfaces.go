package domain

// GPUEnumerator abstracts the hypervisor's enumeration of partition-capable
// adapters. The concrete adapter selects between the current and legacy
// hypervisor entry points at construction time.
type GPUEnumerator interface {
	// ListPartitionableGPUs returns the partition-capable adapters, or an
	// empty slice when the host has none.
	ListPartitionableGPUs() ([]PartitionableGPU, error)
}

// DeviceCatalog abstracts the OS device/driver inventory. All three queries
// are idempotent reads. ListDriverFileAssociations enumerates the entire
// system's driver file inventory and is by far the most expensive call;
// callers fetch it once per run and reuse the result.
type DeviceCatalog interface {
	ListDisplayDevices() ([]PnPDevice, error)
	ListSignedDisplayDrivers() ([]SignedDriver, error)
	ListDriverFileAssociations() ([]DriverFileAssociation, error)
}

// DriverVersionProbe reports the host's GPU driver version for preflight
// narration. Probe failure is informational, never fatal.
type DriverVersionProbe interface {
	Init() error
	Shutdown() error
	SystemDriverVersion() (string, error)
}
