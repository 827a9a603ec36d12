package domain

// PartitionableGPU is one partition-capable graphics adapter as reported by
// the hypervisor. Name is an opaque device-path-like identifier; it is only
// ever decoded by the correlator.
type PartitionableGPU struct {
	Name string `json:"name"`
}

// PnPDevice is one physical device in the OS device inventory.
// Identity is InstanceID.
type PnPDevice struct {
	InstanceID   string `json:"instance_id"`
	FriendlyName string `json:"friendly_name"`
}

// SignedDriver is the inventory metadata for an installed driver package.
// ModulePath is the on-disk path of the backing system driver's module; the
// versioned driver-store folder is derived from it by ascending two
// directory levels.
type SignedDriver struct {
	DeviceID    string `json:"device_id"`
	InfName     string `json:"inf_name"`
	Provider    string `json:"provider"`
	Version     string `json:"version"`
	Description string `json:"description"`
	ModulePath  string `json:"module_path"`
}

// DriverFileAssociation is a device-to-file edge from the inventory's
// association catalog. The full set is large (thousands of rows) and is
// fetched exactly once per run.
type DriverFileAssociation struct {
	OwnerDeviceID string `json:"owner_device_id"`
	FilePath      string `json:"file_path"`
}

// TargetGPU is a fully resolved packaging unit: the hypervisor GPU joined to
// its inventory device, signed driver, driver-store folder, and the sorted
// set of dependent files that live outside the driver store.
type TargetGPU struct {
	Device        PnPDevice
	Driver        SignedDriver
	StoreFolder   string
	NonStoreFiles []string
}
