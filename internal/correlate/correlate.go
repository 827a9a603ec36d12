// Package correlate maps hypervisor adapter identifiers to fully resolved
// driver packaging targets using the device/driver inventory.
package correlate

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hostgpu/gpup-packager/internal/domain"
)

var (
	ErrDeviceNotFound = errors.New("corresponding display device not found in inventory")
	ErrDriverNotFound = errors.New("no signed display driver found for device")

	// ErrStoreFolderNotResolved means the signed driver could not be joined
	// to a system driver module path, so the driver-store folder is unknown.
	ErrStoreFolderNotResolved = errors.New("driver-store folder could not be resolved for device")
)

// storeMarker identifies paths inside the OS driver store. Files under the
// store are covered by the whole-folder copy and must not be staged twice.
const storeMarker = "driverstore"

// Resolver turns PartitionableGPU records into TargetGPU records. It holds
// the full inventory snapshot for one pipeline run; the association catalog
// in particular is fetched once by the caller and reused for every GPU;
// re-querying it per device is prohibitively slow.
type Resolver struct {
	devices      map[string]domain.PnPDevice
	drivers      []domain.SignedDriver
	associations []domain.DriverFileAssociation
}

// NewResolver builds a resolver over an inventory snapshot. Device lookup is
// case-insensitive on instance ID, matching the inventory's own semantics.
func NewResolver(devices []domain.PnPDevice, drivers []domain.SignedDriver, associations []domain.DriverFileAssociation) *Resolver {
	index := make(map[string]domain.PnPDevice, len(devices))
	for _, d := range devices {
		key := strings.ToUpper(d.InstanceID)
		if _, exists := index[key]; !exists {
			index[key] = d
		}
	}
	return &Resolver{
		devices:      index,
		drivers:      drivers,
		associations: associations,
	}
}

// Resolve correlates one hypervisor GPU to its device, signed driver,
// driver-store folder, and non-store dependent files. Any broken link is an
// error; a partially resolved GPU must never be packaged.
func (r *Resolver) Resolve(gpu domain.PartitionableGPU) (domain.TargetGPU, error) {
	instanceID, err := ExtractInstanceID(gpu.Name)
	if err != nil {
		return domain.TargetGPU{}, err
	}

	device, ok := r.devices[strings.ToUpper(instanceID)]
	if !ok {
		return domain.TargetGPU{}, fmt.Errorf("%w: %s", ErrDeviceNotFound, instanceID)
	}

	driver, err := r.driverFor(device.InstanceID)
	if err != nil {
		return domain.TargetGPU{}, err
	}

	// The versioned driver package directory is the parent-of-parent of the
	// system driver's module path. An empty module path would degenerate to
	// "." here and stage the working directory, so it is fatal instead.
	if driver.ModulePath == "" {
		return domain.TargetGPU{}, fmt.Errorf("%w: %s", ErrStoreFolderNotResolved, device.InstanceID)
	}
	storeFolder := filepath.Dir(filepath.Dir(driver.ModulePath))

	return domain.TargetGPU{
		Device:        device,
		Driver:        driver,
		StoreFolder:   storeFolder,
		NonStoreFiles: r.nonStoreFiles(device.InstanceID),
	}, nil
}

// driverFor returns the signed driver whose device ID matches the instance
// ID. More than one match is ambiguous for a display device; the first in
// catalog order is used, deterministically.
func (r *Resolver) driverFor(instanceID string) (domain.SignedDriver, error) {
	for _, d := range r.drivers {
		if strings.EqualFold(d.DeviceID, instanceID) {
			return d, nil
		}
	}
	return domain.SignedDriver{}, fmt.Errorf("%w: %s", ErrDriverNotFound, instanceID)
}

// nonStoreFiles returns the deduplicated, sorted dependent file paths for a
// device, excluding anything under the driver store.
func (r *Resolver) nonStoreFiles(instanceID string) []string {
	seen := make(map[string]struct{})
	var files []string
	for _, a := range r.associations {
		if !strings.EqualFold(a.OwnerDeviceID, instanceID) {
			continue
		}
		if strings.Contains(strings.ToLower(a.FilePath), storeMarker) {
			continue
		}
		key := strings.ToLower(a.FilePath)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		files = append(files, a.FilePath)
	}
	sort.Strings(files)
	return files
}
