//go:build windows
// +build windows

package wmi

import (
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/yusufpapurcu/wmi"

	"github.com/hostgpu/gpup-packager/internal/domain"
)

// Catalog queries the OS device/driver inventory through the cimv2
// namespace.
type Catalog struct{}

// WMI row shapes. Field names must match the WMI property names.

type win32PnPEntity struct {
	DeviceID string
	Name     string
}

type win32PnPSignedDriver struct {
	DeviceID           string
	InfName            string
	DriverProviderName string
	DriverVersion      string
	Description        string
	DeviceName         string
}

type win32SystemDriver struct {
	Name        string
	Description string
	PathName    string
}

type win32PnPSignedDriverCIMDataFile struct {
	Antecedent string
	Dependent  string
}

// NewCatalog connects to the inventory. The WMI service can be briefly
// unavailable right after boot, so the availability probe is retried with a
// bounded backoff; an unreachable inventory after that is fatal for the
// caller. Pipeline queries themselves are never retried.
func NewCatalog() (*Catalog, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = 10 * time.Second

	probe := func() error {
		var rows []win32PnPEntity
		return wmi.Query("SELECT DeviceID FROM Win32_PnPEntity WHERE PNPClass = 'Display'", &rows)
	}
	if err := backoff.Retry(probe, b); err != nil {
		return nil, fmt.Errorf("device inventory unreachable: %w", err)
	}
	return &Catalog{}, nil
}

// ListDisplayDevices returns every display-class device in inventory.
func (c *Catalog) ListDisplayDevices() ([]domain.PnPDevice, error) {
	var rows []win32PnPEntity
	query := "SELECT DeviceID, Name FROM Win32_PnPEntity WHERE PNPClass = 'Display'"
	if err := wmi.Query(query, &rows); err != nil {
		return nil, fmt.Errorf("query display devices: %w", err)
	}

	devices := make([]domain.PnPDevice, 0, len(rows))
	for _, r := range rows {
		devices = append(devices, domain.PnPDevice{
			InstanceID:   r.DeviceID,
			FriendlyName: r.Name,
		})
	}
	return devices, nil
}

// ListSignedDisplayDrivers returns the signed display-class driver records,
// each joined to its backing system driver's module path.
func (c *Catalog) ListSignedDisplayDrivers() ([]domain.SignedDriver, error) {
	var rows []win32PnPSignedDriver
	query := "SELECT DeviceID, InfName, DriverProviderName, DriverVersion, Description, DeviceName " +
		"FROM Win32_PnPSignedDriver WHERE DeviceClass = 'DISPLAY'"
	if err := wmi.Query(query, &rows); err != nil {
		return nil, fmt.Errorf("query signed display drivers: %w", err)
	}

	var systemDrivers []win32SystemDriver
	if err := wmi.Query("SELECT Name, Description, PathName FROM Win32_SystemDriver", &systemDrivers); err != nil {
		return nil, fmt.Errorf("query system drivers: %w", err)
	}

	drivers := make([]domain.SignedDriver, 0, len(rows))
	for _, r := range rows {
		drivers = append(drivers, domain.SignedDriver{
			DeviceID:    r.DeviceID,
			InfName:     r.InfName,
			Provider:    r.DriverProviderName,
			Version:     r.DriverVersion,
			Description: r.Description,
			ModulePath:  modulePathFor(r, systemDrivers),
		})
	}
	return drivers, nil
}

// modulePathFor finds the system driver backing a signed display driver.
// The display driver's service describes itself with the device name, which
// is the only stable join between the two catalogs.
func modulePathFor(signed win32PnPSignedDriver, systemDrivers []win32SystemDriver) string {
	for _, s := range systemDrivers {
		if strings.EqualFold(s.Description, signed.DeviceName) {
			return s.PathName
		}
	}
	return ""
}

// ListDriverFileAssociations returns every device-to-file edge in the
// inventory. This enumerates the whole system's driver file catalog; it is
// the dominant latency source of a run and must be called exactly once.
func (c *Catalog) ListDriverFileAssociations() ([]domain.DriverFileAssociation, error) {
	var rows []win32PnPSignedDriverCIMDataFile
	if err := wmi.Query("SELECT Antecedent, Dependent FROM Win32_PNPSignedDriverCIMDataFile", &rows); err != nil {
		return nil, fmt.Errorf("query driver file associations: %w", err)
	}

	associations := make([]domain.DriverFileAssociation, 0, len(rows))
	for _, r := range rows {
		owner, err := decodeObjectRef(r.Antecedent, "DeviceID")
		if err != nil {
			return nil, fmt.Errorf("decode association antecedent: %w", err)
		}
		path, err := decodeObjectRef(r.Dependent, "Name")
		if err != nil {
			return nil, fmt.Errorf("decode association dependent: %w", err)
		}
		associations = append(associations, domain.DriverFileAssociation{
			OwnerDeviceID: owner,
			FilePath:      path,
		})
	}
	return associations, nil
}

// Compile-time interface check
var _ domain.DeviceCatalog = (*Catalog)(nil)
