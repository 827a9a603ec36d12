//go:build !windows
// +build !windows

package wmi

import (
	"fmt"

	"github.com/hostgpu/gpup-packager/internal/domain"
)

// Catalog stub - the device/driver inventory only exists on Windows hosts
type Catalog struct{}

func NewCatalog() (*Catalog, error) {
	return nil, fmt.Errorf("device inventory requires a Windows host")
}

func (c *Catalog) ListDisplayDevices() ([]domain.PnPDevice, error) {
	return nil, fmt.Errorf("device inventory not available")
}

func (c *Catalog) ListSignedDisplayDrivers() ([]domain.SignedDriver, error) {
	return nil, fmt.Errorf("device inventory not available")
}

func (c *Catalog) ListDriverFileAssociations() ([]domain.DriverFileAssociation, error) {
	return nil, fmt.Errorf("device inventory not available")
}

// Compile-time interface check
var _ domain.DeviceCatalog = (*Catalog)(nil)
