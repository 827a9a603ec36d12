// Package destination resolves the user-supplied output argument into a
// concrete folder and archive file name.
package destination

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const archiveExt = ".zip"

// Resolve turns an optional destination argument into an output folder and
// archive file name.
//
//   - an argument ending in the archive extension is split into folder and
//     file name
//   - an existing directory gets a generated GPUPDriverPackage-<date> name
//   - anything else is treated as a directory to create
//   - no argument means the current working directory
//
// The folder is not created here; the caller creates it right before the
// archive is written.
func Resolve(arg string, now time.Time) (folder, filename string, err error) {
	generated := "GPUPDriverPackage-" + now.Format("2006-01-02") + archiveExt

	if arg == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", "", fmt.Errorf("resolve working directory: %w", err)
		}
		return cwd, generated, nil
	}

	if strings.EqualFold(filepath.Ext(arg), archiveExt) {
		return filepath.Dir(arg), filepath.Base(arg), nil
	}

	return arg, generated, nil
}
