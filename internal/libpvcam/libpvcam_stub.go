//go:build !pvcam

package libpvcam

import (
	"errors"

	"github.com/kevmo314/go-pvcam"
)

var ErrNotBuilt = errors.New("built without libpvcam support, rebuild with -tags pvcam")

func New() (pvcam.DeviceAPI, error) {
	return nil, ErrNotBuilt
}
