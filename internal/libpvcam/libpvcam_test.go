//go:build integration && pvcam

package libpvcam

import (
	"testing"

	"github.com/kevmo314/go-pvcam"
	"github.com/kevmo314/go-pvcam/pkg/params"
)

func TestFirstCameraSerial(t *testing.T) {
	api, err := New()
	if err != nil {
		t.Fatal(err)
	}
	lib := pvcam.New(api)
	if err := lib.Init(); err != nil {
		t.Fatal(err)
	}
	defer lib.Uninit()

	names, err := lib.ListCameras()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 {
		t.Skip("no cameras connected")
	}

	cam, err := lib.Open(names[0])
	if err != nil {
		t.Fatal(err)
	}
	defer cam.Close()

	v, err := cam.GetAttribute(pvcam.CameraSerial, params.AttrCurrent)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(pvcam.Text); !ok {
		t.Fatalf("CameraSerial = %#v, want Text", v)
	}
	t.Logf("camera %s serial %s", names[0], v)
}
