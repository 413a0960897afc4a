package params

import "testing"

func TestDeclaredType(t *testing.T) {
	tests := []struct {
		id   ID
		want TypeCode
	}{
		{HeadSerNumAlpha, TypeCharPtr},
		{SensorSerialSize, TypeUns16},
		{GainIndex, TypeInt16},
		{ReadoutPort, TypeEnum},
		{ExposureMode, TypeEnum},
	}
	for _, tt := range tests {
		if got := tt.id.DeclaredType(); got != tt.want {
			t.Errorf("DeclaredType(%#x) = %d, want %d", uint32(tt.id), got, tt.want)
		}
	}
}

func TestIDLayout(t *testing.T) {
	// PARAM_GAIN_INDEX from pvcam.h
	if GainIndex != ID(0x01020200) {
		t.Errorf("GainIndex = %#x, want 0x01020200", uint32(GainIndex))
	}
	// PARAM_EXPOSURE_MODE from pvcam.h
	if ExposureMode != ID(0x09030217) {
		t.Errorf("ExposureMode = %#x, want 0x09030217", uint32(ExposureMode))
	}
}
