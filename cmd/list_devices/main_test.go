package main

import "testing"

func TestIsScientificCamera(t *testing.T) {
	tests := map[string]bool{
		"Photometrics":          true,
		"Teledyne Photometrics": true,
		"TELEDYNE PRINCETON":    true,
		"Logitech":              false,
		"":                      false,
	}
	for manufacturer, want := range tests {
		if got := isScientificCamera(manufacturer); got != want {
			t.Errorf("isScientificCamera(%q) = %v, want %v", manufacturer, got, want)
		}
	}
}
