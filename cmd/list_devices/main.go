package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	usb "github.com/kevmo314/go-usb"

	"github.com/kevmo314/go-pvcam/internal/cli"
	"github.com/kevmo314/go-pvcam/pkg/config"
)

func main() {
	fake := flag.Bool("fake", false, "list the in-memory camera instead of libpvcam")
	skipUSB := flag.Bool("skip-usb", false, "do not enumerate the USB bus")

	flag.Parse()

	if !*skipUSB {
		listUSB()
	}

	fmt.Println("Listing PVCAM cameras...")

	lib, err := cli.Library(config.CameraConfig{Fake: *fake}, config.LogConfig{Level: "warn"}.Logger(log.Writer()))
	if err != nil {
		log.Fatalf("Failed to initialize PVCAM: %v", err)
	}
	defer lib.Uninit()

	names, err := lib.ListCameras()
	if err != nil {
		log.Fatalf("Failed to list cameras: %v", err)
	}
	if len(names) == 0 {
		fmt.Println("No cameras found")
		return
	}
	for i, name := range names {
		fmt.Printf("Camera %d: %s\n", i, name)
	}
}

func listUSB() {
	fmt.Println("Listing USB devices...")

	devices, err := usb.DeviceList()
	if err != nil {
		log.Printf("Failed to list devices: %v", err)
		return
	}

	fmt.Printf("Found %d device(s):\n\n", len(devices))

	for i, dev := range devices {
		fmt.Printf("Device %d:\n", i+1)
		fmt.Printf("  Path: %s\n", dev.Path)
		fmt.Printf("  VID:PID: %04x:%04x\n", dev.Descriptor.VendorID, dev.Descriptor.ProductID)
		fmt.Printf("  USB Version: %d.%02d\n", dev.Descriptor.USBVersion>>8, dev.Descriptor.USBVersion&0xFF)

		if dev.SysfsStrings != nil {
			if dev.SysfsStrings.Manufacturer != "" {
				fmt.Printf("  Manufacturer: %s\n", dev.SysfsStrings.Manufacturer)
			}
			if dev.SysfsStrings.Product != "" {
				fmt.Printf("  Product: %s\n", dev.SysfsStrings.Product)
			}
			if dev.SysfsStrings.Serial != "" {
				fmt.Printf("  Serial: %s\n", dev.SysfsStrings.Serial)
			}
			if isScientificCamera(dev.SysfsStrings.Manufacturer) {
				fmt.Printf("  ** This appears to be a PVCAM camera head **\n")
			}
		}

		fmt.Println()
	}
}

func isScientificCamera(manufacturer string) bool {
	m := strings.ToLower(manufacturer)
	return strings.Contains(m, "photometrics") || strings.Contains(m, "teledyne")
}
