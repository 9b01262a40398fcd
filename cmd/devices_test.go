package cmd

import (
	"bytes"
	"strings"
	"testing"

	"shiroink/internal/device"
)

func TestRenderDevicesListsEveryDeviceOnce(t *testing.T) {
	var buf bytes.Buffer
	renderDevices(&buf)
	out := buf.String()

	for _, id := range device.Keys() {
		if !strings.Contains(out, id) {
			t.Errorf("listing missing device %s", id)
		}
	}
}

func TestRenderDevicesGroupsByBrand(t *testing.T) {
	var buf bytes.Buffer
	renderDevices(&buf)
	out := buf.String()

	// Device ids are lowercase, so each uppercase brand header appears
	// exactly once.
	for _, brand := range []string{"KINDLE", "KOBO", "TOLINO", "POCKETBOOK", "IPAD"} {
		if got := strings.Count(out, brand); got != 1 {
			t.Errorf("brand header %s appears %d times, want 1", brand, got)
		}
	}
}
