// Package device provides Android device access via ADB.
package device

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/devicelab-dev/droidview/pkg/core"
)

// DefaultDumpTimeout bounds a uiautomator dump invocation.
const DefaultDumpTimeout = 10 * time.Second

// AndroidDevice manages an Android device connection via ADB.
type AndroidDevice struct {
	serial      string
	adbPath     string
	exec        Executor
	dumpTimeout time.Duration
}

// DeviceInfo contains basic device information.
type DeviceInfo struct {
	Serial     string `json:"serial"`
	Model      string `json:"model,omitempty"`
	SDK        string `json:"sdk,omitempty"`
	Brand      string `json:"brand,omitempty"`
	IsEmulator bool   `json:"isEmulator"`
}

// New creates an AndroidDevice for the given serial. If serial is empty, it
// auto-detects the first connected device. If adbPath is empty, adb is
// located in PATH.
func New(ctx context.Context, serial, adbPath string) (*AndroidDevice, error) {
	if adbPath == "" {
		path, err := findADB()
		if err != nil {
			return nil, err
		}
		adbPath = path
	}

	runner := NewExecutor()
	if serial == "" {
		detected, err := detectDeviceSerial(ctx, runner, adbPath)
		if err != nil {
			return nil, fmt.Errorf("no device specified and auto-detect failed: %w", err)
		}
		serial = detected
	}

	return NewWithExecutor(serial, adbPath, runner), nil
}

// NewWithExecutor creates an AndroidDevice with an explicit Executor and no
// auto-detection. Used by tests and by callers that manage adb themselves.
func NewWithExecutor(serial, adbPath string, runner Executor) *AndroidDevice {
	return &AndroidDevice{
		serial:      serial,
		adbPath:     adbPath,
		exec:        runner,
		dumpTimeout: DefaultDumpTimeout,
	}
}

// SetDumpTimeout overrides the uiautomator dump timeout.
func (d *AndroidDevice) SetDumpTimeout(t time.Duration) {
	if t > 0 {
		d.dumpTimeout = t
	}
}

// Serial returns the device serial number.
func (d *AndroidDevice) Serial() string {
	return d.serial
}

// Shell executes a shell command on the device.
func (d *AndroidDevice) Shell(ctx context.Context, cmd string) (string, error) {
	return d.adb(ctx, "shell", cmd)
}

// Info returns device information.
func (d *AndroidDevice) Info(ctx context.Context) (DeviceInfo, error) {
	info := DeviceInfo{Serial: d.serial}

	if model, err := d.Shell(ctx, "getprop ro.product.model"); err == nil {
		info.Model = strings.TrimSpace(model)
	}
	if sdk, err := d.Shell(ctx, "getprop ro.build.version.sdk"); err == nil {
		info.SDK = strings.TrimSpace(sdk)
	}
	if brand, err := d.Shell(ctx, "getprop ro.product.brand"); err == nil {
		info.Brand = strings.TrimSpace(brand)
	}

	// Check if emulator
	qemu, _ := d.Shell(ctx, "getprop ro.kernel.qemu")
	info.IsEmulator = strings.TrimSpace(qemu) == "1"

	return info, nil
}

// adb executes an ADB command through the Executor.
func (d *AndroidDevice) adb(ctx context.Context, args ...string) (string, error) {
	return d.exec.Run(ctx, d.adbPath, d.adbArgs(args...)...)
}

// adbArgs prefixes the serial selector when one is set.
func (d *AndroidDevice) adbArgs(args ...string) []string {
	cmdArgs := make([]string, 0, len(args)+2)
	if d.serial != "" {
		cmdArgs = append(cmdArgs, "-s", d.serial)
	}
	return append(cmdArgs, args...)
}

// List returns the serials of all connected devices.
func List(ctx context.Context, runner Executor, adbPath string) ([]string, error) {
	out, err := runner.Run(ctx, adbPath, "devices")
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}

	var serials []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "List of") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) >= 2 && parts[1] == "device" {
			serials = append(serials, parts[0])
		}
	}
	return serials, nil
}

// detectDeviceSerial finds the first connected device serial.
func detectDeviceSerial(ctx context.Context, runner Executor, adbPath string) (string, error) {
	serials, err := List(ctx, runner, adbPath)
	if err != nil {
		return "", err
	}
	if len(serials) == 0 {
		return "", core.ErrNoDevice
	}
	return serials[0], nil
}

// findADB locates the ADB binary.
func findADB() (string, error) {
	if path, err := exec.LookPath("adb"); err == nil {
		return path, nil
	}
	return "", fmt.Errorf("adb not found in PATH; ensure Android SDK is installed")
}
