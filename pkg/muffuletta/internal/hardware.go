package internal

import (
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// HardwareButtonConfig describes a physical front-panel button on kiosk
// hardware, read directly from the input device since such buttons never
// reach SDL. The press callback runs on the watcher goroutine; keep it to
// posting an event or flipping a flag.
type HardwareButtonConfig struct {
	ButtonCode   evdev.EvCode  // Key code to match (e.g. evdev.KEY_BACK)
	DevicePath   string        // Input device path (e.g. /dev/input/event1)
	CoolDownTime time.Duration // Minimum time between accepted presses
	OnPress      func()
}

var (
	hardwareStop        = atomic.NewBool(false)
	hardwareBackPending = atomic.NewBool(false)
	hardwareDevMu       sync.Mutex
	hardwareDevice      *evdev.InputDevice
)

// SignalHardwareBack records a hardware back-button press for the next
// widget event loop iteration to pick up. Safe to call from any goroutine.
func SignalHardwareBack() {
	hardwareBackPending.Store(true)
}

// ConsumeHardwareBack reports whether a hardware back press is pending and
// clears it.
func ConsumeHardwareBack() bool {
	return hardwareBackPending.Swap(false)
}

func (window *Window) initHardwareButtonHandling(hbc HardwareButtonConfig) {
	window.HardwareWG.Add(1)

	go HardwareButtonHandler(&window.HardwareWG, hbc)
}

// HardwareButtonHandler watches an evdev device and invokes the configured
// callback on each accepted key press. It exits when the device is closed via
// stopHardwareButtonHandler or on a read error.
func HardwareButtonHandler(wg *sync.WaitGroup, hbc HardwareButtonConfig) {
	defer wg.Done()

	device, err := evdev.Open(hbc.DevicePath)
	if err != nil {
		GetInternalLogger().Error("Failed to open hardware button device",
			"path", hbc.DevicePath, "error", err)
		return
	}

	hardwareDevMu.Lock()
	hardwareDevice = device
	hardwareDevMu.Unlock()

	var lastPress time.Time

	for !hardwareStop.Load() {
		event, err := device.ReadOne()
		if err != nil {
			if !hardwareStop.Load() {
				GetInternalLogger().Warn("Hardware button read failed", "error", err)
			}
			return
		}

		if event.Type != evdev.EV_KEY || event.Code != hbc.ButtonCode || event.Value != 1 {
			continue
		}
		if hbc.CoolDownTime > 0 && time.Since(lastPress) < hbc.CoolDownTime {
			continue
		}
		lastPress = time.Now()

		if hbc.OnPress != nil {
			hbc.OnPress()
		}
	}
}

func stopHardwareButtonHandler() {
	hardwareStop.Store(true)

	hardwareDevMu.Lock()
	defer hardwareDevMu.Unlock()
	if hardwareDevice != nil {
		hardwareDevice.Close()
		hardwareDevice = nil
	}
}
