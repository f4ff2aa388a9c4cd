// Package useragent maps raw User-Agent strings onto the closed OS and
// device category sets used by the analytics breakdowns.
package useragent

import (
	"strings"
)

// OS categories
const (
	OSWindows = "Windows"
	OSMacOS   = "macOS"
	OSIOS     = "iOS"
	OSAndroid = "Android"
	OSLinux   = "Linux"
	OSUnknown = "Unknown"
)

// Device categories
const (
	DeviceDesktop = "Desktop"
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
	DeviceBot     = "Bot"
	DeviceUnknown = "Unknown"
)

// Classify maps a raw User-Agent string to an OS category and a device
// category. It never fails: empty or unrecognized input yields Unknown for
// both fields.
func Classify(rawUA string) (osName, deviceName string) {
	ua := strings.ToLower(rawUA)
	return classifyOS(ua), classifyDevice(ua)
}

func classifyOS(ua string) string {
	switch {
	case strings.Contains(ua, "windows"):
		return OSWindows
	case strings.Contains(ua, "android"):
		// Checked before Linux: Android UAs also carry "linux"
		return OSAndroid
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"), strings.Contains(ua, "ipod"):
		return OSIOS
	case strings.Contains(ua, "mac os x"), strings.Contains(ua, "macintosh"):
		return OSMacOS
	case strings.Contains(ua, "linux"), strings.Contains(ua, "x11"):
		return OSLinux
	default:
		return OSUnknown
	}
}

func classifyDevice(ua string) string {
	switch {
	case ua == "":
		return DeviceUnknown
	case strings.Contains(ua, "bot"), strings.Contains(ua, "crawler"),
		strings.Contains(ua, "spider"), strings.Contains(ua, "curl"),
		strings.Contains(ua, "wget"):
		return DeviceBot
	case strings.Contains(ua, "ipad"), strings.Contains(ua, "tablet"):
		return DeviceTablet
	case strings.Contains(ua, "android") && !strings.Contains(ua, "mobile"):
		// Android without "Mobile" is the tablet form factor
		return DeviceTablet
	case strings.Contains(ua, "mobile"), strings.Contains(ua, "iphone"),
		strings.Contains(ua, "ipod"), strings.Contains(ua, "android"):
		return DeviceMobile
	case strings.Contains(ua, "windows"), strings.Contains(ua, "macintosh"),
		strings.Contains(ua, "mac os x"), strings.Contains(ua, "linux"),
		strings.Contains(ua, "x11"):
		return DeviceDesktop
	default:
		return DeviceUnknown
	}
}
