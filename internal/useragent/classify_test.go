package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		userAgent  string
		wantOS     string
		wantDevice string
	}{
		{
			name:       "windows desktop chrome",
			userAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			wantOS:     OSWindows,
			wantDevice: DeviceDesktop,
		},
		{
			name:       "mac desktop safari",
			userAgent:  "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15",
			wantOS:     OSMacOS,
			wantDevice: DeviceDesktop,
		},
		{
			name:       "iphone safari",
			userAgent:  "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			wantOS:     OSIOS,
			wantDevice: DeviceMobile,
		},
		{
			name:       "ipad safari",
			userAgent:  "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1",
			wantOS:     OSIOS,
			wantDevice: DeviceTablet,
		},
		{
			name:       "android phone chrome",
			userAgent:  "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
			wantOS:     OSAndroid,
			wantDevice: DeviceMobile,
		},
		{
			name:       "android tablet chrome",
			userAgent:  "Mozilla/5.0 (Linux; Android 13; SM-X710) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			wantOS:     OSAndroid,
			wantDevice: DeviceTablet,
		},
		{
			name:       "linux desktop firefox",
			userAgent:  "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			wantOS:     OSLinux,
			wantDevice: DeviceDesktop,
		},
		{
			name:       "googlebot",
			userAgent:  "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			wantOS:     OSUnknown,
			wantDevice: DeviceBot,
		},
		{
			name:       "curl",
			userAgent:  "curl/8.4.0",
			wantOS:     OSUnknown,
			wantDevice: DeviceBot,
		},
		{
			name:       "empty user agent",
			userAgent:  "",
			wantOS:     OSUnknown,
			wantDevice: DeviceUnknown,
		},
		{
			name:       "garbage user agent",
			userAgent:  "not-a-real-agent",
			wantOS:     OSUnknown,
			wantDevice: DeviceUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osName, deviceName := Classify(tt.userAgent)
			assert.Equal(t, tt.wantOS, osName)
			assert.Equal(t, tt.wantDevice, deviceName)
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	ua := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0.0.0"

	os1, dev1 := Classify(ua)
	os2, dev2 := Classify(ua)

	assert.Equal(t, os1, os2)
	assert.Equal(t, dev1, dev2)
}
