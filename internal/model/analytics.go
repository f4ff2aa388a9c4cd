package model

import (
	"sort"
)

// CategoryCount holds the two per-category hit counters. UniqueUsers tracks
// the historical field of the same name: it is incremented on every hit,
// exactly like UniqueClicks, and is not deduplicated by visitor.
type CategoryCount struct {
	UniqueClicks int64
	UniqueUsers  int64
}

// AliasAnalytics is the aggregate visit record for a single alias.
// ClicksByDate is keyed by UTC calendar date (YYYY-MM-DD).
type AliasAnalytics struct {
	Alias           string
	TotalClicks     int64
	UniqueVisitors  int64
	ClicksByDate    map[string]int64
	OSBreakdown     map[string]CategoryCount
	DeviceBreakdown map[string]CategoryCount
}

// DailyClicks is one entry of the per-day click time series
type DailyClicks struct {
	Date       string `json:"date"`
	ClickCount int64  `json:"clickCount"`
}

// OSStat represents click counts for one OS category
type OSStat struct {
	OSName       string `json:"osName"`
	UniqueClicks int64  `json:"uniqueClicks"`
	UniqueUsers  int64  `json:"uniqueUsers"`
}

// DeviceStat represents click counts for one device category
type DeviceStat struct {
	DeviceName   string `json:"deviceName"`
	UniqueClicks int64  `json:"uniqueClicks"`
	UniqueUsers  int64  `json:"uniqueUsers"`
}

// AliasAnalyticsResponse is the per-alias analytics payload
type AliasAnalyticsResponse struct {
	TotalClicks  int64         `json:"totalClicks"`
	UniqueClicks int64         `json:"uniqueClicks"`
	ClicksByDate []DailyClicks `json:"clicksByDate"`
	OSType       []OSStat      `json:"osType"`
	DeviceType   []DeviceStat  `json:"deviceType"`
}

// URLStats is the per-alias subtotal included in topic rollups
type URLStats struct {
	ShortURL     string `json:"shortUrl"`
	TotalClicks  int64  `json:"totalClicks"`
	UniqueClicks int64  `json:"uniqueClicks"`
}

// TopicAnalyticsResponse is the topic-level rollup payload
type TopicAnalyticsResponse struct {
	TotalClicks  int64         `json:"totalClicks"`
	UniqueClicks int64         `json:"uniqueClicks"`
	ClicksByDate []DailyClicks `json:"clicksByDate"`
	URLs         []URLStats    `json:"urls"`
}

// OverallAnalyticsResponse is the user-level rollup payload
type OverallAnalyticsResponse struct {
	TotalURLs    int           `json:"totalUrls"`
	TotalClicks  int64         `json:"totalClicks"`
	UniqueClicks int64         `json:"uniqueClicks"`
	ClicksByDate []DailyClicks `json:"clicksByDate"`
	OSType       []OSStat      `json:"osType"`
	DeviceType   []DeviceStat  `json:"deviceType"`
}

// SortedSeries converts a date-keyed click map to a date-ordered slice
func SortedSeries(series map[string]int64) []DailyClicks {
	out := make([]DailyClicks, 0, len(series))
	for date, count := range series {
		out = append(out, DailyClicks{Date: date, ClickCount: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// SortedOSStats converts an OS breakdown map to a name-ordered slice
func SortedOSStats(breakdown map[string]CategoryCount) []OSStat {
	out := make([]OSStat, 0, len(breakdown))
	for name, c := range breakdown {
		out = append(out, OSStat{OSName: name, UniqueClicks: c.UniqueClicks, UniqueUsers: c.UniqueUsers})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].OSName < out[j].OSName
	})
	return out
}

// SortedDeviceStats converts a device breakdown map to a name-ordered slice
func SortedDeviceStats(breakdown map[string]CategoryCount) []DeviceStat {
	out := make([]DeviceStat, 0, len(breakdown))
	for name, c := range breakdown {
		out = append(out, DeviceStat{DeviceName: name, UniqueClicks: c.UniqueClicks, UniqueUsers: c.UniqueUsers})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DeviceName < out[j].DeviceName
	})
	return out
}
