package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedSeries(t *testing.T) {
	t.Run("ordered by date", func(t *testing.T) {
		got := SortedSeries(map[string]int64{
			"2025-03-16": 1,
			"2025-03-14": 3,
			"2025-03-15": 2,
		})

		assert.Equal(t, []DailyClicks{
			{Date: "2025-03-14", ClickCount: 3},
			{Date: "2025-03-15", ClickCount: 2},
			{Date: "2025-03-16", ClickCount: 1},
		}, got)
	})

	t.Run("empty map yields empty slice", func(t *testing.T) {
		got := SortedSeries(map[string]int64{})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestSortedOSStats(t *testing.T) {
	got := SortedOSStats(map[string]CategoryCount{
		"Windows": {UniqueClicks: 5, UniqueUsers: 5},
		"Android": {UniqueClicks: 2, UniqueUsers: 2},
	})

	assert.Equal(t, []OSStat{
		{OSName: "Android", UniqueClicks: 2, UniqueUsers: 2},
		{OSName: "Windows", UniqueClicks: 5, UniqueUsers: 5},
	}, got)
}

func TestSortedDeviceStats(t *testing.T) {
	got := SortedDeviceStats(map[string]CategoryCount{
		"Mobile":  {UniqueClicks: 1, UniqueUsers: 1},
		"Desktop": {UniqueClicks: 4, UniqueUsers: 4},
	})

	assert.Equal(t, []DeviceStat{
		{DeviceName: "Desktop", UniqueClicks: 4, UniqueUsers: 4},
		{DeviceName: "Mobile", UniqueClicks: 1, UniqueUsers: 1},
	}, got)
}
