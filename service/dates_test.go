package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthsBetween(t *testing.T) {
	// 按日历月计算：年差×12 + 月差
	assert.Equal(t, 12, MonthsBetween(date(2025, 1, 1), date(2026, 1, 1)))
	assert.Equal(t, 1, MonthsBetween(date(2025, 1, 1), date(2025, 2, 1)))
	assert.Equal(t, 14, MonthsBetween(date(2025, 1, 15), date(2026, 3, 10)))
	// 2 月只有 28 天，日历定义不受月份长短影响
	assert.Equal(t, 1, MonthsBetween(date(2025, 2, 1), date(2025, 3, 1)))

	// end 不晚于 start 返回 0
	assert.Equal(t, 0, MonthsBetween(date(2025, 1, 1), date(2025, 1, 1)))
	assert.Equal(t, 0, MonthsBetween(date(2025, 6, 1), date(2025, 1, 1)))
}

func TestAddMonths(t *testing.T) {
	assert.Equal(t, date(2026, 1, 1), AddMonths(date(2025, 1, 1), 12))
	assert.Equal(t, date(2025, 4, 15), AddMonths(date(2025, 1, 15), 3))
	// 跨年
	assert.Equal(t, date(2026, 2, 28), AddMonths(date(2025, 11, 28), 3))
}

func TestFormatDateReadable(t *testing.T) {
	assert.Equal(t, "1 August 2026", FormatDateReadable(date(2026, 8, 1)))
	assert.Equal(t, "15 January 2025", FormatDateReadable(date(2025, 1, 15)))
}

func TestDurationLabel(t *testing.T) {
	assert.Equal(t, "1 month", DurationLabel(1))
	assert.Equal(t, "11 months", DurationLabel(11))
	assert.Equal(t, "1 year", DurationLabel(12))
	assert.Equal(t, "2 years", DurationLabel(24))
	assert.Equal(t, "1 year, 1 month", DurationLabel(13))
	assert.Equal(t, "2 years, 3 months", DurationLabel(27))
}
