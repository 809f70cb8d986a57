package service

import (
	"fmt"
	"time"
)

// MonthsBetween 计算两个日期之间的日历月数（年差×12 + 月差）。
// end 不晚于 start 时返回 0，表示尚无法计算。
func MonthsBetween(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// AddMonths 在日期上增加指定月数
func AddMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}

// FormatDateReadable 将日期格式化为 "2 January 2026" 的可读形式
func FormatDateReadable(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), t.Month().String(), t.Year())
}

// DurationLabel 将月数转为可读时长，如 "14 months" -> "1 year, 2 months"
func DurationLabel(months int) string {
	if months < 12 {
		return fmt.Sprintf("%d %s", months, plural("month", months))
	}
	years := months / 12
	remaining := months % 12
	if remaining == 0 {
		return fmt.Sprintf("%d %s", years, plural("year", years))
	}
	return fmt.Sprintf("%d %s, %d %s", years, plural("year", years), remaining, plural("month", remaining))
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
