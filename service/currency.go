package service

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency 将金额格式化为卢比显示串：取整到整币单位、英文千分位、无小数，
// 如 12500 -> "₨12,500"。非法数值统一显示为 "₨0"。
func FormatCurrency(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "₨0"
	}
	return currencyPrinter.Sprintf("₨%d", int64(math.Round(value)))
}
