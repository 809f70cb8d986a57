package service

import "math"

// Projection 定投预测汇总
type Projection struct {
	FutureValue   float64 `json:"future_value"`
	TotalInvested float64 `json:"total_invested"`
	Profit        float64 `json:"profit"`
}

// FutureValue 普通年金终值：FV = P × ((1+r)^n − 1) / r，四舍五入到整币单位。
// 月投金额或月数非正、月利率非有限数时返回 0。
// 年利率为 0 时公式出现 0/0，需特判退化为本金合计，避免 NaN。
func FutureValue(monthly float64, months int, annualRatePercent float64) float64 {
	if monthly <= 0 || months <= 0 {
		return 0
	}
	monthlyRate := annualRatePercent / 100 / 12
	if math.IsNaN(monthlyRate) || math.IsInf(monthlyRate, 0) {
		return 0
	}
	if monthlyRate == 0 {
		return math.Round(monthly * float64(months))
	}
	fv := monthly * (math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate
	return math.Round(fv)
}

// TotalInvested 投入本金合计，取整到整币单位
func TotalInvested(monthly float64, months int) float64 {
	if monthly <= 0 || months <= 0 {
		return 0
	}
	return math.Round(monthly * float64(months))
}

// Project 完整的定投预测：终值、本金合计与预计收益
func Project(monthly float64, months int, annualRatePercent float64) Projection {
	fv := FutureValue(monthly, months, annualRatePercent)
	invested := TotalInvested(monthly, months)
	return Projection{
		FutureValue:   fv,
		TotalInvested: invested,
		Profit:        fv - invested,
	}
}
