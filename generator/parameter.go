package generator

import "math"

// 土壤热参数
// 单位约定：深度 cm，时间 h，热扩散率 cm²/h，温度 ℃
type ThermalParameters struct {
	MeanTemperature float64 // 日平均地表温度
	Amplitude       float64 // 地表温度振幅
	Diffusivity     float64 // 热扩散率
	Period          float64 // 波动周期
	PhaseOffset     float64 // 相位偏移，峰值出现在 offset + period/4
}

func (p ThermalParameters) Validate() error {
	if math.IsNaN(p.MeanTemperature) || math.IsInf(p.MeanTemperature, 0) {
		return &InvalidParameterError{Name: "meanTemperature", Reason: "must be finite"}
	}
	if math.IsNaN(p.Amplitude) || p.Amplitude < 0 {
		return &InvalidParameterError{Name: "amplitude", Reason: "must be >= 0"}
	}
	if math.IsInf(p.Amplitude, 0) {
		return &InvalidParameterError{Name: "amplitude", Reason: "must be finite"}
	}
	if math.IsNaN(p.Diffusivity) || p.Diffusivity <= 0 {
		return &InvalidParameterError{Name: "diffusivity", Reason: "must be > 0"}
	}
	if math.IsNaN(p.Period) || p.Period <= 0 {
		return &InvalidParameterError{Name: "period", Reason: "must be > 0"}
	}
	if math.IsNaN(p.PhaseOffset) || math.IsInf(p.PhaseOffset, 0) {
		return &InvalidParameterError{Name: "phaseOffset", Reason: "must be finite"}
	}
	return nil
}
