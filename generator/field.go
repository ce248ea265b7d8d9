package generator

import "math"

// 一维周期性热传导的解析解
// 地表温度按正弦波动，向下传播时振幅衰减、相位滞后：
//
//	decay(z)    = exp(-z * sqrt(pi / (k * P)))
//	phaseLag(z) =     -z * sqrt(pi / (k * P))
//	T(z, t) = Tm + A * decay(z) * sin(pi * (t - t0) / (P/2) + phaseLag(z))
//
// z 为深度绝对值，z = 0 时 decay = 1、phaseLag = 0，通式直接退化为地表强迫信号

// 温度场，按 (深度, 时间) 索引，生成后只读
type TemperatureField struct {
	Depths []float64   // 深度网格，0 为地表，向下为负
	Times  []float64   // 时间网格
	Data   [][]float64 // Data[i][j] 为深度 Depths[i]、时刻 Times[j] 的温度
}

func GenerateField(times, depths []float64, params ThermalParameters) (*TemperatureField, error) {
	if err := validateTimeDomain(times); err != nil {
		return nil, err
	}
	if err := validateDepthDomain(depths); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	damping := math.Sqrt(math.Pi / (params.Diffusivity * params.Period))
	halfPeriod := params.Period / 2

	data := make([][]float64, len(depths))
	for i, depth := range depths {
		z := -depth
		decay := math.Exp(-z * damping)
		lag := -z * damping
		row := make([]float64, len(times))
		for j, t := range times {
			row[j] = params.MeanTemperature +
				params.Amplitude*decay*math.Sin(math.Pi*(t-params.PhaseOffset)/halfPeriod+lag)
		}
		data[i] = row
	}

	return &TemperatureField{
		Depths: append([]float64(nil), depths...),
		Times:  append([]float64(nil), times...),
		Data:   data,
	}, nil
}

// 某一时刻所有深度的温度剖面
func (f *TemperatureField) Profile(timeIdx int) []float64 {
	profile := make([]float64, len(f.Depths))
	for i := range f.Depths {
		profile[i] = f.Data[i][timeIdx]
	}
	return profile
}

// 某一深度所有时刻的温度序列
func (f *TemperatureField) Series(depthIdx int) []float64 {
	return append([]float64(nil), f.Data[depthIdx]...)
}
