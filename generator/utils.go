package generator

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// 某一深度在整个时间域上的峰谷摆幅
func (f *TemperatureField) Swing(depthIdx int) float64 {
	row := f.Data[depthIdx]
	return floats.Max(row) - floats.Min(row)
}

// 某一深度最高温出现的时刻
func (f *TemperatureField) TimeOfMax(depthIdx int) float64 {
	return f.Times[floats.MaxIdx(f.Data[depthIdx])]
}

// 找到与目标深度最接近的节点下标
func (f *TemperatureField) NearestDepthIndex(depth float64) int {
	best := 0
	bestDist := math.Abs(f.Depths[0] - depth)
	for i := 1; i < len(f.Depths); i++ {
		d := math.Abs(f.Depths[i] - depth)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// 整场温度的上下界，前端据此设定坐标轴范围
func (f *TemperatureField) Bounds() (min, max float64) {
	min = floats.Min(f.Data[0])
	max = floats.Max(f.Data[0])
	for _, row := range f.Data[1:] {
		if m := floats.Min(row); m < min {
			min = m
		}
		if m := floats.Max(row); m > max {
			max = m
		}
	}
	return min, max
}
