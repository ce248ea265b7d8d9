package tdr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// TDR 反射波形模拟（时域反射法测土壤水分）
// 按参考波形分段构造：电缆平直段、x1 处的初始反射峰、x1 与 x2 之间的过渡段、
// x2 处探针末端的开路反射、之后的稳定段
// x1 为电缆与传感器本体结束的位置，x2 = x1 + 探针视长度 La

const (
	peakAmplitude       = 0.12 // x1 处反射峰高度
	peakStdDev          = 1.5  // 反射峰宽度，高斯标准差
	transitionStart     = 0.05 // 过渡段起始反射系数
	transitionEnd       = -0.05
	transitionExponent  = 0.8  // 过渡段衰减速度
	reflectionAmplitude = 0.25 // 末端反射幅度
	stableLevel         = 0.2  // 末端反射后的稳定值
)

type Probe struct {
	CableLength         float64 // 电缆段视长度 cm
	SensorBodyLength    float64 // 传感器本体长度 cm
	ProbeApparentLength float64 // 探针视长度 La，cm
	PlotStart           float64 // 波形起始位置 cm
	PlotEnd             float64 // 波形终止位置 cm
}

func DefaultProbe() Probe {
	return Probe{
		CableLength:         35,
		SensorBodyLength:    10,
		ProbeApparentLength: 70,
		PlotStart:           30,
		PlotEnd:             200,
	}
}

// 第一反射点：电缆 + 传感器本体结束处
func (p Probe) X1() float64 {
	return p.PlotStart + p.CableLength + p.SensorBodyLength
}

// 第二反射点：探针末端
func (p Probe) X2() float64 {
	return p.X1() + p.ProbeApparentLength
}

// 探针视长度 La = x2 - x1
func (p Probe) ApparentLength() float64 {
	return p.X2() - p.X1()
}

// 视距离网格
func (p Probe) Grid(n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 grid points, got %d", n)
	}
	return floats.Span(make([]float64, n), 0, p.PlotEnd), nil
}

// 在给定视距离网格上生成反射系数波形
func (p Probe) Waveform(x []float64) []float64 {
	x1 := p.X1()
	x2 := p.X2()
	y := make([]float64, len(x))
	for i, xi := range x {
		// x1 处的初始反射峰
		v := peakAmplitude * math.Exp(-0.5*math.Pow((xi-x1)/peakStdDev, 2))

		// x1 与 x2 之间按幂函数过渡
		if xi > x1+2 && xi < x2-2 {
			normalized := (xi - (x1 + 2)) / ((x2 - 2) - (x1 + 2))
			v = transitionStart + (transitionEnd-transitionStart)*math.Pow(normalized, transitionExponent)
		}

		// x2 处探针末端反射，tanh 上升沿
		if xi >= x2-2 && xi <= x2+5 {
			transition := (xi - x2) / 2
			v += reflectionAmplitude * (math.Tanh(transition*3) + 1) / 2
		}

		// 末端之后趋于稳定
		if xi > x2+5 {
			v = stableLevel
		}

		y[i] = v
	}
	return y
}
