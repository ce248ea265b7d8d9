package soil

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// 土壤热性质经验模型
// 由含水量推算容积热容量、导热率与热扩散率：
// 1. 容积热容量随含水量线性增长
// 2. 导热率按饱和度的经验模型非线性增长
// 3. 热扩散率 κ = λ / C

// 导热率经验模型的形状常数
const (
	shapeA = 0.14
	shapeB = 0.29
)

type Soil struct {
	Name               string
	Porosity           float64 // 孔隙度 m³/m³
	HeatCapacitySolids float64 // 固体矿物容积热容量 J m⁻³ K⁻¹
	HeatCapacityWater  float64 // 水的容积热容量 J m⁻³ K⁻¹
	LambdaDry          float64 // 干土导热率 W m⁻¹ K⁻¹
	LambdaSat          float64 // 饱和土导热率 W m⁻¹ K⁻¹
}

// 典型砂壤土
func SandyLoam() *Soil {
	s := &Soil{
		Name:               "sandy loam",
		Porosity:           0.45,
		HeatCapacitySolids: 2.0e6,
		HeatCapacityWater:  4.18e6,
		LambdaDry:          0.3,
		LambdaSat:          2.2,
	}
	log.WithFields(log.Fields{
		"Name":      s.Name,
		"Porosity":  s.Porosity,
		"LambdaDry": s.LambdaDry,
		"LambdaSat": s.LambdaSat,
	}).Info("加载土壤参数")
	return s
}

func (s *Soil) Validate() error {
	if !(s.Porosity > 0 && s.Porosity < 1) {
		return fmt.Errorf("porosity must be in (0, 1), got %v", s.Porosity)
	}
	if !(s.HeatCapacitySolids > 0) || !(s.HeatCapacityWater > 0) {
		return fmt.Errorf("heat capacities must be > 0")
	}
	if !(s.LambdaDry > 0) || s.LambdaSat <= s.LambdaDry {
		return fmt.Errorf("conductivities must satisfy 0 < dry < saturated")
	}
	return nil
}

// 容积热容量 C(θ) = (1-φ)·Cs + θ·Cw，θ 为体积含水量
func (s *Soil) HeatCapacity(theta float64) float64 {
	return (1-s.Porosity)*s.HeatCapacitySolids + theta*s.HeatCapacityWater
}

// 导热率 λ(θ)，按饱和度 Se = θ/φ 的经验模型在干土与饱和值之间过渡
func (s *Soil) Conductivity(theta float64) float64 {
	se := theta / s.Porosity
	return s.LambdaDry + (s.LambdaSat-s.LambdaDry)*shape(se)/shape(1)
}

func shape(se float64) float64 {
	return 1 - math.Pow(1+math.Pow(se/shapeA, 1/(1-shapeB)), -shapeB)
}

// 热扩散率 κ = λ/C，m²/s
func (s *Soil) Diffusivity(theta float64) float64 {
	return s.Conductivity(theta) / s.HeatCapacity(theta)
}

// 热扩散率换算为温度场计算使用的 cm²/h
func (s *Soil) DiffusivityCmPerHour(theta float64) float64 {
	return s.Diffusivity(theta) * 1e4 * 3600
}

// 采样后的性质曲线
// 三条曲线量纲与数值范围差异很大，另附归一化数组便于前端同图比较
type PropertyCurves struct {
	Theta        []float64 `json:"theta"`
	HeatCapacity []float64 `json:"heat_capacity"`
	Conductivity []float64 `json:"conductivity"`
	Diffusivity  []float64 `json:"diffusivity"` // mm²/s，便于展示

	HeatCapacityNorm []float64 `json:"heat_capacity_norm"`
	ConductivityNorm []float64 `json:"conductivity_norm"`
	DiffusivityNorm  []float64 `json:"diffusivity_norm"`
}

// 从干土到饱和等分采样 n 个点
func (s *Soil) Curves(n int) (*PropertyCurves, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 sample points, got %d", n)
	}

	theta := floats.Span(make([]float64, n), 0, s.Porosity)
	c := make([]float64, n)
	lambda := make([]float64, n)
	kappa := make([]float64, n)
	for i, t := range theta {
		c[i] = s.HeatCapacity(t)
		lambda[i] = s.Conductivity(t)
		kappa[i] = s.Diffusivity(t) * 1e6 // m²/s -> mm²/s
	}

	return &PropertyCurves{
		Theta:        theta,
		HeatCapacity: c,
		Conductivity: lambda,
		Diffusivity:  kappa,

		HeatCapacityNorm: normalize(c),
		ConductivityNorm: normalize(lambda),
		DiffusivityNorm:  normalize(kappa),
	}, nil
}

// 归一化到 [0, 1]
func normalize(v []float64) []float64 {
	min := floats.Min(v)
	max := floats.Max(v)
	res := make([]float64, len(v))
	if max == min {
		return res
	}
	for i, x := range v {
		res[i] = (x - min) / (max - min)
	}
	return res
}
