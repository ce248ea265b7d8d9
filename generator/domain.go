package generator

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// 网格构建
// 时间网格等间距严格递增，单位小时；深度网格从地表 0 向下取负值，单位 cm

const spacingTolerance = 1e-9

// 构建时间网格，不含 end，与 np.arange(start, end, step) 语义一致
func NewTimeDomain(start, end, step float64) ([]float64, error) {
	if !(step > 0) {
		return nil, &InvalidDomainError{Domain: "time", Reason: "step must be > 0"}
	}
	if end <= start {
		return nil, &InvalidDomainError{Domain: "time", Reason: "end must be > start"}
	}
	n := int(math.Ceil((end-start)/step - spacingTolerance))
	times := make([]float64, n)
	for i := 0; i < n; i++ {
		times[i] = start + float64(i)*step
	}
	return times, nil
}

// 构建深度网格，从 0 到 -depthMax 等分 points 个节点，
// 与 np.linspace(0, -depthMax, points) 语义一致
func NewDepthDomain(depthMax float64, points int) ([]float64, error) {
	if points < 1 {
		return nil, &InvalidDomainError{Domain: "depth", Reason: "points must be >= 1"}
	}
	if depthMax < 0 {
		return nil, &InvalidDomainError{Domain: "depth", Reason: "depthMax must be >= 0"}
	}
	if points == 1 {
		// 仅地表一层
		return []float64{0}, nil
	}
	return floats.Span(make([]float64, points), 0, -depthMax), nil
}

func validateTimeDomain(times []float64) error {
	if len(times) == 0 {
		return &InvalidDomainError{Domain: "time", Reason: "must not be empty"}
	}
	if len(times) == 1 {
		return nil
	}
	step := times[1] - times[0]
	if !(step > 0) {
		return &InvalidDomainError{Domain: "time", Reason: "must be strictly increasing"}
	}
	for i := 1; i < len(times); i++ {
		d := times[i] - times[i-1]
		if !(d > 0) {
			return &InvalidDomainError{Domain: "time", Reason: "must be strictly increasing"}
		}
		if math.Abs(d-step) > spacingTolerance {
			return &InvalidDomainError{Domain: "time", Reason: "must be evenly spaced"}
		}
	}
	return nil
}

func validateDepthDomain(depths []float64) error {
	if len(depths) == 0 {
		return &InvalidDomainError{Domain: "depth", Reason: "must not be empty"}
	}
	if depths[0] != 0 {
		return &InvalidDomainError{Domain: "depth", Reason: "first element must be 0 (surface)"}
	}
	for i := 1; i < len(depths); i++ {
		if depths[i] > depths[i-1] {
			return &InvalidDomainError{Domain: "depth", Reason: "must be non-increasing downward"}
		}
	}
	return nil
}
