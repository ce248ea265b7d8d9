package generator

import (
	"math"
	"testing"
)

// 典型砂壤土场景：均温25℃、振幅10℃、k=18 cm²/h、周期24h、14时最热
func scenarioParams() ThermalParameters {
	return ThermalParameters{
		MeanTemperature: 25,
		Amplitude:       10,
		Diffusivity:     18,
		Period:          24,
		PhaseOffset:     8,
	}
}

func mustGenerate(t *testing.T, start, end, step float64, depths []float64) *TemperatureField {
	t.Helper()
	times, err := NewTimeDomain(start, end, step)
	if err != nil {
		t.Fatal(err)
	}
	field, err := GenerateField(times, depths, scenarioParams())
	if err != nil {
		t.Fatal(err)
	}
	return field
}

func mustDepths(t *testing.T, depthMax float64, points int) []float64 {
	t.Helper()
	depths, err := NewDepthDomain(depthMax, points)
	if err != nil {
		t.Fatal(err)
	}
	return depths
}

func closeRel(a, b, tol float64) bool {
	scale := math.Abs(b)
	if scale < 1 {
		scale = 1
	}
	return math.Abs(a-b) <= tol*scale
}

// 地表处通式必须退化为强迫信号本身，不允许对 z=0 做特判
func TestSurfaceIdentity(t *testing.T) {
	p := scenarioParams()
	field := mustGenerate(t, 0, 24, 0.25, mustDepths(t, 50, 51))
	for j, tm := range field.Times {
		expected := p.MeanTemperature + p.Amplitude*math.Sin(math.Pi*(tm-p.PhaseOffset)/(p.Period/2))
		if !closeRel(field.Data[0][j], expected, 1e-9) {
			t.Fatalf("t=%v: surface %v, forcing signal %v", tm, field.Data[0][j], expected)
		}
	}
}

// 摆幅随深度单调衰减
func TestMonotonicAttenuation(t *testing.T) {
	field := mustGenerate(t, 0, 24, 0.25, mustDepths(t, 50, 51))
	for i := 1; i < len(field.Depths); i++ {
		if field.Swing(i) > field.Swing(i-1)+1e-12 {
			t.Fatalf("swing at depth %v (%v) exceeds swing at depth %v (%v)",
				field.Depths[i], field.Swing(i), field.Depths[i-1], field.Swing(i-1))
		}
	}
}

// 相位滞后随深度单调增长（对一个周期取模）
func TestMonotonicPhaseLag(t *testing.T) {
	p := scenarioParams()
	field := mustGenerate(t, 0, 24, 0.25, []float64{0, -5, -10, -20, -50})
	surfaceMax := field.TimeOfMax(0)
	prevLag := 0.0
	for i := 1; i < len(field.Depths); i++ {
		lag := math.Mod(field.TimeOfMax(i)-surfaceMax+p.Period, p.Period)
		if lag+1e-9 < prevLag {
			t.Fatalf("phase lag at depth %v (%vh) smaller than at shallower depth (%vh)",
				field.Depths[i], lag, prevLag)
		}
		prevLag = lag
	}
	if prevLag == 0 {
		t.Fatal("expected nonzero phase lag at depth -50")
	}
}

// 周期性：相隔整周期的两个时刻温度一致
func TestPeriodicity(t *testing.T) {
	p := scenarioParams()
	field := mustGenerate(t, 0, 72, 0.25, mustDepths(t, 50, 51))
	perSteps := int(p.Period / 0.25)
	for i := range field.Depths {
		for j := 0; j+perSteps < len(field.Times); j++ {
			a := field.Data[i][j]
			b := field.Data[i][j+perSteps]
			if math.Abs(a-b) > 1e-9 {
				t.Fatalf("depth %v t=%v: %v vs t+P: %v", field.Depths[i], field.Times[j], a, b)
			}
		}
	}
}

// 有界性：所有值都在 [均温-振幅, 均温+振幅] 内且有限
func TestBoundedness(t *testing.T) {
	p := scenarioParams()
	field := mustGenerate(t, 0, 72, 0.25, mustDepths(t, 50, 51))
	lo := p.MeanTemperature - p.Amplitude
	hi := p.MeanTemperature + p.Amplitude
	for i, row := range field.Data {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite value at depth %v t=%v", field.Depths[i], field.Times[j])
			}
			if v < lo-1e-9 || v > hi+1e-9 {
				t.Fatalf("value %v at depth %v t=%v outside [%v, %v]", v, field.Depths[i], field.Times[j], lo, hi)
			}
		}
	}
}

// 具体场景：14时地表达到峰值35℃，50cm深处摆幅衰减到地表的10%以下
func TestScenario(t *testing.T) {
	times, err := NewTimeDomain(0, 24, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	field, err := GenerateField(times, []float64{0, -10, -50}, scenarioParams())
	if err != nil {
		t.Fatal(err)
	}

	j := 0
	for ; j < len(field.Times); j++ {
		if field.Times[j] == 14 {
			break
		}
	}
	if j == len(field.Times) {
		t.Fatal("t=14 not in time domain")
	}
	if !closeRel(field.Data[0][j], 35.0, 1e-9) {
		t.Fatalf("surface peak at t=14: %v, expected 35", field.Data[0][j])
	}

	if field.Swing(2) >= 0.1*field.Swing(0) {
		t.Fatalf("swing at -50cm (%v) not below 10%% of surface swing (%v)", field.Swing(2), field.Swing(0))
	}
}

// 退化情形：只有地表一层时，场就是强迫正弦本身
func TestSurfaceOnlyDomain(t *testing.T) {
	p := scenarioParams()
	depths, err := NewDepthDomain(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	times, err := NewTimeDomain(0, 24, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	field, err := GenerateField(times, depths, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(field.Data) != 1 {
		t.Fatalf("expected single row, got %d", len(field.Data))
	}
	for j, tm := range field.Times {
		expected := p.MeanTemperature + p.Amplitude*math.Sin(math.Pi*(tm-p.PhaseOffset)/(p.Period/2))
		if !closeRel(field.Data[0][j], expected, 1e-9) {
			t.Fatalf("t=%v: %v, expected %v", tm, field.Data[0][j], expected)
		}
	}
}

// 衰减因子物理含义：深度越深相对摆幅越小且为 (0,1] 内的比例
func TestDecayFraction(t *testing.T) {
	field := mustGenerate(t, 0, 24, 0.25, mustDepths(t, 50, 51))
	surface := field.Swing(0)
	for i := range field.Depths {
		ratio := field.Swing(i) / surface
		if ratio <= 0 || ratio > 1+1e-12 {
			t.Fatalf("swing ratio %v at depth %v outside (0, 1]", ratio, field.Depths[i])
		}
	}
}
