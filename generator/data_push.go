package generator

import "fmt"

// 推送给前端渲染的数据帧
// 前端负责全部绘图与文件输出，这里只组装数组

// 常规展示深度，野外观测的习惯取法，单位 cm
var PlotDepths = []float64{-5, -10, -20, -50}

// 场的元信息，started 回复时下发，前端据此初始化坐标轴
type FieldMeta struct {
	Times  []float64 `json:"times"`
	Depths []float64 `json:"depths"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
	Frames int       `json:"frames"`
}

// 单帧：某一时刻所有深度的温度剖面
type ProfileFrame struct {
	Index   int       `json:"index"`
	Hour    float64   `json:"hour"`
	Clock   string    `json:"clock"` // HH:MM
	Profile []float64 `json:"profile"`
}

// 某一深度的温度时间序列
type DepthSeries struct {
	Depth float64   `json:"depth"`
	Label string    `json:"label"`
	Temps []float64 `json:"temps"`
}

type SeriesData struct {
	Times  []float64     `json:"times"`
	Series []DepthSeries `json:"series"`
}

func BuildMeta(f *TemperatureField) FieldMeta {
	min, max := f.Bounds()
	return FieldMeta{
		Times:  f.Times,
		Depths: f.Depths,
		Min:    min,
		Max:    max,
		Frames: len(f.Times),
	}
}

func BuildProfileFrame(f *TemperatureField, timeIdx int) *ProfileFrame {
	return &ProfileFrame{
		Index:   timeIdx,
		Hour:    f.Times[timeIdx],
		Clock:   clockLabel(f.Times[timeIdx]),
		Profile: f.Profile(timeIdx),
	}
}

// 按最接近的节点提取各展示深度的时间序列
func BuildSeriesData(f *TemperatureField, depths []float64) SeriesData {
	series := make([]DepthSeries, 0, len(depths))
	for _, d := range depths {
		idx := f.NearestDepthIndex(d)
		series = append(series, DepthSeries{
			Depth: f.Depths[idx],
			Label: fmt.Sprintf("%.0f cm", -f.Depths[idx]),
			Temps: f.Series(idx),
		})
	}
	return SeriesData{Times: f.Times, Series: series}
}

// 以 00:00 为基准把小时偏移换算为钟表时刻
// 偏移可能为负（时间轴从 0 点之前开始），先归一化到一天之内再格式化
func clockLabel(hour float64) string {
	minutes := int(hour*60) % minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

const minutesPerDay = 24 * 60
