package model

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 环境设置请求：地表强迫信号参数 + 土壤热参数 + 网格范围
// 深度单位 cm，时间单位小时，热扩散率单位 cm²/h，温度单位 ℃
type Env struct {
	MeanTemperature float64 `json:"mean_temperature"` // 日平均地表温度
	Amplitude       float64 `json:"amplitude"`        // 地表温度振幅，(最高-最低)/2
	Diffusivity     float64 `json:"diffusivity"`      // 土壤热扩散率
	Period          float64 `json:"period"`           // 波动周期，一般为24小时
	PhaseOffset     float64 `json:"phase_offset"`     // 相位偏移，8 表示 14 时最热

	TimeStart   float64 `json:"time_start"`
	TimeEnd     float64 `json:"time_end"`
	TimeStep    float64 `json:"time_step"`
	DepthMax    float64 `json:"depth_max"`    // 最大深度，正值
	DepthPoints int     `json:"depth_points"` // 深度方向节点数，含地表
}
