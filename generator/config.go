package generator

import (
	"fmt"
	"time"

	"gopkg.in/ini.v1"
)

var genCfg Config

type Config struct {
	TimeStart float64
	TimeEnd   float64
	TimeStep  float64

	DepthMax    float64
	DepthPoints int

	MeanTemperature float64
	Amplitude       float64
	Diffusivity     float64
	Period          float64
	PhaseOffset     float64

	PushIntervalMs int

	Addr string
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		fmt.Println("配置文件读取错误，使用默认参数: ", err)
		file = ini.Empty()
	}

	loadCfg(file)
}

func loadCfg(file *ini.File) {
	genCfg = Config{
		TimeStart: file.Section("generator").Key("TimeStart").MustFloat64(0),
		TimeEnd:   file.Section("generator").Key("TimeEnd").MustFloat64(72),
		TimeStep:  file.Section("generator").Key("TimeStep").MustFloat64(0.25),

		DepthMax:    file.Section("generator").Key("DepthMax").MustFloat64(50),
		DepthPoints: file.Section("generator").Key("DepthPoints").MustInt(51),

		MeanTemperature: file.Section("generator").Key("MeanTemperature").MustFloat64(25),
		Amplitude:       file.Section("generator").Key("Amplitude").MustFloat64(10),
		Diffusivity:     file.Section("generator").Key("Diffusivity").MustFloat64(18),
		Period:          file.Section("generator").Key("Period").MustFloat64(24),
		PhaseOffset:     file.Section("generator").Key("PhaseOffset").MustFloat64(8),

		PushIntervalMs: file.Section("push").Key("IntervalMs").MustInt(80),

		Addr: file.Section("server").Key("Addr").MustString(":9000"),
	}
}

// 配置文件给定的默认热参数
func DefaultParameters() ThermalParameters {
	return ThermalParameters{
		MeanTemperature: genCfg.MeanTemperature,
		Amplitude:       genCfg.Amplitude,
		Diffusivity:     genCfg.Diffusivity,
		Period:          genCfg.Period,
		PhaseOffset:     genCfg.PhaseOffset,
	}
}

// 配置文件给定的默认时间、深度网格
func DefaultDomains() (times, depths []float64, err error) {
	times, err = NewTimeDomain(genCfg.TimeStart, genCfg.TimeEnd, genCfg.TimeStep)
	if err != nil {
		return nil, nil, err
	}
	depths, err = NewDepthDomain(genCfg.DepthMax, genCfg.DepthPoints)
	if err != nil {
		return nil, nil, err
	}
	return times, depths, nil
}

// 帧推送间隔
func PushInterval() time.Duration {
	return time.Duration(genCfg.PushIntervalMs) * time.Millisecond
}

func ServerAddr() string {
	return genCfg.Addr
}
