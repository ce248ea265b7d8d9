package server

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"trwd/deque"
	"trwd/generator"
	"trwd/model"
	"trwd/soil"
	"trwd/tdr"
)

// 每条连接的滑动窗口帧容量
const frameWindow = 512

// Hub 维护一条前端连接上的生成与推送状态
// 前端负责全部绘图、动画与文件输出，这里只按请求下发数组
type Hub struct {
	conn *websocket.Conn

	params    generator.ThermalParameters
	times     []float64
	depths    []float64
	field     *generator.TemperatureField
	calcHub   *generator.CalcHub
	window    deque.Deque
	streaming bool

	// request
	msg chan model.Msg
	// response
	envSet  chan model.Msg
	started chan model.Msg
	stopped chan model.Msg
	dataset chan model.Msg
	frame   chan model.Msg
}

func NewHub() *Hub {
	h := &Hub{
		calcHub: generator.NewCalcHub(),
		window:  deque.NewArrDeque(frameWindow),

		msg:     make(chan model.Msg, 10),
		envSet:  make(chan model.Msg, 10),
		started: make(chan model.Msg, 10),
		stopped: make(chan model.Msg, 10),
		dataset: make(chan model.Msg, 10),
		frame:   make(chan model.Msg, 10),
	}
	h.params = generator.DefaultParameters()
	times, depths, err := generator.DefaultDomains()
	if err != nil {
		log.Println("err: ", err)
	} else {
		h.times = times
		h.depths = depths
	}
	return h
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.envSet:
			h.write(reply)
		case reply := <-h.started:
			h.write(reply)
		case reply := <-h.stopped:
			h.write(reply)
		case reply := <-h.dataset:
			h.write(reply)
		case reply := <-h.frame:
			h.write(reply)
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (h *Hub) write(reply model.Msg) {
	err := h.conn.WriteJSON(&reply)
	if err != nil {
		log.Println("err: ", err)
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			switch msg.Type {
			case "env":
				var env model.Env
				if err := json.Unmarshal([]byte(msg.Content), &env); err != nil {
					h.envSet <- model.Msg{Type: "envInvalid", Content: err.Error()}
					break
				}
				if err := h.applyEnv(env); err != nil {
					h.envSet <- model.Msg{Type: "envInvalid", Content: err.Error()}
					break
				}
				h.envSet <- model.Msg{Type: "envSet", Content: "env is set"}
			case "start":
				h.handleStart()
			case "stop":
				h.handleStop()
			case "series":
				h.handleSeries()
			case "field":
				h.handleField()
			case "soil":
				h.handleSoil()
			case "tdr":
				h.handleTdr()
			default:
				log.Println("no such type")
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

// 设置强迫信号参数与网格，任何一项校验失败都整体拒绝
func (h *Hub) applyEnv(env model.Env) error {
	params := generator.ThermalParameters{
		MeanTemperature: env.MeanTemperature,
		Amplitude:       env.Amplitude,
		Diffusivity:     env.Diffusivity,
		Period:          env.Period,
		PhaseOffset:     env.PhaseOffset,
	}
	if err := params.Validate(); err != nil {
		return err
	}
	times, err := generator.NewTimeDomain(env.TimeStart, env.TimeEnd, env.TimeStep)
	if err != nil {
		return err
	}
	depths, err := generator.NewDepthDomain(env.DepthMax, env.DepthPoints)
	if err != nil {
		return err
	}
	h.params = params
	h.times = times
	h.depths = depths
	h.field = nil
	log.WithFields(log.Fields{
		"MeanTemperature": params.MeanTemperature,
		"Amplitude":       params.Amplitude,
		"Diffusivity":     params.Diffusivity,
		"Period":          params.Period,
		"PhaseOffset":     params.PhaseOffset,
		"TimePoints":      len(times),
		"DepthPoints":     len(depths),
	}).Info("设置环境参数")
	return nil
}

// 生成温度场，先回复场的元信息，再按配置的节拍逐帧推送剖面
// 每轮推送使用独立的 CalcHub 与帧窗口，重启时旧会话的协程只持有旧对象并随旧会话退出
func (h *Hub) handleStart() {
	if h.streaming {
		h.stopStreaming()
	}
	if err := h.ensureField(); err != nil {
		h.started <- model.Msg{Type: "startFailed", Content: err.Error()}
		return
	}
	meta, err := json.Marshal(generator.BuildMeta(h.field))
	if err != nil {
		log.Println("err: ", err)
		return
	}
	window := deque.NewArrDeque(frameWindow)
	for j := range h.field.Times {
		window.AddLast(generator.BuildProfileFrame(h.field, j))
	}
	calcHub := generator.NewCalcHub()
	h.calcHub = calcHub
	h.window = window
	h.streaming = true
	go calcHub.Run(generator.PushInterval())
	go h.pushFrames(calcHub, window)
	h.started <- model.Msg{Type: "started", Content: string(meta)}
}

func (h *Hub) handleStop() {
	h.stopStreaming()
	h.stopped <- model.Msg{Type: "stopped", Content: "stopped"}
}

// 停止信号幂等，帧耗尽后的自然结束与前端 stop 并发到达也只关闭一次
func (h *Hub) stopStreaming() {
	if !h.streaming {
		return
	}
	h.streaming = false
	h.calcHub.StopSignal()
}

// 常规展示深度的温度时间序列
func (h *Hub) handleSeries() {
	if err := h.ensureField(); err != nil {
		h.dataset <- model.Msg{Type: "seriesFailed", Content: err.Error()}
		return
	}
	data, err := json.Marshal(generator.BuildSeriesData(h.field, generator.PlotDepths))
	if err != nil {
		log.Println("err: ", err)
		return
	}
	h.dataset <- model.Msg{Type: "series", Content: string(data)}
}

// 整场数据，差分编码后下发
func (h *Hub) handleField() {
	if err := h.ensureField(); err != nil {
		h.dataset <- model.Msg{Type: "fieldFailed", Content: err.Error()}
		return
	}
	encoded, err := generator.EncodeField(h.field)
	if err != nil {
		h.dataset <- model.Msg{Type: "fieldFailed", Content: err.Error()}
		return
	}
	data, err := json.Marshal(encoded)
	if err != nil {
		log.Println("err: ", err)
		return
	}
	h.dataset <- model.Msg{Type: "field", Content: string(data)}
}

// 土壤热性质曲线
func (h *Hub) handleSoil() {
	curves, err := soil.SandyLoam().Curves(200)
	if err != nil {
		h.dataset <- model.Msg{Type: "soilFailed", Content: err.Error()}
		return
	}
	data, err := json.Marshal(curves)
	if err != nil {
		log.Println("err: ", err)
		return
	}
	h.dataset <- model.Msg{Type: "soil", Content: string(data)}
}

// TDR 反射波形
func (h *Hub) handleTdr() {
	probe := tdr.DefaultProbe()
	x, err := probe.Grid(800)
	if err != nil {
		h.dataset <- model.Msg{Type: "tdrFailed", Content: err.Error()}
		return
	}
	payload := struct {
		X  []float64 `json:"x"`
		Y  []float64 `json:"y"`
		X1 float64   `json:"x1"`
		X2 float64   `json:"x2"`
		La float64   `json:"la"`
	}{
		X:  x,
		Y:  probe.Waveform(x),
		X1: probe.X1(),
		X2: probe.X2(),
		La: probe.ApparentLength(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Println("err: ", err)
		return
	}
	h.dataset <- model.Msg{Type: "tdr", Content: string(data)}
}

func (h *Hub) ensureField() error {
	if h.field != nil {
		return nil
	}
	field, err := generator.GenerateField(h.times, h.depths, h.params)
	if err != nil {
		return err
	}
	h.field = field
	return nil
}

// 按节拍出队推帧，帧用完后自然结束并通知前端
// 只使用传入的会话对象，不回读 Hub 上的字段，避免旧协程挂到新会话上
func (h *Hub) pushFrames(calcHub *generator.CalcHub, window deque.Deque) {
	for {
		select {
		case <-calcHub.Done():
			return
		case <-calcHub.PeriodPushFrame:
			if window.IsEmpty() {
				calcHub.StopSignal()
				h.frame <- model.Msg{Type: "finished"}
				return
			}
			frame := window.RemoveFirst()
			data, err := json.Marshal(frame)
			if err != nil {
				log.Println("err: ", err)
				continue
			}
			h.frame <- model.Msg{Type: "frame", Content: string(data)}
		}
	}
}
