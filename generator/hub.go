package generator

import (
	"sync"
	"time"
)

// 帧推送节拍
// 每次 start 新建一个 CalcHub 作为一轮推送会话，推送循环收到信号后出队一帧写给前端
// 停止信号可能同时来自前端的 stop 和帧耗尽后的自然结束，用 once 保证幂等

type CalcHub struct {
	stopOnce        sync.Once
	stop            chan struct{}
	PeriodPushFrame chan struct{}
}

func NewCalcHub() *CalcHub {
	return &CalcHub{
		stop:            make(chan struct{}),
		PeriodPushFrame: make(chan struct{}),
	}
}

func (ch *CalcHub) StopSignal() {
	ch.stopOnce.Do(func() {
		close(ch.stop)
	})
}

// 会话结束通知
func (ch *CalcHub) Done() <-chan struct{} {
	return ch.stop
}

// 周期性推帧任务
func (ch *CalcHub) Run(interval time.Duration) {
	for {
		select {
		case <-ch.stop:
			return
		case ch.PeriodPushFrame <- struct{}{}:
			time.Sleep(interval)
		}
	}
}
