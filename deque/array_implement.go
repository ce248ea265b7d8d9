package deque

import "trwd/generator"

type ArrDeque struct {
	frames []*generator.ProfileFrame
	start  int // 队头下标
	size   int
}

func NewArrDeque(capacity int) *ArrDeque {
	if capacity < 1 {
		capacity = 1
	}
	return &ArrDeque{
		frames: make([]*generator.ProfileFrame, capacity),
	}
}

func (d *ArrDeque) Size() int {
	return d.size
}

func (d *ArrDeque) Cap() int {
	return len(d.frames)
}

func (d *ArrDeque) IsEmpty() bool {
	return d.size == 0
}

func (d *ArrDeque) IsFull() bool {
	return d.size == len(d.frames)
}

func (d *ArrDeque) AddLast(frame *generator.ProfileFrame) {
	if d.IsFull() {
		// 滑动窗口，丢弃最旧的一帧
		d.RemoveFirst()
	}
	d.frames[(d.start+d.size)%len(d.frames)] = frame
	d.size++
}

func (d *ArrDeque) RemoveFirst() *generator.ProfileFrame {
	if d.IsEmpty() {
		return nil
	}
	frame := d.frames[d.start]
	d.frames[d.start] = nil
	d.start = (d.start + 1) % len(d.frames)
	d.size--
	return frame
}

func (d *ArrDeque) PeekFirst() *generator.ProfileFrame {
	if d.IsEmpty() {
		return nil
	}
	return d.frames[d.start]
}

func (d *ArrDeque) Traverse(f func(i int, frame *generator.ProfileFrame)) {
	for i := 0; i < d.size; i++ {
		f(i, d.frames[(d.start+i)%len(d.frames)])
	}
}
