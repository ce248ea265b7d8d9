// 利用数组实现帧队列：生成器按时间顺序把剖面帧填入队尾，推送循环从队头取出，
// 数组具有更好的局部性，队列满时丢弃最旧的一帧形成滑动窗口

package deque

import "trwd/generator"

type Deque interface {
	// 队列中的帧数
	Size() int

	// 队列容量
	Cap() int

	IsEmpty() bool

	IsFull() bool

	// 在队尾增加一帧，队列满时先丢弃队头
	AddLast(frame *generator.ProfileFrame)

	// 取出队头一帧
	RemoveFirst() *generator.ProfileFrame

	// 查看队头一帧但不取出
	PeekFirst() *generator.ProfileFrame

	// 正向遍历
	Traverse(f func(i int, frame *generator.ProfileFrame))
}
