package core

import "sort"

// FrameQueue is a Scheduler that runs callbacks only when a frame is
// explicitly advanced. Hosts call RunFrame once per display refresh; tests
// call it by hand.
type FrameQueue struct {
	next    FrameHandle
	pending map[FrameHandle]func()
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: map[FrameHandle]func(){}}
}

// RequestFrame schedules fn for the next RunFrame.
func (q *FrameQueue) RequestFrame(fn func()) FrameHandle {
	if fn == nil {
		return 0
	}
	q.next++
	q.pending[q.next] = fn
	return q.next
}

// CancelFrame drops a pending callback. Unknown handles are ignored.
func (q *FrameQueue) CancelFrame(h FrameHandle) {
	delete(q.pending, h)
}

// Pending reports how many callbacks are waiting.
func (q *FrameQueue) Pending() int { return len(q.pending) }

// RunFrame invokes the callbacks pending at call time in request order and
// returns how many ran. Callbacks requested while running wait for the
// following frame; callbacks cancelled while running are skipped.
func (q *FrameQueue) RunFrame() int {
	if len(q.pending) == 0 {
		return 0
	}
	handles := make([]FrameHandle, 0, len(q.pending))
	for h := range q.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	ran := 0
	for _, h := range handles {
		fn, ok := q.pending[h]
		if !ok {
			continue
		}
		delete(q.pending, h)
		fn()
		ran++
	}
	return ran
}
