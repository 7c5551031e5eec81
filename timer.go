package q931

// StartTimer arms timer id on call, using the trunk's dialect default
// (or a per-trunk override) for its duration, and records the deadline
// in milliseconds per the trunk's clock (spec.md §4.4). Starting a timer
// implicitly replaces whatever timer was previously running on this
// call.
func (t *Trunk) StartTimer(call *Call, id TimerID) {
	now := t.now()
	def := t.timerDefault(id)
	call.timerID = id
	call.timerDeadline = now + int64(def.Milliseconds())
	t.logf(LogDebug, "crv=%d start timer %d deadline=%d", call.CRV, id, call.timerDeadline)
}

// StopTimer clears call's timer only if it matches id, preventing a race
// between a late expiry and a timer that was already restarted for a
// different purpose (spec.md §4.4).
func (t *Trunk) StopTimer(call *Call, id TimerID) {
	if call.timerID == id {
		call.timerID = TimerNone
		call.timerDeadline = 0
	}
}

// Tick drives the per-trunk timer subsystem. The host calls it
// periodically (spec.md §4.4, §5 "driven by... a periodic tick"); any
// in-use call whose timer has reached its deadline has that timer
// cleared and the dialect's timeout handler invoked. now is the current
// time in milliseconds from the same monotonic source as the trunk's
// ClockFunc.
func (t *Trunk) Tick(now int64) {
	t.calls.forEachInUse(func(idx int, call *Call) {
		if call.timerID == TimerNone || call.timerDeadline > now {
			return
		}
		id := call.timerID
		call.timerID = TimerNone
		call.timerDeadline = 0
		handler, ok := t.dialect.timeoutHandlerFor(id)
		if !ok {
			t.reportError(newError(ErrMissingCallback, "no timeout handler", int(id), 0))
			return
		}
		if err := handler(t, call); err != nil {
			t.reportError(err)
		}
	})
}

func (t *Trunk) timerDefault(id TimerID) durationMS {
	if d, ok := t.Config.TimerOverrides[id]; ok {
		return durationMS(d)
	}
	if id == TDigit && t.Config.OverlapDigitTimeoutMS > 0 {
		return durationMS(t.Config.OverlapDigitTimeoutMS)
	}
	return durationMS(t.dialect.timerDefaultFor(id).Milliseconds())
}

// durationMS is milliseconds wrapped as its own type only to keep the
// Milliseconds() call above self-documenting; arithmetic elsewhere just
// uses int64.
type durationMS int64

func (d durationMS) Milliseconds() int64 { return int64(d) }
