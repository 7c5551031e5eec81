package q931

// unassignedChannel is the sentinel B-channel number meaning "no channel
// assigned yet" (spec.md §3 Call).
const unassignedChannel = 255

// Call is one entry in a trunk's fixed-capacity call table (spec.md §3).
type Call struct {
	inUse bool

	CRV   uint16
	BChan byte // unassignedChannel (255) until a B-channel is picked
	State CallState

	timerID       TimerID
	timerDeadline int64 // ms, per Trunk.clock

	TEI byte // captured from Layer 2, point-to-multipoint BRI

	// Overlap-dial accumulator (spec.md §4.8); only meaningful while
	// State is the NT overlap-receiving state.
	overlapDigits string
}

func (c *Call) reset() {
	*c = Call{}
}

// callTable is the per-trunk fixed-capacity array of Call slots keyed by
// CRV (spec.md §3 Call Reference Value, §4.3).
type callTable struct {
	calls   []Call
	nextCRV uint16
	maxCRV  uint16 // 2^15-1 for PRI, 2^7-1 for BRI
}

func newCallTable(capacity int, maxCRV uint16) *callTable {
	return &callTable{
		calls:   make([]Call, capacity),
		nextCRV: 1, // CRV 0 is reserved for global procedures (RESTART)
		maxCRV:  maxCRV,
	}
}

// allocate marks a free slot in-use with the given CRV (spec.md §4.3
// allocate operation). Returns the slot index or ErrTooManyCalls.
func (ct *callTable) allocate(crv uint16) (int, error) {
	for i := range ct.calls {
		if !ct.calls[i].inUse {
			ct.calls[i].reset()
			ct.calls[i].inUse = true
			ct.calls[i].CRV = crv
			ct.calls[i].BChan = unassignedChannel
			ct.calls[i].State = StateNull
			return i, nil
		}
	}
	return -1, newError(ErrTooManyCalls, "call table full", len(ct.calls), 0)
}

// create allocates the next unique CRV and a slot for it (spec.md §4.3
// create operation). CRV allocation wraps at maxCRV, skipping 0.
func (ct *callTable) create() (uint16, int, error) {
	crv := ct.nextCRV
	ct.nextCRV++
	if ct.nextCRV > ct.maxCRV {
		ct.nextCRV = 1
	}
	// Skip any CRV currently in use, bounded by table capacity so this
	// cannot loop forever.
	for i := 0; i < len(ct.calls); i++ {
		if _, err := ct.find(crv); err != nil {
			break
		}
		crv = ct.nextCRV
		ct.nextCRV++
		if ct.nextCRV > ct.maxCRV {
			ct.nextCRV = 1
		}
	}
	idx, err := ct.allocate(crv)
	if err != nil {
		return 0, -1, err
	}
	return crv, idx, nil
}

// find returns the index of the in-use call with the given CRV (spec.md
// §4.3 find operation), scanning linearly as the source does.
func (ct *callTable) find(crv uint16) (int, error) {
	for i := range ct.calls {
		if ct.calls[i].inUse && ct.calls[i].CRV == crv {
			return i, nil
		}
	}
	return -1, newError(ErrInvalidCRV, "no call with that CRV", int(crv), 0)
}

// release marks a slot free. Idempotent: releasing an already-free or
// unknown CRV is a no-op (spec.md §4.3 release operation).
func (ct *callTable) release(crv uint16) {
	if idx, err := ct.find(crv); err == nil {
		ct.calls[idx].reset()
	}
}

func (ct *callTable) get(idx int) *Call {
	return &ct.calls[idx]
}

// forEachInUse visits every in-use call; used by RESTART-of-all-
// interfaces and by the timer tick (spec.md §4.4, §4.8 scenario 6).
func (ct *callTable) forEachInUse(fn func(idx int, call *Call)) {
	for i := range ct.calls {
		if ct.calls[i].inUse {
			fn(i, &ct.calls[i])
		}
	}
}
