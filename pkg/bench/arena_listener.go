package bench

// Forwards every event to all of its listeners, in order
type MultiListener struct {
	listeners []ListenerLike
}

func NewMultiListener(listeners ...ListenerLike) *MultiListener {
	return &MultiListener{listeners: listeners}
}

func (ml *MultiListener) SetRow(row int) {
	for _, l := range ml.listeners {
		l.SetRow(row)
	}
}

func (ml *MultiListener) OnStart() {
	for _, l := range ml.listeners {
		l.OnStart()
	}
}

func (ml *MultiListener) OnMoveMade(info VersusWorkerInfo) {
	for _, l := range ml.listeners {
		l.OnMoveMade(info)
	}
}

func (ml *MultiListener) OnFinishedGame(info VersusWorkerInfo) {
	for _, l := range ml.listeners {
		l.OnFinishedGame(info)
	}
}

func (ml *MultiListener) OnFinishedWork(info VersusWorkerInfo) {
	for _, l := range ml.listeners {
		l.OnFinishedWork(info)
	}
}

func (ml *MultiListener) Summary(summary VersusSummaryInfo) {
	for _, l := range ml.listeners {
		l.Summary(summary)
	}
}

func (ml *MultiListener) OnEnd() {
	for _, l := range ml.listeners {
		l.OnEnd()
	}
}

func (ml *MultiListener) Clone() ListenerLike {
	clones := make([]ListenerLike, len(ml.listeners))
	for i, l := range ml.listeners {
		clones[i] = l.Clone()
	}
	return &MultiListener{listeners: clones}
}
