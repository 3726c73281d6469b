package bench

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// Receives the arena's progress. Every worker gets its own clone, so
// OnMoveMade, OnFinishedGame and OnFinishedWork of a clone are called
// from a single goroutine, but clones run concurrently.
type ListenerLike interface {
	SetRow(row int)
	OnStart()
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
	OnEnd()
	Clone() ListenerLike
}

type NopListener struct{}

func (NopListener) SetRow(int)                      {}
func (NopListener) OnStart()                        {}
func (NopListener) OnMoveMade(VersusWorkerInfo)     {}
func (NopListener) OnFinishedGame(VersusWorkerInfo) {}
func (NopListener) OnFinishedWork(VersusWorkerInfo) {}
func (NopListener) Summary(VersusSummaryInfo)       {}
func (NopListener) OnEnd()                          {}
func (n NopListener) Clone() ListenerLike           { return n }

// Prints a coloured line for every finished worker and the final summary
type DefaultListener struct {
	out *termenv.Output
	mu  *sync.Mutex
	row int
}

func NewDefaultListener(w io.Writer, opts ...termenv.OutputOption) *DefaultListener {
	if w == nil {
		w = os.Stdout
	}
	return &DefaultListener{
		out: termenv.NewOutput(w, opts...),
		mu:  &sync.Mutex{},
	}
}

func (d *DefaultListener) SetRow(row int) {
	d.row = row
}

func (d *DefaultListener) Clone() ListenerLike {
	return &DefaultListener{out: d.out, mu: d.mu}
}

func (d *DefaultListener) colored(s, color string) string {
	return d.out.String(s).Foreground(d.out.Color(color)).String()
}

func (d *DefaultListener) print(format string, args ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, format, args...)
}

func (d *DefaultListener) OnStart() {
	d.print("%s\n", d.out.String("Arena started").Bold().String())
}

func (d *DefaultListener) OnMoveMade(info VersusWorkerInfo) {}

func (d *DefaultListener) OnFinishedGame(info VersusWorkerInfo) {}

func (d *DefaultListener) OnFinishedWork(info VersusWorkerInfo) {
	d.print("[worker %d] games %d/%d  %s %s  %s %s  %s\n",
		info.WorkerID, info.FinishedGames, info.NGames,
		info.P1Name, d.colored(fmt.Sprintf("+%d", info.P1Wins), "2"),
		info.P2Name, d.colored(fmt.Sprintf("+%d", info.P2Wins), "1"),
		d.colored(fmt.Sprintf("=%d", info.Draws), "3"),
	)
}

func (d *DefaultListener) Summary(summary VersusSummaryInfo) {
	d.print("%s games %d (workers %d)\n  %-10s %s\n  %-10s %s\n  %-10s %s\n  first to move won %d, second to move won %d\n",
		d.out.String("Summary:").Bold().String(), summary.TotalGames, summary.Workers,
		summary.P1Name, d.colored(fmt.Sprintf("%d wins", summary.P1Wins), "2"),
		summary.P2Name, d.colored(fmt.Sprintf("%d wins", summary.P2Wins), "1"),
		"draws", d.colored(fmt.Sprintf("%d", summary.Draws), "3"),
		summary.FirstToMoveWins, summary.SecondToMoveWins,
	)
}

func (d *DefaultListener) OnEnd() {}
