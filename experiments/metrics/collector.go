package metrics

import (
	"sync/atomic"
	"time"

	"isolation/game"
)

type SearchMetric struct {
	Duration    time.Duration
	Depth       int // Deepest fully completed search depth
	Nodes       int // Recursive search calls
	Forecasts   int
	Evaluations int
	Cutoffs     int
	TimedOut    bool
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player
	Forfeit        bool
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start()
	AddNode()
	AddForecast()
	AddEvaluation()
	AddCutoff()
	SetDepth(depth int)
	SetTimedOut(value bool)
	Complete() SearchMetric
}

type collector struct {
	startTime   time.Time
	depth       atomic.Int32
	nodes       atomic.Int32
	forecasts   atomic.Int32
	evaluations atomic.Int32
	cutoffs     atomic.Int32
	timedOut    atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.depth.Store(0)
	m.nodes.Store(0)
	m.forecasts.Store(0)
	m.evaluations.Store(0)
	m.cutoffs.Store(0)
	m.timedOut.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddForecast() {
	m.forecasts.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) SetTimedOut(value bool) {
	m.timedOut.Store(value)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:    time.Since(m.startTime),
		Depth:       int(m.depth.Load()),
		Nodes:       int(m.nodes.Load()),
		Forecasts:   int(m.forecasts.Load()),
		Evaluations: int(m.evaluations.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		TimedOut:    m.timedOut.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddForecast()           {}
func (m *dummyCollector) AddEvaluation()         {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) SetDepth(depth int)     {}
func (m *dummyCollector) SetTimedOut(value bool) {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
