package metrics

import (
	"othello/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines   int
	Duration     time.Duration
	Episodes     int
	Cutoff       int
	Level        int
	Nodes        int // Positions visited by a depth-limited search
	FullPlayouts int
	IsTreeReset  bool
}

type MoveMetric struct {
	Step   int
	Player game.Color
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Color
	Winner         string
	BlackDiscs     int
	WhiteDiscs     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(goroutines, cutoff, level int)
	SetTreeReset(value bool)
	AddFullPlayout()
	AddEpisode()
	AddNode()
	Complete() SearchMetric
}

type collector struct {
	goroutines   int
	cutoff       int
	level        int
	startTime    time.Time
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
	nodes        atomic.Int32
	isTreeReset  atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) SetTreeReset(value bool) {
	m.isTreeReset.Store(value)
}

// Start resets the counters for a new search.
func (m *collector) Start(goroutines, cutoff, level int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.cutoff = cutoff
	m.level = level
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.nodes.Store(0)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Nodes:        int(m.nodes.Load()),
		Cutoff:       m.cutoff,
		Level:        m.level,
		IsTreeReset:  m.isTreeReset.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, cutoff, level int) {}
func (m *dummyCollector) SetTreeReset(value bool)             {}
func (m *dummyCollector) AddFullPlayout()                     {}
func (m *dummyCollector) AddEpisode()                         {}
func (m *dummyCollector) AddNode()                            {}
func (m *dummyCollector) Complete() SearchMetric              { return SearchMetric{} }
