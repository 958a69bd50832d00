package metrics

import (
	"time"
)

// SearchMetric describes one move decision. Totals accumulate over every
// decision the same agent has made so far.
type SearchMetric struct {
	Nodes          int // nodes expanded this turn, root excluded
	TotalNodes     int
	MaxDepth       int // deepest cutoff reached this turn
	TotalMaxDepth  int // sum of MaxDepth over turns
	CompletedDepth int // last fully searched depth bound
	Value          int // backed-up root value of the chosen move
	Duration       time.Duration
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	Size       int
	Winner     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector gathers search counters across the decisions of one agent.
type Collector interface {
	Start()
	AddNodes(n int)
	ReachDepth(depth int)
	CompleteDepth(depth, value int)
	Complete() SearchMetric
}

type collector struct {
	startTime      time.Time
	nodes          int
	totalNodes     int
	maxDepth       int
	totalMaxDepth  int
	completedDepth int
	value          int
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the per-turn counters. Totals are kept.
func (m *collector) Start() {
	m.startTime = time.Now()
	m.nodes = 0
	m.maxDepth = 0
	m.completedDepth = 0
	m.value = 0
}

func (m *collector) AddNodes(n int) {
	m.nodes += n
	m.totalNodes += n
}

func (m *collector) ReachDepth(depth int) {
	if depth > m.maxDepth {
		m.maxDepth = depth
	}
}

func (m *collector) CompleteDepth(depth, value int) {
	m.completedDepth = depth
	m.value = value
}

func (m *collector) Complete() SearchMetric {
	m.totalMaxDepth += m.maxDepth
	return SearchMetric{
		Nodes:          m.nodes,
		TotalNodes:     m.totalNodes,
		MaxDepth:       m.maxDepth,
		TotalMaxDepth:  m.totalMaxDepth,
		CompletedDepth: m.completedDepth,
		Value:          m.value,
		Duration:       time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                         {}
func (m *dummyCollector) AddNodes(n int)                 {}
func (m *dummyCollector) ReachDepth(depth int)           {}
func (m *dummyCollector) CompleteDepth(depth, value int) {}
func (m *dummyCollector) Complete() SearchMetric         { return SearchMetric{} }
