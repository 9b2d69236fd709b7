package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu                 sync.RWMutex
	ReportsStarted     int64
	ReportsCompleted   int64
	SectionsGenerated  int64
	ChartsRendered     int64
	APICallsTotal      int64
	APICallsSuccessful int64
	PromptTokens       int64
	CompletionTokens   int64
	LastUpdateTime     time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		LastUpdateTime: time.Now(),
	}
}

func (m *Metrics) IncrementReportsStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReportsStarted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementReportsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReportsCompleted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementSectionsGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SectionsGenerated++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementChartsRendered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChartsRendered++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAPICall(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.APICallsTotal++
	if success {
		m.APICallsSuccessful++
	}
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) AddTokens(prompt, completion int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PromptTokens += int64(prompt)
	m.CompletionTokens += int64(completion)
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) GetSnapshot() Metrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Metrics{
		ReportsStarted:     m.ReportsStarted,
		ReportsCompleted:   m.ReportsCompleted,
		SectionsGenerated:  m.SectionsGenerated,
		ChartsRendered:     m.ChartsRendered,
		APICallsTotal:      m.APICallsTotal,
		APICallsSuccessful: m.APICallsSuccessful,
		PromptTokens:       m.PromptTokens,
		CompletionTokens:   m.CompletionTokens,
		LastUpdateTime:     m.LastUpdateTime,
	}
}
