package util

import (
	"fmt"
	"strings"
	"time"
)

type TimerState struct {
	name  string
	last  time.Duration
	total time.Duration
	count int64
	min   time.Duration
	max   time.Duration
}

func (t *TimerState) Average() time.Duration {
	if t.count == 0 {
		return 0
	}
	return t.total / time.Duration(t.count)
}

func (t *TimerState) Count() int64 {
	return t.count
}

func (t *TimerState) String() string {
	return fmt.Sprintf("%s x%d last: %s, avg: %s, min: %s, max: %s", t.name, t.count, t.last, t.Average(), t.min, t.max)
}

// Timer collects execution time statistics for named sections.
type Timer struct {
	states     map[string]*TimerState
	timerNames []string
}

func NewTimer() *Timer {
	return &Timer{
		states: make(map[string]*TimerState),
	}
}

func (t *Timer) GetState(name string) *TimerState {
	return t.states[name]
}

func (t *Timer) String() string {
	lines := make([]string, 0, len(t.timerNames))
	for _, name := range t.timerNames {
		lines = append(lines, t.states[name].String())
	}
	return strings.Join(lines, "\n")
}

// Start begins measuring a section; calling the returned function ends it.
func (t *Timer) Start(name string) func() time.Duration {
	state, ok := t.states[name]
	if !ok {
		t.timerNames = append(t.timerNames, name)
		state = &TimerState{name: name}
		t.states[name] = state
	}
	start := time.Now()
	return func() time.Duration {
		elapsed := time.Since(start)
		state.last = elapsed
		state.total += elapsed
		if state.count == 0 || elapsed < state.min {
			state.min = elapsed
		}
		if elapsed > state.max {
			state.max = elapsed
		}
		state.count++
		return elapsed
	}
}
