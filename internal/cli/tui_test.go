package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/domsearch/pkg/domset"
	"github.com/matzehuels/domsearch/pkg/graph"
	"github.com/matzehuels/domsearch/pkg/pipeline"
)

func newTestModel(workers int, stop func()) SolveModel {
	opts := pipeline.Options{Workers: workers, Timeout: 5 * time.Second}
	return NewSolveModel(graph.Cycle(6), opts, stop)
}

func TestSolveModelProgress(t *testing.T) {
	m := newTestModel(2, func() {})

	updated, _ := m.Update(progressMsg{worker: 1, p: domset.Progress{Round: 9, Size: 4, Best: 3, Divisor: 125, Rollbacks: 2}})
	m = updated.(SolveModel)
	updated, _ = m.Update(progressMsg{worker: 0, p: domset.Progress{Round: 4, Size: 5, Best: 4, Divisor: 100}})
	m = updated.(SolveModel)

	if m.Best != 3 {
		t.Errorf("Best = %d, want 3", m.Best)
	}
	w := m.Workers[1]
	if !w.seen || w.best != 3 || w.size != 4 || w.rounds != 10 || w.divisor != 125 || w.rollbacks != 2 {
		t.Errorf("worker 1 state = %+v", w)
	}

	view := m.View()
	for _, want := range []string{"Dominating Set Search", "6 vertices, 6 edges", "Rollbacks", "125"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestSolveModelIgnoresUnknownWorker(t *testing.T) {
	m := newTestModel(1, func() {})
	updated, _ := m.Update(progressMsg{worker: 3, p: domset.Progress{Best: 1}})
	if got := updated.(SolveModel).Best; got != -1 {
		t.Errorf("Best = %d, want -1", got)
	}
}

func TestSolveModelStopsOnce(t *testing.T) {
	calls := 0
	m := newTestModel(1, func() { calls++ })

	for _, key := range []string{"q", "q", "esc"} {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		m = updated.(SolveModel)
	}
	if calls != 1 {
		t.Errorf("stop called %d times, want 1", calls)
	}
	if !m.Stopping {
		t.Error("model should be stopping")
	}
	if !strings.Contains(m.View(), "stopping") {
		t.Error("View() should show the stopping state")
	}
}

func TestSolveModelDoneQuits(t *testing.T) {
	m := newTestModel(1, func() {})
	updated, cmd := m.Update(solveDoneMsg{})
	if !updated.(SolveModel).Done {
		t.Error("model should be done")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestSolveModelTickStopsWhenDone(t *testing.T) {
	m := newTestModel(1, func() {})
	if _, cmd := m.Update(tickMsg(time.Now())); cmd == nil {
		t.Error("running model should schedule another tick")
	}

	m.Done = true
	if _, cmd := m.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("finished model should not tick")
	}
}
