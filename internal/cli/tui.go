package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/domsearch/pkg/domset"
	"github.com/matzehuels/domsearch/pkg/graph"
	"github.com/matzehuels/domsearch/pkg/pipeline"
)

// tuiHeartbeatEvery is the heartbeat interval, in rounds, while the live
// view is open.
const tuiHeartbeatEvery = 250

// tuiRefresh is how often the elapsed time is redrawn.
const tuiRefresh = 200 * time.Millisecond

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// SolveModel - Live search progress
// =============================================================================

type progressMsg struct {
	worker int
	p      domset.Progress
}

type solveDoneMsg struct{}

type tickMsg time.Time

// workerState is the last progress seen from one worker.
type workerState struct {
	seen      bool
	best      int
	size      int
	rounds    int64
	divisor   int
	rollbacks int64
}

// SolveModel is the bubbletea model for the live solve view.
type SolveModel struct {
	Vertices int
	Edges    int
	Timeout  time.Duration
	Workers  []workerState
	Best     int
	Stopping bool
	Done     bool

	start   time.Time
	elapsed time.Duration
	stop    func()
}

// NewSolveModel creates a model for workers solvers; stop is called once
// when the user asks to stop.
func NewSolveModel(g *graph.Graph, opts pipeline.Options, stop func()) SolveModel {
	return SolveModel{
		Vertices: g.N(),
		Edges:    g.M(),
		Timeout:  opts.Timeout,
		Workers:  make([]workerState, opts.Workers),
		Best:     -1,
		start:    time.Now(),
		stop:     stop,
	}
}

func tick() tea.Cmd {
	return tea.Tick(tuiRefresh, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m SolveModel) Init() tea.Cmd {
	return tick()
}

func (m SolveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if !m.Stopping {
				m.Stopping = true
				m.stop()
			}
		}
	case progressMsg:
		if msg.worker < 0 || msg.worker >= len(m.Workers) {
			return m, nil
		}
		w := &m.Workers[msg.worker]
		w.seen = true
		w.best = msg.p.Best
		w.size = msg.p.Size
		w.rounds = msg.p.Round + 1
		w.divisor = msg.p.Divisor
		w.rollbacks = msg.p.Rollbacks
		if m.Best < 0 || msg.p.Best < m.Best {
			m.Best = msg.p.Best
		}
	case tickMsg:
		m.elapsed = time.Since(m.start)
		if m.Done {
			return m, nil
		}
		return m, tick()
	case solveDoneMsg:
		m.Done = true
		m.elapsed = time.Since(m.start)
		return m, tea.Quit
	}
	return m, nil
}

func (m SolveModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Dominating Set Search"))
	b.WriteString("\n")
	switch {
	case m.Done:
		b.WriteString(listDimStyle.Render("done"))
	case m.Stopping:
		b.WriteString(StyleWarning.Render("stopping, restoring best set..."))
	default:
		b.WriteString(listDimStyle.Render("q stop and print the best set"))
	}
	b.WriteString("\n\n")

	best := "-"
	if m.Best >= 0 {
		best = strconv.Itoa(m.Best)
	}
	elapsed := m.elapsed.Truncate(100 * time.Millisecond).String()
	if m.Timeout > 0 {
		elapsed += " / " + m.Timeout.String()
	}
	b.WriteString(fmt.Sprintf("  %s %s   %s %s\n",
		listDimStyle.Render("graph"), StyleValue.Render(fmt.Sprintf("%d vertices, %d edges", m.Vertices, m.Edges)),
		listDimStyle.Render("elapsed"), StyleValue.Render(elapsed)))
	b.WriteString(fmt.Sprintf("  %s %s\n\n", listDimStyle.Render("best"), StyleNumber.Bold(true).Render(best)))

	rows := make([][]string, 0, len(m.Workers))
	for i, w := range m.Workers {
		if !w.seen {
			rows = append(rows, []string{strconv.Itoa(i), "-", "-", "-", "-", "-"})
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.Itoa(w.best),
			strconv.Itoa(w.size),
			strconv.FormatInt(w.rounds, 10),
			strconv.Itoa(w.divisor),
			strconv.FormatInt(w.rollbacks, 10),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Worker", "Best", "Current", "Rounds", "Divisor", "Rollbacks").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < len(m.Workers) && m.Workers[row].seen && m.Workers[row].best == m.Best {
				return lipgloss.NewStyle().Foreground(colorGreen)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}

// =============================================================================
// Runner
// =============================================================================

// runSolveTUI runs the solve behind the live view on stderr. Pressing q
// cancels the search; the best set is still returned.
func runSolveTUI(ctx context.Context, runner *pipeline.Runner, g *graph.Graph, opts pipeline.Options) (*pipeline.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewSolveModel(g, opts, cancel), tea.WithOutput(os.Stderr))

	opts.Progress = func(worker int, pr domset.Progress) {
		p.Send(progressMsg{worker: worker, p: pr})
	}
	if opts.Solver.ProgressEvery == 0 {
		opts.Solver.ProgressEvery = tuiHeartbeatEvery
	}

	// Logging would tear the view.
	quiet := *runner
	quiet.Logger = log.NewWithOptions(io.Discard, log.Options{})

	type outcome struct {
		res *pipeline.Result
		err error
	}
	out := make(chan outcome, 1)
	go func() {
		res, err := quiet.Solve(ctx, g, opts)
		out <- outcome{res, err}
		p.Send(solveDoneMsg{})
	}()

	_, err := p.Run()
	// The view can also exit on a signal before the search has finished.
	cancel()
	o := <-out
	if err != nil {
		return nil, fmt.Errorf("live view: %w", err)
	}
	if o.err == nil {
		runner.Logger.Info("solved", "size", o.res.Solution.Size, "rounds", o.res.Stats.Rounds)
	}
	return o.res, o.err
}
