package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/countdown/internal/cli/formatter"
	"github.com/alexanderramin/countdown/internal/countdown"
	"github.com/alexanderramin/countdown/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// frameMsg carries a sampled frame back into the model. scheduleNext is set
// for samples taken by the refresh loop, so that key-driven samples do not
// start a second loop.
type frameMsg struct {
	frame        service.Frame
	err          error
	scheduleNext bool
	note         string
}

type tickMsg time.Time

// targetDebounce is how long +/- presses are collected before the target
// actually changes, so a burst of presses abandons a single cycle.
const targetDebounce = 400 * time.Millisecond

// applyTargetMsg fires after targetDebounce. Only the message matching the
// latest press applies the pending target.
type applyTargetMsg struct {
	seq int
}

// timerModel is the full-screen countdown view.
type timerModel struct {
	ctx       context.Context
	timer     service.TimerService
	refresh   time.Duration
	maxCycles int
	keys      timerKeyMap
	help      help.Model

	frame      service.Frame
	started    bool
	completed  int
	lastDone   *service.Frame
	width      int
	quitting   bool
	err        error
	statusLine string

	pending    *countdown.TargetMinute
	pendingSeq int
}

func newTimerModel(ctx context.Context, timer service.TimerService, refresh time.Duration, maxCycles int) timerModel {
	return timerModel{
		ctx:       ctx,
		timer:     timer,
		refresh:   refresh,
		maxCycles: maxCycles,
		keys:      defaultTimerKeys(),
		help:      newHelpModel(),
	}
}

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	return h
}

func (m timerModel) Init() tea.Cmd {
	return m.startCmd()
}

func (m timerModel) startCmd() tea.Cmd {
	ctx, timer := m.ctx, m.timer
	return func() tea.Msg {
		frame, err := timer.Start(ctx)
		if err != nil {
			return frameMsg{err: err}
		}
		return frameMsg{frame: frame, scheduleNext: true, note: resumeNote(timer, frame)}
	}
}

func (m timerModel) sampleCmd(scheduleNext bool) tea.Cmd {
	ctx, timer := m.ctx, m.timer
	return func() tea.Msg {
		frame, err := timer.Tick(ctx)
		return frameMsg{frame: frame, err: err, scheduleNext: scheduleNext}
	}
}

func (m timerModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// queueShift moves the pending target by delta minutes and restarts the
// debounce timer.
func (m timerModel) queueShift(delta int) (tea.Model, tea.Cmd) {
	if !m.started {
		return m, nil
	}
	base := m.frame.Target
	if m.pending != nil {
		base = *m.pending
	}
	next := base.Shift(delta)
	m.pending = &next
	m.pendingSeq++
	seq := m.pendingSeq
	return m, tea.Tick(targetDebounce, func(time.Time) tea.Msg { return applyTargetMsg{seq: seq} })
}

// setTargetCmd switches the timer to target and samples the new cycle.
func (m timerModel) setTargetCmd(target countdown.TargetMinute) tea.Cmd {
	ctx, timer := m.ctx, m.timer
	return func() tea.Msg {
		if err := timer.SetTarget(ctx, target); err != nil {
			return frameMsg{err: err}
		}
		frame, err := timer.Tick(ctx)
		return frameMsg{frame: frame, err: err}
	}
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Later):
			return m.queueShift(1)
		case key.Matches(msg, m.keys.Earlier):
			return m.queueShift(-1)
		}
		return m, nil

	case applyTargetMsg:
		if m.quitting || m.pending == nil || msg.seq != m.pendingSeq {
			return m, nil
		}
		target := *m.pending
		m.pending = nil
		return m, m.setTargetCmd(target)

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, m.sampleCmd(true)

	case frameMsg:
		if msg.err != nil {
			if interrupted(m.ctx, msg.err) {
				m.quitting = true
				return m, tea.Quit
			}
			m.err = fmt.Errorf("updating countdown: %w", msg.err)
			m.quitting = true
			return m, tea.Quit
		}
		m.frame = msg.frame
		m.started = true
		if msg.note != "" {
			m.statusLine = msg.note
		}
		if msg.frame.Completed() {
			done := msg.frame
			m.lastDone = &done
			m.statusLine = ""
			m.completed++
			if m.maxCycles > 0 && m.completed >= m.maxCycles {
				m.quitting = true
				return m, tea.Quit
			}
		}
		if msg.scheduleNext {
			return m, m.scheduleTick()
		}
		return m, nil
	}

	return m, nil
}

func (m timerModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.started {
		return formatter.Dim("Starting countdown…")
	}

	var b strings.Builder
	b.WriteString(formatter.FormatFrame(m.frame))
	if m.lastDone != nil {
		b.WriteString("\n")
		b.WriteString(formatter.FormatCompletion(*m.lastDone))
		b.WriteString("\n")
	}
	if m.pending != nil {
		b.WriteString("\n")
		b.WriteString(formatter.Dim("Switching to " + m.pending.String() + "…"))
		b.WriteString("\n")
	}
	if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(formatter.Dim(m.statusLine))
		b.WriteString("\n")
	}

	return formatter.RenderBox("countdown", b.String()) + "\n" + m.renderHints()
}

func (m timerModel) renderHints() string {
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + m.help.View(m.keys)
}
