// Package viewer shows conversion output in a scrollable terminal view,
// with keys to save it to a file, copy it, or generate it again.
package viewer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wbrown/img2ascii"
)

// DefaultSavePath is offered when the user first saves.
const DefaultSavePath = "ascii.txt"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// header and footer lines around the viewport
const chromeHeight = 3

type mode int

const (
	modeViewing mode = iota
	modeSaving
)

type generateMsg struct{}

type jobDoneMsg struct {
	job  *img2ascii.Job
	grid *img2ascii.Grid
	err  error
}

// Model is the bubbletea model of the viewer.
type Model struct {
	converter *img2ascii.Converter
	params    img2ascii.Params
	clipboard Clipboard
	save      func(path, text string) error
	keys      keyMap

	viewport viewport.Model
	input    textinput.Model
	mode     mode

	job       *img2ascii.Job
	text      string
	generated bool
	savePath  string
	status    string
	err       error
}

// Option configures a Model.
type Option func(*Model)

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(m *Model) {
		m.clipboard = c
	}
}

// WithSavePath sets the path offered when saving.
func WithSavePath(path string) Option {
	return func(m *Model) {
		m.savePath = path
	}
}

// New returns a viewer that converts with conv using p once started.
func New(conv *img2ascii.Converter, p img2ascii.Params, opts ...Option) Model {
	input := textinput.New()
	input.Prompt = "Save to: "
	input.CharLimit = 0

	m := Model{
		converter: conv,
		params:    p,
		clipboard: &SystemClipboard{},
		save:      img2ascii.Save,
		keys:      defaultKeyMap(),
		viewport:  viewport.New(80, 20),
		input:     input,
		savePath:  DefaultSavePath,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Run shows the viewer until the user quits and returns the final model.
func Run(m Model) (Model, error) {
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return m, err
	}
	return final.(Model), nil
}

// Text returns the output currently shown.
func (m Model) Text() string {
	return m.text
}

// Err returns the error of the last conversion, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return generateMsg{} }
}

func waitForJob(job *img2ascii.Job) tea.Cmd {
	return func() tea.Msg {
		grid, err := job.Wait()
		return jobDoneMsg{job: job, grid: grid, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 10)
		return m, nil

	case generateMsg:
		if m.job != nil {
			m.job.Cancel()
		}
		m.job = m.converter.Start(context.Background(), m.params, nil)
		m.err = nil
		m.status = "Generating…"
		return m, waitForJob(m.job)

	case jobDoneMsg:
		if msg.job != m.job {
			// Result of a conversion that was replaced.
			return m, nil
		}
		m.job = nil
		if msg.err != nil {
			m.err = msg.err
			m.status = msg.err.Error()
			return m, nil
		}
		m.text = msg.grid.String()
		m.generated = true
		m.viewport.SetContent(m.text)
		m.viewport.GotoTop()
		m.status = fmt.Sprintf("%d×%d characters, %d glyph renders in %s",
			msg.grid.Cols(), msg.grid.Len(), msg.grid.Stats.Renders, msg.grid.Stats.Elapsed.Round(time.Millisecond))
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeSaving {
			return m.updateSaving(msg)
		}
		return m.updateViewing(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.job != nil {
			m.job.Cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Regenerate):
		return m, func() tea.Msg { return generateMsg{} }

	case key.Matches(msg, m.keys.Save):
		if !m.generated {
			m.status = "Nothing to save yet"
			return m, nil
		}
		m.mode = modeSaving
		m.input.SetValue(m.savePath)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Copy):
		if !m.generated {
			m.status = "Nothing to copy yet"
			return m, nil
		}
		if err := m.clipboard.WriteText(m.text); err != nil {
			m.status = "Copy failed: " + err.Error()
		} else {
			m.status = "Copied to clipboard"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateSaving(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeViewing
		m.input.Blur()
		m.status = "Save cancelled"
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.mode = modeViewing
		m.input.Blur()
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			m.status = "Save cancelled: no path"
			return m, nil
		}
		if err := m.save(path, m.text); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.savePath = path
		m.status = "Saved to " + path
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	title := "img2ascii"
	if m.params.ImagePath != "" {
		title += "  " + filepath.Base(m.params.ImagePath)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteByte('\n')

	b.WriteString(m.viewport.View())
	b.WriteByte('\n')

	switch {
	case m.mode == modeSaving:
		b.WriteString(m.input.View())
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.status))
	default:
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteByte('\n')

	if m.mode == modeSaving {
		b.WriteString(helpStyle.Render(helpLine(m.keys.Confirm, m.keys.Cancel)))
	} else {
		b.WriteString(helpStyle.Render(helpLine(m.keys.Save, m.keys.Copy, m.keys.Regenerate, m.keys.Quit)))
	}

	return b.String()
}
