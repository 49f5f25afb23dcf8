// Package tui renders the interactive humanizer session.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/exedev/humanize/internal/chat"
	"github.com/exedev/humanize/internal/config"
	"github.com/exedev/humanize/internal/llm"
)

type sessionState int

const (
	stateCompose sessionState = iota // article paste, conversation still empty
	stateChat                        // follow-up entry, conversation has history
	stateWaiting                     // model call in flight, input locked
)

// turnDoneMsg signals a completed model turn.
type turnDoneMsg struct{}

// turnFailedMsg carries the error from a rejected or failed turn.
type turnFailedMsg struct {
	err error
}

// Model is the Bubble Tea model for the humanizer session.
type Model struct {
	ctrl *chat.Controller
	cfg  *config.Config

	// UI components
	textarea textarea.Model
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	// State
	state    sessionState
	warning  string
	errText  string
	models   []string
	modelIdx int

	width  int
	height int
	ready  bool
}

// New creates the session model. The config's model is the initially
// selected entry of the provider's fixed model set.
func New(ctrl *chat.Controller, cfg *config.Config) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste your article here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = "Refine or give new instructions..."
	ti.Prompt = "> "
	ti.CharLimit = 4096

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	models := config.Models(cfg.Provider)
	idx := 0
	for i, id := range models {
		if id == cfg.Model {
			idx = i
			break
		}
	}

	return Model{
		ctrl:     ctrl,
		cfg:      cfg,
		textarea: ta,
		input:    ti,
		spinner:  sp,
		state:    stateCompose,
		models:   models,
		modelIdx: idx,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, tea.WindowSize())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.state != stateWaiting {
				m.cycleModel()
			}
			return m, nil
		case "ctrl+s":
			if m.state == stateCompose {
				return m.beginTurn(m.textarea.Value())
			}
		case "enter":
			if m.state == stateChat {
				followUp := m.input.Value()
				if strings.TrimSpace(followUp) == "" {
					return m, nil
				}
				m.input.Reset()
				return m.beginTurn(followUp)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		// The store is only touched between turns; while a call is in
		// flight the previous content stays up.
		if m.state != stateWaiting {
			m.refreshTranscript()
		}
		m.ready = true
		return m, nil

	case turnDoneMsg:
		m.state = stateChat
		m.warning = ""
		m.errText = ""
		m.textarea.Reset()
		m.refreshTranscript()
		m.viewport.GotoBottom()
		return m, m.input.Focus()

	case turnFailedMsg:
		if errors.Is(msg.err, chat.ErrEmptyArticle) {
			m.state = stateCompose
			m.warning = "Please paste your article before running."
			return m, m.textarea.Focus()
		}
		m.errText = msg.err.Error()
		// The store decides which mode we are in: a failed first turn
		// keeps the conversation empty, a failed refinement does not.
		if m.ctrl.Conversation().IsEmpty() {
			m.state = stateCompose
			m.refreshTranscript()
			return m, m.textarea.Focus()
		}
		m.state = stateChat
		m.refreshTranscript()
		m.viewport.GotoBottom()
		return m, m.input.Focus()

	case spinner.TickMsg:
		if m.state == stateWaiting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m.updateComponents(msg)
}

// beginTurn locks the input surfaces and runs the blocking model call in a
// command. Only one turn can be in flight per session.
func (m Model) beginTurn(input string) (tea.Model, tea.Cmd) {
	m.state = stateWaiting
	m.warning = ""
	m.errText = ""
	m.textarea.Blur()
	m.input.Blur()

	ctrl := m.ctrl
	turn := func() tea.Msg {
		if err := ctrl.Turn(context.Background(), input); err != nil {
			return turnFailedMsg{err: err}
		}
		return turnDoneMsg{}
	}
	return m, tea.Batch(m.spinner.Tick, turn)
}

func (m Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch m.state {
	case stateCompose:
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	case stateChat:
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// cycleModel advances the model selector and rebinds the controller's client.
// Already-stored transcript entries keep their content.
func (m *Model) cycleModel() {
	if len(m.models) < 2 {
		return
	}
	m.modelIdx = (m.modelIdx + 1) % len(m.models)
	m.cfg.Model = m.models[m.modelIdx]

	client, err := llm.NewFromConfig(llm.ProviderConfig{
		Provider:    m.cfg.Provider,
		Model:       m.cfg.Model,
		APIKey:      m.cfg.APIKey,
		Temperature: m.cfg.Temperature,
	})
	if err != nil {
		m.errText = err.Error()
		return
	}
	m.ctrl.SetClient(client)
}

// currentModel returns the active model identifier for the header.
func (m Model) currentModel() string {
	if len(m.models) == 0 {
		return m.cfg.Model
	}
	return m.models[m.modelIdx]
}

// Run starts the interactive session and blocks until the user quits.
func Run(ctrl *chat.Controller, cfg *config.Config) error {
	p := tea.NewProgram(New(ctrl, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
