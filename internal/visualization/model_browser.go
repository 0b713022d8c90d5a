package visualization

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ModelComponent is one file of an earth model directory.
type ModelComponent struct {
	Name      string
	SizeBytes int64
}

// BrowserConfig feeds the interactive model browser.
type BrowserConfig struct {
	ModelName  string
	Components []ModelComponent
	MinDepthKM float64
	MaxDepthKM float64
}

// depthSteps is the number of positions of the depth selector.
const depthSteps = 20

type browserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Deeper  key.Binding
	Shallow key.Binding
	Quit    key.Binding
}

var browserKeys = browserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("up/k", "previous component"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("down/j", "next component"),
	),
	Deeper: key.NewBinding(
		key.WithKeys("right", "+", "l"),
		key.WithHelp("right/+", "deeper"),
	),
	Shallow: key.NewBinding(
		key.WithKeys("left", "-", "h"),
		key.WithHelp("left/-", "shallower"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type browserModel struct {
	config     BrowserConfig
	cursor     int
	depthIndex int
	width      int
	height     int
}

func newBrowserModel(config BrowserConfig) browserModel {
	return browserModel{config: config}
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, browserKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, browserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, browserKeys.Down):
			if m.cursor < len(m.config.Components)-1 {
				m.cursor++
			}
		case key.Matches(msg, browserKeys.Deeper):
			if m.depthIndex < depthSteps {
				m.depthIndex++
			}
		case key.Matches(msg, browserKeys.Shallow):
			if m.depthIndex > 0 {
				m.depthIndex--
			}
		}
	}
	return m, nil
}

// depth returns the selected depth in km.
func (m browserModel) depth() float64 {
	span := m.config.MaxDepthKM - m.config.MinDepthKM
	return m.config.MinDepthKM + span*float64(m.depthIndex)/depthSteps
}

// BrowseModel runs the interactive component and depth browser for one
// model directory.
func BrowseModel(config BrowserConfig) error {
	if len(config.Components) == 0 {
		return fmt.Errorf("model %s has no components", config.ModelName)
	}

	p := tea.NewProgram(
		newBrowserModel(config),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
