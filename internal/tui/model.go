package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"learnrag/internal/domain"
)

// Pipeline is the TUI-facing subset of the learning service.
type Pipeline interface {
	Answer(ctx context.Context, query string) (string, error)
	Roadmap(ctx context.Context, subject string) ([]domain.Topic, error)
	SubtopicItems(ctx context.Context, subtopic string) ([]domain.Item, error)
}

// Model is the Bubble Tea model for the chat interface. Plain input is a
// question over the ingested document; /roadmap and /items generate
// structured output.
type Model struct {
	service    Pipeline
	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	summary    string
	status     string
	ready      bool
}

// New creates a new TUI model instance.
func New(service Pipeline, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question, or /roadmap <subject>, /items <subtopic>"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:  service,
		input:    ti,
		viewport: vp,
		summary:  summary,
		status:   "Ready.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header + summary, status, input box, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-th)
		m.viewport.SetContent(m.renderTranscript())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			if line != "" {
				m.runCommand(line)
				m.input.SetValue("")
				m.viewport.SetContent(m.renderTranscript())
				m.viewport.GotoBottom()
				return m, nil
			}
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) runCommand(line string) {
	ctx := context.Background()
	switch {
	case strings.HasPrefix(line, "/roadmap "):
		subject := strings.TrimSpace(strings.TrimPrefix(line, "/roadmap "))
		m.append(youStyle.Render("you: ") + line)
		topics, err := m.service.Roadmap(ctx, subject)
		if err != nil {
			m.status = "Error: " + err.Error()
			return
		}
		m.append(renderTopics(topics))
		m.status = fmt.Sprintf("Roadmap for %q: %d topics", subject, len(topics))
	case strings.HasPrefix(line, "/items "):
		subtopic := strings.TrimSpace(strings.TrimPrefix(line, "/items "))
		m.append(youStyle.Render("you: ") + line)
		items, err := m.service.SubtopicItems(ctx, subtopic)
		if err != nil {
			m.status = "Error: " + err.Error()
			return
		}
		m.append(renderItems(items))
		m.status = fmt.Sprintf("Items for %q: %d items", subtopic, len(items))
	default:
		m.append(youStyle.Render("you: ") + line)
		answer, err := m.service.Answer(ctx, line)
		if err != nil {
			m.status = "Error: " + err.Error()
			return
		}
		m.append(botStyle.Render("tutor: ") + answer)
		m.status = fmt.Sprintf("Answered %q", line)
	}
}

func (m *Model) append(entry string) {
	m.transcript = append(m.transcript, entry)
}

// View renders the TUI layout and current transcript.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("learnrag")
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.summary)
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	return header + "\n" + summary + "\n" + transcript + "\n" + input + "\n" + status
}

func (m Model) renderTranscript() string {
	if len(m.transcript) == 0 {
		return "No messages yet."
	}
	return strings.Join(m.transcript, "\n\n")
}

func renderTopics(topics []domain.Topic) string {
	var b strings.Builder
	for i, t := range topics {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(topicStyle.Render(t.Name) + "\n")
		for _, sub := range t.Subtopics {
			b.WriteString("  - " + sub.Name + ": " + sub.Content + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderItems(items []domain.Item) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(itemTagStyle.Render("["+it.Type+"] ") + it.Content)
	}
	return b.String()
}

var (
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	youStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	topicStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	itemTagStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
