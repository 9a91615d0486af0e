package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trip-keeper/internal/service"
	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// journalModel is the travel diary tab.
type journalModel struct {
	ctx      context.Context
	services *service.ClientServices

	entries []models.JournalEntry
	idx     int

	loadedOnce  bool
	loading     bool
	status      string
	errMsg      string
	showConfirm bool

	editing    bool
	titleInput textinput.Model
	bodyArea   textarea.Model
	focus      int
	submitting bool
}

func newJournalModel(ctx context.Context, services *service.ClientServices) journalModel {
	title := textinput.New()
	title.Width = 50

	body := textarea.New()
	body.SetWidth(60)
	body.SetHeight(6)

	return journalModel{
		ctx:        ctx,
		services:   services,
		titleInput: title,
		bodyArea:   body,
	}
}

func (m journalModel) capturing() bool {
	return m.editing || m.showConfirm
}

// ---- Commands ----

func (m journalModel) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.services.JournalService.List(m.ctx)
		return journalLoadedMsg{entries: entries, err: err}
	}
}

func (m journalModel) cmdSave() tea.Cmd {
	title := m.titleInput.Value()
	body := m.bodyArea.Value()

	return func() tea.Msg {
		_, err := m.services.JournalService.Add(m.ctx, title, body, nil)
		return journalSavedMsg{err: err}
	}
}

func (m journalModel) cmdDelete(id string) tea.Cmd {
	return func() tea.Msg {
		return journalDeletedMsg{err: m.services.JournalService.Delete(m.ctx, id)}
	}
}

// ---- Update ----

func (m journalModel) Update(msg tea.Msg) (journalModel, tea.Cmd) {
	switch msg := msg.(type) {
	case journalLoadedMsg:
		m.loadedOnce = true
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.entries = msg.entries
		if m.idx >= len(m.entries) {
			m.idx = len(m.entries) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case journalSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.editing = false
		m.resetForm()
		m.status = "saved"
		return m, m.cmdLoad()

	case journalDeletedMsg:
		m.showConfirm = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "deleted"
		return m, m.cmdLoad()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m journalModel) handleKey(msg tea.KeyMsg) (journalModel, tea.Cmd) {
	if m.editing {
		return m.updateForm(msg)
	}

	if m.showConfirm {
		switch msg.String() {
		case "y":
			if m.idx < len(m.entries) {
				return m, m.cmdDelete(m.entries[m.idx].ID)
			}
			m.showConfirm = false
		case "n", "esc":
			m.showConfirm = false
		}
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case "n":
		m.editing = true
		m.focus = 0
		m.titleInput.Focus()
	case "d":
		if len(m.entries) > 0 {
			m.showConfirm = true
		}
	case "r":
		m.loading = true
		return m, m.cmdLoad()
	}
	return m, nil
}

func (m journalModel) updateForm(msg tea.KeyMsg) (journalModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.resetForm()
		return m, nil
	case "ctrl+s":
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		return m, m.cmdSave()
	case "tab":
		m.toggleFocus()
		return m, nil
	case "shift+tab":
		m.toggleFocus()
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.bodyArea, cmd = m.bodyArea.Update(msg)
	}
	return m, cmd
}

func (m *journalModel) toggleFocus() {
	if m.focus == 0 {
		m.focus = 1
		m.titleInput.Blur()
		m.bodyArea.Focus()
	} else {
		m.focus = 0
		m.bodyArea.Blur()
		m.titleInput.Focus()
	}
}

func (m *journalModel) resetForm() {
	m.titleInput.SetValue("")
	m.bodyArea.SetValue("")
	m.titleInput.Blur()
	m.bodyArea.Blur()
	m.focus = 0
	m.submitting = false
}

// ---- View ----

func (m journalModel) View() string {
	if m.editing {
		return m.formView()
	}
	if m.loading && !m.loadedOnce {
		return "Loading journal..."
	}

	var b strings.Builder
	if len(m.entries) == 0 {
		b.WriteString("No journal entries yet.\n")
	}
	for i, entry := range m.entries {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		photos := ""
		if len(entry.Images) > 0 {
			photos = fmt.Sprintf("  (%d photos)", len(entry.Images))
		}
		fmt.Fprintf(&b, "%s%s  %s%s\n",
			cursor, entry.CreatedAt.Format("2006-01-02 15:04"), fitText(valueOrDash(entry.Title), 40), photos)
	}

	if m.idx < len(m.entries) {
		body := strings.TrimSpace(m.entries[m.idx].Body)
		if body != "" {
			b.WriteString("\n" + fitText(body, 200) + "\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	} else if m.status != "" {
		b.WriteString("\n" + helpStyle.Render(m.status))
	}

	out := renderPage("JOURNAL", b.String(), "↑/↓: select  n: new  d: delete")
	if m.showConfirm && m.idx < len(m.entries) {
		out += "\n" + confirmModel{message: valueOrDash(m.entries[m.idx].Title)}.View()
	}
	return out
}

func (m journalModel) formView() string {
	out := "New journal entry\n\n"
	out += "Title: [" + m.titleInput.View() + "]\n\n"
	out += m.bodyArea.View() + "\n\n"
	out += "esc cancel  tab switch field  ctrl+s save"
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg)
	}
	return out
}
