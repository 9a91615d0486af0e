package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-trip-keeper/internal/service"
	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var budgetCurrencies = []models.Currency{models.CurrencyAED, models.CurrencyOMR, models.CurrencyHKD}

// budgetModel is the expense ledger tab.
type budgetModel struct {
	ctx      context.Context
	services *service.ClientServices

	entries []models.BudgetEntry
	total   float64
	idx     int

	loadedOnce  bool
	loading     bool
	status      string
	errMsg      string
	showConfirm bool

	adding      bool
	amountInput textinput.Model
	descInput   textinput.Model
	currencyIdx int
	categoryIdx int
	focus       int
	submitting  bool
}

func newBudgetModel(ctx context.Context, services *service.ClientServices) budgetModel {
	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.Width = 12

	desc := textinput.New()
	desc.Width = 40

	return budgetModel{
		ctx:         ctx,
		services:    services,
		amountInput: amount,
		descInput:   desc,
	}
}

func (m budgetModel) capturing() bool {
	return m.adding || m.showConfirm
}

// ---- Commands ----

func (m budgetModel) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.services.BudgetService.List(m.ctx, "")
		if err != nil {
			return budgetLoadedMsg{err: err}
		}
		total, err := m.services.BudgetService.TotalBase(m.ctx)
		return budgetLoadedMsg{entries: entries, total: total, err: err}
	}
}

func (m budgetModel) cmdSave(entry models.BudgetEntry) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.BudgetService.Add(m.ctx, entry)
		return budgetSavedMsg{err: err}
	}
}

func (m budgetModel) cmdDelete(id string) tea.Cmd {
	return func() tea.Msg {
		return budgetDeletedMsg{err: m.services.BudgetService.Delete(m.ctx, id)}
	}
}

// ---- Update ----

func (m budgetModel) Update(msg tea.Msg) (budgetModel, tea.Cmd) {
	switch msg := msg.(type) {
	case budgetLoadedMsg:
		m.loadedOnce = true
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.entries = msg.entries
		m.total = msg.total
		if m.idx >= len(m.entries) {
			m.idx = len(m.entries) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case budgetSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.adding = false
		m.resetForm()
		m.status = "expense added"
		return m, m.cmdLoad()

	case budgetDeletedMsg:
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

func (m budgetModel) handleKey(msg tea.KeyMsg) (budgetModel, tea.Cmd) {
	if m.adding {
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
		m.adding = true
		m.focus = 0
		m.amountInput.Focus()
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

// Form focus order: amount, currency, category, description.
func (m budgetModel) updateForm(msg tea.KeyMsg) (budgetModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.resetForm()
		return m, nil
	case "enter":
		if m.submitting {
			return m, nil
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(m.amountInput.Value()), 64)
		if err != nil {
			m.errMsg = "amount must be a number"
			return m, nil
		}
		m.submitting = true
		return m, m.cmdSave(models.BudgetEntry{
			Amount:      amount,
			Currency:    budgetCurrencies[m.currencyIdx],
			Category:    models.BudgetCategories[m.categoryIdx],
			Description: m.descInput.Value(),
		})
	case "tab":
		m.focusField((m.focus + 1) % 4)
		return m, nil
	case "shift+tab":
		m.focusField((m.focus + 3) % 4)
		return m, nil
	case "left", "right":
		switch m.focus {
		case 1:
			m.currencyIdx = cycleIndex(m.currencyIdx, len(budgetCurrencies), msg.String() == "right")
			return m, nil
		case 2:
			m.categoryIdx = cycleIndex(m.categoryIdx, len(models.BudgetCategories), msg.String() == "right")
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case 0:
		m.amountInput, cmd = m.amountInput.Update(msg)
	case 3:
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

func (m *budgetModel) focusField(focus int) {
	m.focus = focus
	m.amountInput.Blur()
	m.descInput.Blur()
	switch focus {
	case 0:
		m.amountInput.Focus()
	case 3:
		m.descInput.Focus()
	}
}

func (m *budgetModel) resetForm() {
	m.amountInput.SetValue("")
	m.descInput.SetValue("")
	m.amountInput.Blur()
	m.descInput.Blur()
	m.currencyIdx = 0
	m.categoryIdx = 0
	m.focus = 0
	m.submitting = false
}

func cycleIndex(idx, length int, forward bool) int {
	if forward {
		return (idx + 1) % length
	}
	return (idx + length - 1) % length
}

// ---- View ----

func (m budgetModel) View() string {
	if m.adding {
		return m.formView()
	}
	if m.loading && !m.loadedOnce {
		return "Loading expenses..."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total: %.2f %s\n\n", m.total, models.BaseCurrency)

	if len(m.entries) == 0 {
		b.WriteString("No expenses yet.\n")
	}
	for i, entry := range m.entries {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%8.2f %s  %-10s %s\n",
			cursor, entry.Amount, entry.Currency, entry.Category, fitText(entry.Description, 30))
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	} else if m.status != "" {
		b.WriteString("\n" + helpStyle.Render(m.status))
	}

	out := renderPage("BUDGET", b.String(), "↑/↓: select  n: new  d: delete  r: reload")
	if m.showConfirm && m.idx < len(m.entries) {
		out += "\n" + confirmModel{message: m.entries[m.idx].Description}.View()
	}
	return out
}

func (m budgetModel) formView() string {
	out := "New expense\n\n"
	out += "Amount:      [" + m.amountInput.View() + "]\n"
	out += "Currency:    < " + string(budgetCurrencies[m.currencyIdx]) + " >\n"
	out += "Category:    < " + models.BudgetCategories[m.categoryIdx] + " >\n"
	out += "Description: [" + m.descInput.View() + "]\n\n"
	out += "esc cancel  tab next field  ←/→ cycle choice  enter save"
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg)
	}
	return out
}
