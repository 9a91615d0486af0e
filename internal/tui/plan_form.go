package tui

import (
	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// planFormModel edits one itinerary item. Field order: time, title,
// location, description.
type planFormModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	date       string
	itemID     string
	submitting bool
}

func newPlanFormModel(date string, item *models.ItineraryItem) planFormModel {
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].Placeholder = "HH:MM"
	inputs[0].Focus()

	m := planFormModel{inputs: inputs, date: date}
	if item == nil {
		return m
	}

	m.editing = true
	m.itemID = item.ID
	m.inputs[0].SetValue(item.Time)
	m.inputs[1].SetValue(item.Title)
	m.inputs[2].SetValue(item.Location)
	m.inputs[3].SetValue(item.Description)
	return m
}

func (m planFormModel) toItem() models.ItineraryItem {
	return models.ItineraryItem{
		Date:        m.date,
		Time:        m.inputs[0].Value(),
		Title:       m.inputs[1].Value(),
		Location:    m.inputs[2].Value(),
		Description: m.inputs[3].Value(),
		Category:    models.CategoryActivity,
	}
}

func (m planFormModel) toPatch() models.ItineraryItemPatch {
	timeValue := m.inputs[0].Value()
	title := m.inputs[1].Value()
	location := m.inputs[2].Value()
	description := m.inputs[3].Value()
	return models.ItineraryItemPatch{
		Time:        &timeValue,
		Title:       &title,
		Location:    &location,
		Description: &description,
	}
}

func (m *planFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *planFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + len(m.inputs) - 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *planFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m planFormModel) View() string {
	title := "New activity on " + m.date
	if m.editing {
		title = "Editing: " + m.inputs[1].Value()
	}

	out := title + "\n\n"
	out += "Time:        [" + m.inputs[0].View() + "]\n"
	out += "Title:       [" + m.inputs[1].View() + "]\n"
	out += "Location:    [" + m.inputs[2].View() + "]\n"
	out += "Description: [" + m.inputs[3].View() + "]\n\n"
	out += "esc cancel  tab next field  enter save"
	return out
}
