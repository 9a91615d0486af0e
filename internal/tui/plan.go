// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/service"
	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// planModel is the itinerary tab: a day-by-day schedule browser with
// done/upcoming partitioning, weather, highlights and item editing.
type planModel struct {
	ctx      context.Context
	services *service.ClientServices

	days    []models.DailySchedule
	dayIdx  int
	itemIdx int

	loading     bool
	refreshing  bool
	status      string
	errMsg      string
	showConfirm bool
	form        *planFormModel
}

func newPlanModel(ctx context.Context, services *service.ClientServices, days []models.DailySchedule, dayIndex int) planModel {
	if dayIndex < 0 {
		dayIndex = 0
	}
	return planModel{
		ctx:      ctx,
		services: services,
		days:     days,
		dayIdx:   dayIndex,
		loading:  len(days) == 0,
	}
}

func (m planModel) initCmds() []tea.Cmd {
	if m.loading {
		return []tea.Cmd{m.cmdLoad()}
	}
	return nil
}

func (m planModel) capturing() bool {
	return m.form != nil || m.showConfirm
}

func (m planModel) currentDay() (models.DailySchedule, bool) {
	if m.dayIdx < 0 || m.dayIdx >= len(m.days) {
		return models.DailySchedule{}, false
	}
	return m.days[m.dayIdx], true
}

func (m planModel) currentItem() (models.ItineraryItem, bool) {
	day, ok := m.currentDay()
	if !ok || m.itemIdx < 0 || m.itemIdx >= len(day.Items) {
		return models.ItineraryItem{}, false
	}
	return day.Items[m.itemIdx], true
}

// ---- Commands ----

func (m planModel) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		days, err := m.services.ItineraryService.Load(m.ctx)
		return itineraryLoadedMsg{days: days, err: err}
	}
}

func (m planModel) cmdRefreshWeather() tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.WeatherService.RefreshAll(m.ctx)
		return weatherRefreshedMsg{err: err}
	}
}

func (m planModel) cmdSave(form planFormModel) tea.Cmd {
	return func() tea.Msg {
		var (
			days []models.DailySchedule
			err  error
		)
		if form.editing {
			days, err = m.services.ItineraryService.UpdateItem(m.ctx, form.date, form.itemID, form.toPatch())
		} else {
			days, err = m.services.ItineraryService.AddItem(m.ctx, form.toItem())
		}
		return itemSavedMsg{days: days, err: err}
	}
}

func (m planModel) cmdDelete(date, itemID string) tea.Cmd {
	return func() tea.Msg {
		days, err := m.services.ItineraryService.DeleteItem(m.ctx, date, itemID)
		return itemDeletedMsg{days: days, err: err}
	}
}

// ---- Update ----

func (m planModel) Update(msg tea.Msg) (planModel, tea.Cmd) {
	switch msg := msg.(type) {
	case itineraryLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeRelayUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.days = msg.days
		m.clampCursors()
		return m, nil

	case itemSavedMsg:
		if m.form != nil {
			m.form.submitting = false
		}
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.form = nil
		m.days = msg.days
		m.clampCursors()
		m.status = "saved"
		return m, nil

	case itemDeletedMsg:
		m.showConfirm = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.days = msg.days
		m.clampCursors()
		m.status = "deleted"
		return m, nil

	case weatherRefreshedMsg:
		m.refreshing = false
		if msg.err != nil {
			m.errMsg = humanizeRelayUnavailableError(msg.err)
			return m, m.cmdLoad()
		}
		m.status = "weather updated"
		return m, m.cmdLoad()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m planModel) handleKey(msg tea.KeyMsg) (planModel, tea.Cmd) {
	if m.form != nil {
		return m.updateForm(msg)
	}

	if m.showConfirm {
		switch msg.String() {
		case "y":
			item, ok := m.currentItem()
			if !ok {
				m.showConfirm = false
				return m, nil
			}
			return m, m.cmdDelete(item.Date, item.ID)
		case "n", "esc":
			m.showConfirm = false
		}
		return m, nil
	}

	if len(m.days) == 0 && m.errMsg != "" {
		switch msg.String() {
		case "enter", "esc":
			m.errMsg = ""
			m.loading = true
			return m, m.cmdLoad()
		}
		return m, nil
	}

	day, hasDay := m.currentDay()

	switch {
	case key.Matches(msg, keys.left):
		if m.dayIdx > 0 {
			m.dayIdx--
			m.itemIdx = 0
		}
	case key.Matches(msg, keys.right):
		if m.dayIdx < len(m.days)-1 {
			m.dayIdx++
			m.itemIdx = 0
		}
	case key.Matches(msg, keys.up):
		if m.itemIdx > 0 {
			m.itemIdx--
		}
	case key.Matches(msg, keys.down):
		if hasDay && m.itemIdx < len(day.Items)-1 {
			m.itemIdx++
		}
	case key.Matches(msg, keys.newItem):
		if hasDay {
			form := newPlanFormModel(day.Date, nil)
			m.form = &form
		}
	case key.Matches(msg, keys.edit):
		if item, ok := m.currentItem(); ok {
			form := newPlanFormModel(item.Date, &item)
			m.form = &form
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.currentItem(); ok {
			m.showConfirm = true
		}
	case key.Matches(msg, keys.refresh):
		if !m.refreshing {
			m.refreshing = true
			m.status = ""
			return m, m.cmdRefreshWeather()
		}
	}
	return m, nil
}

func (m planModel) updateForm(msg tea.KeyMsg) (planModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		return m, nil
	case "enter":
		if m.form.submitting {
			return m, nil
		}
		m.form.submitting = true
		return m, m.cmdSave(*m.form)
	case "tab":
		m.form.focusNext()
		return m, nil
	case "shift+tab":
		m.form.focusPrev()
		return m, nil
	}

	cmd := m.form.updateInputs(msg)
	return m, cmd
}

func (m *planModel) clampCursors() {
	if m.dayIdx >= len(m.days) {
		m.dayIdx = len(m.days) - 1
	}
	if m.dayIdx < 0 {
		m.dayIdx = 0
	}
	day, ok := m.currentDay()
	if !ok {
		m.itemIdx = 0
		return
	}
	if m.itemIdx >= len(day.Items) {
		m.itemIdx = len(day.Items) - 1
	}
	if m.itemIdx < 0 {
		m.itemIdx = 0
	}
}

// ---- View ----

func (m planModel) View() string {
	if m.loading {
		return "Loading itinerary..."
	}
	if m.form != nil {
		return m.form.View()
	}

	day, ok := m.currentDay()
	if !ok {
		if m.errMsg != "" {
			return errorOverlayModel{message: m.errMsg}.View()
		}
		return renderPage("TRIP PLAN", "No days in the itinerary yet.", "n: new item")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Day %d/%d  %s  %s\n\n", m.dayIdx+1, len(m.days), day.Date, titleStyle.Render(day.Title))

	b.WriteString(m.renderWeather(day))
	b.WriteString(m.renderItems(day))
	b.WriteString(m.renderHighlights(day))

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	} else if m.status != "" {
		b.WriteString("\n" + helpStyle.Render(m.status))
	}

	out := renderPage("TRIP PLAN", b.String(),
		"←/→: day  ↑/↓: item  n: new  e: edit  d: delete  r: refresh weather")
	if m.showConfirm {
		if item, ok := m.currentItem(); ok {
			out += "\n" + confirmModel{message: item.Title}.View()
		}
	}
	return out
}

func (m planModel) renderWeather(day models.DailySchedule) string {
	if day.DailyTips == nil {
		return ""
	}
	w := day.DailyTips.Weather
	if w.Condition == "" {
		return ""
	}
	return fmt.Sprintf("%s %s  %d°/%d°\n\n", w.ConditionIcon, w.Condition, w.High, w.Low)
}

func (m planModel) renderItems(day models.DailySchedule) string {
	if len(day.Items) == 0 {
		return "No activities for this day.\n"
	}

	now := time.Now()
	done, _ := m.services.ScheduleView.Partition(day, now)
	doneIDs := make(map[string]struct{}, len(done))
	for _, item := range done {
		doneIDs[item.ID] = struct{}{}
	}
	next, hasNext := m.services.ScheduleView.NextUp(day, now)

	var b strings.Builder
	for i, item := range day.Items {
		cursor := "  "
		if i == m.itemIdx {
			cursor = "> "
		}

		line := fmt.Sprintf("%s %s  %s", item.Time, fitText(item.Title, 36), helpStyle.Render(fitText(item.Location, 24)))
		if _, isDone := doneIDs[item.ID]; isDone {
			line = doneItemStyle.Render(line)
		} else if hasNext && item.ID == next.ID {
			line = nextUpStyle.Render(line + "  ← next up")
		}

		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

func (m planModel) renderHighlights(day models.DailySchedule) string {
	highlights := m.services.ScheduleView.Highlights(day)
	if len(highlights) == 0 {
		return ""
	}

	titles := make([]string, 0, len(highlights))
	for _, item := range highlights {
		titles = append(titles, item.Title)
	}
	return "\nHighlights: " + strings.Join(titles, ", ") + "\n"
}
