// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/service"
	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// assistantModel is the AI assistant tab. Chat history is session-only and
// never persisted.
type assistantModel struct {
	ctx      context.Context
	services *service.ClientServices

	days     []models.DailySchedule
	location *models.GeoLocation

	history  []models.ChatMessage
	thinking bool
	spinner  spinner.Model

	promptInput textinput.Model
	status      string
	errMsg      string
}

func newAssistantModel(ctx context.Context, services *service.ClientServices) assistantModel {
	prompt := textinput.New()
	prompt.Placeholder = "Ask about the trip..."
	prompt.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return assistantModel{
		ctx:         ctx,
		services:    services,
		location:    geoFromEnv(),
		promptInput: prompt,
		spinner:     sp,
	}
}

// geoFromEnv reads the optional device position. Both coordinates must be
// set for the location to be attached.
func geoFromEnv() *models.GeoLocation {
	lat, latErr := strconv.ParseFloat(os.Getenv("TRIP_GEO_LAT"), 64)
	lng, lngErr := strconv.ParseFloat(os.Getenv("TRIP_GEO_LNG"), 64)
	if latErr != nil || lngErr != nil {
		return nil
	}

	geo := &models.GeoLocation{Lat: lat, Lng: lng}
	if accuracy, err := strconv.ParseFloat(os.Getenv("TRIP_GEO_ACCURACY"), 64); err == nil {
		geo.Accuracy = accuracy
	}
	return geo
}

func (m assistantModel) capturing() bool {
	return m.promptInput.Focused()
}

func (m assistantModel) lastReply() (models.ChatMessage, bool) {
	for i := len(m.history) - 1; i >= 0; i-- {
		if m.history[i].Role == models.ChatRoleModel {
			return m.history[i], true
		}
	}
	return models.ChatMessage{}, false
}

// ---- Commands ----

func (m assistantModel) cmdAsk(prompt string) tea.Cmd {
	history := make([]models.ChatMessage, len(m.history))
	copy(history, m.history)

	return func() tea.Msg {
		reply, err := m.services.AssistantService.Ask(m.ctx, prompt, history, m.days, m.location)
		return chatReplyMsg{reply: reply, err: err}
	}
}

func (m assistantModel) cmdSpeak(text string) tea.Cmd {
	return func() tea.Msg {
		wav, err := m.services.AssistantService.Speak(m.ctx, text)
		if err != nil {
			return audioSavedMsg{err: err}
		}

		path := fmt.Sprintf("assistant-%s.wav", time.Now().Format("20060102-150405"))
		if err := os.WriteFile(path, wav, 0o644); err != nil {
			return audioSavedMsg{err: err}
		}
		return audioSavedMsg{path: path}
	}
}

func (m assistantModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return chatReplyMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatusLater() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// ---- Update ----

func (m assistantModel) Update(msg tea.Msg) (assistantModel, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		m.thinking = false
		if msg.err != nil {
			m.errMsg = humanizeRelayUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.history = append(m.history, msg.reply)
		return m, nil

	case audioSavedMsg:
		m.thinking = false
		if msg.err != nil {
			m.errMsg = humanizeRelayUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "audio saved to " + msg.path
		return m, cmdClearStatusLater()

	case copiedMsg:
		m.status = "reply copied to clipboard"
		return m, cmdClearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.thinking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m assistantModel) handleKey(msg tea.KeyMsg) (assistantModel, tea.Cmd) {
	if m.promptInput.Focused() {
		switch msg.String() {
		case "esc":
			m.promptInput.Blur()
			return m, nil
		case "enter":
			prompt := strings.TrimSpace(m.promptInput.Value())
			if prompt == "" || m.thinking {
				return m, nil
			}
			// Snapshot the history before the prompt joins it: Ask sends the
			// prompt as the final user turn itself.
			askCmd := m.cmdAsk(prompt)
			m.history = append(m.history, models.ChatMessage{
				Role:      models.ChatRoleUser,
				Text:      prompt,
				Timestamp: time.Now(),
			})
			m.promptInput.SetValue("")
			m.thinking = true
			m.errMsg = ""
			return m, tea.Batch(askCmd, m.spinner.Tick)
		}

		var cmd tea.Cmd
		m.promptInput, cmd = m.promptInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "i", "enter":
		m.promptInput.Focus()
	case "c":
		if reply, ok := m.lastReply(); ok {
			return m, m.cmdCopy(reply.Text)
		}
	case "s":
		if reply, ok := m.lastReply(); ok && !m.thinking {
			m.thinking = true
			return m, tea.Batch(m.cmdSpeak(reply.Text), m.spinner.Tick)
		}
	}
	return m, nil
}

// ---- View ----

func (m assistantModel) View() string {
	var b strings.Builder

	if len(m.history) == 0 {
		b.WriteString(helpStyle.Render("Ask anything about the trip: schedule, places, tips.") + "\n")
	}
	for _, msg := range m.history {
		prefix := "You:       "
		if msg.Role == models.ChatRoleModel {
			prefix = "Assistant: "
		}
		b.WriteString(titleStyle.Render(prefix) + msg.Text + "\n\n")
	}

	if m.thinking {
		b.WriteString(m.spinner.View() + " thinking...\n")
	}

	b.WriteString("\n> " + m.promptInput.View() + "\n")

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	} else if m.status != "" {
		b.WriteString("\n" + helpStyle.Render(m.status))
	}

	return renderPage("ASSISTANT", b.String(),
		"i: type  esc: stop typing  c: copy reply  s: speak reply")
}
