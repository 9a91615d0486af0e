package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/mock"
	"github.com/MKhiriev/go-trip-keeper/internal/service"
	"github.com/MKhiriev/go-trip-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestJournalModel(t *testing.T) (journalModel, *mock.MockClientJournalService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	journal := mock.NewMockClientJournalService(ctrl)
	services := &service.ClientServices{JournalService: journal}

	return newJournalModel(context.Background(), services), journal
}

func TestJournalTab_NewEntry(t *testing.T) {
	m, journal := newTestJournalModel(t)

	var cmd tea.Cmd
	m, cmd = m.handleKey(pressKey("n"))
	require.Nil(t, cmd)
	require.True(t, m.capturing(), "composing must capture the keyboard")

	m.titleInput.SetValue("Desert camp")
	m.bodyArea.SetValue("Stars all the way down to the horizon.")

	journal.EXPECT().
		Add(gomock.Any(), "Desert camp", "Stars all the way down to the horizon.", nil).
		Return(models.JournalEntry{ID: "j-1", Title: "Desert camp"}, nil)
	journal.EXPECT().
		List(gomock.Any()).
		Return([]models.JournalEntry{{ID: "j-1", Title: "Desert camp", CreatedAt: time.Now()}}, nil)

	m, cmd = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlS})
	for _, msg := range drainCmd(cmd) {
		var next tea.Cmd
		m, next = m.Update(msg)
		for _, followUp := range drainCmd(next) {
			m, _ = m.Update(followUp)
		}
	}

	assert.False(t, m.capturing())
	require.Len(t, m.entries, 1)
	assert.Equal(t, "Desert camp", m.entries[0].Title)
}

func TestJournalTab_EntriesCannotBeEdited(t *testing.T) {
	m, _ := newTestJournalModel(t)
	m.entries = []models.JournalEntry{
		{ID: "j-1", Title: "Desert camp", Body: "Original text.", CreatedAt: time.Now()},
	}

	var cmd tea.Cmd
	m, cmd = m.handleKey(pressKey("e"))

	assert.Nil(t, cmd)
	assert.False(t, m.capturing(), "existing entries are add/delete only")
	assert.NotContains(t, m.View(), "e: edit")
}

func TestJournalTab_DeleteWithConfirmation(t *testing.T) {
	m, journal := newTestJournalModel(t)
	m.entries = []models.JournalEntry{
		{ID: "j-1", Title: "Desert camp", CreatedAt: time.Now()},
	}

	var cmd tea.Cmd
	m, cmd = m.handleKey(pressKey("d"))
	require.Nil(t, cmd)
	require.True(t, m.showConfirm)

	journal.EXPECT().Delete(gomock.Any(), "j-1").Return(nil)
	journal.EXPECT().List(gomock.Any()).Return(nil, nil)

	m, cmd = m.handleKey(pressKey("y"))
	for _, msg := range drainCmd(cmd) {
		var next tea.Cmd
		m, next = m.Update(msg)
		for _, followUp := range drainCmd(next) {
			m, _ = m.Update(followUp)
		}
	}

	assert.False(t, m.showConfirm)
	assert.Empty(t, m.entries)
}
