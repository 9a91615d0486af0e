package tui

import (
	"github.com/MKhiriev/go-trip-keeper/models"
)

type itineraryLoadedMsg struct {
	days []models.DailySchedule
	err  error
}

type itemSavedMsg struct {
	days []models.DailySchedule
	err  error
}

type itemDeletedMsg struct {
	days []models.DailySchedule
	err  error
}

type weatherRefreshedMsg struct {
	err error
}

type budgetLoadedMsg struct {
	entries []models.BudgetEntry
	total   float64
	err     error
}

type budgetSavedMsg struct {
	err error
}

type budgetDeletedMsg struct {
	err error
}

type journalLoadedMsg struct {
	entries []models.JournalEntry
	err     error
}

type journalSavedMsg struct {
	err error
}

type journalDeletedMsg struct {
	err error
}

type chatReplyMsg struct {
	reply models.ChatMessage
	err   error
}

type audioSavedMsg struct {
	path string
	err  error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
