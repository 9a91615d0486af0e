package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-trip-keeper/internal/service"
	"github.com/MKhiriev/go-trip-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type tab int

const (
	tabPlan tab = iota
	tabBudget
	tabJournal
	tabAssistant
)

var tabNames = []string{"Plan", "Budget", "Journal", "Assistant"}

// rootModel is the TUI router:
// 1) renders the tab bar and the active tab
// 2) handles global quit and the build-info overlay
// 3) routes async messages to the tab that owns them
type rootModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	activeTab tab
	plan      planModel
	budget    budgetModel
	journal   journalModel
	assistant assistantModel

	showBuildInfo bool
	quitByUser    bool
}

func newRootModel(
	ctx context.Context,
	services *service.ClientServices,
	buildInfo models.AppBuildInfo,
	days []models.DailySchedule,
	dayIndex int,
) rootModel {
	assistant := newAssistantModel(ctx, services)
	assistant.days = days

	return rootModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		plan:      newPlanModel(ctx, services, days, dayIndex),
		budget:    newBudgetModel(ctx, services),
		journal:   newJournalModel(ctx, services),
		assistant: assistant,
	}
}

func (r rootModel) Init() tea.Cmd {
	return tea.Batch(r.plan.initCmds()...)
}

func (r rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if !r.activeCapturing() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		case "q":
			if !r.activeCapturing() && !r.showBuildInfo {
				r.quitByUser = true
				return r, tea.Quit
			}
		case "tab", "shift+tab":
			if !r.activeCapturing() && !r.showBuildInfo {
				return r.switchTab(key.String() == "tab")
			}
		}

		if r.showBuildInfo {
			return r, nil
		}

		return r.updateActive(msg)
	}

	return r.route(msg)
}

// switchTab moves to the neighbouring tab and lazily loads its data.
func (r rootModel) switchTab(forward bool) (tea.Model, tea.Cmd) {
	n := tab(len(tabNames))
	if forward {
		r.activeTab = (r.activeTab + 1) % n
	} else {
		r.activeTab = (r.activeTab + n - 1) % n
	}

	switch r.activeTab {
	case tabBudget:
		if !r.budget.loadedOnce {
			return r, r.budget.cmdLoad()
		}
	case tabJournal:
		if !r.journal.loadedOnce {
			return r, r.journal.cmdLoad()
		}
	}
	return r, nil
}

func (r rootModel) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch r.activeTab {
	case tabPlan:
		r.plan, cmd = r.plan.Update(msg)
	case tabBudget:
		r.budget, cmd = r.budget.Update(msg)
	case tabJournal:
		r.journal, cmd = r.journal.Update(msg)
	case tabAssistant:
		r.assistant, cmd = r.assistant.Update(msg)
	}
	return r, cmd
}

// route delivers async results to the owning tab even when another tab is
// in front.
func (r rootModel) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.(type) {
	case itineraryLoadedMsg, itemSavedMsg, itemDeletedMsg, weatherRefreshedMsg:
		r.plan, cmd = r.plan.Update(msg)
		// the assistant sends the full itinerary with every prompt
		r.assistant.days = r.plan.days
	case budgetLoadedMsg, budgetSavedMsg, budgetDeletedMsg:
		r.budget, cmd = r.budget.Update(msg)
	case journalLoadedMsg, journalSavedMsg, journalDeletedMsg:
		r.journal, cmd = r.journal.Update(msg)
	case chatReplyMsg, audioSavedMsg, copiedMsg, clearStatusMsg:
		r.assistant, cmd = r.assistant.Update(msg)
	default:
		return r.updateActive(msg)
	}
	return r, cmd
}

func (r rootModel) activeCapturing() bool {
	switch r.activeTab {
	case tabPlan:
		return r.plan.capturing()
	case tabBudget:
		return r.budget.capturing()
	case tabJournal:
		return r.journal.capturing()
	case tabAssistant:
		return r.assistant.capturing()
	}
	return false
}

func (r rootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}

	var body string
	switch r.activeTab {
	case tabPlan:
		body = r.plan.View()
	case tabBudget:
		body = r.budget.View()
	case tabJournal:
		body = r.journal.View()
	case tabAssistant:
		body = r.assistant.View()
	}

	return appStyle.Render(r.renderTabBar() + "\n\n" + body)
}

func (r rootModel) renderTabBar() string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == r.activeTab {
			parts = append(parts, activeTabStyle.Render("["+name+"]"))
		} else {
			parts = append(parts, inactiveTabStyle.Render(" "+name+" "))
		}
	}
	return strings.Join(parts, " ") + "   " + helpStyle.Render("tab: switch  v: about  q: quit")
}
