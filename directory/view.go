package directory

import "github.com/ortelius/userdir-backend/model"

// View receives render commands from the controller. Implementations own the
// markup; the controller only decides what is shown.
type View interface {
	SetBusy(busy bool)
	SetSearchEnabled(enabled bool)
	SetTriggerEnabled(enabled bool)
	ShowUsers(users []model.UserRecord)
	ShowNoUsers()
	ShowStatistics(stats model.FormattedStatistics)
	ShowNoStatistics()
	ShowError(err error)
}

// Present renders a search result: the list and statistics, or the empty state for both
func Present(view View, result SearchResult) {
	if len(result.Users) == 0 {
		view.ShowNoUsers()
		view.ShowNoStatistics()
		return
	}
	view.ShowUsers(result.Users)
	view.ShowStatistics(result.Formatted)
}

// NopView discards every render command. API sessions use it as their base view.
type NopView struct{}

func (NopView) SetBusy(bool) {}
func (NopView) SetSearchEnabled(bool) {}
func (NopView) SetTriggerEnabled(bool) {}
func (NopView) ShowUsers([]model.UserRecord) {}
func (NopView) ShowNoUsers() {}
func (NopView) ShowStatistics(model.FormattedStatistics) {}
func (NopView) ShowNoStatistics() {}
func (NopView) ShowError(error) {}
