// Package page renders the directory as a server-side HTML page.
package page

import (
	"github.com/ortelius/userdir-backend/directory"
	"github.com/ortelius/userdir-backend/model"
)

// PageView collects the render commands of one request and is the template's data
type PageView struct {
	Locale         string
	MinQueryLength int
	Query          string

	Busy           bool
	SearchEnabled  bool
	TriggerEnabled bool
	UsersShown     bool
	Users          []model.UserRecord
	Statistics     *model.FormattedStatistics
	Error          string
}

// NewPageView creates a view in the "nothing searched yet" state
func NewPageView(locale string, minQueryLength int) *PageView {
	return &PageView{Locale: locale, MinQueryLength: minQueryLength}
}

// SetBusy toggles the loading indicator
func (v *PageView) SetBusy(busy bool) { v.Busy = busy }

// SetSearchEnabled toggles the search input
func (v *PageView) SetSearchEnabled(enabled bool) { v.SearchEnabled = enabled }

// SetTriggerEnabled toggles the search button
func (v *PageView) SetTriggerEnabled(enabled bool) { v.TriggerEnabled = enabled }

// ShowUsers shows the record list
func (v *PageView) ShowUsers(users []model.UserRecord) {
	v.UsersShown = true
	v.Users = users
}

// ShowNoUsers shows the empty list message
func (v *PageView) ShowNoUsers() {
	v.UsersShown = false
	v.Users = nil
}

// ShowStatistics shows the statistics panel
func (v *PageView) ShowStatistics(stats model.FormattedStatistics) {
	v.Statistics = &stats
}

// ShowNoStatistics shows the empty statistics message
func (v *PageView) ShowNoStatistics() {
	v.Statistics = nil
}

// ShowError shows err above the results
func (v *PageView) ShowError(err error) {
	v.Error = err.Error()
}

var _ directory.View = (*PageView)(nil)
