// Package terminal renders directory search results as text for the CLI.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ortelius/userdir-backend/directory"
	"github.com/ortelius/userdir-backend/model"
)

// View keeps the latest render commands and writes them out on Render
type View struct {
	out      io.Writer
	heading  lipgloss.Style
	value    lipgloss.Style
	errStyle lipgloss.Style

	busy       bool
	usersShown bool
	users      []model.UserRecord
	stats      *model.FormattedStatistics
	err        error
}

// NewView creates a view writing to out
func NewView(out io.Writer) *View {
	r := lipgloss.NewRenderer(out)
	return &View{
		out:      out,
		heading:  r.NewStyle().Bold(true),
		value:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		errStyle: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// SetBusy records whether the load is still running
func (v *View) SetBusy(busy bool) { v.busy = busy }

// SetSearchEnabled is a no-op, the CLI has no input control
func (v *View) SetSearchEnabled(bool) {}

// SetTriggerEnabled is a no-op, the CLI has no trigger control
func (v *View) SetTriggerEnabled(bool) {}

// ShowNoStatistics clears the statistics panel
func (v *View) ShowNoStatistics() { v.stats = nil }

// ShowError records a load or search failure
func (v *View) ShowError(err error) { v.err = err }

// ShowUsers records the record list
func (v *View) ShowUsers(users []model.UserRecord) {
	v.usersShown = true
	v.users = users
}

// ShowNoUsers clears the record list
func (v *View) ShowNoUsers() {
	v.usersShown = false
	v.users = nil
}

// ShowStatistics records the statistics panel
func (v *View) ShowStatistics(stats model.FormattedStatistics) {
	v.stats = &stats
}

// Render writes the current state
func (v *View) Render() error {
	var b strings.Builder

	if v.err != nil {
		b.WriteString(v.errStyle.Render("Erro: "+v.err.Error()) + "\n")
		_, err := io.WriteString(v.out, b.String())
		return err
	}
	if v.busy {
		b.WriteString("Carregando...\n")
	}

	if v.usersShown {
		b.WriteString(v.heading.Render(fmt.Sprintf("%d usuário(s) encontrado(s)", len(v.users))) + "\n")
		for _, u := range v.users {
			fmt.Fprintf(&b, "  %s, %d anos\n", u.DisplayName, u.Age)
		}
	} else {
		b.WriteString(v.heading.Render("Nenhum usuário filtrado") + "\n")
	}
	b.WriteString("\n")

	if v.stats != nil {
		b.WriteString(v.heading.Render("Estatísticas") + "\n")
		fmt.Fprintf(&b, "  Sexo masculino: %s\n", v.value.Render(v.stats.MaleCount))
		fmt.Fprintf(&b, "  Sexo feminino: %s\n", v.value.Render(v.stats.FemaleCount))
		fmt.Fprintf(&b, "  Soma das idades: %s\n", v.value.Render(v.stats.AgeSum))
		fmt.Fprintf(&b, "  Média das idades: %s\n", v.value.Render(v.stats.AgeAverage))
	} else {
		b.WriteString(v.heading.Render("Nada a ser exibido") + "\n")
	}

	_, err := io.WriteString(v.out, b.String())
	return err
}

var _ directory.View = (*View)(nil)
