package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barberbook/barberbook/internal/models"
)

// ClientsModel renders the customer-record table. It is a stateless
// projection of the rows it is given plus two callbacks; it owns only the
// cursor. The input slice is never mutated.
type ClientsModel struct {
	theme Theme
	keys  KeyMap

	clients []models.Client
	cursor  int

	// Row action callbacks, invoked with the selected row's client.
	// Either may return nil when the action produces no follow-up work.
	onEdit   func(models.Client) tea.Cmd
	onDelete func(models.Client) tea.Cmd

	width int
}

// NewClientsModel creates an empty table wired to the given callbacks.
func NewClientsModel(theme Theme, keys KeyMap, onEdit, onDelete func(models.Client) tea.Cmd) ClientsModel {
	return ClientsModel{theme: theme, keys: keys, onEdit: onEdit, onDelete: onDelete}
}

// SetClients replaces the displayed rows. The cursor is clamped so a
// shrinking list never leaves it out of range.
func (m *ClientsModel) SetClients(clients []models.Client) {
	m.clients = clients
	if m.cursor >= len(clients) {
		m.cursor = len(clients) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m ClientsModel) Update(message tea.Msg) (ClientsModel, tea.Cmd) {
	keyMsg, ok := message.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.clients)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Edit):
		if len(m.clients) > 0 && m.onEdit != nil {
			return m, m.onEdit(m.clients[m.cursor])
		}
	case key.Matches(keyMsg, m.keys.Delete):
		if len(m.clients) > 0 && m.onDelete != nil {
			return m, m.onDelete(m.clients[m.cursor])
		}
	}
	return m, nil
}

const (
	nameColumnWidth    = 28
	contactColumnWidth = 34
)

func (m ClientsModel) View() string {
	theme := m.theme
	headerStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	selected := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	var b strings.Builder
	b.WriteString(headerStyle.Render(pad("CLIENTE", nameColumnWidth) + pad("CONTACTO", contactColumnWidth)))
	b.WriteString("\n")

	if len(m.clients) == 0 {
		b.WriteString(faint.Render("No hay clientes"))
		b.WriteString("\n")
		return b.String()
	}

	for i, client := range m.clients {
		contact := client.Email
		if client.Mobile != "" {
			contact += "  " + client.Mobile
		}
		row := pad(client.Name, nameColumnWidth) + pad(contact, contactColumnWidth)
		if i == m.cursor {
			row = selected.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "j/k mover • e editar • d eliminar • r recargar • ctrl+l salir de sesión"
	b.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).Render(help))
	return b.String()
}

// pad right-pads s with spaces to the given width, truncating with an
// ellipsis when it does not fit.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width-2 {
		return string(runes[:width-3]) + "… "
	}
	return s + strings.Repeat(" ", width-len(runes))
}
