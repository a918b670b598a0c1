// Package tui is the BarberBook terminal UI: a login screen gated by the
// session store and, once authenticated, the customer-record table. The
// package follows the Elm architecture; every model is a value, updates
// return new values, and all I/O happens inside tea.Cmd functions.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barberbook/barberbook/internal/client/session"
	"github.com/barberbook/barberbook/internal/logging"
	"github.com/barberbook/barberbook/internal/models"
)

// Page identifies which screen is active.
type Page int

const (
	PageLogin Page = iota
	PageClients
)

// Route maps the session status to the page that must be shown. It is a
// pure function; the application model issues the actual switch on every
// update, so navigating to the login screen while already authenticated
// also redirects.
func Route(status session.Status) Page {
	if status == session.StatusAuthenticated {
		return PageClients
	}
	return PageLogin
}

// Directory is the customer-record surface the clients page consumes.
// The API client satisfies it.
type Directory interface {
	Clients(ctx context.Context) ([]models.Client, error)
	UpdateClient(ctx context.Context, client models.Client) error
	DeleteClient(ctx context.Context, id string) error
}

// sessionRestoredMsg is delivered once the startup session restore settles.
type sessionRestoredMsg struct{}

// clientsLoadedMsg carries the result of an asynchronous client-list fetch.
type clientsLoadedMsg struct {
	clients []models.Client
	err     error
}

// clientDeletedMsg is delivered when an asynchronous delete call completes.
type clientDeletedMsg struct {
	name string
	err  error
}

// noticeMsg sets a transient line in the status bar.
type noticeMsg string

// AppModel is the top-level bubbletea model: it owns the active page,
// re-evaluates the route from the session status on every update, and
// wires the table callbacks to the backend.
type AppModel struct {
	store     *session.Store
	directory Directory
	log       logging.Logger
	theme     Theme
	keys      KeyMap

	page    Page
	login   LoginModel
	clients ClientsModel

	loadingClients bool
	notice         string

	width  int
	height int
}

// NewAppModel builds the root model. The session status starts Unknown;
// Init kicks off the restore that resolves it.
func NewAppModel(store *session.Store, directory Directory, log logging.Logger) AppModel {
	theme := DefaultTheme
	keys := DefaultKeyMap

	model := AppModel{
		store:     store,
		directory: directory,
		log:       log.With("component", "tui"),
		theme:     theme,
		keys:      keys,
		page:      PageLogin,
		login:     NewLoginModel(store, theme, keys),
	}
	model.clients = NewClientsModel(theme, keys, model.editClient, model.deleteClient)
	return model
}

func (m AppModel) Init() tea.Cmd {
	store := m.store
	restore := func() tea.Msg {
		store.Restore(context.Background())
		return sessionRestoredMsg{}
	}
	return tea.Batch(m.login.Init(), restore)
}

func (m AppModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.login.width = message.Width
		m.clients.width = message.Width

	case tea.KeyMsg:
		if key.Matches(message, m.keys.Quit) {
			return m, tea.Quit
		}
		cmds = append(cmds, m.routeKey(message))

	case sessionRestoredMsg:
		// Nothing to do directly: the navigation pass below reads the
		// resolved status.

	case clientsLoadedMsg:
		m.loadingClients = false
		if message.err != nil {
			m.notice = "No se pudo cargar la lista de clientes"
			m.log.Warn(context.Background(), "client list fetch failed", "reason", message.err.Error())
		} else {
			m.clients.SetClients(message.clients)
		}

	case clientDeletedMsg:
		if message.err != nil {
			m.notice = "No se pudo eliminar a " + message.name
			m.log.Warn(context.Background(), "client delete failed", "reason", message.err.Error())
		} else {
			m.notice = "Cliente eliminado: " + message.name
			cmds = append(cmds, m.fetchClients())
		}

	case noticeMsg:
		m.notice = string(message)

	default:
		// Spinner ticks and other internal messages belong to the login
		// model while it is on screen.
		if m.page == PageLogin {
			var cmd tea.Cmd
			m.login, cmd = m.login.Update(message)
			cmds = append(cmds, cmd)
		}
	}

	// Declarative navigation: the target page is a pure function of the
	// session status, re-evaluated every update.
	if target := Route(m.store.Status()); target != m.page {
		cmds = append(cmds, m.navigate(target))
	}

	return m, tea.Batch(cmds...)
}

// routeKey dispatches a key press to the active page.
func (m *AppModel) routeKey(message tea.KeyMsg) tea.Cmd {
	if m.page == PageLogin {
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(message)
		return cmd
	}

	switch {
	case key.Matches(message, m.keys.Refresh):
		m.loadingClients = true
		return m.fetchClients()
	case key.Matches(message, m.keys.Logout):
		store := m.store
		return func() tea.Msg {
			store.Logout(context.Background())
			return noticeMsg("")
		}
	}

	var cmd tea.Cmd
	m.clients, cmd = m.clients.Update(message)
	return cmd
}

// navigate switches pages. Entering the login page mounts a fresh form (the
// credential draft is discarded after every submission outcome); entering
// the clients page starts the initial list fetch.
func (m *AppModel) navigate(target Page) tea.Cmd {
	m.page = target
	m.notice = ""

	if target == PageLogin {
		m.login = NewLoginModel(m.store, m.theme, m.keys)
		return m.login.Init()
	}

	m.loadingClients = true
	m.clients.SetClients(nil)
	return m.fetchClients()
}

func (m AppModel) fetchClients() tea.Cmd {
	directory := m.directory
	return func() tea.Msg {
		clients, err := directory.Clients(context.Background())
		return clientsLoadedMsg{clients: clients, err: err}
	}
}

// editClient is the table's onEdit callback. The terminal client has no
// edit dialog; record editing lives in the desktop application.
func (m AppModel) editClient(client models.Client) tea.Cmd {
	return func() tea.Msg {
		return noticeMsg("La edición de " + client.Name + " solo está disponible en la aplicación de escritorio")
	}
}

// deleteClient is the table's onDelete callback.
func (m AppModel) deleteClient(client models.Client) tea.Cmd {
	directory := m.directory
	return func() tea.Msg {
		err := directory.DeleteClient(context.Background(), client.ID)
		return clientDeletedMsg{name: client.Name, err: err}
	}
}

func (m AppModel) View() string {
	var b strings.Builder

	header := "BarberBook"
	if identity, ok := m.store.Identity(); ok {
		header += " — " + identity.Name + " (" + identity.Role + ")"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.HeaderForeground).Bold(true).Render(header))
	b.WriteString("\n\n")

	if m.page == PageLogin {
		b.WriteString(m.login.View())
	} else {
		if m.loadingClients {
			b.WriteString(lipgloss.NewStyle().Foreground(m.theme.FaintText).Render("Cargando clientes…"))
			b.WriteString("\n")
		} else {
			b.WriteString(m.clients.View())
		}
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.FaintText).Render(m.notice))
	}

	return b.String()
}
