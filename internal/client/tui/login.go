package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barberbook/barberbook/internal/client/api"
	"github.com/barberbook/barberbook/internal/client/session"
)

// exampleCredential is one of the fixed demo accounts shown under the form.
// Selecting one overwrites both fields at once without submitting.
type exampleCredential struct {
	Role     string
	Email    string
	Password string
}

var exampleCredentials = []exampleCredential{
	{Role: "Admin", Email: "admin@salonelegante.com", Password: "SuperAdmin123!"},
	{Role: "Recepcionista", Email: "maria@salonelegante.com", Password: "SuperAdmin123!"},
	{Role: "Estilista", Email: "carlos@salonelegante.com", Password: "SuperAdmin123!"},
}

// loginResultMsg is delivered when an asynchronous login attempt settles.
// The submitting flag clears on this message regardless of outcome, so the
// submit control is never left permanently disabled.
type loginResultMsg struct {
	ok bool
}

// LoginModel is the login screen: a projection of the session status plus
// the local credential draft. The draft lives only as long as the model;
// a fresh model starts with empty fields.
type LoginModel struct {
	store *session.Store
	theme Theme
	keys  KeyMap

	email      textinput.Model
	password   textinput.Model
	focusIndex int
	showSecret bool
	submitting bool
	notice     string

	spin  spinner.Model
	width int
}

// NewLoginModel creates a login screen bound to the given session store.
// The email field starts focused; the password field is masked.
func NewLoginModel(store *session.Store, theme Theme, keys KeyMap) LoginModel {
	email := textinput.New()
	email.Placeholder = "tu@email.com"
	email.Prompt = "Email      › "
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "contraseña"
	password.Prompt = "Contraseña › "
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return LoginModel{
		store:    store,
		theme:    theme,
		keys:     keys,
		email:    email,
		password: password,
		spin:     spin,
	}
}

func (m LoginModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick)
}

// Submitting reports whether a login attempt is in flight from this view.
func (m LoginModel) Submitting() bool {
	return m.submitting
}

func (m LoginModel) Update(message tea.Msg) (LoginModel, tea.Cmd) {
	switch message := message.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(message)
		return m, cmd

	case loginResultMsg:
		// Guaranteed cleanup: the control re-enables on success and
		// failure alike.
		m.submitting = false
		if !message.ok {
			m.notice = loginNotice(m.store.LastError())
		}
		return m, nil

	case tea.KeyMsg:
		// Keystrokes only matter while the form is on screen.
		if m.store.Status() != session.StatusUnauthenticated && !m.submitting {
			return m, nil
		}

		switch {
		case key.Matches(message, m.keys.ToggleSecret):
			// Visibility is purely local: the draft content is untouched
			// and the secret is never logged.
			m.showSecret = !m.showSecret
			if m.showSecret {
				m.password.EchoMode = textinput.EchoNormal
			} else {
				m.password.EchoMode = textinput.EchoPassword
			}
			return m, nil

		case key.Matches(message, m.keys.Example1):
			return m.fillExample(0), nil
		case key.Matches(message, m.keys.Example2):
			return m.fillExample(1), nil
		case key.Matches(message, m.keys.Example3):
			return m.fillExample(2), nil

		case key.Matches(message, m.keys.NextField):
			return m.setFocus((m.focusIndex + 1) % 2)
		case key.Matches(message, m.keys.PrevField):
			return m.setFocus((m.focusIndex + 1) % 2)

		case key.Matches(message, m.keys.Submit):
			if m.focusIndex == 0 && m.password.Value() == "" {
				return m.setFocus(1)
			}
			return m.submit()
		}

		// Route remaining input to the focused field. While an attempt is
		// in flight the user may still type; only submission is blocked.
		var cmd tea.Cmd
		if m.focusIndex == 0 {
			m.email, cmd = m.email.Update(message)
		} else {
			m.password, cmd = m.password.Update(message)
		}
		return m, cmd
	}

	return m, nil
}

func (m LoginModel) fillExample(i int) LoginModel {
	cred := exampleCredentials[i]
	m.email.SetValue(cred.Email)
	m.password.SetValue(cred.Password)
	m.notice = ""
	return m
}

func (m LoginModel) setFocus(index int) (LoginModel, tea.Cmd) {
	m.focusIndex = index
	if index == 0 {
		m.password.Blur()
		return m, m.email.Focus()
	}
	m.email.Blur()
	return m, m.password.Focus()
}

// submit starts one login attempt. The submit control is disabled for the
// duration: a second enter while in flight is ignored here, and the session
// store itself rejects concurrent attempts even if this guard is bypassed.
func (m LoginModel) submit() (LoginModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	if m.email.Value() == "" || m.password.Value() == "" {
		m.notice = "Email y contraseña son obligatorios"
		return m, nil
	}

	m.submitting = true
	m.notice = ""

	store := m.store
	creds := session.Credentials{Email: m.email.Value(), Password: m.password.Value()}
	attempt := func() tea.Msg {
		return loginResultMsg{ok: store.Login(context.Background(), creds)}
	}
	return m, tea.Batch(attempt, m.spin.Tick)
}

func (m LoginModel) View() string {
	switch m.store.Status() {
	case session.StatusUnknown:
		// Only the loading indicator: the form is not shown and
		// submission is impossible.
		return m.spin.View() + " Comprobando sesión…"

	case session.StatusAuthenticated:
		// Nothing of the form renders while authenticated; the root
		// model issues the redirect on every render.
		return ""
	}

	theme := m.theme
	titleStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	errStyle := lipgloss.NewStyle().Foreground(theme.ErrorText)

	var b strings.Builder
	b.WriteString(titleStyle.Render("BarberBook"))
	b.WriteString("\n\n")
	b.WriteString(m.email.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString(m.spin.View() + " Iniciando sesión…")
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.HeaderForeground).Render("[ Iniciar Sesión ⏎ ]"))
	}
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(errStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(faint.Render("Credenciales de ejemplo:"))
	b.WriteString("\n")
	for i, cred := range exampleCredentials {
		b.WriteString(faint.Render("  alt+" + string(rune('1'+i)) + "  " + cred.Role + " — " + cred.Email))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "tab campo • ctrl+r mostrar/ocultar • enter entrar • ctrl+c salir"
	b.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).Render(help))

	return b.String()
}

// loginNotice converts the store's last error into a short user-facing line.
// Wire detail stays in the logs; the notice never echoes the secret.
func loginNotice(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, api.ErrBadCredentials):
		return "Email o contraseña incorrectos"
	case errors.Is(err, api.ErrUnavailable):
		return "No se puede conectar con el servidor"
	default:
		return "No se pudo iniciar sesión"
	}
}
