package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leadconsole/internal/console"
	"leadconsole/internal/notice"
	"leadconsole/internal/session"
)

// AppModel is the root model. It switches between the login screen and the
// dashboard following the session state, and owns the console service.
type AppModel struct {
	Mode       AppMode
	Console    *console.Service
	Login      *LoginView
	Dashboard  *DashboardView
	KeyHandler *KeyHandler
	Overlays   OverlayStack

	// Notice is the notification currently shown, if any.
	Notice    *notice.Notice
	NoticeTTL time.Duration

	// Ctx is passed to console operations.
	Ctx context.Context

	quantity int
	width    int
	height   int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model on the login screen. quantity is the
// starting value of the distribution stepper.
func NewAppModel(svc *console.Service, quantity int) *AppModel {
	dashboardOnly := []AppMode{ModeDashboard}
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("SPC q", tea.Quit, "Sair do programa", dashboardOnly)
	reg.BindWithDescForMode("SPC l", func() tea.Msg { return LogoutMsg{} }, "Logout", dashboardOnly)
	for i, t := range session.Tabs {
		reg.BindWithDescForMode("SPC "+string(rune('1'+i)), func() tea.Msg { return SelectTabMsg{Tab: t} }, t.Title(), dashboardOnly)
	}
	reg.BindWithDescForMode("SPC ]", func() tea.Msg { return CycleTabMsg{Delta: 1} }, "Próxima aba", dashboardOnly)
	reg.BindWithDescForMode("SPC [", func() tea.Msg { return CycleTabMsg{Delta: -1} }, "Aba anterior", dashboardOnly)
	reg.BindWithDescForMode("SPC i", func() tea.Msg { return ShowFilePickerMsg{} }, "Importar CSV", dashboardOnly)
	reg.BindWithDescForMode("SPC v", func() tea.Msg { return ShowSellerPickerMsg{} }, "Vendedor", dashboardOnly)
	reg.BindWithDescForMode("SPC d", func() tea.Msg { return DistributeMsg{} }, "Distribuir leads", dashboardOnly)

	return &AppModel{
		Mode:       ModeLogin,
		Console:    svc,
		Login:      NewLoginView(),
		Dashboard:  NewDashboardView(quantity),
		KeyHandler: NewKeyHandler(reg),
		NoticeTTL:  notice.DefaultTTL,
		Ctx:        context.Background(),
		quantity:   quantity,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.currentView().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Login.Update(msg)
		a.Dashboard.Update(msg)
		return a, nil
	case LoginMsg:
		return a.handleLogin(msg)
	case LogoutMsg:
		return a.handleLogout()
	case SelectTabMsg:
		return a.handleSelectTab(msg)
	case CycleTabMsg:
		return a.handleCycleTab(msg)
	case ShowFilePickerMsg:
		return a.handleShowFilePicker()
	case FileSelectedMsg:
		return a.handleFileSelected(msg)
	case ImportFileMsg:
		return a.handleImportFile(msg)
	case LeadFileReadMsg:
		return a.handleLeadFileRead(msg)
	case ShowSellerPickerMsg:
		return a.handleShowSellerPicker()
	case SellerSelectedMsg:
		return a.handleSellerSelected(msg)
	case DistributeMsg:
		return a.handleDistribute(msg)
	case AddUserMsg:
		return a.handleAddUser(msg)
	case ShowRemoveUserMsg:
		return a.handleShowRemoveUser(msg)
	case RemoveUserMsg:
		return a.handleRemoveUser(msg)
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case noticeExpiredMsg:
		if a.Notice != nil && a.Notice.Timestamp.Equal(msg.At) {
			a.Notice = nil
		}
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.Overlays.Len() > 0 {
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		// Leader keybinds, unless a text field is taking the keys.
		if a.KeyHandler != nil && !capturingText(a.currentView()) {
			a.KeyHandler.Mode = a.Mode
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
	}

	// Modals own everything else while open (list filtering, blink ticks).
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}
	_, cmd := a.currentView().Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		modal := top.View.View()
		if a.width > 0 && a.height > 0 {
			modal = lipgloss.Place(a.width, a.height-2, lipgloss.Center, lipgloss.Center, modal)
		}
		return modal + a.renderNotice()
	}

	base := a.currentView().View()
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode)
	}
	return base + a.renderNotice()
}

func (a *appModelAdapter) currentView() View {
	if a.Mode == ModeDashboard {
		return a.Dashboard
	}
	return a.Login
}

func (a *AppModel) renderNotice() string {
	if a.Notice == nil {
		return ""
	}
	style := Styles.NoticeInfo
	switch a.Notice.Level {
	case notice.LevelSuccess:
		style = Styles.NoticeSuccess
	case notice.LevelError:
		style = Styles.NoticeError
	}
	return "\n" + style.Render(lipgloss.NewStyle().Bold(true).Render(a.Notice.Title)+"  "+a.Notice.Message)
}

// setNotice shows n and schedules its expiry.
func (a *AppModel) setNotice(n notice.Notice) tea.Cmd {
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}
	a.Notice = &n
	return noticeExpiryCmd(n.Timestamp, a.NoticeTTL)
}

// syncDashboard pushes the service state into the dashboard.
func (a *AppModel) syncDashboard() {
	shell := a.Console.Shell()
	a.Dashboard.Operator = shell.Operator()
	a.Dashboard.Tab = shell.Tab()
	a.Dashboard.SetData(a.Console.Users(), a.Console.Pool())
}
