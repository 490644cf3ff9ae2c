package ui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"leadconsole/internal/notice"
	"leadconsole/internal/roster"
	"leadconsole/internal/session"
)

// handleLogin opens the dashboard when the service accepts the credentials.
func (a *appModelAdapter) handleLogin(msg LoginMsg) (tea.Model, tea.Cmd) {
	n, err := a.Console.Login(a.Ctx, msg.Username, msg.Password)
	cmd := a.setNotice(n)
	if err != nil {
		return a, cmd
	}
	a.Mode = ModeDashboard
	a.Dashboard = NewDashboardView(a.quantity)
	if a.width > 0 {
		a.Dashboard.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	a.syncDashboard()
	return a, tea.Batch(cmd, a.Dashboard.Init())
}

// handleLogout returns to the login screen. Users and leads stay in memory.
func (a *appModelAdapter) handleLogout() (tea.Model, tea.Cmd) {
	if a.Mode != ModeDashboard {
		return a, nil
	}
	n := a.Console.Logout()
	a.Overlays.Clear()
	a.Mode = ModeLogin
	a.Login.Reset()
	return a, tea.Batch(a.setNotice(n), a.Login.Init())
}

func (a *appModelAdapter) handleSelectTab(msg SelectTabMsg) (tea.Model, tea.Cmd) {
	if a.Console.Shell().SelectTab(msg.Tab) {
		a.Dashboard.Tab = a.Console.Shell().Tab()
	}
	return a, nil
}

func (a *appModelAdapter) handleCycleTab(msg CycleTabMsg) (tea.Model, tea.Cmd) {
	shell := a.Console.Shell()
	if shell.State() != session.LoggedIn {
		return a, nil
	}
	if msg.Delta < 0 {
		a.Dashboard.Tab = shell.PrevTab()
	} else {
		a.Dashboard.Tab = shell.NextTab()
	}
	return a, nil
}

// handleShowFilePicker lists the import directory in a picker (SPC i).
func (a *appModelAdapter) handleShowFilePicker() (tea.Model, tea.Cmd) {
	if a.Mode != ModeDashboard {
		return a, nil
	}
	a.showLeadsTab()
	store := a.Console.Store()
	names, err := store.List()
	if err != nil {
		return a, a.setNotice(notice.Error("Não foi possível listar " + store.BaseDir() + ": " + err.Error()))
	}
	a.Overlays.Push(NewFilePickerModal(store.BaseDir(), names))
	return a, nil
}

// handleFileSelected fills the path field and imports the chosen file.
func (a *appModelAdapter) handleFileSelected(msg FileSelectedMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	a.Dashboard.Leads.Path.SetValue(msg.Name)
	return a.handleImportFile(ImportFileMsg(msg))
}

// handleImportFile starts the async read of the named CSV.
func (a *appModelAdapter) handleImportFile(msg ImportFileMsg) (tea.Model, tea.Cmd) {
	return a, readLeadFileCmd(a.Ctx, a.Console.Store(), msg.Name)
}

// handleLeadFileRead parses the file and replaces the pool.
func (a *appModelAdapter) handleLeadFileRead(msg LeadFileReadMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return a, a.setNotice(notice.FromError(msg.Err))
	}
	_, n, err := a.Console.Import(a.Ctx, msg.Name, msg.Text)
	if err == nil {
		a.syncDashboard()
	}
	return a, a.setNotice(n)
}

// handleShowSellerPicker opens the seller list (SPC v).
func (a *appModelAdapter) handleShowSellerPicker() (tea.Model, tea.Cmd) {
	if a.Mode != ModeDashboard {
		return a, nil
	}
	a.showLeadsTab()
	a.Overlays.Push(NewSellerPickerModal(a.Console.Users(), a.Dashboard.Leads.SellerID))
	return a, nil
}

func (a *appModelAdapter) handleSellerSelected(msg SellerSelectedMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	a.Dashboard.Leads.SellerID = msg.ID
	return a, nil
}

// handleDistribute hands leads to a seller. A zero DistributeMsg (SPC d)
// takes the seller and quantity from the leads panel.
func (a *appModelAdapter) handleDistribute(msg DistributeMsg) (tea.Model, tea.Cmd) {
	if a.Mode != ModeDashboard {
		return a, nil
	}
	if msg == (DistributeMsg{}) {
		msg = DistributeMsg{SellerID: a.Dashboard.Leads.SellerID, Count: a.Dashboard.Leads.Quantity}
	}
	_, n, err := a.Console.Distribute(a.Ctx, msg.SellerID, msg.Count)
	if err == nil {
		a.syncDashboard()
	}
	return a, a.setNotice(n)
}

func (a *appModelAdapter) handleAddUser(msg AddUserMsg) (tea.Model, tea.Cmd) {
	_, n, err := a.Console.AddUser(a.Ctx, msg.Candidate)
	if err == nil {
		a.Dashboard.Users.ResetForm()
		a.syncDashboard()
	}
	return a, a.setNotice(n)
}

// handleShowRemoveUser asks for confirmation before removing a user.
func (a *appModelAdapter) handleShowRemoveUser(msg ShowRemoveUserMsg) (tea.Model, tea.Cmd) {
	users := a.Console.Users()
	i := slices.IndexFunc(users, func(u roster.User) bool { return u.ID == msg.ID })
	if i < 0 {
		return a, nil
	}
	a.Overlays.Push(NewRemoveUserConfirmModal(users[i]))
	return a, nil
}

func (a *appModelAdapter) handleRemoveUser(msg RemoveUserMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	n, err := a.Console.RemoveUser(a.Ctx, msg.ID)
	if err == nil {
		a.syncDashboard()
	}
	return a, a.setNotice(n)
}

func (a *AppModel) showLeadsTab() {
	if a.Console.Shell().SelectTab(session.TabLeads) {
		a.Dashboard.Tab = session.TabLeads
	}
}
