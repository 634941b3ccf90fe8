package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-db-warden/internal/client"
	"github.com/MKhiriev/go-db-warden/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type statusModel struct {
	ctx    context.Context
	client client.AdminClient

	status  models.StatusResponse
	batches []string

	loading        bool
	busy           bool
	busyLabel      string
	confirmCleanup bool

	spin spinner.Model

	statusMsg string
	errMsg    string
}

type statusLoadedMsg struct {
	status  models.StatusResponse
	batches []string
	err     error
}

type operationDoneMsg struct {
	label  string
	status models.StatusResponse
	err    error
}

func newStatusModel(ctx context.Context, c client.AdminClient) statusModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return statusModel{
		ctx:     ctx,
		client:  c,
		loading: true,
		spin:    sp,
	}
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.cmdLoadStatus())
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading && !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case statusLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = connectionErrorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		m.batches = msg.batches
		return m, nil

	case operationDoneMsg:
		m.busy = false
		m.busyLabel = ""
		if msg.err != nil {
			m.errMsg = operationErrorMessage(msg.label, msg.err)
			return m, nil
		}
		m.status = msg.status
		m.statusMsg = msg.label + " — выполнено"
		m.errMsg = ""
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadStatus())
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	if m.confirmCleanup {
		switch keyMsg.String() {
		case "y":
			m.confirmCleanup = false
			m.busy = true
			m.busyLabel = "Очистка"
			m.statusMsg = ""
			m.errMsg = ""
			return m, tea.Batch(m.spin.Tick, m.cmdCleanup())
		case "n", "esc":
			m.confirmCleanup = false
		}
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	switch keyMsg.String() {
	case "r":
		m.loading = true
		m.statusMsg = ""
		m.errMsg = ""
		return m, tea.Batch(m.spin.Tick, m.cmdLoadStatus())
	case "u":
		m.busy = true
		m.busyLabel = "Обновление схемы"
		m.statusMsg = ""
		m.errMsg = ""
		return m, tea.Batch(m.spin.Tick, m.cmdUpgrade())
	case "c":
		m.confirmCleanup = true
	}

	return m, nil
}

func (m statusModel) View() string {
	if m.confirmCleanup {
		out := "Очистка удалит все управляемые объекты базы данных.\n"
		out += "Продолжить?"
		return renderPage("ОЧИСТКА БАЗЫ ДАННЫХ", out, "y: да │ n/esc: нет")
	}

	out := ""

	if m.errMsg != "" {
		out += errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}
	if m.statusMsg != "" {
		out += "Статус: " + m.statusMsg + "\n"
	}
	if out != "" {
		out += "\n"
	}

	if m.loading {
		out += m.spin.View() + " Загрузка статуса..."
		return renderPage("БАЗА ДАННЫХ", out, "r: обновить │ q: выход")
	}

	out += "Параметр          │ Значение\n"
	out += "──────────────────┼──────────────────────────────\n"
	out += fmt.Sprintf("Состояние         │ %s\n", m.status.State)
	out += fmt.Sprintf("Версия            │ %s\n", versionLabel(m.status.Version))
	out += fmt.Sprintf("Нач. состояние    │ %s\n", m.status.InitialState)
	out += fmt.Sprintf("Нач. версия       │ %s\n", versionLabel(m.status.InitialVersion))
	out += fmt.Sprintf("Версия приложения │ %s\n", m.status.AppVersion)

	out += "\n[ ПАКЕТЫ СКРИПТОВ ]\n"
	if len(m.batches) == 0 {
		out += "(нет)\n"
	} else {
		for _, name := range m.batches {
			out += "• " + fitText(name, 48) + "\n"
		}
	}

	if m.busy {
		out += "\n" + m.spin.View() + " " + m.busyLabel + "..."
	}

	return renderPage(
		"БАЗА ДАННЫХ",
		strings.TrimRight(out, "\n"),
		"r: обновить │ u: обновить схему │ c: очистить │ q: выход",
	)
}

func (m statusModel) cmdLoadStatus() tea.Cmd {
	ctx := m.ctx
	c := m.client

	return func() tea.Msg {
		status, err := c.Status(ctx)
		if err != nil {
			return statusLoadedMsg{err: err}
		}
		batches, err := c.Batches(ctx)
		return statusLoadedMsg{status: status, batches: batches, err: err}
	}
}

func (m statusModel) cmdUpgrade() tea.Cmd {
	ctx := m.ctx
	c := m.client

	return func() tea.Msg {
		// zero target means the newest supported version
		status, err := c.Upgrade(ctx, 0)
		return operationDoneMsg{label: "Обновление схемы", status: status, err: err}
	}
}

func (m statusModel) cmdCleanup() tea.Cmd {
	ctx := m.ctx
	c := m.client

	return func() tea.Msg {
		status, err := c.Cleanup(ctx)
		return operationDoneMsg{label: "Очистка", status: status, err: err}
	}
}

func versionLabel(version int) string {
	switch {
	case version == 0:
		return "не создана"
	case version < 0:
		return "не определена"
	default:
		return fmt.Sprintf("%d", version)
	}
}

func operationErrorMessage(label string, err error) string {
	switch {
	case errors.Is(err, client.ErrWrongState):
		return label + ": операция недоступна в текущем состоянии базы"
	case errors.Is(err, client.ErrNotSupported):
		return label + ": операция не поддерживается сервером"
	default:
		return fmt.Sprintf("%s: %v", label, err)
	}
}

func connectionErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "сервер недоступен. Проверьте адрес и сеть"
	}

	return err.Error()
}
