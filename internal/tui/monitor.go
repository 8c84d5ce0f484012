// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-stock-keeper/internal/listview"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/state"
	"github.com/MKhiriev/go-stock-keeper/models"
)

const (
	listPageSize = 20
	statusTTL    = 2 * time.Second
)

// row is one rendered line of the filtered list.
type row struct {
	id   string
	text string
}

// monitorModel shows the sync state of the active store and a server-side
// filtered list of one collection.
type monitorModel struct {
	ctx      context.Context
	services *service.Services
	updates  <-chan state.State

	st state.State

	collection models.Collection
	items      *listview.Loader[models.Item]
	suppliers  *listview.Loader[models.Supplier]
	rows       []row
	cursor     int
	total      int
	hasMore    bool
	loading    bool
	listErr    string

	search    textinput.Model
	searching bool
	spinner   spinner.Model
	spinning  bool

	status       string
	confirmReset bool
	showInfo     bool

	copyText func(string) error
}

func newMonitorModel(ctx context.Context, services *service.Services, updates <-chan state.State) monitorModel {
	search := textinput.New()
	search.Prompt = "search: "
	search.Placeholder = "name, code or phone"
	search.CharLimit = 64

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return monitorModel{
		ctx:        ctx,
		services:   services,
		updates:    updates,
		st:         services.Session.State(),
		collection: models.CollectionItems,
		items:      listview.NewLoader[models.Item](services.Items.Browse),
		suppliers:  listview.NewLoader[models.Supplier](services.Suppliers.Browse),
		search:     search,
		spinner:    s,
		copyText:   clipboard.WriteAll,
	}
}

func (m monitorModel) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForState(m.updates)}
	if m.st.ActiveStore != "" {
		cmds = append(cmds, m.cmdLoad())
	}
	return tea.Batch(cmds...)
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case stateMsg:
		return m.applyState(msg.state)

	case subscriptionClosedMsg:
		m.updates = nil
		return m, nil

	case itemsLoadedMsg:
		if errors.Is(msg.err, listview.ErrSuperseded) || m.collection != models.CollectionItems {
			return m, nil
		}
		m.applyView(msg.err, msg.view.Total, msg.view.HasMore, itemRows(msg.view.Records))
		return m, nil

	case suppliersLoadedMsg:
		if errors.Is(msg.err, listview.ErrSuperseded) || m.collection != models.CollectionSuppliers {
			return m, nil
		}
		m.applyView(msg.err, msg.view.Total, msg.view.HasMore, supplierRows(msg.view.Records))
		return m, nil

	case refreshDoneMsg:
		if msg.err != nil {
			m.status = humanizeError(msg.err)
			return m, cmdClearStatus()
		}
		m.status = "Refreshed"
		load := m.cmdLoad()
		return m, tea.Batch(load, cmdClearStatus())

	case resetDoneMsg:
		if msg.err != nil {
			m.status = humanizeError(msg.err)
		} else {
			m.status = "Cache cleared"
		}
		return m, cmdClearStatus()

	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("copy to clipboard: %v", msg.err)
		} else {
			m.status = "Copied " + msg.id
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.st.Busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m monitorModel) applyState(st state.State) (tea.Model, tea.Cmd) {
	prevStore := m.st.ActiveStore
	m.st = st

	cmds := []tea.Cmd{waitForState(m.updates)}
	if st.Busy() && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}

	if st.ActiveStore != prevStore {
		m.clearList()
		if st.ActiveStore == "" {
			m.items.Close()
			m.suppliers.Close()
		} else {
			cmds = append(cmds, m.cmdLoad())
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *monitorModel) applyView(err error, total int, hasMore bool, rows []row) {
	m.loading = false
	if err != nil {
		m.listErr = humanizeError(err)
		return
	}
	m.listErr = ""
	m.rows = rows
	m.total = total
	m.hasMore = hasMore
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
}

func (m *monitorModel) clearList() {
	m.rows = nil
	m.cursor = 0
	m.total = 0
	m.hasMore = false
	m.listErr = ""
}

func (m monitorModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		m.close()
		return m, tea.Quit
	}

	if m.showInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showInfo = false
		}
		return m, nil
	}

	if m.confirmReset {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmReset = false
			m.clearList()
			return m, m.cmdReset()
		case key.Matches(msg, keys.no):
			m.confirmReset = false
		}
		return m, nil
	}

	if m.searching {
		return m.updateSearch(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.close()
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.tab):
		if m.collection == models.CollectionItems {
			m.collection = models.CollectionSuppliers
		} else {
			m.collection = models.CollectionItems
		}
		m.clearList()
		load := m.cmdLoad()
		return m, load
	case key.Matches(msg, keys.search):
		m.searching = true
		focus := m.search.Focus()
		return m, focus
	case key.Matches(msg, keys.more):
		if m.hasMore && !m.loading {
			more := m.cmdMore()
			return m, more
		}
	case key.Matches(msg, keys.refresh):
		m.status = "Refreshing..."
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.reset):
		m.confirmReset = true
	case key.Matches(msg, keys.copy):
		if m.cursor < len(m.rows) {
			return m, m.cmdCopy(m.rows[m.cursor].id)
		}
	case key.Matches(msg, keys.dismiss):
		if len(m.st.Alerts) > 0 {
			m.services.Session.DismissAlert(m.st.Alerts[0].ID)
		}
	case key.Matches(msg, keys.info):
		m.showInfo = true
	}
	return m, nil
}

// updateSearch feeds the search box. Every change starts a new load; the
// loader cancels the previous one and its result is dropped.
func (m monitorModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	prev := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == prev {
		return m, cmd
	}

	m.cursor = 0
	load := m.cmdLoad()
	return m, tea.Batch(cmd, load)
}

func (m monitorModel) close() {
	m.items.Close()
	m.suppliers.Close()
}

func (m *monitorModel) query() models.ListQuery {
	return models.ListQuery{
		StoreID: m.st.ActiveStore,
		Search:  strings.TrimSpace(m.search.Value()),
		Limit:   listPageSize,
	}
}

// cmdLoad reloads the first page of the shown collection.
func (m *monitorModel) cmdLoad() tea.Cmd {
	if m.st.ActiveStore == "" {
		return nil
	}
	m.loading = true

	ctx, q := m.ctx, m.query()
	if m.collection == models.CollectionSuppliers {
		loader := m.suppliers
		return func() tea.Msg {
			view, err := loader.Load(ctx, q)
			return suppliersLoadedMsg{view: view, err: err}
		}
	}
	loader := m.items
	return func() tea.Msg {
		view, err := loader.Load(ctx, q)
		return itemsLoadedMsg{view: view, err: err}
	}
}

func (m *monitorModel) cmdMore() tea.Cmd {
	m.loading = true

	ctx := m.ctx
	if m.collection == models.CollectionSuppliers {
		loader := m.suppliers
		return func() tea.Msg {
			view, err := loader.LoadMore(ctx)
			return suppliersLoadedMsg{view: view, err: err}
		}
	}
	loader := m.items
	return func() tea.Msg {
		view, err := loader.LoadMore(ctx)
		return itemsLoadedMsg{view: view, err: err}
	}
}

func (m monitorModel) cmdRefresh() tea.Cmd {
	ctx, session := m.ctx, m.services.Session
	return func() tea.Msg {
		return refreshDoneMsg{err: session.RefreshAll(ctx)}
	}
}

func (m monitorModel) cmdReset() tea.Cmd {
	ctx, session := m.ctx, m.services.Session
	return func() tea.Msg {
		return resetDoneMsg{err: session.Reset(ctx)}
	}
}

func (m monitorModel) cmdCopy(id string) tea.Cmd {
	write := m.copyText
	return func() tea.Msg {
		return copiedMsg{id: id, err: write(id)}
	}
}

func waitForState(updates <-chan state.State) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		st, ok := <-updates
		if !ok {
			return subscriptionClosedMsg{}
		}
		return stateMsg{state: st}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func itemRows(items []models.Item) []row {
	rows := make([]row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row{
			id: it.ID,
			text: fmt.Sprintf("%-28s %-12s %10.2f  stock %g",
				fitText(it.Name, 28), fitText(valueOrDash(it.Code), 12), it.SalePrice, it.CurrentStock),
		})
	}
	return rows
}

func supplierRows(suppliers []models.Supplier) []row {
	rows := make([]row, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, row{
			id: s.ID,
			text: fmt.Sprintf("%-28s %-16s balance %.2f",
				fitText(s.Name, 28), fitText(valueOrDash(s.Phone), 16), s.CurrentBalance),
		})
	}
	return rows
}
