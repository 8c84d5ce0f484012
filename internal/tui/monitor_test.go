// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/listview"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/state"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// browser is the part of a record service the monitor uses; the rest panics
// through the embedded nil interface.
type browser[T models.Record] struct {
	service.RecordService[T]

	mu      sync.Mutex
	queries []models.ListQuery
	page    models.Page[T]
	err     error
}

func (b *browser[T]) Browse(_ context.Context, q models.ListQuery) (models.Page[T], error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queries = append(b.queries, q)
	return b.page, b.err
}

func (b *browser[T]) lastQuery() models.ListQuery {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.queries) == 0 {
		return models.ListQuery{}
	}
	return b.queries[len(b.queries)-1]
}

type session struct {
	service.SessionService

	mu         sync.Mutex
	st         state.State
	refreshErr error
	refreshes  int
	resets     int
	dismissed  []string
}

func (s *session) State() state.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st
}

func (s *session) RefreshAll(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshes++
	return s.refreshErr
}

func (s *session) Reset(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resets++
	return nil
}

func (s *session) DismissAlert(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dismissed = append(s.dismissed, id)
}

type fixture struct {
	items     *browser[models.Item]
	suppliers *browser[models.Supplier]
	session   *session
	services  *service.Services
}

func newFixture(t *testing.T, activeStore string) *fixture {
	t.Helper()

	appInfo, err := service.NewAppInfoService(config.App{Version: "1.0.0"},
		models.NewAppBuildInfo("1.0.0", "2026-10-01", "deadbeef"), logger.Nop())
	require.NoError(t, err)

	f := &fixture{
		items:     &browser[models.Item]{},
		suppliers: &browser[models.Supplier]{},
		session:   &session{st: state.State{ActiveStore: activeStore}},
	}
	f.services = &service.Services{
		Items:     f.items,
		Suppliers: f.suppliers,
		Session:   f.session,
		AppInfo:   appInfo,
	}
	return f
}

// newTestMonitor uses a static cursor so that search input does not produce
// blink commands that wait on a timer.
func newTestMonitor(f *fixture) monitorModel {
	m := newMonitorModel(context.Background(), f.services, nil)
	m.search.Cursor.SetMode(cursor.CursorStatic)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m monitorModel, msg tea.Msg) (monitorModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(monitorModel)
	require.True(t, ok)
	return nm, cmd
}

// drain runs cmd and every batched command, feeding plain messages back into
// the model. Ticks are skipped so the test does not wait on timers.
func drain(t *testing.T, m monitorModel, cmd tea.Cmd) monitorModel {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(t, m, c)
		}
	case clearStatusMsg, nil:
	default:
		var next tea.Cmd
		m, next = update(t, m, msg)
		if _, isLoad := msg.(itemsLoadedMsg); isLoad {
			return m
		}
		if _, isLoad := msg.(suppliersLoadedMsg); isLoad {
			return m
		}
		_ = next
	}
	return m
}

func TestMonitor_InitLoadsActiveStore(t *testing.T) {
	f := newFixture(t, "s1")
	f.items.page = models.Page[models.Item]{
		Records:        []models.Item{{ID: "i1", Name: "Green tea", Code: "GT", SalePrice: 3.5}},
		HasMoreRecords: true,
		TotalRecords:   30,
	}

	m := newTestMonitor(f)
	m = drain(t, m, m.Init())

	assert.Equal(t, models.ListQuery{StoreID: "s1", Limit: listPageSize}, f.items.lastQuery())
	require.Len(t, m.rows, 1)
	assert.Equal(t, "i1", m.rows[0].id)
	assert.Equal(t, 30, m.total)
	assert.True(t, m.hasMore)

	view := m.View()
	assert.Contains(t, view, "Green tea")
	assert.Contains(t, view, "showing 1 of 30")
}

func TestMonitor_NoStoreSkipsLoad(t *testing.T) {
	f := newFixture(t, "")

	m := newTestMonitor(f)
	m = drain(t, m, m.Init())

	assert.Empty(t, f.items.queries)
	assert.Contains(t, m.View(), "No store selected")
}

func TestMonitor_StateShowsCollectionsAndAlerts(t *testing.T) {
	f := newFixture(t, "")
	m := newTestMonitor(f)

	st := state.Reduce(state.State{}, state.StoreSelected{StoreID: "s1"})
	st = state.Reduce(st, state.RecordsMerged[models.Item]{StoreID: "s1", Records: []models.Item{{ID: "i1"}, {ID: "i2"}}})
	st = state.Reduce(st, state.LoadCompleted[models.Item]{StoreID: "s1", Stamp: "1700000000000"})
	st = state.Reduce(st, state.AlertRaised{Alert: models.Alert{ID: "a1", Level: models.AlertError, Message: "supplier delta fetch failed"}})
	st = state.Reduce(st, state.ProgressStarted{})

	m, cmd := update(t, m, stateMsg{state: st})
	require.NotNil(t, cmd)
	assert.True(t, m.spinning)

	view := m.View()
	assert.Contains(t, view, "s1")
	assert.Contains(t, view, "syncing")
	assert.Contains(t, view, "loaded")
	assert.Contains(t, view, "1700000000000")
	assert.Contains(t, view, "2 cached")
	assert.Contains(t, view, "supplier delta fetch failed")

	// store switch reloads the list
	m = drain(t, m, cmd)
	assert.Equal(t, "s1", f.items.lastQuery().StoreID)
}

func TestMonitor_SearchDrivesLoader(t *testing.T) {
	f := newFixture(t, "s1")
	m := newTestMonitor(f)

	m, cmd := update(t, m, runes("/"))
	require.True(t, m.searching)
	_ = cmd

	m, cmd = update(t, m, runes("t"))
	m = drain(t, m, cmd)
	m, cmd = update(t, m, runes("e"))
	m = drain(t, m, cmd)

	assert.Equal(t, "te", f.items.lastQuery().Search)
	assert.Len(t, f.items.queries, 2)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.searching)

	// keys go back to the list once the search box is left
	m, _ = update(t, m, runes("x"))
	assert.True(t, m.confirmReset)
}

func TestMonitor_SupersededLoadIsDropped(t *testing.T) {
	f := newFixture(t, "s1")
	m := newTestMonitor(f)
	m.rows = []row{{id: "keep", text: "keep"}}

	m, _ = update(t, m, itemsLoadedMsg{err: listview.ErrSuperseded})
	require.Len(t, m.rows, 1)
	assert.Equal(t, "keep", m.rows[0].id)
	assert.Empty(t, m.listErr)
}

func TestMonitor_LoadErrorIsShown(t *testing.T) {
	f := newFixture(t, "s1")
	m := newTestMonitor(f)

	m, _ = update(t, m, itemsLoadedMsg{err: errors.New("dial tcp 10.0.0.1:443: connection refused")})
	assert.Equal(t, "Network down or server unreachable", m.listErr)
	assert.Contains(t, m.View(), "Network down")
}

func TestMonitor_TabSwitchesCollection(t *testing.T) {
	f := newFixture(t, "s1")
	f.suppliers.page = models.Page[models.Supplier]{
		Records: []models.Supplier{{ID: "p1", Name: "Acme", Phone: "555-0100", CurrentBalance: 12}},
	}
	m := newTestMonitor(f)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, models.CollectionSuppliers, m.collection)
	m = drain(t, m, cmd)

	require.Len(t, m.rows, 1)
	assert.Contains(t, m.rows[0].text, "Acme")
	assert.Contains(t, m.rows[0].text, "balance 12.00")

	// a late item page must not replace the supplier rows
	m, _ = update(t, m, itemsLoadedMsg{view: listview.View[models.Item]{Records: []models.Item{{ID: "i1"}}}})
	assert.Equal(t, "p1", m.rows[0].id)
}

func TestMonitor_CopySelectedID(t *testing.T) {
	f := newFixture(t, "s1")
	m := newTestMonitor(f)

	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}
	m.rows = []row{{id: "i1"}, {id: "i2"}}

	m, _ = update(t, m, runes("j"))
	assert.Equal(t, 1, m.cursor)

	m, cmd := update(t, m, runes("c"))
	require.NotNil(t, cmd)
	m = drain(t, m, cmd)

	assert.Equal(t, "i2", copied)
	assert.Equal(t, "Copied i2", m.status)
}

func TestMonitor_RefreshAndReset(t *testing.T) {
	f := newFixture(t, "s1")
	m := newTestMonitor(f)

	m, cmd := update(t, m, runes("r"))
	m = drain(t, m, cmd)
	assert.Equal(t, 1, f.session.refreshes)
	assert.Equal(t, "Refreshed", m.status)

	f.session.refreshErr = service.ErrNoStoreSelected
	m, cmd = update(t, m, runes("r"))
	m = drain(t, m, cmd)
	assert.Equal(t, "No store selected", m.status)

	m, cmd = update(t, m, runes("x"))
	assert.Nil(t, cmd)
	assert.True(t, m.confirmReset)
	assert.Contains(t, m.View(), "Clear the cache of s1?")

	m, _ = update(t, m, runes("n"))
	assert.False(t, m.confirmReset)
	assert.Zero(t, f.session.resets)

	m, _ = update(t, m, runes("x"))
	m, cmd = update(t, m, runes("y"))
	m = drain(t, m, cmd)
	assert.Equal(t, 1, f.session.resets)
	assert.Equal(t, "Cache cleared", m.status)
}

func TestMonitor_DismissAlert(t *testing.T) {
	f := newFixture(t, "s1")
	m := newTestMonitor(f)
	m.st.Alerts = []models.Alert{{ID: "a1"}, {ID: "a2"}}

	update(t, m, runes("d"))
	assert.Equal(t, []string{"a1"}, f.session.dismissed)
}

func TestMonitor_BuildInfoAndQuit(t *testing.T) {
	f := newFixture(t, "s1")
	m := newTestMonitor(f)

	m, _ = update(t, m, runes("v"))
	view := m.View()
	assert.Contains(t, view, "Version: 1.0.0")
	assert.Contains(t, view, "Commit: deadbeef")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showInfo)

	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWaitForState(t *testing.T) {
	assert.Nil(t, waitForState(nil))

	ch := make(chan state.State, 1)
	ch <- state.State{ActiveStore: "s9"}
	msg := waitForState(ch)()
	assert.Equal(t, stateMsg{state: state.State{ActiveStore: "s9"}}, msg)

	close(ch)
	assert.Equal(t, subscriptionClosedMsg{}, waitForState(ch)())
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "Green t...", fitText("Green tea leaves", 10))
	assert.Equal(t, "Чай", fitText("Чай", 3))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.True(t, strings.HasSuffix(fitText("Зелёный чай", 8), "..."))
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)

	tui, err := New(newFixture(t, "").services, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, tui)
}
