// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/internal/state"
	"github.com/MKhiriev/go-stock-keeper/models"
)

const hotKeys = "tab collection  / search  m more  c copy id  r refresh  x reset  d dismiss  v version  q quit"

func (m monitorModel) View() string {
	if m.showInfo {
		return renderBuildInfoWindow(m.services.AppInfo.BuildInfo())
	}

	var b strings.Builder

	m.writeCollections(&b)
	m.writeAlerts(&b)
	b.WriteString(uiDivider)
	b.WriteString("\n")
	m.writeList(&b)

	if m.confirmReset {
		b.WriteString("\n")
		b.WriteString(overlayStyle.Render("Clear the cache of " + m.st.ActiveStore + "?\n\ny: yes   n: no"))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage(m.title(), b.String(), hotKeys)
}

func (m monitorModel) title() string {
	title := "Stock Keeper · " + valueOrDash(m.st.ActiveStore)
	if m.st.Busy() {
		title += "  " + m.spinner.View() + " syncing"
	}
	return title
}

func (m monitorModel) writeCollections(b *strings.Builder) {
	if m.st.ActiveStore == "" {
		b.WriteString("No store selected\n")
		return
	}

	items := state.CollectionOf[models.Item](m.st, m.st.ActiveStore)
	suppliers := state.CollectionOf[models.Supplier](m.st, m.st.ActiveStore)

	writeCollectionLine(b, "Items", items.Status, items.Stamp, items.DeleteActivity, items.DeleteDrift, items.Len())
	writeCollectionLine(b, "Suppliers", suppliers.Status, suppliers.Stamp, suppliers.DeleteActivity, suppliers.DeleteDrift, suppliers.Len())
}

func writeCollectionLine(b *strings.Builder, name string, status state.Status, stamp, deletes models.Stamp, drift bool, cached int) {
	fmt.Fprintf(b, "%-10s %-12s stamp %-26s deletes %-26s %d cached",
		name, status, stampOrDash(stamp), stampOrDash(deletes), cached)
	if drift {
		b.WriteString("  ")
		b.WriteString(warningStyle.Render("drift"))
	}
	b.WriteString("\n")
}

func (m monitorModel) writeAlerts(b *strings.Builder) {
	for _, a := range m.st.Alerts {
		style := warningStyle
		if a.Level == models.AlertError {
			style = errorStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("! [%s] %s", a.Level, a.Message)))
		b.WriteString("\n")
	}
}

func (m monitorModel) writeList(b *strings.Builder) {
	tab := func(c models.Collection, label string) string {
		if m.collection == c {
			return activeTab.Render(label)
		}
		return label
	}
	b.WriteString(tab(models.CollectionItems, "Items"))
	b.WriteString("  ")
	b.WriteString(tab(models.CollectionSuppliers, "Suppliers"))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	switch {
	case m.st.ActiveStore == "":
		return
	case m.listErr != "":
		b.WriteString(errorStyle.Render("Error: " + m.listErr))
		b.WriteString("\n")
		return
	case m.loading && len(m.rows) == 0:
		b.WriteString("Loading...\n")
		return
	case len(m.rows) == 0:
		b.WriteString("No records\n")
		return
	}

	for i, r := range m.rows {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + r.text))
		} else {
			b.WriteString("  " + r.text)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(b, "\nshowing %d of %d", len(m.rows), m.total)
	if m.hasMore {
		b.WriteString("  (m: more)")
	}
	b.WriteString("\n")
}
