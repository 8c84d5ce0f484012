// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-stock-keeper/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		if !strings.HasSuffix(data, "\n") {
			b.WriteString("\n")
		}
	} else {
		b.WriteString("-\n")
	}

	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return appStyle.Render(b.String())
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func stampOrDash(s models.Stamp) string {
	if s.IsZero() {
		return "-"
	}
	return s.String()
}

// fitText cuts v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	if max <= 0 || utf8.RuneCountInString(v) <= max {
		return v
	}
	r := []rune(v)
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
