// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	search   key.Binding
	more     key.Binding
	refresh  key.Binding
	reset    key.Binding
	copy     key.Binding
	dismiss  key.Binding
	info     key.Binding
	quit     key.Binding
	yes      key.Binding
	no       key.Binding
	forceQuit key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "shift+tab")),
	search:   key.NewBinding(key.WithKeys("/")),
	more:     key.NewBinding(key.WithKeys("m", "pgdown")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	reset:    key.NewBinding(key.WithKeys("x")),
	copy:     key.NewBinding(key.WithKeys("c")),
	dismiss:  key.NewBinding(key.WithKeys("d")),
	info:     key.NewBinding(key.WithKeys("v")),
	quit:     key.NewBinding(key.WithKeys("q")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}
