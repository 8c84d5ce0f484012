// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expected: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expected: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8081", expected: NetAddress{Port: 8081}},
		{name: "missing colon", input: "localhost8080", expectError: true},
		{name: "bad port", input: "localhost:abc", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "bad ip", input: "999.1.1.1:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:9000",
		"-r", "pos.example.com",
		"-d", "cache.db",
		"-s", "store-7",
		"-config", "/etc/stock-keeper.json",
		"-api-token", "tok",
		"-hash-key", "hk",
		"-request-timeout", "5s",
		"-page-size", "50",
		"-refresh-interval", "2m",
		"-trace-stdout",
		"-tui",
	})

	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "pos.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "store-7", cfg.App.StoreID)
	assert.Equal(t, "/etc/stock-keeper.json", cfg.JSONFilePath)
	assert.Equal(t, "tok", cfg.App.APIToken)
	assert.Equal(t, "hk", cfg.App.HashKey)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 50, cfg.Adapter.PageSize)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
	assert.True(t, cfg.Telemetry.Stdout)
	assert.True(t, cfg.UI.Enabled)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-unknown"})
	require.Error(t, err)
}
