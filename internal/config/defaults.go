// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultDSN              = "stock-keeper.db"
	defaultRequestTimeout   = 15 * time.Second
	defaultPageSize         = 100
	defaultServiceName      = "stock-keeper"
	defaultServerAddress    = "localhost:8081"
	defaultServerReqTimeout = 30 * time.Second
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: defaultDSN}},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultServerReqTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultRequestTimeout,
			PageSize:       defaultPageSize,
		},
		Telemetry: Telemetry{ServiceName: defaultServiceName},
	}
}
