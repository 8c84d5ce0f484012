// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.PageSize <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Server.HTTPAddress != "" {
		if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidServerConfigs, err)
		}
	}

	return nil
}
