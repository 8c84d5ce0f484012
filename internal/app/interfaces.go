// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "context"

// Runner is a long running part of the process.
type Runner interface {
	// Run blocks until ctx is cancelled or the part stops on its own.
	Run(ctx context.Context) error
}
