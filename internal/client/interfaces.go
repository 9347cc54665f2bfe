// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the contract of a runnable client application.
type Client interface {
	// Run executes the command named by args[0] with the remaining operands.
	Run(ctx context.Context, args []string) error
}
