// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line demo client.
//
// It maps a command and its operands onto the storefront API through
// [adapter.ServerAdapter] and prints the returned payload as indented JSON.
package client
