// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It turns command-line arguments into nim calls and runs them in order
// against a single client instance, so a session cookie obtained by login
// is reused by the commands that follow it.
package client
