// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

package main

import "github.com/magefile/mage/sh"

const (
	binLint  = "golangci-lint"
	binGofmt = "gofmt"
)

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Fmt rewrites all Go sources with gofmt.
func Fmt() error {
	return sh.RunV(binGofmt, "-w", "cmd", "internal", "pkg", "tests", "magefiles")
}
