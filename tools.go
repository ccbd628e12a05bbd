//go:build tools
// +build tools

package main

// This file exists to ensure that tool dependencies (eg. stringer) which are
// not directly imported in our code actually get included in the go.mod file.

import (
	_ "golang.org/x/tools/cmd/stringer"
)
