//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They keep mockgen, invoked through
// `go generate ./contract`, pinned in go.mod / go.sum.
package queue_bot

import (
	_ "go.uber.org/mock/mockgen"
)
