//go:build tools

package tools

// This file tracks tool dependencies for reproducible builds.

import (
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "go.uber.org/mock/mockgen"
)
