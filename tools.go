//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools used by go:generate and local database work:
// - github.com/matryer/moq (consumer-side interface mocks, *_mock_test.go)
// - github.com/pressly/goose/v3/cmd/goose (manual migrations against DATABASE_DSN)
