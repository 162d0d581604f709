// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's ports.
// To regenerate mocks, run `go generate ./...` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/component_service.go -destination=component_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/notifier.go -destination=notifier_mock.go -package=mocks
