package ports

import "go.trai.ch/envkit/internal/core/domain"

// ActionRegistry collects declarative build actions for the host to execute.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type ActionRegistry interface {
	// Register adds an action. Registering a target twice fails with domain.ErrActionExists.
	Register(action domain.Action) error

	// Actions returns the registered actions in registration order.
	Actions() []domain.Action
}

// StatusPrinter prints short colored progress lines such as "[ MAKE ] openssl".
type StatusPrinter interface {
	Print(tag, subject, color string)
}
