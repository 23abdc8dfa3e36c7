package ports

import "go.trai.ch/evry/internal/core/domain"

// Clock supplies the current time as epoch milliseconds.
//
//go:generate mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks
type Clock interface {
	Now() domain.Milliseconds
}
