// Package scenario stores named calculation snapshots so they can be compared
// side by side.
package scenario

//go:generate mockgen -source=scenario.go -destination=mocks/repository.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/breakeven-sim/simulator/internal/breakeven"
)

// DefaultLimit is the number of scenarios kept when no cap is configured.
const DefaultLimit = 3

var (
	ErrLimitReached    = errors.New("scenario limit reached")
	ErrNotFound        = errors.New("scenario not found")
	ErrInvalidScenario = errors.New("invalid scenario")
)

// Scenario is a saved input together with the result it produced at save
// time. The result is never recalculated on read.
type Scenario struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Input     breakeven.Input  `json:"input"`
	Result    breakeven.Result `json:"result"`
	CreatedAt time.Time        `json:"createdAt"`
}

type Repository interface {
	Save(ctx context.Context, name string, input breakeven.Input, result breakeven.Result) (Scenario, error)
	List(ctx context.Context) ([]Scenario, error)
	Get(ctx context.Context, id string) (Scenario, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

func validate(name string, result breakeven.Result) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", wrapInvalid("name is required")
	}
	if !result.IsValid {
		return "", wrapInvalid("only valid calculation results can be saved")
	}
	return name, nil
}

func wrapInvalid(reason string) error {
	return &invalidError{reason: reason}
}

type invalidError struct {
	reason string
}

func (e *invalidError) Error() string {
	return ErrInvalidScenario.Error() + ": " + e.reason
}

func (e *invalidError) Is(target error) bool {
	return target == ErrInvalidScenario
}
