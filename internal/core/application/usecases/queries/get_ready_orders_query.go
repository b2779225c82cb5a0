package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrGetReadyOrdersQueryIsNotConstructed = errors.New(
	"GetReadyOrdersQuery must be created via NewGetReadyOrdersQuery constructor",
)

// GetReadyOrdersQuery retrieves orders that are ready for pickup and not
// yet claimed by any driver. This is the list idle drivers poll.
type GetReadyOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReadyOrdersQuery creates the parameterless pickup-list query.
func NewGetReadyOrdersQuery() GetReadyOrdersQuery {
	return GetReadyOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReadyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetReadyOrdersQueryIsNotConstructed)
}
