package queries

import (
	"errors"
	"time"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/guard"
)

var ErrGetAllDriversQueryIsNotConstructed = errors.New(
	"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
)

// GetAllDriversQuery retrieves every registered driver for the admin roster.
type GetAllDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDriversQuery creates a query to retrieve all drivers.
func NewGetAllDriversQuery() GetAllDriversQuery {
	return GetAllDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}

// GetAllDriversQueryResponse is the read model for one driver. The password
// hash never leaves the write side.
type GetAllDriversQueryResponse struct {
	ID               kernel.UUID
	Code             string
	Name             string
	Phone            string
	Username         string
	IsAdmin          bool
	Status           string
	CurrentOrderID   *kernel.UUID
	TodayOrders      int
	TotalOrders      int
	Rating           float64
	Earnings         int64
	LastStatusUpdate time.Time
}
