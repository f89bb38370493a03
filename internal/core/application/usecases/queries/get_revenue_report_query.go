package queries

import (
	"errors"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

const (
	DefaultTopSellers = 5
	MaxTopSellers     = 50
)

var ErrGetRevenueReportQueryIsNotConstructed = errors.New(
	"GetRevenueReportQuery must be created via NewGetRevenueReportQuery constructor",
)

// GetRevenueReportQuery summarises takings. Cancelled orders are excluded.
// A zero since means all time.
type GetRevenueReportQuery struct {
	since      time.Time
	topSellers int
	guard      guard.ConstructorGuard
}

// NewGetRevenueReportQuery builds the report query. topSellers of zero picks
// DefaultTopSellers.
func NewGetRevenueReportQuery(since time.Time, topSellers int) (GetRevenueReportQuery, error) {
	if topSellers == 0 {
		topSellers = DefaultTopSellers
	}
	if topSellers < 1 || topSellers > MaxTopSellers {
		return GetRevenueReportQuery{}, errs.NewValueIsOutOfRangeError("top sellers", topSellers, 1, MaxTopSellers)
	}
	return GetRevenueReportQuery{since: since, topSellers: topSellers, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRevenueReportQuery) Validate() error {
	return q.guard.Validate(ErrGetRevenueReportQueryIsNotConstructed)
}

func (q GetRevenueReportQuery) Since() time.Time {
	return q.since
}

func (q GetRevenueReportQuery) TopSellers() int {
	return q.topSellers
}

// RevenueReport is what the admin dashboard shows.
type RevenueReport struct {
	TotalRevenue  kernel.Money
	OrderCount    int
	AverageTicket kernel.Money
	TopSellers    []TopSeller
}

// TopSeller is one menu item ranked by portions sold.
type TopSeller struct {
	MenuItemID menu.ItemID
	Name       string
	Quantity   int
	Revenue    kernel.Money
}
