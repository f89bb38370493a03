package queries

import (
	"errors"
	"strings"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/user"
	"canteen/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via one of the NewGetOrderHistory...Query constructors",
)

// GetOrderHistoryQuery lists past orders newest first. It is scoped by the
// contact number given at checkout, by the caller's identity (staff and
// admins see every order, students only their own) or by both.
type GetOrderHistoryQuery struct {
	contact   *kernel.ContactNumber
	principal *user.Principal
	guard     guard.ConstructorGuard
}

// NewGetOrderHistoryByContactQuery scopes history to one mobile number.
func NewGetOrderHistoryByContactQuery(contact kernel.ContactNumber) (GetOrderHistoryQuery, error) {
	if err := contact.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{contact: &contact, guard: guard.NewConstructorGuard()}, nil
}

// NewGetOrderHistoryForPrincipalQuery scopes history to what the caller may see.
func NewGetOrderHistoryForPrincipalQuery(principal user.Principal) (GetOrderHistoryQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{principal: &principal, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// NewGetOrderHistoryForPrincipalByContactQuery scopes history to one mobile
// number within what the caller may see.
func NewGetOrderHistoryForPrincipalByContactQuery(
	principal user.Principal,
	contact kernel.ContactNumber,
) (GetOrderHistoryQuery, error) {
	if err := errors.Join(principal.Validate(), contact.Validate()); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{contact: &contact, principal: &principal, guard: guard.NewConstructorGuard()}, nil
}

// filter returns the WHERE clause and its arguments.
func (q GetOrderHistoryQuery) filter() (string, []any) {
	if q.contact == nil && q.principal == nil {
		return "WHERE FALSE", nil
	}

	var (
		conds []string
		args  []any
	)
	if q.contact != nil {
		conds = append(conds, "o.contact_number = ?")
		args = append(args, q.contact.String())
	}
	if q.principal != nil && !q.principal.SeesAllOrders() {
		conds = append(conds, "o.user_id = ?")
		args = append(args, string(q.principal.ID))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
