package commands

import (
	"errors"
	"fmt"
	"slices"

	"canteen/internal/core/domain/model/cart"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrCommitOrderCommandIsNotConstructed = errors.New(
	"CommitOrderCommand must be created via NewCommitOrderCommand constructor",
)

// CommitOrderCommand carries a priced and paid cart to the ledger.
//
// Example:
//
//	cmd, err := NewCommitOrderCommand(customer, contact, c.Lines(), bill, settlement)
//	if err != nil {
//	    return err
//	}
//	id, err := handler.Handle(ctx, cmd)
type CommitOrderCommand struct { //nolint:recvcheck //using for validation
	customer   order.Customer
	contact    kernel.ContactNumber
	lines      []cart.Line
	bill       order.Bill
	settlement order.Settlement

	guard guard.ConstructorGuard
}

// NewCommitOrderCommand validates every part of the command.
// An empty line list yields *errs.EmptyCartError.
func NewCommitOrderCommand(
	customer order.Customer,
	contact kernel.ContactNumber,
	lines []cart.Line,
	bill order.Bill,
	settlement order.Settlement,
) (CommitOrderCommand, error) {
	if len(lines) == 0 {
		return CommitOrderCommand{}, errs.NewEmptyCartError()
	}

	cmd := CommitOrderCommand{
		customer:   customer,
		contact:    contact,
		bill:       bill,
		settlement: settlement,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.Validate(),
		contact.Validate(),
		bill.Validate(),
		settlement.Validate(),
		cmd.setLines(lines),
	); err != nil {
		return CommitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CommitOrderCommand) Validate() error {
	return c.guard.Validate(ErrCommitOrderCommandIsNotConstructed)
}

func (c CommitOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c CommitOrderCommand) Contact() kernel.ContactNumber {
	return c.contact
}

// Lines returns a copy of the cart lines in their original order.
func (c CommitOrderCommand) Lines() []cart.Line {
	return slices.Clone(c.lines)
}

func (c CommitOrderCommand) Bill() order.Bill {
	return c.bill
}

func (c CommitOrderCommand) Settlement() order.Settlement {
	return c.settlement
}

func (c *CommitOrderCommand) setLines(lines []cart.Line) error {
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}
	c.lines = slices.Clone(lines)
	return nil
}
