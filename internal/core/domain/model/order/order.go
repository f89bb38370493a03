package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrItemsAreRequired is returned when an order is created without lines.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("order items")
)

// ID identifies an order. Ids come from the order storage sequence and are
// always positive.
type ID int64

// Validate rejects zero and negative ids.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// Order represents a paid canteen order. It is the aggregate root that owns
// the order lines and manages the order's fulfillment from the moment it is
// committed until it is completed or cancelled.
//
// Order follows these invariants:
//   - Must have a valid id, customer and contact number
//   - Must have at least one item
//   - Bill subtotal equals the sum of item totals
//   - Bill grand total equals subtotal + tax + parcel fee - discount
//   - Only the status changes after creation; money fields are never recomputed
//   - Status transitions follow the Status state machine
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the sequential identifier allocated by the ledger
	id ID

	// customer is who the order is for
	customer Customer

	// contact is the customer's mobile number, used for history lookups
	contact kernel.ContactNumber

	// createdAt is when the order was committed
	createdAt time.Time

	// items are the immutable order lines with price snapshots
	items []Item

	// bill is the priced breakdown
	bill Bill

	// settlement is how the order was paid
	settlement Settlement

	// status represents the current state in the order lifecycle
	status Status

	// events are raised by state changes and drained by the unit of work
	events []DomainEvent

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a freshly committed order in Received status and raises
// a PlacedEvent.
//
// Parameters:
//   - id: sequential identifier allocated by the ledger
//   - customer: validated customer
//   - contact: validated contact number
//   - items: at least one order line
//   - bill: priced breakdown whose subtotal matches the items
//   - settlement: the payment result
//   - createdAt: commit timestamp
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: every validation failure, joined with errors.Join
//
// Example:
//
//	o, err := order.NewOrder(id, customer, contact, items, bill, settlement, time.Now())
//	if err != nil {
//	    return err
//	}
//	o.Status() // Received
func NewOrder(
	id ID,
	customer Customer,
	contact kernel.ContactNumber,
	items []Item,
	bill Bill,
	settlement Settlement,
	createdAt time.Time,
) (*Order, error) {
	o, err := build(id, customer, contact, items, bill, settlement, Received, createdAt)
	if err != nil {
		return nil, err
	}

	o.raise(PlacedEvent{
		OrderID:       o.id,
		CustomerName:  o.customer.Name(),
		GrandTotal:    o.bill.GrandTotal(),
		PaymentMethod: o.settlement.Method(),
		ItemCount:     len(o.items),
		At:            createdAt,
	})
	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage with its
// current status. No events are raised.
func RestoreOrder(
	id ID,
	customer Customer,
	contact kernel.ContactNumber,
	items []Item,
	bill Bill,
	settlement Settlement,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	return build(id, customer, contact, items, bill, settlement, status, createdAt)
}

func build(
	id ID,
	customer Customer,
	contact kernel.ContactNumber,
	items []Item,
	bill Bill,
	settlement Settlement,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setContact(contact),
		o.setSettlement(settlement),
		o.setStatus(status),
		o.setItemsAndBill(items, bill),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() ID {
	return o.id
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) Contact() kernel.ContactNumber {
	return o.contact
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) Bill() Bill {
	return o.bill
}

func (o *Order) Settlement() Settlement {
	return o.settlement
}

func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus moves the order to next and raises a StatusChangedEvent.
// On an illegal transition the status is left unchanged and an
// *errs.InvalidTransitionError is returned.
//
// Example:
//
//	if err := o.ChangeStatus(order.Ready, time.Now()); err != nil {
//	    // errs.ErrInvalidTransition
//	}
func (o *Order) ChangeStatus(next Status, at time.Time) error {
	from := o.status
	to, err := from.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = to
	o.raise(StatusChangedEvent{OrderID: o.id, From: from, To: to, At: at})
	return nil
}

// CanReceiveFeedback returns nil when the order is Completed, and a
// *errs.FeedbackNotAllowedError otherwise.
func (o *Order) CanReceiveFeedback() error {
	if o.status != Completed {
		return errs.NewFeedbackNotAllowedError(int64(o.id),
			fmt.Sprintf("order is %s, feedback opens once it is Completed", o.status))
	}
	return nil
}

// DomainEvents returns the events raised since the last ClearDomainEvents.
func (o *Order) DomainEvents() []DomainEvent {
	return slices.Clone(o.events)
}

// ClearDomainEvents drops collected events once they are published.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) raise(e DomainEvent) {
	o.events = append(o.events, e)
}

func (o *Order) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setContact(contact kernel.ContactNumber) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	o.contact = contact
	return nil
}

func (o *Order) setSettlement(settlement Settlement) error {
	if err := settlement.Validate(); err != nil {
		return err
	}
	o.settlement = settlement
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setItemsAndBill checks that the bill subtotal is the sum of the item totals.
func (o *Order) setItemsAndBill(items []Item, bill Bill) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	if err := bill.Validate(); err != nil {
		return err
	}

	sum := kernel.Zero
	for _, item := range items {
		sum = sum.Add(item.Total())
	}
	if !sum.Equal(bill.Subtotal()) {
		return errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("bill says %s, items add up to %s", bill.Subtotal(), sum))
	}

	o.items = slices.Clone(items)
	o.bill = bill
	return nil
}
