package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"canteen/internal/core/application/checkout"
	"canteen/internal/core/application/payment"
	"canteen/internal/core/application/shopping"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/pkg/errs"
)

type MenuReader interface {
	Handle(ctx context.Context, query queries.GetMenuQuery) ([]queries.MenuItemView, error)
}

type Carts interface {
	StartSession() (kernel.UUID, error)
	EndSession(id kernel.UUID)
	Add(ctx context.Context, sessionID kernel.UUID, itemID menu.ItemID, qty int) (shopping.CartView, error)
	RemoveByName(sessionID kernel.UUID, name string, qty int) (shopping.CartView, error)
	View(sessionID kernel.UUID) (shopping.CartView, error)
}

type Checkout interface {
	Preview(ctx context.Context, sessionID kernel.UUID, parcel bool) (checkout.Quote, error)
	PlaceOrder(ctx context.Context, req checkout.Request, terminal payment.Terminal) (checkout.Receipt, error)
}

type RevenueReportReader interface {
	Handle(ctx context.Context, query queries.GetRevenueReportQuery) (queries.RevenueReport, error)
}

type OrderHistoryReader interface {
	Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.OrderSummary, error)
}

// Dependencies are the use cases the till drives.
type Dependencies struct {
	Menu     MenuReader
	Carts    Carts
	Checkout Checkout
	Revenue  RevenueReportReader
	History  OrderHistoryReader
}

func (d Dependencies) validate() error {
	switch {
	case d.Menu == nil:
		return errs.NewValueIsRequiredError("menu reader")
	case d.Carts == nil:
		return errs.NewValueIsRequiredError("carts")
	case d.Checkout == nil:
		return errs.NewValueIsRequiredError("checkout")
	case d.Revenue == nil:
		return errs.NewValueIsRequiredError("revenue report reader")
	case d.History == nil:
		return errs.NewValueIsRequiredError("order history reader")
	}
	return nil
}

const mainMenu = `
1.Menu
2.Add Items
3.Remove Item
4.Show Cart
5.Generate Bill
6.Show Revenue
7.Search Order History
8.Exit
`

// Till runs one cashier session. It is not safe for concurrent use.
type Till struct {
	deps    Dependencies
	in      *bufio.Scanner
	out     io.Writer
	session kernel.UUID
	logger  *slog.Logger
}

func NewTill(deps Dependencies, in io.Reader, out io.Writer) (*Till, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if in == nil {
		return nil, errs.NewValueIsRequiredError("input")
	}
	if out == nil {
		return nil, errs.NewValueIsRequiredError("output")
	}
	return &Till{
		deps:   deps,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: slog.Default().With("component", "till"),
	}, nil
}

// Run serves the menu loop until the cashier exits, input ends or ctx is
// cancelled. Only I/O failures and cancellation are returned; everything
// else is reported on screen and the loop carries on.
func (t *Till) Run(ctx context.Context) error {
	session, err := t.deps.Carts.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start till session: %w", err)
	}
	t.session = session
	defer t.deps.Carts.EndSession(session)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		t.print(mainMenu)
		choice, err := t.prompt("Choice: ")
		if err != nil {
			return t.finish(err)
		}

		switch choice {
		case "1":
			err = t.showMenu(ctx)
		case "2":
			if err = t.showMenu(ctx); err == nil {
				err = t.addItems(ctx)
			}
		case "3":
			err = t.removeItem()
		case "4":
			err = t.showCart(ctx)
		case "5":
			err = t.generateBill(ctx)
		case "6":
			err = t.showRevenue(ctx)
		case "7":
			err = t.searchHistory(ctx)
		case "8":
			t.println("Thank you!")
			return nil
		default:
			t.println("Invalid choice")
		}

		if err != nil {
			var inErr *inputError
			switch {
			case errors.Is(err, io.EOF):
				return t.finish(err)
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				return err
			case errors.As(err, &inErr):
				return inErr.err
			}
			t.report(ctx, err)
		}
	}
}

func (t *Till) finish(err error) error {
	if errors.Is(err, io.EOF) {
		t.println("Thank you!")
		return nil
	}
	return err
}

// report shows a failed action. Business and validation errors are shown
// as they are; anything else is logged and summarised.
func (t *Till) report(ctx context.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrEmptyCart),
		errors.Is(err, errs.ErrInsufficientStock):
		t.println(reason(err))
	default:
		t.logger.ErrorContext(ctx, "till action failed", "error", err)
		t.println("Something went wrong, please try again.")
	}
}

func (t *Till) showMenu(ctx context.Context) error {
	items, err := t.deps.Menu.Handle(ctx, queries.NewGetMenuQuery(""))
	if err != nil {
		return err
	}

	t.println("\n------ CANTEEN MENU ------")
	w := t.table()
	fmt.Fprintln(w, "ID\tItem\tPrice\tStock\t")
	for _, item := range items {
		stock := strconv.Itoa(item.Stock)
		if !item.Available() {
			stock = "sold out"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n", item.ID, item.Name, item.Price, stock)
	}
	return w.Flush()
}

func (t *Till) addItems(ctx context.Context) error {
	for {
		if err := t.addOne(ctx); err != nil {
			if !isUserError(err) {
				return err
			}
			t.println(reason(err))
		}

		more, err := t.prompt("Add more items? (y/n): ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(more, "y") {
			return nil
		}
	}
}

func (t *Till) addOne(ctx context.Context) error {
	rawID, err := t.prompt("Enter item ID: ")
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id", errors.New("Invalid item ID"))
	}

	rawQty, err := t.prompt("Enter quantity: ")
	if err != nil {
		return err
	}
	qty, err := strconv.Atoi(rawQty)
	if err != nil || qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("Invalid quantity"))
	}

	if _, err := t.deps.Carts.Add(ctx, t.session, menu.ItemID(id), qty); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewValueIsInvalidErrorWithCause("item id", errors.New("Invalid item ID"))
		}
		return err
	}
	t.println("Item added")
	return nil
}

func (t *Till) removeItem() error {
	view, err := t.deps.Carts.View(t.session)
	if err != nil {
		return err
	}
	if len(view.Lines) == 0 {
		t.println("Cart empty")
		return nil
	}
	if err := t.printLines(view); err != nil {
		return err
	}

	name, err := t.prompt("Enter item name: ")
	if err != nil {
		return err
	}
	rawQty, err := t.prompt("Qty to remove: ")
	if err != nil {
		return err
	}
	qty, err := strconv.Atoi(rawQty)
	if err != nil || qty <= 0 {
		t.println("Invalid quantity")
		return nil
	}

	if _, err := t.deps.Carts.RemoveByName(t.session, name, qty); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			t.println("Item not found")
			return nil
		}
		return err
	}
	t.println("Cart updated")
	return nil
}

func (t *Till) showCart(ctx context.Context) error {
	view, err := t.deps.Carts.View(t.session)
	if err != nil {
		return err
	}
	if len(view.Lines) == 0 {
		t.println("\nCart is empty!")
		return nil
	}
	if err := t.printLines(view); err != nil {
		return err
	}

	quote, err := t.deps.Checkout.Preview(ctx, t.session, false)
	if err != nil {
		return err
	}
	w := t.table()
	fmt.Fprintf(w, "Subtotal:\t%s\t\n", quote.Bill.Subtotal())
	if !quote.Bill.Discount().IsZero() {
		fmt.Fprintf(w, "Discount:\t-%s\t\n", quote.Bill.Discount())
	}
	fmt.Fprintf(w, "GST:\t%s\t\n", quote.Bill.Tax())
	fmt.Fprintf(w, "Total:\t%s\t\n", quote.Bill.GrandTotal())
	return w.Flush()
}

func (t *Till) printLines(view shopping.CartView) error {
	t.println("")
	w := t.table()
	fmt.Fprintln(w, "Item\tPrice\tQty\tTotal\t")
	for _, l := range view.Lines {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t\n", l.Name(), l.UnitPrice(), l.Quantity(), l.Total())
	}
	return w.Flush()
}

func (t *Till) showRevenue(ctx context.Context) error {
	query, err := queries.NewGetRevenueReportQuery(zeroTime, 0)
	if err != nil {
		return err
	}
	report, err := t.deps.Revenue.Handle(ctx, query)
	if err != nil {
		return err
	}

	t.printf("\nTotal Revenue: %s\n", report.TotalRevenue)
	t.printf("Orders: %d, average ticket: %s\n", report.OrderCount, report.AverageTicket)
	if len(report.TopSellers) == 0 {
		return nil
	}

	t.println("\nBest sellers")
	w := t.table()
	for i, s := range report.TopSellers {
		fmt.Fprintf(w, "%d.\t%s\t%d sold\t%s\t\n", i+1, s.Name, s.Quantity, s.Revenue)
	}
	return w.Flush()
}

func (t *Till) searchHistory(ctx context.Context) error {
	t.println("\n------ ORDER HISTORY SEARCH ------")
	raw, err := t.prompt("Enter Customer Mobile Number: ")
	if err != nil {
		return err
	}
	contact, err := kernel.NewContactNumber(raw)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderHistoryByContactQuery(contact)
	if err != nil {
		return err
	}

	orders, err := t.deps.History.Handle(ctx, query)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		t.println("No orders found for this mobile number.")
		return nil
	}

	t.printf("\nOrders for Mobile: %s\n", contact)
	w := t.table()
	fmt.Fprintln(w, "Order ID\tDate\tAmount\tStatus\t")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n", o.ID, o.CreatedAt.Local().Format(dateLayout), o.GrandTotal, o.Status)
	}
	return w.Flush()
}

// reason is the text shown to the cashier for a rejected input.
func reason(err error) string {
	var invalid *errs.ValueIsInvalidError
	if errors.As(err, &invalid) && invalid.Cause != nil {
		return invalid.Cause.Error()
	}
	return err.Error()
}

func isUserError(err error) bool {
	return errors.Is(err, errs.ErrValidation) ||
		errors.Is(err, errs.ErrInsufficientStock) ||
		errors.Is(err, errs.ErrObjectNotFound)
}
