package http

import (
	"time"

	"canteen/internal/core/application/checkout"
	"canteen/internal/core/application/shopping"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/cart"
	"canteen/internal/core/domain/model/order"
)

// Money values travel as decimal strings with two places, e.g. "231.00".

type MenuItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Available   bool   `json:"available"`
}

type NewMenuItem struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type StockLevel struct {
	Stock int `json:"stock"`
}

type Created struct {
	ID int64 `json:"id"`
}

type Session struct {
	ID string `json:"session_id"`
}

type CartItemInput struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

type QuantityInput struct {
	Quantity int `json:"quantity"`
}

type Line struct {
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	UnitPrice  string `json:"unit_price"`
	Quantity   int    `json:"quantity"`
	Total      string `json:"total"`
}

type Bill struct {
	Subtotal   string `json:"subtotal"`
	Discount   string `json:"discount"`
	Tax        string `json:"tax"`
	ParcelFee  string `json:"parcel_fee"`
	GrandTotal string `json:"grand_total"`
}

type Cart struct {
	SessionID string `json:"session_id"`
	Lines     []Line `json:"lines"`
	Subtotal  string `json:"subtotal"`
	Bill      *Bill  `json:"bill,omitempty"`
}

type CheckoutInput struct {
	CustomerName string       `json:"customer_name"`
	Contact      string       `json:"contact"`
	Parcel       bool         `json:"parcel"`
	Payment      PaymentInput `json:"payment"`
}

type Receipt struct {
	OrderID       int64     `json:"order_id"`
	Reference     string    `json:"reference"`
	CustomerName  string    `json:"customer_name"`
	Contact       string    `json:"contact"`
	Lines         []Line    `json:"lines"`
	Bill          Bill      `json:"bill"`
	PaymentMethod string    `json:"payment_method"`
	Change        string    `json:"change"`
	PlacedAt      time.Time `json:"placed_at"`
	CartCleared   bool      `json:"cart_cleared"`
}

type OrderSummary struct {
	ID            int64     `json:"id"`
	UserID        *string   `json:"user_id,omitempty"`
	CustomerName  string    `json:"customer_name"`
	Contact       string    `json:"contact"`
	CreatedAt     time.Time `json:"created_at"`
	GrandTotal    string    `json:"grand_total"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
}

type OrderDetails struct {
	OrderSummary
	Subtotal  string `json:"subtotal"`
	Discount  string `json:"discount"`
	Tax       string `json:"tax"`
	ParcelFee string `json:"parcel_fee"`
	Change    string `json:"change"`
	Items     []Line `json:"items"`
}

type StatusInput struct {
	Status string `json:"status"`
}

type FeedbackInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type Feedback struct {
	OrderID      int64     `json:"order_id"`
	UserID       *string   `json:"user_id,omitempty"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type TopSeller struct {
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Revenue    string `json:"revenue"`
}

type RevenueReport struct {
	TotalRevenue  string      `json:"total_revenue"`
	OrderCount    int         `json:"order_count"`
	AverageTicket string      `json:"average_ticket"`
	TopSellers    []TopSeller `json:"top_sellers"`
}

func toMenuItems(items []queries.MenuItemView) []MenuItem {
	out := make([]MenuItem, len(items))
	for i, item := range items {
		out[i] = MenuItem{
			ID:          int64(item.ID),
			Name:        item.Name,
			Price:       item.Price.String(),
			Stock:       item.Stock,
			Category:    item.Category,
			Description: item.Description,
			Available:   item.Available(),
		}
	}
	return out
}

func toLines(lines []cart.Line) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = Line{
			MenuItemID: int64(l.ItemID()),
			Name:       l.Name(),
			UnitPrice:  l.UnitPrice().String(),
			Quantity:   l.Quantity(),
			Total:      l.Total().String(),
		}
	}
	return out
}

func toBill(b order.Bill) Bill {
	return Bill{
		Subtotal:   b.Subtotal().String(),
		Discount:   b.Discount().String(),
		Tax:        b.Tax().String(),
		ParcelFee:  b.ParcelFee().String(),
		GrandTotal: b.GrandTotal().String(),
	}
}

func toCart(v shopping.CartView, quote *checkout.Quote) Cart {
	c := Cart{
		SessionID: v.SessionID.String(),
		Lines:     toLines(v.Lines),
		Subtotal:  v.Subtotal().String(),
	}
	if quote != nil {
		bill := toBill(quote.Bill)
		c.Bill = &bill
	}
	return c
}

func toReceipt(r checkout.Receipt) Receipt {
	return Receipt{
		OrderID:       int64(r.OrderID),
		Reference:     r.Reference.Short(),
		CustomerName:  r.CustomerName,
		Contact:       r.Contact.String(),
		Lines:         toLines(r.Lines),
		Bill:          toBill(r.Bill),
		PaymentMethod: r.Settlement.Method().String(),
		Change:        r.Settlement.Change().String(),
		PlacedAt:      r.PlacedAt,
		CartCleared:   r.CartCleared,
	}
}

func toOrderSummary(o queries.OrderSummary) OrderSummary {
	var userID *string
	if o.UserID != nil {
		id := string(*o.UserID)
		userID = &id
	}
	return OrderSummary{
		ID:            int64(o.ID),
		UserID:        userID,
		CustomerName:  o.CustomerName,
		Contact:       o.Contact,
		CreatedAt:     o.CreatedAt,
		GrandTotal:    o.GrandTotal.String(),
		PaymentMethod: o.PaymentMethod.String(),
		Status:        o.Status.String(),
	}
}

func toOrderSummaries(orders []queries.OrderSummary) []OrderSummary {
	out := make([]OrderSummary, len(orders))
	for i, o := range orders {
		out[i] = toOrderSummary(o)
	}
	return out
}

func toOrderDetails(o queries.OrderDetails) OrderDetails {
	items := make([]Line, len(o.Items))
	for i, item := range o.Items {
		items[i] = Line{
			MenuItemID: int64(item.MenuItemID),
			Name:       item.Name,
			UnitPrice:  item.UnitPrice.String(),
			Quantity:   item.Quantity,
			Total:      item.Total.String(),
		}
	}
	return OrderDetails{
		OrderSummary: toOrderSummary(o.OrderSummary),
		Subtotal:     o.Subtotal.String(),
		Discount:     o.Discount.String(),
		Tax:          o.Tax.String(),
		ParcelFee:    o.ParcelFee.String(),
		Change:       o.Change.String(),
		Items:        items,
	}
}

func toFeedbacks(feedbacks []queries.FeedbackView) []Feedback {
	out := make([]Feedback, len(feedbacks))
	for i, f := range feedbacks {
		var userID *string
		if f.UserID != nil {
			id := string(*f.UserID)
			userID = &id
		}
		out[i] = Feedback{
			OrderID:      int64(f.OrderID),
			UserID:       userID,
			CustomerName: f.CustomerName,
			Rating:       f.Rating,
			Comment:      f.Comment,
			SubmittedAt:  f.SubmittedAt,
		}
	}
	return out
}

func toRevenueReport(r queries.RevenueReport) RevenueReport {
	sellers := make([]TopSeller, len(r.TopSellers))
	for i, s := range r.TopSellers {
		sellers[i] = TopSeller{
			MenuItemID: int64(s.MenuItemID),
			Name:       s.Name,
			Quantity:   s.Quantity,
			Revenue:    s.Revenue.String(),
		}
	}
	return RevenueReport{
		TotalRevenue:  r.TotalRevenue.String(),
		OrderCount:    r.OrderCount,
		AverageTicket: r.AverageTicket.String(),
		TopSellers:    sellers,
	}
}
