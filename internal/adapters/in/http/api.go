package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface is the set of operations described by openapi.yaml.
// Path and query parameters arrive already bound and typed.
type ServerInterface interface {
	// (GET /menu)
	GetMenu(ctx echo.Context, params GetMenuParams) error
	// (POST /menu)
	AddMenuItem(ctx echo.Context) error
	// (PUT /menu/{id}/stock)
	SetStock(ctx echo.Context, id int64) error

	// (POST /sessions)
	StartSession(ctx echo.Context) error
	// (DELETE /sessions/{session})
	EndSession(ctx echo.Context, session string) error
	// (GET /sessions/{session}/cart)
	GetCart(ctx echo.Context, session string, params GetCartParams) error
	// (POST /sessions/{session}/cart/items)
	AddCartItem(ctx echo.Context, session string) error
	// (PUT /sessions/{session}/cart/items/{id})
	SetCartItem(ctx echo.Context, session string, id int64) error
	// (DELETE /sessions/{session}/cart/items/{id})
	RemoveCartItem(ctx echo.Context, session string, id int64, params RemoveCartItemParams) error
	// (POST /sessions/{session}/checkout)
	Checkout(ctx echo.Context, session string) error

	// (GET /orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error
	// (GET /orders/active)
	GetActiveOrders(ctx echo.Context) error
	// (GET /orders/{id})
	GetOrder(ctx echo.Context, id int64) error
	// (PATCH /orders/{id}/status)
	SetOrderStatus(ctx echo.Context, id int64) error
	// (POST /orders/{id}/feedback)
	SubmitFeedback(ctx echo.Context, id int64) error

	// (GET /feedback)
	GetFeedbacks(ctx echo.Context, params GetFeedbacksParams) error
	// (GET /me/pending-feedback)
	GetPendingFeedback(ctx echo.Context) error
	// (GET /reports/revenue)
	GetRevenueReport(ctx echo.Context, params GetRevenueReportParams) error
}

type GetMenuParams struct {
	Category *string `form:"category,omitempty" json:"category,omitempty"`
}

type GetCartParams struct {
	Parcel *bool `form:"parcel,omitempty" json:"parcel,omitempty"`
}

type RemoveCartItemParams struct {
	// Quantity of portions to remove; the whole line when absent.
	Quantity *int `form:"quantity,omitempty" json:"quantity,omitempty"`
}

type GetOrdersParams struct {
	Contact *string `form:"contact,omitempty" json:"contact,omitempty"`
}

type GetFeedbacksParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

type GetRevenueReportParams struct {
	Since *time.Time `form:"since,omitempty" json:"since,omitempty"`
	Top   *int       `form:"top,omitempty" json:"top,omitempty"`
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation of si on router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL mounts every operation of si under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/menu", w.GetMenu)
	router.POST(baseURL+"/menu", w.AddMenuItem)
	router.PUT(baseURL+"/menu/:id/stock", w.SetStock)

	router.POST(baseURL+"/sessions", w.StartSession)
	router.DELETE(baseURL+"/sessions/:session", w.EndSession)
	router.GET(baseURL+"/sessions/:session/cart", w.GetCart)
	router.POST(baseURL+"/sessions/:session/cart/items", w.AddCartItem)
	router.PUT(baseURL+"/sessions/:session/cart/items/:id", w.SetCartItem)
	router.DELETE(baseURL+"/sessions/:session/cart/items/:id", w.RemoveCartItem)
	router.POST(baseURL+"/sessions/:session/checkout", w.Checkout)

	router.GET(baseURL+"/orders", w.GetOrders)
	router.GET(baseURL+"/orders/active", w.GetActiveOrders)
	router.GET(baseURL+"/orders/:id", w.GetOrder)
	router.PATCH(baseURL+"/orders/:id/status", w.SetOrderStatus)
	router.POST(baseURL+"/orders/:id/feedback", w.SubmitFeedback)

	router.GET(baseURL+"/feedback", w.GetFeedbacks)
	router.GET(baseURL+"/me/pending-feedback", w.GetPendingFeedback)
	router.GET(baseURL+"/reports/revenue", w.GetRevenueReport)
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func invalidParam(ctx echo.Context, name string, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("Invalid format for parameter %s: %s", name, err),
	})
}

func bindPath(ctx echo.Context, name string, dest any) error {
	return runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
}

func (w *ServerInterfaceWrapper) GetMenu(ctx echo.Context) error {
	var params GetMenuParams
	if err := runtime.BindQueryParameter("form", true, false, "category", ctx.QueryParams(), &params.Category); err != nil {
		return invalidParam(ctx, "category", err)
	}
	return w.Handler.GetMenu(ctx, params)
}

func (w *ServerInterfaceWrapper) AddMenuItem(ctx echo.Context) error {
	return w.Handler.AddMenuItem(ctx)
}

func (w *ServerInterfaceWrapper) SetStock(ctx echo.Context) error {
	var id int64
	if err := bindPath(ctx, "id", &id); err != nil {
		return invalidParam(ctx, "id", err)
	}
	return w.Handler.SetStock(ctx, id)
}

func (w *ServerInterfaceWrapper) StartSession(ctx echo.Context) error {
	return w.Handler.StartSession(ctx)
}

func (w *ServerInterfaceWrapper) EndSession(ctx echo.Context) error {
	var session string
	if err := bindPath(ctx, "session", &session); err != nil {
		return invalidParam(ctx, "session", err)
	}
	return w.Handler.EndSession(ctx, session)
}

func (w *ServerInterfaceWrapper) GetCart(ctx echo.Context) error {
	var session string
	if err := bindPath(ctx, "session", &session); err != nil {
		return invalidParam(ctx, "session", err)
	}
	var params GetCartParams
	if err := runtime.BindQueryParameter("form", true, false, "parcel", ctx.QueryParams(), &params.Parcel); err != nil {
		return invalidParam(ctx, "parcel", err)
	}
	return w.Handler.GetCart(ctx, session, params)
}

func (w *ServerInterfaceWrapper) AddCartItem(ctx echo.Context) error {
	var session string
	if err := bindPath(ctx, "session", &session); err != nil {
		return invalidParam(ctx, "session", err)
	}
	return w.Handler.AddCartItem(ctx, session)
}

func (w *ServerInterfaceWrapper) SetCartItem(ctx echo.Context) error {
	var session string
	if err := bindPath(ctx, "session", &session); err != nil {
		return invalidParam(ctx, "session", err)
	}
	var id int64
	if err := bindPath(ctx, "id", &id); err != nil {
		return invalidParam(ctx, "id", err)
	}
	return w.Handler.SetCartItem(ctx, session, id)
}

func (w *ServerInterfaceWrapper) RemoveCartItem(ctx echo.Context) error {
	var session string
	if err := bindPath(ctx, "session", &session); err != nil {
		return invalidParam(ctx, "session", err)
	}
	var id int64
	if err := bindPath(ctx, "id", &id); err != nil {
		return invalidParam(ctx, "id", err)
	}
	var params RemoveCartItemParams
	if err := runtime.BindQueryParameter("form", true, false, "quantity", ctx.QueryParams(), &params.Quantity); err != nil {
		return invalidParam(ctx, "quantity", err)
	}
	return w.Handler.RemoveCartItem(ctx, session, id, params)
}

func (w *ServerInterfaceWrapper) Checkout(ctx echo.Context) error {
	var session string
	if err := bindPath(ctx, "session", &session); err != nil {
		return invalidParam(ctx, "session", err)
	}
	return w.Handler.Checkout(ctx, session)
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var params GetOrdersParams
	if err := runtime.BindQueryParameter("form", true, false, "contact", ctx.QueryParams(), &params.Contact); err != nil {
		return invalidParam(ctx, "contact", err)
	}
	return w.Handler.GetOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) GetActiveOrders(ctx echo.Context) error {
	return w.Handler.GetActiveOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var id int64
	if err := bindPath(ctx, "id", &id); err != nil {
		return invalidParam(ctx, "id", err)
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) SetOrderStatus(ctx echo.Context) error {
	var id int64
	if err := bindPath(ctx, "id", &id); err != nil {
		return invalidParam(ctx, "id", err)
	}
	return w.Handler.SetOrderStatus(ctx, id)
}

func (w *ServerInterfaceWrapper) SubmitFeedback(ctx echo.Context) error {
	var id int64
	if err := bindPath(ctx, "id", &id); err != nil {
		return invalidParam(ctx, "id", err)
	}
	return w.Handler.SubmitFeedback(ctx, id)
}

func (w *ServerInterfaceWrapper) GetFeedbacks(ctx echo.Context) error {
	var params GetFeedbacksParams
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return invalidParam(ctx, "limit", err)
	}
	return w.Handler.GetFeedbacks(ctx, params)
}

func (w *ServerInterfaceWrapper) GetPendingFeedback(ctx echo.Context) error {
	return w.Handler.GetPendingFeedback(ctx)
}

func (w *ServerInterfaceWrapper) GetRevenueReport(ctx echo.Context) error {
	var params GetRevenueReportParams
	if err := runtime.BindQueryParameter("form", true, false, "since", ctx.QueryParams(), &params.Since); err != nil {
		return invalidParam(ctx, "since", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "top", ctx.QueryParams(), &params.Top); err != nil {
		return invalidParam(ctx, "top", err)
	}
	return w.Handler.GetRevenueReport(ctx, params)
}
