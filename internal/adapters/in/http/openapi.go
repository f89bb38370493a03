package http

import (
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
)

// BasePath is where the operations of openapi.yaml are mounted.
const BasePath = "/api/v1"

//go:embed openapi.yaml
var openAPIDocument []byte

// LoadOpenAPI parses the embedded API description and checks it is a valid
// OpenAPI 3 document.
func LoadOpenAPI() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}

// ValidateRequests rejects with 400 any request whose path parameters, query
// parameters or JSON body do not match doc. Routes doc does not describe pass
// through unchanged.
func ValidateRequests(doc *openapi3.T) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			route, ok := routeOf(doc, ctx)
			if !ok {
				return next(ctx)
			}

			pathParams := make(map[string]string, len(ctx.ParamNames()))
			for _, name := range ctx.ParamNames() {
				pathParams[name] = ctx.Param(name)
			}

			err := openapi3filter.ValidateRequest(ctx.Request().Context(), &openapi3filter.RequestValidationInput{
				Request:    ctx.Request(),
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return ctx.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(err),
				})
			}
			return next(ctx)
		}
	}
}

// routeOf finds the operation of doc that echo matched for ctx.
func routeOf(doc *openapi3.T, ctx echo.Context) (*routers.Route, bool) {
	path, ok := strings.CutPrefix(ctx.Path(), BasePath)
	if !ok {
		return nil, false
	}
	path = openAPIPath(path)

	item := doc.Paths.Value(path)
	if item == nil {
		return nil, false
	}
	method := ctx.Request().Method
	op := item.GetOperation(method)
	if op == nil {
		return nil, false
	}

	return &routers.Route{
		Spec:      doc,
		Path:      path,
		PathItem:  item,
		Method:    method,
		Operation: op,
	}, true
}

// openAPIPath rewrites echo's :name segments as {name}.
func openAPIPath(echoPath string) string {
	segments := strings.Split(echoPath, "/")
	for i, segment := range segments {
		if name, ok := strings.CutPrefix(segment, ":"); ok {
			segments[i] = "{" + name + "}"
		}
	}
	return strings.Join(segments, "/")
}

// validationMessage keeps the schema dump of kin-openapi errors out of the
// response and names the offending parameter or body field instead.
func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return err.Error()
	}

	subject := "request body"
	if reqErr.Parameter != nil {
		subject = fmt.Sprintf("parameter %q", reqErr.Parameter.Name)
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr, &schemaErr) {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			subject += fmt.Sprintf(" field %q", strings.Join(pointer, "."))
		}
		return fmt.Sprintf("%s: %s", subject, schemaErr.Reason)
	}

	if reqErr.Reason != "" {
		return fmt.Sprintf("%s: %s", subject, reqErr.Reason)
	}
	return reqErr.Error()
}
