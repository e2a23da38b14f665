// Package parser decodes loosely-typed order payloads into domain orders.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"order-validator/internal/domain"
)

// orderRequest mirrors the wire shape of an order payload. Pointer fields
// distinguish absent input from zero values.
type orderRequest struct {
	OrderID       string           `json:"order_id"`
	CustomerID    string           `json:"customer_id" validate:"required"`
	DeclaredTotal *decimal.Decimal `json:"declared_total" validate:"required"`
	TotalAmount   *decimal.Decimal `json:"total_amount"` // accepted alias for declared_total
	Items         []itemRequest    `json:"items" validate:"required,min=1,dive"`
}

type itemRequest struct {
	ProductName *string          `json:"product_name" validate:"required"`
	Quantity    *int             `json:"quantity" validate:"required"`
	UnitPrice   *decimal.Decimal `json:"unit_price" validate:"required"`
}

var validate = newValidator()

// newValidator returns a configured validator with json-tag field names and
// the order-level structural check registered.
func newValidator() *validatorv10.Validate {
	v := validatorv10.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(orderStructValidation, orderRequest{})

	return v
}

// orderStructValidation rejects negative declared totals. Reconciliation of
// the declared total against the item subtotals is a business rule and runs
// later, in the item stage.
func orderStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(orderRequest)
	if req.DeclaredTotal != nil && req.DeclaredTotal.IsNegative() {
		sl.ReportError(req.DeclaredTotal, "declared_total", "DeclaredTotal", "gte0", "")
	}
}

// Parse decodes a loosely-typed payload into an Order. It performs only
// structural and type checks; existence, totals, and credit are business
// validation and belong to the pipeline stages. Any returned error is a
// *domain.MalformedOrderError.
func Parse(payload map[string]any) (*domain.Order, error) {
	if len(payload) == 0 {
		return nil, domain.NewMalformedOrderError("empty payload")
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.NewMalformedOrderError(fmt.Sprintf("unencodable payload: %v", err))
	}

	var req orderRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, domain.NewMalformedOrderError(decodeReason(err))
	}

	// The original wire format named the field total_amount.
	if req.DeclaredTotal == nil {
		req.DeclaredTotal = req.TotalAmount
	}

	if err := validate.Struct(req); err != nil {
		return nil, domain.NewMalformedOrderError(fieldReasons(err))
	}

	order := &domain.Order{
		ID:            req.OrderID,
		CustomerID:    req.CustomerID,
		DeclaredTotal: *req.DeclaredTotal,
		Items:         make([]domain.LineItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, domain.LineItem{
			ProductName: *item.ProductName,
			Quantity:    *item.Quantity,
			UnitPrice:   *item.UnitPrice,
		})
	}
	return order, nil
}

// decodeReason turns a JSON decoding failure into a field-level reason.
func decodeReason(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "payload"
		}
		return fmt.Sprintf("field %s must decode as %s, got %s", field, typeErr.Type, typeErr.Value)
	}
	return err.Error()
}

// fieldReasons flattens validator errors into a single reason string.
func fieldReasons(err error) string {
	var verrs validatorv10.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	reasons := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "orderRequest.")
		switch fe.Tag() {
		case "required":
			reasons = append(reasons, fmt.Sprintf("%s is required", field))
		case "min":
			reasons = append(reasons, fmt.Sprintf("%s must not be empty", field))
		case "gte0":
			reasons = append(reasons, fmt.Sprintf("%s must not be negative", field))
		default:
			reasons = append(reasons, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
		}
	}
	return strings.Join(reasons, "; ")
}
