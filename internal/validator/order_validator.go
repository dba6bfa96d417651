package validator

import (
	"context"
	"strconv"
	"strings"

	"app/internal/usecase"
)

type orderValidator struct{}

// Usecaseは interface を依存注入
func NewOrderValidator() usecase.OrderValidator {
	return &orderValidator{}
}

// 注文確定の入力を検証。
// トランザクションに入る前に呼ぶ。在庫チェックはここではやらない。
func (v *orderValidator) ValidatePlaceOrder(ctx context.Context, in usecase.PlaceOrderInput) error {
	fields := usecase.FieldErrors{}

	if len(in.Items) == 0 {
		fields["items"] = "items are required"
	}
	for i, line := range in.Items {
		if line.ProductID <= 0 {
			fields["items."+strconv.Itoa(i)+".id"] = "product id is required"
		}
		if line.Quantity < 1 {
			fields["items."+strconv.Itoa(i)+".quantity"] = "quantity must be a positive integer"
		}
	}

	if in.TotalPrice <= 0 {
		fields["total_price"] = "total price must be positive"
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		fields["payment_method"] = "payment method is required"
	}
	if strings.TrimSpace(in.ShippingAddress) == "" {
		fields["shipping_address"] = "shipping address is required"
	}

	if len(fields) > 0 {
		return usecase.NewValidationError(fields)
	}
	return nil
}
