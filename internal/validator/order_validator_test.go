package validator_test

import (
	"context"
	"testing"

	"app/internal/usecase"
	"app/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePlaceOrder_OK(t *testing.T) {
	v := validator.NewOrderValidator()

	err := v.ValidatePlaceOrder(context.Background(), usecase.PlaceOrderInput{
		Items:           []usecase.OrderLineInput{{ProductID: 1, Quantity: 2}},
		TotalPrice:      36.00,
		PaymentMethod:   "Visa",
		ShippingAddress: "1-2-3 Shibuya, Tokyo",
	})
	assert.NoError(t, err)
}

func TestValidatePlaceOrder_CollectsAllFieldErrors(t *testing.T) {
	v := validator.NewOrderValidator()

	//全部ダメな入力。エラーは1個ずつではなくまとめて返す。
	err := v.ValidatePlaceOrder(context.Background(), usecase.PlaceOrderInput{
		Items:           []usecase.OrderLineInput{{ProductID: 0, Quantity: -1}},
		TotalPrice:      0,
		PaymentMethod:   "   ",
		ShippingAddress: "",
	})

	var vErr *usecase.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "items.0.id")
	assert.Contains(t, vErr.Fields, "items.0.quantity")
	assert.Contains(t, vErr.Fields, "total_price")
	assert.Contains(t, vErr.Fields, "payment_method")
	assert.Contains(t, vErr.Fields, "shipping_address")
}

func TestValidatePlaceOrder_EmptyItems(t *testing.T) {
	v := validator.NewOrderValidator()

	err := v.ValidatePlaceOrder(context.Background(), usecase.PlaceOrderInput{
		TotalPrice:      10,
		PaymentMethod:   "Visa",
		ShippingAddress: "Tokyo",
	})

	var vErr *usecase.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "items")
}
