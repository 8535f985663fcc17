package services_test

import (
	"testing"
	"time"

	"shop_admin/internal/models"
	"shop_admin/internal/redis"
	"shop_admin/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAssistant(t *testing.T) (*fixture, services.AssistantService, *memSessionStore) {
	t.Helper()
	f := setup(t)
	store := newMemSessionStore()
	assistant := services.NewAssistantService(store, f.productService, f.customerService, f.orderService, time.Hour)
	return f, assistant, store
}

func TestAssistantCartFlow(t *testing.T) {
	f, assistant, _ := setupAssistant(t)
	product := f.mustCreateProduct(t, "Classic Runner", 50, 10)

	session, err := assistant.StartSession("555-0199", "New Caller")
	require.NoError(t, err)
	require.NotEmpty(t, session.SessionID)

	session, err = assistant.AddToCart(session.SessionID, redis.CartItem{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, session.Items, 1)

	// Adding the same product again merges quantities.
	session, err = assistant.AddToCart(session.SessionID, redis.CartItem{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	require.Len(t, session.Items, 1)
	assert.Equal(t, 3, session.Items[0].Quantity)

	order, err := assistant.Submit(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, 150.0, order.FinalAmount)

	// The customer was created from the session's phone number.
	customer, err := f.customerService.GetCustomerByPhone("555-0199")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, order.CustomerID)

	// Submit consumes the session.
	_, err = assistant.GetSession(session.SessionID)
	assert.ErrorIs(t, err, redis.ErrSessionNotFound)
}

func TestAssistantSubmitUsesExistingCustomer(t *testing.T) {
	f, assistant, _ := setupAssistant(t)
	product := f.mustCreateProduct(t, "Classic Runner", 50, 10)

	session, err := assistant.StartSession(f.customer.Phone, "ignored")
	require.NoError(t, err)
	_, err = assistant.AddToCart(session.SessionID, redis.CartItem{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	order, err := assistant.Submit(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, f.customer.ID, order.CustomerID)
}

func TestAssistantValidation(t *testing.T) {
	f, assistant, _ := setupAssistant(t)
	product := f.mustCreateProduct(t, "Classic Runner", 50, 10)

	session, err := assistant.StartSession("555-0199", "New Caller")
	require.NoError(t, err)

	_, err = assistant.AddToCart(session.SessionID, redis.CartItem{ProductID: 999, Quantity: 1})
	assert.ErrorIs(t, err, models.ErrProductNotFound)

	_, err = assistant.AddToCart(session.SessionID, redis.CartItem{ProductID: product.ID, Quantity: 0})
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	_, err = assistant.Submit(session.SessionID)
	assert.ErrorIs(t, err, services.ErrEmptyCart)

	_, err = assistant.AddToCart("missing", redis.CartItem{ProductID: product.ID, Quantity: 1})
	assert.ErrorIs(t, err, redis.ErrSessionNotFound)

	require.NoError(t, assistant.EndSession(session.SessionID))
	_, err = assistant.GetSession(session.SessionID)
	assert.ErrorIs(t, err, redis.ErrSessionNotFound)
}
