package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/homecraft/homecraft-cli/internal/mocks"
	"github.com/homecraft/homecraft-cli/internal/model"
	"github.com/homecraft/homecraft-cli/internal/testutil"
)

func newCartFixture(cartProducts []model.CartProduct) (*Cart, *model.Session, *mocks.CartAPI) {
	session := model.NewSession()
	session.User = &model.User{ID: 1, CartProducts: cartProducts}
	session.IsAuthenticated = true
	session.State = model.StateAuthenticated

	api := &mocks.CartAPI{}
	return NewCart(session, api, testutil.MakeNoopLogger()), session, api
}

func TestCart_Add_IncrementsExistingLine(t *testing.T) {
	ctx := context.Background()
	cart, session, api := newCartFixture([]model.CartProduct{{ProductID: 7, Quantity: 1}})

	api.On("AddToCart", mock.Anything, int64(7), 2).Return(nil)

	performed, err := cart.Add(ctx, 7, 2)
	require.NoError(t, err)
	assert.True(t, performed)
	assert.Equal(t, []model.CartProduct{{ProductID: 7, Quantity: 3}}, session.User.CartProducts)
}

func TestCart_Add_AppendsNewLine(t *testing.T) {
	ctx := context.Background()
	cart, session, api := newCartFixture([]model.CartProduct{{ProductID: 3, Quantity: 1}})

	api.On("AddToCart", mock.Anything, int64(7), 2).Return(nil)

	performed, err := cart.Add(ctx, 7, 2)
	require.NoError(t, err)
	assert.True(t, performed)
	assert.Equal(t, []model.CartProduct{
		{ProductID: 3, Quantity: 1},
		{ProductID: 7, Quantity: 2},
	}, session.User.CartProducts)
}

func TestCart_Add_DefaultsQuantityToOne(t *testing.T) {
	ctx := context.Background()
	cart, session, api := newCartFixture(nil)

	api.On("AddToCart", mock.Anything, int64(7), 1).Return(nil)

	performed, err := cart.Add(ctx, 7, 0)
	require.NoError(t, err)
	assert.True(t, performed)
	assert.Equal(t, []model.CartProduct{{ProductID: 7, Quantity: 1}}, session.User.CartProducts)
}

func TestCart_Add_ServerFailureLeavesCartUntouched(t *testing.T) {
	ctx := context.Background()
	cart, session, api := newCartFixture([]model.CartProduct{{ProductID: 7, Quantity: 1}})

	api.On("AddToCart", mock.Anything, int64(7), 1).Return(&model.NetworkError{StatusCode: 500})

	performed, err := cart.Add(ctx, 7, 1)
	require.Error(t, err)
	assert.False(t, performed)
	assert.Equal(t, []model.CartProduct{{ProductID: 7, Quantity: 1}}, session.User.CartProducts)
}

func TestCart_Add_Unauthenticated(t *testing.T) {
	ctx := context.Background()
	cart, session, api := newCartFixture([]model.CartProduct{{ProductID: 7, Quantity: 1}})
	session.IsAuthenticated = false

	performed, err := cart.Add(ctx, 7, 1)
	require.NoError(t, err)
	assert.False(t, performed)
	assert.Equal(t, []model.CartProduct{{ProductID: 7, Quantity: 1}}, session.User.CartProducts)
	api.AssertNotCalled(t, "AddToCart", mock.Anything, mock.Anything, mock.Anything)
}

func TestCart_Remove_DecrementsLine(t *testing.T) {
	ctx := context.Background()
	cart, session, api := newCartFixture([]model.CartProduct{{ProductID: 7, Quantity: 3}})

	api.On("RemoveFromCart", mock.Anything, int64(7)).Return(nil)

	performed, err := cart.Remove(ctx, 7)
	require.NoError(t, err)
	assert.True(t, performed)
	assert.Equal(t, []model.CartProduct{{ProductID: 7, Quantity: 2}}, session.User.CartProducts)
}

func TestCart_Remove_DeletesLineAtQuantityOne(t *testing.T) {
	ctx := context.Background()
	cart, session, api := newCartFixture([]model.CartProduct{{ProductID: 7, Quantity: 1}})

	api.On("RemoveFromCart", mock.Anything, int64(7)).Return(nil)

	performed, err := cart.Remove(ctx, 7)
	require.NoError(t, err)
	assert.True(t, performed)
	assert.Empty(t, session.User.CartProducts)
}

func TestCart_Remove_Unauthenticated(t *testing.T) {
	ctx := context.Background()
	cart, session, api := newCartFixture([]model.CartProduct{{ProductID: 7, Quantity: 1}})
	session.IsAuthenticated = false

	performed, err := cart.Remove(ctx, 7)
	require.NoError(t, err)
	assert.False(t, performed)
	assert.Equal(t, []model.CartProduct{{ProductID: 7, Quantity: 1}}, session.User.CartProducts)
	api.AssertNotCalled(t, "RemoveFromCart", mock.Anything, mock.Anything)
}

func TestCart_Remove_NoRollbackOnServerFailure(t *testing.T) {
	// The local decrement is applied before the server call and is kept
	// when the call fails; the next Fetch closes the window.
	ctx := context.Background()
	cart, session, api := newCartFixture([]model.CartProduct{{ProductID: 7, Quantity: 2}})

	api.On("RemoveFromCart", mock.Anything, int64(7)).Return(&model.NetworkError{StatusCode: 500})

	performed, err := cart.Remove(ctx, 7)
	require.Error(t, err)
	assert.True(t, performed)
	assert.Equal(t, []model.CartProduct{{ProductID: 7, Quantity: 1}}, session.User.CartProducts)
}

func TestCart_Update_DoesNotTouchMemory(t *testing.T) {
	ctx := context.Background()
	cart, session, api := newCartFixture([]model.CartProduct{{ProductID: 7, Quantity: 1}})

	api.On("UpdateCart", mock.Anything, int64(7), 5).Return(nil)

	performed, err := cart.Update(ctx, 7, 5)
	require.NoError(t, err)
	assert.True(t, performed)
	assert.Equal(t, []model.CartProduct{{ProductID: 7, Quantity: 1}}, session.User.CartProducts)
}

func TestCart_Update_Unauthenticated(t *testing.T) {
	ctx := context.Background()
	cart, session, api := newCartFixture(nil)
	session.IsAuthenticated = false

	performed, err := cart.Update(ctx, 7, 5)
	require.NoError(t, err)
	assert.False(t, performed)
	api.AssertNotCalled(t, "UpdateCart", mock.Anything, mock.Anything, mock.Anything)
}

func TestCart_Fetch_ErrorsYieldEmptyList(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		err  error
	}{
		{name: "not found", err: &model.NetworkError{StatusCode: 404}},
		{name: "server error", err: &model.NetworkError{StatusCode: 500, Message: "boom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart, _, api := newCartFixture(nil)
			api.On("GetCart", mock.Anything).Return(nil, tt.err)

			items := cart.Fetch(ctx)
			assert.NotNil(t, items)
			assert.Empty(t, items)
		})
	}
}

func TestCart_Fetch_ReturnsServerList(t *testing.T) {
	ctx := context.Background()
	cart, _, api := newCartFixture(nil)

	api.On("GetCart", mock.Anything).Return([]model.CartProduct{{ProductID: 7, Quantity: 2}}, nil)

	items := cart.Fetch(ctx)
	assert.Equal(t, []model.CartProduct{{ProductID: 7, Quantity: 2}}, items)
}
