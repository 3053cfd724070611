package commands_test

import (
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingOrder(t *testing.T) *order.Order {
	t.Helper()

	aggregate, err := order.NewOrder(kernel.NewUUID(), "12 Main St", "AC-100", "555-0101", kernel.NewUUID())
	require.NoError(t, err)
	return aggregate
}

func strPtr(s string) *string {
	return &s
}

func TestUpdateOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := existingOrder(t)
	actorID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderCommand(
		aggregate.ID(), strPtr("99 Oak Ave"), nil, strPtr("555-0202"), actorID)
	require.NoError(t, err)

	var capturedEntry *order.HistoryEntry
	mockOrderRepo := new(MockOrderRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		mockOrderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("HistoryRepository").Return(mockHistoryRepo).Once(),
		mockHistoryRepo.On("Append", ctx, mock.MatchedBy(func(e *order.HistoryEntry) bool {
			capturedEntry = e
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateOrderCommandHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "99 Oak Ave", updated.Address())
	assert.Equal(t, "AC-100", updated.AccountNumber(), "omitted field should stay unchanged")
	assert.Equal(t, "555-0202", updated.ContactDetails())
	assert.Equal(t, actorID, updated.UpdatedBy())

	require.NotNil(t, capturedEntry)
	assert.Equal(t, order.ActionUpdate, capturedEntry.Action())
	assert.Contains(t, capturedEntry.Details(), "address")
	assert.Contains(t, capturedEntry.Details(), "contact_details")
	assert.NotContains(t, capturedEntry.Details(), "account_number")

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockHistoryRepo.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderCommand(orderID, strPtr("99 Oak Ave"), nil, nil, kernel.NewUUID())
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateOrderCommandHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, updated)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}

func TestNewUpdateOrderCommand_NoFields(t *testing.T) {
	// Act
	_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), nil, nil, nil, kernel.NewUUID())

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNoFieldsToUpdate)
}
