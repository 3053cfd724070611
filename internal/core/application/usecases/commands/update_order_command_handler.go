package commands

import (
	"context"
	"fmt"
	"strings"

	"workorders/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles the business logic for editing order
// details. The audit record names the fields that actually changed.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for editing order details.
// Requires an OrderUoWFactory for transactional persistence operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command and returns the updated order.
// Returns an ObjectNotFoundError when the order does not exist.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	changed, err := aggregate.Update(cmd.Address(), cmd.AccountNumber(), cmd.ContactDetails(), cmd.ActorID())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("updated fields: %s", strings.Join(changed, ", "))
	if err = appendHistory(ctx, uow.HistoryRepository(),
		aggregate.ID(), cmd.ActorID(), order.ActionUpdate, details); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
