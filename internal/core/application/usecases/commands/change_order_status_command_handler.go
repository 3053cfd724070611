package commands

import (
	"context"
	"fmt"

	"workorders/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler handles the business logic for order status
// changes. The status graph is flat, so the handler enforces no transition
// rules beyond the status being a known one.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for order status changes.
// Requires an OrderUoWFactory for transactional persistence operations.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command and returns the updated order.
// Returns an ObjectNotFoundError when the order does not exist.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
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

	if err = aggregate.ChangeStatus(cmd.Status(), cmd.ActorID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("changed status to: %s", cmd.Status())
	if err = appendHistory(ctx, uow.HistoryRepository(),
		aggregate.ID(), cmd.ActorID(), order.ActionChangeStatus, details); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
