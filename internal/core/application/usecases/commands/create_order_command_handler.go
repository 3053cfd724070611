package commands

import (
	"context"
	"fmt"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for opening work orders.
// The order starts in the in-progress status and its creation audit record is
// written in the same transaction as the order itself.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for opening work orders.
// Requires an OrderUoWFactory for transactional persistence operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.Address(), cmd.AccountNumber(), cmd.ContactDetails(), cmd.ActorID())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("order created with address: %s", cmd.Address())
	if err = appendHistory(ctx, uow.HistoryRepository(),
		aggregate.ID(), cmd.ActorID(), order.ActionCreate, details); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// appendHistory writes one audit record for a mutation. Every command that
// changes an order calls this exactly once before committing, so the audit
// log and the mutation share a transaction.
func appendHistory(
	ctx context.Context,
	historyRepo ports.HistoryRepository,
	orderID, actorID kernel.UUID,
	action order.ActionType,
	details string,
) error {
	entry, err := order.NewHistoryEntry(kernel.NewUUID(), orderID, actorID, action, details)
	if err != nil {
		return err
	}

	return historyRepo.Append(ctx, entry)
}
