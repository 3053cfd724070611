package commands

import (
	"context"
	"fmt"

	"workorders/internal/core/domain/model/order"
)

// AssignInstallerCommandHandler handles the business logic for putting an
// installer on an order. Both the order and the installer profile must exist;
// the assignment and its audit record commit together.
type AssignInstallerCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignInstallerCommandHandler creates a handler for installer assignment.
// Requires an AssignmentUoWFactory for coordinating order and installer lookups.
func NewAssignInstallerCommandHandler(uowFactory AssignmentUoWFactory) AssignInstallerCommandHandler {
	return AssignInstallerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command and returns the updated order.
// Returns an ObjectNotFoundError when the order or the installer does not exist.
func (h AssignInstallerCommandHandler) Handle(ctx context.Context, cmd AssignInstallerCommand) (*order.Order, error) {
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

	profile, err := uow.InstallerRepository().Get(ctx, cmd.InstallerID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AssignInstaller(profile.ID(), cmd.ActorID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("assigned installer %s", profile.ID())
	if err = appendHistory(ctx, uow.HistoryRepository(),
		aggregate.ID(), cmd.ActorID(), order.ActionAssignInstaller, details); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
