package commands

import (
	"context"
	"fmt"

	"workorders/internal/core/domain/model/order"
)

// AddCommentCommandHandler handles the business logic for attaching comments
// to orders. The order must exist; the comment insert and its audit record
// commit in one transaction.
type AddCommentCommandHandler struct {
	uowFactory CommentUoWFactory
}

// NewAddCommentCommandHandler creates a handler for attaching order comments.
// Requires a CommentUoWFactory for transactional persistence operations.
func NewAddCommentCommandHandler(uowFactory CommentUoWFactory) AddCommentCommandHandler {
	return AddCommentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the comment command and returns the created comment.
// Returns an ObjectNotFoundError when the order does not exist.
func (h AddCommentCommandHandler) Handle(ctx context.Context, cmd AddCommentCommand) (*order.Comment, error) {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	comment, err := order.NewComment(cmd.CommentID(), aggregate.ID(), cmd.Text())
	if err != nil {
		return nil, err
	}

	if err = uow.CommentRepository().Add(ctx, comment); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("added comment %s", comment.ID())
	if err = appendHistory(ctx, uow.HistoryRepository(),
		aggregate.ID(), cmd.ActorID(), order.ActionAddComment, details); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return comment, nil
}
