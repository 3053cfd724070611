package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var (
	ErrAddCommentCommandIsNotConstructed = errors.New(
		"AddCommentCommand must be created via NewAddCommentCommand constructor",
	)
	ErrCommentTextIsRequired = errors.New("comment text is required")
)

// AddCommentCommand represents a request to attach a note to an order.
// Comments are immutable once written.
type AddCommentCommand struct { //nolint:recvcheck //using for validation
	commentID kernel.UUID
	orderID   kernel.UUID
	text      string
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddCommentCommand creates a command to attach a comment to an order.
// Automatically generates a unique ID for the comment.
// Validates that the text is not empty.
func NewAddCommentCommand(orderID kernel.UUID, text string, actorID kernel.UUID) (AddCommentCommand, error) {
	command := AddCommentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCommentID(kernel.NewUUID()),
		command.setOrderID(orderID),
		command.setText(text),
		command.setActorID(actorID),
	); err != nil {
		return AddCommentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddCommentCommandIsNotConstructed if validation fails.
func (c AddCommentCommand) Validate() error {
	return c.guard.Validate(ErrAddCommentCommandIsNotConstructed)
}

// CommentID returns the generated comment ID from the command.
func (c AddCommentCommand) CommentID() kernel.UUID {
	return c.commentID
}

// OrderID returns the target order ID from the command.
func (c AddCommentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Text returns the comment text from the command.
func (c AddCommentCommand) Text() string {
	return c.text
}

// ActorID returns the authenticated user ID from the command.
func (c AddCommentCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *AddCommentCommand) setCommentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.commentID = id
	return nil
}

func (c *AddCommentCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AddCommentCommand) setText(text string) error {
	if text == "" {
		return ErrCommentTextIsRequired
	}

	c.text = text
	return nil
}

func (c *AddCommentCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
