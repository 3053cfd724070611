package order

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
)

// ErrCommentIsNotConstructed is returned when a Comment instance was not
// created through NewComment or RestoreComment.
var ErrCommentIsNotConstructed = errors.New("Comment must be created via NewComment or RestoreComment constructor")

// Comment is an immutable note attached to an order. Comments are only ever
// created and listed; they disappear with their parent order.
type Comment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	text      string
	createdAt time.Time

	isConstructed bool
}

// NewComment creates a comment on the given order with the current UTC time.
func NewComment(id kernel.UUID, orderID kernel.UUID, text string) (*Comment, error) {
	return RestoreComment(id, orderID, text, time.Now().UTC())
}

// RestoreComment reconstructs a comment from persistence.
func RestoreComment(id kernel.UUID, orderID kernel.UUID, text string, createdAt time.Time) (*Comment, error) {
	c := &Comment{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrderID(orderID),
		c.setText(text),
		c.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Comment instance was properly constructed.
func (c *Comment) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCommentIsNotConstructed
	}
	return nil
}

// ID returns the comment's unique identifier.
func (c *Comment) ID() kernel.UUID {
	return c.id
}

// OrderID returns the identifier of the parent order.
func (c *Comment) OrderID() kernel.UUID {
	return c.orderID
}

// Text returns the comment body.
func (c *Comment) Text() string {
	return c.text
}

// CreatedAt returns when the comment was written.
func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Comment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *Comment) setText(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("text")
	}
	c.text = text
	return nil
}

func (c *Comment) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	c.createdAt = createdAt
	return nil
}
