// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and an audit record appended in the same transaction.
package commands

import (
	"context"

	"workorders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// TokenRepoFactory provides access to the token repository within a transaction.
	TokenRepoFactory interface {
		TokenRepository() ports.TokenRepository
	}

	// InstallerRepoFactory provides access to the installer repository within a transaction.
	InstallerRepoFactory interface {
		InstallerRepository() ports.InstallerRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CommentRepoFactory provides access to the comment repository within a transaction.
	CommentRepoFactory interface {
		CommentRepository() ports.CommentRepository
	}

	// HistoryRepoFactory provides access to the audit log repository within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// AccountUoW manages transactions for registration and login.
	// Both operations touch users and issue session tokens atomically.
	AccountUoW interface {
		TxManager
		UserRepoFactory
		TokenRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// InstallerUoW manages transactions for installer profile creation.
	// Needs the user repository to verify linked accounts exist.
	InstallerUoW interface {
		TxManager
		InstallerRepoFactory
		UserRepoFactory
	}

	// InstallerUoWFactory creates new installer unit of work instances.
	InstallerUoWFactory interface {
		Create() InstallerUoW
	}

	// OrderUoW manages transactions for order-only mutations.
	// Every order mutation writes its audit record in the same transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		HistoryRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AssignmentUoW manages transactions for installer assignment.
	// Coordinates order and installer aggregates plus the audit log.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		InstallerRepoFactory
		HistoryRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// CommentUoW manages transactions for adding order comments.
	// The comment insert and its audit record commit together.
	CommentUoW interface {
		TxManager
		OrderRepoFactory
		CommentRepoFactory
		HistoryRepoFactory
	}

	// CommentUoWFactory creates new comment unit of work instances.
	CommentUoWFactory interface {
		Create() CommentUoW
	}
)
