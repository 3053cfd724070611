package commands_test

import (
	"context"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/account"
	"workorders/internal/core/domain/model/installer"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations shared by the handler tests in this package.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Add(ctx context.Context, user *account.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*account.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Add(ctx context.Context, token *account.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenRepository) GetByValue(ctx context.Context, value string) (*account.Token, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Token), args.Error(1)
}

type MockInstallerRepository struct {
	mock.Mock
}

func (m *MockInstallerRepository) Add(ctx context.Context, profile *installer.Installer) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockInstallerRepository) Get(ctx context.Context, id kernel.UUID) (*installer.Installer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*installer.Installer), args.Error(1)
}

func (m *MockInstallerRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*installer.Installer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*installer.Installer), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Add(ctx context.Context, comment *order.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Append(ctx context.Context, entry *order.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockUoW implements every narrowed unit of work interface, so each handler
// test can use the same mock with just the expectations it needs.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) TokenRepository() ports.TokenRepository {
	args := m.Called()
	return args.Get(0).(ports.TokenRepository)
}

func (m *MockUoW) InstallerRepository() ports.InstallerRepository {
	args := m.Called()
	return args.Get(0).(ports.InstallerRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CommentRepository() ports.CommentRepository {
	args := m.Called()
	return args.Get(0).(ports.CommentRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

type MockAccountUoWFactory struct {
	mock.Mock
}

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockInstallerUoWFactory struct {
	mock.Mock
}

func (m *MockInstallerUoWFactory) Create() commands.InstallerUoW {
	args := m.Called()
	return args.Get(0).(commands.InstallerUoW)
}

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAssignmentUoWFactory struct {
	mock.Mock
}

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockCommentUoWFactory struct {
	mock.Mock
}

func (m *MockCommentUoWFactory) Create() commands.CommentUoW {
	args := m.Called()
	return args.Get(0).(commands.CommentUoW)
}
