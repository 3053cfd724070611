package commands_test

import (
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/installer"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignInstallerCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := existingOrder(t)
	profile, err := installer.NewInstaller(kernel.NewUUID(), "Bob Wires", "bob@example.com", nil)
	require.NoError(t, err)
	actorID := kernel.NewUUID()

	cmd, err := commands.NewAssignInstallerCommand(aggregate.ID(), profile.ID(), actorID)
	require.NoError(t, err)

	var capturedEntry *order.HistoryEntry
	mockOrderRepo := new(MockOrderRepository)
	mockInstallerRepo := new(MockInstallerRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAssignmentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		mockUoW.On("InstallerRepository").Return(mockInstallerRepo).Once(),
		mockInstallerRepo.On("Get", ctx, profile.ID()).Return(profile, nil).Once(),
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

	handler := commands.NewAssignInstallerCommandHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.InstallerID())
	assert.True(t, updated.InstallerID().IsEqual(profile.ID()))
	assert.Equal(t, actorID, updated.UpdatedBy())

	require.NotNil(t, capturedEntry)
	assert.Equal(t, order.ActionAssignInstaller, capturedEntry.Action())
	assert.Contains(t, capturedEntry.Details(), profile.ID().String())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockInstallerRepo.AssertExpectations(t)
	mockHistoryRepo.AssertExpectations(t)
}

func TestAssignInstallerCommandHandler_Handle_InstallerNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := existingOrder(t)
	installerID := kernel.NewUUID()

	cmd, err := commands.NewAssignInstallerCommand(aggregate.ID(), installerID, kernel.NewUUID())
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockInstallerRepo := new(MockInstallerRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAssignmentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		mockUoW.On("InstallerRepository").Return(mockInstallerRepo).Once(),
		mockInstallerRepo.On("Get", ctx, installerID).
			Return(nil, errs.NewObjectNotFoundError("installerID", installerID)).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAssignInstallerCommandHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, updated)
	assert.Nil(t, aggregate.InstallerID(), "failed assignment should not touch the aggregate")
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockInstallerRepo.AssertExpectations(t)
}

func TestAssignInstallerCommandHandler_Handle_Reassignment(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := existingOrder(t)
	first, err := installer.NewInstaller(kernel.NewUUID(), "First", "first@example.com", nil)
	require.NoError(t, err)
	require.NoError(t, aggregate.AssignInstaller(first.ID(), kernel.NewUUID()))

	replacement, err := installer.NewInstaller(kernel.NewUUID(), "Second", "second@example.com", nil)
	require.NoError(t, err)

	cmd, err := commands.NewAssignInstallerCommand(aggregate.ID(), replacement.ID(), kernel.NewUUID())
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockInstallerRepo := new(MockInstallerRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAssignmentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		mockUoW.On("InstallerRepository").Return(mockInstallerRepo).Once(),
		mockInstallerRepo.On("Get", ctx, replacement.ID()).Return(replacement, nil).Once(),
		mockOrderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("HistoryRepository").Return(mockHistoryRepo).Once(),
		mockHistoryRepo.On("Append", ctx, mock.AnythingOfType("*order.HistoryEntry")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAssignInstallerCommandHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, updated.InstallerID())
	assert.True(t, updated.InstallerID().IsEqual(replacement.ID()))
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockInstallerRepo.AssertExpectations(t)
	mockHistoryRepo.AssertExpectations(t)
}
