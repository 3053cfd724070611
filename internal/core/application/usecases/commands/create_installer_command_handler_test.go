package commands_test

import (
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/account"
	"workorders/internal/core/domain/model/installer"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateInstallerCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateInstallerCommand("Bob Wires", "bob@example.com", nil)
	require.NoError(t, err)

	var capturedProfile *installer.Installer
	mockInstallerRepo := new(MockInstallerRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockInstallerUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("InstallerRepository").Return(mockInstallerRepo).Once(),
		mockInstallerRepo.On("Add", ctx, mock.MatchedBy(func(p *installer.Installer) bool {
			capturedProfile = p
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateInstallerCommandHandler(mockFactory)

	// Act
	profile, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Same(t, capturedProfile, profile)
	assert.Equal(t, cmd.InstallerID(), profile.ID())
	assert.Equal(t, "Bob Wires", profile.Name())
	assert.Equal(t, "bob@example.com", profile.ContactInfo())
	assert.Nil(t, profile.UserID())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockInstallerRepo.AssertExpectations(t)
}

func TestCreateInstallerCommandHandler_Handle_LinkedUserMustExist(t *testing.T) {
	// Arrange
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateInstallerCommand("Bob Wires", "bob@example.com", &userID)
	require.NoError(t, err)

	mockUserRepo := new(MockUserRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockInstallerUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("UserRepository").Return(mockUserRepo).Once(),
		mockUserRepo.On("Get", ctx, userID).
			Return(nil, errs.NewObjectNotFoundError("userID", userID)).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateInstallerCommandHandler(mockFactory)

	// Act
	profile, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, profile)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestCreateInstallerCommandHandler_Handle_LinkedUser(t *testing.T) {
	// Arrange
	ctx := t.Context()
	user, err := account.NewUser(kernel.NewUUID(), "worker", "hash", account.Installer)
	require.NoError(t, err)
	userID := user.ID()

	cmd, err := commands.NewCreateInstallerCommand("Bob Wires", "bob@example.com", &userID)
	require.NoError(t, err)

	mockUserRepo := new(MockUserRepository)
	mockInstallerRepo := new(MockInstallerRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockInstallerUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("UserRepository").Return(mockUserRepo).Once(),
		mockUserRepo.On("Get", ctx, userID).Return(user, nil).Once(),
		mockUoW.On("InstallerRepository").Return(mockInstallerRepo).Once(),
		mockInstallerRepo.On("Add", ctx, mock.AnythingOfType("*installer.Installer")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateInstallerCommandHandler(mockFactory)

	// Act
	profile, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, profile)
	require.NotNil(t, profile.UserID())
	assert.True(t, profile.UserID().IsEqual(userID))

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockInstallerRepo.AssertExpectations(t)
}

func TestNewCreateInstallerCommand_MissingName(t *testing.T) {
	// Act
	_, err := commands.NewCreateInstallerCommand("", "bob@example.com", nil)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNameIsRequired)
}
