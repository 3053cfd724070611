package commands_test

import (
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/account"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		cmd, err := commands.NewRegisterUserCommand("admin", "hunter2", account.Administrator)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.NoError(t, cmd.UserID().Validate())
		assert.Equal(t, "admin", cmd.Username())
		assert.Equal(t, "hunter2", cmd.Password())
		assert.Equal(t, account.Administrator, cmd.Role())
	})

	t.Run("should fail with empty username", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand("", "hunter2", account.Installer)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrUsernameIsRequired)
	})

	t.Run("should fail with empty password", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand("admin", "", account.Installer)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrPasswordIsRequired)
	})

	t.Run("should fail with unknown role", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand("admin", "hunter2", account.RoleUnknown)

		require.Error(t, err)
	})

	t.Run("zero value command should fail validation", func(t *testing.T) {
		var cmd commands.RegisterUserCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterUserCommandIsNotConstructed)
	})
}
