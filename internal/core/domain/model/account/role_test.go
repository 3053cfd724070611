package account_test

import (
	"testing"

	"workorders/internal/core/domain/model/account"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	t.Run("defined roles are valid", func(t *testing.T) {
		require.NoError(t, account.Administrator.Validate())
		require.NoError(t, account.Dispatcher.Validate())
		require.NoError(t, account.Installer.Validate())
	})

	t.Run("unknown role is invalid", func(t *testing.T) {
		require.Error(t, account.RoleUnknown.Validate())
	})

	t.Run("out of range role is invalid", func(t *testing.T) {
		require.Error(t, account.Role(42).Validate())
	})
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "administrator", account.Administrator.String())
	assert.Equal(t, "dispatcher", account.Dispatcher.String())
	assert.Equal(t, "installer", account.Installer.String())
	assert.Equal(t, "unknown", account.RoleUnknown.String())
	assert.Equal(t, "unknown", account.Role(42).String())
}

func TestRoleFromString(t *testing.T) {
	t.Run("parses valid role names", func(t *testing.T) {
		cases := map[string]account.Role{
			"administrator": account.Administrator,
			"dispatcher":    account.Dispatcher,
			"installer":     account.Installer,
		}

		for raw, expected := range cases {
			role, err := account.RoleFromString(raw)

			require.NoError(t, err)
			assert.Equal(t, expected, role)
		}
	})

	t.Run("rejects unknown role names", func(t *testing.T) {
		role, err := account.RoleFromString("manager")

		require.Error(t, err)
		assert.Equal(t, account.RoleUnknown, role)
		assert.Contains(t, err.Error(), "not a valid role")
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := account.RoleFromString("")

		require.Error(t, err)
	})
}
