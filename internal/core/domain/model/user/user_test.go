package user_test

import (
	"testing"

	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/user"
	"visadesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid_input", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.NewUser(id, "  Asha.Rao@Example.com ", "Asha Rao", user.Customer, "correct-horse")

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, id, u.ID())
		assert.Equal(t, "asha.rao@example.com", u.Email())
		assert.Equal(t, "Asha Rao", u.Name())
		assert.Equal(t, user.Customer, u.Role())
		assert.NotContains(t, string(u.PasswordHash()), "correct-horse")
		assert.NoError(t, u.CheckPassword("correct-horse"))
		assert.ErrorIs(t, u.CheckPassword("wrong-horse"), user.ErrInvalidCredentials)
	})

	testCases := []struct {
		name     string
		email    string
		userName string
		role     user.Role
		password string
		wantErr  error
	}{
		{name: "missing_email", email: "", userName: "A", role: user.Customer, password: "12345678", wantErr: errs.ErrValueIsRequired},
		{name: "malformed_email", email: "not-an-email", userName: "A", role: user.Customer, password: "12345678", wantErr: errs.ErrValueIsInvalid},
		{name: "missing_name", email: "a@b.co", userName: " ", role: user.Customer, password: "12345678", wantErr: errs.ErrValueIsRequired},
		{name: "unknown_role", email: "a@b.co", userName: "A", role: user.Role("root"), password: "12345678", wantErr: errs.ErrValueIsInvalid},
		{name: "short_password", email: "a@b.co", userName: "A", role: user.Customer, password: "1234567", wantErr: errs.ErrValueIsOutOfRange},
		{name: "missing_password", email: "a@b.co", userName: "A", role: user.Customer, password: "", wantErr: errs.ErrValueIsRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := user.NewUser(kernel.NewUUID(), tc.email, tc.userName, tc.role, tc.password)

			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRestoreUser(t *testing.T) {
	original, err := user.NewUser(kernel.NewUUID(), "expert@example.com", "Ivo", user.Expert, "s3cret-pass")
	require.NoError(t, err)

	restored, err := user.RestoreUser(original.ID(), original.Email(), original.Name(), original.Role(), original.PasswordHash())

	require.NoError(t, err)
	assert.NoError(t, restored.CheckPassword("s3cret-pass"))

	_, err = user.RestoreUser(original.ID(), original.Email(), original.Name(), original.Role(), nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRole(t *testing.T) {
	r, err := user.ParseRole(" Admin ")
	require.NoError(t, err)
	assert.Equal(t, user.Admin, r)

	_, err = user.ParseRole("superuser")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.False(t, user.Customer.IsStaff())
	assert.True(t, user.Expert.IsStaff())
	assert.True(t, user.Support.IsStaff())
	assert.True(t, user.Admin.IsStaff())
}

func TestUser_ZeroValueIsInvalid(t *testing.T) {
	var u *user.User
	assert.Equal(t, user.ErrUserIsNotConstructed, u.Validate())
}
