package user_test

import (
	"fmt"
	"testing"

	"wroom/internal/core/domain/model/user"
	"wroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(user.UnknownRole))
		assert.Equal(t, 1, int(user.Customer))
		assert.Equal(t, 2, int(user.Partner))
		assert.Equal(t, 3, int(user.Restaurant))
		assert.Equal(t, 4, int(user.Admin))
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("should validate valid roles", func(t *testing.T) {
		for _, role := range []user.Role{user.Customer, user.Partner, user.Restaurant, user.Admin} {
			require.NoError(t, role.Validate())
		}
	})

	t.Run("should reject UnknownRole and out of range values", func(t *testing.T) {
		for _, role := range []user.Role{user.UnknownRole, user.Role(-1), user.Role(5)} {
			err := role.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "role is invalid")
		}
	})
}

func TestRole_String(t *testing.T) {
	t.Run("should return wire representation", func(t *testing.T) {
		testCases := []struct {
			role     user.Role
			expected string
		}{
			{user.Customer, "CUSTOMER"},
			{user.Partner, "PARTNER"},
			{user.Restaurant, "RESTAURANT"},
			{user.Admin, "ADMIN"},
			{user.UnknownRole, "UNKNOWN"},
			{user.Role(42), "UNKNOWN"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.role.String())
		}
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should round trip every valid role", func(t *testing.T) {
		for _, role := range []user.Role{user.Customer, user.Partner, user.Restaurant, user.Admin} {
			parsed, err := user.RoleFromString(role.String())

			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("should reject unrecognized strings", func(t *testing.T) {
		for _, input := range []string{"", "UNKNOWN", "customer", "COURIER"} {
			t.Run(fmt.Sprintf("should reject %q", input), func(t *testing.T) {
				role, err := user.RoleFromString(input)

				require.Error(t, err)
				assert.Equal(t, user.UnknownRole, role)
			})
		}
	})
}
