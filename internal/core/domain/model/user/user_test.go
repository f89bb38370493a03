package user_test

import (
	"testing"

	"canteen/internal/core/domain/model/user"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for input, want := range map[string]user.Role{
		"admin":     user.Admin,
		"Staff":     user.Staff,
		" student ": user.Student,
	} {
		t.Run(input, func(t *testing.T) {
			role, err := user.ParseRole(input)
			require.NoError(t, err)
			assert.Equal(t, want, role)
			assert.Equal(t, want.String(), role.String())
		})
	}

	t.Run("unknown role", func(t *testing.T) {
		role, err := user.ParseRole("chef")
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, user.UnknownRole, role)
	})

	t.Run("unknown is not parseable", func(t *testing.T) {
		_, err := user.ParseRole("unknown")
		require.Error(t, err)
	})
}

func TestPrincipal(t *testing.T) {
	tests := []struct {
		name      string
		principal user.Principal
		manage    bool
		wantErr   bool
	}{
		{name: "admin", principal: user.Principal{Role: user.Admin}, manage: true},
		{name: "staff", principal: user.Principal{ID: "s-1", Role: user.Staff}, manage: true},
		{name: "student", principal: user.Principal{ID: "u-7", Role: user.Student}},
		{name: "student without id", principal: user.Principal{Role: user.Student}, wantErr: true},
		{name: "no role", principal: user.Principal{ID: "x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.manage, tt.principal.CanManageOrders())
			assert.Equal(t, tt.manage, tt.principal.SeesAllOrders())
			if tt.wantErr {
				require.ErrorIs(t, tt.principal.Validate(), errs.ErrValidation)
			} else {
				require.NoError(t, tt.principal.Validate())
			}
		})
	}
}
