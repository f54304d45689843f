package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
)

const testSecret = "test-secret-test-secret-test-secret!"

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret)

	token, err := tm.GenerateAccessToken("uid-1", "treasurer@example.org", domain.RoleTreasurer)
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UID)
	assert.Equal(t, "treasurer@example.org", claims.Email)
	assert.Equal(t, domain.RoleTreasurer, claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret)
	other := NewTokenManager("another-secret-another-secret-xx")

	token, err := other.GenerateAccessToken("uid-1", "", domain.RoleMember)
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	tm := NewTokenManager(testSecret)
	_, err := tm.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequireRole(t *testing.T) {
	tm := NewTokenManager(testSecret)

	tests := []struct {
		name    string
		role    domain.Role
		minRole domain.Role
		wantErr error
	}{
		{"treasurer can act as treasurer", domain.RoleTreasurer, domain.RoleTreasurer, nil},
		{"president can act as treasurer", domain.RolePresident, domain.RoleTreasurer, nil},
		{"member cannot act as treasurer", domain.RoleMember, domain.RoleTreasurer, ErrForbidden},
		{"unknown role cannot act at all", domain.Role("visitor"), domain.RoleMember, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tm.GenerateAccessToken("uid-1", "", tt.role)
			require.NoError(t, err)

			_, err = tm.RequireRole(token, tt.minRole)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
