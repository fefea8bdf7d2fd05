package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueAndParse(t *testing.T) {
	m := NewTokenManager("secret", time.Hour, "realestate-service")
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = fixedClock(now)

	token, issued, err := m.Issue(&domain.User{ID: 7, Email: "ada@example.com", IsAdmin: true})
	require.NoError(t, err)
	assert.NotEmpty(t, issued.TokenID)
	assert.Equal(t, now.Add(time.Hour), issued.ExpiresAt)

	identity, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), identity.UserID)
	assert.Equal(t, "ada@example.com", identity.Email)
	assert.True(t, identity.IsAdmin)
	assert.Equal(t, issued.TokenID, identity.TokenID)
	assert.True(t, issued.ExpiresAt.Equal(identity.ExpiresAt))
}

func TestIssue_UniqueTokenIDs(t *testing.T) {
	m := NewTokenManager("secret", time.Hour, "iss")
	u := &domain.User{ID: 1, Email: "a@b.c"}

	_, first, err := m.Issue(u)
	require.NoError(t, err)
	_, second, err := m.Issue(u)
	require.NoError(t, err)

	assert.NotEqual(t, first.TokenID, second.TokenID)
}

func TestParse_Expired(t *testing.T) {
	m := NewTokenManager("secret", time.Minute, "iss")
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = fixedClock(issuedAt)

	token, _, err := m.Issue(&domain.User{ID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	m.now = fixedClock(issuedAt.Add(2 * time.Minute))
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_WrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("one", time.Hour, "iss").Issue(&domain.User{ID: 1})
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Hour, "iss").Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_WrongIssuer(t *testing.T) {
	token, _, err := NewTokenManager("secret", time.Hour, "someone-else").Issue(&domain.User{ID: 1})
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Hour, "iss").Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "x",
			Issuer:    "iss",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Hour, "iss").Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	_, err := NewTokenManager("secret", time.Hour, "iss").Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
