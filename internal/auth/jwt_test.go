package auth

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/crm/internal/model"
)

const (
	testIssuer     = "test-issuer"
	testTimeToLive = 3 * time.Minute
)

var testUser = &model.User{
	ID:    "bdf2f837-75f6-462a-b9ec-5dfb2e8f8792",
	Email: "test@email.com",
}

func testKeys(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err, "failed to generate ed25519 keys")
	return pub, priv
}

func TestJwtSignAndVerify(t *testing.T) {
	pub, priv := testKeys(t)
	method := jwt.GetSigningMethod(AlgorithmEd25519)

	issuer := NewJwtIssuer(testIssuer, method, testTimeToLive, priv)
	validator := NewJwtValidator(method, pub)

	now := time.Now().UTC()

	t.Log("sign token and verify it carries user identity")
	{
		token, err := issuer.Sign(testUser, now)
		require.NoError(t, err, "failed to sign token")
		require.Equal(t, now.Add(testTimeToLive).Unix(), token.ExpiresAt, "incorrect time to live was set for jwt")

		sess, err := validator.Verify(token.Signed)
		require.NoError(t, err, "valid token was rejected")
		require.Equal(t, testUser.ID, sess.UserID, "session must carry user id")
		require.Equal(t, testUser.Email, sess.Email, "session must carry user email")
	}

	t.Log("expired token must be rejected")
	{
		token, err := issuer.Sign(testUser, now.Add(-time.Hour))
		require.NoError(t, err, "failed to sign token")

		_, err = validator.Verify(token.Signed)
		require.Error(t, err, "expired token was accepted")
	}

	t.Log("token signed with another key must be rejected")
	{
		_, otherPriv := testKeys(t)
		token, err := NewJwtIssuer(testIssuer, method, testTimeToLive, otherPriv).Sign(testUser, now)
		require.NoError(t, err, "failed to sign token")

		_, err = validator.Verify(token.Signed)
		require.Error(t, err, "token with foreign signature was accepted")
	}

	t.Log("token signed with another algorithm must be rejected")
	{
		token, err := NewJwtIssuer(testIssuer, jwt.SigningMethodHS256, testTimeToLive, []byte("secret")).Sign(testUser, now)
		require.NoError(t, err, "failed to sign token")

		_, err = validator.Verify(token.Signed)
		require.Error(t, err, "token with unexpected algorithm was accepted")
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := GeneratePasswordHash("secret_password")
	require.NoError(t, err, "failed to generate hash")

	require.NoError(t, VerifyPassword(hash, "secret_password"), "correct password must match")
	require.Error(t, VerifyPassword(hash, "wrong_password"), "wrong password must not match")
}

func TestVerifyRefreshToken(t *testing.T) {
	now := time.Now().UTC()
	issuer := NewRefreshTokenIssuer(2, time.Hour)
	token := issuer.Sign(testUser.ID, "fingerprint", now)

	require.NoError(t, VerifyRefreshToken(token, "fingerprint", now.Add(time.Minute)), "fresh token must be valid")
	require.ErrorIs(t, VerifyRefreshToken(token, "other", now), ErrInvalidFingerprint, "fingerprint mismatch must be reported")
	require.ErrorIs(t, VerifyRefreshToken(token, "fingerprint", now.Add(2*time.Hour)), ErrRefreshTokenExpired, "expired token must be reported")
}
