package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type testCredentials struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidate(t *testing.T) {
	v, err := New()
	require.NoError(t, err, "validator must be built")

	t.Log("valid struct passes")
	{
		err := v.Validate(&testCredentials{Email: "john@mail.com", Password: "secret"})
		require.NoError(t, err, "valid payload was rejected")
	}

	t.Log("short password and wrong email are reported with field names")
	{
		err := v.Validate(&testCredentials{Email: "john.mail.com", Password: "12345"})
		require.Error(t, err, "invalid payload was accepted")

		var pldErr *PayloadError
		require.ErrorAs(t, err, &pldErr, "error must be payload error")
		require.Equal(t, []string{"email", "password"}, pldErr.Fields())
		require.Contains(t, pldErr.Error(), "password must be at least 6 characters in length")

		raw, err := json.Marshal(pldErr)
		require.NoError(t, err)
		require.Contains(t, string(raw), `"field":"password"`)
	}
}
