package provision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provwire/provision-go/pkg/routing"
)

func TestParseResponseAccessToken(t *testing.T) {
	doc := routing.Document{
		"status":           "SUCCESS",
		"credentialsType":  "ACCESS_TOKEN",
		"credentialsValue": "tok-123",
	}

	resp, err := ParseResponse(doc)
	require.NoError(t, err)

	assert.True(t, resp.Provisioned())
	token, err := resp.AccessToken()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)

	_, err = resp.BasicCredentials()
	assert.ErrorIs(t, err, ErrCredentialsMismatch)
}

func TestParseResponseBasicCredentials(t *testing.T) {
	doc := routing.Document{
		"status":          "SUCCESS",
		"credentialsType": "MQTT_BASIC",
		"credentialsValue": map[string]any{
			"clientId": "client-1",
			"userName": "user",
			"password": "pass",
		},
	}

	resp, err := ParseResponse(doc)
	require.NoError(t, err)

	v, err := resp.BasicCredentials()
	require.NoError(t, err)
	assert.Equal(t, "client-1", v.ClientID)
	assert.Equal(t, "user", v.Username)
	assert.Equal(t, "pass", v.Password)

	_, err = resp.AccessToken()
	assert.ErrorIs(t, err, ErrCredentialsMismatch)
}

func TestParseResponseFailure(t *testing.T) {
	doc := routing.Document{
		"status":   "FAILURE",
		"errorMsg": "provision device key is unknown",
	}

	resp, err := ParseResponse(doc)
	require.NoError(t, err)

	assert.False(t, resp.Provisioned())
	assert.Equal(t, "provision device key is unknown", resp.ErrorMsg)
}

func TestAccessTokenMalformedValue(t *testing.T) {
	doc := routing.Document{
		"status":           "SUCCESS",
		"credentialsType":  "ACCESS_TOKEN",
		"credentialsValue": map[string]any{"nope": true},
	}

	resp, err := ParseResponse(doc)
	require.NoError(t, err)

	_, err = resp.AccessToken()
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
