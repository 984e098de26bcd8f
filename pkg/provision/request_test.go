package provision

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// payloadKeys decodes an encoded payload and returns its key set.
func payloadKeys(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestPayloadKeyAndSecretOnly(t *testing.T) {
	req := Request{Key: "abc", Secret: "xyz"}

	data, err := req.encodePayload()
	require.NoError(t, err)

	assert.JSONEq(t, `{"provisionDeviceKey":"abc","provisionDeviceSecret":"xyz"}`, string(data))
}

func TestPayloadWithDeviceName(t *testing.T) {
	req := Request{Key: "abc", Secret: "xyz", DeviceName: "dev1"}

	data, err := req.encodePayload()
	require.NoError(t, err)

	assert.Equal(t, `{"deviceName":"dev1","provisionDeviceKey":"abc","provisionDeviceSecret":"xyz"}`, string(data))
}

func TestPayloadAccessToken(t *testing.T) {
	req := Request{
		Key:         "abc",
		Secret:      "xyz",
		Credentials: AccessTokenCredentials("tok-123"),
	}

	data, err := req.encodePayload()
	require.NoError(t, err)

	m := payloadKeys(t, data)
	assert.Equal(t, "tok-123", m[KeyToken])
	assert.Equal(t, "ACCESS_TOKEN", m[KeyCredentialsType])
	assert.Equal(t, "abc", m[KeyDeviceKey])
	assert.Equal(t, "xyz", m[KeyDeviceSecret])
	assert.NotContains(t, m, KeyUsername)
	assert.NotContains(t, m, KeyPassword)
	assert.NotContains(t, m, KeyClientID)
	assert.NotContains(t, m, KeyHash)
	assert.NotContains(t, m, KeyDeviceName)
}

func TestPayloadBasicCredentials(t *testing.T) {
	req := Request{
		Key:         "abc",
		Secret:      "xyz",
		Credentials: BasicCredentials("client-1", "user", "pass"),
	}

	data, err := req.encodePayload()
	require.NoError(t, err)

	m := payloadKeys(t, data)
	assert.Equal(t, "client-1", m[KeyClientID])
	assert.Equal(t, "user", m[KeyUsername])
	assert.Equal(t, "pass", m[KeyPassword])
	assert.Equal(t, "MQTT_BASIC", m[KeyCredentialsType])
	assert.NotContains(t, m, KeyToken)
	assert.NotContains(t, m, KeyHash)
}

func TestPayloadBasicCredentialsOmitsEmptyClientID(t *testing.T) {
	req := Request{
		Key:         "abc",
		Secret:      "xyz",
		Credentials: BasicCredentials("", "user", "pass"),
	}

	data, err := req.encodePayload()
	require.NoError(t, err)

	m := payloadKeys(t, data)
	assert.NotContains(t, m, KeyClientID, "empty optional fields must not be encoded")
	assert.Equal(t, "user", m[KeyUsername])
}

func TestPayloadX509Credentials(t *testing.T) {
	req := Request{
		Key:         "abc",
		Secret:      "xyz",
		Credentials: X509Credentials("deadbeef"),
	}

	data, err := req.encodePayload()
	require.NoError(t, err)

	m := payloadKeys(t, data)
	assert.Equal(t, "deadbeef", m[KeyHash])
	assert.Equal(t, "X509_CERTIFICATE", m[KeyCredentialsType])
	assert.NotContains(t, m, KeyToken)
	assert.NotContains(t, m, KeyUsername)
	assert.NotContains(t, m, KeyPassword)
	assert.NotContains(t, m, KeyClientID)
}

func TestPayloadZeroCredentialsOmitsType(t *testing.T) {
	req := Request{Key: "abc", Secret: "xyz", DeviceName: "dev1"}

	data, err := req.encodePayload()
	require.NoError(t, err)

	m := payloadKeys(t, data)
	assert.NotContains(t, m, KeyCredentialsType,
		"zero-value credentials must not send a credentialsType tag")
	assert.Len(t, m, 3)
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "NONE", MethodNone.String())
	assert.Equal(t, "ACCESS_TOKEN", MethodAccessToken.String())
	assert.Equal(t, "MQTT_BASIC", MethodBasic.String())
	assert.Equal(t, "X509_CERTIFICATE", MethodX509.String())
	assert.Equal(t, "UNKNOWN", Method(9).String())
}

func TestCredentialsMethodAccessor(t *testing.T) {
	assert.Equal(t, MethodNone, Credentials{}.Method())
	assert.Equal(t, MethodAccessToken, AccessTokenCredentials("t").Method())
	assert.Equal(t, MethodBasic, BasicCredentials("c", "u", "p").Method())
	assert.Equal(t, MethodX509, X509Credentials("h").Method())
}
