package provision

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/provwire/provision-go/pkg/routing"
)

// Response status values reported by the platform.
const (
	StatusSuccess = "SUCCESS"
	StatusFailure = "FAILURE"
)

// Response errors.
var (
	// ErrMalformedResponse indicates the response document does not have
	// the expected shape.
	ErrMalformedResponse = errors.New("malformed provisioning response")

	// ErrCredentialsMismatch indicates the response carries a different
	// credentials type than the accessor expects.
	ErrCredentialsMismatch = errors.New("unexpected credentials type in response")
)

// BasicValue is the credentials value delivered for MQTT_BASIC responses.
type BasicValue struct {
	ClientID string `json:"clientId"`
	Username string `json:"userName"`
	Password string `json:"password"`
}

// Response is the decoded provisioning answer. Handlers receive the raw
// parsed document; ParseResponse is an opt-in convenience for callers that
// want typed access.
type Response struct {
	// Status is StatusSuccess or StatusFailure.
	Status string `json:"status"`

	// CredentialsType tags the shape of CredentialsValue.
	CredentialsType string `json:"credentialsType"`

	// CredentialsValue is a string for ACCESS_TOKEN responses and an
	// object for MQTT_BASIC responses.
	CredentialsValue json.RawMessage `json:"credentialsValue"`

	// ErrorMsg explains a FAILURE status.
	ErrorMsg string `json:"errorMsg"`
}

// ParseResponse decodes a parsed response document into a Response.
func ParseResponse(doc routing.Document) (Response, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return resp, nil
}

// Provisioned reports whether the platform created the device.
func (r Response) Provisioned() bool {
	return r.Status == StatusSuccess
}

// AccessToken returns the issued access token. It fails unless the
// response carries ACCESS_TOKEN credentials.
func (r Response) AccessToken() (string, error) {
	if r.CredentialsType != credentialsTypeAccessToken {
		return "", fmt.Errorf("%w: %q", ErrCredentialsMismatch, r.CredentialsType)
	}
	var token string
	if err := json.Unmarshal(r.CredentialsValue, &token); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return token, nil
}

// BasicCredentials returns the issued MQTT_BASIC credentials. It fails
// unless the response carries MQTT_BASIC credentials.
func (r Response) BasicCredentials() (BasicValue, error) {
	if r.CredentialsType != credentialsTypeBasic {
		return BasicValue{}, fmt.Errorf("%w: %q", ErrCredentialsMismatch, r.CredentialsType)
	}
	var v BasicValue
	if err := json.Unmarshal(r.CredentialsValue, &v); err != nil {
		return BasicValue{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return v, nil
}
