package provision

import (
	"encoding/json"

	"github.com/provwire/provision-go/pkg/routing"
)

// ResponseHandler receives the platform's parsed response document.
type ResponseHandler func(doc routing.Document)

// Request describes one provisioning attempt. Key and Secret are required;
// they select the device profile the platform creates the device from.
// DeviceName is optional (the platform generates a name when empty).
type Request struct {
	// Key is the provision device key (required).
	Key string

	// Secret is the provision device secret (required).
	Secret string

	// DeviceName is the name for the device being created (optional).
	DeviceName string

	// Credentials selects the credential mechanism for the new device.
	// The zero value lets the platform generate credentials.
	Credentials Credentials

	// Handler is invoked with the platform's parsed response document.
	// A nil handler is replaced by a no-op.
	Handler ResponseHandler
}

// requestPayload is the wire shape of a provisioning request. Optional
// fields carry omitempty so only the keys relevant to the chosen
// credential mechanism are sent; the required key/secret pair is always
// present.
type requestPayload struct {
	DeviceName      string `json:"deviceName,omitempty"`
	Token           string `json:"token,omitempty"`
	Username        string `json:"username,omitempty"`
	Password        string `json:"password,omitempty"`
	ClientID        string `json:"clientId,omitempty"`
	Hash            string `json:"hash,omitempty"`
	CredentialsType string `json:"credentialsType,omitempty"`
	Key             string `json:"provisionDeviceKey"`
	Secret          string `json:"provisionDeviceSecret"`
}

// payload builds the sparse wire representation of the request.
func (r Request) payload() requestPayload {
	return requestPayload{
		DeviceName:      r.DeviceName,
		Token:           r.Credentials.token,
		Username:        r.Credentials.username,
		Password:        r.Credentials.password,
		ClientID:        r.Credentials.clientID,
		Hash:            r.Credentials.certHash,
		CredentialsType: r.Credentials.method.credentialsType(),
		Key:             r.Key,
		Secret:          r.Secret,
	}
}

// encodePayload encodes the request as a JSON document.
func (r Request) encodePayload() ([]byte, error) {
	return json.Marshal(r.payload())
}
