package provision

// Provisioning topics.
const (
	// RequestTopic is the topic provisioning requests are published to.
	RequestTopic = "/provision/request"

	// ResponseTopic is the topic the platform answers on.
	ResponseTopic = "/provision/response"
)

// JSON keys used in the request payload.
const (
	KeyDeviceName      = "deviceName"
	KeyDeviceKey       = "provisionDeviceKey"
	KeyDeviceSecret    = "provisionDeviceSecret"
	KeyCredentialsType = "credentialsType"
	KeyToken           = "token"
	KeyUsername        = "username"
	KeyPassword        = "password"
	KeyClientID        = "clientId"
	KeyHash            = "hash"
)

// credentialsType tag values understood by the platform.
const (
	credentialsTypeAccessToken = "ACCESS_TOKEN"
	credentialsTypeBasic       = "MQTT_BASIC"
	credentialsTypeX509        = "X509_CERTIFICATE"
)

// Method identifies the credential mechanism the provisioned device will
// authenticate with.
type Method uint8

const (
	// MethodNone lets the platform generate credentials for the device.
	MethodNone Method = iota

	// MethodAccessToken supplies a pre-chosen access token.
	MethodAccessToken

	// MethodBasic supplies username/password (and optionally client ID).
	MethodBasic

	// MethodX509 supplies the hash of the device's client certificate.
	MethodX509
)

// String returns a human-readable method name.
func (m Method) String() string {
	switch m {
	case MethodNone:
		return "NONE"
	case MethodAccessToken:
		return "ACCESS_TOKEN"
	case MethodBasic:
		return "MQTT_BASIC"
	case MethodX509:
		return "X509_CERTIFICATE"
	default:
		return "UNKNOWN"
	}
}

// credentialsType returns the payload tag for the method, or "" for
// MethodNone (the tag is omitted and the platform picks).
func (m Method) credentialsType() string {
	switch m {
	case MethodAccessToken:
		return credentialsTypeAccessToken
	case MethodBasic:
		return credentialsTypeBasic
	case MethodX509:
		return credentialsTypeX509
	default:
		return ""
	}
}

// Credentials describes the credential mechanism requested for the device
// being provisioned. The zero value requests platform-generated
// credentials. Use the constructors; they set exactly the fields valid for
// their method, so mixed or contradictory combinations cannot be built.
type Credentials struct {
	method   Method
	token    string
	clientID string
	username string
	password string
	certHash string
}

// AccessTokenCredentials requests the device be created with the given
// access token.
func AccessTokenCredentials(token string) Credentials {
	return Credentials{method: MethodAccessToken, token: token}
}

// BasicCredentials requests username/password authentication for the
// device. clientID may be empty; the platform derives one.
func BasicCredentials(clientID, username, password string) Credentials {
	return Credentials{
		method:   MethodBasic,
		clientID: clientID,
		username: username,
		password: password,
	}
}

// X509Credentials requests certificate authentication, identified by the
// hash of the device's client certificate.
func X509Credentials(certHash string) Credentials {
	return Credentials{method: MethodX509, certHash: certHash}
}

// Method returns the credential mechanism.
func (c Credentials) Method() Method {
	return c.method
}
