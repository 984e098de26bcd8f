// Command provision-cli demonstrates the device-provisioning handshake
// against a simulated platform.
//
// The CLI builds a provisioning request from flags, a YAML config file, or
// an interactive prompt, submits it over an in-memory loopback transport,
// and prints the credentials the simulated platform issues.
//
// Usage:
//
//	provision-cli [flags]
//
// Flags:
//
//	-config string       YAML config file path
//	-key string          Provision device key (required unless in config)
//	-secret string       Provision device secret (required unless in config)
//	-device-name string  Device name (default: generated)
//	-token string        Pre-chosen access token credentials
//	-username string     MQTT basic credentials: username
//	-password string     MQTT basic credentials: password
//	-client-id string    MQTT basic credentials: client ID
//	-cert-hash string    X.509 credentials: client certificate hash
//	-interactive         Prompt for key and secret
//	-capture string      Write a .plog capture file to this path
//	-log-level string    Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Provision with platform-generated credentials
//	provision-cli -key DEVICE_KEY -secret DEVICE_SECRET -device-name sensor-1
//
//	# Provision with a pre-chosen access token, capturing the handshake
//	provision-cli -key K -secret S -token tok-123 -capture handshake.plog
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/provwire/provision-go/pkg/log"
	"github.com/provwire/provision-go/pkg/provision"
	"github.com/provwire/provision-go/pkg/routing"
	"github.com/provwire/provision-go/pkg/transport"
)

// config holds the provisioning parameters, merged from the config file
// and flags (flags win).
type config struct {
	Key        string `yaml:"provisionKey"`
	Secret     string `yaml:"provisionSecret"`
	DeviceName string `yaml:"deviceName"`

	Credentials struct {
		Token    string `yaml:"token"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		CertHash string `yaml:"certHash"`
	} `yaml:"credentials"`
}

func main() {
	var (
		configPath  = flag.String("config", "", "YAML config file path")
		key         = flag.String("key", "", "provision device key")
		secret      = flag.String("secret", "", "provision device secret")
		deviceName  = flag.String("device-name", "", "device name (default: generated)")
		token       = flag.String("token", "", "access token credentials")
		username    = flag.String("username", "", "MQTT basic credentials: username")
		password    = flag.String("password", "", "MQTT basic credentials: password")
		clientID    = flag.String("client-id", "", "MQTT basic credentials: client ID")
		certHash    = flag.String("cert-hash", "", "X.509 client certificate hash")
		interactive = flag.Bool("interactive", false, "prompt for key and secret")
		capturePath = flag.String("capture", "", "write a .plog capture file to this path")
		logLevel    = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	logger := newLogger(*logLevel)
	slog.SetDefault(logger)

	cfg := config{}
	if *configPath != "" {
		if err := loadConfigFile(*configPath, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
	}
	mergeFlag(&cfg.Key, *key)
	mergeFlag(&cfg.Secret, *secret)
	mergeFlag(&cfg.DeviceName, *deviceName)
	mergeFlag(&cfg.Credentials.Token, *token)
	mergeFlag(&cfg.Credentials.Username, *username)
	mergeFlag(&cfg.Credentials.Password, *password)
	mergeFlag(&cfg.Credentials.ClientID, *clientID)
	mergeFlag(&cfg.Credentials.CertHash, *certHash)

	if *interactive {
		if err := promptCredentials(&cfg); err != nil {
			fmt.Fprintf(os.Stderr, "prompt: %v\n", err)
			os.Exit(1)
		}
	}

	if cfg.DeviceName == "" {
		cfg.DeviceName = "device-" + uuid.NewString()[:8]
		logger.Info("generated device name", "device_name", cfg.DeviceName)
	}

	capture, closeCapture := buildCapture(logger, *capturePath)

	err := run(logger, capture, cfg)
	closeCapture()
	if err != nil {
		logger.Error("provisioning failed", "error", err)
		os.Exit(1)
	}
}

// run wires the loopback transport, routing, and provisioning service
// together and performs one handshake.
func run(logger *slog.Logger, capture log.Logger, cfg config) error {
	lb := transport.NewLoopback()
	startFakePlatform(lb)

	var requestID uint32
	router := routing.NewRouter(lb, routing.Hooks{
		NextRequestID: func() uint32 { requestID++; return requestID },
	})
	lb.SetInbound(func(topic string, payload []byte) {
		if !router.Dispatch(topic, payload) {
			logger.Warn("unroutable message", "topic", topic)
		}
	})

	svc := provision.New(nil, provision.WithLogger(capture))
	if err := router.Register(svc); err != nil {
		return err
	}

	done := make(chan provision.Response, 1)
	req := provision.Request{
		Key:         cfg.Key,
		Secret:      cfg.Secret,
		DeviceName:  cfg.DeviceName,
		Credentials: buildCredentials(cfg),
		Handler: func(doc routing.Document) {
			resp, err := provision.ParseResponse(doc)
			if err != nil {
				logger.Error("bad response document", "error", err)
				return
			}
			done <- resp
		},
	}

	if err := svc.Request(req); err != nil {
		return err
	}
	logger.Info("provisioning request sent",
		"device_name", cfg.DeviceName,
		"method", req.Credentials.Method().String())

	select {
	case resp := <-done:
		return report(logger, resp)
	case <-time.After(5 * time.Second):
		return fmt.Errorf("no response from platform")
	}
}

// report prints the provisioning outcome.
func report(logger *slog.Logger, resp provision.Response) error {
	if !resp.Provisioned() {
		return fmt.Errorf("platform rejected request: %s", resp.ErrorMsg)
	}

	logger.Info("device provisioned", "credentials_type", resp.CredentialsType)
	if token, err := resp.AccessToken(); err == nil {
		fmt.Printf("access token: %s\n", token)
	} else if basic, err := resp.BasicCredentials(); err == nil {
		fmt.Printf("client id: %s\nusername: %s\npassword: %s\n",
			basic.ClientID, basic.Username, basic.Password)
	} else {
		fmt.Printf("credentials: %s\n", string(resp.CredentialsValue))
	}
	return nil
}

// buildCredentials maps config fields onto a credentials constructor.
func buildCredentials(cfg config) provision.Credentials {
	c := cfg.Credentials
	switch {
	case c.Token != "":
		return provision.AccessTokenCredentials(c.Token)
	case c.Username != "" || c.Password != "" || c.ClientID != "":
		return provision.BasicCredentials(c.ClientID, c.Username, c.Password)
	case c.CertHash != "":
		return provision.X509Credentials(c.CertHash)
	default:
		return provision.Credentials{}
	}
}

// startFakePlatform answers provisioning requests on the loopback: it
// echoes the requested token, or issues a generated one. Responses are
// delivered asynchronously, as a broker would.
func startFakePlatform(lb *transport.Loopback) {
	lb.OnPublish(func(topic string, payload []byte) {
		if topic != provision.RequestTopic {
			return
		}

		var req map[string]any
		answer := map[string]any{
			"status":           "SUCCESS",
			"credentialsType":  "ACCESS_TOKEN",
			"credentialsValue": "platform-" + uuid.NewString()[:13],
		}
		if err := json.Unmarshal(payload, &req); err != nil {
			answer = map[string]any{"status": "FAILURE", "errorMsg": "invalid request payload"}
		} else if token, ok := req[provision.KeyToken].(string); ok {
			answer["credentialsValue"] = token
		}

		out, _ := json.Marshal(answer)
		go lb.Deliver(provision.ResponseTopic, out)
	})
}

// promptCredentials asks for key and secret on the terminal.
func promptCredentials(cfg *config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "provision key> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		return err
	}
	cfg.Key = strings.TrimSpace(line)

	rl.SetPrompt("provision secret> ")
	line, err = rl.Readline()
	if err != nil {
		return err
	}
	cfg.Secret = strings.TrimSpace(line)
	return nil
}

// loadConfigFile reads provisioning parameters from a YAML file.
func loadConfigFile(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// mergeFlag overrides dst when the flag was set to a non-empty value.
func mergeFlag(dst *string, flagValue string) {
	if flagValue != "" {
		*dst = flagValue
	}
}

// buildCapture assembles the capture logger from the CLI options. The
// returned close function flushes the capture file, if any.
func buildCapture(logger *slog.Logger, capturePath string) (log.Logger, func()) {
	slogCapture := log.NewSlogAdapter(logger)
	if capturePath == "" {
		return slogCapture, func() {}
	}

	file, err := log.NewFileLogger(capturePath)
	if err != nil {
		logger.Warn("capture file unavailable", "path", capturePath, "error", err)
		return slogCapture, func() {}
	}
	return log.NewMultiLogger(slogCapture, file), func() { _ = file.Close() }
}

// newLogger creates the operational slog logger at the requested level.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
