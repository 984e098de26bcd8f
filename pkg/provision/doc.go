// Package provision implements the one-shot device-provisioning handshake.
//
// # Overview
//
// A device that does not yet have operational credentials asks the remote
// platform to create them: it publishes a provisioning request on the
// fixed request topic and receives the platform's answer asynchronously on
// the fixed response topic. The provision device key and secret identify
// which device profile the platform should create the device from.
//
// # Handshake Flow
//
//  1. Caller submits a Request with key, secret, and a response handler
//  2. Service subscribes to the response topic and stores the handler
//  3. Service publishes the sparse JSON request payload
//  4. The platform answers on the response topic (one response per attempt)
//  5. The routing layer delivers the parsed document; the stored handler
//     runs and the response subscription is released
//
// # Correlation
//
// Exactly one provisioning attempt can be outstanding. The response
// handler lives in a single correlation slot: submitting a new request
// while one is pending silently replaces the stored handler, so the
// superseded handler is never invoked (last request wins). There is no
// response timeout; an unanswered attempt stays pending until superseded
// or explicitly unsubscribed.
//
// # Credentials
//
// The platform supports several credential mechanisms for the device being
// created. The Credentials constructors (AccessTokenCredentials,
// BasicCredentials, X509Credentials) each set exactly the fields their
// mechanism uses; the zero value requests platform-generated credentials.
// Only non-empty fields appear in the request payload.
package provision
