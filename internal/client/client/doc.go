// Package client is the typed gRPC client of syncserver.
//
// GRPCClient injects the access token into every call and maps gRPC status
// codes to the sentinel errors below so callers can match them with errors.Is. Expected protocol outcomes (a stale master
// version, a held lock, an already staged upload) are not errors: they come
// back as fields of the response.
package client
