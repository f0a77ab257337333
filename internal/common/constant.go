// Package common contains shared constants and sentinel errors used across
// syncserver components.
package common

// AccessTokenHeaderName is the gRPC metadata key carrying the access token.
const AccessTokenHeaderName = "access_token"
