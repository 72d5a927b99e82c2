// Package token signs and verifies the HS256 session tokens a
// generated panel issues, for smoke-testing a deployment from the CLI.
//
// The HMAC key is the raw JWT_SECRET string, matching how the generated
// app's jsonwebtoken calls treat the secret.
package token
