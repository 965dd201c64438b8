// Package session persists the daybook backend session token.
//
// The token is stored in a single file under the user's cache directory
// (e.g. ~/.cache/daybook/session.token on Linux) so that a restarted
// process resumes its authenticated state without re-login.
//
// Ownership rules:
//   - Only the auth gateway writes the store (SetToken on login/register,
//     Clear on logout).
//   - The request dispatcher only reads it, immediately before each
//     outgoing request.
//
// There is no expiry tracking. An expired or revoked token is discovered
// when the backend rejects the next authenticated call.
package session
