// Package auth implements the gateway to the backend's credential
// endpoints (/auth/login and /auth/register).
//
// On success both operations persist the issued bearer token into the
// session store; this package is the store's sole writer. Rejections
// carry the server-supplied message as an *api.AuthError so callers can
// show it to the user unchanged.
package auth
