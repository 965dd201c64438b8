// Package api implements the request dispatcher for the daybook
// backend and the generic CRUD adapter built on top of it.
//
// The dispatcher is a single configured HTTP client. Its base origin is
// resolved from a deployment target (see BaseURLForTarget) and every
// route lives under a fixed /api prefix. An interception stage reads
// the session store before each outgoing request and attaches the
// bearer token when one is present; requests without a token proceed
// unauthenticated.
//
// All request and response bodies are JSON. Failures map onto a small
// taxonomy the rest of the application dispatches on:
//
//   - AuthError: credential rejection (produced by the auth gateway)
//   - ResourceError: non-2xx response, carries status and server message
//   - TransportError: no response obtained at all
//   - MalformedResponseError: response body not in the expected shape
//
// The dispatcher performs no retries, caching or request deduplication.
// Consistency comes from the callers re-reading the collection after
// every mutation, not from anything in this package.
package api
