// Package client holds the CLI's connection to the self-hosted portal
// backend and the bootstrap of its local SQLite database.
//
// GRPCClient implements identity.Provider, store.Store and orphans.Reporter
// over portal.v1.PortalService. Every call carries the project API key and
// a request id, and runs under its own timeout. gRPC status codes are mapped
// as follows:
//
//   - Unauthenticated, PermissionDenied: common.ErrorUnauthorized, except on
//     SignIn where they mean identity.ErrInvalidCredentials.
//   - Unavailable, DeadlineExceeded, Canceled: identity.ErrUnavailable.
//   - anything else: *identity.ProviderError with the status message.
//
// InitDatabase opens the session database and applies the embedded goose
// migrations.
package client
