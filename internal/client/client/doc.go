// Package client talks to the site's users API and bootstraps the local
// SQLite store.
//
// # Overview
//
//  1. Client is the transport-agnostic contract used by the services:
//     Login, ListUsers, CreateUser, UpdateUser, DeleteUser.
//  2. HTTPClient implements it over JSON/HTTP. Login and registration go to
//     the auth base URL, listing/update/delete to the API base URL. A
//     RoundTripper injects the stored bearer token and an X-Request-ID.
//  3. InitDatabase and RunMigrations open the local store and apply the
//     embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx answers are *APIError
// values carrying the backend "message" field; errors.Is(err,
// ErrUnauthorized) matches 401/403. Undecodable 2xx bodies wrap
// ErrBadResponse.
//
// Nothing is retried and no timeout is imposed unless WithTimeout is given.
package client
