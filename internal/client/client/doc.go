// Package client contains client-side building blocks for runaudit.
//
// # Overview
//
// The package provides:
//  1. The API contract used by the CLI (see the Client interface).
//  2. An HTTP implementation (see HTTPClient) that speaks JSON and multipart
//     to the /api/v1 endpoints and turns error bodies into *APIError.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     SQLite session cache, applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Server rejections are *APIError
// values that unwrap to the shared sentinels in package common, so
// errors.Is(err, common.ErrorUnauthorized) works for any 401.
package client
