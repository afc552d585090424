// Package buckets exposes bucket and blob operations over HTTP.
//
// It is a thin REST surface over core/objectstore: every route performs one
// storage round trip and maps the objectstore error taxonomy onto HTTP
// status codes (404 for missing resources, 409 for name conflicts and
// non-empty bucket deletes, 403 for permission failures).
//
// Uploads and downloads stream through the gateway; when a journal is
// configured, transfers are recorded after the storage call succeeds.
package buckets
