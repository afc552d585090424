// Package journal provides an optional relational log of storage transfers.
//
// Every upload, download, and delete performed through the CLI or the HTTP
// gateway can be appended to the journal for later inspection. The journal
// is strictly advisory: a failed database connection downgrades to a warning
// and the application continues without it, and a nil *Journal is a valid
// no-op receiver.
//
// Backed by GORM with mysql (production) and sqlite (local/testing) drivers.
package journal
