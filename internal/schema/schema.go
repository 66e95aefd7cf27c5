// Package schema declares the sheet schemas served by the import service
// and registers them with the catalog. Import this package to ensure all
// definitions are registered.
package schema

// Each file declares one record type, its sheetbind.Schema literal, and an
// init() that registers a catalog definition for it.
