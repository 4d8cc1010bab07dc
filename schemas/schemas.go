// Package schemas embeds the JSON Schemas for scorecard input files.
package schemas

import _ "embed"

// SnapshotSchemaJSON is the JSON Schema for cohort snapshot files.
//
//go:embed snapshot.schema.json
var SnapshotSchemaJSON string
