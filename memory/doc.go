// Package memory holds the conversational memory record and its persistence.
//
// Persistence model:
//   - One JSON document with exactly two fields: name (omitted when unset)
//     and history (always present, ordered). Pretty-printed so the file is
//     readable and diffable, and round-trips exactly through Save/Load.
//   - Writes go through a temp file and rename so a failure mid-write never
//     corrupts an existing record.
package memory
