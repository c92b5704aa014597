// Package files provides discovery of message export files on disk.
//
// Message exporters write one CSV (or Excel) file per conversation into a
// folder named after the conversation, so the parent directory name is the
// natural provenance identifier and is captured on every discovered file.
package files
