// Package combiner aggregates per-conversation message export files into a
// single combined CSV artifact with a provenance column.
package combiner
