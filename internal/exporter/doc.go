// Package exporter writes the pipeline's output artifacts: the combined
// messages CSV and the optional statistics workbook.
package exporter
