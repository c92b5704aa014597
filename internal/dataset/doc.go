// Package dataset holds the in-memory table model used by the combiner and
// analyzer, with readers for the CSV and Excel formats message exporters
// produce. Tables are small enough to hold fully in memory, so there is no
// streaming parse.
package dataset
