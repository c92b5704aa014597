// Package report turns analysis results into interactive charts. The page is
// rendered with go-echarts and either written to a file or served on a
// localhost server that opens in the user's browser.
package report
