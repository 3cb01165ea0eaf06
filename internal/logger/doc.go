// Package logger builds the zap logger used by the lvseq command line.
// The library packages never log; only cli does.
package logger
