// Package logx is a thin leveled wrapper around the standard library's
// log.Logger: INFO for normal progress (epoch summaries, early stop) and
// WARN for recoverable problems (a skipped unreadable or malformed input
// file). It exists so the cmd entry points share one consistent line
// format without pulling in a
// structured-logging framework nothing else in this module needs.
package logx
