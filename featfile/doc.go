// Package featfile parses the text feature-file format, file-list
// manifests and HAR label files, and assembles per-source-file sequences
// (with end-of-phoneme markers and delta expansion already applied) into
// a dataset.Dataset.
//
// The feature-file format is not valid CSV (fields may be comma- or
// whitespace-separated, and a record's tail is a flat run of
// frame_count*feature_count floats with no further delimiter structure of
// its own), so this package hand-scans lines with bufio and strings
// rather than reaching for a CSV or struct-tag decoder — the one parser
// in this module with no good third-party fit in the retrieved pack.
package featfile
