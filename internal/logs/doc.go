// Package logs reads back the JSON log file written when logging.dir is set.
//
// Tail returns the last lines of the file without loading it whole. FilterRun
// narrows those lines to one collection run using the run_id field the
// workflow attaches to every record it logs.
package logs
