// Package batch converts every eligible audio file in a directory into an
// Ogg file under the directory's ready/ subfolder.
//
// A Scheduler enumerates direct children with a .wav or .mp3 extension, skips
// inputs whose output already exists, and feeds the rest to a fixed pool of
// worker goroutines. Run blocks until every dispatched task has reached a
// terminal state and returns a Summary; a failure converting one file is
// recorded in that file's Result and never stops its siblings.
//
// Each task owns a copy of the filter configuration and writes to a hidden,
// uniquely named temp file beside its output. The temp file is renamed into
// place only after the converter succeeds, so an interrupted run cannot
// leave an output the skip check would later mistake for a finished one.
package batch
