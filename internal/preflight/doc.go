// Package preflight provides readiness checks for the ffmpeg toolchain and the
// filesystem paths a conversion run touches.
//
// The CLI "oggify check" command renders RunAll results as a table. Batch
// runs call CheckDirectoryAccess before enumerating so an unwritable target
// fails fast instead of once per file.
package preflight
