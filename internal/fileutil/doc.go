// Package fileutil holds the small filesystem helpers the converter relies on:
// existence checks for the skip logic, output naming, and moving finished
// temporary files into place.
package fileutil
