// Package testsupport provides fixtures shared by package tests: temporary
// configurations, stub executables on PATH, and small audio files.
package testsupport
