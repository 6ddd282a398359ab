// Package fileutil reads and writes the CLI's input and report files.
//
// Reads are bounded so a mistaken path (a log, a disk image) fails fast
// instead of being pulled into memory. Writes go to a temporary file in the
// destination directory and are renamed into place, so an interrupted run
// never leaves a half-written report behind.
package fileutil
