// Package sample turns external probe commands into raw readings.
//
// A Command runs one program through an exec.Runner and returns its complete
// stdout. Anything written to stderr fails the sample with a *SourceError,
// even when stdout was also produced. Malformed stdout is not an error here;
// parsers such as ParseTemperature report it as a missing reading instead.
package sample
