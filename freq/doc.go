// Package freq accumulates opcode execution counts and ranks them.
//
// Profiling logs are plain text, one record per line:
//
//	<count> <opcode>
//
// where both fields are base 10 integers separated by whitespace. Blank
// lines are ignored. Counts for the same opcode are summed across every
// record of every file read into a Counts table.
package freq
