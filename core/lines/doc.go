// Package lines counts newline-delimited records in a byte stream.
//
// A line ends at a line feed (0x0A). A carriage return is an ordinary byte, so a
// CRLF pair ends exactly one line. A non-empty stream whose last byte is not a
// line feed has one more, unterminated, line:
//
//	lines = count(0x0A) + (1 if len > 0 and last byte != 0x0A)
//
// Streams are consumed in fixed-size chunks and never held in memory.
package lines
