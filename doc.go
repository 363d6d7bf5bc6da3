// Package strtime formats and parses timestamps with strftime-style format
// strings.
//
// A format string mixes literal text with directives of the form
// %[modifier]letter. Modifiers are "-" (no padding), "_" (pad with spaces,
// lowercase text), "^" (unpadded numbers, flip text to upper case) and ":"
// (ordinal numbers, colon-separated offsets). %%, %n and %t produce a
// percent sign, a newline and a tab.
//
// Parsing accepts adjacent numbers without separators, as in "%Y%m%d". When
// the width of such a number is not fixed by the input, candidate widths are
// tried until one lets the rest of the timestamp parse.
package strtime
