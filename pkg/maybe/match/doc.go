// Package match provides the membership tests used when a maybe.Maybe acts
// as a pattern. A pattern accepts a candidate value when it is a Matcher
// that matches it, a func(any) bool that returns true for it, or a plain
// value deeply equal to it.
package match
