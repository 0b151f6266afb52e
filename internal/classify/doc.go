// Package classify implements the token classification pipeline behind the
// /bfhl endpoint.
//
// Given an ordered list of nullable tokens, the pipeline:
//
//  1. sorts every token into exactly one category (even number, odd number,
//     alphabetic word, special),
//  2. sums the numeric tokens with arbitrary precision,
//  3. collects the letters of the alphabetic words in input order, and
//  4. derives the transform string (letters reversed, alternating case).
//
// The user identity string is derived separately from the configured full
// name and date of birth, so it is always available even when the pipeline
// fails. A failing pipeline never surfaces as a Go error from Process: the
// caller receives the failure variant of Result instead.
//
// Everything here is pure. A Pipeline holds no mutable state and can be
// shared between goroutines.
package classify
