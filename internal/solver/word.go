package solver

import (
	"errors"
	"fmt"
)

// WordLength is the fixed length of every word, guess, and feedback pattern.
const WordLength = 5

// ErrMalformedGuess reports a guess that is not a 5-letter alphabetic token.
var ErrMalformedGuess = errors.New("malformed guess")

// Word is a fixed-length uppercase word. Words compare and sort by plain
// byte order.
type Word [WordLength]byte

// ParseWord normalizes raw to uppercase and validates it. It returns
// ErrMalformedGuess when raw is not exactly WordLength ASCII letters.
func ParseWord(raw string) (Word, error) {
	var w Word
	if len(raw) != WordLength {
		return w, fmt.Errorf("%w: %q is not %d letters", ErrMalformedGuess, raw, WordLength)
	}
	for i := 0; i < WordLength; i++ {
		c := raw[i]
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case c >= 'A' && c <= 'Z':
		default:
			return w, fmt.Errorf("%w: %q is not alphabetic", ErrMalformedGuess, raw)
		}
		w[i] = c
	}
	return w, nil
}

// MustWord is ParseWord for trusted literals; it panics on malformed input.
func MustWord(raw string) Word {
	w, err := ParseWord(raw)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Word) String() string {
	return string(w[:])
}

// letterIndex maps an uppercase ASCII letter to 0..25.
// Inputs are validated to A-Z by ParseWord.
func letterIndex(c byte) int { return int(c - 'A') }
