package tokenizer

import (
	"unicode"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for a single HTTP request line.
// Every rune of the line is matched by exactly one of:
// 1. SP (a single space)
// 2. Space (a run of non-SP whitespace)
// 3. Text (a run of non-whitespace)
//
// Matchers decide on the first rune only and never consume input when they
// return nil, so matcher order does not affect correctness.
//
// Note: the default whitespace skipper is not used because spaces are
// semantically significant in the request line.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		SPMatcher(),
		SpaceMatcher(),
		TextMatcher(),
	)
}

// NewTokenizerWithStream creates a request-line tokenizer using a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// SPMatcher matches a single space character.
func SPMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != ' ' {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenSP, []rune{' '})
	}
}

// SpaceMatcher matches a run of whitespace that does not contain SP.
func SpaceMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || r == ' ' || !unicode.IsSpace(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenSpace, value)
	}
}

// TextMatcher matches a run of non-whitespace characters.
// This is used for the method, the request-target and the protocol token.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || unicode.IsSpace(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenText, value)
	}
}
