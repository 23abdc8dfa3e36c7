package parse

import (
	"errors"
	"strconv"
	"strings"

	"go.trai.ch/evry/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parse converts duration text into a total millisecond count.
//
// The grammar is a sequence of "<quantity> <unit>" terms separated by any mix
// of whitespace and commas. Terms are additive regardless of order or unit
// repetition: "1 week 1 week" equals "2 weeks". Quantities are non-negative
// integers and may contain underscores or commas as visual separators when
// they sit directly between digits ("3_000", "1,000").
//
// The parse is atomic: any malformed input returns an error and no partial
// total. Errors are ErrEmptyDuration, ErrDurationSyntax (carrying position
// and offending text) or ErrDurationOverflow.
func Parse(text string) (domain.Milliseconds, error) {
	input := strings.TrimSpace(text)
	if input == "" {
		return 0, domain.ErrEmptyDuration
	}

	var total domain.Milliseconds
	terms := 0

	i := 0
	for i < len(input) {
		for i < len(input) && isSeparator(input[i]) {
			i++
		}
		if i >= len(input) {
			break
		}

		quantity, next, err := scanQuantity(input, i)
		if err != nil {
			return 0, err
		}
		i = next

		for i < len(input) && isSeparator(input[i]) {
			i++
		}

		unitMs, next, err := scanUnit(input, i)
		if err != nil {
			return 0, err
		}
		i = next

		termMs, ok := unitMs.MulChecked(quantity)
		if !ok {
			return 0, domain.ErrDurationOverflow
		}
		total, ok = total.AddChecked(termMs)
		if !ok {
			return 0, domain.ErrDurationOverflow
		}
		terms++
	}

	if terms == 0 {
		return 0, domain.ErrEmptyDuration
	}
	return total, nil
}

// scanQuantity reads a non-negative integer starting at pos, allowing '_' and
// ',' between digits as visual separators.
func scanQuantity(input string, pos int) (uint64, int, error) {
	if pos >= len(input) || !isDigit(input[pos]) {
		return 0, 0, syntaxError(input, pos, "expected a number")
	}

	i := pos
	for i < len(input) {
		c := input[i]
		if isDigit(c) {
			i++
			continue
		}
		// A separator character is part of the number only when flanked by
		// digits; otherwise it ends the quantity ("5, 2weeks").
		if (c == '_' || c == ',') && i+1 < len(input) && isDigit(input[i+1]) && isDigit(input[i-1]) {
			i++
			continue
		}
		break
	}

	digits := strings.Map(func(r rune) rune {
		if r == '_' || r == ',' {
			return -1
		}
		return r
	}, input[pos:i])

	quantity, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, 0, domain.ErrDurationOverflow
		}
		return 0, 0, syntaxError(input, pos, "malformed number")
	}
	return quantity, i, nil
}

// scanUnit reads a unit spelling starting at pos and resolves it through the
// lexicon.
func scanUnit(input string, pos int) (domain.Milliseconds, int, error) {
	i := pos
	for i < len(input) && isLetter(input[i]) {
		i++
	}
	if i == pos {
		return 0, 0, syntaxError(input, pos, "expected a time unit")
	}

	spelling := input[pos:i]
	ms, ok := ResolveUnit(spelling)
	if !ok {
		return 0, 0, syntaxError(input, pos, "unknown time unit "+strconv.Quote(spelling))
	}
	return ms, i, nil
}

func syntaxError(input string, pos int, detail string) error {
	snippet := input[pos:]
	if len(snippet) > 16 {
		snippet = snippet[:16]
	}
	err := zerr.Wrap(domain.ErrDurationSyntax, detail)
	err = zerr.With(err, "position", pos)
	return zerr.With(err, "near", snippet)
}

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ','
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
