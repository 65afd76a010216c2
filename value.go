package clipper

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// convert turns a raw token into a typed option value. Strings are taken
// verbatim, characters keep the first rune of the token, and numbers parse the
// leading numeric prefix of the token; a value outside the range of the
// concrete numeric type is a conversion failure, never a silent wrap.
func convert[T Value](token string) (T, error) {
	var out T
	var err error
	switch p := any(&out).(type) {
	case *string:
		*p = token
	case *Char:
		if token == "" {
			err = fmt.Errorf("cannot convert empty value to a character")
			break
		}
		r, _ := utf8.DecodeRuneInString(token)
		*p = Char(r)
	case *int:
		// int options keep a 32-bit range regardless of the platform word
		// size, so range failures are deterministic; use int64 for wider
		// values.
		var n int64
		n, err = parseSigned(token, 32)
		*p = int(n)
	case *int8:
		var n int64
		n, err = parseSigned(token, 8)
		*p = int8(n)
	case *int16:
		var n int64
		n, err = parseSigned(token, 16)
		*p = int16(n)
	case *int32:
		var n int64
		n, err = parseSigned(token, 32)
		*p = int32(n)
	case *int64:
		*p, err = parseSigned(token, 64)
	case *uint:
		var n uint64
		n, err = parseUnsigned(token, strconv.IntSize)
		*p = uint(n)
	case *uint8:
		var n uint64
		n, err = parseUnsigned(token, 8)
		*p = uint8(n)
	case *uint16:
		var n uint64
		n, err = parseUnsigned(token, 16)
		*p = uint16(n)
	case *uint32:
		var n uint64
		n, err = parseUnsigned(token, 32)
		*p = uint32(n)
	case *uint64:
		*p, err = parseUnsigned(token, 64)
	case *float32:
		var f float64
		f, err = parseFloat(token, 32)
		*p = float32(f)
	case *float64:
		*p, err = parseFloat(token, 64)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func parseSigned(token string, bitSize int) (int64, error) {
	n, err := strconv.ParseInt(integerPrefix(token), 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to an integer", token)
	}
	return n, nil
}

func parseUnsigned(token string, bitSize int) (uint64, error) {
	n, err := strconv.ParseUint(integerPrefix(token), 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to an unsigned integer", token)
	}
	return n, nil
}

func parseFloat(token string, bitSize int) (float64, error) {
	f, err := strconv.ParseFloat(floatPrefix(token), bitSize)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to a number", token)
	}
	return f, nil
}

// integerPrefix returns the longest leading run of token that looks like a
// decimal integer: an optional sign followed by digits. Sign handling for
// unsigned types is left to strconv.
func integerPrefix(token string) string {
	i := 0
	if i < len(token) && (token[i] == '+' || token[i] == '-') {
		i++
	}
	for i < len(token) && isDigit(token[i]) {
		i++
	}
	return token[:i]
}

// floatPrefix returns the longest leading run of token that forms a decimal
// floating-point literal: sign, integer digits, fraction, and an exponent only
// when it is complete.
func floatPrefix(token string) string {
	i := 0
	if i < len(token) && (token[i] == '+' || token[i] == '-') {
		i++
	}
	digits := 0
	for i < len(token) && isDigit(token[i]) {
		i++
		digits++
	}
	if i < len(token) && token[i] == '.' {
		j := i + 1
		for j < len(token) && isDigit(token[j]) {
			j++
			digits++
		}
		if digits > 0 {
			i = j
		}
	}
	if digits == 0 {
		return ""
	}
	if i < len(token) && (token[i] == 'e' || token[i] == 'E') {
		j := i + 1
		if j < len(token) && (token[j] == '+' || token[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(token) && isDigit(token[j]) {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	return token[:i]
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
