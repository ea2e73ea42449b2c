// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package checksum

import (
	"fmt"
	"strings"
)

const (
	// inputCharset lists every character that may appear in a
	// descriptor.  The index of a character is split into a group (the
	// upper bits) and a symbol within that group (the lower five bits).
	inputCharset = "0123456789()[],'/*abcdefgh@:$%{}" +
		"IJKLMNOPQRSTUVWXYZ&+-.;<=>?!^_|~" +
		"ijklmnopqrstuvwxyzABCDEFGH`#\"\\ "

	// checksumCharset is the bech32 character set used to encode the
	// checksum symbols.
	checksumCharset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

	// Length is the number of characters in a descriptor checksum.
	Length = 8

	// Separator separates a descriptor from its checksum.
	Separator = '#'
)

// gen are the generator coefficients of the BCH code over GF(32) used by the
// descriptor checksum.
var gen = [5]uint64{
	0xf5dee51989, 0xa9fdca3312, 0x1bab10e32d, 0x3706b1677a, 0x644d626ffd,
}

// polyMod feeds a single 5-bit value into the checksum state c.
func polyMod(c uint64, val uint64) uint64 {
	c0 := c >> 35
	c = ((c & 0x7ffffffff) << 5) ^ val
	for i := 0; i < 5; i++ {
		if (c0>>uint(i))&1 == 1 {
			c ^= gen[i]
		}
	}
	return c
}

// Checksum computes the 8 character checksum of the passed descriptor, which
// must not already carry a checksum.
func Checksum(desc string) (string, error) {
	var (
		c        uint64 = 1
		cls      uint64
		clsCount int
	)
	for i := 0; i < len(desc); i++ {
		pos := strings.IndexByte(inputCharset, desc[i])
		if pos == -1 {
			str := fmt.Sprintf("invalid character %q at position "+
				"%d in descriptor", desc[i], i)
			return "", checksumError(ErrInvalidCharacter, str)
		}

		// Emit a symbol for the position inside the group, for every
		// character.
		c = polyMod(c, uint64(pos&31))

		// Accumulate the group numbers and emit them once three have
		// been collected.
		cls = cls*3 + uint64(pos>>5)
		clsCount++
		if clsCount == 3 {
			c = polyMod(c, cls)
			cls = 0
			clsCount = 0
		}
	}
	if clsCount > 0 {
		c = polyMod(c, cls)
	}

	// Shift further to determine the checksum.
	for i := 0; i < Length; i++ {
		c = polyMod(c, 0)
	}

	// Prevent appending zeroes from not affecting the checksum.
	c ^= 1

	var sb strings.Builder
	sb.Grow(Length)
	for i := 0; i < Length; i++ {
		sb.WriteByte(checksumCharset[(c>>(5*(7-uint(i))))&31])
	}
	return sb.String(), nil
}

// Append returns the descriptor followed by the separator and its checksum.
func Append(desc string) (string, error) {
	sum, err := Checksum(desc)
	if err != nil {
		return "", err
	}
	return desc + string(Separator) + sum, nil
}

// VerifyAndStrip checks the checksum of the passed descriptor, if it carries
// one, and returns the descriptor without it.  A descriptor without a
// separator is returned unchanged once its characters are known to be valid.
// A separator followed by anything other than the expected checksum,
// including nothing at all, results in ErrChecksumMismatch.
func VerifyAndStrip(s string) (string, error) {
	desc, sum, found := strings.Cut(s, string(Separator))

	expected, err := Checksum(desc)
	if err != nil {
		return "", err
	}
	if !found {
		return desc, nil
	}
	if sum != expected {
		str := fmt.Sprintf("invalid checksum '%s', expected '%s'", sum,
			expected)
		return "", checksumError(ErrChecksumMismatch, str)
	}
	return desc, nil
}
