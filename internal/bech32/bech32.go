// Package bech32 implements the Bech32 and Bech32m checksummed text
// encodings (BIP-173 and BIP-350) used to give zorn identities a
// human-typeable, error-detecting string form. It is a small in-module
// codec rather than a third-party dependency, following the precedent set
// by age's own bundled internal/bech32 package.
package bech32

import (
	"fmt"
	"strings"
)

// Variant distinguishes the two checksum constants defined by BIP-350.
// Bech32m must be used for new applications; Bech32 exists only so this
// package can detect and reject it.
type Variant int

const (
	Bech32 Variant = iota
	Bech32m
)

const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

const bech32mConst = 0x2bc830a3

var charsetRev = func() [128]int8 {
	var rev [128]int8
	for i := range rev {
		rev[i] = -1
	}
	for i, c := range charset {
		rev[c] = int8(i)
	}
	return rev
}()

// maxLength caps total encoded length the way BIP-173 does; zorn
// identities are far shorter than this, but the codec enforces the bound
// unconditionally so it stays correct for any future HRP.
const maxLength = 90

// Encode converts data (arbitrary bytes, NOT 5-bit groups) into its
// Bech32m text form under the given human-readable prefix. hrp must be
// lowercase ASCII.
func Encode(hrp string, data []byte) (string, error) {
	return encode(hrp, data, Bech32m)
}

func encode(hrp string, data []byte, variant Variant) (string, error) {
	if hrp == "" {
		return "", fmt.Errorf("bech32: empty human-readable prefix")
	}
	if hrp != strings.ToLower(hrp) {
		return "", fmt.Errorf("bech32: human-readable prefix must be lowercase")
	}

	values, err := convertBits(data, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("bech32: %w", err)
	}

	checksum := createChecksum(hrp, values, variant)
	combined := append(values, checksum...)

	var sb strings.Builder
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, v := range combined {
		sb.WriteByte(charset[v])
	}

	out := sb.String()
	if len(out) > maxLength {
		return "", fmt.Errorf("bech32: encoded length %d exceeds maximum %d", len(out), maxLength)
	}
	return out, nil
}

// Decode parses s as a Bech32 or Bech32m string and returns its
// human-readable prefix, payload bytes, and which checksum variant was
// used. It does not itself enforce a particular HRP or variant; callers
// that need Bech32m-only semantics (such as identity parsing) must check
// the returned Variant themselves.
func Decode(s string) (hrp string, data []byte, variant Variant, err error) {
	if len(s) > maxLength {
		return "", nil, 0, fmt.Errorf("bech32: string length %d exceeds maximum %d", len(s), maxLength)
	}
	if strings.ToLower(s) != s && strings.ToUpper(s) != s {
		return "", nil, 0, fmt.Errorf("bech32: mixed-case string")
	}
	s = strings.ToLower(s)

	sep := strings.LastIndexByte(s, '1')
	if sep < 1 || sep+7 > len(s) {
		return "", nil, 0, fmt.Errorf("bech32: invalid separator position")
	}

	hrp = s[:sep]
	payload := s[sep+1:]

	values := make([]byte, len(payload))
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		if c >= 128 || charsetRev[c] == -1 {
			return "", nil, 0, fmt.Errorf("bech32: invalid character %q", payload[i])
		}
		values[i] = byte(charsetRev[c])
	}

	variant, ok := verifyChecksum(hrp, values)
	if !ok {
		return "", nil, 0, fmt.Errorf("bech32: invalid checksum")
	}

	data, err = convertBits(values[:len(values)-6], 5, 8, false)
	if err != nil {
		return "", nil, 0, fmt.Errorf("bech32: %w", err)
	}
	return hrp, data, variant, nil
}

// convertBits repacks a byte slice between bit-group sizes fromBits and
// toBits, used to go between raw 8-bit bytes and the 5-bit groups Bech32
// encodes. pad controls whether a short trailing group is zero-padded
// (encoding) or must be all zero and dropped (decoding).
func convertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	var acc uint32
	var bits uint
	var out []byte
	maxv := uint32(1)<<toBits - 1

	for _, b := range data {
		if b>>fromBits != 0 {
			return nil, fmt.Errorf("invalid data range for convertBits")
		}
		acc = acc<<fromBits | uint32(b)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte(acc>>bits)&byte(maxv))
		}
	}

	if pad {
		if bits > 0 {
			out = append(out, byte(acc<<(toBits-bits))&byte(maxv))
		}
	} else if bits >= fromBits || (acc<<(toBits-bits))&maxv != 0 {
		return nil, fmt.Errorf("invalid padding in convertBits")
	}
	return out, nil
}

func hrpExpand(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&31)
	}
	return out
}

func polymod(values []byte) uint32 {
	gen := [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}
	chk := uint32(1)
	for _, v := range values {
		b := byte(chk >> 25)
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (b>>uint(i))&1 != 0 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

func checksumConst(variant Variant) uint32 {
	if variant == Bech32m {
		return bech32mConst
	}
	return 1
}

func createChecksum(hrp string, values []byte, variant Variant) []byte {
	expanded := hrpExpand(hrp)
	combined := append(expanded, values...)
	combined = append(combined, make([]byte, 6)...)
	mod := polymod(combined) ^ checksumConst(variant)

	out := make([]byte, 6)
	for i := 0; i < 6; i++ {
		out[i] = byte((mod >> uint(5*(5-i))) & 31)
	}
	return out
}

func verifyChecksum(hrp string, values []byte) (Variant, bool) {
	expanded := hrpExpand(hrp)
	combined := append(expanded, values...)
	mod := polymod(combined)

	if mod == checksumConst(Bech32) {
		return Bech32, true
	}
	if mod == checksumConst(Bech32m) {
		return Bech32m, true
	}
	return 0, false
}
