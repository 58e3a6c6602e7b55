package iban

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expand rearranges s and spells letters as two digits, producing the decimal
// string the checksum is defined over.
func expand(s string) string {
	var b strings.Builder
	for _, ch := range s[4:] + s[:4] {
		if ch >= 'A' && ch <= 'Z' {
			b.WriteString(big.NewInt(int64(ch-'A') + 10).String())
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func TestChecksum_HandComputedExample(t *testing.T) {
	// WEST12345698765432 + GB82 with W=32 E=14 S=28 T=29 G=16 B=11
	expanded := expand("GB82WEST12345698765432")
	require.Equal(t, "3214282912345698765432161182", expanded)

	n, ok := new(big.Int).SetString(expanded, 10)
	require.True(t, ok)
	want := new(big.Int).Mod(n, big.NewInt(97)).Int64()

	got, ok := Checksum("GB82WEST12345698765432")
	require.True(t, ok)
	assert.Equal(t, int(want), got)
	assert.Equal(t, 1, got)
}

func TestChecksum_MatchesBigIntModulo(t *testing.T) {
	inputs := []string{
		"DE89370400440532013000",
		"DE88370400440532013000",
		"FR1420041010050500013M02606",
		"MU17BOMM0101101030300200000MUR",
		"LC55HEMM000100010012001200023015",
		"RU0304452522540817810538091310419",
		"ZZ00ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			n, ok := new(big.Int).SetString(expand(input), 10)
			require.True(t, ok)
			want := new(big.Int).Mod(n, big.NewInt(97)).Int64()

			got, ok := Checksum(input)
			require.True(t, ok)
			assert.Equal(t, int(want), got)
		})
	}
}

func TestChecksum_RejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"", "DE8", "de89370400440532013000", "DE89 3704", "DE89-3704", "DE89Ä3704"} {
		t.Run(input, func(t *testing.T) {
			_, ok := Checksum(input)
			assert.False(t, ok)
		})
	}
}

func TestCheckDigits(t *testing.T) {
	t.Run("reproduces known check digits", func(t *testing.T) {
		digits, err := CheckDigits("DE", "370400440532013000")
		require.NoError(t, err)
		assert.Equal(t, "89", digits)

		digits, err = CheckDigits("gb", "west12345698765432")
		require.NoError(t, err)
		assert.Equal(t, "82", digits)
	})

	t.Run("pads single digit results", func(t *testing.T) {
		digits, err := CheckDigits("XK", "1212012345678906")
		require.NoError(t, err)
		assert.Equal(t, "05", digits)
	})

	t.Run("rejects unknown country", func(t *testing.T) {
		_, err := CheckDigits("ZZ", "123")
		assert.ErrorIs(t, err, ErrUnknownCountry)
	})

	t.Run("rejects invalid characters", func(t *testing.T) {
		_, err := CheckDigits("DE", "3704-0044")
		assert.ErrorIs(t, err, ErrInvalidCharacter)
	})
}
