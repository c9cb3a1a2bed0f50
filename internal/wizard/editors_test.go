package wizard

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentifierEditor(t *testing.T) {
	e := NewIdentifierEditor()

	for _, r := range "1234567" {
		require.True(t, e.Append(r))
	}
	require.False(t, e.Valid(), "7 digits must not be valid")

	require.True(t, e.Append('8'))
	require.True(t, e.Valid())

	for _, r := range "9012" {
		require.True(t, e.Append(r))
	}
	require.Equal(t, "123456789012", e.Value())
	require.False(t, e.Append('3'), "append at 12 digits is a no-op")
	require.Equal(t, IdentifierMaxLen, e.Len())

	require.True(t, e.DeleteLast())
	require.Equal(t, "12345678901", e.Value())
}

func TestIdentifierEditorRejectsNonDigits(t *testing.T) {
	e := NewIdentifierEditor()
	require.False(t, e.Append('.'))
	require.False(t, e.Append('a'))
	require.Equal(t, "", e.Value())
}

func TestDigitEditorDeleteOnEmpty(t *testing.T) {
	e := NewOtpEditor()
	require.False(t, e.DeleteLast())
	require.Equal(t, "", e.Value())
}

func TestOtpEditor(t *testing.T) {
	e := NewOtpEditor()
	for _, r := range "123" {
		require.True(t, e.Append(r))
	}
	require.False(t, e.Complete())
	require.True(t, e.Append('4'))
	require.True(t, e.Complete())
	require.False(t, e.Append('5'))
	require.Equal(t, "1234", e.Value())
	require.False(t, e.Append('.'))
}

func TestAmountEditor(t *testing.T) {
	tests := []struct {
		name  string
		keys  string
		dels  int
		want  string
		maxLn int
	}{
		{name: "initial", keys: "", want: "0"},
		{name: "leading zero replaced", keys: "5", want: "5"},
		{name: "zero on zero", keys: "00", want: "0"},
		{name: "decimal after zero", keys: ".5", want: "0.5"},
		{name: "single separator", keys: "1.2.3", want: "1.23"},
		{name: "cap includes separator", keys: "123456789", want: "1234567"},
		{name: "custom cap", keys: "123456789", want: "12345678", maxLn: 8},
		{name: "delete to zero", keys: "7", dels: 1, want: "0"},
		{name: "delete from zero", keys: "", dels: 3, want: "0"},
		{name: "delete separator", keys: "12.", dels: 1, want: "12"},
		{name: "non digit rejected", keys: "1a2", want: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewAmountEditor(tt.maxLn)
			for _, r := range tt.keys {
				e.Append(r)
			}
			for i := 0; i < tt.dels; i++ {
				e.DeleteLast()
			}
			require.Equal(t, tt.want, e.Value())
		})
	}
}

func TestAmountEditorInvariantsUnderRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	keys := []rune("0123456789.")

	for run := 0; run < 200; run++ {
		e := NewAmountEditor(0)
		for i := 0; i < 40; i++ {
			if rng.Intn(4) == 0 {
				e.DeleteLast()
			} else {
				e.Append(keys[rng.Intn(len(keys))])
			}
			v := e.Value()
			require.NotEmpty(t, v)
			require.LessOrEqual(t, strings.Count(v, "."), 1)
			require.LessOrEqual(t, len(v), DefaultAmountMaxLen)
		}
	}
}

func TestDigitEditorsNeverExceedCap(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	id := NewIdentifierEditor()
	otp := NewOtpEditor()

	for i := 0; i < 500; i++ {
		r := rune('0' + rng.Intn(10))
		if rng.Intn(5) == 0 {
			id.DeleteLast()
			otp.DeleteLast()
			continue
		}
		id.Append(r)
		otp.Append(r)
		require.LessOrEqual(t, id.Len(), IdentifierMaxLen)
		require.LessOrEqual(t, otp.Len(), OtpLen)
	}
}
