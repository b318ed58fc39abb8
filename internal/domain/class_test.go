package domain_test

import (
	"testing"

	"randkey/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   byte
		want domain.Class
	}{
		{name: "lower letter", in: 'q', want: domain.Letter},
		{name: "upper letter", in: 'Z', want: domain.Letter},
		{name: "digit", in: '7', want: domain.Digit},
		{name: "first symbol", in: '!', want: domain.Symbol},
		{name: "bracket", in: '[', want: domain.Symbol},
		{name: "backtick", in: '`', want: domain.Symbol},
		{name: "last symbol", in: '~', want: domain.Symbol},
		{name: "space", in: ' ', want: domain.Other},
		{name: "tab", in: '\t', want: domain.Other},
		{name: "delete", in: 0x7f, want: domain.Other},
		{name: "high byte", in: 0xe4, want: domain.Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Classify(tt.in))
		})
	}
}

func TestClassify_DefaultRangeSizes(t *testing.T) {
	var sizes [domain.NumClasses + 1]int
	for b := 0; b < 128; b++ {
		sizes[domain.Classify(byte(b))]++
	}

	assert.Equal(t, 52, sizes[domain.Letter])
	assert.Equal(t, 32, sizes[domain.Symbol])
	assert.Equal(t, 10, sizes[domain.Digit])
}

func TestParseClass(t *testing.T) {
	for name, want := range map[string]domain.Class{
		"ltr": domain.Letter, "letters": domain.Letter,
		"sbl": domain.Symbol, "Symbols": domain.Symbol,
		"num": domain.Digit, "digits": domain.Digit,
	} {
		got, err := domain.ParseClass(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := domain.ParseClass("emoji")
	assert.ErrorIs(t, err, domain.ErrInvalidKind)
}

func TestClass_Valid(t *testing.T) {
	for _, c := range domain.Classes {
		assert.True(t, c.Valid(), c.String())
	}
	assert.False(t, domain.Other.Valid())
	assert.False(t, domain.Class(-1).Valid())
}

func TestIsAllowed(t *testing.T) {
	assert.True(t, domain.IsAllowed('a'))
	assert.True(t, domain.IsAllowed(' '))
	assert.True(t, domain.IsAllowed('~'))
	assert.False(t, domain.IsAllowed('\n'))
	assert.False(t, domain.IsAllowed(0x7f))
	assert.False(t, domain.IsAllowed('你'))
}
