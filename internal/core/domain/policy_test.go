package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/relock/internal/core/domain"
)

func TestSplitPackageList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{}},
		{"\n,\n\n", []string{}},
		{",", []string{}},
		{"\n", []string{}},
		{"conda", []string{"conda"}},
		{"conda, python", []string{"conda", "python"}},
		{"conda, python\nblah,blah", []string{"conda", "python", "blah", "blah"}},
		{"\nconda, python\nblah,blah\n,\nfoo bar\n", []string{"conda", "python", "blah", "blah", "foo", "bar"}},
		{"a\t\tb,,,c\r\nd", []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.SplitPackageList(tt.input))
		})
	}
}

func TestParseBoolToken(t *testing.T) {
	assert.True(t, domain.ParseBoolToken("true"))
	assert.True(t, domain.ParseBoolToken("True"))
	assert.True(t, domain.ParseBoolToken(" TRUE\n"))
	assert.False(t, domain.ParseBoolToken("false"))
	assert.False(t, domain.ParseBoolToken("yes"))
	assert.False(t, domain.ParseBoolToken("1"))
	assert.False(t, domain.ParseBoolToken(""))
}

func TestPackageSet(t *testing.T) {
	s := domain.NewPackageSet("numpy", "scipy", "numpy")
	assert.Len(t, s, 2)
	assert.True(t, s.Has("numpy"))
	assert.False(t, s.Has("pandas"))

	s.Add("pandas")
	assert.Equal(t, []string{"numpy", "pandas", "scipy"}, s.Sorted())

	rest := s.Without(domain.NewPackageSet("scipy", "python"))
	assert.Equal(t, []string{"numpy", "pandas"}, rest.Sorted())
	assert.True(t, s.Has("scipy"), "Without must not modify the receiver")
}
