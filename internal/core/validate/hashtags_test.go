package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHashtags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", "  \t  ", []string{}},
		{"collapsed and trimmed", "  #a   #b  ", []string{"#a", "#b"}},
		{"lower-cased", "#Cat #DOG", []string{"#cat", "#dog"}},
		{"cyrillic lower-cased", "#Кот #ПЁС", []string{"#кот", "#пёс"}},
		{"single", "#one", []string{"#one"}},
		{"no-break space separator", "#sea\u00a0#sky", []string{"#sea", "#sky"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHashtags(tt.input))
		})
	}
}

func TestHasNoDuplicates(t *testing.T) {
	assert.False(t, HasNoDuplicates([]string{"#a", "#a"}))
	assert.False(t, HasNoDuplicates([]string{"#a", "#b", "#a"}))
	assert.True(t, HasNoDuplicates([]string{"#a", "#b"}))
	assert.True(t, HasNoDuplicates([]string{}))
	assert.False(t, HasNoDuplicates(ParseHashtags("#Cat #cat")), "parse lower-cases before comparing")
}

func TestWithinCountLimit(t *testing.T) {
	six := []string{"#a", "#b", "#c", "#d", "#e", "#f"}
	assert.False(t, WithinCountLimit(six, 5))
	assert.True(t, WithinCountLimit(six, 6))
	assert.True(t, WithinCountLimit([]string{}, 0))
}

func TestAllMatchPattern(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   bool
	}{
		{"empty list", []string{}, true},
		{"simple", []string{"#ok1"}, true},
		{"missing hash", []string{"#ok", "bad"}, false},
		{"hash only", []string{"#"}, false},
		{"cyrillic", []string{"#привет", "#ёлка"}, true},
		{"max length", []string{"#" + strings.Repeat("a", 19)}, true},
		{"too long", []string{"#" + strings.Repeat("a", 20)}, false},
		{"cyrillic max length", []string{"#" + strings.Repeat("я", 19)}, true},
		{"punctuation", []string{"#no-dash"}, false},
		{"uppercase not normalized", []string{"#Upper"}, false},
		{"double hash", []string{"##a"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllMatchPattern(tt.tokens))
		})
	}
}

func TestWithinLength(t *testing.T) {
	assert.True(t, WithinLength("", 140))
	assert.True(t, WithinLength(strings.Repeat("a", 140), 140))
	assert.False(t, WithinLength(strings.Repeat("a", 141), 140))
	assert.True(t, WithinLength(strings.Repeat("ж", 140), 140), "length counts characters, not bytes")
}
