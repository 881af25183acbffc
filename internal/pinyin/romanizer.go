// Package pinyin romanizes chart labels (star, palace and bureau names).
package pinyin

import (
	"strings"
	"unicode"
	"unicode/utf8"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Style selects how syllables are written.
type Style string

const (
	StyleTone  Style = "tone"  // zǐwēi
	StylePlain Style = "plain" // ziwei
	StyleOff   Style = "off"
)

// ParseStyle maps a config value to a Style. Empty means off.
func ParseStyle(s string) (Style, bool) {
	switch Style(strings.ToLower(s)) {
	case StyleTone:
		return StyleTone, true
	case StylePlain:
		return StylePlain, true
	case StyleOff, "":
		return StyleOff, true
	}
	return StyleOff, false
}

// readings fixes labels where the dictionary's first reading is wrong
// in chart usage.
var readings = map[string]string{
	"天相": "tiānxiàng",
	"武曲": "wǔqǔ",
	"文曲": "wénqǔ",
	"子女": "zǐnǚ",
	"疾厄": "jíè",
}

// Romanizer converts Han labels to capitalized pinyin words.
type Romanizer struct {
	style Style
	args  gopinyin.Args
}

// New creates a Romanizer. StyleOff yields a romanizer that returns "".
func New(style Style) *Romanizer {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone
	if style == StylePlain {
		args.Style = gopinyin.Normal
	}
	return &Romanizer{style: style, args: args}
}

// Romanize returns the pinyin of s as one capitalized word, e.g.
// "紫微" -> "Zǐwēi". Non-Han runes are dropped.
func (r *Romanizer) Romanize(s string) string {
	if r == nil || r.style == StyleOff || s == "" {
		return ""
	}

	word, ok := readings[s]
	if ok {
		if r.style == StylePlain {
			word = stripTones(word)
		}
	} else {
		var b strings.Builder
		for _, syl := range gopinyin.LazyPinyin(s, r.args) {
			b.WriteString(syl)
		}
		word = b.String()
	}
	return capitalize(word)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

var toneMarks = map[rune]rune{
	'ā': 'a', 'á': 'a', 'ǎ': 'a', 'à': 'a',
	'ē': 'e', 'é': 'e', 'ě': 'e', 'è': 'e',
	'ī': 'i', 'í': 'i', 'ǐ': 'i', 'ì': 'i',
	'ō': 'o', 'ó': 'o', 'ǒ': 'o', 'ò': 'o',
	'ū': 'u', 'ú': 'u', 'ǔ': 'u', 'ù': 'u',
	'ǖ': 'v', 'ǘ': 'v', 'ǚ': 'v', 'ǜ': 'v', 'ü': 'v',
}

// stripTones writes ü as v, matching go-pinyin's Normal style.
func stripTones(s string) string {
	var b strings.Builder
	for _, r := range s {
		if base, ok := toneMarks[r]; ok {
			b.WriteRune(base)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
