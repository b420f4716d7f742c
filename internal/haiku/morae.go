// Package haiku scores language-model output that should contain a haiku line
// and its kana reading line. Everything in this package is pure: no I/O, no
// shared mutable state, and no error returns. Any input string, however
// malformed, yields a well-formed Result.
package haiku

import (
	"strings"
	"unicode/utf8"
)

// Catalog is the closed, ordered set of mora units a reading may be built from.
// Order matters: CountMorae's greedy scan takes the first entry that matches.
var Catalog = []string{
	"あ", "い", "う", "え", "お",
	"か", "き", "く", "け", "こ",
	"さ", "し", "す", "せ", "そ",
	"た", "ち", "つ", "て", "と",
	"な", "に", "ぬ", "ね", "の",
	"は", "ひ", "ふ", "へ", "ほ",
	"ま", "み", "む", "め", "も",
	"や", "ゆ", "よ",
	"ら", "り", "る", "れ", "ろ",
	"わ", "を", "ん",
	"が", "ぎ", "ぐ", "げ", "ご",
	"ざ", "じ", "ず", "ぜ", "ぞ",
	"だ", "ぢ", "づ", "で", "ど",
	"ば", "び", "ぶ", "べ", "ぼ",
	"ぱ", "ぴ", "ぷ", "ぺ", "ぽ",
	"ゔぁ", "ゔぃ", "ゔ", "ゔぇ", "ゔぉ",
	"きゃ", "きゅ", "きょ",
	"しゃ", "しゅ", "しぇ", "しょ",
	"ちゃ", "ちゅ", "ちぇ", "ちょ",
	"にゃ", "にゅ", "にょ",
	"ひゃ", "ひゅ", "ひょ",
	"みゃ", "みゅ", "みょ",
	"りゃ", "りゅ", "りょ",
	"ぎゃ", "ぎゅ", "ぎょ",
	"じゃ", "じゅ", "じぇ", "じょ",
	"ぢゃ", "ぢゅ", "ぢぇ", "ぢょ",
	"びゃ", "びゅ", "びょ",
	"ぴゃ", "ぴゅ", "ぴょ",
	"てぃ", "とぅ",
	"つぁ", "つぃ", "つぇ", "つぉ",
	"ふぁ", "ふぃ", "ふぇ", "ふぉ",
	"ゐ", "ゑ",
	"っ", "ー",
}

// IsMoraSequence reports whether s decomposes end to end into catalog units.
// Every unit is tried at every reachable position, so a short unit that
// prefixes a longer one (し and しゃ) never hides a valid tokenization.
func IsMoraSequence(s string) bool {
	if s == "" {
		return false
	}
	reach := make([]bool, len(s)+1)
	reach[0] = true
	for i := 0; i < len(s); i++ {
		if !reach[i] {
			continue
		}
		for _, unit := range Catalog {
			if strings.HasPrefix(s[i:], unit) {
				reach[i+len(unit)] = true
			}
		}
	}
	return reach[len(s)]
}

// CountMorae returns the number of mora units in s, or false when s is not a
// valid mora sequence.
//
// The count does not come from the tokenization that proved validity. It is a
// left-to-right scan that takes the first catalog entry matching at each
// position and steps over a rune that nothing matches. For digraphs listed
// after their leading kana (しゃ after し) the small kana is stepped over, so
// the digraph still counts once. Rubric scores depend on this exact scan.
func CountMorae(s string) (int, bool) {
	if !IsMoraSequence(s) {
		return 0, false
	}
	return scanMorae(s), true
}

func scanMorae(s string) int {
	n := 0
	for i := 0; i < len(s); {
		if unit, ok := firstUnitAt(s[i:]); ok {
			n++
			i += len(unit)
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return n
}

func firstUnitAt(s string) (string, bool) {
	for _, unit := range Catalog {
		if strings.HasPrefix(s, unit) {
			return unit, true
		}
	}
	return "", false
}
