package haiku

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	codeFence     = "```"
	fieldsPerLine = 3
)

// isDelimiter reports whether r separates fields: the ASCII comma, the
// fullwidth comma, the halfwidth ideographic comma and the ideographic comma.
func isDelimiter(r rune) bool {
	switch r {
	case ',', '，', '､', '、':
		return true
	}
	return false
}

// LineRole is the position an accepted line takes in a submission.
type LineRole int

const (
	RoleHaiku LineRole = iota + 1
	RoleReadingCandidate
	RoleSurplus
)

func (r LineRole) String() string {
	switch r {
	case RoleHaiku:
		return "haiku"
	case RoleReadingCandidate:
		return "reading_candidate"
	case RoleSurplus:
		return "surplus"
	default:
		return "unknown"
	}
}

// roleAt maps the index of an accepted line to its role.
func roleAt(index int) LineRole {
	switch index {
	case 0:
		return RoleHaiku
	case 1:
		return RoleReadingCandidate
	default:
		return RoleSurplus
	}
}

// ClassifiedLine is one accepted line split into fields.
type ClassifiedLine struct {
	Text string
	Role LineRole

	// Fields holds the first three fields, trimmed.
	Fields []string
	// RawFields holds every field exactly as split, before trimming.
	RawFields []string

	HadExtraFields      bool
	HadNonStandardComma bool
	HadUntrimmedField   bool

	// Phonetic is set on the reading candidate when every raw field is a
	// valid mora sequence.
	Phonetic bool
}

// Classification is the outcome of scanning a whole submission.
type Classification struct {
	// Lines holds accepted lines in input order.
	Lines []ClassifiedLine
	// Rejected counts lines that had an empty field or fewer than three fields.
	Rejected int
	// Extraneous is set by any rejected line and by any surplus line.
	Extraneous bool
}

// Haiku returns the haiku line, the first accepted line.
func (c Classification) Haiku() (ClassifiedLine, bool) {
	if len(c.Lines) == 0 {
		return ClassifiedLine{}, false
	}
	return c.Lines[0], true
}

// Reading returns the second accepted line when it is phonetically well formed.
func (c Classification) Reading() (ClassifiedLine, bool) {
	if len(c.Lines) < 2 || !c.Lines[1].Phonetic {
		return ClassifiedLine{}, false
	}
	return c.Lines[1], true
}

// Classify scans raw text for the haiku and reading lines. Blank lines and
// code fence markers are skipped; every other line is either rejected or
// accepted and given a role by its position among accepted lines.
func Classify(raw string) Classification {
	var c Classification
	for _, text := range strings.Split(raw, "\n") {
		text = trim(text)
		if text == "" || strings.HasPrefix(text, codeFence) {
			continue
		}

		line, ok := splitLine(text)
		if !ok {
			c.Rejected++
			c.Extraneous = true
			continue
		}

		line.Role = roleAt(len(c.Lines))
		switch line.Role {
		case RoleReadingCandidate:
			line.Phonetic = allMorae(line.RawFields)
		case RoleSurplus:
			c.Extraneous = true
		}
		c.Lines = append(c.Lines, line)
	}
	return c
}

// splitLine splits text on the delimiter set. It fails when a field is blank
// or fewer than three fields are present.
func splitLine(text string) (ClassifiedLine, bool) {
	line := ClassifiedLine{Text: text}

	start := 0
	for i, r := range text {
		if !isDelimiter(r) {
			continue
		}
		if r != ',' {
			line.HadNonStandardComma = true
		}
		line.RawFields = append(line.RawFields, text[start:i])
		start = i + utf8.RuneLen(r)
	}
	line.RawFields = append(line.RawFields, text[start:])

	if len(line.RawFields) < fieldsPerLine {
		return ClassifiedLine{}, false
	}

	line.Fields = make([]string, 0, fieldsPerLine)
	for i, field := range line.RawFields {
		trimmed := trim(field)
		if trimmed == "" {
			return ClassifiedLine{}, false
		}
		if trimmed != field {
			line.HadUntrimmedField = true
		}
		if i < fieldsPerLine {
			line.Fields = append(line.Fields, trimmed)
		}
	}
	line.HadExtraFields = len(line.RawFields) > fieldsPerLine

	return line, true
}

func allMorae(fields []string) bool {
	for _, f := range fields {
		if !IsMoraSequence(f) {
			return false
		}
	}
	return true
}

// trim strips Unicode white space, including the ideographic space, and the
// byte order mark.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
