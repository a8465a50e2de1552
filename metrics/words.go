package metrics

import (
	"bufio"
	"strconv"
	"strings"
	"unicode"
)

// WordCount counts word tokens in text. A token is a maximal run of
// non-space codepoints containing at least one letter or numeral, so bare
// markup delimiters ("**", "_") between spaces do not count as words.
func WordCount(text string) int {
	scnr := bufio.NewScanner(strings.NewReader(text))
	scnr.Split(bufio.ScanWords)
	count := 0
	for scnr.Scan() {
		if hasWordChar(scnr.Text()) {
			count++
		}
	}
	if err := scnr.Err(); err != nil {
		tracer().Errorf("word count: scanner returned: %s", err.Error())
	}
	return count
}

func hasWordChar(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// FormatWordCount renders a word count for a status display: "1 word",
// "12,345 words".
func FormatWordCount(n int) string {
	if n == 1 {
		return "1 word"
	}
	return groupThousands(n) + " words"
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 || len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	sb.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		sb.WriteByte(',')
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
