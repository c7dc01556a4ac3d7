package invoice

import "strings"

var (
	wordsOnes = []string{
		"", "one", "two", "three", "four", "five", "six", "seven",
		"eight", "nine", "ten", "eleven", "twelve", "thirteen",
		"fourteen", "fifteen", "sixteen", "seventeen", "eighteen",
		"nineteen",
	}
	wordsTens = []string{
		"", "", "twenty", "thirty", "forty", "fifty", "sixty",
		"seventy", "eighty", "ninety",
	}
	wordsScales = []string{"", "thousand", "million", "billion"}
)

// AmountInWords transcribes the integer part of an invoice total into
// English words, short-scale grouping, e.g. 1234 becomes
// "One thousand two hundred and thirty four only". Zero is "Zero";
// negative inputs clamp to zero.
func AmountInWords(n int64) string {
	if n <= 0 {
		return "Zero"
	}

	var groups []int64
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		part := groupInWords(g)
		if wordsScales[i] != "" {
			part += " " + wordsScales[i]
		}
		parts = append(parts, part)
	}

	s := strings.Join(parts, " ") + " only"
	return strings.ToUpper(s[:1]) + s[1:]
}

func groupInWords(g int64) string {
	hundreds := g / 100
	rest := g % 100

	var b strings.Builder
	if hundreds > 0 {
		b.WriteString(wordsOnes[hundreds])
		b.WriteString(" hundred")
		if rest > 0 {
			b.WriteString(" and ")
		}
	}
	switch {
	case rest == 0:
	case rest < 20:
		b.WriteString(wordsOnes[rest])
	default:
		b.WriteString(wordsTens[rest/10])
		if rest%10 > 0 {
			b.WriteString(" ")
			b.WriteString(wordsOnes[rest%10])
		}
	}
	return b.String()
}
