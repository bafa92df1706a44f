// Package lyrics scans user supplied lyrics for text that should not be sung:
// production vocabulary, stage directions and words inside instrumental sections.
package lyrics

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/makeasinger/briefgen/internal/textutil"
)

// Warning kinds.
const (
	KindProduction   = "production"
	KindDescriptive  = "descriptive"
	KindInstrumental = "instrumental"
)

// Warning is a single finding on a 1-indexed line.
type Warning struct {
	Line    int    `json:"line"`
	Term    string `json:"term,omitempty"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("Linha %d: %s", w.Line, w.Message)
}

// Result is valid exactly when no warning was produced.
type Result struct {
	IsValid  bool      `json:"isValid"`
	Warnings []Warning `json:"warnings"`
}

// Messages renders the warnings in order.
func (r Result) Messages() []string {
	out := make([]string, len(r.Warnings))
	for i, w := range r.Warnings {
		out[i] = w.String()
	}
	return out
}

type term struct {
	raw    string
	folded string
}

// Validator is immutable after construction and safe for concurrent use.
type Validator struct {
	production  []term
	descriptive []term
	marker      string
}

// NewValidator compiles v. Production terms are kept longest first so that a
// longer term shadows the shorter ones it contains.
func NewValidator(v Vocabulary) *Validator {
	val := &Validator{
		production:  compile(v.Production),
		descriptive: compile(v.Descriptive),
		marker:      textutil.Fold(v.InstrumentalMarker),
	}
	sort.SliceStable(val.production, func(i, j int) bool {
		return len([]rune(val.production[i].folded)) > len([]rune(val.production[j].folded))
	})
	return val
}

// Default uses DefaultVocabulary.
func Default() *Validator {
	return NewValidator(DefaultVocabulary())
}

func compile(words []string) []term {
	out := make([]term, 0, len(words))
	for _, w := range words {
		if f := textutil.Fold(w); f != "" {
			out = append(out, term{raw: w, folded: f})
		}
	}
	return out
}

// Validate scans text line by line. Blank input is valid.
func (v *Validator) Validate(text string) Result {
	res := Result{IsValid: true, Warnings: []Warning{}}
	if strings.TrimSpace(text) == "" {
		return res
	}

	inInstrumental := false
	for i, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if isTag(line) {
			inInstrumental = v.marker != "" && textutil.Fold(line) == v.marker
			continue
		}

		folded := textutil.Fold(line)

		if inInstrumental {
			res.add(Warning{
				Line:    lineNo,
				Kind:    KindInstrumental,
				Message: "texto dentro de seção instrumental; seções [Instrumental] não devem ter letra.",
			})
		}

		for _, t := range v.productionHits(folded) {
			res.add(Warning{
				Line:    lineNo,
				Term:    t.raw,
				Kind:    KindProduction,
				Message: fmt.Sprintf("termo de produção/arranjo %q não deve ser cantado; mova para o campo Style.", t.raw),
			})
		}

		if len(strings.Fields(line)) > 3 && !hasQuotes(line) {
			for _, t := range v.descriptive {
				if len(findWord(folded, t.folded)) > 0 {
					res.add(Warning{
						Line:    lineNo,
						Term:    t.raw,
						Kind:    KindDescriptive,
						Message: fmt.Sprintf("parece uma instrução de interpretação (%q); use metatags em vez de texto cantado.", t.raw),
					})
					break
				}
			}
		}
	}
	return res
}

func (r *Result) add(w Warning) {
	r.IsValid = false
	r.Warnings = append(r.Warnings, w)
}

type hit struct {
	t     term
	start int
}

// productionHits returns every production term present on the line, ordered
// by first position, skipping matches that fall inside a longer match.
func (v *Validator) productionHits(folded string) []term {
	var (
		covered [][2]int
		hits    []hit
	)
	for _, t := range v.production {
		first := -1
		for _, span := range findWord(folded, t.folded) {
			if overlaps(covered, span) {
				continue
			}
			covered = append(covered, span)
			if first < 0 {
				first = span[0]
			}
		}
		if first >= 0 {
			hits = append(hits, hit{t: t, start: first})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	out := make([]term, len(hits))
	for i, h := range hits {
		out[i] = h.t
	}
	return out
}

// findWord returns the byte spans of needle in haystack that are bounded by
// non-alphanumeric runes.
func findWord(haystack, needle string) [][2]int {
	var spans [][2]int
	for from := 0; from <= len(haystack)-len(needle); {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			break
		}
		start := from + idx
		end := start + len(needle)
		if boundaryBefore(haystack, start) && boundaryAfter(haystack, end) {
			spans = append(spans, [2]int{start, end})
		}
		from = start + 1
	}
	return spans
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func overlaps(spans [][2]int, s [2]int) bool {
	for _, c := range spans {
		if s[0] < c[1] && c[0] < s[1] {
			return true
		}
	}
	return false
}

func isTag(line string) bool {
	return len(line) >= 2 && strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]")
}

func hasQuotes(line string) bool {
	return strings.ContainsAny(line, "\"“”«»")
}
