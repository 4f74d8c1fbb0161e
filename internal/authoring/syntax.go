package authoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/unity-forge/backend/internal/models"
)

var (
	typeDeclRe = regexp.MustCompile(`\b(class|struct|interface|enum|record)\b`)
	usingRe    = regexp.MustCompile(`(?m)^\s*using\s+(static\s+)?[A-Za-z_][\w.]*(\s*=\s*[\w.<>]+)?\s*;`)
)

// ValidateScriptSyntax runs a quick sanity check over C# source: braces and
// parentheses must balance, a type must be declared and a using directive
// must be present. Comments and string or character literals are ignored.
// It is a heuristic, not a parser, and the result is advisory.
func ValidateScriptSyntax(text string) models.SyntaxCheckResult {
	result := models.SyntaxCheckResult{IsValid: true, Errors: []string{}}
	fail := func(format string, args ...any) {
		result.IsValid = false
		result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(text) == "" {
		fail("script is empty")
		return result
	}

	code, problems := stripLiterals(text)
	for _, p := range problems {
		fail("%s", p)
	}

	checkPairs(code, '{', '}', fail)
	checkPairs(code, '(', ')', fail)

	if !typeDeclRe.MatchString(code) {
		fail("no class, struct, interface or enum declaration found")
	}
	if !usingRe.MatchString(code) {
		fail("no using directive found")
	}
	return result
}

func checkPairs(code string, open, close byte, fail func(string, ...any)) {
	depth, line := 0, 1
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '\n':
			line++
		case open:
			depth++
		case close:
			if depth == 0 {
				fail("unexpected '%c' on line %d", close, line)
				continue
			}
			depth--
		}
	}
	if depth > 0 {
		fail("%d unclosed '%c'", depth, open)
	}
}

// stripLiterals blanks out comments and string/char literals, keeping
// newlines so line numbers survive.
func stripLiterals(src string) (string, []string) {
	var out strings.Builder
	var problems []string
	line := 1

	blank := func(c byte) {
		if c == '\n' {
			out.WriteByte('\n')
			line++
		} else {
			out.WriteByte(' ')
		}
	}

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			if i < len(src) {
				blank('\n')
			}

		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			start := line
			i += 2
			for ; i < len(src) && !(src[i] == '*' && i+1 < len(src) && src[i+1] == '/'); i++ {
				blank(src[i])
			}
			if i >= len(src) {
				problems = append(problems, fmt.Sprintf("unterminated comment starting on line %d", start))
			}
			i++

		case stringPrefixLen(src, i) > 0:
			start := line
			n := stringPrefixLen(src, i)
			verbatim := strings.Contains(src[i:i+n], "@")
			i += n
			closed := false
			for ; i < len(src); i++ {
				ch := src[i]
				if verbatim && ch == '"' && i+1 < len(src) && src[i+1] == '"' {
					i++
					continue
				}
				if !verbatim && ch == '\\' {
					i++
					continue
				}
				if ch == '"' {
					closed = true
					break
				}
				if ch == '\n' {
					if !verbatim {
						break
					}
					blank('\n')
				}
			}
			if !closed {
				problems = append(problems, fmt.Sprintf("unterminated string starting on line %d", start))
				if i < len(src) && src[i] == '\n' {
					blank('\n')
				}
			}
			out.WriteString(`""`)

		case c == '\'':
			start := line
			i++
			for ; i < len(src) && src[i] != '\'' && src[i] != '\n'; i++ {
				if src[i] == '\\' {
					i++
				}
			}
			if i >= len(src) || src[i] != '\'' {
				problems = append(problems, fmt.Sprintf("unterminated character literal on line %d", start))
				if i < len(src) {
					blank('\n')
				}
			}
			out.WriteString("' '")

		default:
			if c == '\n' {
				line++
			}
			out.WriteByte(c)
		}
	}
	return out.String(), problems
}

// stringPrefixLen returns the length of a string literal opener at i
// ("", @", $", $@" or @$"), or 0 if none starts there.
func stringPrefixLen(src string, i int) int {
	for _, p := range []string{`"`, `@"`, `$"`, `$@"`, `@$"`} {
		if strings.HasPrefix(src[i:], p) {
			return len(p)
		}
	}
	return 0
}
