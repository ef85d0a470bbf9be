package quest

import (
	"regexp"
	"strconv"
	"strings"
)

// PreviewKind tags which shape of code the preview recognized.
type PreviewKind int

const (
	// PreviewUnknown means the code matched none of the known shapes.
	PreviewUnknown PreviewKind = iota
	// PreviewText means the code prints a string literal.
	PreviewText
	// PreviewNumber means the code prints an evaluated expression.
	PreviewNumber
	// PreviewVariable means the code assigns a string then prints it.
	PreviewVariable
	// PreviewSilent means the code assigns without printing anything.
	PreviewSilent
)

// Preview is the simulated output of one or two lines of learner
// Python, so the copy step can show "running it looks like this"
// without an interpreter anywhere near learner input.
type Preview struct {
	Kind   PreviewKind
	Output string
	Note   string
}

var (
	rePrintString = regexp.MustCompile(`print\s*\(\s*"(.+?)"\s*\)`)
	rePrintExpr   = regexp.MustCompile(`print\s*\(\s*([0-9+\-*/()\s]+)\s*\)`)
	rePrintVar    = regexp.MustCompile(`print\s*\(\s*([a-zA-Z_]\w*)\s*\)`)
	reAssign      = regexp.MustCompile(`(?m)^\s*([a-zA-Z_]\w*)\s*=\s*"(.+?)"\s*$`)
)

// RenderPreview simulates the given code against the shapes the
// lessons use: printing a string, printing arithmetic, assigning, and
// assigning then printing the variable.
func RenderPreview(code string) Preview {
	code = strings.ReplaceAll(code, "'", `"`)

	if m := rePrintString.FindStringSubmatch(code); m != nil {
		return Preview{
			Kind:   PreviewText,
			Output: m[1],
			Note:   "print shows exactly the text you wrote inside it.",
		}
	}

	if m := rePrintExpr.FindStringSubmatch(code); m != nil {
		v, err := evalArithmetic(m[1])
		if err != nil {
			return Preview{
				Kind:   PreviewNumber,
				Output: "(the result of the calculation)",
				Note:   "The calculation runs first, then the result is shown.",
			}
		}
		return Preview{
			Kind:   PreviewNumber,
			Output: strconv.Itoa(v),
			Note:   "The calculation runs first, then the result is shown.",
		}
	}

	assign := reAssign.FindStringSubmatch(code)
	printVar := rePrintVar.FindStringSubmatch(code)

	if assign != nil && printVar != nil {
		if assign[1] == printVar[1] {
			return Preview{
				Kind:   PreviewVariable,
				Output: assign[2],
				Note:   "The value you put into " + assign[1] + " is what gets shown.",
			}
		}
		return Preview{
			Kind: PreviewUnknown,
			Note: "The name in the box and the name being printed don't match.",
		}
	}

	if assign != nil {
		return Preview{
			Kind: PreviewSilent,
			Note: "This line puts \"" + assign[2] + "\" into " + assign[1] + ". Showing nothing is the right result!",
		}
	}

	return Preview{
		Kind: PreviewUnknown,
		Note: "This step is about practicing how showing things works.",
	}
}
