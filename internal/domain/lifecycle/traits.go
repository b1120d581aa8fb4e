package lifecycle

import (
	"fmt"

	"github.com/mojolint/mojolint/internal/domain"
)

// Correspond applies the trait/method decision table to one struct and
// returns suggestion-severity violations. bodyStart is the 0-based file
// index of the first struct body line, used to turn method offsets into
// 1-based line numbers.
//
// The table is asymmetric on purpose: a trivial method is positive evidence
// that the synthesized conformance suffices, so trait additions are
// suggested eagerly. The absence of a trivial method proves nothing (the
// trait may be required by collection storage or external callers), so trait
// removal is never suggested without that evidence.
func Correspond(info StructInfo, a Analysis, file string, bodyStart int) []domain.Violation {
	var out []domain.Violation

	if a.TrivialCopy {
		out = append(out, trivialMethodViolation(info, file, bodyStart+a.CopyLine+1,
			copyMethod, "Copyable", info.HasCopyTrait))
	}
	if a.TrivialMove {
		out = append(out, trivialMethodViolation(info, file, bodyStart+a.MoveLine+1,
			moveMethod, "Movable", info.HasMoveTrait))
	}

	return out
}

func trivialMethodViolation(info StructInfo, file string, line int, method, trait string, hasTrait bool) domain.Violation {
	v := domain.Violation{
		File:     file,
		Line:     line,
		Category: domain.CategoryStructPattern,
		Severity: domain.SeveritySuggestion,
	}

	if hasTrait {
		v.Message = fmt.Sprintf("struct %s implements a field-by-field %s already covered by its %s conformance", info.Name, method, trait)
		v.Suggestion = fmt.Sprintf("remove %s and let %s synthesize it", method, trait)
	} else {
		v.Message = fmt.Sprintf("struct %s implements a field-by-field %s but does not declare %s", info.Name, method, trait)
		v.Suggestion = fmt.Sprintf("add %s to the struct declaration and remove %s", trait, method)
	}

	return v
}
