package detect

import (
	"fmt"
	"strings"

	"github.com/mojolint/mojolint/internal/domain"
	"github.com/mojolint/mojolint/internal/domain/textscan"
)

// kernelIndicators are the thread/block index accessors that only make sense
// inside a GPU kernel.
var kernelIndicators = []string{"thread_idx", "block_idx", "block_dim", "global_idx"}

// retiredGPUCalls maps removed DeviceContext method names to their current
// replacements.
var retiredGPUCalls = []struct {
	old string
	new string
}{
	{"enqueue_function", "enqueue_function_checked"},
	{"copy_to_device", "enqueue_copy"},
}

// placeholderLabels flag simulated GPU paths that were left in real code.
var placeholderLabels = []string{"SIMULATED", "PLACEHOLDER", "MOCK GPU"}

// GPU checks accelerator usage: retired DeviceContext API names, kernel
// index usage without any device context setup, and leftover simulation
// placeholder labels.
func GPU(text, path string, cfg domain.CheckConfig) []domain.Violation {
	lines := textscan.SplitLines(text)
	cls := textscan.NewClassifier(lines, cfg.CheckDocstringCode)

	var out []domain.Violation
	hasDeviceContext := false
	firstKernelLine := 0 // 1-based; 0 means no indicator seen

	for i, line := range lines {
		if cls.IsExcluded(i) {
			continue
		}

		if strings.Contains(line, "DeviceContext") {
			hasDeviceContext = true
		}

		if firstKernelLine == 0 {
			for _, ind := range kernelIndicators {
				if containsIdentifier(line, ind) {
					firstKernelLine = i + 1
					break
				}
			}
		}

		for _, call := range retiredGPUCalls {
			if strings.Contains(line, "."+call.old+"(") {
				out = append(out, domain.Violation{
					File:       path,
					Line:       i + 1,
					Category:   domain.CategoryGPUPattern,
					Message:    fmt.Sprintf("retired DeviceContext method %q", call.old),
					Suggestion: fmt.Sprintf("use %s instead", call.new),
					Severity:   domain.SeverityError,
				})
			}
		}

		for _, label := range placeholderLabels {
			if strings.Contains(line, label) {
				out = append(out, domain.Violation{
					File:       path,
					Line:       i + 1,
					Category:   domain.CategoryGPUPattern,
					Message:    fmt.Sprintf("simulation placeholder %q in source", label),
					Suggestion: "replace the simulated path with a real device implementation",
					Severity:   domain.SeverityWarning,
				})
				break
			}
		}
	}

	if firstKernelLine > 0 && !hasDeviceContext {
		out = append(out, domain.Violation{
			File:       path,
			Line:       firstKernelLine,
			Category:   domain.CategoryGPUPattern,
			Message:    "kernel thread indexing used without a DeviceContext",
			Suggestion: "set up a DeviceContext before launching kernels",
			Severity:   domain.SeverityError,
		})
	}

	return out
}
