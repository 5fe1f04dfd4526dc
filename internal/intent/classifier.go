package intent

import "strings"

// Classify maps free text to an operation type. It is total and pure:
// any input yields exactly one OperationType and OperationUnknown is the
// failure value, never an error.
func Classify(text string) OperationType {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return OperationUnknown
	}

	for _, entry := range classifierTable {
		for _, re := range entry.patterns {
			if re.MatchString(trimmed) {
				return entry.op
			}
		}
	}

	return classifyByKeywords(trimmed)
}

// classifyByKeywords is the second-chance fallback: bare noun + coarse
// verb bucket. Runs only when no pattern matched.
func classifyByKeywords(text string) OperationType {
	lower := strings.ToLower(text)

	noun := ""
	switch {
	case strings.Contains(lower, "task"):
		noun = "task"
	case strings.Contains(lower, "project"):
		noun = "project"
	default:
		return OperationUnknown
	}

	words := strings.Fields(lower)
	for _, bucket := range fallbackVerbs {
		op, ok := bucket.op[noun]
		if !ok {
			continue
		}
		for _, token := range bucket.tokens {
			for _, w := range words {
				if strings.Trim(w, ".,!?:;\"'") == token {
					return op
				}
			}
		}
	}

	return OperationUnknown
}
