package ambiguity

import (
	"fmt"
	"strings"
)

// MaxSuggestions is a readability bound on the generated message only;
// the resolver itself may return more matches.
const MaxSuggestions = 5

// Generate turns a resolution result into a user-facing message. Pure
// and total: every context yields exactly one Resolved, never an error.
func Generate(c Context) Resolved {
	switch len(c.Result.Matches) {
	case 0:
		return generateNone(c)
	case 1:
		return generateSingle(c)
	default:
		return generateMultiple(c)
	}
}

func scopeSuffix(c Context) string {
	if c.SearchContext == "" {
		return ""
	}
	return " in " + c.SearchContext
}

func generateNone(c Context) Resolved {
	return Resolved{
		Kind: KindNone,
		Message: fmt.Sprintf(
			"I couldn't find any %s matching %q%s. Try a different name, or give me the exact identifier.",
			c.ResourceType, c.Result.Query, scopeSuffix(c)),
	}
}

func generateSingle(c Context) Resolved {
	match := c.Result.Matches[0]
	return Resolved{
		Kind: KindSingle,
		GID:  match.Candidate.GID,
		Message: fmt.Sprintf("Found %s %q (%s)%s.",
			c.ResourceType, match.Candidate.Name, match.Candidate.GID, scopeSuffix(c)),
	}
}

func generateMultiple(c Context) Resolved {
	shown := c.Result.Matches
	more := 0
	if len(shown) > MaxSuggestions {
		more = len(shown) - MaxSuggestions
		shown = shown[:MaxSuggestions]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d %ss matching %q%s. Which one do you mean?\n",
		len(c.Result.Matches), c.ResourceType, c.Result.Query, scopeSuffix(c))

	suggestions := make([]Suggestion, 0, len(shown))
	for i, m := range shown {
		sctx := candidateContext(m.Candidate.Metadata)
		fmt.Fprintf(&b, "%d. %s (%s)", i+1, m.Candidate.Name, m.Candidate.GID)
		if sctx != "" {
			fmt.Fprintf(&b, " - %s", sctx)
		}
		b.WriteString("\n")

		suggestions = append(suggestions, Suggestion{
			GID:         m.Candidate.GID,
			DisplayText: m.Candidate.Name,
			Context:     sctx,
		})
	}

	if more > 0 {
		fmt.Fprintf(&b, "...and %d more.\n", more)
	}
	b.WriteString("Reply with the exact identifier, or a more specific name.")

	return Resolved{
		Kind:        KindMultiple,
		Message:     b.String(),
		Suggestions: suggestions,
	}
}

// candidateContext builds the optional per-suggestion context line from
// candidate metadata ("in project Alpha, completed").
func candidateContext(metadata map[string]string) string {
	if len(metadata) == 0 {
		return ""
	}

	parts := make([]string, 0, 3)
	if p := metadata["project"]; p != "" {
		parts = append(parts, "in project "+p)
	}
	if w := metadata["workspace"]; w != "" {
		parts = append(parts, "in workspace "+w)
	}
	if metadata["completed"] == "true" {
		parts = append(parts, "completed")
	}
	if e := metadata["email"]; e != "" {
		parts = append(parts, e)
	}
	return strings.Join(parts, ", ")
}
