package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"agesweep/internal/types"
)

// ParseAgePolicy resolves how multiple enabled timestamp kinds
// combine. "all" requires every enabled timestamp to be older than the
// cutoff before a file qualifies; "any" lets a single old timestamp
// qualify it. The default is "all", the conservative choice for the
// stock created+modified configuration.
func ParseAgePolicy(value string) (types.AgePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(types.AgePolicyAll):
		return types.AgePolicyAll, nil
	case string(types.AgePolicyAny):
		return types.AgePolicyAny, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown age policy: %s (expected all or any)", value))
	}
}
