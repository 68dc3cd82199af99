package engine

// Edge is the interpreter's view of a stored workflow edge. A nil Guard
// is unconditional; a non-nil Guard must equal the source output's
// condition_eval string for the edge to be taken.
type Edge struct {
	SourceID string
	TargetID string
	Guard    *string
}

// SelectSuccessors returns the target node ids reachable from the given
// node under its output document. Multiple successors mean parallel
// branches; callers must not rely on their order.
func SelectSuccessors(edges []Edge, nodeID string, output map[string]any) []string {
	var eval string
	if output != nil {
		if v, ok := output[KeyConditionEval]; ok {
			eval = Stringify(v)
		}
	}

	var targets []string
	for _, e := range edges {
		if e.SourceID != nodeID {
			continue
		}
		if e.Guard != nil && *e.Guard != eval {
			continue
		}
		targets = append(targets, e.TargetID)
	}
	return targets
}
