package engine

import (
	"errors"
	"fmt"
)

// Graph validation errors surfaced as control-plane 4xx on create.
var (
	ErrNoStartNode       = errors.New("workflow must have exactly one start node")
	ErrMultipleStart     = errors.New("workflow has more than one start node")
	ErrDanglingEdge      = errors.New("edge references a node that does not exist")
	ErrSelfLoop          = errors.New("edge connects a node to itself")
	ErrCyclicGraph       = errors.New("workflow graph contains a cycle")
	ErrDuplicateNodeID   = errors.New("duplicate node id")
	ErrUnknownKindInDefn = errors.New("workflow contains an unknown node kind")
)

// GraphNode is the minimal node shape graph validation needs.
type GraphNode struct {
	ID   string
	Kind string
}

// GraphEdge is the minimal edge shape graph validation needs.
type GraphEdge struct {
	SourceID string
	TargetID string
}

// ValidateGraph checks a workflow definition at create time: every node
// kind known, node ids unique, exactly one start node, all edge endpoints
// present, no self-loops, and no cycles. Suspension re-entry is not an
// edge (it goes through resume_payload), so the stored graph must be a
// strict DAG.
func ValidateGraph(nodes []GraphNode, edges []GraphEdge) error {
	byID := make(map[string]GraphNode, len(nodes))
	startCount := 0

	for _, n := range nodes {
		if _, err := ParseNodeConfig(n.Kind, nil); err != nil {
			return fmt.Errorf("%w: node %q has kind %q", ErrUnknownKindInDefn, n.ID, n.Kind)
		}
		if _, dup := byID[n.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
		}
		byID[n.ID] = n
		if n.Kind == KindStart {
			startCount++
		}
	}

	if startCount == 0 {
		return ErrNoStartNode
	}
	if startCount > 1 {
		return ErrMultipleStart
	}

	indegree := make(map[string]int, len(nodes))
	adjacency := make(map[string][]string, len(nodes))
	for _, n := range nodes {
		indegree[n.ID] = 0
	}

	for _, e := range edges {
		if _, ok := byID[e.SourceID]; !ok {
			return fmt.Errorf("%w: %q -> %q", ErrDanglingEdge, e.SourceID, e.TargetID)
		}
		if _, ok := byID[e.TargetID]; !ok {
			return fmt.Errorf("%w: %q -> %q", ErrDanglingEdge, e.SourceID, e.TargetID)
		}
		if e.SourceID == e.TargetID {
			return fmt.Errorf("%w: %q", ErrSelfLoop, e.SourceID)
		}
		adjacency[e.SourceID] = append(adjacency[e.SourceID], e.TargetID)
		indegree[e.TargetID]++
	}

	// Kahn's algorithm: if a topological order covers every node the
	// graph is acyclic.
	queue := make([]string, 0, len(nodes))
	for id, deg := range indegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, next := range adjacency[id] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if visited != len(nodes) {
		return ErrCyclicGraph
	}

	return nil
}
