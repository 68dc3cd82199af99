package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateGraph(t *testing.T) {
	linear := []GraphNode{
		{ID: "n1", Kind: KindStart},
		{ID: "n2", Kind: KindAIInference},
		{ID: "n3", Kind: KindEnd},
	}

	tests := []struct {
		name    string
		nodes   []GraphNode
		edges   []GraphEdge
		wantErr error
	}{
		{
			name:  "valid linear workflow",
			nodes: linear,
			edges: []GraphEdge{{SourceID: "n1", TargetID: "n2"}, {SourceID: "n2", TargetID: "n3"}},
		},
		{
			name: "valid branching workflow",
			nodes: []GraphNode{
				{ID: "n1", Kind: KindStart},
				{ID: "n2", Kind: KindCondition},
				{ID: "n3", Kind: KindAction},
				{ID: "n4", Kind: KindAction},
				{ID: "n5", Kind: KindEnd},
			},
			edges: []GraphEdge{
				{SourceID: "n1", TargetID: "n2"},
				{SourceID: "n2", TargetID: "n3"},
				{SourceID: "n2", TargetID: "n4"},
				{SourceID: "n3", TargetID: "n5"},
				{SourceID: "n4", TargetID: "n5"},
			},
		},
		{
			name: "no start node",
			nodes: []GraphNode{
				{ID: "n1", Kind: KindAction},
				{ID: "n2", Kind: KindEnd},
			},
			edges:   []GraphEdge{{SourceID: "n1", TargetID: "n2"}},
			wantErr: ErrNoStartNode,
		},
		{
			name: "two start nodes",
			nodes: []GraphNode{
				{ID: "n1", Kind: KindStart},
				{ID: "n2", Kind: KindStart},
			},
			wantErr: ErrMultipleStart,
		},
		{
			name:    "edge to unknown node",
			nodes:   linear,
			edges:   []GraphEdge{{SourceID: "n1", TargetID: "ghost"}},
			wantErr: ErrDanglingEdge,
		},
		{
			name: "duplicate node id",
			nodes: []GraphNode{
				{ID: "n1", Kind: KindStart},
				{ID: "n1", Kind: KindEnd},
			},
			wantErr: ErrDuplicateNodeID,
		},
		{
			name:    "self loop rejected",
			nodes:   linear,
			edges:   []GraphEdge{{SourceID: "n1", TargetID: "n2"}, {SourceID: "n2", TargetID: "n2"}},
			wantErr: ErrSelfLoop,
		},
		{
			name:  "cycle rejected",
			nodes: linear,
			edges: []GraphEdge{
				{SourceID: "n1", TargetID: "n2"},
				{SourceID: "n2", TargetID: "n3"},
				{SourceID: "n3", TargetID: "n2"},
			},
			wantErr: ErrCyclicGraph,
		},
		{
			name: "unknown node kind",
			nodes: []GraphNode{
				{ID: "n1", Kind: KindStart},
				{ID: "n2", Kind: "teleport"},
			},
			wantErr: ErrUnknownKindInDefn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGraph(tt.nodes, tt.edges)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
