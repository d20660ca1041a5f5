// Package graph renders compiled graph definitions for humans.
package graph

import (
	"fmt"
	"strings"

	enginegraph "github.com/daneel-ai/daneel/pkg/graph"
)

// Overlay contains dynamic run data to visualize on the graph.
type Overlay struct {
	Path []string // node IDs in execution order
}

// GenerateMermaid produces a Mermaid flowchart from the compiled nodes.
// It applies semantic styling:
// - Entry: ((Circle))
// - Terminal: [[Subroutine]]
// - Default: [Rectangle]
// Branch edges carry their label; unconditional edges are plain arrows.
// It also highlights the executed path if an overlay is provided.
func GenerateMermaid(nodes []enginegraph.NodeView, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range nodes {
		safeID := sanitizeMermaidID(node.ID)

		opener, closer := "[", "]"
		switch {
		case node.Entry:
			opener, closer = "((", "))"
		case node.Terminal:
			opener, closer = "[[", "]]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, node.ID, closer))

		if node.Next != "" {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, sanitizeMermaidID(node.Next)))
		}

		// Labels in declaration order keeps the rendering stable.
		for _, label := range node.Labels {
			target := node.Edges[label]
			safeLabel := strings.ReplaceAll(label, "\"", "'")
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", safeID, safeLabel, sanitizeMermaidID(target)))
		}
	}

	if overlay != nil && len(overlay.Path) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.Path {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
