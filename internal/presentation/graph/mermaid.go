// Package graph renders a project's layer hierarchy as Mermaid markup
// for documentation and debugging.
package graph

import (
	"fmt"
	"strings"

	"github.com/easel-ai/easel/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the layer tree.
// It applies semantic styling:
// - Project root: ((Circle))
// - Group: [[Subroutine]]
// - Text: [/Parallelogram/]
// - Default: [Rectangle]
// Layers carrying keyframes are annotated with the keyframe count.
func GenerateMermaid(p *domain.Project) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	rootID := sanitizeMermaidID("project_" + p.ID)
	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", rootID, escapeLabel(p.Name)))

	for _, layer := range p.Layers {
		safeID := sanitizeMermaidID(layer.ID)

		// Node Shape based on Type
		opener, closer := "[", "]"
		switch layer.Type {
		case domain.LayerGroup:
			opener, closer = "[[", "]]" // Subroutine
		case domain.LayerText:
			opener, closer = "[/", "/]" // Parallelogram
		}

		label := escapeLabel(layer.Name)
		if n := len(layer.Keyframes); n > 0 {
			label = fmt.Sprintf("%s <br/> ⏱️ %d keyframes", label, n)
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

		parent := rootID
		if layer.ParentID != "" {
			parent = sanitizeMermaidID(layer.ParentID)
		}
		arrow := "-->"
		if !layer.Visible {
			arrow = "-.->"
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", parent, arrow, safeID))
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
