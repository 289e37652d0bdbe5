// Package render generates visual representations of the dependency
// graph: a portable ASCII diagram for terminals plus DOT and Mermaid
// emitters for external tooling. All rendering is local; no services.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/raveheart1/workgraph/internal/graph"
)

// Format specifies the visualization output format.
type Format string

const (
	FormatASCII   Format = "ascii"
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
)

// Render produces the graph in the requested format.
func Render(g *graph.Graph, format Format) (string, error) {
	switch format {
	case FormatASCII:
		return RenderASCII(g), nil
	case FormatDOT:
		return RenderDOT(g), nil
	case FormatMermaid:
		return RenderMermaid(g), nil
	default:
		return "", fmt.Errorf("unknown format %q (want ascii, dot, or mermaid)", format)
	}
}

// RenderASCII generates an ASCII representation of the graph. Nodes are
// grouped into dependency levels when the graph is acyclic; a cyclic
// graph falls back to a flat node list. Uses portable ASCII characters
// only (no Unicode).
func RenderASCII(g *graph.Graph) string {
	if g.NodeCount() == 0 {
		return "Graph has no nodes to visualize.\n"
	}

	var sb strings.Builder
	sb.WriteString(renderHeader(g))
	sb.WriteString("\n")

	levels := dependencyLevels(g)
	for i, level := range levels {
		sb.WriteString(renderLevel(i, level, g))
		if i < len(levels)-1 {
			sb.WriteString("    |\n    v\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(renderDependencies(g))
	sb.WriteString("\n")
	sb.WriteString(renderLegend())

	return sb.String()
}

// renderHeader renders the summary line.
func renderHeader(g *graph.Graph) string {
	var sb strings.Builder
	sb.WriteString("Dependency Graph\n")
	sb.WriteString(strings.Repeat("=", 16) + "\n")
	fmt.Fprintf(&sb, "Nodes: %d  |  Edges: %d\n", g.NodeCount(), g.EdgeCount())
	return sb.String()
}

// dependencyLevels partitions nodes into levels where every edge runs
// from a lower level to a strictly higher one. On a cyclic graph all
// nodes land in one level.
func dependencyLevels(g *graph.Graph) [][]string {
	if !g.IsDAG() {
		return [][]string{g.NodeIDs()}
	}

	depth := make(map[string]int)
	m := g.ComputeMetrics()
	maxDepth := 0
	for _, id := range m.TopologicalOrder {
		for _, pred := range g.Predecessors(id) {
			if depth[pred]+1 > depth[id] {
				depth[id] = depth[pred] + 1
			}
		}
		if depth[id] > maxDepth {
			maxDepth = depth[id]
		}
	}

	levels := make([][]string, maxDepth+1)
	for _, id := range g.NodeIDs() {
		levels[depth[id]] = append(levels[depth[id]], id)
	}
	return levels
}

// renderLevel renders one dependency level with its nodes.
func renderLevel(idx int, ids []string, g *graph.Graph) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[level %d]\n", idx)

	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	for i, id := range sorted {
		prefix := "  |-"
		if i == len(sorted)-1 {
			prefix = "  +-"
		}
		sb.WriteString(renderNodeLine(prefix, id, g))
	}
	return sb.String()
}

// renderNodeLine renders a single node line with its type annotation.
func renderNodeLine(prefix, id string, g *graph.Graph) string {
	depMarker := ""
	if g.InDegree(id) > 0 {
		depMarker = " *"
	}
	node := g.Node(id)
	if node != nil && node.Type != "" {
		return fmt.Sprintf("%s %s (%s)%s\n", prefix, id, node.Type, depMarker)
	}
	return fmt.Sprintf("%s %s%s\n", prefix, id, depMarker)
}

// renderDependencies renders the edge list section.
func renderDependencies(g *graph.Graph) string {
	var lines []string
	for _, id := range g.NodeIDs() {
		succs := g.Successors(id)
		if len(succs) > 0 {
			lines = append(lines, fmt.Sprintf("  %s --> %s\n", id, strings.Join(succs, ", ")))
		}
	}
	if len(lines) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Dependencies:\n")
	sb.WriteString("-------------\n")
	for _, line := range lines {
		sb.WriteString(line)
	}
	return sb.String()
}

// renderLegend renders the legend explaining symbols.
func renderLegend() string {
	var sb strings.Builder
	sb.WriteString("Legend:\n")
	sb.WriteString("  * = has predecessors (see list above)\n")
	sb.WriteString("  --> = precedes\n")
	return sb.String()
}

// RenderDOT emits the graph in Graphviz DOT format.
func RenderDOT(g *graph.Graph) string {
	var sb strings.Builder
	sb.WriteString("digraph workitems {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")

	for _, id := range g.NodeIDs() {
		node := g.Node(id)
		if node.Type != "" {
			fmt.Fprintf(&sb, "  %q [label=\"%s\\n%s\"];\n", id, id, node.Type)
		} else {
			fmt.Fprintf(&sb, "  %q [label=%q];\n", id, id)
		}
	}
	for _, id := range g.NodeIDs() {
		for _, succ := range g.Successors(id) {
			fmt.Fprintf(&sb, "  %q -> %q;\n", id, succ)
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

// RenderMermaid emits the graph as a Mermaid flowchart.
func RenderMermaid(g *graph.Graph) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, id := range g.NodeIDs() {
		node := g.Node(id)
		if node.Type != "" {
			fmt.Fprintf(&sb, "  %s[\"%s (%s)\"]\n", mermaidID(id), id, node.Type)
		} else {
			fmt.Fprintf(&sb, "  %s[\"%s\"]\n", mermaidID(id), id)
		}
	}
	for _, id := range g.NodeIDs() {
		for _, succ := range g.Successors(id) {
			fmt.Fprintf(&sb, "  %s --> %s\n", mermaidID(id), mermaidID(succ))
		}
	}

	return sb.String()
}

// mermaidID sanitizes a node ID for use as a Mermaid identifier.
func mermaidID(id string) string {
	var sb strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return "n_" + sb.String()
}
