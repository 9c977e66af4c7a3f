package domain

import "strconv"

// NodeType classifies graph nodes.
type NodeType string

// Graph node types.
const (
	NodeArtwork  NodeType = "artwork"
	NodeCreator  NodeType = "creator"
	NodePeriod   NodeType = "period"
	NodeProvider NodeType = "provider"
)

// LinkType classifies graph links.
type LinkType string

// Graph link types.
const (
	LinkCreatedBy        LinkType = "created_by"
	LinkInPeriod         LinkType = "in_period"
	LinkProvidedBy       LinkType = "provided_by"
	LinkCollaboratedWith LinkType = "collaborated_with"
)

// Node is a vertex of the artwork graph.
type Node struct {
	ID    string   `json:"id" yaml:"id"`
	Type  NodeType `json:"type" yaml:"type"`
	Label string   `json:"label" yaml:"label"`

	// Size is the number of artworks attached to the node (1 for artworks).
	Size int `json:"size" yaml:"size"`
}

// Link is an edge of the artwork graph.
type Link struct {
	Source string   `json:"source" yaml:"source"`
	Target string   `json:"target" yaml:"target"`
	Type   LinkType `json:"type" yaml:"type"`
	Weight int      `json:"weight" yaml:"weight"`
}

// Graph is the artwork/creator/period/provider graph of a set of artworks.
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Links []Link `json:"links" yaml:"links"`
}

// NodesOfType returns the nodes of type t in graph order.
func (g *Graph) NodesOfType(t NodeType) []Node {
	var out []Node
	for _, n := range g.Nodes {
		if n.Type == t {
			out = append(out, n)
		}
	}
	return out
}

// LinksOfType returns the links of type t in graph order.
func (g *Graph) LinksOfType(t LinkType) []Link {
	var out []Link
	for _, l := range g.Links {
		if l.Type == t {
			out = append(out, l)
		}
	}
	return out
}

// graphBuilder accumulates nodes and links in first-encounter order.
type graphBuilder struct {
	graph *Graph
	nodes map[string]int
	pairs map[string]int
}

func (b *graphBuilder) node(id string, t NodeType, label string) {
	if i, ok := b.nodes[id]; ok {
		b.graph.Nodes[i].Size++
		return
	}
	b.nodes[id] = len(b.graph.Nodes)
	b.graph.Nodes = append(b.graph.Nodes, Node{ID: id, Type: t, Label: label, Size: 1})
}

func (b *graphBuilder) link(source, target string, t LinkType) {
	b.graph.Links = append(b.graph.Links, Link{Source: source, Target: target, Type: t, Weight: 1})
}

func (b *graphBuilder) collaboration(a, c string) {
	key := a + "\x00" + c
	if c < a {
		key = c + "\x00" + a
	}
	if i, ok := b.pairs[key]; ok {
		b.graph.Links[i].Weight++
		return
	}
	b.pairs[key] = len(b.graph.Links)
	b.link(a, c, LinkCollaboratedWith)
}

// BuildGraph derives the graph of artworks. Every artwork links to each
// of its distinct creators, its period and its provider. Creators sharing
// an artwork are joined by one collaborated_with link per unordered pair,
// weighted by the number of shared artworks. The result is deterministic.
func BuildGraph(artworks []Artwork) *Graph {
	b := &graphBuilder{
		graph: &Graph{Nodes: []Node{}, Links: []Link{}},
		nodes: make(map[string]int),
		pairs: make(map[string]int),
	}

	for i := range artworks {
		a := &artworks[i]

		artID := artworkNodeID(a, i)
		if _, dup := b.nodes[artID]; dup {
			artID = "artwork:#" + strconv.Itoa(i)
		}
		b.node(artID, NodeArtwork, a.Title)

		var creators []string
		for _, name := range a.Creators {
			if containsKey(creators, name) {
				continue
			}
			creators = append(creators, name)
			id := "creator:" + name
			b.node(id, NodeCreator, name)
			b.link(artID, id, LinkCreatedBy)
		}

		periodID := "period:" + a.TimePeriod
		b.node(periodID, NodePeriod, a.TimePeriod)
		b.link(artID, periodID, LinkInPeriod)

		if a.Provider != "" {
			providerID := "provider:" + a.Provider
			b.node(providerID, NodeProvider, a.Provider)
			b.link(artID, providerID, LinkProvidedBy)
		}

		for x := 0; x < len(creators); x++ {
			for y := x + 1; y < len(creators); y++ {
				b.collaboration("creator:"+creators[x], "creator:"+creators[y])
			}
		}
	}

	return b.graph
}

func artworkNodeID(a *Artwork, index int) string {
	if a.ID == "" {
		return "artwork:#" + strconv.Itoa(index)
	}
	return "artwork:" + a.ID
}
