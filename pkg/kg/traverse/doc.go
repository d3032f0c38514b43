// Package traverse provides read-only analyses over a [kg.Graph].
//
// # Level Assignment
//
// [Levels] runs a multi-source breadth-first search over the successor
// relation. Every root starts at level 0; each reachable node receives the
// length of the shortest forward path from the nearest root. Nodes that no
// root reaches are absent from the result.
//
// # Chain Enumeration
//
// [Chains] walks the graph depth-first from a start node with a visited set
// shared across the whole walk, so no node is expanded twice. One [Chain] is
// emitted per traversed edge in post-order (deepest edges first), carrying
// the label path from the start node, the resolved relation label and the
// destination label. [PrintChains] writes them one per line.
//
// Relation labels come from the edge's "relationship_type" attribute
// resolved through a [concept.Lookup]. An edge whose relation cannot be
// resolved is an UNRESOLVED_RELATION error for that segment: nothing below
// it is expanded and no chain is emitted for it. The walk continues on
// sibling branches unless [WithStrict] is given.
package traverse
