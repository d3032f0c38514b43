// Package kg provides the directed, typed, multi-relational graph that all
// ontology sources are merged into.
//
// # Overview
//
// DrugBank carriers and interactions, Gene Ontology terms and SNOMED CT
// concepts all land in one [Graph]. Nodes are identified by their
// source-defined key; edges are directed and carry an open attribute map
// ([Attributes]) holding the relation category ("type"), the relationship
// ids ("relationship_type", "relationship_group") and any relation-specific
// payload ("actions", "description", "interaction_type").
//
// # Merge Rules
//
// The graph has exactly two mutation operations:
//
//   - [Graph.UpsertNode] creates a node or merges attributes into it. New keys
//     are added and colliding keys are overwritten, so the last writer wins.
//   - [Graph.UpsertEdge] always appends a new edge instance. Missing endpoints
//     are created with empty attributes first, which makes the order in which
//     sources are ingested irrelevant to correctness.
//
// Edges are never deduplicated. A drug that is both a carrier substrate and
// an interaction partner of another node produces two parallel edges:
//
//	g := kg.New()
//	g.UpsertNode("DB00945", kg.Attributes{"name": "Aspirin", "type": "drug"})
//	g.UpsertEdge("DB00945", "BE0000530", kg.Attributes{"type": "carrier"})
//	g.UpsertEdge("DB00945", "DB00682", kg.Attributes{"type": "interaction"})
//
// There is no deletion.
//
// # Concurrency
//
// Graph is not safe for concurrent use. Ingestion is a single-writer phase;
// afterwards the graph is treated as read-only and may be analyzed by any
// number of sequential callers.
package kg
