// Package pkg provides the libraries behind kgraph, a biomedical knowledge
// graph builder.
//
// # Overview
//
// kgraph merges DrugBank, Gene Ontology and SNOMED CT files into one
// directed multigraph and runs analyses over it. The pkg directory is
// organized into these areas:
//
//  1. [kg] - The graph model: upserting nodes and edges, subgraphs
//  2. [kg/traverse] - Breadth-first levels and depth-first relation chains
//  3. [source] - Adapters that stream a source file into the graph
//  4. [render] - Layouts, colors and PNG/SVG/DOT output of subgraphs
//  5. [io], [cache], [config] - Snapshots, the snapshot cache, manifests
//
// # Architecture
//
// The typical data flow:
//
//	kgraph.toml manifest
//	         ↓
//	    [source] adapters (drugbank, geneontology, snomed)
//	         ↓
//	    [kg] graph ──→ [io] snapshot (.json, .json.zst, .json.sz)
//	         ↓
//	    [kg/traverse] levels and chains
//	         ↓
//	    [render] PNG, SVG, DOT
//
// # Quick Start
//
// Load a SNOMED release and print the chains below a concept:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/crkarthik11/healthcare/pkg/kg"
//	    "github.com/crkarthik11/healthcare/pkg/kg/traverse"
//	    "github.com/crkarthik11/healthcare/pkg/source/snomed"
//	)
//
//	g := kg.New()
//	ctx := context.Background()
//	snomed.NewConcepts().Load(ctx, "sct2_Concept_Snapshot_INT.txt", g)
//	snomed.NewDescriptions().Load(ctx, "sct2_Description_Snapshot-en_INT.txt", g)
//	snomed.NewRelationships().Load(ctx, "sct2_Relationship_Snapshot_INT.txt", g)
//
//	lookup, _ := snomed.LoadLookup(ctx, "sct2_Description_Snapshot-en_INT.txt")
//	chains, _ := traverse.Chains(g, "22298006", lookup)
//	traverse.PrintChains(os.Stdout, chains)
//
// Render the neighborhood of a drug:
//
//	sub := g.Ego("DB00945", 2)
//	render.Render(ctx, sub, lookup, "out/aspirin",
//	    render.WithHighlight("DB00945"),
//	    render.WithLayout("kamada-kawai"))
//
// # Error Handling
//
// Operations return [errors.Error] values carrying a machine-readable code:
//
//	if errors.Is(err, errors.ErrCodeInvalidLayout) {
//	    // unknown layout name
//	}
package pkg
