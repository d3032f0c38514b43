// Package io persists assembled knowledge graphs and concept lookups.
//
// # Overview
//
// Ingestion is expensive, so the assembled graph is written once as a
// snapshot and reloaded by the analysis commands. Snapshots are JSON,
// optionally compressed:
//
//	{
//	  "nodes": [
//	    {"id": "DB00945", "attrs": {"name": "Aspirin", "type": "drug"}},
//	    {"id": "BE0000530", "attrs": {"name": "Serum albumin", "type": "carrier"}}
//	  ],
//	  "edges": [
//	    {"from": "DB00945", "to": "BE0000530", "attrs": {"type": "carrier"}}
//	  ]
//	}
//
// Node order, edge order and parallel edges are preserved. Attribute values
// round-trip as JSON values, so list attributes come back as []any; read
// them through [kg.Attributes.Strings].
//
// # Codecs
//
// [ExportGraph], [ImportGraph], [ExportLookup] and [ImportLookup] pick a
// [Codec] from the file name:
//
//   - .json: plain JSON
//   - .json.zst: Zstandard (klauspost/compress)
//   - .json.sz: Snappy framing format (golang/snappy)
//
// [WriteGraph] and [ReadGraph] work on plain JSON streams; combine them
// with [Codec.NewWriter] and [Codec.NewReader] for compressed streams.
//
// # Lookups
//
// A lookup is stored as a flat JSON object from concept id to label.
package io
