// Package config loads the ingest manifest, kgraph.toml.
//
// A manifest names the snapshot to write and the sources to ingest, in
// order:
//
//	output = "saved/graph.json.zst"
//	lookup = "saved/concepts.json"
//
//	[[source]]
//	kind = "drugbank-carriers"
//	path = "data/drugbank.xml"
//
//	[[source]]
//	kind = "snomed-descriptions"
//	path = "data/sct2_Description_Snapshot-en_INT.txt"
//
// Relative paths are resolved against the manifest's directory. When lookup
// is set, ingest also writes the concept lookup built from every
// snomed-descriptions and gene-ontology source. Two optional SNOMED
// dictionaries can be written next to it:
//
//	descriptions = "saved/descriptions.json"
//
//	[definitions]
//	source = "data/sct2_TextDefinition_Snapshot-en_INT.txt"
//	output = "saved/definitions.json"
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/crkarthik11/healthcare/pkg/errors"
)

// DefaultFile is the manifest name looked up in the working directory.
const DefaultFile = "kgraph.toml"

// Manifest is a decoded ingest manifest.
type Manifest struct {
	Output       string      `toml:"output"`
	Lookup       string      `toml:"lookup"`
	Descriptions string      `toml:"descriptions"`
	Definitions  Definitions `toml:"definitions"`
	Sources      []Source    `toml:"source"`

	path string
	raw  []byte
}

// Source is one ingest step: an adapter kind and its input file.
type Source struct {
	Kind string `toml:"kind"`
	Path string `toml:"path"`
}

// Definitions names a SNOMED text definition snapshot and the file the
// concept id to definition dictionary is written to.
type Definitions struct {
	Source string `toml:"source"`
	Output string `toml:"output"`
}

// Path returns the file the manifest was loaded from.
func (m *Manifest) Path() string { return m.path }

// Raw returns the manifest bytes as read from disk.
func (m *Manifest) Raw() []byte { return m.raw }

// SourcePaths returns the resolved path of every source, in order.
func (m *Manifest) SourcePaths() []string {
	paths := make([]string, len(m.Sources))
	for i, s := range m.Sources {
		paths[i] = s.Path
	}
	return paths
}

// SourcesOf returns the sources of the given kind, in order.
func (m *Manifest) SourcesOf(kind string) []Source {
	var out []Source
	for _, s := range m.Sources {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// Load reads and validates the manifest at path. known reports whether a
// source kind has an adapter; sources of any other kind fail with
// INVALID_CONFIG, as do unknown keys and sources without a path.
func Load(path string, known func(kind string) bool) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read manifest %s", path)
	}
	m, err := Parse(raw, known)
	if err != nil {
		return nil, err
	}
	m.path = path
	m.resolve(filepath.Dir(path))
	return m, nil
}

// Parse decodes and validates manifest bytes without resolving paths.
func Parse(raw []byte, known func(kind string) bool) (*Manifest, error) {
	var m Manifest
	md, err := toml.Decode(string(raw), &m)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode manifest")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown manifest keys: %s", strings.Join(keys, ", "))
	}
	m.raw = raw

	if (m.Definitions.Source == "") != (m.Definitions.Output == "") {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "definitions: source and output must be set together")
	}
	for i, s := range m.Sources {
		if s.Kind == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "source %d: missing kind", i+1)
		}
		if known != nil && !known(s.Kind) {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "source %d: unknown kind %q", i+1, s.Kind)
		}
		if s.Path == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "source %d (%s): missing path", i+1, s.Kind)
		}
	}
	return &m, nil
}

func (m *Manifest) resolve(dir string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	m.Output = abs(m.Output)
	m.Lookup = abs(m.Lookup)
	m.Descriptions = abs(m.Descriptions)
	m.Definitions.Source = abs(m.Definitions.Source)
	m.Definitions.Output = abs(m.Definitions.Output)
	for i := range m.Sources {
		m.Sources[i].Path = abs(m.Sources[i].Path)
	}
}
