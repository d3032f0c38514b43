package io

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/crkarthik11/healthcare/pkg/concept"
	"github.com/crkarthik11/healthcare/pkg/errors"
	"github.com/crkarthik11/healthcare/pkg/kg"
)

// ExportGraph writes g to path using the codec named by its extension.
func ExportGraph(path string, g *kg.Graph) error {
	return export(path, func(w io.Writer) error { return WriteGraph(w, g) })
}

// ImportGraph reads a graph snapshot written by [ExportGraph].
func ImportGraph(path string) (*kg.Graph, error) {
	var g *kg.Graph
	err := load(path, func(r io.Reader) error {
		var err error
		g, err = ReadGraph(r)
		return err
	})
	return g, err
}

// ExportLookup writes l to path as a JSON object.
func ExportLookup(path string, l concept.Lookup) error {
	return export(path, func(w io.Writer) error {
		if err := json.NewEncoder(w).Encode(l); err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "encode lookup")
		}
		return nil
	})
}

// ImportLookup reads a lookup written by [ExportLookup]. The result is
// never nil.
func ImportLookup(path string) (concept.Lookup, error) {
	l := concept.Lookup{}
	err := load(path, func(r io.Reader) error {
		if err := json.NewDecoder(r).Decode(&l); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode lookup")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if l == nil {
		l = concept.Lookup{}
	}
	return l, nil
}

func export(path string, encode func(io.Writer) error) error {
	codec, err := CodecFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	w, err := codec.NewWriter(buf)
	if err != nil {
		return err
	}
	if err := encode(w); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "finish %s", path)
	}
	if err := buf.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "close %s", path)
	}
	return nil
}

func load(path string, decode func(io.Reader) error) error {
	codec, err := CodecFor(path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "snapshot %s", path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	r, err := codec.NewReader(bufio.NewReader(f))
	if err != nil {
		return err
	}
	defer r.Close()
	return decode(r)
}
