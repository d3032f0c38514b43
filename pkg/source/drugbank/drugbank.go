// Package drugbank loads carrier and drug-drug interaction records from the
// DrugBank full-database XML export.
//
// The export is streamed: each top-level <drug> element is decoded on its
// own, so memory stays bounded by the largest single drug entry.
package drugbank

import (
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/crkarthik11/healthcare/pkg/errors"
	"github.com/crkarthik11/healthcare/pkg/source"
)

// Node and edge type tags written by this package.
const (
	TypeDrug        = "drug"
	TypeCarrier     = "carrier"
	TypeInteraction = "interaction"
)

type drugRecord struct {
	IDs          []drugbankID  `xml:"drugbank-id"`
	Name         string        `xml:"name"`
	Carriers     []carrier     `xml:"carriers>carrier"`
	Interactions []interaction `xml:"drug-interactions>drug-interaction"`
}

type drugbankID struct {
	Primary bool   `xml:"primary,attr"`
	Value   string `xml:",chardata"`
}

type carrier struct {
	ID       string   `xml:"id"`
	Name     string   `xml:"name"`
	Organism string   `xml:"organism"`
	Actions  []string `xml:"actions>action"`
}

type interaction struct {
	PartnerID   string `xml:"drugbank-id"`
	Name        string `xml:"name"`
	Description string `xml:"description"`
	Type        string `xml:"type"`
}

// primaryID returns the drugbank-id flagged primary="true", or "".
func (d *drugRecord) primaryID() string {
	for _, id := range d.IDs {
		if id.Primary {
			return strings.TrimSpace(id.Value)
		}
	}
	return ""
}

// eachDrug streams r and calls fn for every <drug> element that is a direct
// child of the document root. Nested elements named drug are not visited.
func eachDrug(ctx context.Context, r io.Reader, fn func(*drugRecord)) error {
	decoder := xml.NewDecoder(r)
	depth := 0
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(errors.ErrCodeMalformedRecord, err, "read drugbank xml")
		}

		switch se := tok.(type) {
		case xml.StartElement:
			if depth == 1 && se.Name.Local == "drug" {
				if err := ctx.Err(); err != nil {
					return err
				}
				var d drugRecord
				if err := decoder.DecodeElement(&d, &se); err != nil {
					return errors.Wrap(errors.ErrCodeMalformedRecord, err, "decode drug")
				}
				fn(&d)
				continue
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
}

func load(ctx context.Context, name, path string, opts source.Options, fn func(*source.Pass, *drugRecord)) (source.Stats, error) {
	pass := source.Begin(ctx, name, path, opts.Logger)
	f, err := source.Open(path)
	if err != nil {
		return pass.Done(err)
	}
	defer f.Close()

	return pass.Done(eachDrug(ctx, f, func(d *drugRecord) { fn(pass, d) }))
}
