package geneontology

import (
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/crkarthik11/healthcare/pkg/errors"
)

// OWL/RDF namespace URIs
const (
	nsOWL      = "http://www.w3.org/2002/07/owl#"
	nsRDF      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	nsRDFS     = "http://www.w3.org/2000/01/rdf-schema#"
	nsOBO      = "http://purl.obolibrary.org/obo/"
	nsOBOInOwl = "http://www.geneontology.org/formats/oboInOwl#"
)

// definitionProperty is the IAO "definition" annotation used by GO.
const definitionProperty = "IAO_0000115"

// term is one owl:Class as read from the file.
type term struct {
	ID         string
	Name       string
	Namespace  string
	Definition string
	Comment    string
	Obsolete   bool
	Synonyms   []string
	Xrefs      []string
	Subsets    []string
	Parents    []string
	Relations  []relation
	// Broken counts restrictions missing their property or filler.
	Broken int
}

type relation struct {
	Property string
	Target   string
}

// eachClass streams r and calls fn for every top-level owl:Class.
func eachClass(ctx context.Context, r io.Reader, fn func(*term)) error {
	return eachEntity(ctx, r, fn, nil)
}

// eachEntity streams r and calls class for every top-level owl:Class and,
// when property is not nil, property for every owl:ObjectProperty. Only the
// id and label of a property are read.
func eachEntity(ctx context.Context, r io.Reader, class, property func(*term)) error {
	decoder := xml.NewDecoder(r)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(errors.ErrCodeMalformedRecord, err, "read owl")
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch {
		case matchElement(se, nsOWL, "Class"):
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := parseClass(decoder, se)
			if err != nil {
				return errors.Wrap(errors.ErrCodeMalformedRecord, err, "read owl:Class")
			}
			class(t)
		case property != nil && matchElement(se, nsOWL, "ObjectProperty"):
			t, err := parseClass(decoder, se)
			if err != nil {
				return errors.Wrap(errors.ErrCodeMalformedRecord, err, "read owl:ObjectProperty")
			}
			property(t)
		case matchElement(se, nsRDF, "RDF"):
			// Container element; descend into it.
		default:
			if err := decoder.Skip(); err != nil {
				return errors.Wrap(errors.ErrCodeMalformedRecord, err, "read owl")
			}
		}
	}
}

func matchElement(se xml.StartElement, ns, local string) bool {
	return se.Name.Space == ns && se.Name.Local == local
}

func getAttr(se xml.StartElement, ns, local string) string {
	for _, a := range se.Attr {
		if a.Name.Space == ns && a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// oboID converts http://purl.obolibrary.org/obo/GO_0008150 to GO:0008150
// and a subset IRI such as .../obo/go#goslim_yeast to its fragment.
// Other URIs are returned unchanged.
func oboID(uri string) string {
	id, ok := strings.CutPrefix(uri, nsOBO)
	if !ok {
		return uri
	}
	if _, fragment, found := strings.Cut(id, "#"); found {
		return fragment
	}
	if prefix, local, found := strings.Cut(id, "_"); found {
		return prefix + ":" + local
	}
	return id
}

func parseClass(decoder *xml.Decoder, se xml.StartElement) (*term, error) {
	t := &term{ID: oboID(getAttr(se, nsRDF, "about"))}

	for {
		tok, err := decoder.Token()
		if err != nil {
			return t, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if err := parseClassChild(decoder, el, t); err != nil {
				return t, err
			}
		case xml.EndElement:
			return t, nil
		}
	}
}

func parseClassChild(decoder *xml.Decoder, el xml.StartElement, t *term) error {
	var err error
	switch {
	case matchElement(el, nsRDFS, "label"):
		t.Name, err = readCharData(decoder)
	case matchElement(el, nsRDFS, "subClassOf"):
		if res := getAttr(el, nsRDF, "resource"); res != "" {
			t.Parents = append(t.Parents, oboID(res))
			return decoder.Skip()
		}
		var rel relation
		rel, err = parseRestriction(decoder)
		if rel.Property != "" && rel.Target != "" {
			t.Relations = append(t.Relations, rel)
		} else if err == nil {
			t.Broken++
		}
	case matchElement(el, nsRDFS, "comment"):
		t.Comment, err = readCharData(decoder)
	case matchElement(el, nsOWL, "deprecated"):
		var v string
		v, err = readCharData(decoder)
		t.Obsolete = strings.TrimSpace(v) == "true"
	case matchElement(el, nsOBO, definitionProperty):
		t.Definition, err = readCharData(decoder)
	case matchElement(el, nsOBOInOwl, "hasOBONamespace"):
		t.Namespace, err = readCharData(decoder)
	case matchElement(el, nsOBOInOwl, "hasExactSynonym"),
		matchElement(el, nsOBOInOwl, "hasBroadSynonym"),
		matchElement(el, nsOBOInOwl, "hasNarrowSynonym"),
		matchElement(el, nsOBOInOwl, "hasRelatedSynonym"):
		var v string
		v, err = readCharData(decoder)
		if v != "" {
			t.Synonyms = append(t.Synonyms, v)
		}
	case matchElement(el, nsOBOInOwl, "hasDbXref"):
		var v string
		v, err = readCharData(decoder)
		if v != "" {
			t.Xrefs = append(t.Xrefs, v)
		}
	case matchElement(el, nsOBOInOwl, "inSubset"):
		if res := getAttr(el, nsRDF, "resource"); res != "" {
			t.Subsets = append(t.Subsets, oboID(res))
		}
		err = decoder.Skip()
	default:
		err = decoder.Skip()
	}
	return err
}

// parseRestriction reads the body of an rdfs:subClassOf holding an
// owl:Restriction with onProperty and someValuesFrom. It consumes the
// closing subClassOf element.
func parseRestriction(decoder *xml.Decoder) (relation, error) {
	var rel relation
	depth := 0
	for {
		tok, err := decoder.Token()
		if err != nil {
			return rel, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch {
			case matchElement(el, nsOWL, "Restriction"):
				depth++
				continue
			case matchElement(el, nsOWL, "onProperty"):
				rel.Property = oboID(getAttr(el, nsRDF, "resource"))
			case matchElement(el, nsOWL, "someValuesFrom"):
				rel.Target = oboID(getAttr(el, nsRDF, "resource"))
			}
			if err := decoder.Skip(); err != nil {
				return rel, err
			}
		case xml.EndElement:
			depth--
			if depth < 0 {
				return rel, nil
			}
		}
	}
}

func readCharData(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	for {
		tok, err := decoder.Token()
		if err != nil {
			return sb.String(), err
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			inner, err := readCharData(decoder)
			sb.WriteString(inner)
			if err != nil {
				return sb.String(), err
			}
		case xml.EndElement:
			return strings.TrimSpace(sb.String()), nil
		}
	}
}
