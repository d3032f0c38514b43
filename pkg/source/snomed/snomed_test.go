package snomed

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/crkarthik11/healthcare/pkg/concept"
	"github.com/crkarthik11/healthcare/pkg/errors"
	"github.com/crkarthik11/healthcare/pkg/kg"
	"github.com/crkarthik11/healthcare/pkg/source"
)

func rows(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

var (
	conceptFile = rows(
		"id\teffectiveTime\tactive\tmoduleId\tdefinitionStatusId",
		"22298006\t20020131\t1\t900000000000207008\t900000000000073002",
		"57809008\t20020131\t1\t900000000000207008\t900000000000074008",
		"116680003\t20020131\t1\t900000000000012004\t900000000000074008",
		"100000000\t20090731\t0\t900000000000207008\t900000000000074008",
		"broken\trow",
	)
	descriptionFile = rows(
		"id\teffectiveTime\tactive\tmoduleId\tconceptId\tlanguageCode\ttypeId\tterm\tcaseSignificanceId",
		"751689013\t20020131\t1\t900000000000207008\t22298006\ten\t900000000000003001\tMyocardial infarction (disorder)\t900000000000448009",
		"37436014\t20020131\t1\t900000000000207008\t22298006\ten\t900000000000013009\tHeart attack\t900000000000448009",
		"94580011\t20020131\t1\t900000000000207008\t57809008\ten\t900000000000013009\tMyocardial disease\t900000000000448009",
		"1221058019\t20020131\t0\t900000000000207008\t57809008\ten\t900000000000003001\tRetired name (disorder)\t900000000000448009",
		"680946014\t20020131\t1\t900000000000012004\t116680003\ten\t900000000000003001\tIs a (attribute)\t900000000000448009",
		"2471531018\t20020131\t1\t900000000000012004\t116680003\ten\t900000000000013009\tIs a\t900000000000448009",
	)
	relationshipFile = rows(
		"id\teffectiveTime\tactive\tmoduleId\tsourceId\tdestinationId\trelationshipGroup\ttypeId\tcharacteristicTypeId\tmodifierId",
		"100022\t20020131\t1\t900000000000207008\t22298006\t57809008\t0\t116680003\t900000000000011006\t900000000000451002",
		"100023\t20020131\t0\t900000000000207008\t22298006\t100000000\t0\t116680003\t900000000000011006\t900000000000451002",
		"100024\t20020131\t1\t900000000000207008\t22298006\t57809008\t1\t363698007\t900000000000011006\t900000000000451002",
		"100025\t20020131\t1\t900000000000207008\t\t57809008\t0\t116680003\t900000000000011006\t900000000000451002",
	)
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func quiet() source.Option {
	return source.WithLogger(log.New(io.Discard))
}

func TestConcepts(t *testing.T) {
	g := kg.New()
	stats, err := NewConcepts(quiet()).Load(context.Background(), write(t, "concepts.txt", conceptFile), g)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if stats.Records != 4 || stats.Skipped != 1 {
		t.Errorf("stats = %+v, want 4 records, 1 skipped", stats)
	}

	n, ok := g.Node("22298006")
	if !ok {
		t.Fatal("concept missing")
	}
	if n.Type() != TypeConcept || n.Attrs["active"] != true || n.Attrs.String("effective_time") != "20020131" {
		t.Errorf("attrs = %v", n.Attrs)
	}
	if retired, _ := g.Node("100000000"); retired.Attrs["active"] != false {
		t.Errorf("inactive concept attrs = %v", retired.Attrs)
	}
	if g.HasNode("id") {
		t.Error("header row was loaded")
	}
}

func TestDescriptions(t *testing.T) {
	g := kg.New()
	stats, err := NewDescriptions(quiet()).Load(context.Background(), write(t, "descriptions.txt", descriptionFile), g)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if stats.Records != 2 {
		t.Errorf("records = %d, want 2 active FSN rows", stats.Records)
	}

	n, _ := g.Node("22298006")
	if n.Name() != "Myocardial infarction" || n.Attrs.String(kg.AttrSemanticTag) != "disorder" {
		t.Errorf("attrs = %v", n.Attrs)
	}
	if g.HasNode("57809008") {
		t.Error("concept with only a synonym and an inactive FSN got a node")
	}
}

func TestRelationships(t *testing.T) {
	g := kg.New()
	stats, err := NewRelationships(quiet()).Load(context.Background(), write(t, "relationships.txt", relationshipFile), g)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if stats.Records != 2 || stats.Skipped != 1 {
		t.Errorf("stats = %+v, want 2 records, 1 skipped", stats)
	}

	edges := g.OutEdges("22298006")
	if len(edges) != 2 {
		t.Fatalf("edges = %v, want 2 parallel edges", edges)
	}
	isA := edges[0]
	if isA.To != "57809008" || isA.Type() != TypeRelationship {
		t.Errorf("edge = %+v", isA)
	}
	if isA.Attrs.String(kg.AttrRelationshipType) != "116680003" || isA.Attrs.String(kg.AttrRelationshipGroup) != "0" {
		t.Errorf("edge attrs = %v", isA.Attrs)
	}
	if isA.Attrs.String("relationship_id") != "100022" {
		t.Errorf("relationship_id = %q", isA.Attrs.String("relationship_id"))
	}
	if g.HasNode("100000000") {
		t.Error("inactive relationship created its destination")
	}
}

func TestLoadLookup(t *testing.T) {
	lookup, err := LoadLookup(context.Background(), write(t, "descriptions.txt", descriptionFile), quiet())
	if err != nil {
		t.Fatalf("LoadLookup: %v", err)
	}

	tests := []struct{ id, want string }{
		{"22298006", "Myocardial infarction"},
		{"57809008", "Myocardial disease"},
		{"116680003", "Is a"},
	}
	for _, tt := range tests {
		if got := lookup.Label(tt.id); got != tt.want {
			t.Errorf("Label(%s) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

var definitionFile = rows(
	"id\teffectiveTime\tactive\tmoduleId\tconceptId\tlanguageCode\ttypeId\tterm\tcaseSignificanceId",
	"3315005011\t20170731\t1\t900000000000207008\t22298006\ten\t900000000000550004\tNecrosis of the myocardium caused by an obstruction of the blood supply to the heart.\t900000000000017005",
	"3315005012\t20170731\t0\t900000000000207008\t57809008\ten\t900000000000550004\tRetired definition.\t900000000000017005",
	"3315005013\t20170731\t1\t900000000000207008\t\ten\t900000000000550004\tOrphan definition.\t900000000000017005",
	"short\trow",
)

func TestLoadTextDefinitions(t *testing.T) {
	defs, err := LoadTextDefinitions(context.Background(), write(t, "definitions.txt", definitionFile), quiet())
	if err != nil {
		t.Fatalf("LoadTextDefinitions: %v", err)
	}

	tests := []struct {
		id    string
		want  string
		found bool
	}{
		{"22298006", "Necrosis of the myocardium caused by an obstruction of the blood supply to the heart.", true},
		{"57809008", "", false},
		{"116680003", "", false},
	}
	for _, tt := range tests {
		got, ok := defs.Resolve(tt.id)
		if ok != tt.found || got != tt.want {
			t.Errorf("Resolve(%s) = (%q, %v), want (%q, %v)", tt.id, got, ok, tt.want, tt.found)
		}
	}
	if len(defs) != 1 {
		t.Errorf("definitions = %v, want one entry", defs)
	}
}

func TestLoadDescriptionLookup(t *testing.T) {
	terms, err := LoadDescriptionLookup(context.Background(), write(t, "descriptions.txt", descriptionFile), quiet())
	if err != nil {
		t.Fatalf("LoadDescriptionLookup: %v", err)
	}

	tests := []struct {
		id    string
		want  string
		found bool
	}{
		{"751689013", "Myocardial infarction (disorder)", true},
		{"37436014", "Heart attack", true},
		{"2471531018", "Is a", true},
		{"1221058019", "", false},
		{"22298006", "", false},
	}
	for _, tt := range tests {
		got, ok := terms.Resolve(tt.id)
		if ok != tt.found || got != tt.want {
			t.Errorf("Resolve(%s) = (%q, %v), want (%q, %v)", tt.id, got, ok, tt.want, tt.found)
		}
	}
	if len(terms) != 5 {
		t.Errorf("description index has %d entries, want 5", len(terms))
	}
}

func TestDefinitionLoadersMissingFile(t *testing.T) {
	loaders := []struct {
		name string
		load func(context.Context, string, ...source.Option) (concept.Lookup, error)
	}{
		{"text definitions", LoadTextDefinitions},
		{"description index", LoadDescriptionLookup},
	}
	for _, tt := range loaders {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.load(context.Background(), filepath.Join(t.TempDir(), "none.txt"), quiet())
			if !errors.Is(err, errors.ErrCodeFileNotFound) {
				t.Errorf("err = %v, want FILE_NOT_FOUND", err)
			}
		})
	}
}

func TestSplitSemanticTag(t *testing.T) {
	tests := []struct{ term, name, tag string }{
		{"Myocardial infarction (disorder)", "Myocardial infarction", "disorder"},
		{"Is a (attribute)", "Is a", "attribute"},
		{"Aspirin", "Aspirin", ""},
		{"Vitamin (B12) deficiency", "Vitamin (B12) deficiency", ""},
		{"(tag only)", "(tag only)", ""},
	}
	for _, tt := range tests {
		name, tag := splitSemanticTag(tt.term)
		if name != tt.name || tag != tt.tag {
			t.Errorf("splitSemanticTag(%q) = (%q, %q), want (%q, %q)", tt.term, name, tag, tt.name, tt.tag)
		}
	}
}

func TestMissingFile(t *testing.T) {
	_, err := NewConcepts(quiet()).Load(context.Background(), filepath.Join(t.TempDir(), "none.txt"), kg.New())
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}
