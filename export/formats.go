package export

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/c360studio/semverse/vocabulary/semverse"
)

const (
	rdfNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	xsdNamespace = "http://www.w3.org/2001/XMLSchema#"
)

// FormatInfo ties a format to the file extension it is saved under.
type FormatInfo struct {
	Name      Format
	Extension string
}

// Formats lists the supported serializations.
var Formats = []FormatInfo{
	{Name: FormatTurtle, Extension: ".ttl"},
	{Name: FormatNTriples, Extension: ".nt"},
	{Name: FormatJSONLD, Extension: ".jsonld"},
}

// ParseFormat resolves a format name or file extension ("ttl", ".nt").
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, info := range Formats {
		if s == string(info.Name) || s == info.Extension || "."+s == info.Extension {
			return info.Name, nil
		}
	}
	return "", fmt.Errorf("unsupported format: %q", s)
}

// OutputPath appends the extension of format to path when path has none.
func OutputPath(path string, format Format) string {
	if path == "" || filepath.Ext(path) != "" {
		return path
	}
	for _, info := range Formats {
		if info.Name == format {
			return path + info.Extension
		}
	}
	return path
}

// TurtleWriter writes entities as Turtle subject blocks.
type TurtleWriter struct {
	sb strings.Builder
}

// NewTurtleWriter starts a document with prefixes declared in sorted order.
func NewTurtleWriter(prefixes map[string]string) *TurtleWriter {
	w := &TurtleWriter{}
	names := make([]string, 0, len(prefixes))
	for name := range prefixes {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(&w.sb, "@prefix %s: <%s> .\n", name, prefixes[name])
	}
	w.sb.WriteString("\n")
	return w
}

// WriteEntity writes one subject block: its rdf:type lines, then one line per
// triple, separated by ";" and closed by ".".
func (w *TurtleWriter) WriteEntity(e Entity) {
	types := semverse.GetTypesForEntity(e.EntityType)
	lines := make([]string, 0, len(types)+len(e.Triples))
	for _, typeIRI := range types {
		lines = append(lines, "a "+iriRef(typeIRI))
	}
	for _, t := range e.Triples {
		lines = append(lines, iriRef(semverse.GetPredicateIRI(t.Predicate))+" "+objectTerm(t, turtleDatatype))
	}
	fmt.Fprintf(&w.sb, "%s\n", iriRef(entityIDToIRI(e.ID)))
	for i, line := range lines {
		end := " ;"
		if i == len(lines)-1 {
			end = " ."
		}
		fmt.Fprintf(&w.sb, "    %s%s\n", line, end)
	}
	w.sb.WriteString("\n")
}

// String returns the accumulated Turtle output.
func (w *TurtleWriter) String() string {
	return w.sb.String()
}

// NTriplesWriter writes entities one statement per line with full IRIs.
type NTriplesWriter struct {
	sb strings.Builder
}

// WriteEntity writes the rdf:type statements of e followed by its triples.
func (w *NTriplesWriter) WriteEntity(e Entity) {
	subject := iriRef(entityIDToIRI(e.ID))
	for _, typeIRI := range semverse.GetTypesForEntity(e.EntityType) {
		fmt.Fprintf(&w.sb, "%s %s %s .\n", subject, iriRef(rdfNamespace+"type"), iriRef(typeIRI))
	}
	for _, t := range e.Triples {
		fmt.Fprintf(&w.sb, "%s %s %s .\n", subject, iriRef(semverse.GetPredicateIRI(t.Predicate)), objectTerm(t, ntriplesDatatype))
	}
}

// String returns the accumulated N-Triples output.
func (w *NTriplesWriter) String() string {
	return w.sb.String()
}

// JSONLDWriter collects entities into a single @graph document.
type JSONLDWriter struct {
	context map[string]string
	graph   []map[string]any
}

// NewJSONLDWriter creates a writer whose @context holds prefixes.
func NewJSONLDWriter(prefixes map[string]string) *JSONLDWriter {
	return &JSONLDWriter{context: prefixes, graph: make([]map[string]any, 0)}
}

// AddEntity appends e as a node with one property per triple.
func (w *JSONLDWriter) AddEntity(e Entity) {
	node := make(map[string]any, len(e.Triples)+2)
	node["@id"] = entityIDToIRI(e.ID)
	if types := semverse.GetTypesForEntity(e.EntityType); len(types) > 0 {
		node["@type"] = types
	}
	for _, t := range e.Triples {
		node[semverse.GetPredicateIRI(t.Predicate)] = jsonLDValue(t)
	}
	w.graph = append(w.graph, node)
}

// Bytes encodes the document.
func (w *JSONLDWriter) Bytes() ([]byte, error) {
	return json.MarshalIndent(map[string]any{
		"@context": w.context,
		"@graph":   w.graph,
	}, "", "  ")
}

func turtleDatatype(local string) string { return "xsd:" + local }

func ntriplesDatatype(local string) string { return iriRef(xsdNamespace + local) }

// objectTerm renders the object of t as an RDF term. datatype renders an XSD
// local name in the target syntax.
func objectTerm(t Triple, datatype func(string) string) string {
	switch t.Kind {
	case EntityRef:
		return iriRef(entityIDToIRI(fmt.Sprint(t.Object)))
	case DateTime:
		return quote(fmt.Sprint(t.Object)) + "^^" + datatype("dateTime")
	}
	switch v := t.Object.(type) {
	case string:
		return quote(v)
	case int, int32, int64, uint, uint32, uint64:
		return quote(fmt.Sprintf("%d", v)) + "^^" + datatype("integer")
	case float64:
		return quote(strconv.FormatFloat(v, 'f', -1, 64)) + "^^" + datatype("decimal")
	case bool:
		return quote(strconv.FormatBool(v)) + "^^" + datatype("boolean")
	default:
		return quote(fmt.Sprint(v))
	}
}

func jsonLDValue(t Triple) any {
	switch t.Kind {
	case EntityRef:
		return map[string]any{"@id": entityIDToIRI(fmt.Sprint(t.Object))}
	case DateTime:
		return map[string]any{"@value": fmt.Sprint(t.Object), "@type": "xsd:dateTime"}
	default:
		return t.Object
	}
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
	return `"` + r.Replace(s) + `"`
}

// iriRef wraps iri in angle brackets, percent-encoding the characters an
// IRIREF may not contain.
func iriRef(iri string) string {
	var sb strings.Builder
	sb.WriteByte('<')
	for _, b := range []byte(iri) {
		if b <= 0x20 || strings.IndexByte("<>\"{}|^`\\", b) >= 0 {
			fmt.Fprintf(&sb, "%%%02X", b)
			continue
		}
		sb.WriteByte(b)
	}
	sb.WriteByte('>')
	return sb.String()
}
