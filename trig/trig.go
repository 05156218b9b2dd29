// Package trig implements a parser for the subset of TriG (named-graph
// Turtle) used by mapping documents: `@prefix` declarations, named
// graph blocks, RDF collections (operand lists), and RDF-star-style
// embedded/quoted triples for `when`/`from` operands.
//
// No example in the corpus parses TriG; this is grounded texturally on
// nquads.go's Reader/ReadQuad/unescape shape (a buffered decoder that
// hands back one quad.Quad at a time, with its own escape handling)
// but reads the whole document up front, since TriG statements (unlike
// N-Quads) span lines and nest braces.
package trig

import (
	"fmt"
	"io"
	"strings"

	"github.com/ARGA-Genomes/arga-transformer/quad"
)

// ParseError reports a malformed document, with the byte offset where
// parsing failed.
type ParseError struct {
	Offset int
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("trig: offset %d: %s", e.Offset, e.Detail)
}

// Parse decodes an entire TriG document into its quads. Parsing is
// all-or-nothing: the first malformed statement aborts the whole
// document (§7: "the loader is all-or-nothing per document").
func Parse(r io.Reader) ([]quad.Quad, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	p := &parser{src: string(data)}
	return p.document()
}

type parser struct {
	src     string
	pos     int
	prefix  map[string]string
	anonSeq int

	// pendingListQuads accumulates the rdf:first/rdf:rest quads for any
	// RDF collection encountered while parsing the current statement's
	// terms; the caller flushes them, with the statement's graph
	// attached, once the statement is complete.
	pendingListQuads []pendingListQuad
}

func (p *parser) takePendingListQuads(graph quad.Value) []quad.Quad {
	if len(p.pendingListQuads) == 0 {
		return nil
	}
	out := make([]quad.Quad, len(p.pendingListQuads))
	for i, plq := range p.pendingListQuads {
		out[i] = quad.Quad{Subject: plq.subject, Predicate: plq.predicate, Object: plq.object, Graph: graph}
	}
	p.pendingListQuads = p.pendingListQuads[:0]
	return out
}

func (p *parser) document() ([]quad.Quad, error) {
	p.prefix = map[string]string{}
	var out []quad.Quad

	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return out, nil
		}
		if p.atPrefixKeyword() {
			if err := p.prefixDirective(); err != nil {
				return nil, err
			}
			continue
		}

		// Either a bare `subject predicate object .` (default graph) or
		// a `graphIRI { ... }` block.
		first, err := p.term()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peekByte() == '{' {
			graphIRI, ok := first.(quad.IRI)
			if !ok {
				return nil, p.errf("graph name must be an IRI")
			}
			p.pos++ // consume '{'
			quads, err := p.graphBody(graphIRI)
			if err != nil {
				return nil, err
			}
			out = append(out, quads...)
			continue
		}
		q, err := p.restOfTriple(first, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, p.takePendingListQuads(nil)...)
		out = append(out, q)
		if err := p.expectDot(); err != nil {
			return nil, err
		}
	}
}

func (p *parser) graphBody(graph quad.IRI) ([]quad.Quad, error) {
	var out []quad.Quad
	for {
		p.skipSpace()
		if p.peekByte() == '}' {
			p.pos++
			return out, nil
		}
		if p.pos >= len(p.src) {
			return nil, p.errf("unterminated graph block")
		}
		subj, err := p.term()
		if err != nil {
			return nil, err
		}
		q, err := p.restOfTriple(subj, quad.IRI(graph))
		if err != nil {
			return nil, err
		}
		out = append(out, p.takePendingListQuads(quad.IRI(graph))...)
		out = append(out, q)
		if err := p.expectDot(); err != nil {
			return nil, err
		}
	}
}

// restOfTriple parses ` predicate object` after a subject has already
// been consumed, attaching graph (nil for the default graph).
func (p *parser) restOfTriple(subj quad.Value, graph quad.Value) (quad.Quad, error) {
	pred, err := p.term()
	if err != nil {
		return quad.Quad{}, err
	}
	obj, err := p.term()
	if err != nil {
		return quad.Quad{}, err
	}
	return quad.Quad{Subject: subj, Predicate: pred, Object: obj, Graph: graph}, nil
}

// term parses one quad-position term: IRI, blank node, literal,
// prefixed name, RDF collection `( ... )`, or embedded triple
// `<< s p o >>`. Collections are materialized as a chain of
// rdf:first/rdf:rest quads rooted at a fresh blank node, appended to
// p.pendingListQuads and flushed by the caller's statement loop; the
// term returned is the list head.
func (p *parser) term() (quad.Value, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, p.errf("unexpected end of input, expected a term")
	}

	switch {
	case strings.HasPrefix(p.src[p.pos:], "<<"):
		return p.embeddedTriple()
	case p.src[p.pos] == '<':
		return p.iriLiteral()
	case strings.HasPrefix(p.src[p.pos:], "_:"):
		return p.bnode()
	case p.src[p.pos] == '"':
		return p.stringLiteral()
	case p.src[p.pos] == '(':
		return p.collection()
	default:
		return p.prefixedName()
	}
}

func (p *parser) embeddedTriple() (quad.Value, error) {
	p.pos += 2 // consume "<<"
	s, err := p.term()
	if err != nil {
		return nil, err
	}
	pr, err := p.term()
	if err != nil {
		return nil, err
	}
	o, err := p.term()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !strings.HasPrefix(p.src[p.pos:], ">>") {
		return nil, p.errf("expected >> to close embedded triple")
	}
	p.pos += 2
	return quad.Triple{Subject: s, Predicate: pr, Object: o}, nil
}

func (p *parser) iriLiteral() (quad.Value, error) {
	start := p.pos
	p.pos++ // consume '<'
	begin := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '>' {
		p.pos++
	}
	if p.pos >= len(p.src) {
		return nil, &ParseError{Offset: start, Detail: "unterminated IRI"}
	}
	body := p.src[begin:p.pos]
	p.pos++ // consume '>'
	return quad.IRI(body), nil
}

func (p *parser) bnode() (quad.Value, error) {
	start := p.pos
	p.pos += 2 // consume "_:"
	begin := p.pos
	for p.pos < len(p.src) && isNameChar(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == begin {
		return nil, &ParseError{Offset: start, Detail: "empty blank node label"}
	}
	return quad.BNode(p.src[begin:p.pos]), nil
}

func (p *parser) stringLiteral() (quad.Value, error) {
	start := p.pos
	p.pos++ // consume opening quote
	var sb strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '"' {
			p.pos++
			return p.afterStringLiteral(start, sb.String())
		}
		if c == '\\' {
			p.pos++
			if p.pos >= len(p.src) {
				return nil, &ParseError{Offset: start, Detail: "unterminated escape"}
			}
			switch p.src[p.pos] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				sb.WriteByte(p.src[p.pos])
			}
			p.pos++
			continue
		}
		sb.WriteByte(c)
		p.pos++
	}
	return nil, &ParseError{Offset: start, Detail: "unterminated string literal"}
}

// afterStringLiteral handles an optional ^^<datatype> suffix, decoding
// per §6's two supported XSD datatypes; anything else is a hard
// failure (§9's open question: no quiet skipping).
func (p *parser) afterStringLiteral(start int, text string) (quad.Value, error) {
	if strings.HasPrefix(p.src[p.pos:], "^^") {
		p.pos += 2
		dt, err := p.term()
		if err != nil {
			return nil, err
		}
		dtIRI, ok := dt.(quad.IRI)
		if !ok {
			return nil, &ParseError{Offset: start, Detail: "datatype must be an IRI"}
		}
		lit, err := quad.LiteralFromXSD(text, dtIRI)
		if err != nil {
			return nil, &ParseError{Offset: start, Detail: err.Error()}
		}
		return lit, nil
	}
	return quad.String(text), nil
}

func (p *parser) collection() (quad.Value, error) {
	p.pos++ // consume '('
	var items []quad.Value
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.errf("unterminated collection")
		}
		if p.src[p.pos] == ')' {
			p.pos++
			break
		}
		item, err := p.term()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	head := p.materializeCollection(items)
	return head, nil
}

// materializeCollection appends synthetic rdf:first/rdf:rest quads to
// p.pendingListQuads and returns the list head (rdf:nil for an empty
// list). The enclosing graph is attached by the caller once the full
// statement's graph context is known.
func (p *parser) materializeCollection(items []quad.Value) quad.Value {
	if len(items) == 0 {
		return quad.RDFNil
	}
	heads := make([]quad.BNode, len(items))
	for i := range items {
		p.anonSeq++
		heads[i] = quad.BNode(fmt.Sprintf("list%d", p.anonSeq))
	}
	for i, item := range items {
		rest := quad.Value(quad.RDFNil)
		if i+1 < len(heads) {
			rest = heads[i+1]
		}
		p.pendingListQuads = append(p.pendingListQuads,
			pendingListQuad{subject: heads[i], predicate: quad.RDFFirst, object: item},
			pendingListQuad{subject: heads[i], predicate: quad.RDFRest, object: rest},
		)
	}
	return heads[0]
}

type pendingListQuad struct {
	subject   quad.Value
	predicate quad.Value
	object    quad.Value
}

func (p *parser) prefixedName() (quad.Value, error) {
	start := p.pos
	begin := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != ':' && !isSpace(p.src[p.pos]) {
		p.pos++
	}
	if p.pos >= len(p.src) || p.src[p.pos] != ':' {
		return nil, &ParseError{Offset: start, Detail: "expected a prefixed name"}
	}
	prefix := p.src[begin:p.pos]
	p.pos++ // consume ':'
	localBegin := p.pos
	for p.pos < len(p.src) && isNameChar(p.src[p.pos]) {
		p.pos++
	}
	local := p.src[localBegin:p.pos]
	ns, ok := p.prefix[prefix]
	if !ok {
		return nil, &ParseError{Offset: start, Detail: fmt.Sprintf("undeclared prefix %q", prefix)}
	}
	return quad.IRI(ns + local), nil
}

func (p *parser) prefixDirective() error {
	// Consumes "@prefix name: <iri> ."
	p.pos += len("@prefix")
	p.skipSpace()
	begin := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != ':' {
		p.pos++
	}
	name := p.src[begin:p.pos]
	p.pos++ // consume ':'
	p.skipSpace()
	iri, err := p.term()
	if err != nil {
		return err
	}
	iriVal, ok := iri.(quad.IRI)
	if !ok {
		return p.errf("@prefix value must be an IRI")
	}
	p.prefix[name] = string(iriVal)
	return p.expectDot()
}

func (p *parser) expectDot() error {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != '.' {
		return p.errf("expected '.'")
	}
	p.pos++
	return nil
}

func (p *parser) atPrefixKeyword() bool {
	return strings.HasPrefix(p.src[p.pos:], "@prefix")
}

func (p *parser) peekByte() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if isSpace(c) {
			p.pos++
			continue
		}
		if c == '#' {
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
			continue
		}
		break
	}
}

func (p *parser) errf(format string, args ...interface{}) error {
	return &ParseError{Offset: p.pos, Detail: fmt.Sprintf(format, args...)}
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

func isNameChar(c byte) bool {
	return c == '_' || c == '-' || c == '.' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

