// Package dump encodes a token stream or an AST tree to a structured,
// machine-readable representation (JSON or canonical CBOR), for tooling
// that wants golden files or a diffable intermediate format rather than
// the printer's indented text tree.
package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/coreclang/corec/ast"
	"github.com/coreclang/corec/token"
)

// Format selects the wire encoding Encode produces.
type Format string

const (
	JSON Format = "json"
	CBOR Format = "cbor"
)

// Header stamps every dump with the source digest it was produced from
// (see package digest), so two dumps can be compared for provenance
// without re-hashing the original buffer.
type Header struct {
	SourceDigest string `json:"sourceDigest" cbor:"sourceDigest"`
	Tokens       []Token `json:"tokens,omitempty" cbor:"tokens,omitempty"`
	Tree         Node    `json:"tree,omitempty" cbor:"tree,omitempty"`
}

// Token is the wire shape of a token.Token: a position-and-text view
// that round-trips through JSON/CBOR without sharing the source buffer.
type Token struct {
	Kind   string `json:"kind" cbor:"kind"`
	Text   string `json:"text" cbor:"text"`
	Line   int    `json:"line" cbor:"line"`
	Column int    `json:"column" cbor:"column"`
	Offset int    `json:"offset" cbor:"offset"`
}

// Node is the wire shape of one ast.Node: its Go type name, its own
// fields flattened into Value (literal/name/operator text, as
// applicable), and its children in traversal order.
type Node struct {
	Type     string `json:"type" cbor:"type"`
	Value    string `json:"value,omitempty" cbor:"value,omitempty"`
	Children []Node `json:"children,omitempty" cbor:"children,omitempty"`
}

// Tokens converts a token slice to its wire shape.
func Tokens(toks []token.Token, digest string) Header {
	out := make([]Token, len(toks))
	for i, t := range toks {
		out[i] = Token{
			Kind:   t.Kind.String(),
			Text:   string(t.Text),
			Line:   t.Pos.Line,
			Column: t.Pos.Column,
			Offset: t.Pos.Offset,
		}
	}
	return Header{SourceDigest: digest, Tokens: out}
}

// Tree converts an AST rooted at root to its wire shape.
func Tree(root ast.Node, digest string) Header {
	return Header{SourceDigest: digest, Tree: buildNode(root)}
}

// Encode writes v (normally a Header from Tokens or Tree) to w in the
// requested format. CBOR uses canonical (deterministic, sorted-key)
// encoding so repeated dumps of identical input are byte-for-byte
// identical.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case CBOR:
		mode, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return fmt.Errorf("dump: building canonical CBOR encoder: %w", err)
		}
		data, err := mode.Marshal(v)
		if err != nil {
			return fmt.Errorf("dump: encoding CBOR: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("dump: unknown format %q", format)
	}
}
