package semantics

import "github.com/lojban/nesy/internal/ast"

// defaultArity is used whenever a selbri's structural head cannot be
// resolved to a word.
const defaultArity = 2

// Arity walks the selbri DAG from id to find its structural head and
// returns that head's declared arity. Out-of-range ids are a structural
// anomaly handled defensively: they resolve to defaultArity rather than
// panicking.
func (c *Compiler) Arity(buf *ast.Buffer, id ast.SelbriID) int {
	word, ok := c.headWord(buf, id, 0)
	if !ok {
		return defaultArity
	}
	return c.dict.Arity(word)
}

// HeadName returns the bare head word of the selbri at id, or "entity" when
// no word-bearing head can be found.
func (c *Compiler) HeadName(buf *ast.Buffer, id ast.SelbriID) string {
	if word, ok := c.headWord(buf, id, 0); ok {
		return word
	}
	return "entity"
}

// maxSelbriDepth bounds the recursive descent so a malformed (cyclic) input
// cannot hang the compiler; the AST is assumed acyclic, but a crash is
// still the wrong failure mode for a structural anomaly.
const maxSelbriDepth = 1000

func (c *Compiler) headWord(buf *ast.Buffer, id ast.SelbriID, depth int) (string, bool) {
	if depth > maxSelbriDepth || !buf.SelbriInRange(id) {
		return "", false
	}
	node := buf.Selbri(id)
	switch node.Kind {
	case ast.SelbriRoot:
		return node.Word, true
	case ast.SelbriTanru:
		// The right-hand term is the structural head; the left modifies it.
		return c.headWord(buf, node.HeadID, depth+1)
	case ast.SelbriConverted:
		return c.headWord(buf, node.InnerID, depth+1)
	case ast.SelbriNegated:
		return c.headWord(buf, node.InnerID, depth+1)
	case ast.SelbriGrouped:
		return c.headWord(buf, node.InnerID, depth+1)
	case ast.SelbriWithArgs:
		return c.headWord(buf, node.CoreID, depth+1)
	case ast.SelbriConnected:
		// Both sides must agree on arity by construction; left is canonical.
		return c.headWord(buf, node.LeftID, depth+1)
	case ast.SelbriCompound:
		if len(node.Words) == 0 {
			return "", false
		}
		return node.Words[len(node.Words)-1], true
	default:
		return "", false
	}
}
