package ntf

import (
	"fmt"
	"sort"

	"github.com/jcorbin/m3c/program"
)

// part is one piece of an instruction token: either fixed text or a literal
// placeholder.
type part struct {
	text string
	lit  program.LiteralType
}

func chars(s string) part                 { return part{text: s} }
func literal(lt program.LiteralType) part { return part{lit: lt} }

type token struct {
	id    program.InstructionID
	parts []part
}

var (
	labelLit = literal(program.LabelIdentifier)
	strLit   = literal(program.String)
	varLit   = literal(program.VariableIdentifier)
	valueLit = literal(program.VariableValue)
)

// tokens maps every instruction but Empty to its text form; it must stay
// sorted by id.
var tokens = [...]token{
	{program.Back, []part{chars(",")}},
	{program.Start, []part{chars("#S")}},
	{program.End, []part{chars("#E")}},
	{program.MoveW, []part{chars("^W")}},
	{program.MoveA, []part{chars("^A")}},
	{program.MoveS, []part{chars("^S")}},
	{program.MoveD, []part{chars("^D")}},
	{program.Digg, []part{chars("z")}},
	{program.LookW, []part{chars("w")}},
	{program.LookA, []part{chars("a")}},
	{program.LookS, []part{chars("s")}},
	{program.LookD, []part{chars("d")}},
	{program.MoveF, []part{chars("^F")}},
	{program.RotateCcw, []part{chars("CCW;")}},
	{program.RotateCw, []part{chars("CW;")}},
	{program.ActionBuild, []part{chars("b")}},
	{program.ActionGeo, []part{chars("g")}},
	{program.ActionRoad, []part{chars("r")}},
	{program.ActionHeal, []part{chars("h")}},
	{program.ActionQuadro, []part{chars("q")}},
	{program.ActionRandom, []part{chars("RAND;")}},
	{program.ActionBibika, []part{chars("BEEP;")}},
	{program.GoTo, []part{chars(">"), labelLit, chars("|")}},
	{program.GoSub, []part{chars(":>"), labelLit, chars(">")}},
	{program.GoSub1, []part{chars("->"), labelLit, chars(">")}},
	{program.Return, []part{chars("<|")}},
	{program.Return1, []part{chars("<-|")}},
	{program.CellWa, []part{chars("[WA]")}},
	{program.CellSd, []part{chars("[SD]")}},
	{program.CellW, []part{chars("[W]")}},
	{program.CellDw, []part{chars("[DW]")}},
	{program.CellA, []part{chars("[A]")}},
	{program.CellD, []part{chars("[D]")}},
	{program.CellAs, []part{chars("[AS]")}},
	{program.CellS, []part{chars("[S]")}},
	{program.BoolModeOr, []part{chars("OR")}},
	{program.BoolModeAnd, []part{chars("AND")}},
	{program.Label, []part{chars("|"), labelLit, chars(":")}},
	{program.CcNotEmpty, []part{chars("=n")}},
	{program.CcEmpty, []part{chars("=e")}},
	{program.CcGravity, []part{chars("=f")}},
	{program.CcCrystall, []part{chars("=c")}},
	{program.CcAlive, []part{chars("=a")}},
	{program.CcBolder, []part{chars("=b")}},
	{program.CcSand, []part{chars("=s")}},
	{program.CcRock, []part{chars("=k")}},
	{program.CcDead, []part{chars("=d")}},
	{program.CccRedRock, []part{chars("=K")}},
	{program.CccBlackRock, []part{chars("=B")}},
	{program.CcAcid, []part{chars("=A")}},
	{program.CccQuadro, []part{chars("=q")}},
	{program.CccRoad, []part{chars("=R")}},
	{program.CccRedBlock, []part{chars("=r")}},
	{program.CccYellowBlock, []part{chars("=y")}},
	{program.CccBox, []part{chars("=x")}},
	{program.CccOpor, []part{chars("=o")}},
	{program.CccGreenBlock, []part{chars("=g")}},
	{program.VarMore, []part{chars("("), varLit, chars(">"), valueLit, chars(")")}},
	{program.VarLess, []part{chars("("), varLit, chars("<"), valueLit, chars(")")}},
	{program.VarEqual, []part{chars("("), varLit, chars("="), valueLit, chars(")")}},
	{program.CellWw, []part{chars("[w]")}},
	{program.CellAa, []part{chars("[a]")}},
	{program.CellSs, []part{chars("[s]")}},
	{program.CellDd, []part{chars("[d]")}},
	{program.CellF, []part{chars("[F]")}},
	{program.CellFf, []part{chars("[f]")}},
	{program.GoSubF, []part{chars("=>"), labelLit, chars(">")}},
	{program.ReturnF, []part{chars("<=|")}},
	{program.IfNotGoTo, []part{chars("?"), labelLit, chars("<")}},
	{program.IfGoTo, []part{chars("!?"), labelLit, chars("<")}},
	{program.StdDigg, []part{chars("DIGG;")}},
	{program.StdBuild, []part{chars("BUILD;")}},
	{program.StdHeal, []part{chars("HEAL;")}},
	{program.ProgFlip, []part{chars("FLIP;")}},
	{program.StdMine, []part{chars("MINE;")}},
	{program.CcGun, []part{chars("=G")}},
	{program.FillGun, []part{chars("FILL;")}},
	{program.CbHp, []part{chars("=hp-")}},
	{program.CbHp50, []part{chars("=hp50")}},
	{program.CellRightHand, []part{chars("[r]")}},
	{program.CellLeftHand, []part{chars("[l]")}},
	{program.ModeAutodiggOn, []part{chars("AUT+")}},
	{program.ModeAutodiggOff, []part{chars("AUT-")}},
	{program.ModeAgrOn, []part{chars("AGR+")}},
	{program.ModeAgrOff, []part{chars("AGR-")}},
	{program.ActionB1, []part{chars("B1;")}},
	{program.ActionB3, []part{chars("B2;")}}, // the client swaps B2 and B3
	{program.ActionB2, []part{chars("B3;")}},
	{program.ActionWb, []part{chars("VB;")}},
	{program.OnResp, []part{chars("#R"), labelLit, chars("<")}},
	{program.ActionGeopack, []part{chars("GEO;")}},
	{program.ActionZm, []part{chars("ZZ;")}},
	{program.ActionC190, []part{chars("C190;")}},
	{program.ActionPoly, []part{chars("POLY;")}},
	{program.ActionUp, []part{chars("UP;")}},
	{program.ActionCraft, []part{chars("CRAFT;")}},
	{program.ActionNano, []part{chars("NANO;")}},
	{program.ActionRembot, []part{chars("REM;")}},
	{program.InvDirW, []part{chars("iw")}},
	{program.InvDirA, []part{chars("ia")}},
	{program.InvDirS, []part{chars("is")}},
	{program.InvDirD, []part{chars("id")}},
	{program.HandModeOn, []part{chars("Hand+")}},
	{program.HandModeOff, []part{chars("Hand-")}},
	{program.DebugBreak, []part{chars("!{"), strLit, chars("}")}},
	{program.DebugSet, []part{chars("{"), strLit, chars("}")}},
}

// tokenParts binary searches the token table.
func tokenParts(id program.InstructionID) ([]part, bool) {
	i := sort.Search(len(tokens), func(i int) bool { return tokens[i].id >= id })
	if i < len(tokens) && tokens[i].id == id {
		return tokens[i].parts, true
	}
	return nil, false
}

// directive is a position command; it places no instruction.
type directive uint8

const (
	oneStep directive = iota + 1
	threeSteps
	nextRow
	nextPage
)

var directiveChars = [...]rune{
	oneStep:    ' ',
	threeSteps: '_',
	nextRow:    '\n',
	nextPage:   '~',
}

func (dir directive) String() string {
	switch dir {
	case oneStep:
		return "one step"
	case threeSteps:
		return "three steps"
	case nextRow:
		return "next row"
	case nextPage:
		return "next page"
	}
	return fmt.Sprintf("directive(%d)", uint8(dir))
}

func (dir directive) move(pos *program.Position) error {
	switch dir {
	case oneStep:
		return pos.MoveForward()
	case threeSteps:
		return pos.MoveThreeStepsForward()
	case nextRow:
		return pos.MoveToNextRow()
	case nextPage:
		return pos.MoveToNextPage()
	}
	panic(fmt.Sprintf("invalid %v", dir))
}

type nodeKind uint8

const (
	unsetNode nodeKind = iota
	commandNode
	idNode
	charsNode
	literalNode
)

// node is a decode trie node. Command and id nodes are leaves; chars nodes
// branch on the next rune; literal nodes scan a literal then continue at next.
type node struct {
	kind  nodeKind
	dir   directive
	id    program.InstructionID
	edges []edge
	lit   program.LiteralType
	next  *node
}

type edge struct {
	r  rune
	to *node
}

// child returns the node reached by r, or nil.
func (nd *node) child(r rune) *node {
	i := sort.Search(len(nd.edges), func(i int) bool { return nd.edges[i].r >= r })
	if i < len(nd.edges) && nd.edges[i].r == r {
		return nd.edges[i].to
	}
	return nil
}

func (nd *node) addChild(r rune) (child *node, added bool) {
	i := sort.Search(len(nd.edges), func(i int) bool { return nd.edges[i].r >= r })
	if i < len(nd.edges) && nd.edges[i].r == r {
		return nd.edges[i].to, false
	}
	child = &node{}
	nd.edges = append(nd.edges, edge{})
	copy(nd.edges[i+1:], nd.edges[i:])
	nd.edges[i] = edge{r, child}
	return child, true
}

type trieConflictError struct {
	id     program.InstructionID
	at     string
	reason string
}

func (err trieConflictError) Error() string {
	return fmt.Sprintf("ntf token for %v conflicts at %q: %v", err.id, err.at, err.reason)
}

// buildTrie builds the decode trie: one root branching on directives and the
// first character of every token.
func buildTrie() *node {
	root := &node{kind: charsNode}
	for dir := oneStep; dir <= nextPage; dir++ {
		child, _ := root.addChild(directiveChars[dir])
		child.kind, child.dir = commandNode, dir
	}
	for _, tok := range tokens {
		if err := root.insert(tok); err != nil {
			panic(err)
		}
	}
	return root
}

func (nd *node) insert(tok token) error {
	var at []rune
	cur := nd
	for pi, p := range tok.parts {
		lastPart := pi == len(tok.parts)-1
		if p.lit != 0 {
			if lastPart {
				return trieConflictError{tok.id, string(at), "token ends in a literal"}
			}
			switch cur.kind {
			case unsetNode:
				cur.kind, cur.lit, cur.next = literalNode, p.lit, &node{}
			case literalNode:
				if cur.lit != p.lit {
					return trieConflictError{tok.id, string(at), "literal type mismatch"}
				}
			default:
				return trieConflictError{tok.id, string(at), "literal shares a prefix with fixed text"}
			}
			at = append(at, '$')
			cur = cur.next
			continue
		}
		for ri, r := range []rune(p.text) {
			at = append(at, r)
			switch cur.kind {
			case unsetNode:
				cur.kind = charsNode
			case charsNode:
			default:
				return trieConflictError{tok.id, string(at), "extends a complete token"}
			}
			child, added := cur.addChild(r)
			if lastPart && ri == len(p.text)-1 {
				if !added {
					return trieConflictError{tok.id, string(at), "prefixes or duplicates another token"}
				}
				child.kind, child.id = idNode, tok.id
			}
			cur = child
		}
	}
	return nil
}

var root = buildTrie()

func init() {
	for i := 1; i < len(tokens); i++ {
		if tokens[i-1].id >= tokens[i].id {
			panic(fmt.Sprintf("ntf token table unsorted at %v", tokens[i].id))
		}
	}
}
