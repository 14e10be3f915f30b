package asm

import (
	pc "github.com/prataprc/goparsec"
)

// ----------------------------------------------------------------------------
// Token grammar
//
// Line structure (where a statement begins and ends, comment stripping) is
// handled by Parser in parser.go; every lexical class below — identifiers,
// dest letters, comp mnemonics, jump mnemonics — is recognized here with
// goparsec combinators.

var g = pc.NewAST("hackasm", 0)

// pSymbol matches a Hack identifier: letters, digits, '_', '.', '$', ':',
// not starting with a digit.
var pSymbol = pc.Token(`[A-Za-z_.$:][0-9a-zA-Z_.$:]*`, "SYMBOL")

// pConstant matches the digits-only literal that can follow '@'.
var pConstant = pc.Token(`[0-9]+`, "CONSTANT")

// pLabelName is the identifier grammar for a `(name)` declaration: a
// constant is not a legal label, unlike an A-instruction operand.
var pLabelName = g.And("label-name", nil, pSymbol)

// pDestLetters matches a non-empty run of the destination letters. The
// grammar accepts any subset of {A, D, M} in any order, including
// duplicates; the encoder later collapses duplicates by membership rather
// than rejecting them.
var pDestLetters = g.And("dest", nil, pc.Token(`[ADM]+`, "DEST"))

// pComp is the closed set of 28 computation mnemonics. Longer/more specific
// alternatives are listed before their prefixes (e.g. "D+1" before "D")
// since ordered choice commits to the first alternative that matches.
var pComp = g.OrdChoice("comp", nil,
	pc.Atom("D&A", "D&A"), pc.Atom("D&M", "D&M"),
	pc.Atom("D|A", "D|A"), pc.Atom("D|M", "D|M"),
	pc.Atom("D+A", "D+A"), pc.Atom("D+M", "D+M"),
	pc.Atom("D-A", "D-A"), pc.Atom("D-M", "D-M"),
	pc.Atom("A-D", "A-D"), pc.Atom("M-D", "M-D"),
	pc.Atom("D+1", "D+1"), pc.Atom("A+1", "A+1"), pc.Atom("M+1", "M+1"),
	pc.Atom("D-1", "D-1"), pc.Atom("A-1", "A-1"), pc.Atom("M-1", "M-1"),
	pc.Atom("!D", "!D"), pc.Atom("!A", "!A"), pc.Atom("!M", "!M"),
	pc.Atom("-D", "-D"), pc.Atom("-A", "-A"), pc.Atom("-M", "-M"),
	pc.Atom("-1", "-1"),
	pc.Atom("0", "0"), pc.Atom("1", "1"),
	pc.Atom("D", "D"), pc.Atom("A", "A"), pc.Atom("M", "M"),
)

// pJump is the closed set of 7 jump mnemonics.
var pJump = g.OrdChoice("jump", nil,
	pc.Atom("JGT", "JGT"), pc.Atom("JEQ", "JEQ"), pc.Atom("JGE", "JGE"),
	pc.Atom("JLT", "JLT"), pc.Atom("JNE", "JNE"), pc.Atom("JLE", "JLE"),
	pc.Atom("JMP", "JMP"),
)

// matchAll runs a combinator against s and succeeds only if it consumes all
// of s, so a partial match (e.g. "JMX" matching a prefix of nothing) is
// rejected rather than silently accepted.
func matchAll(p pc.Parser, s string) (string, bool) {
	if s == "" {
		return "", false
	}
	root, _ := g.Parsewith(p, pc.NewScanner([]byte(s)))
	if root == nil {
		return "", false
	}
	// OrdChoice collapses to the matched leaf directly; And wraps its
	// child(ren), so fall back to the first child's value.
	v := root.GetValue()
	if v == "" && len(root.GetChildren()) > 0 {
		v = root.GetChildren()[0].GetValue()
	}
	if v != s {
		return "", false
	}
	return v, true
}
