package asm

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		in   string
		want []Item
	}{
		"IgnoresEmptyLines": {
			in:   "\n\n",
			want: []Item{EndOfInput{}},
		},
		"IgnoresCommentOnlyLines": {
			in:   "// a whole line comment",
			want: []Item{EndOfInput{}},
		},
		"IgnoresTrailingComments": {
			in: "@2 // loads the constant 2",
			want: []Item{
				AInstruction{Operand: "2", IsSymbol: false, Line: 1},
				EndOfInput{},
			},
		},
		"IgnoresLeadingSpaces": {
			in: "  @2",
			want: []Item{
				AInstruction{Operand: "2", IsSymbol: false, Line: 1},
				EndOfInput{},
			},
		},
		"IgnoresLeadingTabs": {
			in: "\tD=M",
			want: []Item{
				CInstruction{Dest: "D", Comp: "M", Jump: "", Line: 1},
				EndOfInput{},
			},
		},
		"ParsesPredefinedSymbol": {
			in: "@SCREEN",
			want: []Item{
				AInstruction{Operand: "SCREEN", IsSymbol: true, Line: 1},
				EndOfInput{},
			},
		},
		"ParsesUserDefinedSymbol": {
			in: "@_0.$:var",
			want: []Item{
				AInstruction{Operand: "_0.$:var", IsSymbol: true, Line: 1},
				EndOfInput{},
			},
		},
		"ParsesLabelDeclaration": {
			in: "(LOOP)",
			want: []Item{
				LabelDecl{Name: "LOOP", Line: 1},
				EndOfInput{},
			},
		},
		"ParsesCompAndJumpWithWhitespace": {
			in: "D ; JEQ",
			want: []Item{
				CInstruction{Dest: "", Comp: "D", Jump: "JEQ", Line: 1},
				EndOfInput{},
			},
		},
		"ParsesFullProgram": {
			in: `
// Computes R0 = 2 + 3
@2
D=A
@3
D=D+A
@0
M=D
`,
			want: []Item{
				AInstruction{Operand: "2", IsSymbol: false, Line: 3},
				CInstruction{Dest: "D", Comp: "A", Jump: "", Line: 4},
				AInstruction{Operand: "3", IsSymbol: false, Line: 5},
				CInstruction{Dest: "D", Comp: "D+A", Jump: "", Line: 6},
				AInstruction{Operand: "0", IsSymbol: false, Line: 7},
				CInstruction{Dest: "M", Comp: "D", Jump: "", Line: 8},
				EndOfInput{},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := NewParser(strings.NewReader(tc.in)).Parse()
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.in, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := map[string]string{
		"RejectBareAt":                 "@",
		"RejectNegativeConstant":       "@-2",
		"RejectFloatConstant":          "@3.14",
		"RejectSymbolWithLeadingDigit": "@2var",
		"RejectSymbolWithIllegalChar":  "@var#",
		"RejectEmptyLabel":             "()",
		"RejectUnterminatedLabel":      "(LOOP",
		"RejectLabelWithIllegalChar":   "(LOOP-END)",
		"RejectUnknownComp":            "D=FOO",
		"RejectUnknownJump":            "D;JFOO",
		"RejectDestWithNonADM":         "X=D",
		"RejectEmptyDest":              "=D",
		"RejectEmptyComp":              "D=",
	}

	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewParser(strings.NewReader(in)).Parse()
			if err == nil {
				t.Fatalf("Parse(%q) expected a syntax error, got nil", in)
			}
			var syn *SyntaxError
			if !isSyntaxError(err, &syn) {
				t.Fatalf("Parse(%q) expected a *SyntaxError, got %T: %v", in, err, err)
			}
		})
	}
}

func isSyntaxError(err error, target **SyntaxError) bool {
	se, ok := err.(*SyntaxError)
	if ok {
		*target = se
	}
	return ok
}
