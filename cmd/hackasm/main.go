// Command hackasm is the CLI front-end for the Hack assembler: it owns
// argument parsing, file I/O, and the default-output-path convention. The
// assembler core itself (github.com/teramach/hackasm) knows nothing about
// files, flags, or exit codes.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/teris-io/cli"

	hackasm "github.com/teramach/hackasm"
	"github.com/teramach/hackasm/pkg/asm"
	"github.com/teramach/hackasm/pkg/hack"
	"github.com/teramach/hackasm/pkg/symtab"
)

var description = strings.ReplaceAll(`
The Hack Assembler translates a Hack assembly (.asm) program into Hack
machine code (.hack): a grammar-driven parser recognizes the instruction
stream, two passes resolve labels and variables into addresses, and a final
pass emits one 16-character binary line per instruction.
`, "\n", " ")

var hackAssembler = cli.New(description).
	WithArg(cli.NewArg("file", "The Hack assembly (.asm) source file to assemble")).
	WithOption(cli.NewOption("out", "Write the assembled program to PATH instead of the default location").
		WithChar('o').
		WithType(cli.TypeString)).
	WithOption(cli.NewOption("stdout", "Write the assembled program to standard output").
		WithType(cli.TypeBool)).
	WithAction(Handler)

// Handler takes a positional source path, an optional -o/--out PATH, and
// an optional --stdout flag. With neither flag, a ".asm" source is written
// next to itself with a ".hack" extension; anything else goes to standard
// output.
func Handler(args []string, options map[string]string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "error: expected exactly one source file")
		return 1
	}
	source := args[0]

	in, err := os.Open(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, diagnose(&hackasm.IOError{Op: "opening source", Err: err}))
		return 1
	}
	defer in.Close()

	out, closeOut, err := resolveOutput(source, options)
	if err != nil {
		fmt.Fprintln(os.Stderr, diagnose(err))
		return 1
	}
	if closeOut != nil {
		defer closeOut.Close()
	}

	if err := hackasm.Assemble(in, out); err != nil {
		fmt.Fprintln(os.Stderr, diagnose(err))
		return 1
	}
	return 0
}

// resolveOutput applies the output-destination rule: --stdout forces
// standard output, --out PATH picks an explicit path, otherwise a ".asm"
// source is rewritten to ".hack" next to itself and anything else falls
// back to standard output.
func resolveOutput(source string, options map[string]string) (io.Writer, *os.File, error) {
	if _, forced := options["stdout"]; forced {
		return os.Stdout, nil, nil
	}
	if path := options["out"]; path != "" {
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, &hackasm.IOError{Op: "opening output", Err: err}
		}
		return f, f, nil
	}
	if strings.HasSuffix(source, ".asm") {
		path := strings.TrimSuffix(source, ".asm") + ".hack"
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, &hackasm.IOError{Op: "opening output", Err: err}
		}
		return f, f, nil
	}
	return os.Stdout, nil, nil
}

// diagnose renders err as a single stderr line naming the error kind and
// the offending location or identifier where one is meaningful.
func diagnose(err error) string {
	var syn *asm.SyntaxError
	if errors.As(err, &syn) {
		return fmt.Sprintf("error: syntax error at line %d, column %d: expected %s", syn.Line, syn.Column, syn.Expected)
	}
	var redef *symtab.RedefinesPredefinedError
	if errors.As(err, &redef) {
		return fmt.Sprintf("error: label %q redefines a predefined symbol", redef.Name)
	}
	var dup *symtab.DuplicateLabelError
	if errors.As(err, &dup) {
		return fmt.Sprintf("error: label %q is declared more than once", dup.Name)
	}
	var tooLarge *symtab.ProgramTooLargeError
	if errors.As(err, &tooLarge) {
		return "error: program too large: exceeds 32768 instructions"
	}
	var tooManyVars *symtab.TooManyVariablesError
	if errors.As(err, &tooManyVars) {
		return "error: too many variables: exceeds the available RAM address space"
	}
	var badConst *hack.InvalidConstantError
	if errors.As(err, &badConst) {
		return fmt.Sprintf("error: invalid constant %q", badConst.Text)
	}
	var badComp *hack.InvalidComputationError
	if errors.As(err, &badComp) {
		return fmt.Sprintf("error: invalid computation %q", badComp.Text)
	}
	var badJump *hack.InvalidJumpError
	if errors.As(err, &badJump) {
		return fmt.Sprintf("error: invalid jump %q", badJump.Text)
	}
	var ioErr *hackasm.IOError
	if errors.As(err, &ioErr) {
		return fmt.Sprintf("error: %s: %v", ioErr.Op, ioErr.Err)
	}
	return fmt.Sprintf("error: %v", err)
}

func main() { os.Exit(hackAssembler.Run(os.Args, os.Stdout)) }
