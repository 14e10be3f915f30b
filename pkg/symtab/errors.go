package symtab

import "fmt"

// RedefinesPredefinedError is returned when a label declaration names one of
// the architecture's predefined symbols.
type RedefinesPredefinedError struct{ Name string }

func (e *RedefinesPredefinedError) Error() string {
	return fmt.Sprintf("label %q is a predefined symbol and cannot be redeclared", e.Name)
}

// DuplicateLabelError is returned when a label name is declared twice.
type DuplicateLabelError struct{ Name string }

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("label %q is declared more than once", e.Name)
}

// ProgramTooLargeError is returned when the real-instruction count would
// exceed 32768, the size of the Hack ROM address space.
type ProgramTooLargeError struct{}

func (e *ProgramTooLargeError) Error() string {
	return "program has too many instructions: ROM address space is [0, 32768)"
}

// TooManyVariablesError is returned when variable allocation would exceed
// address 32767, the top of the Hack RAM address space.
type TooManyVariablesError struct{}

func (e *TooManyVariablesError) Error() string {
	return "too many distinct variables: RAM address space is [0, 32768)"
}
