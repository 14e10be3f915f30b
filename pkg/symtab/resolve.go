package symtab

import "github.com/teramach/hackasm/pkg/asm"

const addressSpaceSize = 32768

// firstVariableAddress is where the variable allocator starts counting;
// addresses 0..15 are reserved for R0..R15 (and their SP/LCL/ARG/THIS/THAT
// aliases).
const firstVariableAddress = 16

// ResolveLabels is pass 1: it walks items once, counting real (A or C)
// instructions to track the ROM index, and records every label declaration
// at the ROM index of the next real instruction after it. It never advances
// past the first conflicting declaration.
func ResolveLabels(items []asm.Item, table Table) error {
	var rom uint16

	for _, it := range items {
		switch v := it.(type) {
		case asm.AInstruction, asm.CInstruction:
			if rom == addressSpaceSize {
				return &ProgramTooLargeError{}
			}
			rom++
		case asm.LabelDecl:
			if existing, ok := table[v.Name]; ok {
				if existing.Predefined {
					return &RedefinesPredefinedError{Name: v.Name}
				}
				return &DuplicateLabelError{Name: v.Name}
			}
			table[v.Name] = Entry{Address: rom, Predefined: false}
		case asm.EndOfInput:
			return nil
		}
	}
	return nil
}

// ResolveVariables is pass 2: it walks items again, assigning the next free
// RAM address (starting at 16) to every symbolic A-instruction operand not
// already in table — i.e. every identifier that is neither predefined nor a
// label. Addresses are assigned strictly in order of first occurrence.
func ResolveVariables(items []asm.Item, table Table) error {
	next := uint16(firstVariableAddress)

	for _, it := range items {
		a, ok := it.(asm.AInstruction)
		if !ok || !a.IsSymbol {
			continue
		}
		if _, exists := table[a.Operand]; exists {
			continue
		}
		if next == addressSpaceSize {
			return &TooManyVariablesError{}
		}
		table[a.Operand] = Entry{Address: next, Predefined: false}
		next++
	}
	return nil
}
