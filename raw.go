// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package descriptor

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/descriptor/checksum"
	"github.com/btcsuite/btcd/descriptor/expression"
	"github.com/btcsuite/btcd/txscript"
)

// rawName is the name of the raw script descriptor function.
const rawName = "raw"

// maxScriptSize is the maximum allowed length of a raw script.
const maxScriptSize = 10000

// Raw is a raw script descriptor, raw(HEX), whose script pubkey is the hex
// encoded script itself.
type Raw struct {
	script []byte
}

// Ensure Raw implements the Descriptor interface.
var _ Descriptor = (*Raw)(nil)

// NewRaw returns a descriptor for a copy of the passed script.
func NewRaw(script []byte) *Raw {
	return &Raw{script: append([]byte(nil), script...)}
}

// Kind returns the output type of the script.
func (r *Raw) Kind() PayloadKind {
	return scriptKind(r.script)
}

// SanityCheck always succeeds.
//
// This is part of the Descriptor interface implementation.
func (r *Raw) SanityCheck() error {
	return nil
}

// StringNoChecksum returns the descriptor without its checksum.
//
// This is part of the Descriptor interface implementation.
func (r *Raw) StringNoChecksum() string {
	return fmt.Sprintf("%s(%x)", rawName, r.script)
}

// String returns the descriptor followed by its checksum.
//
// This is part of the Descriptor interface implementation.
func (r *Raw) String() string {
	// Hex digits are always in the descriptor character set.
	full, _ := checksum.Append(r.StringNoChecksum())
	return full
}

// GoString returns the disassembly of the script.
func (r *Raw) GoString() string {
	disasm, err := txscript.DisasmString(r.script)
	if err != nil {
		return fmt.Sprintf("Raw(%x)", r.script)
	}
	return fmt.Sprintf("Raw(%s)", disasm)
}

// Equal returns whether both descriptors have the same script.
func (r *Raw) Equal(other *Raw) bool {
	return bytes.Equal(r.script, other.script)
}

// ScriptPubKey returns the script.
//
// This is part of the Descriptor interface implementation.
func (r *Raw) ScriptPubKey() []byte {
	return append([]byte(nil), r.script...)
}

// ExplicitScript returns the script when it pays to a pubkey hash and
// ErrNoExplicitScript otherwise.
//
// This is part of the Descriptor interface implementation.
func (r *Raw) ExplicitScript() ([]byte, error) {
	return explicitScript(r.Kind(), r.ScriptPubKey())
}

// ScriptCode returns the script unless it is a taproot output, for which
// ErrNoScriptCode is returned.
//
// This is part of the Descriptor interface implementation.
func (r *Raw) ScriptCode() ([]byte, error) {
	return scriptCode(r.Kind(), r.ScriptPubKey())
}

// SegwitVersion returns the witness version of the script and true, or false
// if it is not a witness program.
//
// This is part of the Descriptor interface implementation.
func (r *Raw) SegwitVersion() (WitnessVersion, bool) {
	if !txscript.IsWitnessProgram(r.script) {
		return 0, false
	}
	version, _, err := txscript.ExtractWitnessProgramInfo(r.script)
	if err != nil {
		return 0, false
	}
	return WitnessVersion(version), true
}

// TranslatePk returns a copy of the descriptor.  A raw script carries no
// keys, so the translator is never called.
//
// This is part of the Descriptor interface implementation.
func (r *Raw) TranslatePk(_ Translator) (Descriptor, error) {
	return NewRaw(r.script), nil
}

// RawFromTree creates a raw script descriptor from an expression tree of the
// form raw(HEX).
func RawFromTree(tree *expression.Tree) (*Raw, error) {
	if tree.Name != rawName || len(tree.Args) != 1 ||
		!tree.Args[0].IsTerminal() {

		str := fmt.Sprintf("%s(%d args) while parsing %s descriptor",
			tree.Name, len(tree.Args), rawName)
		return nil, descError(ErrUnexpectedExpression, str)
	}

	arg := tree.Args[0].Name
	script, err := hex.DecodeString(arg)
	if err != nil {
		str := fmt.Sprintf("invalid script hex %q", arg)
		return nil, wrapError(ErrInvalidScript, str, err)
	}
	if len(script) > maxScriptSize {
		str := fmt.Sprintf("script size %d exceeds the maximum of %d",
			len(script), maxScriptSize)
		return nil, descError(ErrInvalidScript, str)
	}
	return &Raw{script: script}, nil
}

// ParseRaw parses a raw script descriptor with an optional checksum.
func ParseRaw(s string) (*Raw, error) {
	tree, err := parseTree(s)
	if err != nil {
		return nil, err
	}
	return RawFromTree(tree)
}
