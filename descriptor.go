// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package descriptor

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/descriptor/checksum"
	"github.com/btcsuite/btcd/descriptor/expression"
	"github.com/davecgh/go-spew/spew"
)

// Descriptor is an output descriptor.
type Descriptor interface {
	// String returns the descriptor followed by its checksum.
	String() string

	// StringNoChecksum returns the descriptor without its checksum.
	StringNoChecksum() string

	// SanityCheck returns an error if the descriptor is not safe to use.
	SanityCheck() error

	// ScriptPubKey returns the output script of the descriptor.
	ScriptPubKey() []byte

	// ExplicitScript returns the script revealed when spending the output,
	// or ErrNoExplicitScript when it cannot be derived from the
	// descriptor.
	ExplicitScript() ([]byte, error)

	// ScriptCode returns the script used by the legacy and segwit v0
	// signature hash algorithms, or ErrNoScriptCode.
	ScriptCode() ([]byte, error)

	// SegwitVersion returns the witness version of the output and true,
	// or false when the output is not a witness program.
	SegwitVersion() (WitnessVersion, bool)

	// TranslatePk returns a copy of the descriptor with every key and key
	// hash replaced by the result of the translator.
	TranslatePk(t Translator) (Descriptor, error)
}

// parseTree verifies and strips the checksum of a descriptor, if it has one,
// and parses what is left into an expression tree.
func parseTree(s string) (*expression.Tree, error) {
	desc, err := checksum.VerifyAndStrip(s)
	if err != nil {
		if errors.Is(err, checksum.ErrChecksumMismatch) {
			return nil, wrapError(ErrChecksumMismatch,
				"bad descriptor checksum", err)
		}
		return nil, wrapError(ErrMalformedExpression,
			"malformed descriptor", err)
	}

	tree, err := expression.Parse(desc)
	if err != nil {
		return nil, wrapError(ErrMalformedExpression,
			"malformed descriptor", err)
	}

	log.Tracef("Parsed descriptor tree: %v", newLogClosure(func() string {
		return spew.Sdump(tree)
	}))
	return tree, nil
}

// Parse parses a descriptor with an optional checksum.  Addresses are decoded
// for one of the passed networks, or DefaultNets when none are passed.
//
// The supported top level descriptors are addr(ADDR) and raw(HEX).
func Parse(s string, nets ...*chaincfg.Params) (Descriptor, error) {
	tree, err := parseTree(s)
	if err != nil {
		return nil, err
	}

	switch tree.Name {
	case addrName:
		addr, err := AddrFromTree(tree, nets...)
		if err != nil {
			return nil, err
		}
		return addr, nil

	case rawName:
		raw, err := RawFromTree(tree)
		if err != nil {
			return nil, err
		}
		return raw, nil
	}

	str := fmt.Sprintf("%s(%d args) is not a supported descriptor",
		tree.Name, len(tree.Args))
	return nil, descError(ErrUnexpectedExpression, str)
}
