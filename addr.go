// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package descriptor

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/descriptor/checksum"
	"github.com/btcsuite/btcd/descriptor/expression"
)

// addrName is the name of the standalone address descriptor function.
const addrName = "addr"

// Addr is a standalone address descriptor, addr(ADDR), where ADDR is any
// bech32, bech32m or base58 encoded address.
//
// An Addr is immutable and may be used concurrently.
type Addr struct {
	address btcutil.Address
}

// Ensure Addr implements the Descriptor interface.
var _ Descriptor = (*Addr)(nil)

// NewAddr returns a descriptor for the passed address.  The address is assumed
// to be valid for its network.
//
// A *btcutil.AddressPubKey is stored as the pay-to-pubkey-hash address it
// encodes to.
func NewAddr(address btcutil.Address) *Addr {
	if pk, ok := address.(*btcutil.AddressPubKey); ok {
		address = pk.AddressPubKeyHash()
	}
	return &Addr{address: address}
}

// Address returns the address the descriptor pays to.
func (a *Addr) Address() btcutil.Address {
	return a.address
}

// Kind returns the output type of the address.
func (a *Addr) Kind() PayloadKind {
	return addressKind(a.address)
}

// SanityCheck always succeeds since the address was validated when it was
// decoded.
//
// This is part of the Descriptor interface implementation.
func (a *Addr) SanityCheck() error {
	return nil
}

// StringNoChecksum returns the descriptor without its checksum.
//
// This is part of the Descriptor interface implementation.
func (a *Addr) StringNoChecksum() string {
	return fmt.Sprintf("%s(%s)", addrName, a.address.EncodeAddress())
}

// MarshalText returns the descriptor followed by its checksum.
func (a *Addr) MarshalText() ([]byte, error) {
	desc, err := checksum.Append(a.StringNoChecksum())
	if err != nil {
		return nil, err
	}
	return []byte(desc), nil
}

// UnmarshalText parses a descriptor for any of the default networks into a.
func (a *Addr) UnmarshalText(text []byte) error {
	parsed, err := ParseAddr(string(text))
	if err != nil {
		return err
	}
	*a = *parsed
	return nil
}

// String returns the descriptor followed by its checksum.  The checksum is
// omitted in the unlikely case it cannot be computed, which needs an address
// encoding with characters outside the descriptor character set.  Callers
// that must detect that failure should use MarshalText, which returns it.
//
// This is part of the Descriptor interface implementation.
func (a *Addr) String() string {
	desc := a.StringNoChecksum()
	full, err := checksum.Append(desc)
	if err != nil {
		log.Errorf("Unable to compute checksum of %s: %v", desc, err)
		return desc
	}
	return full
}

// GoString returns the address wrapped by the descriptor along with its type.
func (a *Addr) GoString() string {
	return fmt.Sprintf("Addr(%T %s)", a.address, a.address.EncodeAddress())
}

// Equal returns whether both descriptors wrap the same address.  Two nil
// descriptors are equal.
func (a *Addr) Equal(other *Addr) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.address.EncodeAddress() == other.address.EncodeAddress()
}

// Compare orders descriptors by the encoding of their addresses, with nil
// sorting first.  The result is -1, 0 or 1 when a sorts before, the same as,
// or after other.
func (a *Addr) Compare(other *Addr) int {
	switch {
	case a == nil && other == nil:
		return 0
	case a == nil:
		return -1
	case other == nil:
		return 1
	}
	return strings.Compare(a.address.EncodeAddress(),
		other.address.EncodeAddress())
}

// Hash returns the double SHA-256 of the descriptor without its checksum.
// Equal descriptors have equal hashes, which makes it usable as a map key.
func (a *Addr) Hash() chainhash.Hash {
	return chainhash.DoubleHashH([]byte(a.StringNoChecksum()))
}

// ScriptPubKey returns the output script of the address.
//
// This is part of the Descriptor interface implementation.
func (a *Addr) ScriptPubKey() []byte {
	return addressScript(a.Kind(), a.address)
}

// ExplicitScript returns the script revealed when spending the output.  Only
// pay-to-pubkey-hash and pay-to-witness-pubkey-hash addresses have one,
// ErrNoExplicitScript is returned for all others.
//
// This is part of the Descriptor interface implementation.
func (a *Addr) ExplicitScript() ([]byte, error) {
	kind := a.Kind()
	return explicitScript(kind, addressScript(kind, a.address))
}

// ScriptCode returns the script used in signature hashes when spending the
// output.  ErrNoScriptCode is returned for taproot addresses.
//
// This is part of the Descriptor interface implementation.
func (a *Addr) ScriptCode() ([]byte, error) {
	kind := a.Kind()
	return scriptCode(kind, addressScript(kind, a.address))
}

// SegwitVersion returns the witness version of the address and true, or false
// if it is not a segwit address.
//
// This is part of the Descriptor interface implementation.
func (a *Addr) SegwitVersion() (WitnessVersion, bool) {
	return addressWitnessVersion(a.address)
}

// TranslatePk returns a copy of the descriptor.  An address carries no keys,
// so the translator is never called.
//
// This is part of the Descriptor interface implementation.
func (a *Addr) TranslatePk(_ Translator) (Descriptor, error) {
	return NewAddr(a.address), nil
}

// AddrFromTree creates an address descriptor from an expression tree of the
// form addr(ADDR).  The address is decoded for one of the passed networks, or
// DefaultNets when none are passed.
func AddrFromTree(tree *expression.Tree, nets ...*chaincfg.Params) (*Addr, error) {
	if tree.Name != addrName || len(tree.Args) != 1 ||
		!tree.Args[0].IsTerminal() {

		str := fmt.Sprintf("%s(%d args) while parsing %s descriptor",
			tree.Name, len(tree.Args), addrName)
		return nil, descError(ErrUnexpectedExpression, str)
	}

	arg := tree.Args[0].Name
	address, err := DecodeAddress(arg, nets...)
	if err != nil {
		str := fmt.Sprintf("invalid address %q", arg)
		return nil, wrapError(ErrInvalidAddress, str, err)
	}
	return NewAddr(address), nil
}

// ParseAddr parses an address descriptor with an optional checksum.  The
// address is decoded for one of the passed networks, or DefaultNets when none
// are passed.
func ParseAddr(s string, nets ...*chaincfg.Params) (*Addr, error) {
	tree, err := parseTree(s)
	if err != nil {
		return nil, err
	}
	return AddrFromTree(tree, nets...)
}
