// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package descriptor

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
)

// PayloadKind classifies the output type a descriptor pays to.
type PayloadKind uint8

// These constants define the known payload kinds.
const (
	// PayloadNonStandard is any output that is not one of the other
	// kinds.  Only raw() descriptors and addresses of foreign
	// btcutil.Address implementations have it.
	PayloadNonStandard PayloadKind = iota

	// PayloadPubKeyHash is a legacy pay-to-pubkey-hash output.
	PayloadPubKeyHash

	// PayloadScriptHash is a legacy pay-to-script-hash output.
	PayloadScriptHash

	// PayloadWitnessPubKeyHash is a segwit v0 pay-to-witness-pubkey-hash
	// output.
	PayloadWitnessPubKeyHash

	// PayloadWitnessScriptHash is a segwit v0 pay-to-witness-script-hash
	// output.
	PayloadWitnessScriptHash

	// PayloadTaproot is a segwit v1 pay-to-taproot output.
	PayloadTaproot

	// PayloadWitnessUnknown is a witness program of a version or length that
	// has no defined meaning yet.
	PayloadWitnessUnknown
)

// Map of payload kinds back to their constant names for pretty printing.
var payloadKindStrings = map[PayloadKind]string{
	PayloadNonStandard:       "PayloadNonStandard",
	PayloadPubKeyHash:        "PayloadPubKeyHash",
	PayloadScriptHash:        "PayloadScriptHash",
	PayloadWitnessPubKeyHash: "PayloadWitnessPubKeyHash",
	PayloadWitnessScriptHash: "PayloadWitnessScriptHash",
	PayloadTaproot:           "PayloadTaproot",
	PayloadWitnessUnknown:    "PayloadWitnessUnknown",
}

// String returns the PayloadKind as a human-readable name.
func (k PayloadKind) String() string {
	if s := payloadKindStrings[k]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown PayloadKind (%d)", uint8(k))
}

// WitnessVersion is the version of a segwit output.
type WitnessVersion byte

const (
	// WitnessV0 is the version of P2WPKH and P2WSH outputs.
	WitnessV0 WitnessVersion = 0

	// WitnessV1 is the version of taproot outputs.
	WitnessV1 WitnessVersion = 1

	// maxWitnessVersion is the highest version a witness program may
	// have.
	maxWitnessVersion WitnessVersion = 16
)

// String returns the version in the form v0, v1 and so on.
func (v WitnessVersion) String() string {
	return fmt.Sprintf("v%d", byte(v))
}

// opcode returns the small integer opcode that pushes the version in a
// witness program.
func (v WitnessVersion) opcode() byte {
	if v == WitnessV0 {
		return txscript.OP_0
	}
	return txscript.OP_1 + byte(v) - 1
}

// addressKind classifies an address.
func addressKind(addr btcutil.Address) PayloadKind {
	switch addr.(type) {
	case *btcutil.AddressPubKeyHash:
		return PayloadPubKeyHash
	case *btcutil.AddressScriptHash:
		return PayloadScriptHash
	case *btcutil.AddressWitnessPubKeyHash:
		return PayloadWitnessPubKeyHash
	case *btcutil.AddressWitnessScriptHash:
		return PayloadWitnessScriptHash
	case *btcutil.AddressTaproot:
		return PayloadTaproot
	case *AddressWitnessProgram:
		return PayloadWitnessUnknown
	default:
		return PayloadNonStandard
	}
}

// scriptKind classifies a script pubkey.
func scriptKind(script []byte) PayloadKind {
	switch txscript.GetScriptClass(script) {
	case txscript.PubKeyHashTy:
		return PayloadPubKeyHash
	case txscript.ScriptHashTy:
		return PayloadScriptHash
	case txscript.WitnessV0PubKeyHashTy:
		return PayloadWitnessPubKeyHash
	case txscript.WitnessV0ScriptHashTy:
		return PayloadWitnessScriptHash
	case txscript.WitnessV1TaprootTy:
		return PayloadTaproot
	}
	if txscript.IsWitnessProgram(script) {
		return PayloadWitnessUnknown
	}
	return PayloadNonStandard
}

// payToPubKeyHashScript creates a script to pay to a 20-byte public key hash.
func payToPubKeyHashScript(pubKeyHash []byte) []byte {
	// Pushes are a fixed 20 bytes, so building cannot fail.
	script, _ := txscript.NewScriptBuilder().
		AddOp(txscript.OP_DUP).
		AddOp(txscript.OP_HASH160).
		AddData(pubKeyHash).
		AddOp(txscript.OP_EQUALVERIFY).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	return script
}

// payToScriptHashScript creates a script to pay to a 20-byte script hash.
func payToScriptHashScript(scriptHash []byte) []byte {
	script, _ := txscript.NewScriptBuilder().
		AddOp(txscript.OP_HASH160).
		AddData(scriptHash).
		AddOp(txscript.OP_EQUAL).
		Script()
	return script
}

// payToWitnessProgramScript creates a script to pay to a witness program of
// the given version.
func payToWitnessProgramScript(version WitnessVersion, program []byte) []byte {
	// Witness programs are at most 40 bytes.
	script, _ := txscript.NewScriptBuilder().
		AddOp(version.opcode()).
		AddData(program).
		Script()
	return script
}

// addressScript returns the script pubkey of an address of the given kind.
func addressScript(kind PayloadKind, addr btcutil.Address) []byte {
	switch kind {
	case PayloadPubKeyHash, PayloadScriptHash:
		hash := addr.ScriptAddress()
		if kind == PayloadPubKeyHash {
			return payToPubKeyHashScript(hash)
		}
		return payToScriptHashScript(hash)

	case PayloadWitnessPubKeyHash, PayloadWitnessScriptHash,
		PayloadTaproot, PayloadWitnessUnknown:

		version, _ := addressWitnessVersion(addr)
		return payToWitnessProgramScript(version, addr.ScriptAddress())
	}

	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		log.Warnf("Unable to create script for address type %T: %v",
			addr, err)
		return nil
	}
	return script
}

// addressWitnessVersion returns the witness version of an address, if it is a
// segwit address.
func addressWitnessVersion(addr btcutil.Address) (WitnessVersion, bool) {
	type witnessAddress interface {
		WitnessVersion() byte
	}
	if a, ok := addr.(witnessAddress); ok {
		return WitnessVersion(a.WitnessVersion()), true
	}
	return 0, false
}

// explicitScript returns the script that is revealed when spending an output
// of the given kind, which is only known for the pubkey hash kinds.
func explicitScript(kind PayloadKind, scriptPubKey []byte) ([]byte, error) {
	switch kind {
	case PayloadPubKeyHash, PayloadWitnessPubKeyHash:
		return scriptPubKey, nil
	}
	str := fmt.Sprintf("no explicit script for %v outputs", kind)
	return nil, descError(ErrNoExplicitScript, str)
}

// scriptCode returns the script code used by the legacy and segwit v0
// signature hash algorithms.  Taproot outputs have no script code.
func scriptCode(kind PayloadKind, scriptPubKey []byte) ([]byte, error) {
	if kind == PayloadTaproot {
		str := fmt.Sprintf("no script code for %v outputs", kind)
		return nil, descError(ErrNoScriptCode, str)
	}
	return scriptPubKey, nil
}
