// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package descriptor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/chaincfg"
)

const (
	// minWitnessProgramLen and maxWitnessProgramLen bound the size of a
	// witness program as defined by BIP-141.
	minWitnessProgramLen = 2
	maxWitnessProgramLen = 40
	taprootProgramLen    = 32
)

// DefaultNets are the networks an address is decoded against when the caller
// does not name any.  Earlier entries win when an address is valid for more
// than one network, as testnet and signet addresses are.
var DefaultNets = []*chaincfg.Params{
	&chaincfg.MainNetParams,
	&chaincfg.TestNet3Params,
	&chaincfg.RegressionNetParams,
	&chaincfg.SigNetParams,
	&chaincfg.SimNetParams,
}

// errNotWitnessProgram is returned by decodeWitnessProgram for strings it
// does not handle, so the btcutil error is reported instead.
var errNotWitnessProgram = errors.New("not a generic witness program")

// DecodeAddress decodes the string encoding of an address and returns the
// address if it is valid for one of the passed networks, or DefaultNets when
// none are passed.
//
// Witness programs of versions 2 through 16, which btcutil does not decode,
// are returned as *AddressWitnessProgram.  Hex encoded public keys, which
// btcutil.DecodeAddress accepts, are rejected since they are not addresses.
func DecodeAddress(addr string, nets ...*chaincfg.Params) (btcutil.Address, error) {
	if len(nets) == 0 {
		nets = DefaultNets
	}

	var decodeErr error
	for _, net := range nets {
		decoded, err := btcutil.DecodeAddress(addr, net)
		if err != nil {
			if decodeErr == nil {
				decodeErr = err
			}
			continue
		}
		if _, ok := decoded.(*btcutil.AddressPubKey); ok {
			return nil, fmt.Errorf("%s is a public key, not an "+
				"address", addr)
		}
		if !decoded.IsForNet(net) {
			continue
		}

		log.Debugf("Decoded address %s as %T for network %s", addr,
			decoded, net.Name)
		return decoded, nil
	}

	wp, err := decodeWitnessProgram(addr, nets)
	switch {
	case err == nil:
		log.Debugf("Decoded address %s as witness %v program", addr,
			WitnessVersion(wp.witnessVersion))
		return wp, nil

	case !errors.Is(err, errNotWitnessProgram):
		return nil, err

	case decodeErr != nil:
		return nil, decodeErr
	}

	return nil, fmt.Errorf("address %s is not valid for network(s) %s",
		addr, netNames(nets))
}

// netNames returns the comma separated names of the passed networks.
func netNames(nets []*chaincfg.Params) string {
	names := make([]string, 0, len(nets))
	for _, net := range nets {
		names = append(names, net.Name)
	}
	return strings.Join(names, ", ")
}

// AddressWitnessProgram is an Address for a pay-to-witness-program output
// with no defined meaning yet: witness versions 2 through 16, and version 1
// programs that are not 32 bytes long and therefore not taproot.  Such outputs
// are anyone-can-spend under today's consensus rules but are valid payment
// destinations, encoded with bech32m as described by BIP-350.
type AddressWitnessProgram struct {
	hrp            string
	witnessVersion byte
	witnessProgram []byte
}

// Ensure AddressWitnessProgram implements the btcutil.Address interface.
var _ btcutil.Address = (*AddressWitnessProgram)(nil)

// NewAddressWitnessProgram returns a new AddressWitnessProgram.
func NewAddressWitnessProgram(version byte, program []byte,
	net *chaincfg.Params) (*AddressWitnessProgram, error) {

	return newAddressWitnessProgram(net.Bech32HRPSegwit, version, program)
}

// newAddressWitnessProgram is an internal helper function to create an
// AddressWitnessProgram with a known human-readable part.
func newAddressWitnessProgram(hrp string, version byte,
	program []byte) (*AddressWitnessProgram, error) {

	if version == 0 || WitnessVersion(version) > maxWitnessVersion {
		return nil, fmt.Errorf("witness version %d is not a generic "+
			"witness version", version)
	}
	if len(program) < minWitnessProgramLen ||
		len(program) > maxWitnessProgramLen {

		return nil, fmt.Errorf("witness program must be between %d "+
			"and %d bytes, got %d", minWitnessProgramLen,
			maxWitnessProgramLen, len(program))
	}
	if WitnessVersion(version) == WitnessV1 &&
		len(program) == taprootProgramLen {

		return nil, fmt.Errorf("witness version %d program of %d bytes "+
			"is a taproot output", version, len(program))
	}

	addr := &AddressWitnessProgram{
		hrp:            strings.ToLower(hrp),
		witnessVersion: version,
		witnessProgram: append([]byte(nil), program...),
	}
	if _, err := addr.encode(); err != nil {
		return nil, err
	}
	return addr, nil
}

// decodeWitnessProgram decodes a bech32m encoded witness program of version 1
// through 16 for one of the passed networks.  Version 1 programs of taproot
// length are left to btcutil.
func decodeWitnessProgram(addr string,
	nets []*chaincfg.Params) (*AddressWitnessProgram, error) {

	hrp, data, bechVersion, err := bech32.DecodeGeneric(addr)
	if err != nil || len(data) < 1 || data[0] == 0 {
		return nil, errNotWitnessProgram
	}

	version := data[0]
	if WitnessVersion(version) > maxWitnessVersion {
		return nil, fmt.Errorf("invalid witness version %d", version)
	}
	if bechVersion != bech32.VersionM {
		return nil, fmt.Errorf("witness version %d address %s must "+
			"be bech32m encoded", version, addr)
	}

	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return nil, err
	}

	for _, net := range nets {
		if hrp == net.Bech32HRPSegwit {
			return newAddressWitnessProgram(hrp, version, program)
		}
	}
	return nil, fmt.Errorf("address %s is not valid for network(s) %s",
		addr, netNames(nets))
}

// encode returns the bech32m string encoding of the address.
func (a *AddressWitnessProgram) encode() (string, error) {
	converted, err := bech32.ConvertBits(a.witnessProgram, 8, 5, true)
	if err != nil {
		return "", err
	}

	combined := make([]byte, len(converted)+1)
	combined[0] = a.witnessVersion
	copy(combined[1:], converted)
	return bech32.EncodeM(a.hrp, combined)
}

// EncodeAddress returns the bech32m string encoding of the address.
//
// This is part of the btcutil.Address interface implementation.
func (a *AddressWitnessProgram) EncodeAddress() string {
	str, err := a.encode()
	if err != nil {
		return ""
	}
	return str
}

// ScriptAddress returns the witness program.
//
// This is part of the btcutil.Address interface implementation.
func (a *AddressWitnessProgram) ScriptAddress() []byte {
	return a.witnessProgram
}

// IsForNet returns whether the address is associated with the passed network.
//
// This is part of the btcutil.Address interface implementation.
func (a *AddressWitnessProgram) IsForNet(net *chaincfg.Params) bool {
	return a.hrp == net.Bech32HRPSegwit
}

// String returns a human-readable string for the address.  This is
// equivalent to calling EncodeAddress.
//
// This is part of the btcutil.Address interface implementation.
func (a *AddressWitnessProgram) String() string {
	return a.EncodeAddress()
}

// Hrp returns the human-readable part of the address.
func (a *AddressWitnessProgram) Hrp() string {
	return a.hrp
}

// WitnessVersion returns the witness version of the address.
func (a *AddressWitnessProgram) WitnessVersion() byte {
	return a.witnessVersion
}

// WitnessProgram returns the witness program of the address.
func (a *AddressWitnessProgram) WitnessProgram() []byte {
	return a.witnessProgram
}
