// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package descriptor implements standalone address output descriptors as
described by BIP-380 and BIP-385.

An address descriptor, addr(ADDR), wraps a single bech32, bech32m or base58
encoded address.  It is the way to describe an output when only its address is
known:

	addr(bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4)#uyjndxcw

The trailing eight characters after '#' are a checksum that protects against
transcription errors.  It is always written and is verified when present on
input.

# Scripts

Every descriptor yields a script pubkey.  Depending on the output type it also
yields:

  - an explicit script, the script revealed on spend.  Only pay-to-pubkey-hash
    and pay-to-witness-pubkey-hash outputs have one, since for script hash and
    taproot outputs the actual spending script is not part of the address.
  - a script code, the script committed to by the legacy and segwit v0
    signature hash algorithms.  Every output type except taproot has one.

Callers must check the returned errors, ErrNoExplicitScript and
ErrNoScriptCode, rather than assume a script exists.

# Networks

Addresses are decoded for the networks in DefaultNets unless the caller passes
specific networks.  Addresses are not validated again once a descriptor is
created; NewAddr trusts its argument.

# Errors

Errors returned by this package are of type descriptor.Error, which wrap an
ErrorKind and, where there is one, the error reported by the checksum,
expression or address decoder.  Use errors.Is to test for a specific kind.
*/
package descriptor
