// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package descriptor

import (
	"errors"
	"sort"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/descriptor/checksum"
	"github.com/btcsuite/btcd/descriptor/expression"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// addrTests houses the addresses the address descriptor tests are run
// against along with the scripts they are expected to produce.
var addrTests = []struct {
	name           string
	addr           string
	kind           PayloadKind
	scriptPubKey   string
	explicitScript bool
	scriptCode     bool
	segwit         bool
	version        WitnessVersion
}{{
	name:           "p2pkh",
	addr:           "1MirQ9bwyQcGVJPwKUgapu5ouK2E2Ey4gX",
	kind:           PayloadPubKeyHash,
	scriptPubKey:   "76a914e34cce70c86373273efcc54ce7d2a491bb4a0e8488ac",
	explicitScript: true,
	scriptCode:     true,
}, {
	name:         "p2sh",
	addr:         "3QJmV3qfvL9SuYo34YihAf3sRCW3qSinyC",
	kind:         PayloadScriptHash,
	scriptPubKey: "a914f815b036d9bbbce5e9f2a00abd1bf3dc91e9551087",
	scriptCode:   true,
}, {
	name:           "p2wpkh",
	addr:           "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
	kind:           PayloadWitnessPubKeyHash,
	scriptPubKey:   "0014751e76e8199196d454941c45d1b3a323f1433bd6",
	explicitScript: true,
	scriptCode:     true,
	segwit:         true,
	version:        WitnessV0,
}, {
	name: "p2wsh",
	addr: "bc1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3qccfmv3",
	kind: PayloadWitnessScriptHash,
	scriptPubKey: "00201863143c14c5166804bd19203356da136c985678cd4d27a1" +
		"b8c6329604903262",
	scriptCode: true,
	segwit:     true,
	version:    WitnessV0,
}, {
	name: "p2tr",
	addr: "bc1paardr2nczq0rx5rqpfwnvpzm497zvux64y0f7wjgcs7xuuuh2nnqwr2d5c",
	kind: PayloadTaproot,
	scriptPubKey: "5120ef46d1aa78101e3350600a5d36045ba97c2670daa91e9f3a" +
		"48c43c6e739754e6",
	segwit:  true,
	version: WitnessV1,
}, {
	name: "witness v1 non-taproot length",
	addr: "bc1pw508d6qejxtdg4y5r3zarvary0c5xw7kw508d6qejxtdg4y5r3zarvary0c5xw7kt5nd6y",
	kind: PayloadWitnessUnknown,
	scriptPubKey: "5128751e76e8199196d454941c45d1b3a323f1433bd6751e76e8" +
		"199196d454941c45d1b3a323f1433bd6",
	scriptCode: true,
	segwit:     true,
	version:    WitnessV1,
}, {
	name:         "witness v2",
	addr:         "bc1zw508d6qejxtdg4y5r3zarvaryvaxxpcs",
	kind:         PayloadWitnessUnknown,
	scriptPubKey: "5210751e76e8199196d454941c45d1b3a323",
	scriptCode:   true,
	segwit:       true,
	version:      2,
}, {
	name:         "witness v16",
	addr:         "bc1sw50qgdz25j",
	kind:         PayloadWitnessUnknown,
	scriptPubKey: "6002751e",
	scriptCode:   true,
	segwit:       true,
	version:      16,
}, {
	name:           "testnet p2wpkh",
	addr:           "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx",
	kind:           PayloadWitnessPubKeyHash,
	scriptPubKey:   "0014751e76e8199196d454941c45d1b3a323f1433bd6",
	explicitScript: true,
	scriptCode:     true,
	segwit:         true,
	version:        WitnessV0,
}}

// mustDecode decodes an address for the default networks and fails the test
// on error.
func mustDecode(t *testing.T, addr string) btcutil.Address {
	t.Helper()

	decoded, err := DecodeAddress(addr)
	require.NoError(t, err, addr)
	return decoded
}

// TestAddrScripts ensures the script pubkey, explicit script, script code and
// witness version of every output type follow the derivation policy.
func TestAddrScripts(t *testing.T) {
	t.Parallel()

	for _, test := range addrTests {
		desc := NewAddr(mustDecode(t, test.addr))
		want := hexToBytes(test.scriptPubKey)

		require.Equal(t, test.kind, desc.Kind(), test.name)
		require.Equal(t, want, desc.ScriptPubKey(), test.name)
		require.NoError(t, desc.SanityCheck(), test.name)

		explicit, err := desc.ExplicitScript()
		if test.explicitScript {
			require.NoError(t, err, test.name)
			require.Equal(t, want, explicit, test.name)
		} else {
			require.ErrorIs(t, err, ErrNoExplicitScript, test.name)
			require.Nil(t, explicit, test.name)
		}

		code, err := desc.ScriptCode()
		if test.scriptCode {
			require.NoError(t, err, test.name)
			require.Equal(t, want, code, test.name)
		} else {
			require.ErrorIs(t, err, ErrNoScriptCode, test.name)
			require.Nil(t, code, test.name)
		}

		version, ok := desc.SegwitVersion()
		require.Equal(t, test.segwit, ok, test.name)
		require.Equal(t, test.version, version, test.name)
	}
}

// TestAddrRoundTrip ensures serializing a descriptor and parsing it back
// results in an equal descriptor.
func TestAddrRoundTrip(t *testing.T) {
	t.Parallel()

	for _, test := range addrTests {
		desc := NewAddr(mustDecode(t, test.addr))
		str := desc.String()
		require.Equal(t, "addr("+test.addr+")", desc.StringNoChecksum())
		require.Len(t, str, len(desc.StringNoChecksum())+1+
			checksum.Length)

		parsed, err := ParseAddr(str)
		require.NoError(t, err, str)
		require.True(t, desc.Equal(parsed), spew.Sdump(desc, parsed))
		require.Zero(t, desc.Compare(parsed), test.name)
		require.Equal(t, desc.Hash(), parsed.Hash(), test.name)
		require.Equal(t, str, parsed.String(), test.name)

		// The checksum is optional.
		parsed, err = ParseAddr(desc.StringNoChecksum())
		require.NoError(t, err, test.name)
		require.True(t, desc.Equal(parsed), test.name)

		// Text marshalling matches the string form.
		text, err := desc.MarshalText()
		require.NoError(t, err, test.name)
		require.Equal(t, str, string(text), test.name)

		var unmarshalled Addr
		require.NoError(t, unmarshalled.UnmarshalText(text), test.name)
		require.True(t, desc.Equal(&unmarshalled), test.name)

		// Unwrapping and wrapping the address again is lossless.
		require.True(t, desc.Equal(NewAddr(desc.Address())), test.name)
	}
}

// TestAddrKnownStrings ensures descriptors serialize to known checksummed
// strings.
func TestAddrKnownStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		addr string
		want string
	}{{
		addr: "1MirQ9bwyQcGVJPwKUgapu5ouK2E2Ey4gX",
		want: "addr(1MirQ9bwyQcGVJPwKUgapu5ouK2E2Ey4gX)#qthp74nt",
	}, {
		addr: "3QJmV3qfvL9SuYo34YihAf3sRCW3qSinyC",
		want: "addr(3QJmV3qfvL9SuYo34YihAf3sRCW3qSinyC)#3jxxt94a",
	}, {
		addr: "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
		want: "addr(bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4)#uyjndxcw",
	}, {
		addr: "bc1paardr2nczq0rx5rqpfwnvpzm497zvux64y0f7wjgcs7xuuuh2nnqwr2d5c",
		want: "addr(bc1paardr2nczq0rx5rqpfwnvpzm497zvux64y0f7wjgcs7xuuuh" +
			"2nnqwr2d5c)#80v98reu",
	}, {
		addr: "bc1pw508d6qejxtdg4y5r3zarvary0c5xw7kw508d6qejxtdg4y5r3" +
			"zarvary0c5xw7kt5nd6y",
		want: "addr(bc1pw508d6qejxtdg4y5r3zarvary0c5xw7kw508d6qejxtdg4y5r3" +
			"zarvary0c5xw7kt5nd6y)#c7teukej",
	}}

	for _, test := range tests {
		desc := NewAddr(mustDecode(t, test.addr))
		require.Equal(t, test.want, desc.String())

		parsed, err := ParseAddr(test.want)
		require.NoError(t, err, test.want)
		require.True(t, desc.Equal(parsed), test.want)
	}
}

// TestAddrWitnessV1NonTaproot ensures a version 1 witness program that is not
// 32 bytes long parses as a generic witness program rather than taproot, so it
// has a script code but no explicit script.
func TestAddrWitnessV1NonTaproot(t *testing.T) {
	t.Parallel()

	desc, err := ParseAddr("addr(bc1pw508d6qejxtdg4y5r3zarvary0c5xw7kw508d6" +
		"qejxtdg4y5r3zarvary0c5xw7kt5nd6y)")
	require.NoError(t, err)
	require.IsType(t, &AddressWitnessProgram{}, desc.Address())
	require.Equal(t, PayloadWitnessUnknown, desc.Kind())

	version, ok := desc.SegwitVersion()
	require.True(t, ok)
	require.Equal(t, WitnessV1, version)

	_, err = desc.ExplicitScript()
	require.ErrorIs(t, err, ErrNoExplicitScript)

	code, err := desc.ScriptCode()
	require.NoError(t, err)
	require.Equal(t, desc.ScriptPubKey(), code)
}

// TestAddrChecksumSensitivity ensures changing any character of the checksum
// makes parsing fail with a checksum error.
func TestAddrChecksumSensitivity(t *testing.T) {
	t.Parallel()

	const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
	for _, test := range addrTests {
		str := NewAddr(mustDecode(t, test.addr)).String()
		start := len(str) - checksum.Length
		for i := start; i < len(str); i++ {
			for _, c := range []byte(charset) {
				if c == str[i] {
					continue
				}
				mutated := []byte(str)
				mutated[i] = c
				_, err := ParseAddr(string(mutated))
				if !errors.Is(err, ErrChecksumMismatch) {
					t.Fatalf("%s: mutated checksum %q was "+
						"not rejected: %v", test.name,
						mutated, err)
				}
			}
		}
	}
}

// TestAddrParseErrors ensures malformed address descriptors are rejected with
// the expected error kind.
func TestAddrParseErrors(t *testing.T) {
	t.Parallel()

	const (
		p2pkh  = "1MirQ9bwyQcGVJPwKUgapu5ouK2E2Ey4gX"
		p2wpkh = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
	)

	withChecksum := func(desc string) string {
		full, err := checksum.Append(desc)
		require.NoError(t, err)
		return full
	}

	tests := []struct {
		name string
		in   string
		want error
	}{{
		name: "two arguments",
		in:   withChecksum("addr(" + p2pkh + "," + p2wpkh + ")"),
		want: ErrUnexpectedExpression,
	}, {
		name: "wrong name",
		in:   withChecksum("notaddr(" + p2pkh + ")"),
		want: ErrUnexpectedExpression,
	}, {
		name: "bare address",
		in:   withChecksum(p2pkh),
		want: ErrUnexpectedExpression,
	}, {
		name: "nested argument",
		in:   withChecksum("addr(pkh(" + p2pkh + "))"),
		want: ErrUnexpectedExpression,
	}, {
		name: "invalid address",
		in:   withChecksum("addr(1MirQ9bwyQcGVJPwKUgapu5ouK2E2Ey4gY)"),
		want: ErrInvalidAddress,
	}, {
		name: "bad checksum",
		in:   "addr(" + p2pkh + ")#qthp74na",
		want: ErrChecksumMismatch,
	}, {
		name: "empty checksum",
		in:   "addr(" + p2pkh + ")#",
		want: ErrChecksumMismatch,
	}, {
		name: "unbalanced",
		in:   "addr(" + p2pkh,
		want: ErrMalformedExpression,
	}, {
		name: "invalid character",
		in:   "addr(" + p2pkh + "\n)",
		want: ErrMalformedExpression,
	}}

	for _, test := range tests {
		desc, err := ParseAddr(test.in)
		require.ErrorIs(t, err, test.want, test.name)
		require.Nil(t, desc, test.name)
	}

	// The error reported by the tree validation carries the name and
	// number of arguments that were seen.
	_, err := ParseAddr("notaddr(" + p2pkh + "," + p2wpkh + ")")
	var descErr Error
	require.ErrorAs(t, err, &descErr)
	require.Equal(t, "notaddr(2 args) while parsing addr descriptor",
		descErr.Description)
}

// TestAddrInvalidAddressCause ensures the error from the address decoder is
// reachable from the error returned when parsing.
func TestAddrInvalidAddressCause(t *testing.T) {
	t.Parallel()

	_, err := ParseAddr("addr(tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx)",
		&chaincfg.MainNetParams)
	require.ErrorIs(t, err, ErrInvalidAddress)

	var descErr Error
	require.ErrorAs(t, err, &descErr)
	require.Error(t, descErr.Cause)
	require.Contains(t, err.Error(), descErr.Cause.Error())

	// The same address is fine for testnet.
	desc, err := ParseAddr("addr(tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx)",
		&chaincfg.TestNet3Params)
	require.NoError(t, err)
	require.True(t, desc.Address().IsForNet(&chaincfg.TestNet3Params))
}

// TestAddrFromTree ensures an already parsed expression tree is accepted.
func TestAddrFromTree(t *testing.T) {
	t.Parallel()

	tree, err := expression.Parse("addr(bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4)")
	require.NoError(t, err)

	desc, err := AddrFromTree(tree)
	require.NoError(t, err)
	require.Equal(t, PayloadWitnessPubKeyHash, desc.Kind())

	_, err = AddrFromTree(tree.Args[0])
	require.ErrorIs(t, err, ErrUnexpectedExpression)
}

// TestAddrOrdering ensures descriptors order and hash by their address so they
// can be sorted and used as map keys.
func TestAddrOrdering(t *testing.T) {
	t.Parallel()

	descs := make([]*Addr, 0, len(addrTests))
	byHash := make(map[chainhash.Hash]*Addr)
	for _, test := range addrTests {
		desc := NewAddr(mustDecode(t, test.addr))
		descs = append(descs, desc)
		byHash[desc.Hash()] = desc
	}
	require.Len(t, byHash, len(addrTests))

	sort.Slice(descs, func(i, j int) bool {
		return descs[i].Compare(descs[j]) < 0
	})
	for i := 1; i < len(descs); i++ {
		require.Equal(t, -1, descs[i-1].Compare(descs[i]))
		require.Equal(t, 1, descs[i].Compare(descs[i-1]))
		require.False(t, descs[i-1].Equal(descs[i]))
	}

	// Nil descriptors compare equal to each other and sort first.
	var nilAddr *Addr
	require.True(t, nilAddr.Equal(nil))
	require.False(t, nilAddr.Equal(descs[0]))
	require.False(t, descs[0].Equal(nil))
	require.Zero(t, nilAddr.Compare(nil))
	require.Equal(t, -1, nilAddr.Compare(descs[0]))
	require.Equal(t, 1, descs[0].Compare(nil))

	// A freshly parsed descriptor finds its entry.
	parsed, err := ParseAddr("addr(3QJmV3qfvL9SuYo34YihAf3sRCW3qSinyC)")
	require.NoError(t, err)
	require.True(t, parsed.Equal(byHash[parsed.Hash()]))
}

// TestAddrPubKey ensures a public key address is stored as the pay-to-pubkey-
// hash address it encodes to.
func TestAddrPubKey(t *testing.T) {
	t.Parallel()

	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	pkAddr, err := btcutil.NewAddressPubKey(
		priv.PubKey().SerializeCompressed(), &chaincfg.MainNetParams,
	)
	require.NoError(t, err)

	desc := NewAddr(pkAddr)
	require.IsType(t, &btcutil.AddressPubKeyHash{}, desc.Address())
	require.Equal(t, PayloadPubKeyHash, desc.Kind())

	parsed, err := ParseAddr(desc.String())
	require.NoError(t, err)
	require.True(t, desc.Equal(parsed))
}

// TestAddrGoString ensures the debug form names the address type.
func TestAddrGoString(t *testing.T) {
	t.Parallel()

	desc := NewAddr(mustDecode(t, "3QJmV3qfvL9SuYo34YihAf3sRCW3qSinyC"))
	require.Equal(t, "Addr(*btcutil.AddressScriptHash "+
		"3QJmV3qfvL9SuYo34YihAf3sRCW3qSinyC)", desc.GoString())
}

// unencodableAddress is an address whose encoding holds characters outside
// the descriptor character set.
type unencodableAddress struct{}

func (unencodableAddress) String() string                 { return "addré" }
func (unencodableAddress) EncodeAddress() string          { return "addré" }
func (unencodableAddress) ScriptAddress() []byte          { return nil }
func (unencodableAddress) IsForNet(*chaincfg.Params) bool { return true }

// TestAddrUncheckedString ensures String falls back to the form without a
// checksum when none can be computed while MarshalText reports the failure.
func TestAddrUncheckedString(t *testing.T) {
	t.Parallel()

	desc := NewAddr(unencodableAddress{})
	require.Equal(t, "addr(addré)", desc.String())

	text, err := desc.MarshalText()
	require.ErrorIs(t, err, checksum.ErrInvalidCharacter)
	require.Nil(t, text)
}
