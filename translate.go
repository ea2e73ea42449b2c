// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package descriptor

import (
	"fmt"
)

// Translator maps the keys and key hashes of a descriptor to new ones.  Tree
// walkers hand the same Translator to every descriptor, whether or not it
// carries keys.
type Translator interface {
	// TranslatePk returns the key that replaces pk.
	TranslatePk(pk any) (any, error)

	// TranslatePkh returns the key hash that replaces pkh.
	TranslatePkh(pkh any) (any, error)
}

// KeyTranslator is a Translator built from two typed functions.  Pk maps keys
// of type P to keys of type Q and Pkh maps key hashes of type PH to key hashes
// of type QH.
type KeyTranslator[P, Q, PH, QH any] struct {
	Pk  func(P) (Q, error)
	Pkh func(PH) (QH, error)
}

// Ensure KeyTranslator implements the Translator interface.
var _ Translator = KeyTranslator[string, string, string, string]{}

// TranslatePk calls t.Pk when pk is of type P.
//
// This is part of the Translator interface implementation.
func (t KeyTranslator[P, Q, PH, QH]) TranslatePk(pk any) (any, error) {
	p, ok := pk.(P)
	if !ok || t.Pk == nil {
		str := fmt.Sprintf("unable to translate key of type %T", pk)
		return nil, descError(ErrKeyType, str)
	}
	return t.Pk(p)
}

// TranslatePkh calls t.Pkh when pkh is of type PH.
//
// This is part of the Translator interface implementation.
func (t KeyTranslator[P, Q, PH, QH]) TranslatePkh(pkh any) (any, error) {
	h, ok := pkh.(PH)
	if !ok || t.Pkh == nil {
		str := fmt.Sprintf("unable to translate key hash of type %T",
			pkh)
		return nil, descError(ErrKeyType, str)
	}
	return t.Pkh(h)
}

// Translate returns a copy of d with its keys mapped through pk and its key
// hashes mapped through pkh.
func Translate[P, Q, PH, QH any](d Descriptor, pk func(P) (Q, error),
	pkh func(PH) (QH, error)) (Descriptor, error) {

	return d.TranslatePk(KeyTranslator[P, Q, PH, QH]{Pk: pk, Pkh: pkh})
}
