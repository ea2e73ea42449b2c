// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/btcsuite/btcd/descriptor"
	"github.com/btcsuite/btcd/txscript"
)

// kinded is implemented by descriptors that classify their output.
type kinded interface {
	Kind() descriptor.PayloadKind
}

// resolve parses the passed argument as a descriptor.  A bare address is
// wrapped into an address descriptor.
func resolve(arg string, cfg *config) (descriptor.Descriptor, error) {
	desc, err := descriptor.Parse(arg, cfg.nets...)
	if err == nil {
		return desc, nil
	}
	if strings.ContainsAny(arg, "()#") {
		return nil, err
	}

	log.Debugf("Unable to parse %q as a descriptor, trying it as an "+
		"address: %v", arg, err)
	addr, addrErr := descriptor.DecodeAddress(arg, cfg.nets...)
	if addrErr != nil {
		return nil, fmt.Errorf("%q is neither a descriptor nor an "+
			"address: %v", arg, addrErr)
	}
	return descriptor.NewAddr(addr), nil
}

// writeReport writes the descriptor along with every script that can be
// derived from it.
func writeReport(w io.Writer, desc descriptor.Descriptor) error {
	if err := desc.SanityCheck(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Descriptor:      %s\n", desc)
	if k, ok := desc.(kinded); ok {
		fmt.Fprintf(w, "Type:            %v\n", k.Kind())
	}
	if version, ok := desc.SegwitVersion(); ok {
		fmt.Fprintf(w, "Witness version: %v\n", version)
	}

	spk := desc.ScriptPubKey()
	fmt.Fprintf(w, "Script pubkey:   %x\n", spk)
	if disasm, err := txscript.DisasmString(spk); err == nil {
		fmt.Fprintf(w, "Script asm:      %s\n", disasm)
	}

	if script, err := desc.ExplicitScript(); err != nil {
		fmt.Fprintf(w, "Explicit script: none (%v)\n", err)
	} else {
		fmt.Fprintf(w, "Explicit script: %x\n", script)
	}
	if script, err := desc.ScriptCode(); err != nil {
		fmt.Fprintf(w, "Script code:     none (%v)\n", err)
	} else {
		fmt.Fprintf(w, "Script code:     %x\n", script)
	}
	return nil
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	cfg, args, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	// Setup logging.
	setLogLevels(cfg.logLevel)
	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		defer logRotator.Close()
	}

	desc, err := resolve(args[0], cfg)
	if err != nil {
		log.Error(err)
		return err
	}

	if cfg.ChecksumOnly {
		fmt.Println(desc)
		return nil
	}
	return writeReport(os.Stdout, desc)
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
