// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogLevel = "info"
)

// config defines the configuration options for descaddr.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion    bool   `short:"V" long:"version" description:"Display version information and exit"`
	TestNet3       bool   `long:"testnet" description:"Only accept addresses for the test network"`
	RegressionTest bool   `long:"regtest" description:"Only accept addresses for the regression test network"`
	SigNet         bool   `long:"signet" description:"Only accept addresses for the signet test network"`
	SimNet         bool   `long:"simnet" description:"Only accept addresses for the simulation test network"`
	MainNet        bool   `long:"mainnet" description:"Only accept addresses for the main network"`
	ChecksumOnly   bool   `short:"c" long:"checksumonly" description:"Only print the descriptor with its checksum"`
	DebugLevel     string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile        string `long:"logfile" description:"Also write log output to this file, rotating it as it grows"`

	// nets are the networks addresses are decoded for.  It is empty when
	// no network was selected, which means any default network.
	nets     []*chaincfg.Params
	logLevel btclog.Level
}

// usage displays the general usage.
func usage(parser *flags.Parser, errorMessage string) {
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	fmt.Fprintln(os.Stderr, errorMessage)
	fmt.Fprintf(os.Stderr, "Usage:\n  %s [OPTIONS] <descriptor or address>\n\n",
		appName)
	parser.WriteHelp(os.Stderr)
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse CLI options and overwrite/add any specified options
//  3. Validate the selected network and debug level
func loadConfig(args []string) (*config, []string, error) {
	cfg := config{
		DebugLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version())
		os.Exit(0)
	}

	// Multiple networks can't be selected simultaneously.
	funcName := "loadConfig"
	selected := []struct {
		set    bool
		params *chaincfg.Params
	}{
		{cfg.MainNet, &chaincfg.MainNetParams},
		{cfg.TestNet3, &chaincfg.TestNet3Params},
		{cfg.RegressionTest, &chaincfg.RegressionNetParams},
		{cfg.SigNet, &chaincfg.SigNetParams},
		{cfg.SimNet, &chaincfg.SimNetParams},
	}
	for _, net := range selected {
		if net.set {
			cfg.nets = append(cfg.nets, net.params)
		}
	}
	if len(cfg.nets) > 1 {
		str := "%s: the mainnet, testnet, regtest, signet and simnet " +
			"params can't be used together -- choose one"
		err := fmt.Errorf(str, funcName)
		usage(parser, err.Error())
		return nil, nil, err
	}

	// Validate the debug level.
	level, ok := btclog.LevelFromString(cfg.DebugLevel)
	if !ok {
		str := "%s: the specified debug level [%v] is invalid"
		err := fmt.Errorf(str, funcName, cfg.DebugLevel)
		usage(parser, err.Error())
		return nil, nil, err
	}
	cfg.logLevel = level

	if len(remainingArgs) != 1 {
		str := "%s: exactly one descriptor or address must be specified"
		err := fmt.Errorf(str, funcName)
		usage(parser, err.Error())
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
