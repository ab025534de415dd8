package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/gertjaap/genesis-go/config"
	"github.com/gertjaap/genesis-go/logging"
	"github.com/gertjaap/genesis-go/metrics"
	chainnet "github.com/gertjaap/genesis-go/net"
	"github.com/gertjaap/genesis-go/pow"
	"github.com/gertjaap/genesis-go/web"
	"github.com/gertjaap/genesis-go/work"
)

/* -------------------------------------------------------------------- */
/*  Helpers                                                             */
/* -------------------------------------------------------------------- */

func printBlockInfo(cfg config.Config, g *work.Genesis) {
	logging.Noticef("algorithm: %s", cfg.Algorithm)
	logging.Noticef("merkle hash: %s", g.MerkleRoot)
	logging.Noticef("pszTimestamp: %s", cfg.Timestamp)
	logging.Noticef("pubkey: %s", cfg.PubKey)
	logging.Noticef("time: %d", cfg.Time)
	logging.Noticef("bits: %s", cfg.Bits)
	logging.Debugf("input script: %s", hex.EncodeToString(g.Tx.TxIn[0].SignatureScript))
	logging.Debugf("target: %064x (difficulty %g)", g.Target, work.Difficulty(g.Target))

	if !work.IsCanonicalCompact(uint32(cfg.Bits)) {
		logging.Warnf("bits %s is not in canonical compact form; nodes will re-encode the target differently", cfg.Bits)
	}
}

func announceFoundGenesis(cfg config.Config, out *work.Outcome, elapsed time.Duration) {
	logging.Successf("genesis hash found!")
	logging.Successf("nonce: %d", out.Nonce)
	logging.Successf("genesis hash: %s", out.Hash)
	logging.Infof("%d hashes in %s", out.Hashes, work.FormatDuration(elapsed))

	block, err := out.Block()
	if err != nil {
		logging.Errorf("Could not assemble block: %v", err)
		return
	}
	blockHash := block.BlockHash().String()
	if blockHash != out.Hash {
		logging.Infof("block hash: %s", blockHash)
	}
	logging.Debugf("header: %s", out.HeaderHex())
	logging.Debugf("coinbase: %s", out.TransactionHex())

	if cfg.Network == "" {
		return
	}
	n, err := chainnet.Lookup(cfg.Network)
	if err != nil {
		return
	}
	if blockHash == n.GenesisHash {
		logging.Successf("matches the %s genesis block", n.Name)
	} else {
		logging.Infof("differs from the %s genesis block %s", n.Name, n.GenesisHash)
	}
}

func openLogFile(path string) *os.File {
	logFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		logging.Fatalf("MAIN: Unable to open log file %s: %v", path, err)
	}
	logging.SetLogFile(logFile)
	return logFile
}

/* -------------------------------------------------------------------- */
/*  main                                                                */
/* -------------------------------------------------------------------- */

func main() {
	defer logging.Sync()

	/* ----- configuration -------------------------------------------- */
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if flags.WroteHelp(err) {
			fmt.Println(err)
			return
		}
		logging.Fatalf("MAIN: %v", err)
	}

	level, _ := logging.ParseLogLevel(cfg.LogLevel)
	logging.SetLogLevel(level)
	if cfg.LogFile != "" {
		defer openLogFile(cfg.LogFile).Close()
	}

	/* ----- proof of work -------------------------------------------- */
	hasher, err := pow.Resolve(cfg.PowAlgorithm(), cfg.PowOptions())
	if err != nil {
		logging.Fatalf("MAIN: %v", err)
	}
	defer hasher.Close()

	g, err := work.Prepare(cfg.Params())
	if err != nil {
		logging.Fatalf("MAIN: %v", err)
	}
	printBlockInfo(cfg, g)

	/* ----- status page ---------------------------------------------- */
	started := time.Now()
	searchMetrics := metrics.NewSearch(cfg.Algorithm, cfg.Network, cfg.Nonce, started)
	if cfg.StatusListen != "" {
		srv, err := web.Serve(cfg.StatusListen, web.NewMux(searchMetrics))
		if err != nil {
			logging.Fatalf("MAIN: Unable to listen on %s: %v", cfg.StatusListen, err)
		}
		defer srv.Close()
	}

	/* ----- search ---------------------------------------------------- */
	monitor := work.NewHashrateMonitor([]work.ProgressReporter{work.ConsoleReporter{}, searchMetrics})

	type result struct {
		out *work.Outcome
		err error
	}
	done := make(chan result, 1)
	logging.Infof("Searching for genesis hash..")
	go func() {
		out, err := g.Mine(hasher, work.WithObserver(monitor))
		done <- result{out, err}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	select {
	case res := <-done:
		searchMetrics.ObserveResult(res.out, res.err, time.Now())
		if res.err != nil {
			if errors.Is(res.err, work.ErrNonceSpaceExhausted) {
				logging.Errorf("MAIN: %v; try another --time or --timestamp", res.err)
			} else {
				logging.Errorf("MAIN: %v", res.err)
			}
			logging.Sync()
			os.Exit(1)
		}
		announceFoundGenesis(cfg, res.out, time.Since(started))
	case <-shutdownChan:
		st := searchMetrics.Status()
		logging.Warnf("Shutdown signal received. Last checkpoint was nonce %d; restart with -n %d to resume.", st.Nonce, st.Nonce)
	}
}
