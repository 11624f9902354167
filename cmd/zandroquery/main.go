// Command zandroquery discovers Zandronum game servers via the master
// server and prints a one-line summary of each. It exists to exercise
// MasterClient, FanOut and ServerClient together end to end; it has no
// filtering, persistence, or GUI — those are explicit non-goals of the
// core library it wraps.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	_ "github.com/zandronum/serverquery/internal/automaxprocs"
	"github.com/zandronum/serverquery/internal/logger"
	"github.com/zandronum/serverquery/lib/config"
	"github.com/zandronum/serverquery/lib/fanout"
	"github.com/zandronum/serverquery/lib/master"
	"github.com/zandronum/serverquery/lib/protocol"
	"github.com/zandronum/serverquery/lib/query"
)

var l = logger.NewFacility("zandroquery")

type cli struct {
	MasterHost    string `help:"Master server hostname" default:"master.zandronum.com"`
	MasterPort    uint16 `help:"Master server UDP port" default:"15300"`
	TimeoutMS     uint32 `help:"Default timeout for the master exchange, in ms" default:"5000"`
	QueryMS       uint32 `help:"Per-server query timeout, in ms" default:"3000"`
	MaxConcurrent uint32 `help:"Maximum concurrent server queries" default:"50"`
	Debug         bool   `help:"Enable verbose debug logging"`
}

func main() {
	var params cli
	kong.Parse(&params)

	if params.Debug {
		logger.Default.SetDebug("master", true)
		logger.Default.SetDebug("query", true)
	}

	cfg := config.Config{
		MasterHost:           params.MasterHost,
		MasterPort:           params.MasterPort,
		DefaultTimeoutMS:     params.TimeoutMS,
		ServerQueryTimeoutMS: params.QueryMS,
		MaxConcurrentQueries: params.MaxConcurrent,
	}.WithDefaults()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	endpoints, err := discover(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "master query failed:", err)
		os.Exit(1)
	}
	l.Infof("discovered %d servers", len(endpoints))

	records := queryAll(ctx, cfg, endpoints)
	for _, rec := range records {
		printRecord(rec)
	}
}

func discover(ctx context.Context, cfg config.Config) ([]protocol.ServerEndpoint, error) {
	mc := master.New(cfg, nil, nil)
	return mc.GetServerList(ctx)
}

func queryAll(ctx context.Context, cfg config.Config, endpoints []protocol.ServerEndpoint) []*protocol.ServerRecord {
	qc := query.New(cfg, nil)
	driver := fanout.New(qc, cfg.MaxConcurrentQueries, nil)
	return driver.QueryServers(ctx, endpoints)
}

func printRecord(rec *protocol.ServerRecord) {
	if !rec.IsOnline {
		fmt.Printf("%-21s offline (%s)\n", rec.Endpoint.String(), rec.ErrorMessage)
		return
	}
	fmt.Printf("%-21s %-24s %s %2d/%-2d %s [%s] %dms\n",
		rec.Endpoint.String(), truncate(rec.Name, 24), rec.Map,
		rec.CurrentPlayers, rec.MaxClients, rec.GameType.Mode.String(),
		rec.Country, rec.PingMS)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
