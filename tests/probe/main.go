package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"arenastreams/internal/adblock"
)

// Probe tool: runs one detection cycle against a running instance and prints
// the resulting page plan. Blocking can be simulated without an actual ad
// blocker via -simulate-* flags.

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:    10,
		IdleConnTimeout: 30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type simulatedBait struct {
	hidden bool
}

func (b *simulatedBait) Plant() error { return nil }
func (b *simulatedBait) Hidden() bool { return b.hidden }
func (b *simulatedBait) Remove()      {}

func main() {
	baseURL := flag.String("base", "http://127.0.0.1:3000", "instance base URL")
	page := flag.String("page", "/", "page path the cycle runs for")
	policyFlag := flag.String("policy", "lenient", "detection policy: lenient or strict")
	modeFlag := flag.String("mode", "density", "response mode: density or redirect")
	timeout := flag.Duration("timeout", adblock.DefaultTimeout, "detection window")
	recheck := flag.Bool("recheck", false, "run a second cycle with the recheck window")
	simulateStyle := flag.Bool("simulate-style", false, "pretend the bait was hidden")
	simulateNetwork := flag.Bool("simulate-network", false, "skip the network probes, as a blocker would")
	report := flag.Bool("report", true, "post the verdict to /api/track-adblock")
	flag.Parse()

	policy, err := adblock.ParsePolicy(*policyFlag)
	if err != nil {
		log.Fatalf("probe: %s", err)
	}
	mode, err := adblock.ParseResponseMode(*modeFlag)
	if err != nil {
		log.Fatalf("probe: %s", err)
	}

	var imageProbe, scriptProbe adblock.ProbeFunc
	if *simulateNetwork {
		imageProbe = func(context.Context) bool { return false }
		scriptProbe = func(context.Context) bool { return false }
	} else {
		imageProbe = adblock.HTTPProbe(httpClient, adblock.ImageProbeURL(*baseURL))
		scriptProbe = adblock.HTTPProbe(httpClient, adblock.ScriptProbeURL(*baseURL))
	}

	detector := adblock.NewDetector(adblock.DetectorConfig{
		Policy:      policy,
		Timeout:     *timeout,
		Bait:        &simulatedBait{hidden: *simulateStyle},
		ImageProbe:  imageProbe,
		ScriptProbe: scriptProbe,
		Logf:        log.Printf,
	})

	var reporter adblock.Reporter
	if *report {
		reporter = adblock.NewHTTPReporter(httpClient, *baseURL+"/api/track-adblock", log.Printf)
	}

	sentinel := adblock.NewSentinel(adblock.SentinelConfig{
		Detector: detector,
		Mode:     mode,
		Page:     *page,
		Reporter: reporter,
		Logf:     log.Printf,
	})

	ctx := context.Background()
	printPlan("initial cycle", sentinel.Run(ctx))
	if *recheck {
		printPlan("recheck cycle", sentinel.Recheck(ctx))
	}

	// Give the fire-and-forget report a moment to leave.
	if *report {
		time.Sleep(500 * time.Millisecond)
	}
}

func printPlan(label string, plan adblock.Response) {
	gson, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		log.Fatalf("probe: %s", err)
	}
	fmt.Printf("--- %s ---\n%s\n", label, gson)
}
