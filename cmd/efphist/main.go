// Command efphist computes an Energy Flow Polynomial over a batch of
// synthetic events, in parallel, and writes a histogram of the resulting
// distribution.
//
// Usage:
//
//	efphist [-events N] [-particles M] [-jobs J] [-seed S] [-beta B] [-out file.png]
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/SebastianMacaluso/EnergyFlow/core"
	"github.com/SebastianMacaluso/EnergyFlow/efp"
	"github.com/SebastianMacaluso/EnergyFlow/gen"
)

func main() {
	var (
		nEvents    = flag.Int("events", 1000, "number of synthetic events")
		nParticles = flag.Int("particles", 8, "particles per event")
		nJobs      = flag.Int("jobs", -1, "worker count; -1 uses all CPUs")
		seed       = flag.Int64("seed", 1, "random seed")
		beta       = flag.Float64("beta", 1, "angular exponent")
		bins       = flag.Int("bins", 40, "histogram bins")
		out        = flag.String("out", "efphist.png", "output image path")
	)
	flag.Parse()

	// The two-point correlator: a single edge between two vertices.
	obs, err := efp.New(efp.Graph{{0, 1}}, core.Params{
		"measure": "hadr",
		"beta":    *beta,
	})
	if err != nil {
		log.Fatalf("efphist: %v", err)
	}

	events := gen.RandomHadrEvents(rand.New(rand.NewSource(*seed)), *nEvents, *nParticles)
	vals, err := obs.BatchCompute(events, *nJobs)
	if err != nil {
		log.Fatalf("efphist: %v", err)
	}

	fmt.Printf("events=%d particles=%d workers=%d\n", *nEvents, *nParticles, obs.Workers())
	fmt.Printf("mean=%.6g stddev=%.6g\n", stat.Mean(vals, nil), stat.StdDev(vals, nil))

	p := plot.New()
	p.Title.Text = fmt.Sprintf("EFP dumbbell, beta=%g", *beta)
	p.X.Label.Text = "EFP value"
	p.Y.Label.Text = "events"

	h, err := plotter.NewHist(plotter.Values(vals), *bins)
	if err != nil {
		log.Fatalf("efphist: %v", err)
	}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, *out); err != nil {
		log.Fatalf("efphist: %v", err)
	}
	fmt.Printf("wrote %s\n", *out)
}
