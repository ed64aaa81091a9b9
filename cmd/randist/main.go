// Command randist samples a configured distribution to CSV, prints summary
// statistics, and optionally renders a histogram.
//
// A run is described by a YAML file:
//
//	distribution: weibull
//	seed: 42
//	n: 100000
//	params:
//	  shape: 1.5
//	  scale: 2.0
//	output: samples.csv
//	histogram: samples.png
//
// Flags override the file values, so quick runs need no file at all:
//
//	randist -dist exponential -param rate=2 -n 10000 -seed 42
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/nozzle/randist"
	"github.com/nozzle/randist/rng"
)

// Config describes one sampling run.
type Config struct {
	Distribution string             `yaml:"distribution"`
	Seed         uint64             `yaml:"seed"`
	N            int                `yaml:"n"`
	Params       map[string]float64 `yaml:"params"`
	Output       string             `yaml:"output"`
	Histogram    string             `yaml:"histogram"`
	Bins         int                `yaml:"bins"`
}

func main() {
	configFile := flag.String("config", "", "YAML run description")
	dist := flag.String("dist", "", "Distribution name (overrides config)")
	n := flag.Int("n", 0, "Number of variates to draw")
	seed := flag.Uint64("seed", 0, "Engine seed (0 = seed from the clock)")
	output := flag.String("output", "", "Output CSV file")
	hist := flag.String("hist", "", "Histogram PNG file (empty = no plot)")
	bins := flag.Int("bins", 0, "Histogram bin count")
	var paramFlags paramList
	flag.Var(&paramFlags, "param", "Distribution parameter as name=value (repeatable)")
	flag.Parse()

	cfg := &Config{}
	if *configFile != "" {
		var err error
		cfg, err = loadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	applyFlags(cfg, *dist, *n, *seed, *output, *hist, *bins, paramFlags)
	fillDefaults(cfg)

	if cfg.Distribution == "" {
		fmt.Fprintln(os.Stderr, "Error: no distribution given (use -dist or a config file)")
		flag.Usage()
		os.Exit(1)
	}

	sampler, err := buildSampler(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	draws := randist.Samples(sampler, cfg.N)

	if err := saveCSV(cfg.Output, draws); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: n=%d seed=%d\n", cfg.Distribution, cfg.N, cfg.Seed)
	fmt.Printf("  mean=%.6f  std=%.6f  min=%.6f  max=%.6f\n",
		stat.Mean(draws, nil), stat.StdDev(draws, nil),
		floats.Min(draws), floats.Max(draws))
	fmt.Printf("  saved %d samples to %s\n", len(draws), cfg.Output)

	if cfg.Histogram != "" {
		if err := plotHistogram(draws, cfg.Bins, cfg.Histogram, cfg.Distribution); err != nil {
			fmt.Fprintf(os.Stderr, "Error plotting histogram: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  saved histogram to %s\n", cfg.Histogram)
	}
}

// paramList collects repeated -param name=value flags.
type paramList map[string]float64

func (p *paramList) String() string { return fmt.Sprint(map[string]float64(*p)) }

func (p *paramList) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected name=value, got %q", s)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", s, err)
	}
	if *p == nil {
		*p = paramList{}
	}
	(*p)[name] = v
	return nil
}

func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error when parsing config: %w", err)
	}
	return &cfg, nil
}

func applyFlags(cfg *Config, dist string, n int, seed uint64, output, hist string, bins int, params paramList) {
	if dist != "" {
		cfg.Distribution = dist
	}
	if n != 0 {
		cfg.N = n
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if output != "" {
		cfg.Output = output
	}
	if hist != "" {
		cfg.Histogram = hist
	}
	if bins != 0 {
		cfg.Bins = bins
	}
	for name, v := range params {
		if cfg.Params == nil {
			cfg.Params = map[string]float64{}
		}
		cfg.Params[name] = v
	}
}

func fillDefaults(cfg *Config) {
	if cfg.N == 0 {
		cfg.N = 10_000
	}
	if cfg.Seed == 0 {
		cfg.Seed = rng.TimeSeed()
	}
	if cfg.Output == "" {
		cfg.Output = "samples.csv"
	}
	if cfg.Bins == 0 {
		cfg.Bins = 40
	}
}

// params wraps the YAML parameter map with required-key lookups.
type params map[string]float64

func (p params) get(name string) (float64, error) {
	v, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("missing parameter %q", name)
	}
	return v, nil
}

func (p params) getInt(name string) (int, error) {
	v, err := p.get(name)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func buildSampler(cfg *Config) (randist.Sampler, error) {
	src := rng.NewEngineSeed(cfg.Seed)
	p := params(cfg.Params)

	get := func(names ...string) ([]float64, error) {
		out := make([]float64, len(names))
		for i, name := range names {
			v, err := p.get(name)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	switch cfg.Distribution {
	case "bernoulli":
		v, err := get("p")
		if err != nil {
			return nil, err
		}
		return randist.NewBernoulli(src, v[0])
	case "beta":
		a, err := p.getInt("alpha")
		if err != nil {
			return nil, err
		}
		b, err := p.getInt("beta")
		if err != nil {
			return nil, err
		}
		return randist.NewBeta(src, a, b)
	case "binomial":
		n, err := p.getInt("n")
		if err != nil {
			return nil, err
		}
		prob, err := p.get("p")
		if err != nil {
			return nil, err
		}
		return randist.NewBinomial(src, n, prob)
	case "chi-squared":
		k, err := p.getInt("k")
		if err != nil {
			return nil, err
		}
		return randist.NewChiSquared(src, k)
	case "exponential":
		v, err := get("rate")
		if err != nil {
			return nil, err
		}
		return randist.NewExponential(src, v[0])
	case "fisher":
		m, err := p.getInt("m")
		if err != nil {
			return nil, err
		}
		n, err := p.getInt("n")
		if err != nil {
			return nil, err
		}
		return randist.NewFisher(src, m, n)
	case "frechet":
		v, err := get("location", "shape", "scale")
		if err != nil {
			return nil, err
		}
		return randist.NewFrechet(src, v[0], v[1], v[2])
	case "gamma":
		shape, err := p.getInt("shape")
		if err != nil {
			return nil, err
		}
		scale, err := p.get("scale")
		if err != nil {
			return nil, err
		}
		return randist.NewGamma(src, shape, scale)
	case "geometric":
		v, err := get("p")
		if err != nil {
			return nil, err
		}
		return randist.NewGeometric(src, v[0])
	case "gumbel":
		v, err := get("location", "scale")
		if err != nil {
			return nil, err
		}
		return randist.NewGumbel(src, v[0], v[1])
	case "gumbel2":
		v, err := get("shape", "scale")
		if err != nil {
			return nil, err
		}
		return randist.NewGumbel2(src, v[0], v[1]), nil
	case "laplace":
		v, err := get("location", "scale")
		if err != nil {
			return nil, err
		}
		return randist.NewLaplace(src, v[0], v[1])
	case "log-gamma":
		shape, err := p.getInt("shape")
		if err != nil {
			return nil, err
		}
		scale, err := p.get("scale")
		if err != nil {
			return nil, err
		}
		return randist.NewLogGamma(src, shape, scale)
	case "logistic":
		v, err := get("location", "scale")
		if err != nil {
			return nil, err
		}
		return randist.NewLogistic(src, v[0], v[1])
	case "log-normal":
		v, err := get("mean", "variance")
		if err != nil {
			return nil, err
		}
		return randist.NewLogNormal(src, v[0], v[1])
	case "normal":
		v, err := get("mean", "variance")
		if err != nil {
			return nil, err
		}
		return randist.NewNormal(src, v[0], v[1])
	case "pareto":
		v, err := get("scale", "shape")
		if err != nil {
			return nil, err
		}
		return randist.NewPareto(src, v[0], v[1])
	case "poisson":
		v, err := get("rate")
		if err != nil {
			return nil, err
		}
		return randist.NewPoisson(src, v[0])
	case "rayleigh":
		v, err := get("scale")
		if err != nil {
			return nil, err
		}
		return randist.NewRayleigh(src, v[0])
	case "students-t":
		k, err := p.getInt("k")
		if err != nil {
			return nil, err
		}
		return randist.NewStudentsT(src, k)
	case "triangle":
		v, err := get("a", "b", "c")
		if err != nil {
			return nil, err
		}
		return randist.NewTriangle(src, v[0], v[1], v[2])
	case "uniform":
		v, err := get("low", "high")
		if err != nil {
			return nil, err
		}
		return randist.NewUniform(src, v[0], v[1])
	case "weibull":
		v, err := get("shape", "scale")
		if err != nil {
			return nil, err
		}
		return randist.NewWeibull(src, v[0], v[1])
	default:
		return nil, fmt.Errorf("unknown distribution %q", cfg.Distribution)
	}
}

// saveCSV writes one variate per row.
func saveCSV(filename string, draws []float64) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	for _, v := range draws {
		if err := w.Write([]string{strconv.FormatFloat(v, 'g', -1, 64)}); err != nil {
			return err
		}
	}
	return nil
}

func plotHistogram(draws []float64, bins int, file, title string) error {
	h, err := plotter.NewHist(plotter.Values(draws), bins)
	if err != nil {
		return err
	}
	h.Normalize(1)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "density"
	p.Add(h)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, file)
}
