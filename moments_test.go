package randist_test

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nozzle/randist"
	"github.com/nozzle/randist/rng"
)

const momentDraws = 200_000

// mustSampler fails the test if a constructor rejected valid parameters.
func mustSampler(t *testing.T, s randist.Sampler, err error) randist.Sampler {
	t.Helper()
	if err != nil {
		t.Fatalf("constructor: %v", err)
	}
	return s
}

func TestSampleMoments(t *testing.T) {
	// Expected means and variances are the closed-form moments; tolerances
	// are several times the deviation observed for this seed and draw count.
	cases := []struct {
		name     string
		build    func(src rng.Source) randist.Sampler
		mean     float64
		meanTol  float64
		variance float64 // NaN skips the variance check
		varTol   float64
	}{
		{
			name: "Bernoulli(0.3)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewBernoulli(src, 0.3)
				return mustSampler(t, s, err)
			},
			mean: 0.3, meanTol: 0.01, variance: 0.21, varTol: 0.01,
		},
		{
			name: "Beta(2,3)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewBeta(src, 2, 3)
				return mustSampler(t, s, err)
			},
			mean: 0.4, meanTol: 0.005, variance: 0.04, varTol: 0.002,
		},
		{
			name: "Binomial(10,0.3)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewBinomial(src, 10, 0.3)
				return mustSampler(t, s, err)
			},
			mean: 3, meanTol: 0.03, variance: 2.1, varTol: 0.05,
		},
		{
			name: "ChiSquared(4)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewChiSquared(src, 4)
				return mustSampler(t, s, err)
			},
			mean: 4, meanTol: 0.05, variance: 8, varTol: 0.25,
		},
		{
			name: "Exponential(2)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewExponential(src, 2)
				return mustSampler(t, s, err)
			},
			mean: 0.5, meanTol: 0.01, variance: 0.25, varTol: 0.01,
		},
		{
			name: "Fisher(6,10)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewFisher(src, 6, 10)
				return mustSampler(t, s, err)
			},
			mean: 10.0 / 8.0, meanTol: 0.03, variance: math.NaN(),
		},
		{
			name: "Gamma(3,2)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewGamma(src, 3, 2)
				return mustSampler(t, s, err)
			},
			mean: 6, meanTol: 0.06, variance: 12, varTol: 0.3,
		},
		{
			name: "Geometric(0.25)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewGeometric(src, 0.25)
				return mustSampler(t, s, err)
			},
			mean: 4, meanTol: 0.06, variance: 12, varTol: 0.3,
		},
		{
			name: "Gumbel(0.5,2)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewGumbel(src, 0.5, 2)
				return mustSampler(t, s, err)
			},
			mean: 0.5 + 2*0.5772156649015329, meanTol: 0.03,
			variance: math.Pi * math.Pi / 6 * 4, varTol: 0.2,
		},
		{
			name: "Laplace(0,1.5)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewLaplace(src, 0, 1.5)
				return mustSampler(t, s, err)
			},
			mean: 0, meanTol: 0.03, variance: 4.5, varTol: 0.12,
		},
		{
			name: "Logistic(1,2)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewLogistic(src, 1, 2)
				return mustSampler(t, s, err)
			},
			mean: 1, meanTol: 0.05, variance: 4 * math.Pi * math.Pi / 3, varTol: 0.35,
		},
		{
			name: "LogNormal(0,0.25)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewLogNormal(src, 0, 0.25)
				return mustSampler(t, s, err)
			},
			mean: math.Exp(0.125), meanTol: 0.01, variance: math.NaN(),
		},
		{
			name: "Normal(3,4)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewNormal(src, 3, 4)
				return mustSampler(t, s, err)
			},
			mean: 3, meanTol: 0.03, variance: 4, varTol: 0.1,
		},
		{
			name: "Pareto(1,3)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewPareto(src, 1, 3)
				return mustSampler(t, s, err)
			},
			mean: 1.5, meanTol: 0.01, variance: 0.75, varTol: 0.2, // heavy tail
		},
		{
			name: "Poisson(4)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewPoisson(src, 4)
				return mustSampler(t, s, err)
			},
			mean: 4, meanTol: 0.05, variance: 4, varTol: 0.1,
		},
		{
			name: "Rayleigh(2)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewRayleigh(src, 2)
				return mustSampler(t, s, err)
			},
			mean: 2 * math.Sqrt(math.Pi/2), meanTol: 0.02,
			variance: (4 - math.Pi) / 2 * 4, varTol: 0.05,
		},
		{
			name: "StudentsT(6)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewStudentsT(src, 6)
				return mustSampler(t, s, err)
			},
			mean: 0, meanTol: 0.02, variance: 1.5, varTol: 0.06,
		},
		{
			name: "Triangle(0,4,1)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewTriangle(src, 0, 4, 1)
				return mustSampler(t, s, err)
			},
			mean: 5.0 / 3.0, meanTol: 0.01, variance: 13.0 / 18.0, varTol: 0.02,
		},
		{
			name: "Uniform(2,5)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewUniform(src, 2, 5)
				return mustSampler(t, s, err)
			},
			mean: 3.5, meanTol: 0.01, variance: 0.75, varTol: 0.01,
		},
		{
			name: "Weibull(1.5,2)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewWeibull(src, 1.5, 2)
				return mustSampler(t, s, err)
			},
			mean: 2 * math.Gamma(1+1/1.5), meanTol: 0.02, variance: math.NaN(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.build(rng.NewEngineSeed(42))
			draws := randist.Samples(s, momentDraws)

			mean := stat.Mean(draws, nil)
			variance := stat.Variance(draws, nil)
			fmt.Printf("%-20s mean=%.5f (want %.5f)  var=%.5f\n", tc.name, mean, tc.mean, variance)

			if math.Abs(mean-tc.mean) > tc.meanTol {
				t.Errorf("mean = %v, want %v +- %v", mean, tc.mean, tc.meanTol)
			}
			if !math.IsNaN(tc.variance) && math.Abs(variance-tc.variance) > tc.varTol {
				t.Errorf("variance = %v, want %v +- %v", variance, tc.variance, tc.varTol)
			}
		})
	}
}

// TestMomentsAgainstDistuv checks a few samplers against the closed-form
// moments gonum computes for the same parameterization.
func TestMomentsAgainstDistuv(t *testing.T) {
	cases := []struct {
		name  string
		build func(src rng.Source) randist.Sampler
		dist  interface {
			Mean() float64
			Variance() float64
		}
	}{
		{
			name: "Weibull(1.5,2)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewWeibull(src, 1.5, 2)
				return mustSampler(t, s, err)
			},
			dist: distuv.Weibull{K: 1.5, Lambda: 2},
		},
		{
			name: "Gamma(3,2)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewGamma(src, 3, 2)
				return mustSampler(t, s, err)
			},
			dist: distuv.Gamma{Alpha: 3, Beta: 0.5},
		},
		{
			name: "Beta(2,3)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewBeta(src, 2, 3)
				return mustSampler(t, s, err)
			},
			dist: distuv.Beta{Alpha: 2, Beta: 3},
		},
		{
			name: "LogNormal(0,0.25)",
			build: func(src rng.Source) randist.Sampler {
				s, err := randist.NewLogNormal(src, 0, 0.25)
				return mustSampler(t, s, err)
			},
			dist: distuv.LogNormal{Mu: 0, Sigma: 0.5},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.build(rng.NewEngineSeed(42))
			draws := randist.Samples(s, momentDraws)

			mean := stat.Mean(draws, nil)
			variance := stat.Variance(draws, nil)
			wantMean := tc.dist.Mean()
			wantVar := tc.dist.Variance()
			fmt.Printf("%-18s mean=%.5f distuv=%.5f  var=%.5f distuv=%.5f\n",
				tc.name, mean, wantMean, variance, wantVar)

			if math.Abs(mean-wantMean) > 0.02*math.Max(1, math.Abs(wantMean)) {
				t.Errorf("mean = %v, distuv closed form %v", mean, wantMean)
			}
			if math.Abs(variance-wantVar) > 0.05*math.Max(1, wantVar) {
				t.Errorf("variance = %v, distuv closed form %v", variance, wantVar)
			}
		})
	}
}
