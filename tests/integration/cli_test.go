// CLI integration tests for primekit: each subcommand is exercised through
// the built binary, including JSON output, the factorization cache, run
// history, and exit-code classification of invalid input.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain builds the primekit binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "primekit-test-*")
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "primekit")
	SetPrimekitBin(binPath)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/primekit")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		SetBuildErr(&BuildError{
			Err:    err,
			Output: string(output),
		})
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)

	os.Exit(code)
}

func TestCLI_Version(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPrimekit("version")
	assert.Contains(t, result.Stdout, "primekit")
}

func TestCLI_InitCreatesStore(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPrimekit("init")
	assert.Contains(t, result.Stdout, env.DataDir)

	_, err := os.Stat(filepath.Join(env.DataDir, "primekit.db"))
	require.NoError(t, err, "primekit.db not created")
}

func TestCLI_SievePrimesUpTo30(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPrimekit("sieve", "30")
	assert.Equal(t, "2 3 5 7 11 13 17 19 23 29", strings.TrimSpace(result.Stdout))
}

func TestCLI_SieveCount(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPrimekit("sieve", "1000", "--count")
	assert.Equal(t, "168", strings.TrimSpace(result.Stdout))
}

type sieveJSON struct {
	Bound  int64   `json:"bound"`
	Count  int     `json:"count"`
	Primes []int64 `json:"primes"`
}

func TestCLI_SieveJSON(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPrimekit("sieve", "10", "--json")
	out := ParseJSON[sieveJSON](t, result.Stdout)

	assert.Equal(t, int64(10), out.Bound)
	assert.Equal(t, 4, out.Count)
	assert.Equal(t, []int64{2, 3, 5, 7}, out.Primes)
}

func TestCLI_SieveJSONEmptyResultKeepsPrimesKey(t *testing.T) {
	env := NewTestEnv(t)

	// A bound below 2 yields no primes, but the key must still be present
	// so the output is distinguishable from --count.
	result := env.MustRunPrimekit("sieve", "1", "--json")
	assert.Contains(t, result.Stdout, `"primes": []`)

	out := ParseJSON[sieveJSON](t, result.Stdout)
	assert.Equal(t, 0, out.Count)
}

func TestCLI_SieveCountJSONOmitsPrimes(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPrimekit("sieve", "100", "--count", "--json")
	assert.NotContains(t, result.Stdout, `"primes"`)

	out := ParseJSON[sieveJSON](t, result.Stdout)
	assert.Equal(t, 25, out.Count)
}

type nthJSON struct {
	Index    int64   `json:"index"`
	Estimate float64 `json:"estimate"`
	Lower    int64   `json:"lower"`
	Upper    int64   `json:"upper"`
}

func TestCLI_NthBracketsKnownPrime(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPrimekit("nth", "100", "--json")
	out := ParseJSON[nthJSON](t, result.Stdout)

	// The 100th prime is 541.
	assert.Equal(t, int64(100), out.Index)
	assert.LessOrEqual(t, out.Lower, int64(541))
	assert.GreaterOrEqual(t, out.Upper, int64(541))
	assert.InEpsilon(t, 541.0, out.Estimate, 0.20)
}

func TestCLI_NthFirstPrimeExact(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPrimekit("nth", "1", "--json")
	out := ParseJSON[nthJSON](t, result.Stdout)

	assert.Equal(t, int64(2), out.Lower)
	assert.Equal(t, int64(2), out.Upper)
	assert.Equal(t, 2.0, out.Estimate)
}

type factorJSON struct {
	Target  int64 `json:"target"`
	Factors []struct {
		Prime    int64 `json:"prime"`
		Exponent int   `json:"exponent"`
	} `json:"factors"`
	Cached bool `json:"cached"`
}

func TestCLI_FactorText(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPrimekit("factor", "360")
	assert.Contains(t, result.Stdout, "360 = 2^3 * 3^2 * 5")
}

func TestCLI_FactorOne(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPrimekit("factor", "1", "--json")
	out := ParseJSON[factorJSON](t, result.Stdout)
	assert.Empty(t, out.Factors)
}

func TestCLI_FactorSecondRunIsCached(t *testing.T) {
	env := NewTestEnv(t)

	first := env.MustRunPrimekit("factor", "5000", "--json")
	assert.False(t, ParseJSON[factorJSON](t, first.Stdout).Cached)

	second := env.MustRunPrimekit("factor", "5000", "--json")
	out := ParseJSON[factorJSON](t, second.Stdout)
	assert.True(t, out.Cached)

	require.Len(t, out.Factors, 2)
	assert.Equal(t, int64(2), out.Factors[0].Prime)
	assert.Equal(t, 3, out.Factors[0].Exponent)
	assert.Equal(t, int64(5), out.Factors[1].Prime)
	assert.Equal(t, 4, out.Factors[1].Exponent)
}

func TestCLI_FactorNoStoreSkipsCache(t *testing.T) {
	env := NewTestEnv(t)

	env.MustRunPrimekit("factor", "360", "--no-store")

	// Nothing was recorded, so history over a fresh store is empty.
	result := env.MustRunPrimekit("history")
	assert.Contains(t, result.Stdout, "no runs recorded")
}

func TestCLI_FactorInvalidInputExitsAsUserError(t *testing.T) {
	env := NewTestEnv(t)

	for _, arg := range []string{"0", "-5", "not-a-number"} {
		result := env.RunPrimekit("factor", arg)
		assert.Equal(t, 1, result.ExitCode, "factor %s should exit 1, stderr: %s", arg, result.Stderr)
		assert.NotEmpty(t, result.Stderr)
	}
}

func TestCLI_NthInvalidIndexExitsAsUserError(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunPrimekit("nth", "0")
	assert.Equal(t, 1, result.ExitCode)
}

func TestCLI_HistoryListsRuns(t *testing.T) {
	env := NewTestEnv(t)

	env.MustRunPrimekit("sieve", "100", "--count")
	env.MustRunPrimekit("factor", "360")

	all := env.MustRunPrimekit("history")
	assert.Contains(t, all.Stdout, "sieve")
	assert.Contains(t, all.Stdout, "factor")

	factorsOnly := env.MustRunPrimekit("history", "factor")
	assert.Contains(t, factorsOnly.Stdout, "360")
	assert.NotContains(t, factorsOnly.Stdout, "sieve")
}

func TestCLI_HistoryNoStoreExitsAsUserError(t *testing.T) {
	env := NewTestEnv(t)

	// Asking for history while disabling the store is a contradiction the
	// caller can fix, so it exits 1 rather than as a system failure.
	result := env.RunPrimekit("history", "--no-store")
	assert.Equal(t, 1, result.ExitCode, "stderr: %s", result.Stderr)
	assert.Contains(t, result.Stderr, "--no-store")
}

type runJSON struct {
	RunID  string `json:"RunID"`
	Kind   string `json:"Kind"`
	Input  string `json:"Input"`
	Result string `json:"Result"`
}

func TestCLI_HistoryJSON(t *testing.T) {
	env := NewTestEnv(t)

	env.MustRunPrimekit("factor", "45")

	result := env.MustRunPrimekit("history", "factor", "--json")
	runs := ParseJSON[[]runJSON](t, result.Stdout)

	require.Len(t, runs, 1)
	assert.Equal(t, "factor", runs[0].Kind)
	assert.Equal(t, "45", runs[0].Input)
	assert.Equal(t, "3^2 * 5", runs[0].Result)
	assert.NotEmpty(t, runs[0].RunID)
}
