package main

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexshd/gammashield"
)

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--no-color"))

	err := cmd.Execute()
	return stdout.String(), err
}

// executeJSON runs the CLI with JSON output and decodes the result rows.
func executeJSON(t *testing.T, args ...string) []map[string]any {
	t.Helper()

	out, err := execute(t, append(args, "--format", "json")...)
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	return rows
}

func TestRateCmd(t *testing.T) {
	rows := executeJSON(t, "rate", "--material", "Lead662", "--depth", "1", "--rate", "100")

	require.Len(t, rows, 1)
	assert.Equal(t, "rate", rows[0]["operation"])
	assert.Equal(t, 29.0, math.Round(rows[0]["shielded_rate"].(float64)))
}

func TestRateCmd_Table(t *testing.T) {
	out, err := execute(t, "rate", "-m", "lead1332", "-d", "1", "-r", "100", "--precision", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Lead (1332 keV)")
	assert.Contains(t, out, "52.4")
}

func TestRateCmd_MissingFlags(t *testing.T) {
	_, err := execute(t, "rate", "--material", "Water", "--depth", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate")

	_, err = execute(t, "rate", "--depth", "1", "--rate", "1")
	require.Error(t, err)
}

func TestFactorCmd(t *testing.T) {
	rows := executeJSON(t, "factor", "--material", "Water", "--depth", "10")

	require.Len(t, rows, 1)
	assert.InDelta(t, math.Exp(-0.707), rows[0]["shielding_factor"], 1e-12)
}

func TestFactorCmd_AdHocMaterial(t *testing.T) {
	rows := executeJSON(t, "factor", "--mu", "0.11", "--density", "11.35", "--name", "lead", "--depth", "1")

	require.Len(t, rows, 1)
	assert.Equal(t, "lead", rows[0]["material"])
	assert.InDelta(t, gammashield.ShieldingFactorForDepth(gammashield.Lead662, 1), rows[0]["shielding_factor"], 1e-15)
}

func TestFactorCmd_AdHocInvalid(t *testing.T) {
	_, err := execute(t, "factor", "--mu", "0.11", "--density", "0", "--depth", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "density")

	_, err = execute(t, "factor", "--mu", "0.11", "--depth", "1")
	require.Error(t, err, "mu requires density")
}

func TestDepthCmd_Factor(t *testing.T) {
	rows := executeJSON(t, "depth", "--material", "Lead662", "--factor", "0.01")

	require.Len(t, rows, 1)
	depth := rows[0]["depth_cm"].(float64)
	assert.Equal(t, 3.7, math.Round(depth*10)/10)
}

func TestDepthCmd_Rates(t *testing.T) {
	rows := executeJSON(t, "depth", "--material", "Lead662", "--rate", "100", "--target", "1")

	require.Len(t, rows, 1)
	assert.Equal(t, 0.01, rows[0]["shielding_factor"])
	assert.Equal(t, 3.7, math.Round(rows[0]["depth_cm"].(float64)*10)/10)
}

func TestDepthCmd_DomainError(t *testing.T) {
	for _, factor := range []string{"0", "-1"} {
		_, err := execute(t, "depth", "--material", "Water", "--factor", factor)
		require.ErrorIs(t, err, gammashield.ErrDomain, factor)
	}

	_, err := execute(t, "depth", "--material", "Water", "--rate", "0", "--target", "1")
	require.ErrorIs(t, err, gammashield.ErrDomain)
}

func TestDepthCmd_ConflictingFlags(t *testing.T) {
	_, err := execute(t, "depth", "--material", "Water", "--factor", "0.5", "--rate", "10", "--target", "1")
	require.Error(t, err)

	_, err = execute(t, "depth", "--material", "Water")
	require.Error(t, err)
}

func TestSweepCmd(t *testing.T) {
	rows := executeJSON(t, "sweep", "--material", "Lead1332", "--rate", "100", "--depths", "0,1,2")

	require.Len(t, rows, 3)
	assert.Equal(t, 100.0, rows[0]["shielded_rate"])
	assert.Equal(t, 52.0, math.Round(rows[1]["shielded_rate"].(float64)))
	assert.Less(t, rows[2]["shielded_rate"].(float64), rows[1]["shielded_rate"].(float64))
}

func TestMaterialsCmd(t *testing.T) {
	rows := executeJSON(t, "materials")

	require.Len(t, rows, 4)
	keys := make([]string, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, r["key"].(string))
	}
	assert.Equal(t, gammashield.CatalogNames(), keys)
}

func TestMaterialsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "materials.yaml")
	content := "materials:\n  - {key: Concrete662, name: Concrete, mass_attenuation_coefficient: 0.0774, density: 2.35}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rows := executeJSON(t, "materials", "--materials-file", path)
	assert.Len(t, rows, 5)

	rows = executeJSON(t, "rate", "--materials-file", path, "-m", "concrete662", "-d", "10", "-r", "1")
	require.Len(t, rows, 1)
	assert.InDelta(t, math.Exp(-0.0774*2.35*10), rows[0]["shielded_rate"], 1e-12)
}

func TestUnknownMaterial(t *testing.T) {
	_, err := execute(t, "factor", "--material", "Unobtainium", "--depth", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown material")
	assert.Contains(t, err.Error(), "Lead662")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	materials := filepath.Join(dir, "materials.yaml")
	require.NoError(t, os.WriteFile(materials,
		[]byte("materials:\n  - {key: Steel, mass_attenuation_coefficient: 0.0738, density: 7.86}\n"), 0o600))

	config := filepath.Join(dir, "shieldcalc.yaml")
	require.NoError(t, os.WriteFile(config,
		[]byte("format: yaml\nmaterials_file: "+materials+"\n"), 0o600))

	out, err := execute(t, "--config", config, "factor", "-m", "steel", "-d", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "operation: factor")
	assert.Contains(t, out, "material: Steel")
}

func TestConfigFile_Missing(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SHIELDCALC_FORMAT", "yaml")

	out, err := execute(t, "factor", "-m", "iron", "-d", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "operation: factor")
}

func TestUnknownFormat(t *testing.T) {
	_, err := execute(t, "factor", "-m", "iron", "-d", "1", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "shieldcalc version "+version+"\n", out)
}
