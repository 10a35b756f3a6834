package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rxtech-lab/argo-indicators/internal/version"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type IndicatorCmdTestSuite struct {
	suite.Suite
	tempDir string
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
}

func TestIndicatorCmdSuite(t *testing.T) {
	suite.Run(t, new(IndicatorCmdTestSuite))
}

func (suite *IndicatorCmdTestSuite) SetupTest() {
	suite.tempDir = suite.T().TempDir()
	suite.stdout = &bytes.Buffer{}
	suite.stderr = &bytes.Buffer{}
}

func (suite *IndicatorCmdTestSuite) run(args ...string) error {
	app := newApp()
	app.Writer = suite.stdout
	app.ErrWriter = suite.stderr

	return app.Run(context.Background(), append([]string{"indicator"}, args...))
}

func (suite *IndicatorCmdTestSuite) write(name, content string) string {
	path := filepath.Join(suite.tempDir, name)
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	return path
}

const pipelineConfig = `
version: 1.0.0
symbol: AAPL
log_level: error
output:
  format: csv
indicators:
  - { name: atr, type: atr, period: 2 }
  - { name: dmi, type: dmi, period: 2 }
  - { name: pivots, type: pivot_points, lookback: 1, num_pivots: 2 }
`

const barsCSV = `time,symbol,open,high,low,close,volume
2024-01-02T09:30:00Z,AAPL,9,10,8,9,100
2024-01-02T09:31:00Z,AAPL,10,11,9,10,100
2024-01-02T09:32:00Z,AAPL,11,12,10,11,100
2024-01-02T09:33:00Z,AAPL,9,11,8,9,100
2024-01-02T09:34:00Z,AAPL,12,13,10,12,100
`

func (suite *IndicatorCmdTestSuite) TestRun() {
	configPath := suite.write("pipeline.yaml", pipelineConfig)
	dataPath := suite.write("bars.csv", barsCSV)
	outPath := filepath.Join(suite.tempDir, "out.csv")

	metricsPath := filepath.Join(suite.tempDir, "run.prom")

	err := suite.run("run", "--config", configPath, "--data", dataPath, "--output", outPath, "--metrics-file", metricsPath, "--quiet")
	suite.Require().NoError(err)

	metrics, err := os.ReadFile(metricsPath)
	suite.Require().NoError(err)
	suite.Contains(string(metrics), `indicator_pipeline_bars_processed_total{symbol="AAPL"} 5`)

	content, err := os.ReadFile(outPath)
	suite.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	suite.Require().Len(lines, 6)
	suite.Equal("time,symbol,atr,dmi.adx,dmi.di_plus,dmi.di_minus,pivots.high,pivots.low", lines[0])
	suite.Equal("2024-01-02T09:30:00Z,AAPL,,,,,,", lines[1])
	suite.Equal("2024-01-02T09:32:00Z,AAPL,2,,50,0,,", lines[3])
	suite.True(strings.HasSuffix(lines[4], ",12,"), lines[4])
	suite.True(strings.HasSuffix(lines[5], ",,8"), lines[5])
}

func (suite *IndicatorCmdTestSuite) TestRunJSONLinesWithSummary() {
	configPath := suite.write("pipeline.yaml", strings.Replace(pipelineConfig, "format: csv", "format: jsonl", 1))
	dataPath := suite.write("bars.csv", barsCSV)
	outPath := filepath.Join(suite.tempDir, "out.jsonl")

	err := suite.run("run", "-c", configPath, "-d", dataPath, "-o", outPath)
	suite.Require().NoError(err)

	content, err := os.ReadFile(outPath)
	suite.Require().NoError(err)
	suite.Len(strings.Split(strings.TrimSpace(string(content)), "\n"), 5)
	suite.Contains(string(content), `"dmi.di_plus":"50"`)

	suite.Contains(suite.stderr.String(), "Indicator run complete")
}

func (suite *IndicatorCmdTestSuite) TestRunInvalidConfig() {
	configPath := suite.write("pipeline.yaml", "version: 1.0.0\nindicators: []\n")
	dataPath := suite.write("bars.csv", barsCSV)

	err := suite.run("run", "--config", configPath, "--data", dataPath, "--quiet")
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *IndicatorCmdTestSuite) TestRunMissingData() {
	configPath := suite.write("pipeline.yaml", pipelineConfig)

	err := suite.run("run", "--config", configPath, "--data", filepath.Join(suite.tempDir, "missing.csv"), "--quiet")
	suite.True(errors.HasCode(err, errors.ErrCodeDataSourceUnavailable))
}

func (suite *IndicatorCmdTestSuite) TestRunFailureRemovesOutput() {
	configPath := suite.write("pipeline.yaml", pipelineConfig)
	dataPath := suite.write("bars.csv", strings.ReplaceAll(barsCSV, ",AAPL,", ",MSFT,"))
	outPath := filepath.Join(suite.tempDir, "out.csv")

	err := suite.run("run", "--config", configPath, "--data", dataPath, "--output", outPath, "--quiet")
	suite.True(errors.HasCode(err, errors.ErrCodeDataNotFound))
	suite.NoFileExists(outPath)
}

func (suite *IndicatorCmdTestSuite) TestSchema() {
	suite.Require().NoError(suite.run("schema"))
	suite.Contains(suite.stdout.String(), `"indicators"`)

	path := filepath.Join(suite.tempDir, "schema.json")
	suite.Require().NoError(suite.run("schema", "--output", path))

	content, err := os.ReadFile(path)
	suite.Require().NoError(err)
	suite.Contains(string(content), `"pivot_points"`)
}

func (suite *IndicatorCmdTestSuite) TestVersion() {
	suite.Require().NoError(suite.run("version"))
	suite.Equal(version.GetVersion()+"\n", suite.stdout.String())
}
