package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl string `json:"base_url"`
	ApiKey  string `json:"api_key"`
	Service string `json:"service"`
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "collector.json5")

	err := os.WriteFile(name, []byte(`{
		// default endpoint
		base_url: "http://openAPI.seoul.go.kr:8088",
		service: "ListAirQualityByDistrictService",
	}`), 0600)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "http://openAPI.seoul.go.kr:8088", config.BaseUrl)
	require.Equal(t, "ListAirQualityByDistrictService", config.Service)
	require.Equal(t, "", config.ApiKey)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "collector.json5")

	err := os.WriteFile(name, []byte(`{
		base_url: "http://openAPI.seoul.go.kr:8088",
		service: "ListAirQualityByDistrictService",
	}`), 0600)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "collector.local.json5"), []byte(`{
		api_key: "secret",
		service: "CardSubwayStatsNew",
	}`), 0600)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "http://openAPI.seoul.go.kr:8088", config.BaseUrl)
	require.Equal(t, "CardSubwayStatsNew", config.Service)
	require.Equal(t, "secret", config.ApiKey)
}

func TestReadConfigMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadConfig[testConfig](filepath.Join(dir, "collector.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
