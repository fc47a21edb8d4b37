package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempConfig 将内容写入临时配置文件并返回路径
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0644)
	require.NoError(t, err, "无法写入临时配置文件")
	return configPath
}

// TestLoadConfig 验证正确的 YAML 配置能被加载并解析
func TestLoadConfig(t *testing.T) {
	yamlContent := `
server:
  address: ":8080"
  cors_allow_origins:
    - "http://localhost:3000"
logger:
  level: "debug"
  format: "pretty"
parser:
  max_upload_bytes: 1048576
augmenter:
  enabled: false
`
	cfg, err := LoadConfig(writeTempConfig(t, yamlContent))
	require.NoError(t, err, "加载合法配置不应返回错误")
	require.NotNil(t, cfg)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, int64(1048576), cfg.Parser.MaxUploadBytes)
	assert.False(t, cfg.Augmenter.Enabled)
}

// TestLoadConfigDefaults 验证缺省项会被默认值填充
func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeTempConfig(t, "{}"))
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Address)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, int64(10<<20), cfg.Parser.MaxUploadBytes)
}

// TestLoadConfigInvalidYAML 验证语法错误的配置会返回错误
func TestLoadConfigInvalidYAML(t *testing.T) {
	badYAML := `
server:
  address: ":5000"
   logger: bad-indent
`
	cfg, err := LoadConfig(writeTempConfig(t, badYAML))
	assert.Error(t, err, "非法 YAML 应返回解析错误")
	assert.Nil(t, cfg)
}

// TestLoadConfigAugmenterRequiresKey 验证启用增强器但缺少 api_key 时报错
func TestLoadConfigAugmenterRequiresKey(t *testing.T) {
	yamlContent := `
augmenter:
  enabled: true
`
	cfg, err := LoadConfig(writeTempConfig(t, yamlContent))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// TestLoadConfigMissingFile 验证文件不存在时返回错误
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
