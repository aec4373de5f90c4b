package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfigFromFile 验证YAML配置能被完整加载
func TestLoadConfigFromFile(t *testing.T) {
	content := `
server:
  address: ":9090"
  max_upload_size_mb: 5
  api_keys:
    - key-one
    - key-two
extractor:
  engine: tika
tika:
  server_url: "http://tika:9998"
  timeout_seconds: 30
rate_limit:
  enabled: true
  capacity: 50
  refill_per_second: 25
logger:
  level: debug
  format: pretty
`
	tmpDir, err := os.MkdirTemp("", "config-test")
	require.NoError(t, err, "无法创建临时目录")
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644), "无法写入临时配置文件")

	config, err := LoadConfig(configPath)
	require.NoError(t, err, "加载合法配置不应返回错误")
	require.NotNil(t, config)

	assert.Equal(t, ":9090", config.Server.Address)
	assert.Equal(t, 5, config.Server.MaxUploadSizeMB)
	assert.Equal(t, []string{"key-one", "key-two"}, config.Server.APIKeys)
	assert.Equal(t, "tika", config.Extractor.Engine)
	assert.Equal(t, "http://tika:9998", config.Tika.ServerURL)
	assert.Equal(t, 30, config.Tika.Timeout)
	assert.True(t, config.RateLimit.Enabled)
	assert.Equal(t, 50, config.RateLimit.Capacity)
	assert.Equal(t, 25.0, config.RateLimit.RefillPerSecond)
	assert.Equal(t, "debug", config.Logger.Level)
}

// TestLoadConfigDefaults 缺省字段应回填默认值
func TestLoadConfigDefaults(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config-test-defaults")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  address: \":7070\"\n"), 0644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, ":7070", config.Server.Address)
	assert.Equal(t, 10, config.Server.MaxUploadSizeMB, "上传大小应使用默认值")
	assert.Equal(t, "local", config.Extractor.Engine, "抽取引擎应默认为local")
	assert.Equal(t, "http://localhost:9998", config.Tika.ServerURL)
	assert.Equal(t, "info", config.Logger.Level)
	assert.Empty(t, config.Server.APIKeys, "默认不启用鉴权")
}

// TestLoadConfigMissingFile 明确指定的文件不存在时报错
func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}

// TestLoadConfigInvalidYAML 非法YAML报错
func TestLoadConfigInvalidYAML(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config-test-invalid")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server: [unbalanced"), 0644))

	_, err = LoadConfig(configPath)
	assert.Error(t, err)
}

// TestAPIKeysFromEnv 环境变量覆盖API密钥列表
func TestAPIKeysFromEnv(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config-test-env")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  address: \":8080\"\n"), 0644))

	t.Setenv("ATS_API_KEYS", "alpha, beta ,gamma")
	config, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, config.Server.APIKeys)
}
