package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	originalWd, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(originalWd) })
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}
	return tmpDir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GROQ_API_KEY", "test-key")

	cfg := Load()

	if cfg.GroqAPIKey != "test-key" {
		t.Errorf("GroqAPIKey = %q, want %q", cfg.GroqAPIKey, "test-key")
	}
	if cfg.Groq.Model != "llama3-70b-8192" {
		t.Errorf("Groq.Model = %q, want %q", cfg.Groq.Model, "llama3-70b-8192")
	}
	if cfg.Groq.MaxTokens != 1024 {
		t.Errorf("Groq.MaxTokens = %d, want 1024", cfg.Groq.MaxTokens)
	}
	if cfg.Groq.Temperature == nil || *cfg.Groq.Temperature != 0.8 {
		t.Errorf("Groq.Temperature = %v, want 0.8", cfg.Groq.Temperature)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":8080")
	}
}

func TestLoadYAMLOverrides(t *testing.T) {
	tmpDir := chdirTemp(t)
	t.Setenv("GROQ_API_KEY", "test-key")

	configContent := `
groq:
  model: "llama-3.1-8b-instant"
  max_tokens: 512
server:
  addr: ":9090"
`
	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Load()

	if cfg.Groq.Model != "llama-3.1-8b-instant" {
		t.Errorf("Groq.Model = %q, want override", cfg.Groq.Model)
	}
	if cfg.Groq.MaxTokens != 512 {
		t.Errorf("Groq.MaxTokens = %d, want 512", cfg.Groq.MaxTokens)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want :9090", cfg.Server.Addr)
	}
	// Temperature not in the file, default applies.
	if cfg.Groq.Temperature == nil || *cfg.Groq.Temperature != 0.8 {
		t.Errorf("Groq.Temperature = %v, want 0.8", cfg.Groq.Temperature)
	}
}

func TestLoadTemperatureZeroKept(t *testing.T) {
	tmpDir := chdirTemp(t)
	t.Setenv("GROQ_API_KEY", "test-key")

	configContent := `
groq:
  temperature: 0
`
	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Load()

	if cfg.Groq.Temperature == nil || *cfg.Groq.Temperature != 0 {
		t.Errorf("Groq.Temperature = %v, want explicit 0", cfg.Groq.Temperature)
	}
}

func TestLoadEnvFile(t *testing.T) {
	tmpDir := chdirTemp(t)
	// godotenv never overrides set variables, so make sure it is unset.
	t.Setenv("GROQ_API_KEY", "placeholder")
	_ = os.Unsetenv("GROQ_API_KEY")

	if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte("GROQ_API_KEY=from-dotenv\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Load()

	if cfg.GroqAPIKey != "from-dotenv" {
		t.Errorf("GroqAPIKey = %q, want %q", cfg.GroqAPIKey, "from-dotenv")
	}
}

func TestValidateMissingKey(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GROQ_API_KEY", "")

	cfg := Load()

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail fast without GROQ_API_KEY")
	}
}

func TestValidateWithKey(t *testing.T) {
	cfg := &Config{GroqAPIKey: "present"}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}
