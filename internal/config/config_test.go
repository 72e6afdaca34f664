package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.OutputDir != "data" {
		t.Errorf("Expected output_dir to be 'data', got '%s'", config.OutputDir)
	}

	if config.Counts.Agents != 25 {
		t.Errorf("Expected agents count to be 25, got %d", config.Counts.Agents)
	}

	if config.Counts.Clients != 100 {
		t.Errorf("Expected clients count to be 100, got %d", config.Counts.Clients)
	}

	if config.Counts.Transactions != 1000 {
		t.Errorf("Expected transactions count to be 1000, got %d", config.Counts.Transactions)
	}

	if config.Database.Provider != "mysql" {
		t.Errorf("Expected database provider to be 'mysql', got '%s'", config.Database.Provider)
	}

	if config.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected database url_env to be 'DATABASE_URL', got '%s'", config.Database.URLEnv)
	}
}

func TestValidate(t *testing.T) {
	valid := DefaultConfig()
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got: %v", err)
	}

	badProvider := DefaultConfig()
	badProvider.Database.Provider = "mongodb"
	if err := badProvider.Validate(); err == nil {
		t.Error("Expected unsupported provider to fail validation")
	}

	negativeCount := DefaultConfig()
	negativeCount.Counts.Transactions = -1
	if err := negativeCount.Validate(); err == nil {
		t.Error("Expected negative count to fail validation")
	}

	badFormat := DefaultConfig()
	badFormat.Formats = []string{"xml"}
	if err := badFormat.Validate(); err == nil {
		t.Error("Expected unsupported format to fail validation")
	}

	zeroCounts := DefaultConfig()
	zeroCounts.Counts = Counts{}
	if err := zeroCounts.Validate(); err != nil {
		t.Errorf("Expected zero counts to be valid, got: %v", err)
	}
}

func TestInitializeProject(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "remitgen-test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	defer os.Chdir(originalDir)

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	if err := InitializeProject(); err != nil {
		t.Fatalf("Failed to initialize project: %v", err)
	}

	configPath := filepath.Join(tempDir, FileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("Config file was not created at %s", configPath)
	}

	if _, err := os.Stat(filepath.Join(tempDir, "data")); os.IsNotExist(err) {
		t.Error("Output directory was not created")
	}

	// Second initialization must fail.
	if err := InitializeProject(); err == nil {
		t.Error("Expected second initialization to fail, but it succeeded")
	}
}

func TestIsInitialized(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "remitgen-test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	defer os.Chdir(originalDir)

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	if IsInitialized() {
		t.Error("Expected project to not be initialized, but it was")
	}

	if err := os.WriteFile(filepath.Join(tempDir, FileName), []byte("{}"), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	if !IsInitialized() {
		t.Error("Expected project to be initialized, but it wasn't")
	}
}
