package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetDataDir(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("Failed to get data directory: %v", err)
	}

	if dataDir == "" {
		t.Fatal("Data directory is empty")
	}

	if filepath.Base(dataDir) != DataDirName {
		t.Errorf("Expected directory to end with %q, got: %s", DataDirName, dataDir)
	}
}

func TestGetProfileDir(t *testing.T) {
	profileDir, err := GetProfileDir("default")
	if err != nil {
		t.Fatalf("Failed to get profile directory: %v", err)
	}

	if filepath.Base(profileDir) != "default" {
		t.Errorf("Expected directory to end with 'default', got: %s", profileDir)
	}

	if !strings.Contains(profileDir, ProfilesDirName) {
		t.Errorf("Expected profile directory under %q, got: %s", ProfilesDirName, profileDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.txt")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}

	// Check that error contains the expected message
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.mp4")

	err := OpenFileWithDefaultApp(nonExistentFile)
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}
