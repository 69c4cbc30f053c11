package config

import (
	"os"
	"testing"
)

// unsetEnv removes key; t.Setenv has already registered the restore.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}
