package config

import (
	"strings"
	"testing"

	"lostfound/shared"
)

const token = "test_token"

func TestReadConfig(t *testing.T) {
	paths, err := setupTempConfigDir()
	if err != nil {
		t.Fatal("Failed to set up temporary config directories")
	}

	config, err := ReadConfig(paths)
	if err != nil {
		t.Fatal("Failed to read config")
	}

	if !strings.Contains(config.Server, "http") {
		t.Fatal("Invalid config server")
	}
}

func TestReadToken(t *testing.T) {
	paths, err := setupTempConfigDir()
	if err != nil {
		t.Fatal("Failed to set up temporary config directories")
	}

	config, err := ReadConfig(paths)
	if err != nil {
		t.Fatal("Failed to read config")
	}

	if readToken := config.ReadToken(); readToken != "" {
		t.Fatalf("Expected no stored token, got %s", readToken)
	}

	if err = config.SetToken(token); err != nil {
		t.Fatal("Failed to set user token")
	}

	if readToken := config.ReadToken(); readToken != token {
		t.Fatalf("Unexpected token value\n"+
			"(expected %s, got %s)", token, readToken)
	}
}

func TestReadProfile(t *testing.T) {
	paths, err := setupTempConfigDir()
	if err != nil {
		t.Fatal("Failed to set up temporary config directories")
	}

	config, err := ReadConfig(paths)
	if err != nil {
		t.Fatal("Failed to read config")
	}

	if config.ReadProfile() != nil {
		t.Fatal("Expected nil profile before login")
	}

	user := shared.User{ID: "user-1", Name: "Alice"}
	if err = config.SetProfile(user); err != nil {
		t.Fatal("Failed to set user profile")
	}

	profile := config.ReadProfile()
	if profile == nil || profile.ID != user.ID || profile.Name != user.Name {
		t.Fatalf("Unexpected profile value: %+v", profile)
	}

	if err = config.Reset(); err != nil {
		t.Fatal("Failed to reset session files")
	}

	if config.ReadProfile() != nil || config.ReadToken() != "" {
		t.Fatal("Reset should remove both token and profile")
	}
}
