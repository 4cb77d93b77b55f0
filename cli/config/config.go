package config

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"lostfound/shared"
)

type Paths struct {
	config    string
	gitignore string
	token     string
	profile   string
}

// Config is the CLI's local configuration. The token and profile files
// live beside it in the config directory; both are written by the login
// flow and only ever read here.
type Config struct {
	Server      string `yaml:"server,omitempty"`
	DefaultView string `yaml:"default_view,omitempty"`

	paths Paths
}

var baseConfigPath = filepath.Join(".config", "lostfound")

const configFileName = "config.yml"
const gitignoreName = ".gitignore"
const tokenName = "token"
const profileName = "profile.yml"

//go:embed config.yml
var defaultConfig string

// SetupConfigDir ensures that the directory necessary for the CLI's
// config has been created. This path defaults to $HOME/.config/lostfound.
func SetupConfigDir() (Paths, error) {
	dirname, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, err
	}

	localConfig, err := makeConfigDirectories(dirname)
	if err != nil {
		return Paths{}, err
	}

	return pathsIn(localConfig), nil
}

// setupTempConfigDir creates a config directory for the current user in
// the OS's temporary directory. Used for testing.
func setupTempConfigDir() (Paths, error) {
	dirname, err := os.MkdirTemp("", "lostfound-config")
	if err != nil {
		return Paths{}, err
	}

	localConfig, err := makeConfigDirectories(dirname)
	if err != nil {
		return Paths{}, err
	}

	return pathsIn(localConfig), nil
}

func pathsIn(localConfig string) Paths {
	return Paths{
		config:    filepath.Join(localConfig, configFileName),
		gitignore: filepath.Join(localConfig, gitignoreName),
		token:     filepath.Join(localConfig, tokenName),
		profile:   filepath.Join(localConfig, profileName),
	}
}

func makeConfigDirectories(dirname string) (string, error) {
	localConfig := filepath.Join(dirname, baseConfigPath)
	err := os.MkdirAll(localConfig, os.ModePerm)
	if err != nil {
		return "", err
	}

	return localConfig, nil
}

// ReadConfig reads the config file (config.yml) for current
// configuration, creating the default one on first run.
func ReadConfig(paths Paths) (Config, error) {
	if _, err := os.Stat(paths.config); err == nil {
		config := Config{paths: paths}
		data, err := os.ReadFile(paths.config)
		if err != nil {
			return config, err
		}

		err = yaml.Unmarshal(data, &config)
		if err != nil {
			return config, err
		}

		// Strip trailing slash
		config.Server = strings.TrimSuffix(config.Server, "/")

		return config, nil
	} else {
		err := setupDefaultConfig(paths)
		if err != nil {
			return Config{}, err
		}
		return ReadConfig(paths)
	}
}

// LoadConfig sets up the config directory and reads the current config,
// exiting on failure since nothing works without it.
func LoadConfig() *Config {
	paths, err := SetupConfigDir()
	if err != nil {
		log.Fatal(err)
	}

	config, err := ReadConfig(paths)
	if err != nil {
		log.Fatal(err)
	}

	return &config
}

// setupDefaultConfig copies default config files from the repo to the
// user's config directory
func setupDefaultConfig(paths Paths) error {
	err := os.WriteFile(paths.config, []byte(defaultConfig), 0644)
	if err != nil {
		return err
	}

	defaultGitignore := fmt.Sprintf("%s\n%s\n", tokenName, profileName)
	err = os.WriteFile(paths.gitignore, []byte(defaultGitignore), 0644)
	if err != nil {
		return err
	}

	return nil
}

// ReadToken returns the stored auth token, or an empty string when the
// user has never logged in.
func (c *Config) ReadToken() string {
	token, err := os.ReadFile(c.paths.token)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(token))
}

// SetToken stores the token returned by the server's login flow in a
// (gitignored) file in the config directory.
func (c *Config) SetToken(token string) error {
	return os.WriteFile(c.paths.token, []byte(token), 0600)
}

// ReadProfile returns the logged-in user's identity, or nil when no
// profile has been stored (anonymous browsing).
func (c *Config) ReadProfile() *shared.User {
	data, err := os.ReadFile(c.paths.profile)
	if err != nil {
		return nil
	}

	var user shared.User
	if err = yaml.Unmarshal(data, &user); err != nil || len(user.ID) == 0 {
		return nil
	}

	return &user
}

// SetProfile stores the logged-in user's identity next to the token.
func (c *Config) SetProfile(user shared.User) error {
	data, err := yaml.Marshal(user)
	if err != nil {
		return err
	}

	return os.WriteFile(c.paths.profile, data, 0600)
}

// Reset removes the stored token and profile.
func (c *Config) Reset() error {
	for _, path := range []string{c.paths.token, c.paths.profile} {
		if _, err := os.Stat(path); err == nil {
			if err := os.Remove(path); err != nil {
				return err
			}
		}
	}

	return nil
}
