package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .rasa-nlg.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to rasa-nlg! Let's configure your server.")
	fmt.Println()

	defaults := DefaultConfig()

	portPrompt := promptui.Prompt{
		Label:   "Port to listen on",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	dataPrompt := promptui.Prompt{
		Label:   "Data directory for the SQLite database",
		Default: defaults.DataDir,
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	assetsPrompt := promptui.Prompt{
		Label:   "Directory containing the dashboard bundle",
		Default: defaults.AssetsDir,
	}
	assetsDir, err := assetsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}

	originPrompt := promptui.Select{
		Label: "Allowed CORS origins",
		Items: []string{
			"localhost only (recommended)",
			"any origin (dev mode)",
		},
	}
	originIdx, _, err := originPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("origin selection: %w", err)
	}

	cfg := &Config{
		Port:      port,
		DataDir:   dataDir,
		AssetsDir: assetsDir,
		AllowAll:  originIdx == 1,
	}

	if err := cfg.Save(DefaultConfigPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultConfigPath)
	return cfg, nil
}
