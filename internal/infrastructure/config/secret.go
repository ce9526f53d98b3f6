package config

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ResolveAPIKey ensures the collaborator credential is present. The key
// normally arrives via config file or KONDATE_AI_API_KEY; when absent
// and stdin is a terminal, the user is prompted once with echo
// disabled. A missing key without a terminal is a startup error.
func (c *Config) ResolveAPIKey() error {
	if strings.TrimSpace(c.AI.APIKey) != "" {
		return nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("ai.api_key is not set and stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, "Gemini API key: ")
	key, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to read API key: %w", err)
	}

	if len(strings.TrimSpace(string(key))) == 0 {
		return fmt.Errorf("ai.api_key is required")
	}

	c.AI.APIKey = strings.TrimSpace(string(key))
	return nil
}
