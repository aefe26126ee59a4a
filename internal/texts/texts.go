// Package texts holds the user-facing message templates. A YAML file can
// override any key at startup; everything else falls back to the built-in
// defaults, so a partial translation file is fine.
package texts

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaults are the built-in English templates.
var defaults = map[string]string{
	"start":                 "Welcome to HETMobile!",
	"accounts_header":       "Your accounts:",
	"no_accounts":           "You have no registered accounts.",
	"add_prompt":            "Enter the account number to add:",
	"account_added":         "Account '{account}' added.",
	"account_exists":        "Account '{account}' is already registered.",
	"delete_prompt":         "Choose the account to delete:",
	"account_deleted":       "Account '{account}' deleted.",
	"account_not_found":     "Account '{account}' not found.",
	"choose_account":        "Choose an account to view today's consumption:",
	"consumption":           "Today's consumption for '{account}': {consumption} kWh\nBalance: {balance}{warning}",
	"low_balance":           "\nYour balance is below 10,000. Please top up!",
	"fetch_failed":          "Could not fetch consumption data. Try again later.",
	"graph_daily_caption":   "Daily consumption graph",
	"graph_monthly_caption": "Monthly consumption graph",
	"graph_missing":         "The graph image is not available yet.",
	"api_key_prompt":        "Enter your provider API key:",
	"api_key_saved":         "API key saved.",
	"api_key_missing":       "Set your provider API key first (\"enter API key\").",
	"daily_report":          "Daily report: don't forget to check your energy consumption!",
}

// Table maps message keys to templates with {name} placeholders.
type Table struct {
	templates map[string]string
}

// Default returns a table with only the built-in templates.
func Default() *Table {
	return &Table{templates: defaults}
}

// Load reads template overrides from a YAML key→template file and layers
// them over the defaults. An empty path yields the defaults.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texts file: %w", err)
	}

	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing texts file: %w", err)
	}

	merged := make(map[string]string, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return &Table{templates: merged}, nil
}

// Get returns the raw template for key, or the key itself when unknown so a
// missing entry stays visible instead of rendering as an empty message.
func (t *Table) Get(key string) string {
	if tpl, ok := t.templates[key]; ok {
		return tpl
	}
	return key
}

// Render substitutes {name} placeholders in the template for key.
func (t *Table) Render(key string, vars map[string]string) string {
	tpl := t.Get(key)
	if len(vars) == 0 {
		return tpl
	}

	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}
