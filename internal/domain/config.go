package domain

// Config is the merged todoctl configuration (defaults, then global file,
// then repository file; command-line flags override all of it).
type Config struct {
	Scan ScanConfig     `toml:"scan"`
	Lint LintFileConfig `toml:"lint"`
}

// ScanConfig configures the tree walk.
type ScanConfig struct {
	Paths    []string `toml:"paths"`     // Default root paths
	LogLevel string   `toml:"log_level"` // debug, info, warn, error
}

// LintFileConfig is the file-backed shape of the lint rule set.
type LintFileConfig struct {
	AllowedAssignees []string `toml:"allowed_assignees"`
	ProjectKeys      []string `toml:"project_keys"`
	IssueFormat      string   `toml:"issue_format"` // numbered or project-key
	RequireAssignees bool     `toml:"require_assignees"`
	RequireIssues    bool     `toml:"require_issues"`
	RequireDueDates  bool     `toml:"require_due_dates"`
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{Paths: []string{"."}},
	}
}

// Rules converts the file-backed shape into an active LintConfig,
// validating the issue format name.
func (c LintFileConfig) Rules() (LintConfig, error) {
	rules := LintConfig{
		AllowedAssignees: c.AllowedAssignees,
		ProjectKeys:      c.ProjectKeys,
		RequireAssignees: c.RequireAssignees,
		RequireIssues:    c.RequireIssues,
		RequireDueDates:  c.RequireDueDates,
	}
	if c.IssueFormat != "" {
		kind, err := ParseIssueKind(c.IssueFormat)
		if err != nil {
			return LintConfig{}, err
		}
		rules.IssueFormat = &kind
	}
	return rules, nil
}
