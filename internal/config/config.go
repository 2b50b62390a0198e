package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Inputs are the raw run inputs gathered from flags and the CI
// environment before any remote call is made.
type Inputs struct {
	Token         string
	Repository    string // owner/name
	EventName     string
	EventPath     string
	ProjectNumber int
	ProjectURL    string
	Testers       []string
	ConfigPath    string
	DryRun        bool
}

// FromEnv fills unset inputs from the environment the CI runner provides.
func (in *Inputs) FromEnv() {
	if in.Token == "" {
		in.Token = os.Getenv("GITHUB_TOKEN")
	}
	if in.Repository == "" {
		in.Repository = os.Getenv("GITHUB_REPOSITORY")
	}
	if in.EventName == "" {
		in.EventName = os.Getenv("GITHUB_EVENT_NAME")
	}
	if in.EventPath == "" {
		in.EventPath = os.Getenv("GITHUB_EVENT_PATH")
	}
	if in.ProjectNumber == 0 {
		if number, err := strconv.Atoi(os.Getenv("PROJECT_NUMBER")); err == nil {
			in.ProjectNumber = number
		}
	}
	if len(in.Testers) == 0 {
		in.Testers = SplitList(os.Getenv("TESTERS"))
	}
}

// Validate checks that every required input is present. It runs before
// the first remote call so a misconfigured workflow fails immediately.
func (in *Inputs) Validate() error {
	if in.Token == "" {
		return fmt.Errorf("token is required (--token or GITHUB_TOKEN)")
	}
	if in.Repository == "" || !strings.Contains(in.Repository, "/") {
		return fmt.Errorf("repository must be set as owner/name (GITHUB_REPOSITORY)")
	}
	if in.ProjectNumber == 0 && in.ProjectURL == "" {
		return fmt.Errorf("either --project-number or --project-url is required")
	}
	if in.EventName == "" {
		return fmt.Errorf("event name is required (GITHUB_EVENT_NAME)")
	}
	if in.EventPath == "" {
		return fmt.Errorf("event payload path is required (GITHUB_EVENT_PATH)")
	}
	return nil
}

// SplitRepository returns the owner and name halves of Repository.
func (in *Inputs) SplitRepository() (owner, name string) {
	owner, name, _ = strings.Cut(in.Repository, "/")
	return owner, name
}

// SplitList splits a comma-separated list, dropping blanks.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// File is the optional repository-side configuration, conventionally at
// .github/review-triage.yml.
type File struct {
	Testers      []string `yaml:"testers"`
	StatusLabels struct {
		Review     string `yaml:"review"`
		Test       string `yaml:"test"`
		InProgress string `yaml:"in_progress"`
	} `yaml:"status_labels"`
}

// LoadFile reads the config file at path. A missing file is not an error;
// the automation runs on defaults.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &file, nil
}
