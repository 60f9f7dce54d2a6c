package resource

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-ini/ini"
)

var envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)

// Properties is a read-only view over an INI file. Keys are addressed as "section.key".
type Properties struct {
	file *ini.File
}

// Load reads the INI file at filepath. Key names are case-insensitive, section names are not.
func Load(filepath string) (*Properties, error) {
	file, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, filepath)
	if err != nil {
		return nil, fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}
	return &Properties{file: file}, nil
}

// HasSection reports whether the file declares the given section.
func (p *Properties) HasSection(name string) bool {
	_, err := p.file.GetSection(name)
	return err == nil
}

// IsSet reports whether the key is present in the file.
func (p *Properties) IsSet(key string) bool {
	section, name := splitKey(key)
	sec, err := p.file.GetSection(section)
	if err != nil {
		return false
	}
	return sec.HasKey(name)
}

// GetString returns the value of key, resolving the ${ENV_NAME:default} placeholder form.
func (p *Properties) GetString(key string) string {
	if !p.IsSet(key) {
		return ""
	}
	section, name := splitKey(key)
	return resolveEnvVariable(strings.TrimSpace(p.file.Section(section).Key(name).String()))
}

// splitKey splits "section.key"; keys without a dot live in the default section.
func splitKey(key string) (string, string) {
	section, name, found := strings.Cut(key, ".")
	if !found {
		return ini.DefaultSection, key
	}
	return section, name
}

// resolveEnvVariable checks if the value is an environment variable pattern and resolves it.
// Values that are not placeholders are returned unchanged.
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}
