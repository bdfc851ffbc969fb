// File: i18n.go
// Title: Translation Catalog Manager
// Description: Implements the i18n Manager that loads translation catalogs
//              from TOML and YAML files, resolves nested dot keys with
//              fallback to the default locale and renders text/template data.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-04
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-07-26 v0.1.1: Fixed template cache collision issue in pluralization
// - 2025-08-04 v0.2.0: Catalogs feed Locale messages, template cache has its own lock,
//                       dropped watching and pluralization

package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/consoleargs/foundation/core/error"
	"github.com/msto63/consoleargs/foundation/utils/slicex"
	"github.com/msto63/consoleargs/foundation/utils/stringx"
)

// Format represents the language file format
type Format int

const (
	// FormatAuto accepts both TOML and YAML, preferring TOML
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

func (f Format) extensions() []string {
	switch f {
	case FormatTOML:
		return []string{".toml"}
	case FormatYAML:
		return []string{".yaml", ".yml"}
	default:
		return []string{".toml", ".yaml", ".yml"}
	}
}

// Options defines configuration options for the i18n manager
type Options struct {
	DefaultLocale string // Default locale (e.g., "en")
	LocalesDir    string // Directory containing language files
	Format        Format // File format (default: auto-detect)
}

// Manager manages translation catalogs for an application
type Manager struct {
	mu            sync.RWMutex
	defaultLocale string
	currentLocale string
	localesDir    string
	format        Format
	translations  map[string]map[string]interface{} // locale -> translations

	tmplMu    sync.Mutex
	templates map[string]*template.Template // locale:key -> compiled template
}

// New creates a new i18n manager and loads every catalog in LocalesDir
func New(options Options) (*Manager, error) {
	if stringx.IsBlank(options.DefaultLocale) {
		return nil, mdwerror.New("default locale cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("i18n.New")
	}

	if stringx.IsBlank(options.LocalesDir) {
		options.LocalesDir = "./locales"
	}

	if _, err := os.Stat(options.LocalesDir); err != nil {
		return nil, mdwerror.Wrap(err, "locales directory not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.New").
			WithDetail("directory", options.LocalesDir)
	}

	manager := &Manager{
		defaultLocale: options.DefaultLocale,
		currentLocale: options.DefaultLocale,
		localesDir:    options.LocalesDir,
		format:        options.Format,
		translations:  make(map[string]map[string]interface{}),
		templates:     make(map[string]*template.Template),
	}

	if err := manager.loadAllLocales(); err != nil {
		return nil, mdwerror.Wrap(err, "failed to load locales").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("i18n.loadAllLocales").
			WithDetail("directory", options.LocalesDir)
	}

	return manager, nil
}

func (m *Manager) loadAllLocales() error {
	entries, err := os.ReadDir(m.localesDir)
	if err != nil {
		return fmt.Errorf("failed to read locales directory: %w", err)
	}

	supported := m.format.extensions()

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !slicex.Contains(supported, ext) {
			continue
		}

		locale := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if stringx.IsBlank(locale) {
			continue
		}

		if _, loaded := m.translations[locale]; loaded {
			continue
		}

		if err := m.loadLocale(locale); err != nil {
			if locale == m.defaultLocale {
				return err
			}
			// A broken secondary catalog must not hide the default one
			continue
		}
	}

	if _, exists := m.translations[m.defaultLocale]; !exists {
		return fmt.Errorf("default locale '%s' not found", m.defaultLocale)
	}

	return nil
}

func (m *Manager) loadLocale(locale string) error {
	var filePath, ext string
	for _, candidate := range m.format.extensions() {
		testPath := filepath.Join(m.localesDir, locale+candidate)
		if _, err := os.Stat(testPath); err == nil {
			filePath, ext = testPath, candidate
			break
		}
	}

	if filePath == "" {
		return fmt.Errorf("no translation file found for locale '%s'", locale)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read locale file %s: %w", filePath, err)
	}

	data := make(map[string]interface{})
	if ext == ".toml" {
		if err := toml.Unmarshal(content, &data); err != nil {
			return fmt.Errorf("failed to parse TOML file %s: %w", filePath, err)
		}
	} else {
		if err := yaml.Unmarshal(content, &data); err != nil {
			return fmt.Errorf("failed to parse YAML file %s: %w", filePath, err)
		}
	}

	m.mu.Lock()
	m.translations[locale] = data
	m.mu.Unlock()

	return nil
}

// T translates a key with optional template data. A missing key renders as
// the key itself.
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	translation, err := m.TryT(key, data...)
	if err != nil && translation == "" {
		return key
	}
	return translation
}

// TryT translates a key and returns an error if translation fails
func (m *Manager) TryT(key string, data ...map[string]interface{}) (string, error) {
	m.mu.RLock()
	locale := m.currentLocale
	translation := m.getTranslation(key, locale)
	m.mu.RUnlock()

	if translation == "" {
		return "", mdwerror.New("translation not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.TryT").
			WithDetail("key", key).
			WithDetail("locale", locale)
	}

	if len(data) > 0 && data[0] != nil {
		rendered, err := m.renderTemplate(locale+":"+key, translation, data[0])
		if err != nil {
			return translation, mdwerror.Wrap(err, "template rendering failed").
				WithCode(mdwerror.CodeInternal).
				WithOperation("i18n.renderTemplate").
				WithDetail("key", key)
		}
		return rendered, nil
	}

	return translation, nil
}

// Raw returns the unrendered translation for key in the current locale,
// falling back to the default locale.
func (m *Manager) Raw(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	translation := m.getTranslation(key, m.currentLocale)
	return translation, translation != ""
}

func (m *Manager) getTranslation(key, locale string) string {
	if translations, exists := m.translations[locale]; exists {
		if value := getNestedValue(translations, key); value != "" {
			return value
		}
	}

	if locale != m.defaultLocale {
		if translations, exists := m.translations[m.defaultLocale]; exists {
			return getNestedValue(translations, key)
		}
	}

	return ""
}

// getNestedValue retrieves a nested value from translations using dot notation
func getNestedValue(data map[string]interface{}, key string) string {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		value, ok := current[k]
		if !ok {
			return ""
		}

		if i == len(keys)-1 {
			if _, nested := value.(map[string]interface{}); nested {
				return ""
			}
			return fmt.Sprintf("%v", value)
		}

		next, ok := value.(map[string]interface{})
		if !ok {
			return ""
		}
		current = next
	}

	return ""
}

func (m *Manager) renderTemplate(cacheKey, source string, data interface{}) (string, error) {
	m.tmplMu.Lock()
	tmpl, exists := m.templates[cacheKey]
	if !exists {
		var err error
		tmpl, err = template.New(cacheKey).Parse(source)
		if err != nil {
			m.tmplMu.Unlock()
			return source, fmt.Errorf("template compilation failed: %w", err)
		}
		m.templates[cacheKey] = tmpl
	}
	m.tmplMu.Unlock()

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return source, fmt.Errorf("template execution failed: %w", err)
	}

	return result.String(), nil
}

// SetLocale changes the current locale
func (m *Manager) SetLocale(locale string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.translations[locale]; !exists {
		return mdwerror.New("locale not available").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.SetLocale").
			WithDetail("locale", locale)
	}

	m.currentLocale = locale
	return nil
}

// GetCurrentLocale returns the current active locale
func (m *Manager) GetCurrentLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocale
}

// GetDefaultLocale returns the default locale
func (m *Manager) GetDefaultLocale() string {
	return m.defaultLocale
}

// GetAvailableLocales returns a sorted list of all loaded locales
func (m *Manager) GetAvailableLocales() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	locales := make([]string, 0, len(m.translations))
	for locale := range m.translations {
		locales = append(locales, locale)
	}

	sort.Strings(locales)
	return locales
}
