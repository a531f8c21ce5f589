// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package i18n

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Translator resolves label keys from a flat message catalog. Missing keys
// fall back to the key itself so the UI never renders an empty label.
type Translator struct {
	messages map[string]string
}

// Translate returns the display string for key, or the key when no message
// exists.
func (t *Translator) Translate(key string) string {
	if message, ok := t.messages[key]; ok {
		return message
	}
	return key
}

// NewTranslator loads a YAML message catalog from path. Nested mappings are
// flattened with dots, so `app: {ui: {taxon: Category}}` resolves the key
// "app.ui.taxon".
func NewTranslator(path string) (*Translator, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read message catalog: %w", err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse message catalog: %w", err)
	}

	messages := make(map[string]string)
	flatten("", tree, messages)
	return &Translator{messages: messages}, nil
}

// NewStaticTranslator builds a translator over an in-memory catalog.
func NewStaticTranslator(messages map[string]string) *Translator {
	if messages == nil {
		messages = map[string]string{}
	}
	return &Translator{messages: messages}
}

func flatten(prefix string, node map[string]any, into map[string]string) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			into[full] = v
		case map[string]any:
			flatten(full, v, into)
		}
	}
}
