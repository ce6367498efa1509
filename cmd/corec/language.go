package main

import (
	"fmt"

	"github.com/coreclang/corec/config"
	"github.com/coreclang/corec/lang"
)

// loadLanguage builds a *lang.Language from a language definition file
// at path, or from the built-in tables when path is empty.
func loadLanguage(path string) (*lang.Language, error) {
	symbols, keywords := lang.Symbols, lang.Keywords
	if path != "" {
		var err error
		symbols, keywords, err = config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading language definition: %w", err)
		}
	}
	l, err := lang.New(symbols, keywords)
	if err != nil {
		return nil, fmt.Errorf("building language: %w", err)
	}
	return l, nil
}
