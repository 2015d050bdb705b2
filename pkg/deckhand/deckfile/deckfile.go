// Package deckfile reads deck definitions from TOML or YAML files.
//
// A deck file lists slides in order. Each slide may carry cards, which
// slide in one after another, and counters, which count up from zero:
//
//	title = "Quarterly review"
//	locale = "en-US"
//
//	[[slides]]
//	title = "Traction"
//
//	  [[slides.cards]]
//	  heading = "Users"
//	  body = "Monthly actives across all regions"
//
//	  [[slides.counters]]
//	  target = 2500000
//	  prefix = "$"
//	  suffix = "M"
//
// Counter targets may be numbers or strings. Strings are read up to the
// first non-digit, and a target that can't be read is 0, which shows the
// counter without counting.
package deckfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand"
)

// Format is a deck file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFor picks a format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("deckfile: unsupported extension %q", filepath.Ext(path))
	}
}

type file struct {
	Title  string  `toml:"title" yaml:"title"`
	Locale string  `toml:"locale" yaml:"locale"`
	Slides []slide `toml:"slides" yaml:"slides"`
}

type slide struct {
	Title    string    `toml:"title" yaml:"title"`
	Cards    []card    `toml:"cards" yaml:"cards"`
	Counters []counter `toml:"counters" yaml:"counters"`
}

type card struct {
	Heading string `toml:"heading" yaml:"heading"`
	Body    string `toml:"body" yaml:"body"`
}

type counter struct {
	Target Target `toml:"target" yaml:"target"`
	Prefix string `toml:"prefix" yaml:"prefix"`
	Suffix string `toml:"suffix" yaml:"suffix"`
	Label  string `toml:"label" yaml:"label"`
}

// Load reads and decodes the deck file at path.
func Load(path string) (deckhand.Deck, error) {
	format, err := FormatFor(path)
	if err != nil {
		return deckhand.Deck{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return deckhand.Deck{}, fmt.Errorf("deckfile: read %s: %w", path, err)
	}

	deck, err := Parse(data, format)
	if err != nil {
		return deckhand.Deck{}, fmt.Errorf("deckfile: %s: %w", path, err)
	}
	return deck, nil
}

// Parse decodes a deck from data.
func Parse(data []byte, format Format) (deckhand.Deck, error) {
	var f file

	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
			return deckhand.Deck{}, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return deckhand.Deck{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return deckhand.Deck{}, fmt.Errorf("unknown format %d", format)
	}

	if len(f.Slides) == 0 {
		return deckhand.Deck{}, deckhand.ErrEmptyDeck
	}

	return f.deck(), nil
}

func (f file) deck() deckhand.Deck {
	deck := deckhand.Deck{
		Title:  f.Title,
		Locale: f.Locale,
		Slides: make([]deckhand.Slide, 0, len(f.Slides)),
	}

	for _, s := range f.Slides {
		out := deckhand.Slide{Title: s.Title}
		for _, c := range s.Cards {
			out.Cards = append(out.Cards, deckhand.RevealItem{Heading: c.Heading, Body: c.Body})
		}
		for _, c := range s.Counters {
			out.Counters = append(out.Counters, deckhand.CounterItem{
				Target: int(c.Target),
				Prefix: c.Prefix,
				Suffix: c.Suffix,
				Label:  c.Label,
			})
		}
		deck.Slides = append(deck.Slides, out)
	}

	return deck
}
