// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package common holds code shared by the generated API command line tools:
// building request bodies from key=value arguments, JSON output handling and
// typo suggestions for field and method names.
package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dermesser/google-apis-go/common/errors"
)

// JSONType describes the JSON type a request field expects.
type JSONType int

const (
	// TypeString is a JSON string field.
	TypeString JSONType = iota
	// TypeInt is a JSON integer field.
	TypeInt
	// TypeFloat is a JSON number field.
	TypeFloat
	// TypeBool is a JSON boolean field.
	TypeBool
)

func (t JSONType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "integer"
	case TypeFloat:
		return "number"
	case TypeBool:
		return "boolean"
	}
	return "unknown"
}

// FieldDesc describes one settable field of a request message: its full
// dotted path, its JSON type and whether it repeats.
type FieldDesc struct {
	Path     string
	Type     JSONType
	Repeated bool
}

// FieldCursor assembles a JSON object tree from a sequence of key=value
// arguments with dotted field paths.
//
// The cursor remembers the object it pointed at last: a path starting with
// one or more dots pops that many levels before descending, so that sibling
// fields of a deeply nested message don't need the full path repeated:
//
//	vulnerability.severity=HIGH
//	.cvssScore=7.5
//
// sets both fields of the "vulnerability" sub-object.
type FieldCursor struct {
	root map[string]any
	path []string
}

// NewFieldCursor returns a cursor positioned at the root of an empty object.
func NewFieldCursor() *FieldCursor {
	return &FieldCursor{root: map[string]any{}}
}

// Object returns the assembled object tree.
func (fc *FieldCursor) Object() map[string]any {
	return fc.root
}

// resolve turns a possibly dot-prefixed path into an absolute field path
// relative to the cursor, and moves the cursor to the field's parent.
func (fc *FieldCursor) resolve(path string) ([]string, error) {
	pops := 0
	for pops < len(path) && path[pops] == '.' {
		pops++
	}
	rel := path[pops:]
	if rel == "" {
		return nil, errors.New(fmt.Sprintf("invalid field path %q", path))
	}

	base := fc.path
	if pops > 0 {
		// One dot means "sibling of the previous field", i.e. stay at the
		// current cursor. Each additional dot pops one more level.
		if pops-1 > len(base) {
			return nil, errors.New(fmt.Sprintf("field path %q pops above the root", path))
		}
		base = base[:len(base)-(pops-1)]
	} else {
		base = nil
	}

	abs := append(append([]string(nil), base...), strings.Split(rel, ".")...)
	fc.path = abs[:len(abs)-1]
	return abs, nil
}

// Set parses value according to the field description and stores it at the
// given path, creating intermediate objects as needed.
func (fc *FieldCursor) Set(path, value string, desc FieldDesc) error {
	abs, err := fc.resolve(path)
	if err != nil {
		return err
	}

	parsed, err := parseValue(value, desc.Type)
	if err != nil {
		return errors.New(fmt.Sprintf("field %q: %s", strings.Join(abs, "."), err))
	}

	node := fc.root
	for _, seg := range abs[:len(abs)-1] {
		child, ok := node[seg]
		if !ok {
			m := map[string]any{}
			node[seg] = m
			node = m
			continue
		}
		m, ok := child.(map[string]any)
		if !ok {
			return errors.New(fmt.Sprintf("field %q is not an object", seg))
		}
		node = m
	}

	leaf := abs[len(abs)-1]
	if desc.Repeated {
		list, _ := node[leaf].([]any)
		node[leaf] = append(list, parsed)
		return nil
	}
	if _, dup := node[leaf]; dup {
		return errors.New(fmt.Sprintf("field %q was already set", strings.Join(abs, ".")))
	}
	node[leaf] = parsed
	return nil
}

// SetKV resolves the (possibly relative) path, validates it against the
// field table and stores the value. Unknown fields produce an error with a
// typo suggestion.
func (fc *FieldCursor) SetKV(path, value string, fields map[string]FieldDesc) error {
	abs, err := fc.resolve(path)
	if err != nil {
		return err
	}
	full := strings.Join(abs, ".")
	desc, ok := fields[full]
	if !ok {
		known := make([]string, 0, len(fields))
		for name := range fields {
			known = append(known, name)
		}
		return errors.New(UnknownName("field", full, known))
	}
	// The cursor already moved; pass the absolute path so Set doesn't resolve
	// it relative to the new position again.
	fc.path = nil
	return fc.Set(full, value, desc)
}

func parseValue(value string, t JSONType) (any, error) {
	switch t {
	case TypeString:
		return value, nil
	case TypeInt:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", value)
		}
		return v, nil
	case TypeFloat:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", value)
		}
		return v, nil
	case TypeBool:
		switch strings.ToLower(value) {
		case "true", "yes", "1":
			return true, nil
		case "false", "no", "0":
			return false, nil
		}
		return nil, fmt.Errorf("%q is not a boolean", value)
	}
	return nil, fmt.Errorf("unsupported field type")
}

// ParseKV splits a "key=value" argument. The value may contain '='.
func ParseKV(arg string) (key, value string, err error) {
	i := strings.IndexByte(arg, '=')
	if i <= 0 {
		return "", "", errors.New(fmt.Sprintf("expected key=value, got %q", arg))
	}
	return arg[:i], arg[i+1:], nil
}
