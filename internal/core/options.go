package core

import (
	"iter"
	"strings"

	"geoio/internal/types"
)

// Options is an insertion-ordered string map. Overwriting a key replaces
// its value but keeps its original position.
type Options struct {
	keys   []string
	values map[string]string
}

func NewOptions() *Options {
	return &Options{values: map[string]string{}}
}

func (o *Options) Set(key string, value string) {
	if o.values == nil {
		o.values = map[string]string{}
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (o *Options) SetBool(key string, value bool) {
	if value {
		o.Set(key, "true")
		return
	}
	o.Set(key, "false")
}

// SetString parses "key=value" (split on the first "=") or a bare "key",
// which stores "true". Input with an empty key is ignored.
func (o *Options) SetString(data string) {
	key, value, found := strings.Cut(data, "=")
	if key == "" {
		return
	}
	if !found {
		o.SetBool(key, true)
		return
	}
	o.Set(key, value)
}

// Get returns the value stored for key. The boolean is false when the key
// was never set, which callers can tell apart from an empty value.
func (o *Options) Get(key string) (string, bool) {
	if o == nil {
		return "", false
	}
	value, ok := o.values[key]
	return value, ok
}

func (o *Options) GetOr(key string, fallback string) string {
	if value, ok := o.Get(key); ok {
		return value
	}
	return fallback
}

func (o *Options) IsTrue(key string) bool {
	value, _ := o.Get(key)
	return value == "true" || value == "yes"
}

func (o *Options) IsFalse(key string) bool {
	value, _ := o.Get(key)
	return value == "false" || value == "no"
}

// IsNotFalse reports true for absent keys.
func (o *Options) IsNotFalse(key string) bool {
	return !o.IsFalse(key)
}

func (o *Options) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

func (o *Options) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// All yields key/value pairs in insertion order.
func (o *Options) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if o == nil {
			return
		}
		for _, key := range o.keys {
			if !yield(key, o.values[key]) {
				return
			}
		}
	}
}

func (o *Options) Entries() []types.OptionEntry {
	if o.Len() == 0 {
		return nil
	}
	entries := make([]types.OptionEntry, 0, len(o.keys))
	for key, value := range o.All() {
		entries = append(entries, types.OptionEntry{Key: key, Value: value})
	}
	return entries
}

func (o *Options) Clone() *Options {
	clone := NewOptions()
	for key, value := range o.All() {
		clone.Set(key, value)
	}
	return clone
}
