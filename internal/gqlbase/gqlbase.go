// Package gqlbase holds the runtime types embedded by generated GraphQL code.
//
// Generated result types embed GQLResult, generated inputs embed GQLInput, and
// every fragments package registers its types from an init function with
// Rebuild so tag errors surface at program start instead of on first decode.
package gqlbase

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/structtag"
)

// GQLResult is embedded by every type decoded from a GraphQL response.
type GQLResult struct{}

// GQLInput is embedded by every type sent as a GraphQL input variable.
type GQLInput struct{}

// GQLId is the Go type mapped to the GraphQL ID scalar before the codegen
// pass rewrites ID fields to plain strings.
type GQLId = string

// Typename holds the value of a __typename field.
type Typename string

func (t Typename) String() string { return string(t) }

// Recognized options of the `gql` struct tag.
const (
	OptID     = "id"
	OptFrozen = "frozen"
	OptNoRepr = "norepr"
)

type fieldMeta struct {
	name   string
	index  int
	key    string
	frozen bool
	norepr bool
}

type model struct {
	typ      reflect.Type
	typename string
	fields   []fieldMeta
}

var (
	mu       sync.RWMutex
	registry = make(map[reflect.Type]*model)
)

// Rebuild inspects T and caches its field metadata. It panics on malformed
// struct tags, so generated packages call it from init.
func Rebuild[T any]() {
	t := reflect.TypeFor[T]()
	m, err := inspect(t)
	if err != nil {
		panic(fmt.Sprintf("gqlbase: rebuild %s: %v", t.Name(), err))
	}
	mu.Lock()
	registry[t] = m
	mu.Unlock()
}

// Registered reports the names of all rebuilt types, sorted.
func Registered() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for t := range registry {
		names = append(names, t.Name())
	}
	sort.Strings(names)
	return names
}

// TypenameOf returns the __typename literal pinned on T by its validate tag,
// or "" when T does not pin one.
func TypenameOf[T any]() string {
	m, err := lookup(reflect.TypeFor[T]())
	if err != nil {
		return ""
	}
	return m.typename
}

func lookup(t reflect.Type) (*model, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	mu.RLock()
	m, ok := registry[t]
	mu.RUnlock()
	if ok {
		return m, nil
	}
	m, err := inspect(t)
	if err != nil {
		return nil, err
	}
	mu.Lock()
	registry[t] = m
	mu.Unlock()
	return m, nil
}

func inspect(t reflect.Type) (*model, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s is not a struct", t)
	}
	m := &model{typ: t}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous || !f.IsExported() {
			continue
		}
		tags, err := structtag.Parse(string(f.Tag))
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		meta := fieldMeta{name: f.Name, index: i, key: f.Name}
		if js, err := tags.Get("json"); err == nil && js.Name != "" && js.Name != "-" {
			meta.key = js.Name
		}
		if g, err := tags.Get("gql"); err == nil {
			for _, opt := range append([]string{g.Name}, g.Options...) {
				switch opt {
				case OptID, "":
				case OptFrozen:
					meta.frozen = true
				case OptNoRepr:
					meta.norepr = true
				default:
					return nil, fmt.Errorf("field %s: unknown gql option %q", f.Name, opt)
				}
			}
		}
		if meta.key == "__typename" {
			if v, err := tags.Get("validate"); err == nil {
				m.typename = pinnedTypename(v.Value())
			}
		}
		m.fields = append(m.fields, meta)
	}
	return m, nil
}

func pinnedTypename(rule string) string {
	for _, part := range strings.Split(rule, ",") {
		if after, ok := strings.CutPrefix(part, "eq="); ok {
			return after
		}
	}
	return ""
}

// Decode unmarshals data into a new T and validates it.
func Decode[T any](data []byte) (*T, error) {
	out := new(T)
	if err := json.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", reflect.TypeFor[T]().Name(), err)
	}
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Repr renders v as Name{key: value, ...}, skipping fields tagged norepr and
// nil pointers.
func Repr(v any) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "<nil>"
		}
		rv = rv.Elem()
	}
	m, err := lookup(rv.Type())
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	var b strings.Builder
	b.WriteString(m.typ.Name())
	b.WriteByte('{')
	first := true
	for _, f := range m.fields {
		if f.norepr {
			continue
		}
		fv := rv.Field(f.index)
		if fv.Kind() == reflect.Pointer && fv.IsNil() {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		if fv.Kind() == reflect.Pointer {
			fv = fv.Elem()
		}
		fmt.Fprintf(&b, "%s: %#v", f.key, fv.Interface())
	}
	b.WriteByte('}')
	return b.String()
}
