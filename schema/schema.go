// Package schema implements the Serialize/Deserialize component of
// spec.md §4.7: a reflect-based bridge between Go structs and Syrup
// values, so application code can work with typed structs rather than
// value.Value directly. A struct serializes to a Record; field order
// follows struct-field declaration order, since a Record's fields are
// positional and carry no names on the wire. A `syrup:"-"` struct tag
// skips the field entirely.
package schema

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/ocapn/syrup/errs"
	"github.com/ocapn/syrup/internal/options"
	"github.com/ocapn/syrup/value"
)

// config holds a Serialize/Deserialize call's resolved options.
type config struct {
	fieldTag string
}

// Option configures Serialize and Deserialize.
type Option = options.Option[*config]

// defaultFieldTag is the struct tag key consulted when no WithFieldTag
// option is given.
const defaultFieldTag = "syrup"

// WithFieldTag overrides the struct tag key Serialize and Deserialize
// consult for the "-" skip marker, in place of the default "syrup" tag.
// Use this when a struct's fields are already tagged for another codec
// and should not also carry a second "syrup" tag.
func WithFieldTag(tag string) Option {
	return options.NoError[*config](func(c *config) { c.fieldTag = tag })
}

func resolve(opts []Option) (*config, error) {
	c := &config{fieldTag: defaultFieldTag}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Serialize converts v, a struct, map, slice, or one of the Go types with
// a direct Syrup counterpart, into a value.Value.
//
//   - struct       -> Record, labeled with the struct's type name, fields
//     in declaration order (skipping "-"-tagged fields)
//   - map[string]X -> Dictionary, keys as Symbol
//   - []byte       -> Bytes (special-cased ahead of the general slice rule)
//   - slice/array  -> List
//   - pointer      -> the pointee's encoding, or value.Null() if nil
//   - bool, string, integer kinds, float32/64 -> the matching Value kind
//
// By default, a field tagged `syrup:"-"` is skipped; WithFieldTag
// overrides the tag key consulted.
func Serialize(v any, opts ...Option) (value.Value, error) {
	c, err := resolve(opts)
	if err != nil {
		return value.Value{}, err
	}

	return serializeValue(reflect.ValueOf(v), c)
}

func serializeValue(rv reflect.Value, c *config) (value.Value, error) {
	if !rv.IsValid() {
		return value.Null(), nil
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return value.Null(), nil
		}

		return serializeValue(rv.Elem(), c)
	case reflect.Bool:
		return value.NewBool(rv.Bool()), nil
	case reflect.String:
		return value.NewString(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.NewInteger(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > 1<<63-1 {
			return value.Value{}, fmt.Errorf("%w: uint64 value %d exceeds int64 range", errs.ErrOverflowInteger, u)
		}

		return value.NewInteger(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return value.NewFloat(rv.Float()), nil
	case reflect.Slice, reflect.Array:
		return serializeSequence(rv, c)
	case reflect.Map:
		return serializeMap(rv, c)
	case reflect.Struct:
		return serializeStruct(rv, c)
	default:
		return value.Value{}, fmt.Errorf("%w: unsupported go kind %s", errs.ErrSchemaMismatch, rv.Kind())
	}
}

func serializeSequence(rv reflect.Value, c *config) (value.Value, error) {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		b := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(b), rv)

		return value.NewBytes(b), nil
	}

	elems := make([]value.Value, rv.Len())
	for i := range elems {
		e, err := serializeValue(rv.Index(i), c)
		if err != nil {
			return value.Value{}, err
		}
		elems[i] = e
	}

	return value.NewList(elems), nil
}

func serializeMap(rv reflect.Value, c *config) (value.Value, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return value.Value{}, fmt.Errorf("%w: map key must be string, got %s", errs.ErrSchemaMismatch, rv.Type().Key())
	}

	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	entries := make([]value.DictEntry, len(keys))
	for i, k := range keys {
		val, err := serializeValue(rv.MapIndex(k), c)
		if err != nil {
			return value.Value{}, err
		}
		entries[i] = value.DictEntry{Key: value.NewSymbol(k.String()), Val: val}
	}

	return value.NewDictionary(entries)
}

func serializeStruct(rv reflect.Value, c *config) (value.Value, error) {
	rt := rv.Type()
	fields := make([]value.Value, 0, rt.NumField())

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if skipField(sf, c) {
			continue
		}

		f, err := serializeValue(rv.Field(i), c)
		if err != nil {
			return value.Value{}, fmt.Errorf("field %s: %w", sf.Name, err)
		}
		fields = append(fields, f)
	}

	return value.NewRecord(value.NewSymbol(rt.Name()), fields), nil
}

// skipField reports whether sf is tagged "-" under c's field tag key.
func skipField(sf reflect.StructField, c *config) bool {
	tag, ok := sf.Tag.Lookup(c.fieldTag)

	return ok && tag == "-"
}

// Deserialize populates out, a non-nil pointer, from v. out's concrete
// type determines how v is interpreted, mirroring Serialize's rules in
// reverse, except that array and interface targets are not supported and
// fail with errs.ErrSchemaMismatch, although Serialize accepts both. By
// default, a field tagged `syrup:"-"` is skipped; WithFieldTag overrides
// the tag key consulted.
func Deserialize(v value.Value, out any, opts ...Option) error {
	c, err := resolve(opts)
	if err != nil {
		return err
	}

	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: Deserialize requires a non-nil pointer, got %T", errs.ErrSchemaMismatch, out)
	}

	return deserializeValue(v, rv.Elem(), c)
}

func deserializeValue(v value.Value, rv reflect.Value, c *config) error {
	switch rv.Kind() {
	case reflect.Ptr:
		if isNullValue(v) {
			rv.Set(reflect.Zero(rv.Type()))

			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}

		return deserializeValue(v, rv.Elem(), c)
	case reflect.Bool:
		b, ok := v.Bool()
		if !ok {
			return mismatch(v, "boolean")
		}
		rv.SetBool(b)

		return nil
	case reflect.String:
		s, ok := v.Text()
		if !ok {
			return mismatch(v, "string or symbol")
		}
		rv.SetString(s)

		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := v.Int64()
		if !ok {
			return mismatch(v, "integer")
		}
		rv.SetInt(n)

		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := v.Int64()
		if !ok || n < 0 {
			return mismatch(v, "non-negative integer")
		}
		rv.SetUint(uint64(n))

		return nil
	case reflect.Float32, reflect.Float64:
		f, ok := v.Float64()
		if !ok {
			return mismatch(v, "float")
		}
		rv.SetFloat(f)

		return nil
	case reflect.Slice:
		return deserializeSlice(v, rv, c)
	case reflect.Map:
		return deserializeMap(v, rv, c)
	case reflect.Struct:
		return deserializeStruct(v, rv, c)
	default:
		return fmt.Errorf("%w: unsupported go kind %s", errs.ErrSchemaMismatch, rv.Kind())
	}
}

func deserializeSlice(v value.Value, rv reflect.Value, c *config) error {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		b, ok := v.Bytes()
		if !ok {
			return mismatch(v, "bytes")
		}
		rv.SetBytes(append([]byte(nil), b...))

		return nil
	}

	elems, ok := v.Elements()
	if !ok {
		return mismatch(v, "list")
	}

	out := reflect.MakeSlice(rv.Type(), len(elems), len(elems))
	for i, e := range elems {
		if err := deserializeValue(e, out.Index(i), c); err != nil {
			return err
		}
	}
	rv.Set(out)

	return nil
}

func deserializeMap(v value.Value, rv reflect.Value, c *config) error {
	entries, ok := v.Entries()
	if !ok {
		return mismatch(v, "dictionary")
	}

	out := reflect.MakeMapWithSize(rv.Type(), len(entries))
	for _, e := range entries {
		key, ok := e.Key.Text()
		if !ok {
			return fmt.Errorf("%w: dictionary key is not string-like", errs.ErrSchemaMismatch)
		}

		elem := reflect.New(rv.Type().Elem()).Elem()
		if err := deserializeValue(e.Val, elem, c); err != nil {
			return err
		}
		out.SetMapIndex(reflect.ValueOf(key), elem)
	}
	rv.Set(out)

	return nil
}

func deserializeStruct(v value.Value, rv reflect.Value, c *config) error {
	fields, ok := v.Elements()
	if !ok {
		return mismatch(v, "record")
	}

	rt := rv.Type()
	idx := 0
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if skipField(sf, c) {
			continue
		}
		if idx >= len(fields) {
			return fmt.Errorf("%w: record has %d fields, struct %s needs more", errs.ErrSchemaMismatch, len(fields), rt.Name())
		}

		if err := deserializeValue(fields[idx], rv.Field(i), c); err != nil {
			return fmt.Errorf("field %s: %w", sf.Name, err)
		}
		idx++
	}

	return nil
}

func mismatch(v value.Value, want string) error {
	return fmt.Errorf("%w: expected %s, got %s", errs.ErrSchemaMismatch, want, v.Kind())
}

// isNullValue reports whether v is the Null record sugar, `<"null">`.
func isNullValue(v value.Value) bool {
	if v.Kind() != value.KindRecord {
		return false
	}
	label, ok := v.Label()
	if !ok {
		return false
	}
	s, ok := label.Text()

	return ok && s == "null"
}
