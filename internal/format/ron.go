package format

import (
	"bytes"
	"encoding"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

const ronIndent = "    "

var (
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	jsonMarshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
)

// marshalRON writes v as pretty RON. Structs become `(field: value,)` using
// their JSON field names so the decoder can map them back through
// encoding/json. Nil pointers, interfaces, slices and maps become None.
func marshalRON(v any) ([]byte, error) {
	e := &ronEncoder{}
	if err := e.encode(reflect.ValueOf(v), 0); err != nil {
		return nil, err
	}
	e.buf.WriteByte('\n')
	return e.buf.Bytes(), nil
}

type ronEncoder struct {
	buf bytes.Buffer
}

func (e *ronEncoder) newline(depth int) {
	e.buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		e.buf.WriteString(ronIndent)
	}
}

func (e *ronEncoder) encode(v reflect.Value, depth int) error {
	if !v.IsValid() {
		e.buf.WriteString("None")
		return nil
	}

	if handled, err := e.encodeMarshaler(v, depth); handled {
		return err
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			e.buf.WriteString("None")
			return nil
		}
		return e.encode(v.Elem(), depth)
	case reflect.Bool:
		e.buf.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		e.buf.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		return e.writeFloat(v.Float(), v.Type().Bits())
	case reflect.String:
		e.writeString(v.String())
	case reflect.Slice:
		if v.IsNil() {
			e.buf.WriteString("None")
			return nil
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			e.writeString(base64.StdEncoding.EncodeToString(v.Bytes()))
			return nil
		}
		return e.encodeList(v, depth)
	case reflect.Array:
		return e.encodeList(v, depth)
	case reflect.Map:
		if v.IsNil() {
			e.buf.WriteString("None")
			return nil
		}
		return e.encodeMap(v, depth)
	case reflect.Struct:
		return e.encodeStruct(v, depth)
	default:
		return fmt.Errorf("ron: unsupported type %s", v.Type())
	}
	return nil
}

// encodeMarshaler handles values that define their own text or JSON form.
// JSON marshalers are bridged through a generic decode.
func (e *ronEncoder) encodeMarshaler(v reflect.Value, depth int) (bool, error) {
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return false, nil
	}
	t := v.Type()
	if !t.Implements(textMarshalerType) && !t.Implements(jsonMarshalerType) {
		if v.CanAddr() && reflect.PointerTo(t).Implements(textMarshalerType) {
			v = v.Addr()
		} else {
			return false, nil
		}
	}
	if !v.CanInterface() {
		return false, nil
	}

	if m, ok := v.Interface().(encoding.TextMarshaler); ok {
		text, err := m.MarshalText()
		if err != nil {
			return true, err
		}
		e.writeString(string(text))
		return true, nil
	}

	raw, err := json.Marshal(v.Interface())
	if err != nil {
		return true, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return true, err
	}
	return true, e.encodeGeneric(generic, depth)
}

// encodeGeneric writes values produced by a UseNumber JSON decode.
func (e *ronEncoder) encodeGeneric(v any, depth int) error {
	if n, ok := v.(json.Number); ok {
		e.buf.WriteString(n.String())
		return nil
	}
	return e.encode(reflect.ValueOf(v), depth)
}

// writeFloat rejects NaN and infinities, which the decoder cannot read back.
func (e *ronEncoder) writeFloat(f float64, bits int) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("ron: unsupported value %s", strconv.FormatFloat(f, 'g', -1, bits))
	}
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	e.buf.WriteString(s)
	return nil
}

func (e *ronEncoder) writeString(s string) {
	e.buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			e.buf.WriteString(`\"`)
		case '\\':
			e.buf.WriteString(`\\`)
		case '\n':
			e.buf.WriteString(`\n`)
		case '\r':
			e.buf.WriteString(`\r`)
		case '\t':
			e.buf.WriteString(`\t`)
		case utf8.RuneError:
			e.buf.WriteString(`\u{fffd}`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&e.buf, `\u{%x}`, r)
				continue
			}
			e.buf.WriteRune(r)
		}
	}
	e.buf.WriteByte('"')
}

func (e *ronEncoder) encodeList(v reflect.Value, depth int) error {
	if v.Len() == 0 {
		e.buf.WriteString("[]")
		return nil
	}
	e.buf.WriteByte('[')
	for i := 0; i < v.Len(); i++ {
		e.newline(depth + 1)
		if err := e.encode(v.Index(i), depth+1); err != nil {
			return err
		}
		e.buf.WriteByte(',')
	}
	e.newline(depth)
	e.buf.WriteByte(']')
	return nil
}

type ronMapEntry struct {
	key   string
	value reflect.Value
}

func (e *ronEncoder) encodeMap(v reflect.Value, depth int) error {
	if v.Len() == 0 {
		e.buf.WriteString("{}")
		return nil
	}

	entries := make([]ronMapEntry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		key, err := e.mapKey(iter.Key())
		if err != nil {
			return err
		}
		entries = append(entries, ronMapEntry{key: key, value: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	e.buf.WriteByte('{')
	for _, entry := range entries {
		e.newline(depth + 1)
		e.buf.WriteString(entry.key)
		e.buf.WriteString(": ")
		if err := e.encode(entry.value, depth+1); err != nil {
			return err
		}
		e.buf.WriteByte(',')
	}
	e.newline(depth)
	e.buf.WriteByte('}')
	return nil
}

// mapKey renders a map key as RON source: strings quoted, numbers bare.
func (e *ronEncoder) mapKey(k reflect.Value) (string, error) {
	if k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	sub := &ronEncoder{}
	switch k.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if err := sub.encode(k, 0); err != nil {
			return "", err
		}
		return sub.buf.String(), nil
	}
	if k.Type().Implements(textMarshalerType) {
		if err := sub.encode(k, 0); err != nil {
			return "", err
		}
		return sub.buf.String(), nil
	}
	return "", fmt.Errorf("ron: unsupported map key type %s", k.Type())
}

func (e *ronEncoder) encodeStruct(v reflect.Value, depth int) error {
	fields := structFields(v)
	if len(fields) == 0 {
		e.buf.WriteString("()")
		return nil
	}
	e.buf.WriteByte('(')
	for _, f := range fields {
		e.newline(depth + 1)
		e.buf.WriteString(f.name)
		e.buf.WriteString(": ")
		if err := e.encode(f.value, depth+1); err != nil {
			return err
		}
		e.buf.WriteByte(',')
	}
	e.newline(depth)
	e.buf.WriteByte(')')
	return nil
}

type ronField struct {
	name  string
	value reflect.Value
}

// structFields lists the fields encoding/json would emit, in declaration
// order, flattening untagged embedded structs.
func structFields(v reflect.Value) []ronField {
	var fields []ronField
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		fv := v.Field(i)

		if sf.Anonymous && name == "" {
			inner := fv
			if inner.Kind() == reflect.Pointer {
				if inner.IsNil() {
					continue
				}
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				fields = append(fields, structFields(inner)...)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		if strings.Contains(","+opts+",", ",omitempty,") && isEmptyValue(fv) {
			continue
		}
		fields = append(fields, ronField{name: name, value: fv})
	}
	return fields
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
