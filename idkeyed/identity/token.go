package identity

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Token identifies one specific object instance for as long as that
// instance stays alive. Tokens of two live objects compare equal iff
// both were derived from the same instance; objects that are equal by
// value but were allocated separately yield distinct tokens.
//
// The dynamic type is part of the token because distinct objects may
// legitimately share a storage address: a struct and its first field,
// or nil pointers of unrelated pointer types.
type Token struct {
	typ  reflect.Type
	addr uintptr
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%v@%#x", t.typ, t.addr)
}

// TokenOf derives the identity token of v.
//
// Only reference kinds carry identity: pointers, maps, channels,
// functions, slices and strings. For strings the token is the address
// of the backing byte array, so two separately built strings with
// equal contents are distinct keys, while the compiler may hand out
// the same backing array for equal constants. Value kinds (numbers,
// booleans, structs, arrays) are copied on every call and therefore
// have no stable identity; TokenOf panics for them, the same way the
// built-in map panics on an uncomparable key.
//
// The address inside a token is only unique among live objects. The
// caller must retain the object for as long as the token is used as a
// key; Registry does exactly that.
func TokenOf(v any) Token {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return Token{typ: rv.Type(), addr: rv.Pointer()}
	case reflect.String:
		s := rv.String()
		return Token{typ: rv.Type(), addr: uintptr(unsafe.Pointer(unsafe.StringData(s)))}
	default:
		if !rv.IsValid() {
			panic("identity: untyped nil has no identity")
		}
		panic(fmt.Sprintf("identity: %s values have no identity, key by a reference type instead", rv.Kind()))
	}
}

// CanIdentify reports whether TokenOf accepts v.
func CanIdentify(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Slice, reflect.String:
		return true
	default:
		return false
	}
}
