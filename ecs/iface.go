package ecs

import (
	"reflect"
	"unsafe"
)

// iface represents the internal memory layout of an interface{}.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// typeKey is the stable per-type key used to index component maps.
type typeKey uint64

// keyOf returns the key of a runtime type. reflect.Type values are backed by
// a single descriptor per type, so the data pointer is unique per type.
func keyOf(t reflect.Type) typeKey {
	return typeKey(uintptr((*iface)(unsafe.Pointer(&t)).data))
}

func keyFor[T any]() typeKey {
	return keyOf(reflect.TypeFor[T]())
}

// dataPointer extracts the pointer stored in an interface holding a *T.
func dataPointer(v any) unsafe.Pointer {
	return (*iface)(unsafe.Pointer(&v)).data
}
