package debugui

import (
	"reflect"
	"sync"
)

type fieldInfo struct {
	name      string
	index     int
	isPointer bool
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

// fieldsOf returns the exported fields of struct type t.
func fieldsOf(t reflect.Type) []fieldInfo {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]fieldInfo)
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fields = append(fields, fieldInfo{
				name:      field.Name,
				index:     i,
				isPointer: field.Type.Kind() == reflect.Ptr,
			})
		}
	}

	cached, _ := fieldCache.LoadOrStore(t, fields)
	return cached.([]fieldInfo)
}
