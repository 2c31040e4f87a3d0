// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/url"
	"sort"
	"strconv"

	"github.com/MKhiriev/go-press-sync/models"
)

// EncodeForm flattens obj into bracketed form fields as parsed by the
// receiving endpoint: nested maps become key[sub], lists become key[0],
// key[1]. Nil values and empty containers produce no field.
func EncodeForm(obj models.TransformedObject) url.Values {
	values := url.Values{}
	for _, key := range sortedKeys(obj) {
		encodeFormValue(values, key, obj[key])
	}

	return values
}

func encodeFormValue(values url.Values, key string, value any) {
	switch v := value.(type) {
	case nil:
	case models.TransformedObject:
		encodeFormMap(values, key, v)
	case models.Fields:
		encodeFormMap(values, key, v)
	case map[string]any:
		encodeFormMap(values, key, v)
	case map[string][]string:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			for i, item := range v[k] {
				values.Add(key+"["+k+"]["+strconv.Itoa(i)+"]", item)
			}
		}
	case []string:
		for i, item := range v {
			values.Add(indexKey(key, i), item)
		}
	case []any:
		for i, item := range v {
			encodeFormValue(values, indexKey(key, i), item)
		}
	case []models.Fields:
		for i, item := range v {
			encodeFormMap(values, indexKey(key, i), item)
		}
	case []models.TransformedObject:
		for i, item := range v {
			encodeFormMap(values, indexKey(key, i), item)
		}
	default:
		values.Add(key, models.ValueString(v))
	}
}

func encodeFormMap[M ~map[string]any](values url.Values, prefix string, m M) {
	for _, k := range sortedKeys(m) {
		encodeFormValue(values, prefix+"["+k+"]", m[k])
	}
}

func indexKey(key string, i int) string {
	return key + "[" + strconv.Itoa(i) + "]"
}

func sortedKeys[M ~map[string]any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
