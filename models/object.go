// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// PageSize is the fixed number of objects fetched and sent per page call,
// for every object kind.
const PageSize = 10

// Provenance meta keys injected into every transformed object so that the
// receiving installation can recognise a re-sync of the same source row.
const (
	MetaSource    = "press_sync_source"
	MetaPostID    = "press_sync_post_id"
	MetaUserID    = "press_sync_user_id"
	MetaCommentID = "press_sync_comment_id"
	MetaGMTOffset = "press_sync_gmt_offset"
)

// Wire field names shared by the fetcher, the transformers and the remote
// endpoint.
const (
	FieldID             = "ID"
	FieldPostType       = "post_type"
	FieldPostContent    = "post_content"
	FieldCommentCount   = "comment_count"
	FieldGUID           = "guid"
	FieldUserPass       = "user_pass"
	FieldRole           = "role"
	FieldMetaInput      = "meta_input"
	FieldTaxInput       = "tax_input"
	FieldFeaturedImage  = "featured_image"
	FieldAttachmentURL  = "attachment_url"
	FieldComments       = "comments"
	FieldP2PConnections = "p2p_connections"
)

// Fields is a source-native row: column name to value. Values are the driver
// values with byte slices already converted to strings.
type Fields map[string]any

// Clone returns a deep copy of f. Nested Fields, maps and slices are copied
// so that the clone can be modified without touching f.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}

	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = cloneValue(v)
	}

	return out
}

// String returns the value stored under key formatted as a string. Missing
// and nil values yield "".
func (f Fields) String(key string) string {
	return ValueString(f[key])
}

// Int64 returns the value stored under key as an integer. Values that cannot
// be interpreted as an integer yield 0.
func (f Fields) Int64(key string) int64 {
	return ValueInt64(f[key])
}

// RawObject is one entity as read from the source database, plus its meta
// annotations and, for content objects, the names of its assigned terms.
type RawObject struct {
	Kind   ObjectKind
	Fields Fields

	// Meta holds key/value annotations. Post meta keeps every stored value of
	// a key as []string until transform time; user meta is already flattened.
	Meta map[string]any

	// TaxonomyTerms maps a taxonomy name to the ordered names of the terms
	// assigned to the object.
	TaxonomyTerms map[string][]string
}

// ID returns the native numeric identifier of the object, or 0 if it was
// removed (users) or is absent.
func (r RawObject) ID() int64 {
	if r.Kind.Class() == ClassComment {
		return r.Fields.Int64("comment_ID")
	}

	return r.Fields.Int64(FieldID)
}

// TransformedObject is the wire-ready representation sent to the remote
// endpoint. Its shape depends on the object kind.
type TransformedObject map[string]any

// Meta returns the meta_input map of o, creating it when absent.
func (o TransformedObject) Meta() map[string]any {
	if meta, ok := o[FieldMetaInput].(map[string]any); ok {
		return meta
	}

	meta := make(map[string]any)
	o[FieldMetaInput] = meta
	return meta
}

// ValueString formats a scalar driver value as a string.
func ValueString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case []byte:
		return string(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		if value {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprint(value)
	}
}

// ValueInt64 interprets a scalar driver value as an integer.
func ValueInt64(v any) int64 {
	switch value := v.(type) {
	case int64:
		return value
	case int:
		return int64(value)
	case int32:
		return int64(value)
	case uint64:
		return int64(value)
	case float64:
		return int64(value)
	case []byte:
		n, _ := strconv.ParseInt(strings.TrimSpace(string(value)), 10, 64)
		return n
	case string:
		n, _ := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		return n
	default:
		return 0
	}
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case Fields:
		return value.Clone()
	case TransformedObject:
		return TransformedObject(Fields(value).Clone())
	case map[string]any:
		return map[string]any(Fields(value).Clone())
	case map[string][]string:
		out := make(map[string][]string, len(value))
		for k, list := range value {
			out[k] = append([]string(nil), list...)
		}
		return out
	case []string:
		return append([]string(nil), value...)
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = cloneValue(item)
		}
		return out
	case []Fields:
		out := make([]Fields, len(value))
		for i, item := range value {
			out[i] = item.Clone()
		}
		return out
	case []TransformedObject:
		out := make([]TransformedObject, len(value))
		for i, item := range value {
			out[i] = TransformedObject(Fields(item).Clone())
		}
		return out
	case []byte:
		return string(value)
	default:
		return value
	}
}
