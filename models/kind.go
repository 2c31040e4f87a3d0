// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
)

// ObjectKind is the "objects_to_sync" identifier selected by the caller:
// a content type name ("post", "page", "shop_order", any custom type) or one
// of the special kinds "attachment", "comment" and "user".
type ObjectKind string

// Well-known object kinds.
const (
	KindPost       ObjectKind = "post"
	KindPage       ObjectKind = "page"
	KindAttachment ObjectKind = "attachment"
	KindComment    ObjectKind = "comment"
	KindUser       ObjectKind = "user"
	KindOrder      ObjectKind = "shop_order"
)

// KindClass is the closed set of object categories. Every ObjectKind maps to
// exactly one class, and the class decides which fetch query, transformer and
// remote endpoint apply.
type KindClass int

const (
	// ClassContent covers every content type not listed below.
	ClassContent KindClass = iota
	// ClassAttachment covers media library entries.
	ClassAttachment
	// ClassComment covers comments.
	ClassComment
	// ClassUser covers registered users.
	ClassUser
	// ClassOrder covers e-commerce orders. Orders are content objects that
	// additionally carry their line items.
	ClassOrder
)

// String returns a short name of the class, used as a metrics label.
func (c KindClass) String() string {
	switch c {
	case ClassAttachment:
		return "attachment"
	case ClassComment:
		return "comment"
	case ClassUser:
		return "user"
	case ClassOrder:
		return "order"
	default:
		return "content"
	}
}

// ParseObjectKind normalises a raw identifier. An empty identifier is invalid.
func ParseObjectKind(raw string) (ObjectKind, bool) {
	kind := ObjectKind(strings.TrimSpace(raw))
	if kind == "" {
		return "", false
	}

	return kind, true
}

// Class resolves the category of k.
func (k ObjectKind) Class() KindClass {
	switch k {
	case KindAttachment:
		return ClassAttachment
	case KindComment:
		return ClassComment
	case KindUser:
		return ClassUser
	case KindOrder:
		return ClassOrder
	default:
		return ClassContent
	}
}

// IsContent reports whether objects of kind k live in the posts table.
func (k ObjectKind) IsContent() bool {
	switch k.Class() {
	case ClassContent, ClassOrder, ClassAttachment:
		return true
	default:
		return false
	}
}

// EndpointPath returns the remote ingest sub-path for k. Every kind that is
// not an attachment, comment or user is sent to the generic "post" endpoint.
func (k ObjectKind) EndpointPath() string {
	switch k.Class() {
	case ClassAttachment:
		return "attachment"
	case ClassComment:
		return "comment"
	case ClassUser:
		return "user"
	default:
		return "post"
	}
}

// contentTypeLabels holds the plural labels of the content types registered
// by core and the shop plugin.
var contentTypeLabels = map[ObjectKind]string{
	KindPost:              "Posts",
	KindPage:              "Pages",
	KindOrder:             "Orders",
	"product":             "Products",
	"product_variation":   "Variations",
	"shop_coupon":         "Coupons",
	"nav_menu_item":       "Navigation Menu Items",
	"wp_block":            "Reusable blocks",
	"revision":            "Revisions",
	"customize_changeset": "Changesets",
}

// Label returns the human-readable plural label of k. Attachments, comments
// and users are labelled by capitalising the kind and appending "s"; unknown
// content types fall back to the raw identifier.
func (k ObjectKind) Label() string {
	switch k.Class() {
	case ClassAttachment, ClassComment, ClassUser:
		s := string(k)
		return strings.ToUpper(s[:1]) + s[1:] + "s"
	}

	if label, ok := contentTypeLabels[k]; ok {
		return label
	}

	return string(k)
}
