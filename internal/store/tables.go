// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Tables resolves the prefixed names of the source tables.
type Tables struct {
	prefix string
}

// NewTables returns the table names for prefix (e.g. "wp_").
func NewTables(prefix string) Tables {
	return Tables{prefix: prefix}
}

// Prefix returns the table prefix. It is also the prefix of the user
// capabilities meta key.
func (t Tables) Prefix() string { return t.prefix }

func (t Tables) Posts() string             { return t.prefix + "posts" }
func (t Tables) PostMeta() string          { return t.prefix + "postmeta" }
func (t Tables) Users() string             { return t.prefix + "users" }
func (t Tables) UserMeta() string          { return t.prefix + "usermeta" }
func (t Tables) Comments() string          { return t.prefix + "comments" }
func (t Tables) Terms() string             { return t.prefix + "terms" }
func (t Tables) TermTaxonomy() string      { return t.prefix + "term_taxonomy" }
func (t Tables) TermRelationships() string { return t.prefix + "term_relationships" }
func (t Tables) Options() string           { return t.prefix + "options" }
func (t Tables) OrderItems() string        { return t.prefix + "woocommerce_order_items" }
func (t Tables) OrderItemMeta() string     { return t.prefix + "woocommerce_order_itemmeta" }
func (t Tables) P2P() string               { return t.prefix + "p2p" }
