// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-press-sync/models"
)

func TestEncodeForm_FlatScalars(t *testing.T) {
	values := EncodeForm(models.TransformedObject{
		"post_title":    "Hello",
		"post_parent":   int64(3),
		"comment_count": "0",
		"ping":          true,
		"user_pass":     nil,
	})

	assert.Equal(t, "Hello", values.Get("post_title"))
	assert.Equal(t, "3", values.Get("post_parent"))
	assert.Equal(t, "0", values.Get("comment_count"))
	assert.Equal(t, "1", values.Get("ping"))

	_, present := values["user_pass"]
	assert.False(t, present, "nil values are omitted")
}

func TestEncodeForm_NestedMapsAndLists(t *testing.T) {
	values := EncodeForm(models.TransformedObject{
		"meta_input": map[string]any{
			"press_sync_post_id": int64(42),
			"color":              "red",
		},
		"tax_input": map[string][]string{
			"category": {"News", "Tech"},
			"post_tag": {},
		},
		"comments": []models.TransformedObject{
			{"comment_content": "first", "meta_input": map[string]any{"press_sync_comment_id": int64(7)}},
		},
		"featured_image": models.Fields{"ID": int64(9), "attachment_url": "https://origin.example/wp-content/uploads/a.jpg"},
		"p2p_connections": []models.Fields{
			{"p2p_from": int64(1), "p2p_to": int64(2), "p2p_type": "related"},
		},
	})

	want := url.Values{
		"meta_input[press_sync_post_id]":                 {"42"},
		"meta_input[color]":                              {"red"},
		"tax_input[category][0]":                         {"News"},
		"tax_input[category][1]":                         {"Tech"},
		"comments[0][comment_content]":                   {"first"},
		"comments[0][meta_input][press_sync_comment_id]": {"7"},
		"featured_image[ID]":                             {"9"},
		"featured_image[attachment_url]":                 {"https://origin.example/wp-content/uploads/a.jpg"},
		"p2p_connections[0][p2p_from]":                   {"1"},
		"p2p_connections[0][p2p_to]":                     {"2"},
		"p2p_connections[0][p2p_type]":                   {"related"},
	}
	assert.Equal(t, want, values)
}

func TestEncodeForm_AnySliceOfMaps(t *testing.T) {
	values := EncodeForm(models.TransformedObject{
		"meta_input": map[string]any{
			"_woocommerce_order_items": []models.Fields{
				{"order_item_id": int64(1), "order_item_name": "Hoodie"},
			},
			"_woocommerce_order_itemmeta": map[string]any{
				"1": []models.Fields{{"meta_key": "_qty", "meta_value": "2"}},
			},
		},
		"list": []any{"a", int64(2), nil},
	})

	assert.Equal(t, "Hoodie", values.Get("meta_input[_woocommerce_order_items][0][order_item_name]"))
	assert.Equal(t, "_qty", values.Get("meta_input[_woocommerce_order_itemmeta][1][0][meta_key]"))
	assert.Equal(t, "a", values.Get("list[0]"))
	assert.Equal(t, "2", values.Get("list[1]"))
	_, present := values["list[2]"]
	assert.False(t, present)
}

func TestEncodeForm_Deterministic(t *testing.T) {
	obj := models.TransformedObject{
		"b": "2",
		"a": map[string]any{"z": "1", "y": "2"},
	}

	assert.Equal(t, EncodeForm(obj).Encode(), EncodeForm(obj).Encode())
	assert.Equal(t, "a%5By%5D=2&a%5Bz%5D=1&b=2", EncodeForm(obj).Encode())
}
