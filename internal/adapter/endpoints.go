// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

// Endpoints describes the REST surface of one collection.
type Endpoints struct {
	// Fetch is the paginated full/delta read (storeId, skip, after).
	Fetch string
	// List is the filtered list read (storeId, skip, limit, search).
	List   string
	Create string
	Update string
	Delete string

	// EntityKey is the JSON key of the record in write responses.
	EntityKey string
	// ListKey is the JSON key of the record array in page responses.
	ListKey string
}

// ItemEndpoints is the item catalog API.
var ItemEndpoints = Endpoints{
	Fetch:     "/api/items/allItems",
	List:      "/api/items",
	Create:    "/api/items/create",
	Update:    "/api/items/update",
	Delete:    "/api/items/delete",
	EntityKey: "item",
	ListKey:   "items",
}

// SupplierEndpoints is the supplier API.
var SupplierEndpoints = Endpoints{
	Fetch:     "/api/suppliers",
	List:      "/api/suppliers/search",
	Create:    "/api/suppliers/create",
	Update:    "/api/suppliers/update",
	Delete:    "/api/suppliers/delete",
	EntityKey: "supplier",
	ListKey:   "suppliers",
}
