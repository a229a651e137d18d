/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

// Package paging implements the cursor-based pagination protocol used
// by the Google Cloud listing APIs
package paging

import (
	"context"
)

// Page is one chunk of a cursor-paginated listing. A non-empty
// NextPageToken means the listing has more data.
type Page[T any] struct {
	Items         []T
	NextPageToken string
}

// PageSource fetches one page of a listing. An empty pageToken requests
// the first page; any other value must be the NextPageToken carried by
// the previously fetched page.
type PageSource[T any] interface {
	FetchPage(ctx context.Context, pageToken string) (Page[T], error)
}

// PageSourceFunc adapts a plain function to the PageSource interface
type PageSourceFunc[T any] func(ctx context.Context, pageToken string) (Page[T], error)

// FetchPage implements the PageSource interface
func (f PageSourceFunc[T]) FetchPage(ctx context.Context, pageToken string) (Page[T], error) {
	return f(ctx, pageToken)
}

// DrainPages fetches every page of a listing and concatenates the items
// in page order. The source is invoked exactly once per page, each time
// with the token of the previous page. A failed fetch aborts the whole
// drain: no partial result is ever returned.
//
// Items are never deduplicated. The underlying API must not repeat an
// item across pages.
func DrainPages[T any](ctx context.Context, source PageSource[T]) ([]T, error) {
	var items []T

	pageToken := ""
	for {
		page, err := source.FetchPage(ctx, pageToken)
		if err != nil {
			return nil, err
		}

		items = append(items, page.Items...)
		if page.NextPageToken == "" {
			return items, nil
		}
		pageToken = page.NextPageToken
	}
}
