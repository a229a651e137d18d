/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

// Package appengine wraps the slice of the App Engine Admin API needed
// to list and delete the running instances of a deployed version
package appengine

import (
	"context"
	"fmt"

	gae "google.golang.org/api/appengine/v1"
	"google.golang.org/api/option"

	"github.com/gaeops/rollrestart/pkg/gcp/paging"
)

// Instance is a running instance as returned by the listing RPC: the VM
// id and its still unparsed start time
type Instance struct {
	ID        string
	StartTime string
}

// Admin is a handle on the App Engine Admin API, scoped to one project.
// A handle holds no mutable state and can be shared between goroutines.
type Admin struct {
	projectID string
	service   *gae.APIService
}

// NewAdmin creates a handle on the Admin API for the given project,
// authenticating with the application default credentials unless
// overridden via the client options
func NewAdmin(ctx context.Context, projectID string, opts ...option.ClientOption) (*Admin, error) {
	service, err := gae.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("while creating the App Engine Admin API client: %w", err)
	}

	return &Admin{
		projectID: projectID,
		service:   service,
	}, nil
}

// Project returns the project id this handle is scoped to
func (admin *Admin) Project() string {
	return admin.projectID
}

// instancePages adapts the instances.list RPC to a page source. Each
// fetch issues exactly one RPC.
func (admin *Admin) instancePages(service, version string) paging.PageSource[Instance] {
	return paging.PageSourceFunc[Instance](func(ctx context.Context, pageToken string) (paging.Page[Instance], error) {
		call := admin.service.Apps.Services.Versions.Instances.
			List(admin.projectID, service, version).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		response, err := call.Do()
		if err != nil {
			return paging.Page[Instance]{}, fmt.Errorf(
				"while listing the instances of %v/%v: %w", service, version, err)
		}

		page := paging.Page[Instance]{NextPageToken: response.NextPageToken}
		for _, item := range response.Instances {
			page.Items = append(page.Items, Instance{
				ID:        item.Id,
				StartTime: item.StartTime,
			})
		}
		return page, nil
	})
}

// ListInstances drains every page of the instance listing of the given
// service and version
func (admin *Admin) ListInstances(ctx context.Context, service, version string) ([]Instance, error) {
	return paging.DrainPages[Instance](ctx, admin.instancePages(service, version))
}

// DeleteInstance stops a running instance through the Admin API. App
// Engine will recreate the capacity with a fresh instance, which is
// what makes deleting instances one by one a rolling restart.
func (admin *Admin) DeleteInstance(ctx context.Context, service, version, id string) error {
	_, err := admin.service.Apps.Services.Versions.Instances.
		Delete(admin.projectID, service, version, id).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("while deleting instance %v of %v/%v: %w", id, service, version, err)
	}

	return nil
}
