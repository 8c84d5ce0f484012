// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/deltasync"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/state"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// Services aggregates every use case of the process.
type Services struct {
	Items     RecordService[models.Item]
	Suppliers RecordService[models.Supplier]
	Session   SessionService
	AppInfo   AppInfoService
}

// Dependencies are the collaborators [NewServices] wires together.
// Storages may be nil to run without a local snapshot.
type Dependencies struct {
	Store           *state.Store
	ItemAdapter     adapter.RecordAdapter[models.Item]
	SupplierAdapter adapter.RecordAdapter[models.Supplier]
	ItemSyncer      *deltasync.Syncer[models.Item]
	SupplierSyncer  *deltasync.Syncer[models.Supplier]
	Storages        *store.Storages
	BuildInfo       models.AppBuildInfo
}

// NewServices builds the services. Record services are wrapped with
// validation.
func NewServices(deps Dependencies, cfg config.StructuredConfig, log *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, deps.BuildInfo, log)
	if err != nil {
		return nil, err
	}

	items := NewRecordValidationService[models.Item]().
		Wrap(NewItemService(deps.ItemAdapter, deps.ItemSyncer, deps.Store, log))
	suppliers := NewRecordValidationService[models.Supplier]().
		Wrap(NewSupplierService(deps.SupplierAdapter, deps.SupplierSyncer, deps.Store, log))

	var (
		itemSnapshots     SnapshotLoader[models.Item]
		supplierSnapshots SnapshotLoader[models.Supplier]
		purger            SnapshotPurger
	)
	if deps.Storages != nil {
		itemSnapshots = deps.Storages.Items
		supplierSnapshots = deps.Storages.Suppliers
		purger = deps.Storages.Snapshots
	}

	session := NewSessionService(deps.Store, purger, log,
		NewCollectionSync(deps.ItemSyncer, itemSnapshots, log),
		NewCollectionSync(deps.SupplierSyncer, supplierSnapshots, log),
	)

	return &Services{
		Items:     items,
		Suppliers: suppliers,
		Session:   session,
		AppInfo:   appInfo,
	}, nil
}
