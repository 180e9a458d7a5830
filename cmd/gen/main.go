package main

import (
	"eventhub/internal/infra/persistence/model"

	"gorm.io/gen"
)

const outPath = "./internal/infra/persistence/postgres/query"

// persistenceModels lists every table-backed model; each migrated table needs one.
func persistenceModels() []any {
	return []any{
		model.UserModel{},
		model.AuthenticationModel{},
		model.VendorProfileModel{},
		model.InquiryModel{},
		model.AnalyticsModel{},
		model.EventModel{},
		model.GuestModel{},
		model.BudgetItemModel{},
		model.ChecklistItemModel{},
	}
}

// Generates type-safe query helpers for the persistence models into
// internal/infra/persistence/postgres/query. The output is not checked in;
// run it for ad-hoc typed queries against the schema.
func main() {
	gen := gen.NewGenerator(gen.Config{
		OutPath: outPath,
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(persistenceModels()...)

	gen.Execute()
}
