package main

import (
	"guardian/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.KVEntryModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
