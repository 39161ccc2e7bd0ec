package main

import (
	"log/slog"
)

func main() {
	if conf.TaskConfigs.DropIndexes {
		slog.Info("Dropping indexes for registrations collection")
		registrationDBService.DropIndexes()
	}

	if conf.TaskConfigs.CreateIndexes {
		slog.Info("Creating default indexes for registrations collection")
		if err := registrationDBService.CreateIndexesForRegistrationsCollection(); err != nil {
			slog.Error("Error creating indexes", slog.String("error", err.Error()))
		}
	}

	if conf.TaskConfigs.GetIndexes {
		indexes, err := registrationDBService.GetIndexes()
		if err != nil {
			slog.Error("Error reading indexes", slog.String("error", err.Error()))
			return
		}
		for _, index := range indexes {
			slog.Info("registrations collection index", slog.Any("index", index))
		}
	}
}
