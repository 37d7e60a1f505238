package main

import (
	"log"

	"github.com/lintang-b-s/osm-gazetteer/pkg/di"

	"go.uber.org/zap"
)

func main() {
	server, cleanup, err := di.InitializeGazetteerService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if err := server.Wait(); err != nil {
		server.Log.Error("api stopped", zap.Error(err))
		return
	}
	server.Log.Info("api stopped")
}
