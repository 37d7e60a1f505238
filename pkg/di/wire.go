//go:build wireinject

//go:generate wire
package di

import (
	"context"

	"github.com/lintang-b-s/osm-gazetteer/pkg/di/config"
	shortcontext "github.com/lintang-b-s/osm-gazetteer/pkg/di/context"
	gazetteer_di "github.com/lintang-b-s/osm-gazetteer/pkg/di/gazetteer"
	kv_di "github.com/lintang-b-s/osm-gazetteer/pkg/di/kv"
	logger_di "github.com/lintang-b-s/osm-gazetteer/pkg/di/logger"
	"github.com/lintang-b-s/osm-gazetteer/pkg/gazetteer"
	gazetteerHttp "github.com/lintang-b-s/osm-gazetteer/pkg/http"
	"github.com/lintang-b-s/osm-gazetteer/pkg/http/http-router/controllers"
	"github.com/lintang-b-s/osm-gazetteer/pkg/http/usecases"
	"github.com/lintang-b-s/osm-gazetteer/pkg/kvdb"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	kv_di.New,
	gazetteer_di.New,
)

var gazetteerSet = wire.NewSet(
	defaultSet,
	NewGazetteerService,
	NewGazetteerAPIServer,
)

func NewGazetteerService(log *zap.Logger, assembler *gazetteer.Assembler, store *kvdb.KVDB) controllers.GazetteerService {
	return usecases.New(log, assembler, store)
}

func NewGazetteerAPIServer(ctx context.Context, log *zap.Logger,
	gazetteerService controllers.GazetteerService) (*gazetteerHttp.Server, error) {
	api := gazetteerHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, gazetteerService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}

func InitializeGazetteerService() (*gazetteerHttp.Server, func(), error) {

	panic(wire.Build(gazetteerSet))
}
