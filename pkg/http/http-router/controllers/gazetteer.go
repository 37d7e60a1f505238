package controllers

import (
	"fmt"
	"net/http"

	"github.com/lintang-b-s/osm-gazetteer/pkg/datastructure"
	"github.com/lintang-b-s/osm-gazetteer/pkg/gazetteer"
	helper "github.com/lintang-b-s/osm-gazetteer/pkg/http/http-router/router-helper"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type gazetteerAPI struct {
	gazetteerService GazetteerService
	log              *zap.Logger
	validate         *validator.Validate
	trans            ut.Translator
}

func New(gazetteerService GazetteerService, log *zap.Logger) *gazetteerAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &gazetteerAPI{
		gazetteerService: gazetteerService,
		log:              log,
		validate:         validate,
		trans:            trans,
	}
}

func (api *gazetteerAPI) Routes(group *helper.RouteGroup) {
	group.POST("/addresses/assemble", api.assemble)
	group.GET("/addresses/:type/:id", api.getAddresses)
	group.POST("/boundaries/label", api.labelBoundaries)
	group.GET("/boundaries/:type/:id", api.getBoundary)
}

// assembleRequest model info
//
//	@Description	request body for assembling the full addresses of one address point.
type assembleRequest struct {
	Point      gazetteer.Entity   `json:"point"`                                        // the address point with its addr:* tags.
	Boundaries []gazetteer.Entity `json:"boundaries" validate:"dive"`                   // boundaries containing the point, most specific first.
	Streets    []gazetteer.Entity `json:"streets" validate:"dive"`                      // streets near the point, closest first.
	Lang       string             `json:"lang" validate:"omitempty,bcp47_language_tag"` // optional language for names and ordering.
}

// assembleResponse model info
//
//	@Description	one record per addressing scheme of the point.
type assembleResponse struct {
	Data []gazetteer.Record `json:"data"`
}

// assemble godoc
// @Summary		build the full addresses of an address point from its boundaries and nearby streets.
// @Tags			addresses
// @ID assemble
// @Param			body	body	assembleRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/addresses/assemble [post]
// @Success		200	{object}	assembleResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *gazetteerAPI) assemble(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request assembleRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	records := api.gazetteerService.Assemble(request.Point, request.Boundaries, request.Streets, request.Lang)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": records}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type labelRequest struct {
	Boundaries []gazetteer.Entity `json:"boundaries" validate:"required,min=1,dive"`
	Lang       string             `json:"lang" validate:"omitempty,bcp47_language_tag"`
}

type labelResponse struct {
	Data gazetteer.Record `json:"data"`
}

// labelBoundaries godoc
// @Summary		build the boundary only hierarchy of a list of boundaries.
// @Tags			boundaries
// @ID label-boundaries
// @Param			body	body	labelRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/boundaries/label [post]
// @Success		200	{object}	labelResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *gazetteerAPI) labelBoundaries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request labelRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	record := api.gazetteerService.LabelBoundaries(request.Boundaries, request.Lang)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": record}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type osmIDParams struct {
	Type string `validate:"required,oneof=node way relation"`
	ID   string `validate:"required,numeric"`
}

type addressesResponse struct {
	Data datastructure.AddressDoc `json:"data"`
}

// getAddresses godoc
// @Summary		stored full addresses of an address point.
// @Tags			addresses
// @ID get-addresses
// @Param			type	path	string	true	"node or way"
// @Param			id		path	string	true	"osm id"
// @Produce		application/json
// @Router			/api/addresses/{type}/{id} [get]
// @Success		200	{object}	addressesResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
func (api *gazetteerAPI) getAddresses(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := api.osmID(ps)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	doc, err := api.gazetteerService.Addresses(r.Context(), id)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": doc}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type boundaryResponse struct {
	Data datastructure.BoundaryDoc `json:"data"`
}

// getBoundary godoc
// @Summary		stored label of a boundary.
// @Tags			boundaries
// @ID get-boundary
// @Param			type	path	string	true	"way or relation"
// @Param			id		path	string	true	"osm id"
// @Produce		application/json
// @Router			/api/boundaries/{type}/{id} [get]
// @Success		200	{object}	boundaryResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
func (api *gazetteerAPI) getBoundary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := api.osmID(ps)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	doc, err := api.gazetteerService.Boundary(r.Context(), id)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": doc}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *gazetteerAPI) osmID(ps httprouter.Params) (string, error) {
	params := osmIDParams{Type: ps.ByName("type"), ID: ps.ByName("id")}
	if err := api.validateRequest(params); err != nil {
		return "", err
	}
	return params.Type + "/" + params.ID, nil
}

func (api *gazetteerAPI) validateRequest(request any) error {
	if err := api.validate.Struct(request); err != nil {
		vv := translateError(err, api.trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return fmt.Errorf("validation error: %v", vvString)
	}
	return nil
}
