package handler

import (
	"errors"
	"net/http"
	"strconv"

	"tainan-restaurant/internal/model"
	"tainan-restaurant/internal/service"

	"github.com/rs/zerolog"
)

// RestaurantHandler handles restaurant query HTTP requests.
type RestaurantHandler struct {
	service service.RestaurantService
	logger  zerolog.Logger
}

// NewRestaurantHandler creates a new restaurant handler.
func NewRestaurantHandler(service service.RestaurantService, logger zerolog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		logger:  logger.With().Str("handler", "restaurant").Logger(),
	}
}

// RandomByDistrict handles GET /random_restaurant/{district} requests.
// The optional number query parameter sets the sample size.
func (h *RestaurantHandler) RandomByDistrict(w http.ResponseWriter, r *http.Request) {
	district := r.PathValue("district")

	count := service.DefaultSampleSize
	query := r.URL.Query()
	if query.Has("number") {
		n, err := strconv.Atoi(query.Get("number"))
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidNumber, model.ErrInvalidNumber.Message, h.logger)
			return
		}
		count = n
	}

	restaurants, err := h.service.RandomByDistrict(r.Context(), district, count)
	if err != nil {
		h.handleQueryError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, restaurants)
}

// GetByName handles GET /restaurant/{name} requests.
func (h *RestaurantHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.GetByName(r.Context(), r.PathValue("name"))
	if err != nil {
		h.handleQueryError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, restaurants)
}

// Districts handles GET /districts requests.
func (h *RestaurantHandler) Districts(w http.ResponseWriter, r *http.Request) {
	districts := h.service.Districts(r.Context())
	if districts == nil {
		districts = []string{}
	}
	writeJSON(w, http.StatusOK, districts)
}

func (h *RestaurantHandler) handleQueryError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrDistrictNotFound):
		writeMessage(w, model.ErrDistrictNotFound.Message)
	case errors.Is(err, model.ErrRestaurantNotFound):
		writeMessage(w, model.ErrRestaurantNotFound.Message)
	case errors.Is(err, model.ErrInvalidSampleCount):
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidSampleCount, err.Error(), h.logger)
	default:
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("restaurant query failed")
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to query restaurants", h.logger)
	}
}
