package cohort

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ehr/fhirquery/internal/platform/fhir"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.POST("/parse-query", h.ParseQuery)
}

// Root is the liveness acknowledgement.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "API is live!"})
}

type parseQueryRequest struct {
	Query string `json:"query"`
}

// ParseQuery interprets the posted query and returns the parsed form with its
// searchset. A missing query field is treated like an empty one: 400 with a
// required OperationOutcome, not 422.
func (h *Handler) ParseQuery(c echo.Context) error {
	var req parseQueryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fhir.StructureOutcome("request body must be a JSON object with a query string"))
	}

	result, err := h.svc.Search(c.Request().Context(), req.Query)
	if errors.Is(err, ErrEmptyQuery) {
		return c.JSON(http.StatusBadRequest, fhir.RequiredFieldOutcome("query", "Query is empty."))
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}
