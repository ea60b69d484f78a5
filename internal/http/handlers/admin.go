package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"busbook/internal/domain"
	"busbook/internal/domain/models"
	"busbook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

const maxFormMemory = 1 << 20

type createBusRequest struct {
	BusNumber  string `json:"bus_number" form:"bus_number" binding:"required"`
	TotalSeats int    `json:"total_seats" form:"total_seats" binding:"gte=0"`
}

// GET /api/admin/dashboard
func (h Handlers) Dashboard(c *gin.Context) {
	dash, err := h.Catalog.Dashboard(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": middleware.AdminFromContext(c), "buses": dash.Buses, "intents": dash.Intents})
}

// POST /api/admin/buses
func (h Handlers) CreateBus(c *gin.Context) {
	var req createBusRequest
	if !BindOrError(c, &req) {
		return
	}
	bus, err := h.Admin.CreateBus(c.Request.Context(), req.BusNumber, req.TotalSeats)
	if err != nil {
		if domain.IsPartialWrite(err) {
			respondError(c, http.StatusMultiStatus, "partial_write", err.Error(), gin.H{"bus": bus})
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"bus": bus})
}

// GET /api/admin/buses/:id
func (h Handlers) EditView(c *gin.Context) {
	busID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.Catalog.EditView(c.Request.Context(), busID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PUT|POST /api/admin/buses/:id
func (h Handlers) UpdateBus(c *gin.Context) {
	busID, ok := pathID(c, "id")
	if !ok {
		return
	}

	edit, err := bindBusEdit(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	result, err := h.Admin.ApplyEdit(c.Request.Context(), busID, edit)
	respondEditResult(c, http.StatusOK, result, err)
}

// DELETE /api/admin/buses/:id
func (h Handlers) DeleteBus(c *gin.Context) {
	busID, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := h.Admin.DeleteBus(c.Request.Context(), busID)
	respondEditResult(c, http.StatusOK, result, err)
}

func bindBusEdit(c *gin.Context) (models.BusEdit, error) {
	if c.ContentType() == gin.MIMEJSON {
		var edit models.BusEdit
		if err := c.ShouldBindJSON(&edit); err != nil {
			return models.BusEdit{}, err
		}
		return edit, nil
	}

	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return models.BusEdit{}, err
	}
	return parseEditForm(c.Request.PostForm)
}

// parseEditForm reads the edit form field names: bus_number, total_seats,
// available_seats, stop_name_<route_id>, stop_time_<route_id>,
// new_stop_name[], new_stop_time[] and delete_route[].
func parseEditForm(form url.Values) (models.BusEdit, error) {
	edit := models.BusEdit{
		BusNumber:    form.Get("bus_number"),
		RouteUpdates: map[int64]models.RouteFields{},
	}

	var err error
	if edit.TotalSeats, err = formInt(form, "total_seats"); err != nil {
		return models.BusEdit{}, err
	}
	if edit.AvailableSeats, err = formInt(form, "available_seats"); err != nil {
		return models.BusEdit{}, err
	}

	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		var (
			raw    string
			isName bool
		)
		switch {
		case strings.HasPrefix(k, "stop_name_"):
			raw, isName = strings.TrimPrefix(k, "stop_name_"), true
		case strings.HasPrefix(k, "stop_time_"):
			raw = strings.TrimPrefix(k, "stop_time_")
		default:
			continue
		}
		routeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.BusEdit{}, domain.ValidationError{Field: k, Msg: "route id must be a number"}
		}
		f := edit.RouteUpdates[routeID]
		if isName {
			f.StopName = form.Get(k)
		} else {
			f.StopTime = form.Get(k)
		}
		edit.RouteUpdates[routeID] = f
	}

	names, times := form["new_stop_name[]"], form["new_stop_time[]"]
	for i := 0; i < min(len(names), len(times)); i++ {
		edit.NewStops = append(edit.NewStops, models.RouteFields{StopName: names[i], StopTime: times[i]})
	}

	for _, v := range form["delete_route[]"] {
		id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return models.BusEdit{}, domain.ValidationError{Field: "delete_route[]", Msg: "route id must be a number"}
		}
		edit.DeleteRouteIDs = append(edit.DeleteRouteIDs, id)
	}
	return edit, nil
}

func formInt(form url.Values, field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(form.Get(field)))
	if err != nil {
		return 0, domain.ValidationError{Field: field, Msg: "must be a whole number"}
	}
	return n, nil
}
