package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lifesync/backend/api/transport"
	"github.com/lifesync/backend/domain"
	"github.com/lifesync/backend/pkg/httpcontext"
	eventUC "github.com/lifesync/backend/usecase/event"
)

type EventHandler struct {
	baseHandler
	uc *eventUC.UseCase
}

func NewEventHandler(uc *eventUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List active events
// @Tags events
// @Router /api/v1/events [get]
func (h *EventHandler) List(ctx *fasthttp.RequestCtx) {
	ownerID := h.principal(ctx)
	if ownerID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	events, err := h.uc.List(stdCtx, ownerID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, events)
}

// @Summary Get an event by id
// @Tags events
// @Router /api/v1/events/{id} [get]
func (h *EventHandler) Get(ctx *fasthttp.RequestCtx) {
	ownerID := h.principal(ctx)
	if ownerID == "" {
		return
	}
	id := h.pathID(ctx)
	if id == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	event, err := h.uc.Get(stdCtx, ownerID, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, event)
}

// @Summary Create an event
// @Tags events
// @Router /api/v1/events [post]
func (h *EventHandler) Create(ctx *fasthttp.RequestCtx) {
	ownerID := h.principal(ctx)
	if ownerID == "" {
		return
	}

	req, ok := h.parseEvent(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, ownerID, req.Title, req.Date, req.Time, req.Location)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Edit an event
// @Tags events
// @Router /api/v1/events/{id} [put]
func (h *EventHandler) Edit(ctx *fasthttp.RequestCtx) {
	ownerID := h.principal(ctx)
	if ownerID == "" {
		return
	}
	id := h.pathID(ctx)
	if id == "" {
		return
	}

	req, ok := h.parseEvent(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Edit(stdCtx, ownerID, id, req.Title, req.Date, req.Time, req.Location); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Deactivate an event
// @Tags events
// @Router /api/v1/events/{id} [delete]
func (h *EventHandler) Deactivate(ctx *fasthttp.RequestCtx) {
	ownerID := h.principal(ctx)
	if ownerID == "" {
		return
	}
	id := h.pathID(ctx)
	if id == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Deactivate(stdCtx, ownerID, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *EventHandler) parseEvent(ctx *fasthttp.RequestCtx) (transport.EventRequest, bool) {
	var req transport.EventRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return req, false
	}
	return req, true
}
