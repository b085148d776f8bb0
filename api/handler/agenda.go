package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	agendaUC "github.com/lifesync/backend/usecase/agenda"
	"github.com/lifesync/backend/pkg/httpcontext"
)

type AgendaHandler struct {
	baseHandler
	uc *agendaUC.UseCase
}

func NewAgendaHandler(uc *agendaUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AgendaHandler {
	return &AgendaHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Merged agenda of active tasks and events, ordered
// @Tags agenda
// @Router /api/v1/appointments [get]
func (h *AgendaHandler) List(ctx *fasthttp.RequestCtx) {
	ownerID := h.principal(ctx)
	if ownerID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	appointments, err := h.uc.ListOrdered(stdCtx, ownerID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, appointments)
}
