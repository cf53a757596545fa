package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"circletracker/internal/core"
	"circletracker/internal/ethereum"
	"circletracker/internal/http/handler/middleware"
	"circletracker/internal/http/payload"
	"circletracker/internal/repository"
)

var (
	Authenticate        = "POST /tracker/authenticate"
	GetTransactions     = "GET /tracker/transactions"
	GetTransaction      = "GET /tracker/transactions/{txHash}"
	GetSummary          = "GET /tracker/summary"
	GetChains           = "GET /tracker/chains"
	GetChainHead        = "GET /tracker/chains/{chainId}/head"
	GetStatistics       = "GET /tracker/statistics"
	RunBackfill         = "POST /tracker/backfill"
	StartListener       = "POST /tracker/listener"
	StopListener        = "DELETE /tracker/listener"
	RecomputeStatistics = "POST /tracker/statistics/recompute"
)

const authTokenHeader = "AUTH_TOKEN"

type TrackerHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	tracker          TrackerService
}

func NewTrackerHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, trackerService TrackerService) *TrackerHandler {
	return &TrackerHandler{
		logs:             logger,
		requestValidator: requestValidator,
		tracker:          trackerService,
	}
}

func (h *TrackerHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var authPayload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &authPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.tracker.Authenticate(r.Context(), authPayload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse query parameters", "error", err, "handler", GetTransactions, "request_id", requestId)
		return
	}

	query, err := payload.ParseTransactionsQuery(values)
	if err == nil {
		err = query.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request parameters",
			"error", err,
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	transactions, err := h.tracker.GetTransactions(r.Context(), query.ToFilter())
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			h.respondDegraded(w, map[string][]core.TransactionRecord{"transactions": {}}, requestId)
			h.logs.Errorw("store unavailable, serving degraded response",
				"error", err,
				"handler", GetTransactions,
				"request_id", requestId)
			return
		}
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   oopsErr,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get transactions",
			"error", err,
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.TransactionRecord{
		"transactions": transactions,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	txHash := r.PathValue("txHash")
	if txHash == "" {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "txHash parameter is required",
		}, http.StatusBadRequest,
			requestId)
		return
	}

	transaction, err := h.tracker.GetTransactionByHash(r.Context(), txHash)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			h.respond(w, Response{
				Message: "Transaction not found",
			}, http.StatusNotFound,
				requestId)
			return
		}
		if errors.Is(err, repository.ErrStoreUnavailable) {
			h.respondDegraded(w, map[string]core.TransactionRecord{"transaction": {}}, requestId)
			return
		}
		h.respond(w, Response{
			Message: "Could not retrieve transaction",
			Error:   oopsErr,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get transaction",
			"error", err,
			"handler", GetTransaction,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]core.TransactionRecord{"transaction": transaction}, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	query, err := payload.ParseTransactionsQuery(r.URL.Query())
	if err == nil {
		err = query.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		return
	}

	summary, err := h.tracker.GetSummary(r.Context(), query.ToFilter())
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			h.respondDegraded(w, map[string]core.Summary{"summary": {}}, requestId)
			h.logs.Errorw("store unavailable, serving degraded response",
				"error", err,
				"handler", GetSummary,
				"request_id", requestId)
			return
		}
		h.respond(w, Response{
			Message: "Could not compute summary",
			Error:   oopsErr,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get summary",
			"error", err,
			"handler", GetSummary,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]core.Summary{"summary": summary}, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleGetChains(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	resp := map[string][]core.ChainInfo{
		"chains": h.tracker.SupportedChains(),
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleGetChainHead(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	chainID, err := strconv.ParseInt(r.PathValue("chainId"), 10, 64)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "chainId parameter must be an integer",
		}, http.StatusBadRequest,
			requestId)
		return
	}

	head, err := h.tracker.LatestBlockNumber(r.Context(), chainID)
	if err != nil {
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUnknownScanner) {
			httpCode = http.StatusNotFound
		}
		h.respond(w, Response{
			Message: "Could not resolve chain head",
			Error:   err.Error(),
		}, httpCode,
			requestId)
		h.logs.Errorw("failed to resolve chain head",
			"error", err,
			"handler", GetChainHead,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]uint64{"blockNumber": head}, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleGetStatistics(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	values := r.URL.Query()
	chainID := int64(0)
	if raw := values.Get("chainId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.respond(w, Response{
				Message: "Request failed",
				Error:   "chainId parameter must be an integer",
			}, http.StatusBadRequest,
				requestId)
			return
		}
		chainID = parsed
	}

	statistics, err := h.tracker.GetStatistics(r.Context(), values.Get("date"), chainID, values.Get("type"))
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			h.respondDegraded(w, map[string][]core.StatisticRecord{"statistics": {}}, requestId)
			return
		}
		h.respond(w, Response{
			Message: "Could not retrieve statistics",
			Error:   oopsErr,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get statistics",
			"error", err,
			"handler", GetStatistics,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string][]core.StatisticRecord{"statistics": statistics}, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleRunBackfill(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var backfillPayload payload.BackfillRequest
	err := h.requestValidator.DecodeJSONPayload(r, &backfillPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Backfill request rejected",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", RunBackfill,
			"request_id", requestId)
		return
	}

	toBlock := ethereum.LatestBlock
	if backfillPayload.ToBlock != nil {
		toBlock = *backfillPayload.ToBlock
	}

	h.logs.Infow("backfill requested",
		"chain_id", backfillPayload.ChainID,
		"from_block", backfillPayload.FromBlock,
		"handler", RunBackfill,
		"request_id", requestId)

	summary, err := h.tracker.RunBackfill(r.Context(), backfillPayload.ChainID, backfillPayload.FromBlock, toBlock)
	if err != nil {
		h.respond(w, Response{
			Message: "Backfill failed",
			Error:   err.Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("backfill failed",
			"error", err,
			"handler", RunBackfill,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"success": true,
		"count":   summary.Inserted,
		"data":    summary,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleStartListener(w http.ResponseWriter, r *http.Request) {
	h.handleListenerControl(w, r, StartListener, func(chainID int64) error {
		return h.tracker.StartListener(chainID)
	})
}

func (h *TrackerHandler) HandleStopListener(w http.ResponseWriter, r *http.Request) {
	h.handleListenerControl(w, r, StopListener, func(chainID int64) error {
		return h.tracker.StopListener(chainID)
	})
}

func (h *TrackerHandler) handleListenerControl(w http.ResponseWriter, r *http.Request, route string, action func(chainID int64) error) {
	requestId := h.requestID(r)

	if !h.authorizeAdmin(w, r, route, requestId) {
		return
	}

	var listenerPayload payload.ListenerRequest
	err := h.requestValidator.DecodeJSONPayload(r, &listenerPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Listener request rejected",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		return
	}

	if err := action(listenerPayload.ChainID); err != nil {
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrListenerRunning) || errors.Is(err, core.ErrListenerNotRunning) {
			httpCode = http.StatusConflict
		}
		h.respond(w, Response{
			Message: "Listener request failed",
			Error:   err.Error(),
		}, httpCode,
			requestId)
		h.logs.Errorw("listener control failed",
			"error", err,
			"chain_id", listenerPayload.ChainID,
			"handler", route,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"success": true,
		"message": fmt.Sprintf("listener state changed for chain %d", listenerPayload.ChainID),
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleRecomputeStatistics(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	if !h.authorizeAdmin(w, r, RecomputeStatistics, requestId) {
		return
	}

	var recomputePayload payload.RecomputeStatisticsRequest
	err := h.requestValidator.DecodeJSONPayload(r, &recomputePayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Recompute request rejected",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		return
	}

	if err := h.tracker.RecomputeStatistics(r.Context(), recomputePayload.Date); err != nil {
		h.respond(w, Response{
			Message: "Recompute failed",
			Error:   err.Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("statistics recompute failed",
			"error", err,
			"handler", RecomputeStatistics,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{"success": true}, http.StatusOK, requestId)
}

func (h *TrackerHandler) authorizeAdmin(w http.ResponseWriter, r *http.Request, route string, requestId string) bool {
	token := r.Header.Get(authTokenHeader)
	if token == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   fmt.Sprintf("%s header is required", authTokenHeader),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing auth token header", "handler", route, "request_id", requestId)
		return false
	}

	if err := h.tracker.AuthorizeAdmin(token); err != nil {
		h.respond(w, Response{
			Message: "Authorization failed",
			Error:   err.Error(),
		}, http.StatusForbidden,
			requestId)
		h.logs.Errorw("admin authorization failed", "error", err, "handler", route, "request_id", requestId)
		return false
	}

	return true
}

func (h *TrackerHandler) requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

func (h *TrackerHandler) respondDegraded(w http.ResponseWriter, data any, requestId string) {
	h.respond(w, Response{
		Message: "Data store temporarily unavailable, showing empty results",
		Data:    data,
	}, http.StatusOK, requestId)
}

func (h *TrackerHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
