package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

const defaultSpan = "4w"

type assembler interface {
	Get(ctx context.Context, userID, span, language string) (*Data, error)
}

type Handler struct {
	assembler assembler
}

func NewHandler(assembler assembler) *Handler {
	return &Handler{
		assembler: assembler,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.get")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userID"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	spanToken := r.URL.Query().Get("span")
	if spanToken == "" {
		spanToken = defaultSpan
	}
	language := r.URL.Query().Get("lang")

	data, err := handler.assembler.Get(ctx, userID, spanToken, language)
	if errors.Is(err, ErrInvalidSpan) {
		http.Error(w, "error, invalid span", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("failed to get dashboard for user %s: %s", userID, err)
		http.Error(w, "error, failed to get dashboard", http.StatusInternalServerError)
		return
	}

	dataJson, err := json.Marshal(data)
	if err != nil {
		log.Errorf("failed to marshal dashboard: %s", err)
		http.Error(w, "failed to marshal dashboard", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, dataJson, http.StatusOK)
}
