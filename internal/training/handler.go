package training

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/internal/training/sets"
	"github.com/2beens/liftstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=training_test

const defaultListDays = 28

type trainingService interface {
	AddSet(ctx context.Context, set sets.Set) (*sets.Set, error)
	UpdateSet(ctx context.Context, set *sets.Set) error
	DeleteSet(ctx context.Context, userID string, id int64) error
	GetSet(ctx context.Context, userID string, id int64) (*sets.Set, error)
	ListSets(ctx context.Context, userID string, from, to time.Time) ([]sets.Set, error)
	DayDetail(ctx context.Context, userID string, date time.Time) (*DayDetail, error)
}

type DeleteSetResponse struct {
	DeletedID int64 `json:"deletedId"`
}

type UpdateSetResponse struct {
	UpdatedID int64 `json:"updatedId"`
}

type SetsListResponse struct {
	Sets  []sets.Set `json:"sets"`
	Total int        `json:"total"`
}

type Handler struct {
	service trainingService
}

func NewHandler(service trainingService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.addSet")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID := mux.Vars(r)["userID"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	var set sets.Set
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Errorf("add set, unmarshal json params: %s", err)
		http.Error(w, "add set failed", http.StatusBadRequest)
		return
	}
	set.UserID = userID

	if set.ExerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}
	if set.PerformedAt.IsZero() {
		set.PerformedAt = time.Now()
	}

	addedSet, err := handler.service.AddSet(ctx, set)
	if err != nil {
		log.Errorf("failed to add set [%s] for user %s: %s", set.ExerciseID, userID, err)
		http.Error(w, "error, failed to add set", http.StatusInternalServerError)
		return
	}

	log.Debugf("set added: [%s] user %s: %d", addedSet.ExerciseID, addedSet.UserID, addedSet.ID)

	addedSetJson, err := json.Marshal(addedSet)
	if err != nil {
		log.Errorf("failed to marshal added set: %s", err)
		http.Error(w, "error, failed to add set", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedSetJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.getSet")
	defer span.End()

	userID, id, ok := userAndSetID(w, r)
	if !ok {
		return
	}

	set, err := handler.service.GetSet(ctx, userID, id)
	if errors.Is(err, sets.ErrSetNotFound) {
		http.Error(w, "set not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get set %d: %s", id, err)
		http.Error(w, "error, failed to get set", http.StatusInternalServerError)
		return
	}

	setJson, err := json.Marshal(set)
	if err != nil {
		log.Errorf("failed to marshal set: %s", err)
		http.Error(w, "failed to marshal set", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, setJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.updateSet")
	defer span.End()

	userID, id, ok := userAndSetID(w, r)
	if !ok {
		return
	}

	var set sets.Set
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Errorf("update set, unmarshal json params: %s", err)
		http.Error(w, "update set failed", http.StatusBadRequest)
		return
	}
	set.ID = id
	set.UserID = userID

	err := handler.service.UpdateSet(ctx, &set)
	if errors.Is(err, sets.ErrSetNotFound) {
		http.Error(w, "set not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to update set %d: %s", id, err)
		http.Error(w, "error, failed to update set", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(UpdateSetResponse{UpdatedID: id})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "error, failed to update set", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.deleteSet")
	defer span.End()

	userID, id, ok := userAndSetID(w, r)
	if !ok {
		return
	}

	err := handler.service.DeleteSet(ctx, userID, id)
	if errors.Is(err, sets.ErrSetNotFound) {
		http.Error(w, "set not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to delete set %d: %s", id, err)
		http.Error(w, "error, failed to delete set", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteSetResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "error, failed to delete set", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.listSets")
	defer span.End()

	userID := mux.Vars(r)["userID"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	// The to date is inclusive: its whole day is part of the range.
	to := time.Now()
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		toDate, err := time.Parse(time.DateOnly, toParam)
		if err != nil {
			http.Error(w, "error, invalid to date", http.StatusBadRequest)
			return
		}
		to = toDate.AddDate(0, 0, 1)
	}

	from := to.AddDate(0, 0, -defaultListDays)
	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		fromDate, err := time.Parse(time.DateOnly, fromParam)
		if err != nil {
			http.Error(w, "error, invalid from date", http.StatusBadRequest)
			return
		}
		from = fromDate
	}

	userSets, err := handler.service.ListSets(ctx, userID, from, to)
	if err != nil {
		log.Errorf("failed to list sets for user %s: %s", userID, err)
		http.Error(w, "error, failed to list sets", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(SetsListResponse{
		Sets:  userSets,
		Total: len(userSets),
	})
	if err != nil {
		log.Errorf("failed to marshal sets list: %s", err)
		http.Error(w, "error, failed to list sets", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleDayDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.dayDetail")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userID"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, vars["date"])
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	dayDetail, err := handler.service.DayDetail(ctx, userID, date)
	if err != nil {
		log.Errorf("failed to get day detail for user %s: %s", userID, err)
		http.Error(w, "error, failed to get day detail", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(dayDetail)
	if err != nil {
		log.Errorf("failed to marshal day detail: %s", err)
		http.Error(w, "error, failed to get day detail", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func userAndSetID(w http.ResponseWriter, r *http.Request) (userID string, id int64, ok bool) {
	vars := mux.Vars(r)
	userID = vars["userID"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return "", 0, false
	}
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return "", 0, false
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return "", 0, false
	}
	return userID, id, true
}
