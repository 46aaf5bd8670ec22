package catalog

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=catalog_test

type catalogRepo interface {
	UpsertMuscle(ctx context.Context, m Muscle) error
	ReplaceExerciseMuscles(ctx context.Context, exerciseID string, mappings []ExerciseMuscle) error
	GetMuscle(ctx context.Context, id string) (*Muscle, error)
}

type ReplaceExerciseMusclesResponse struct {
	ExerciseID string `json:"exerciseId"`
	Mappings   int    `json:"mappings"`
}

// Handler serves the reference-data seeding endpoints: muscles and the
// exercise to muscle mappings that the aggregation reads.
type Handler struct {
	repo catalogRepo
}

func NewHandler(repo catalogRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleUpsertMuscle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.upsertMuscle")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var muscle Muscle
	if err := json.NewDecoder(r.Body).Decode(&muscle); err != nil {
		log.Errorf("upsert muscle, unmarshal json params: %s", err)
		http.Error(w, "upsert muscle failed", http.StatusBadRequest)
		return
	}

	if muscle.ID == "" {
		http.Error(w, "error, muscle id empty", http.StatusBadRequest)
		return
	}
	if muscle.TensionFactor < 0 {
		http.Error(w, "error, tension factor negative", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpsertMuscle(ctx, muscle); err != nil {
		log.Errorf("failed to upsert muscle %s: %s", muscle.ID, err)
		http.Error(w, "error, failed to upsert muscle", http.StatusInternalServerError)
		return
	}

	muscleJson, err := json.Marshal(muscle)
	if err != nil {
		log.Errorf("failed to marshal muscle: %s", err)
		http.Error(w, "error, failed to upsert muscle", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, muscleJson, http.StatusOK)
}

func (handler *Handler) HandleGetMuscle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.getMuscle")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, muscle id empty", http.StatusBadRequest)
		return
	}

	muscle, err := handler.repo.GetMuscle(ctx, id)
	if errors.Is(err, ErrMuscleNotFound) {
		http.Error(w, "muscle not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get muscle %s: %s", id, err)
		http.Error(w, "error, failed to get muscle", http.StatusInternalServerError)
		return
	}

	muscleJson, err := json.Marshal(muscle)
	if err != nil {
		log.Errorf("failed to marshal muscle: %s", err)
		http.Error(w, "failed to marshal muscle", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, muscleJson, http.StatusOK)
}

func (handler *Handler) HandleReplaceExerciseMuscles(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.replaceExerciseMuscles")
	defer span.End()

	exerciseID := mux.Vars(r)["exerciseID"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	var mappings []ExerciseMuscle
	if err := json.NewDecoder(r.Body).Decode(&mappings); err != nil {
		log.Errorf("replace exercise muscles, unmarshal json params: %s", err)
		http.Error(w, "replace exercise muscles failed", http.StatusBadRequest)
		return
	}

	for i := range mappings {
		mappings[i].ExerciseID = exerciseID
		if mappings[i].MuscleID == "" {
			http.Error(w, "error, muscle id empty", http.StatusBadRequest)
			return
		}
		if mappings[i].RelativeShare < 0 || mappings[i].RelativeShare > 1000 {
			http.Error(w, "error, relative share out of range", http.StatusBadRequest)
			return
		}
	}

	err := handler.repo.ReplaceExerciseMuscles(ctx, exerciseID, mappings)
	if errors.Is(err, ErrMuscleNotFound) {
		http.Error(w, "muscle not found", http.StatusBadRequest)
		return
	}
	if errors.Is(err, ErrDuplicateMapping) {
		http.Error(w, "duplicate muscle mapping", http.StatusBadRequest)
		return
	}
	if errors.Is(err, ErrShareOutOfRange) {
		http.Error(w, "relative share out of range", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("failed to replace muscles for exercise %s: %s", exerciseID, err)
		http.Error(w, "error, failed to replace exercise muscles", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ReplaceExerciseMusclesResponse{
		ExerciseID: exerciseID,
		Mappings:   len(mappings),
	})
	if err != nil {
		log.Errorf("failed to marshal replace response: %s", err)
		http.Error(w, "error, failed to replace exercise muscles", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
