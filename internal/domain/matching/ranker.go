package matching

import (
	"context"
	"log"

	"farmconnect/internal/domain/geo"

	"github.com/google/uuid"
)

// Candidate is a worker availability record under consideration for one
// job. The eligibility filter (skill substring + available status) has
// already been applied before ranking.
type Candidate struct {
	AvailabilityID uuid.UUID
	WorkerID       uuid.UUID
	Skills         string
	Location       geo.Coordinate
}

// Proposal is a surviving candidate with its rounded score and distance,
// ready to be persisted as a pending match.
type Proposal struct {
	WorkerID   uuid.UUID
	Score      float64
	DistanceKm float64
}

// ReputationSource resolves a worker's rating. The second return value is
// false when the worker has never been rated.
type ReputationSource interface {
	Rating(ctx context.Context, workerID uuid.UUID) (float64, bool, error)
}

type Ranker struct {
	policy      geo.Policy
	reputations ReputationSource
	logger      *log.Logger
}

func NewRanker(policy geo.Policy, reputations ReputationSource, logger *log.Logger) *Ranker {
	return &Ranker{policy: policy, reputations: reputations, logger: logger}
}

// Rank scores every candidate against the job origin and keeps those
// within the distance cutoff and above the acceptance threshold. Both
// cutoffs are strict: a candidate at exactly MaxDistanceKm or exactly
// MinFinalScore is dropped. A reputation lookup failure downgrades that
// candidate to the default rating and the run continues; it never aborts
// the scan. Each (job, worker) pair is emitted at most once per run.
func (r *Ranker) Rank(ctx context.Context, origin geo.Coordinate, candidates []Candidate) ([]Proposal, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}

	out := make([]Proposal, 0, len(candidates))
	seen := make(map[uuid.UUID]struct{}, len(candidates))

	for _, c := range candidates {
		if c.WorkerID == uuid.Nil {
			continue
		}
		if _, dup := seen[c.WorkerID]; dup {
			continue
		}
		if err := c.Location.Validate(); err != nil {
			if r.logger != nil {
				r.logger.Printf("matching: skipping candidate | worker=%s error=%v", c.WorkerID, err)
			}
			continue
		}

		distance := geo.Distance(origin, c.Location)
		if distance > r.policy.MaxDistanceKm {
			continue
		}

		proximity := geo.ProximityScore(distance, r.policy.MaxDistanceKm)
		reputation := geo.ReputationScore(r.rating(ctx, c.WorkerID), r.policy.MaxRating)

		final := geo.FinalScore(proximity, reputation, r.policy.ProximityWeight)
		if final <= r.policy.MinFinalScore {
			continue
		}

		seen[c.WorkerID] = struct{}{}
		out = append(out, Proposal{
			WorkerID:   c.WorkerID,
			Score:      geo.Round2(final),
			DistanceKm: geo.Round2(distance),
		})
	}

	return out, nil
}

func (r *Ranker) rating(ctx context.Context, workerID uuid.UUID) float64 {
	if r.reputations == nil {
		return r.policy.DefaultRating
	}

	rating, ok, err := r.reputations.Rating(ctx, workerID)
	if err != nil {
		if r.logger != nil {
			r.logger.Printf("matching: reputation lookup failed, using default | worker=%s error=%v", workerID, err)
		}
		return r.policy.DefaultRating
	}
	if !ok {
		return r.policy.DefaultRating
	}
	return rating
}
