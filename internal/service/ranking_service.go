package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sort"
	"time"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/pkg/logger"
	"lms_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// starsPerPercent: every 5 percentage points of average lesson
// completion is worth one star. Coarse on purpose.
const starsPerPercent = 5.0

const leaderboardCacheKey = "lms:ranking:leaderboard"

type RankedStudent struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Stars int    `json:"stars"`
}

type RankingService struct {
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
	LessonRepo   *repository.LessonRepository
	Redis        *redis.Client
	CacheTTL     time.Duration
}

func NewRankingService(
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
	lessonRepo *repository.LessonRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
) *RankingService {
	return &RankingService{
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		LessonRepo:   lessonRepo,
		Redis:        rdb,
		CacheTTL:     cacheTTL,
	}
}

// StudentRanking builds the full leaderboard: every student, ordered by
// stars descending with student id ascending as the tie-break. Students
// without any progress rows appear with zero stars. The scan is
// O(students x progress rows) and runs synchronously under the caller's
// request; at classroom scale that is fine, and a short redis TTL keeps
// repeat requests off the database.
func (s *RankingService) StudentRanking(ctx context.Context) ([]RankedStudent, error) {
	if cached := s.cachedLeaderboard(ctx); cached != nil {
		return cached, nil
	}

	start := time.Now()

	students, err := s.UserRepo.FindByRole(model.Student)
	if err != nil {
		return nil, err
	}

	ranking := make([]RankedStudent, 0, len(students))
	for _, student := range students {
		stars, err := s.starsFor(student.ID)
		if err != nil {
			return nil, err
		}
		ranking = append(ranking, RankedStudent{
			ID:    student.ID,
			Name:  student.Name,
			Email: student.Email,
			Stars: stars,
		})
	}

	// Students arrive ordered by id, so a stable sort on stars alone
	// would already break ties by id; the explicit comparison makes the
	// contract independent of repository iteration order.
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Stars != ranking[j].Stars {
			return ranking[i].Stars > ranking[j].Stars
		}
		return ranking[i].ID < ranking[j].ID
	})

	monitoring.LeaderboardDuration.Observe(time.Since(start).Seconds())
	s.storeLeaderboard(ctx, ranking)

	return ranking, nil
}

// starsFor averages the lesson percentages over every progress row whose
// lesson still resolves, then buckets into stars. Rows pointing at a
// deleted lesson are excluded from both numerator and denominator rather
// than failing the whole computation.
func (s *RankingService) starsFor(studentID uint) (int, error) {
	rows, err := s.ProgressRepo.FindByStudentID(studentID)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	var total float64
	count := 0
	for i := range rows {
		lesson, err := s.LessonRepo.FindByID(rows[i].LessonID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return 0, err
		}
		total += LessonPercent(&rows[i], lesson)
		count++
	}

	if count == 0 {
		return 0, nil
	}

	average := total / float64(count)
	return int(math.Floor(average / starsPerPercent)), nil
}

func (s *RankingService) cachedLeaderboard(ctx context.Context) []RankedStudent {
	if s.Redis == nil || s.CacheTTL <= 0 {
		return nil
	}
	data, err := s.Redis.Get(ctx, leaderboardCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var ranking []RankedStudent
	if err := json.Unmarshal(data, &ranking); err != nil {
		return nil
	}
	return ranking
}

func (s *RankingService) storeLeaderboard(ctx context.Context, ranking []RankedStudent) {
	if s.Redis == nil || s.CacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(ranking)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, leaderboardCacheKey, data, s.CacheTTL).Err(); err != nil {
		logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
	}
}
